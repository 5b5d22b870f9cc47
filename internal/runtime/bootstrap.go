package runtime

import "golang.org/x/sync/errgroup"

// Bootstrap brings up both process singletons together and reports the
// first failure from either leg, so a caller sees one error instead of
// having to sequence two init calls by hand (spec 9: "Method area and heap
// are process singletons with once-initialization").
func Bootstrap(loader Loader) (*MethodArea, *Heap, error) {
	var (
		ma   *MethodArea
		heap *Heap
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		ma, err = InitMethodArea(loader)
		return err
	})
	g.Go(func() error {
		heap = InitHeap()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ma, heap, nil
}
