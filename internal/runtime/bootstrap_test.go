package runtime

import "testing"

func TestBootstrapInitializesBothSingletons(t *testing.T) {
	resetMethodArea()
	resetHeap()

	ma, h, err := Bootstrap(newFakeLoader())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if ma == nil || h == nil {
		t.Fatalf("Bootstrap returned nil singleton: ma=%v h=%v", ma, h)
	}
	if _, err := ma.Get("I"); err != nil {
		t.Errorf("method area not usable after Bootstrap: %v", err)
	}
	if _, err := h.AllocateArray("[I", 1); err != nil {
		t.Errorf("heap not usable after Bootstrap: %v", err)
	}
}

func TestBootstrapSurfacesMethodAreaInitError(t *testing.T) {
	resetMethodArea()
	resetHeap()
	if _, err := InitMethodArea(newFakeLoader()); err != nil {
		t.Fatalf("priming InitMethodArea: %v", err)
	}

	if _, _, err := Bootstrap(newFakeLoader()); err != ErrMethodAreaInitialised {
		t.Fatalf("Bootstrap error = %v, want ErrMethodAreaInitialised", err)
	}
}
