package runtime

import (
	"strings"
	"sync"

	"github.com/cogwheel/jayvee/internal/classfile"
)

// Loader is the external "class resolver" collaborator from spec 6:
// load(name) -> bytes. The method area calls it when a class isn't
// already loaded; the core assumes it either succeeds or returns an
// ErrClassNotFound-shaped error to surface verbatim.
type Loader interface {
	Load(name string) ([]byte, error)
}

// primitiveNames are the pseudo-classes pre-populated into every method
// area (spec 4.E): the eight primitive types plus void.
var primitiveNames = []string{"B", "C", "D", "F", "I", "J", "S", "Z", "V"}

// MethodArea is the process-global map from class name to loaded Class,
// plus the reflection map and one-shot bootstrap cells described in spec
// 4.E. It is a singleton: InitMethodArea must be called exactly once per
// process (spec 9's "Global state... init-once semantics").
type MethodArea struct {
	loader Loader

	mu      sync.RWMutex
	classes map[string]*Class

	reflectMu sync.RWMutex
	reflect   map[int32]string // handle -> class name, for Class-mirror objects

	threadIDOnce  sync.Once
	threadID      int32
	threadGrpOnce sync.Once
	threadGroupID int32
}

var (
	globalMethodArea   *MethodArea
	globalMethodAreaMu sync.Mutex
)

// InitMethodArea constructs the process-wide MethodArea. A second call
// returns ErrMethodAreaInitialised without touching the existing instance
// (spec 7: Runtime::MethodAreaInitialised).
func InitMethodArea(loader Loader) (*MethodArea, error) {
	globalMethodAreaMu.Lock()
	defer globalMethodAreaMu.Unlock()

	if globalMethodArea != nil {
		return nil, ErrMethodAreaInitialised
	}

	ma := &MethodArea{
		loader:  loader,
		classes: make(map[string]*Class, len(primitiveNames)),
		reflect: make(map[int32]string),
	}
	for _, name := range primitiveNames {
		ma.classes[name] = newPseudoClass(name)
	}
	globalMethodArea = ma
	return ma, nil
}

// Get returns the Class for name, loading (or synthesizing, for array
// descriptors) it on demand per spec 4.E.
func (ma *MethodArea) Get(name string) (*Class, error) {
	ma.mu.RLock()
	c, ok := ma.classes[name]
	ma.mu.RUnlock()
	if ok {
		return c, nil
	}

	if strings.HasPrefix(name, "[") {
		return ma.publish(name, newPseudoClass(name)), nil
	}

	bytes, err := ma.loader.Load(name)
	if err != nil {
		return nil, err
	}
	cf, err := classfile.Parse(bytes)
	if err != nil {
		return nil, err
	}
	loaded, err := NewClass(cf)
	if err != nil {
		return nil, err
	}
	return ma.publish(name, loaded), nil
}

// publish inserts a freshly loaded class, but only if nobody beat us to it:
// class-map inserts are idempotent, first writer wins (spec 5: "inserts of
// newly-loaded classes... are idempotent; late writers observe the
// published class and discard their duplicate").
func (ma *MethodArea) publish(name string, c *Class) *Class {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	if existing, ok := ma.classes[name]; ok {
		return existing
	}
	ma.classes[name] = c
	return c
}

// RegisterMirror records the handle backing a java/lang/Class mirror
// object for name. Lookup semantics beyond this are out of scope (spec
// 4.E: "shape only").
func (ma *MethodArea) RegisterMirror(handle int32, className string) {
	ma.reflectMu.Lock()
	defer ma.reflectMu.Unlock()
	ma.reflect[handle] = className
}

func (ma *MethodArea) MirrorClassName(handle int32) (string, bool) {
	ma.reflectMu.RLock()
	defer ma.reflectMu.RUnlock()
	name, ok := ma.reflect[handle]
	return name, ok
}

// BootstrapThreadID returns the one-shot bootstrap thread id, assigning it
// from compute on first call only.
func (ma *MethodArea) BootstrapThreadID(compute func() int32) int32 {
	ma.threadIDOnce.Do(func() { ma.threadID = compute() })
	return ma.threadID
}

// BootstrapThreadGroupID mirrors BootstrapThreadID for the thread-group id.
func (ma *MethodArea) BootstrapThreadGroupID(compute func() int32) int32 {
	ma.threadGrpOnce.Do(func() { ma.threadGroupID = compute() })
	return ma.threadGroupID
}

// CreateInstanceWithDefault materializes the hierarchy-flattened
// instance-field map (computed lazily, cached per Class) and returns a
// fresh Instance whose every field holds its declared default.
func (ma *MethodArea) CreateInstanceWithDefault(className string) (*Instance, error) {
	c, err := ma.Get(className)
	if err != nil {
		return nil, err
	}

	layout, err := ma.fieldLayout(c)
	if err != nil {
		return nil, err
	}

	inst := &Instance{ClassName: className, Fields: newOrderedMap[*orderedMap[*FieldValue]]()}
	for _, perClass := range layout.Keys() {
		descs, _ := layout.Get(perClass)
		bucket := newOrderedMap[*FieldValue]()
		for _, fieldName := range descs.Keys() {
			desc, _ := descs.Get(fieldName)
			bucket.Set(fieldName, NewFieldValue(desc))
		}
		inst.Fields.Set(perClass, bucket)
	}
	return inst, nil
}

// fieldLayout returns (and caches) the hierarchy-flattened
// className -> fieldName -> descriptor map for c, computed parent-first.
func (ma *MethodArea) fieldLayout(c *Class) (*orderedMap[*orderedMap[string]], error) {
	c.instanceFieldsMu.Lock()
	defer c.instanceFieldsMu.Unlock()
	if c.instanceFieldsCache != nil {
		return c.instanceFieldsCache, nil
	}

	acc := newOrderedMap[*orderedMap[string]]()
	if err := ma.fillFieldsHierarchy(c.Name, acc); err != nil {
		return nil, err
	}
	c.instanceFieldsCache = acc
	return acc, nil
}

// fillFieldsHierarchy recurses parent-first, never re-entering a class
// already present in acc, per spec 4.E.
func (ma *MethodArea) fillFieldsHierarchy(className string, acc *orderedMap[*orderedMap[string]]) error {
	if _, seen := acc.Get(className); seen {
		return nil
	}
	c, err := ma.Get(className)
	if err != nil {
		return err
	}
	if c.Parent != "" {
		if err := ma.fillFieldsHierarchy(c.Parent, acc); err != nil {
			return err
		}
	}
	own := newOrderedMap[string]()
	for _, f := range c.declaredFields {
		own.Set(f.Name, f.Desc)
	}
	acc.Set(className, own)
	return nil
}
