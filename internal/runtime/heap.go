package runtime

import (
	"sync"
	"sync/atomic"
)

// Heap is the process-global store of allocated objects, keyed by a
// monotonic non-zero handle (spec 3: "Heap object... addressed by an
// opaque, monotonically increasing handle starting at 1").
type Heap struct {
	nextHandle int32 // accessed only via atomic.AddInt32

	mu      sync.RWMutex
	objects map[int32]any // *Instance or *Array
}

var (
	globalHeap   *Heap
	globalHeapMu sync.Mutex
)

// InitHeap returns the process-wide Heap, creating it on first call. Unlike
// InitMethodArea, a second call is not an error: the heap has no observable
// per-call effect beyond vending the same singleton (documented open
// decision, see DESIGN.md).
func InitHeap() *Heap {
	globalHeapMu.Lock()
	defer globalHeapMu.Unlock()
	if globalHeap == nil {
		globalHeap = &Heap{objects: make(map[int32]any)}
	}
	return globalHeap
}

func (h *Heap) allocate(obj any) int32 {
	handle := atomic.AddInt32(&h.nextHandle, 1)
	h.mu.Lock()
	h.objects[handle] = obj
	h.mu.Unlock()
	return handle
}

// AllocateInstance stores a materialized Instance and returns its handle.
func (h *Heap) AllocateInstance(instance *Instance) int32 {
	return h.allocate(instance)
}

// AllocateArray allocates a zero-filled array of the given JVM array
// descriptor and length.
func (h *Heap) AllocateArray(className string, length int32) (int32, error) {
	if length < 0 {
		return 0, &InvalidArrayAccessError{Index: length}
	}
	arr := newArray(className, int(length))
	return h.allocate(arr), nil
}

// AllocateArrayWithValues allocates an array and seeds it from raw
// elemSize-wide slot groups, one group per element.
func (h *Heap) AllocateArrayWithValues(className string, values [][]int32) (int32, error) {
	arr := newArray(className, len(values))
	for i, v := range values {
		if err := arr.Set(int32(i), v); err != nil {
			return 0, err
		}
	}
	return h.allocate(arr), nil
}

func (h *Heap) get(handle int32) (any, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	obj, ok := h.objects[handle]
	return obj, ok
}

// GetInstance resolves handle to an *Instance, failing if it doesn't exist
// or names an array instead.
func (h *Heap) GetInstance(handle int32) (*Instance, error) {
	obj, ok := h.get(handle)
	if !ok {
		return nil, &InvalidObjectAccessError{Class: "<unknown>", Field: ""}
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, &InvalidObjectAccessError{Class: "<array>", Field: ""}
	}
	return inst, nil
}

// GetArray resolves handle to an *Array.
func (h *Heap) GetArray(handle int32) (*Array, error) {
	obj, ok := h.get(handle)
	if !ok {
		return nil, &InvalidArrayAccessError{Index: -1}
	}
	arr, ok := obj.(*Array)
	if !ok {
		return nil, &InvalidArrayAccessError{Index: -1}
	}
	return arr, nil
}

// GetFieldValue resolves the FieldValue for (handle, declaringClass, name):
// the instance's per-class buckets are walked in hierarchy order (parent
// first) up to declaringClass, and the most-derived definition of name
// found along the way wins.
func (h *Heap) GetFieldValue(handle int32, declaringClass, name string) (*FieldValue, error) {
	inst, err := h.GetInstance(handle)
	if err != nil {
		return nil, err
	}
	var found *FieldValue
	for _, cls := range inst.Fields.Keys() {
		if bucket, ok := inst.Fields.Get(cls); ok {
			if fv, ok := bucket.Get(name); ok {
				found = fv
			}
		}
		if cls == declaringClass {
			if found != nil {
				return found, nil
			}
			break
		}
	}
	return nil, &InvalidObjectAccessError{Class: declaringClass, Field: name}
}

// GetArrayValue reads one element's slots from the array at handle.
func (h *Heap) GetArrayValue(handle int32, index int32) ([]int32, error) {
	arr, err := h.GetArray(handle)
	if err != nil {
		return nil, err
	}
	return arr.Get(index)
}
