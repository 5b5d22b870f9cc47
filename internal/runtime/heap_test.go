package runtime

import "testing"

func resetHeap() {
	globalHeapMu.Lock()
	globalHeap = nil
	globalHeapMu.Unlock()
}

func TestAllocateArrayZeroFilled(t *testing.T) {
	resetHeap()
	h := InitHeap()
	handle, err := h.AllocateArray("[I", 3)
	if err != nil {
		t.Fatalf("AllocateArray: %v", err)
	}
	if handle == 0 {
		t.Fatalf("handle must be non-zero")
	}
	v, err := h.GetArrayValue(handle, 1)
	if err != nil {
		t.Fatalf("GetArrayValue: %v", err)
	}
	if len(v) != 1 || v[0] != 0 {
		t.Errorf("GetArrayValue(1) = %v, want [0]", v)
	}
}

func TestAllocateArrayRejectsNegativeLength(t *testing.T) {
	resetHeap()
	h := InitHeap()
	if _, err := h.AllocateArray("[I", -1); err == nil {
		t.Fatalf("AllocateArray(-1) should fail")
	}
}

func TestAllocateArrayLongHasTwoSlotsPerElement(t *testing.T) {
	resetHeap()
	h := InitHeap()
	handle, err := h.AllocateArrayWithValues("[J", [][]int32{{0, 1}, {0, 2}})
	if err != nil {
		t.Fatalf("AllocateArrayWithValues: %v", err)
	}
	v, err := h.GetArrayValue(handle, 1)
	if err != nil {
		t.Fatalf("GetArrayValue: %v", err)
	}
	if len(v) != 2 || v[1] != 2 {
		t.Errorf("GetArrayValue(1) = %v, want [0 2]", v)
	}
}

func TestArrayOutOfBoundsAccess(t *testing.T) {
	resetHeap()
	h := InitHeap()
	handle, _ := h.AllocateArray("[B", 2)
	if _, err := h.GetArrayValue(handle, 5); err == nil {
		t.Fatalf("GetArrayValue(5) on length-2 array should fail")
	}
}

func TestHandlesAreMonotonicAndDistinct(t *testing.T) {
	resetHeap()
	h := InitHeap()
	h1, _ := h.AllocateArray("[I", 1)
	h2, _ := h.AllocateArray("[I", 1)
	if h1 == h2 {
		t.Fatalf("two allocations returned the same handle %d", h1)
	}
}

func TestByteArraySignExtendsOnLoad(t *testing.T) {
	resetHeap()
	h := InitHeap()
	handle, err := h.AllocateArrayWithValues("[B", [][]int32{{200}})
	if err != nil {
		t.Fatalf("AllocateArrayWithValues: %v", err)
	}
	v, err := h.GetArrayValue(handle, 0)
	if err != nil {
		t.Fatalf("GetArrayValue: %v", err)
	}
	if v[0] != -56 {
		t.Errorf("GetArrayValue(0) = %d, want -56 (200 truncated to byte then sign-extended)", v[0])
	}
}

func TestCharArrayZeroExtendsOnLoad(t *testing.T) {
	resetHeap()
	h := InitHeap()
	handle, err := h.AllocateArrayWithValues("[C", [][]int32{{70000}})
	if err != nil {
		t.Fatalf("AllocateArrayWithValues: %v", err)
	}
	v, err := h.GetArrayValue(handle, 0)
	if err != nil {
		t.Fatalf("GetArrayValue: %v", err)
	}
	if v[0] != 4464 {
		t.Errorf("GetArrayValue(0) = %d, want 4464 (70000 truncated to u16, zero-extended)", v[0])
	}
}

func TestShortArraySignExtendsOnLoad(t *testing.T) {
	resetHeap()
	h := InitHeap()
	handle, err := h.AllocateArrayWithValues("[S", [][]int32{{40000}})
	if err != nil {
		t.Fatalf("AllocateArrayWithValues: %v", err)
	}
	v, err := h.GetArrayValue(handle, 0)
	if err != nil {
		t.Fatalf("GetArrayValue: %v", err)
	}
	if v[0] != -25536 {
		t.Errorf("GetArrayValue(0) = %d, want -25536 (40000 truncated to u16 then sign-extended)", v[0])
	}
}

func TestGetFieldValueThroughHeap(t *testing.T) {
	resetHeap()
	h := InitHeap()
	inst := &Instance{ClassName: "Point", Fields: newOrderedMap[*orderedMap[*FieldValue]]()}
	bucket := newOrderedMap[*FieldValue]()
	bucket.Set("x", NewFieldValue("I"))
	inst.Fields.Set("Point", bucket)

	handle := h.AllocateInstance(inst)
	fv, err := h.GetFieldValue(handle, "Point", "x")
	if err != nil {
		t.Fatalf("GetFieldValue: %v", err)
	}
	fv.Set([]int32{7})
	again, _ := h.GetFieldValue(handle, "Point", "x")
	if got := again.Get(); got[0] != 7 {
		t.Errorf("Get() = %v, want [7]", got)
	}
}
