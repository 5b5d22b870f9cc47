package runtime

import "encoding/binary"

// Instance is a heap object backing a non-array class instance: its
// fields, bucketed per declaring class so that a subclass and its parent
// can each declare a field of the same name without collision (spec 3:
// "Heap object... instance fields keyed by declaring class").
type Instance struct {
	ClassName string
	Fields    *orderedMap[*orderedMap[*FieldValue]]
}

// Field looks up the FieldValue declared by declaringClass, walking no
// further; callers resolve which class in the hierarchy declared a name
// before calling this (spec 4.E: field access resolves through the
// owning class's flattened layout, not by searching here).
func (o *Instance) Field(declaringClass, name string) (*FieldValue, error) {
	bucket, ok := o.Fields.Get(declaringClass)
	if !ok {
		return nil, &InvalidObjectAccessError{Class: declaringClass, Field: name}
	}
	fv, ok := bucket.Get(name)
	if !ok {
		return nil, &InvalidObjectAccessError{Class: declaringClass, Field: name}
	}
	return fv, nil
}

// Array is a heap object backing a JVM array: a contiguous run of
// ByteWidth-wide elements (spec 4.E: "Array{element_tag, bytes}"), one
// entry per element. ElemSize is the stack/local slot count an element
// occupies once loaded (1 for everything except long/double, which take
// two, same as a FieldValue); ByteWidth is the true storage width (1 for
// [B [Z, 2 for [C [S, 4 for [I [F and references, 8 for [J [D) that makes
// sub-slot element sizes representable instead of collapsing to [I.
type Array struct {
	ClassName  string // "[I", "[Ljava/lang/String;", ...
	ElementTag byte   // descriptor char after '[': B,C,D,F,I,J,L,S,Z,[
	ElemSize   int    // slots per loaded element: 1 or 2
	ByteWidth  int    // per-element storage width in bytes: 1, 2, 4, or 8
	Length     int
	data       []byte
}

func newArray(className string, length int) *Array {
	return &Array{
		ClassName:  className,
		ElementTag: arrayElementTag(className),
		ElemSize:   arrayElementSlots(className),
		ByteWidth:  arrayElementSize(className),
		Length:     length,
		data:       make([]byte, length*arrayElementSize(className)),
	}
}

// Get reads index's element and expands it to ElemSize i32 slots. Elements
// narrower than a full slot are extended per spec 4.E: "for element sizes
// 1..4 the payload is sign-extended into one i32 slot" — except [C, whose
// element is an unsigned 16-bit char and so is zero-extended instead.
func (a *Array) Get(index int32) ([]int32, error) {
	if index < 0 || int(index) >= a.Length {
		return nil, &InvalidArrayAccessError{Index: index}
	}
	start := int(index) * a.ByteWidth
	raw := a.data[start : start+a.ByteWidth]

	if a.ElemSize == 2 {
		low := int32(binary.BigEndian.Uint32(raw[0:4]))
		high := int32(binary.BigEndian.Uint32(raw[4:8]))
		return []int32{low, high}, nil
	}

	switch a.ByteWidth {
	case 1:
		return []int32{int32(int8(raw[0]))}, nil
	case 2:
		v := binary.BigEndian.Uint16(raw)
		if a.ElementTag == 'C' {
			return []int32{int32(v)}, nil
		}
		return []int32{int32(int16(v))}, nil
	default: // 4: I, F, references
		return []int32{int32(binary.BigEndian.Uint32(raw))}, nil
	}
}

// Set writes index's element from ElemSize i32 slots, truncating to the
// array's ByteWidth (spec 4.E's *astore opcodes narrow the popped int32
// back down to the element's declared width before storing).
func (a *Array) Set(index int32, v []int32) error {
	if index < 0 || int(index) >= a.Length {
		return &InvalidArrayAccessError{Index: index}
	}
	if len(v) != a.ElemSize {
		return &InvalidArrayEntrySizeError{Size: len(v)}
	}
	start := int(index) * a.ByteWidth
	raw := a.data[start : start+a.ByteWidth]

	if a.ElemSize == 2 {
		binary.BigEndian.PutUint32(raw[0:4], uint32(v[0]))
		binary.BigEndian.PutUint32(raw[4:8], uint32(v[1]))
		return nil
	}

	switch a.ByteWidth {
	case 1:
		raw[0] = byte(v[0])
	case 2:
		binary.BigEndian.PutUint16(raw, uint16(v[0]))
	default:
		binary.BigEndian.PutUint32(raw, uint32(v[0]))
	}
	return nil
}
