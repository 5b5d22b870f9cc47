package classfile

// VerificationTypeInfo tags (JVMS 4.7.4): 0 Top, 1 Integer, 2 Float,
// 3 Double, 4 Long, 5 Null, 6 UninitializedThis, 7 Object (u16 cpool_index
// payload), 8 Uninitialized (u16 offset payload).
type VerificationType struct {
	Tag     byte
	Index   uint16 // tag 7: cpool index of the class
	Offset  uint16 // tag 8: offset of the `new` instruction
}

// StackMapFrame is one entry of a StackMapTable attribute, discriminated by
// the frame-byte tag per spec 3's table. Verification is not performed —
// this is parsed for completeness and left advisory, per spec 1's
// "verification of stack maps is not required."
type StackMapFrame struct {
	FrameType byte // raw frame byte, identifies the variant below

	OffsetDelta uint16

	// SameLocals1StackItem / SameLocals1StackItemExtended
	Stack []VerificationType

	// ChopFrame
	ChopCount int

	// AppendFrame
	Locals []VerificationType

	// FullFrame
	FullLocals []VerificationType
	FullStack  []VerificationType
}

// StackMapTableAttr is the `StackMapTable` attribute.
type StackMapTableAttr struct {
	Frames []StackMapFrame
}

func (*StackMapTableAttr) attrName() string { return "StackMapTable" }

func parseStackMapTable(r *Reader) (*StackMapTableAttr, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	frames := make([]StackMapFrame, count)
	for i := range frames {
		f, err := parseStackMapFrame(r)
		if err != nil {
			return nil, err
		}
		frames[i] = f
	}
	return &StackMapTableAttr{Frames: frames}, nil
}

// parseStackMapFrame implements the tag-range discrimination per spec 3 and
// JVMS 4.7.4 directly, sidestepping the two ambiguities spec 9 calls out:
// SameLocals1StackItem's offset_delta is `frame_byte - 64` (never a
// freshly-read u16), and FullFrame's stack_count verification types are
// read into FullStack (never left empty).
func parseStackMapFrame(r *Reader) (StackMapFrame, error) {
	tagByte, err := r.ReadU1()
	if err != nil {
		return StackMapFrame{}, err
	}
	tag := int(tagByte)
	f := StackMapFrame{FrameType: tagByte}

	switch {
	case tag <= 63: // SameFrame
		f.OffsetDelta = uint16(tag)

	case tag <= 127: // SameLocals1StackItem
		f.OffsetDelta = uint16(tag - 64)
		v, err := parseVerificationType(r)
		if err != nil {
			return StackMapFrame{}, err
		}
		f.Stack = []VerificationType{v}

	case tag == 247: // SameLocals1StackItemExtended
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		f.OffsetDelta = delta
		v, err := parseVerificationType(r)
		if err != nil {
			return StackMapFrame{}, err
		}
		f.Stack = []VerificationType{v}

	case tag >= 248 && tag <= 250: // ChopFrame, k = 251 - tag
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		f.OffsetDelta = delta
		f.ChopCount = 251 - tag

	case tag == 251: // SameFrameExtended
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		f.OffsetDelta = delta

	case tag >= 252 && tag <= 254: // AppendFrame, k = tag - 251
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		f.OffsetDelta = delta
		k := tag - 251
		locals := make([]VerificationType, k)
		for i := range locals {
			v, err := parseVerificationType(r)
			if err != nil {
				return StackMapFrame{}, err
			}
			locals[i] = v
		}
		f.Locals = locals

	case tag == 255: // FullFrame
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		f.OffsetDelta = delta

		localCount, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		locals := make([]VerificationType, localCount)
		for i := range locals {
			v, err := parseVerificationType(r)
			if err != nil {
				return StackMapFrame{}, err
			}
			locals[i] = v
		}
		f.FullLocals = locals

		stackCount, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		stack := make([]VerificationType, stackCount)
		for i := range stack {
			v, err := parseVerificationType(r)
			if err != nil {
				return StackMapFrame{}, err
			}
			stack[i] = v
		}
		f.FullStack = stack

	default:
		// tags 128..246 are reserved/unused by the spec; treat as SameFrame
		// shape with no payload rather than failing the whole decode, since
		// stack maps are advisory only.
		f.OffsetDelta = 0
	}

	return f, nil
}

func parseVerificationType(r *Reader) (VerificationType, error) {
	tagByte, err := r.ReadU1()
	if err != nil {
		return VerificationType{}, err
	}
	v := VerificationType{Tag: tagByte}
	switch tagByte {
	case 7: // Object
		idx, err := r.ReadU2()
		if err != nil {
			return VerificationType{}, err
		}
		v.Index = idx
	case 8: // Uninitialized
		off, err := r.ReadU2()
		if err != nil {
			return VerificationType{}, err
		}
		v.Offset = off
	}
	return v, nil
}
