package interp

import "github.com/cogwheel/jayvee/internal/classfile"

// execFields handles the unlisted field-access group (178..181, see
// SPEC_FULL.md "OPEN QUESTION RESOLVED: field access opcodes"): resolve a
// FieldRef constant-pool entry to (class, name, category) and go through
// the method area's static-field table or the heap's per-instance field
// table.
func execFields(op byte, f *Frame, env *Env) error {
	idx := uint16(f.Code[f.PC+1])<<8 | uint16(f.Code[f.PC+2])
	className, fieldName, slots, err := resolveFieldRef(f.ConstantPool, idx)
	if err != nil {
		return err
	}

	switch op {
	case opGetstatic:
		c, err := env.MethodArea.Get(className)
		if err != nil {
			return err
		}
		fv, err := c.GetStatic(fieldName)
		if err != nil {
			return err
		}
		for _, v := range fv.Get() {
			if err := f.Stack.Push(v); err != nil {
				return err
			}
		}

	case opPutstatic:
		c, err := env.MethodArea.Get(className)
		if err != nil {
			return err
		}
		fv, err := c.GetStatic(fieldName)
		if err != nil {
			return err
		}
		v, err := popSlots(f, slots)
		if err != nil {
			return err
		}
		fv.Set(v)

	case opGetfield:
		ref, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		fv, err := env.Heap.GetFieldValue(ref, className, fieldName)
		if err != nil {
			return err
		}
		for _, v := range fv.Get() {
			if err := f.Stack.Push(v); err != nil {
				return err
			}
		}

	case opPutfield:
		v, err := popSlots(f, slots)
		if err != nil {
			return err
		}
		ref, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		fv, err := env.Heap.GetFieldValue(ref, className, fieldName)
		if err != nil {
			return err
		}
		fv.Set(v)

	default:
		return &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}

	f.PC += 3
	return nil
}

// popSlots pops n values and returns them in push order (bottom to top),
// matching FieldValue.Set's expected slot order.
func popSlots(f *Frame, n int) ([]int32, error) {
	v := make([]int32, n)
	for i := n - 1; i >= 0; i-- {
		val, err := f.Stack.Pop()
		if err != nil {
			return nil, err
		}
		v[i] = val
	}
	return v, nil
}

// resolveFieldRef follows a FieldRef entry to its declaring class name,
// field name, and slot count (1, or 2 for J/D descriptors).
func resolveFieldRef(cp *classfile.ConstantPool, idx uint16) (className, fieldName string, slots int, err error) {
	e, err := cp.Get(idx)
	if err != nil {
		return "", "", 0, err
	}
	className, err = cp.GetClassName(e.ClassIndex)
	if err != nil {
		return "", "", 0, err
	}
	nat, err := cp.Get(e.NatIndex)
	if err != nil {
		return "", "", 0, err
	}
	fieldName, err = cp.GetUtf8(nat.NatIndex)
	if err != nil {
		return "", "", 0, err
	}
	desc, err := cp.GetUtf8(nat.DescIndex)
	if err != nil {
		return "", "", 0, err
	}
	if len(desc) > 0 && (desc[0] == 'J' || desc[0] == 'D') {
		slots = 2
	} else {
		slots = 1
	}
	return className, fieldName, slots, nil
}
