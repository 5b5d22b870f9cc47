package interp

import "github.com/cogwheel/jayvee/internal/classfile"

// execConstants handles opcodes 0..20: push the named literal, pc+=1 plus
// any immediate operand (spec 4.F.1).
func execConstants(op byte, f *Frame) error {
	switch op {
	case opNop:
		f.PC++
	case opAconstNull:
		if err := f.Stack.Push(0); err != nil {
			return err
		}
		f.PC++
	case opIconstM1, opIconst0, 4, 5, 6, 7, opIconst5:
		if err := f.Stack.Push(int32(op) - int32(opIconst0)); err != nil {
			return err
		}
		f.PC++
	case opLconst0, opLconst1:
		if err := f.PushLong(int64(op) - opLconst0); err != nil {
			return err
		}
		f.PC++
	case opFconst0, 12, opFconst2:
		if err := f.PushFloat(float32(int(op) - opFconst0)); err != nil {
			return err
		}
		f.PC++
	case opDconst0, opDconst1:
		if err := f.PushDouble(float64(int(op) - opDconst0)); err != nil {
			return err
		}
		f.PC++
	case opBipush:
		v := int32(int8(f.Code[f.PC+1]))
		if err := f.Stack.Push(v); err != nil {
			return err
		}
		f.PC += 2
	case opSipush:
		v := int32(int16(uint16(f.Code[f.PC+1])<<8 | uint16(f.Code[f.PC+2])))
		if err := f.Stack.Push(v); err != nil {
			return err
		}
		f.PC += 3
	case opLdc:
		idx := uint16(f.Code[f.PC+1])
		if err := pushConstant(f, idx); err != nil {
			return err
		}
		f.PC += 2
	case opLdcW, opLdc2W:
		idx := uint16(f.Code[f.PC+1])<<8 | uint16(f.Code[f.PC+2])
		if err := pushConstant(f, idx); err != nil {
			return err
		}
		f.PC += 3
	default:
		return &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}
	return nil
}

// pushConstant resolves a constant-pool entry and pushes its value, sized
// by category (spec 4.F.1: "pool entry kind determines category").
func pushConstant(f *Frame, idx uint16) error {
	e, err := f.ConstantPool.Get(idx)
	if err != nil {
		return err
	}
	switch e.Tag {
	case classfile.TagInteger:
		return f.Stack.Push(e.Int32)
	case classfile.TagFloat:
		return f.PushFloat(e.Float32)
	case classfile.TagLong:
		return f.PushLong(e.Int64)
	case classfile.TagDouble:
		return f.PushDouble(e.Float64)
	case classfile.TagString:
		// String interning is an external collaborator (spec 4.F.1); the
		// pushed "reference" is the constant-pool index itself, a
		// deterministic non-zero stand-in with no interning behind it.
		return f.Stack.Push(int32(idx))
	default:
		return &classfile.InvalidAttrError{Index: idx, Want: "loadable constant", Got: e.Tag.String()}
	}
}
