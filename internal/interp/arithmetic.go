package interp

// execArithmetic handles opcodes 96..132: binary/unary arithmetic,
// bitwise ops, shifts, and IINC (spec 4.F.5). Binary operators pop (a, b)
// in that stack order (b on top) and push the result. Shift counts are
// always plain i32 operands, masked per spec ("ISHL/ISHR/IUSHR mask by
// 0x1f; LSHL/LSHR/LUSHR mask by 0x3f").
func execArithmetic(op byte, f *Frame) error {
	switch op {
	case opIadd, opIsub, opImul, opIdiv, opIrem, opIand, opIor, opIxor, opIshl, opIshr, opIushr:
		b, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		a, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		v, err := intBinOp(op, a, b)
		if err != nil {
			return err
		}
		if err := f.Stack.Push(v); err != nil {
			return err
		}
		f.PC++

	case opLshl, opLshr, opLushr:
		shift, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		a, err := f.PopLong()
		if err != nil {
			return err
		}
		if err := f.PushLong(longShiftOp(op, a, shift)); err != nil {
			return err
		}
		f.PC++

	case opLadd, opLsub, opLmul, opLdiv, opLrem, opLand, opLor, opLxor:
		b, err := f.PopLong()
		if err != nil {
			return err
		}
		a, err := f.PopLong()
		if err != nil {
			return err
		}
		v, err := longBinOp(op, a, b)
		if err != nil {
			return err
		}
		if err := f.PushLong(v); err != nil {
			return err
		}
		f.PC++

	case opFadd, opFsub, opFmul, opFdiv, opFrem:
		b, err := f.PopFloat()
		if err != nil {
			return err
		}
		a, err := f.PopFloat()
		if err != nil {
			return err
		}
		if err := f.PushFloat(floatBinOp(op, a, b)); err != nil {
			return err
		}
		f.PC++

	case opDadd, opDsub, opDmul, opDdiv, opDrem:
		b, err := f.PopDouble()
		if err != nil {
			return err
		}
		a, err := f.PopDouble()
		if err != nil {
			return err
		}
		if err := f.PushDouble(doubleBinOp(op, a, b)); err != nil {
			return err
		}
		f.PC++

	case opIneg:
		a, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(-a); err != nil {
			return err
		}
		f.PC++
	case opLneg:
		a, err := f.PopLong()
		if err != nil {
			return err
		}
		if err := f.PushLong(-a); err != nil {
			return err
		}
		f.PC++
	case opFneg:
		a, err := f.PopFloat()
		if err != nil {
			return err
		}
		if err := f.PushFloat(-a); err != nil {
			return err
		}
		f.PC++
	case opDneg:
		a, err := f.PopDouble()
		if err != nil {
			return err
		}
		if err := f.PushDouble(-a); err != nil {
			return err
		}
		f.PC++

	case opIinc:
		idx := int(f.Code[f.PC+1])
		c := int32(int8(f.Code[f.PC+2]))
		f.Locals[idx] += c
		f.PC += 3

	default:
		return &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}
	return nil
}

func intBinOp(op byte, a, b int32) (int32, error) {
	switch op {
	case opIadd:
		return a + b, nil
	case opIsub:
		return a - b, nil
	case opImul:
		return a * b, nil
	case opIdiv:
		if b == 0 {
			return 0, &ArithmeticError{Op: "idiv"}
		}
		return a / b, nil
	case opIrem:
		if b == 0 {
			return 0, &ArithmeticError{Op: "irem"}
		}
		return a % b, nil
	case opIand:
		return a & b, nil
	case opIor:
		return a | b, nil
	case opIxor:
		return a ^ b, nil
	case opIshl:
		return a << (uint32(b) & 0x1f), nil
	case opIshr:
		return a >> (uint32(b) & 0x1f), nil
	case opIushr:
		return int32(uint32(a) >> (uint32(b) & 0x1f)), nil
	}
	panic("unreachable intBinOp")
}

func longBinOp(op byte, a, b int64) (int64, error) {
	switch op {
	case opLadd:
		return a + b, nil
	case opLsub:
		return a - b, nil
	case opLmul:
		return a * b, nil
	case opLdiv:
		if b == 0 {
			return 0, &ArithmeticError{Op: "ldiv"}
		}
		return a / b, nil
	case opLrem:
		if b == 0 {
			return 0, &ArithmeticError{Op: "lrem"}
		}
		return a % b, nil
	case opLand:
		return a & b, nil
	case opLor:
		return a | b, nil
	case opLxor:
		return a ^ b, nil
	}
	panic("unreachable longBinOp")
}

func longShiftOp(op byte, a int64, shift int32) int64 {
	switch op {
	case opLshl:
		return a << (uint32(shift) & 0x3f)
	case opLshr:
		return a >> (uint32(shift) & 0x3f)
	case opLushr:
		return int64(uint64(a) >> (uint32(shift) & 0x3f))
	}
	panic("unreachable longShiftOp")
}

func floatBinOp(op byte, a, b float32) float32 {
	switch op {
	case opFadd:
		return a + b
	case opFsub:
		return a - b
	case opFmul:
		return a * b
	case opFdiv:
		return a / b
	case opFrem:
		return float32(floatMod(float64(a), float64(b)))
	}
	panic("unreachable floatBinOp")
}

func doubleBinOp(op byte, a, b float64) float64 {
	switch op {
	case opDadd:
		return a + b
	case opDsub:
		return a - b
	case opDmul:
		return a * b
	case opDdiv:
		return a / b
	case opDrem:
		return floatMod(a, b)
	}
	panic("unreachable doubleBinOp")
}
