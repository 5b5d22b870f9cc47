package interp

import "math"

// execComparisons handles opcodes 148..166: LCMP/xCMPy push a three-way
// comparison result, the unary and binary *IF* family branch by a signed
// 16-bit offset read from pc+1,pc+2 (spec 4.F.7).
func execComparisons(op byte, f *Frame) error {
	switch op {
	case opLcmp:
		b, err := f.PopLong()
		if err != nil {
			return err
		}
		a, err := f.PopLong()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(cmp64(a, b)); err != nil {
			return err
		}
		f.PC++
		return nil

	case opFcmpl, opFcmpg:
		b, err := f.PopFloat()
		if err != nil {
			return err
		}
		a, err := f.PopFloat()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(floatCmp(float64(a), float64(b), op == opFcmpg)); err != nil {
			return err
		}
		f.PC++
		return nil

	case opDcmpl, opDcmpg:
		b, err := f.PopDouble()
		if err != nil {
			return err
		}
		a, err := f.PopDouble()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(floatCmp(a, b, op == opDcmpg)); err != nil {
			return err
		}
		f.PC++
		return nil
	}

	return execBranches(op, f)
}

func cmp64(a, b int64) int32 {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// floatCmp returns the L-variant's -1 or the G-variant's 1 when either
// operand is NaN, otherwise the sign of a-b.
func floatCmp(a, b float64, isG bool) int32 {
	if math.IsNaN(a) || math.IsNaN(b) {
		if isG {
			return 1
		}
		return -1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func branchOffset(f *Frame) int16 {
	return int16(uint16(f.Code[f.PC+1])<<8 | uint16(f.Code[f.PC+2]))
}

func execBranches(op byte, f *Frame) error {
	switch op {
	case opIfeq, opIfne, opIflt, opIfge, opIfgt, opIfle:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if unaryPredicate(op, v) {
			f.StepPC(branchOffset(f))
		} else {
			f.PC += 3
		}
		return nil

	case opIfIcmpeq, opIfIcmpne, opIfIcmplt, opIfIcmpge, opIfIcmpgt, opIfIcmple, opIfAcmpeq, opIfAcmpne:
		b, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		a, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if binaryPredicate(op, a, b) {
			f.StepPC(branchOffset(f))
		} else {
			f.PC += 3
		}
		return nil

	default:
		return &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}
}

func unaryPredicate(op byte, v int32) bool {
	switch op {
	case opIfeq:
		return v == 0
	case opIfne:
		return v != 0
	case opIflt:
		return v < 0
	case opIfge:
		return v >= 0
	case opIfgt:
		return v > 0
	case opIfle:
		return v <= 0
	}
	panic("unreachable unaryPredicate")
}

func binaryPredicate(op byte, a, b int32) bool {
	switch op {
	case opIfIcmpeq, opIfAcmpeq:
		return a == b
	case opIfIcmpne, opIfAcmpne:
		return a != b
	case opIfIcmplt:
		return a < b
	case opIfIcmpge:
		return a >= b
	case opIfIcmpgt:
		return a > b
	case opIfIcmple:
		return a <= b
	}
	panic("unreachable binaryPredicate")
}
