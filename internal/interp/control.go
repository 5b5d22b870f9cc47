package interp

import "math"

// execControl handles the unlisted ninth group needed for the executor
// loop to terminate (see SPEC_FULL.md "OPEN QUESTION RESOLVED: frame
// termination"): GOTO (167) and the six *RETURN opcodes (172..177).
// Returns true when the frame should be popped, with its return slots.
func execControl(op byte, f *Frame) (done bool, returned []int32, err error) {
	switch op {
	case opGoto:
		f.StepPC(branchOffset(f))
		return false, nil, nil

	case opIreturn, opFreturn, opAreturn:
		v, err := f.Stack.Pop()
		if err != nil {
			return false, nil, err
		}
		return true, []int32{v}, nil

	case opLreturn:
		v, err := f.PopLong()
		if err != nil {
			return false, nil, err
		}
		return true, []int32{int32(uint32(v)), int32(uint32(v >> 32))}, nil

	case opDreturn:
		v, err := f.PopDouble()
		if err != nil {
			return false, nil, err
		}
		bits := int64(math.Float64bits(v))
		return true, []int32{int32(uint32(bits)), int32(uint32(bits >> 32))}, nil

	case opReturn:
		return true, nil, nil

	default:
		return false, nil, &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}
}
