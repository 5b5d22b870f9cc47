package interp

// execLoads handles opcodes 21..53: push a local's value (1-byte index
// operand, or an embedded _0../_3 index), or pop (array_ref, index) and
// push an array element (spec 4.F.2).
func execLoads(op byte, f *Frame, env *Env) error {
	switch {
	case op == opIload || op == opFload || op == opAload:
		idx := int(f.Code[f.PC+1])
		if err := f.Stack.Push(f.Locals[idx]); err != nil {
			return err
		}
		f.PC += 2
	case op == opLload:
		idx := int(f.Code[f.PC+1])
		if err := f.PushLong(f.GetLocalLong(idx)); err != nil {
			return err
		}
		f.PC += 2
	case op == opDload:
		idx := int(f.Code[f.PC+1])
		if err := f.PushDouble(f.GetLocalDouble(idx)); err != nil {
			return err
		}
		f.PC += 2

	case op >= opIload0 && op <= opIload0+3:
		if err := f.Stack.Push(f.Locals[op-opIload0]); err != nil {
			return err
		}
		f.PC++
	case op >= opFload0 && op <= opFload0+3:
		if err := f.Stack.Push(f.Locals[op-opFload0]); err != nil {
			return err
		}
		f.PC++
	case op >= opAload0 && op <= opAload0+3:
		if err := f.Stack.Push(f.Locals[op-opAload0]); err != nil {
			return err
		}
		f.PC++
	case op >= opLload0 && op <= opLload0+3:
		if err := f.PushLong(f.GetLocalLong(int(op - opLload0))); err != nil {
			return err
		}
		f.PC++
	case op >= opDload0 && op <= opDload0+3:
		if err := f.PushDouble(f.GetLocalDouble(int(op - opDload0))); err != nil {
			return err
		}
		f.PC++

	case op == opIaload, op == opFaload, op == opAaload, op == opBaload, op == opCaload, op == opSaload:
		v, err := popArrayElement32(f, env)
		if err != nil {
			return err
		}
		if err := f.Stack.Push(v); err != nil {
			return err
		}
		f.PC++
	case op == opLaload, op == opDaload:
		v, err := popArrayElement64(f, env)
		if err != nil {
			return err
		}
		if err := f.Stack.Push(int32(uint32(v))); err != nil {
			return err
		}
		if err := f.Stack.Push(int32(uint32(v >> 32))); err != nil {
			return err
		}
		f.PC++

	default:
		return &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}
	return nil
}

// popArrayElement32 pops (array_ref, index) and fetches a single-slot
// element via the heap.
func popArrayElement32(f *Frame, env *Env) (int32, error) {
	index, err := f.Stack.Pop()
	if err != nil {
		return 0, err
	}
	ref, err := f.Stack.Pop()
	if err != nil {
		return 0, err
	}
	v, err := env.Heap.GetArrayValue(ref, index)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

// popArrayElement64 is popArrayElement32's category-2 counterpart,
// reassembling the two-slot element as (high<<32)|(low&0xffffffff).
func popArrayElement64(f *Frame, env *Env) (int64, error) {
	index, err := f.Stack.Pop()
	if err != nil {
		return 0, err
	}
	ref, err := f.Stack.Pop()
	if err != nil {
		return 0, err
	}
	v, err := env.Heap.GetArrayValue(ref, index)
	if err != nil {
		return 0, err
	}
	return (int64(v[1]) << 32) | (int64(v[0]) & 0xffffffff), nil
}
