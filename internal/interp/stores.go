package interp

// execStores handles opcodes 54..86: pop the value of the declared
// category and write it to a local or array element (spec 4.F.3).
func execStores(op byte, f *Frame, env *Env) error {
	switch {
	case op == opIstore || op == opFstore || op == opAstore:
		idx := int(f.Code[f.PC+1])
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		f.Locals[idx] = v
		f.PC += 2
	case op == opLstore:
		idx := int(f.Code[f.PC+1])
		v, err := f.PopLong()
		if err != nil {
			return err
		}
		f.SetLocalLong(idx, v)
		f.PC += 2
	case op == opDstore:
		idx := int(f.Code[f.PC+1])
		v, err := f.PopDouble()
		if err != nil {
			return err
		}
		f.SetLocalDouble(idx, v)
		f.PC += 2

	case op >= opIstore0 && op <= opIstore0+3:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		f.Locals[op-opIstore0] = v
		f.PC++
	case op >= opFstore0 && op <= opFstore0+3:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		f.Locals[op-opFstore0] = v
		f.PC++
	case op >= opAstore0 && op <= opAstore0+3:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		f.Locals[op-opAstore0] = v
		f.PC++
	case op >= opLstore0 && op <= opLstore0+3:
		v, err := f.PopLong()
		if err != nil {
			return err
		}
		f.SetLocalLong(int(op-opLstore0), v)
		f.PC++
	case op >= opDstore0 && op <= opDstore0+3:
		v, err := f.PopDouble()
		if err != nil {
			return err
		}
		f.SetLocalDouble(int(op-opDstore0), v)
		f.PC++

	case op == opIastore, op == opFastore, op == opAastore, op == opBastore, op == opCastore, op == opSastore:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if err := pushArrayElement32(f, env, v); err != nil {
			return err
		}
		f.PC++
	case op == opLastore, op == opDastore:
		high, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		low, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if err := pushArrayElement64(f, env, low, high); err != nil {
			return err
		}
		f.PC++

	default:
		return &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}
	return nil
}

// pushArrayElement32 pops (array_ref, index) and writes a single-slot
// element, value already popped by the caller.
func pushArrayElement32(f *Frame, env *Env, v int32) error {
	index, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	ref, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	arr, err := env.Heap.GetArray(ref)
	if err != nil {
		return err
	}
	return arr.Set(index, []int32{v})
}

// pushArrayElement64 is pushArrayElement32's category-2 counterpart.
func pushArrayElement64(f *Frame, env *Env, low, high int32) error {
	index, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	ref, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	arr, err := env.Heap.GetArray(ref)
	if err != nil {
		return err
	}
	return arr.Set(index, []int32{low, high})
}
