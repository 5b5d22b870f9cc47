package interp

// execStackOps handles opcodes 87..95: pure operand-stack shuffling, no
// heap or locals involved (spec 4.F.4). All advance pc by 1. Category-2
// values are not distinguished here from two category-1 slots; Java-valid
// bytecode never splits one with DUP_X1/DUP2, and this interpreter does
// not check for the violation (spec: "the spec does not require the
// interpreter to detect violations").
func execStackOps(op byte, f *Frame) error {
	s := f.Stack
	switch op {
	case opPop:
		if _, err := s.Pop(); err != nil {
			return err
		}
	case opPop2:
		if _, err := s.Pop(); err != nil {
			return err
		}
		if _, err := s.Pop(); err != nil {
			return err
		}
	case opDup:
		v, err := s.Peek()
		if err != nil {
			return err
		}
		if err := s.Push(v); err != nil {
			return err
		}
	case opDupX1:
		top, err := s.Pop()
		if err != nil {
			return err
		}
		second, err := s.Pop()
		if err != nil {
			return err
		}
		if err := s.Push(top); err != nil {
			return err
		}
		if err := s.Push(second); err != nil {
			return err
		}
		if err := s.Push(top); err != nil {
			return err
		}
	case opDupX2:
		top, err := s.Pop()
		if err != nil {
			return err
		}
		second, err := s.Pop()
		if err != nil {
			return err
		}
		third, err := s.Pop()
		if err != nil {
			return err
		}
		if err := s.Push(top); err != nil {
			return err
		}
		if err := s.Push(third); err != nil {
			return err
		}
		if err := s.Push(second); err != nil {
			return err
		}
		if err := s.Push(top); err != nil {
			return err
		}
	case opDup2:
		b, err := s.Pop()
		if err != nil {
			return err
		}
		a, err := s.Pop()
		if err != nil {
			return err
		}
		for _, v := range []int32{a, b, a, b} {
			if err := s.Push(v); err != nil {
				return err
			}
		}
	case opDup2X1:
		b, err := s.Pop()
		if err != nil {
			return err
		}
		a, err := s.Pop()
		if err != nil {
			return err
		}
		c, err := s.Pop()
		if err != nil {
			return err
		}
		for _, v := range []int32{a, b, c, a, b} {
			if err := s.Push(v); err != nil {
				return err
			}
		}
	case opDup2X2:
		b, err := s.Pop()
		if err != nil {
			return err
		}
		a, err := s.Pop()
		if err != nil {
			return err
		}
		d, err := s.Pop()
		if err != nil {
			return err
		}
		c, err := s.Pop()
		if err != nil {
			return err
		}
		for _, v := range []int32{a, b, c, d, a, b} {
			if err := s.Push(v); err != nil {
				return err
			}
		}
	case opSwap:
		top, err := s.Pop()
		if err != nil {
			return err
		}
		second, err := s.Pop()
		if err != nil {
			return err
		}
		if err := s.Push(top); err != nil {
			return err
		}
		if err := s.Push(second); err != nil {
			return err
		}
	default:
		return &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}
	f.PC++
	return nil
}
