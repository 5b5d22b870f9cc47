package interp

import "math"

// floatMod implements JVMS float/double remainder, which is the
// truncating-division remainder (like C's fmod), not the IEEE 754
// remainder operation: math.Mod gives a result with the sign of the
// dividend.
func floatMod(a, b float64) float64 {
	return math.Mod(a, b)
}

// execConversions handles opcodes 133..147: widen/narrow/bit-cast between
// the four numeric categories (spec 4.F.6). All advance pc by 1.
func execConversions(op byte, f *Frame) error {
	switch op {
	case opI2l:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if err := f.PushLong(int64(v)); err != nil {
			return err
		}
	case opI2f:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if err := f.PushFloat(float32(v)); err != nil {
			return err
		}
	case opI2d:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if err := f.PushDouble(float64(v)); err != nil {
			return err
		}
	case opI2b:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(int32(int8(v))); err != nil {
			return err
		}
	case opI2c:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(int32(uint16(v))); err != nil {
			return err
		}
	case opI2s:
		v, err := f.Stack.Pop()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(int32(int16(v))); err != nil {
			return err
		}

	case opL2i:
		v, err := f.PopLong()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(int32(v)); err != nil {
			return err
		}
	case opL2f:
		v, err := f.PopLong()
		if err != nil {
			return err
		}
		if err := f.PushFloat(float32(v)); err != nil {
			return err
		}
	case opL2d:
		v, err := f.PopLong()
		if err != nil {
			return err
		}
		if err := f.PushDouble(float64(v)); err != nil {
			return err
		}

	case opF2i:
		v, err := f.PopFloat()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(float32ToInt32(v)); err != nil {
			return err
		}
	case opF2l:
		v, err := f.PopFloat()
		if err != nil {
			return err
		}
		if err := f.PushLong(float32ToInt64(v)); err != nil {
			return err
		}
	case opF2d:
		v, err := f.PopFloat()
		if err != nil {
			return err
		}
		if err := f.PushDouble(float64(v)); err != nil {
			return err
		}

	case opD2i:
		v, err := f.PopDouble()
		if err != nil {
			return err
		}
		if err := f.Stack.Push(float64ToInt32(v)); err != nil {
			return err
		}
	case opD2l:
		v, err := f.PopDouble()
		if err != nil {
			return err
		}
		if err := f.PushLong(float64ToInt64(v)); err != nil {
			return err
		}
	case opD2f:
		v, err := f.PopDouble()
		if err != nil {
			return err
		}
		if err := f.PushFloat(float32(v)); err != nil {
			return err
		}

	default:
		return &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}
	f.PC++
	return nil
}

// float32ToInt32 rounds toward zero, maps NaN to 0 and out-of-range
// values to the extremes (spec 4.F.6: "F2I/F2L... NaN -> 0; +-inf ->
// extremes").
func float32ToInt32(v float32) int32 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func float32ToInt64(v float32) int64 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	if v <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(v)
}

func float64ToInt32(v float64) int32 {
	if math.IsNaN(v) {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func float64ToInt64(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	if v <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(v)
}
