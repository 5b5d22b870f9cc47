package interp

import (
	"math"

	"github.com/cogwheel/jayvee/internal/classfile"
	"github.com/cogwheel/jayvee/internal/runtime"
)

// Frame is one method activation: program counter, optional saved ex_pc for
// a future invoke-then-resume path, a fixed-size local-variable array, a
// bounded operand stack, the method's bytecode (shared, never copied), and
// the owning class name (spec 3: "Stack frame").
type Frame struct {
	PC   int
	ExPC *int

	Locals []int32
	Stack  *Stack

	Code         []byte
	ClassName    string
	ConstantPool *classfile.ConstantPool
}

// NewFrame seeds a frame from a method's Code attribute. Native/abstract
// methods have no Code and cannot be executed directly (spec 7:
// Runtime::MissingCodeContext).
func NewFrame(method *classfile.Method, className string, cp *classfile.ConstantPool) (*Frame, error) {
	if method.Code == nil {
		return nil, runtime.ErrMissingCodeContext
	}
	return &Frame{
		Locals:       make([]int32, method.Code.MaxLocals),
		Stack:        NewStack(int(method.Code.MaxStack)),
		Code:         method.Code.Code,
		ClassName:    className,
		ConstantPool: cp,
	}, nil
}

// StepPC advances pc by a signed displacement (spec 4.F: "step_pc(delta:
// i16) supports signed displacement").
func (f *Frame) StepPC(delta int16) {
	f.PC += int(delta)
}

// StoreExPC saves the current pc for a future invoke-then-resume path
// (carried from original_source's store_ex_pc; unexercised since method
// invocation opcodes are out of scope).
func (f *Frame) StoreExPC() {
	pc := f.PC
	f.ExPC = &pc
}

// ResetExPC clears any saved ex_pc.
func (f *Frame) ResetExPC() {
	f.ExPC = nil
}

// PushLong pushes an i64 as two adjacent slots: low word first, high word
// on top (spec 4.F: "low word pushed first, high word on top").
func (f *Frame) PushLong(v int64) error {
	if err := f.Stack.Push(int32(uint32(v))); err != nil {
		return err
	}
	return f.Stack.Push(int32(uint32(v >> 32)))
}

// PopLong pops high then low and reassembles (high<<32)|(low&0xffffffff).
func (f *Frame) PopLong() (int64, error) {
	high, err := f.Stack.Pop()
	if err != nil {
		return 0, err
	}
	low, err := f.Stack.Pop()
	if err != nil {
		return 0, err
	}
	return (int64(high) << 32) | (int64(low) & 0xffffffff), nil
}

// PushDouble bit-casts v via Float64bits and delegates to PushLong.
func (f *Frame) PushDouble(v float64) error {
	return f.PushLong(int64(math.Float64bits(v)))
}

// PopDouble delegates to PopLong and bit-casts back via Float64frombits.
func (f *Frame) PopDouble() (float64, error) {
	bits, err := f.PopLong()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

// PushFloat bit-casts v via Float32bits and pushes a single slot.
func (f *Frame) PushFloat(v float32) error {
	return f.Stack.Push(int32(math.Float32bits(v)))
}

// PopFloat pops a single slot and bit-casts back via Float32frombits.
func (f *Frame) PopFloat() (float32, error) {
	v, err := f.Stack.Pop()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}

// GetLocalLong reads the category-2 local pair at (i, i+1) with the same
// low/high ordering as the operand stack.
func (f *Frame) GetLocalLong(i int) int64 {
	low, high := f.Locals[i], f.Locals[i+1]
	return (int64(high) << 32) | (int64(low) & 0xffffffff)
}

// SetLocalLong writes the category-2 local pair at (i, i+1).
func (f *Frame) SetLocalLong(i int, v int64) {
	f.Locals[i] = int32(uint32(v))
	f.Locals[i+1] = int32(uint32(v >> 32))
}

func (f *Frame) GetLocalDouble(i int) float64 {
	return math.Float64frombits(uint64(f.GetLocalLong(i)))
}

func (f *Frame) SetLocalDouble(i int, v float64) {
	f.SetLocalLong(i, int64(math.Float64bits(v)))
}

func (f *Frame) GetLocalFloat(i int) float32 {
	return math.Float32frombits(uint32(f.Locals[i]))
}

func (f *Frame) SetLocalFloat(i int, v float32) {
	f.Locals[i] = int32(math.Float32bits(v))
}

// FrameStack is the interpreter's explicit stack-of-frames, grounded on
// original_source's StackFrames type (add_frame/pop) rather than a bare
// slice (spec 4.F.8: "maintain a stack of frames").
type FrameStack struct {
	frames []*Frame
}

func NewFrameStack() *FrameStack { return &FrameStack{} }

func (fs *FrameStack) Push(f *Frame) { fs.frames = append(fs.frames, f) }

func (fs *FrameStack) Pop() (*Frame, error) {
	if len(fs.frames) == 0 {
		return nil, &EmptyStackError{}
	}
	f := fs.frames[len(fs.frames)-1]
	fs.frames = fs.frames[:len(fs.frames)-1]
	return f, nil
}

func (fs *FrameStack) Top() (*Frame, error) {
	if len(fs.frames) == 0 {
		return nil, &EmptyStackError{}
	}
	return fs.frames[len(fs.frames)-1], nil
}

func (fs *FrameStack) Empty() bool { return len(fs.frames) == 0 }
