package classfile

import (
	"encoding/binary"
	"math"
)

// Reader decodes big-endian primitives from an Arena. It never copies: each
// Read* call borrows exactly as many bytes as it needs and advances the
// arena cursor. Grounded on jdiag's parser.BinaryReader, adapted from a
// bufio.Reader-backed cursor to an arena-backed one so borrowed slices can
// outlive the call (bytecode, UTF8 text, raw attribute ranges all need
// this).
type Reader struct {
	arena *Arena
}

// NewReader wraps an Arena for primitive decoding.
func NewReader(arena *Arena) *Reader {
	return &Reader{arena: arena}
}

// Arena exposes the backing arena, e.g. so a caller can Peek at raw ranges
// (RuntimeVisibleAnnotations, AnnotationDefault) or read and reset the
// cursor offset.
func (r *Reader) Arena() *Arena {
	return r.arena
}

func (r *Reader) ReadU1() (uint8, error) {
	b, err := r.arena.Borrow(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadU2() (uint16, error) {
	b, err := r.arena.Borrow(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) ReadU4() (uint32, error) {
	b, err := r.arena.Borrow(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) ReadU8() (uint64, error) {
	b, err := r.arena.Borrow(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU1()
	return int8(v), err
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU2()
	return int16(v), err
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU4()
	return int32(v), err
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU8()
	return int64(v), err
}

func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU4()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// Borrow returns n bytes from the arena with the arena's lifetime, for
// bytecode / raw attribute ranges that must not be copied.
func (r *Reader) Borrow(n int) ([]byte, error) {
	return r.arena.Borrow(n)
}
