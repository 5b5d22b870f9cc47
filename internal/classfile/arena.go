package classfile

// Arena owns the raw bytes of a decoded class file. Every slice handed out
// by Borrow points directly into this buffer, so decoded strings, bytecode,
// and raw attribute ranges never get their own heap allocation: the arena
// is the single owner, the ClassFile (and everything reachable from it) is
// a collection of borrows with the arena's lifetime.
type Arena struct {
	buf    []byte
	cursor int
}

// NewArena wraps buf as the backing store for one ClassFile decode. The
// caller must not mutate buf afterwards.
func NewArena(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// Len reports the total size of the backing buffer.
func (a *Arena) Len() int {
	return len(a.buf)
}

// Remaining reports how many bytes are left to borrow.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.cursor
}

// Offset reports the current cursor position.
func (a *Arena) Offset() int {
	return a.cursor
}

// Borrow returns the next n bytes of the arena and advances the cursor.
// The returned slice aliases the arena's backing array.
func (a *Arena) Borrow(n int) ([]byte, error) {
	if n < 0 || n > a.Remaining() {
		return nil, &IoError{Offset: a.cursor, Requested: n, Available: a.Remaining()}
	}
	b := a.buf[a.cursor : a.cursor+n]
	a.cursor += n
	return b, nil
}

// Peek returns the next n bytes without advancing the cursor.
func (a *Arena) Peek(n int) ([]byte, error) {
	if n < 0 || n > a.Remaining() {
		return nil, &IoError{Offset: a.cursor, Requested: n, Available: a.Remaining()}
	}
	return a.buf[a.cursor : a.cursor+n], nil
}

// Seek moves the cursor to an absolute offset, used to realign the cursor
// to a recognized attribute's declared end.
func (a *Arena) Seek(offset int) error {
	if offset < 0 || offset > len(a.buf) {
		return &IoError{Offset: a.cursor, Requested: offset - a.cursor, Available: a.Remaining()}
	}
	a.cursor = offset
	return nil
}

// Skip advances the cursor by n bytes without returning them. Unknown
// attributes do not go through it: parseAttribute borrows their bytes so
// the RawAttr can keep them.
func (a *Arena) Skip(n int) error {
	return a.Seek(a.cursor + n)
}
