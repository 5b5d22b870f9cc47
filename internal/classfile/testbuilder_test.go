package classfile

import (
	"bytes"
	"encoding/binary"
)

// classBuilder assembles raw class-file bytes by hand, the way these tests
// need to construct fixtures without a real javac-compiled .class file on
// disk.
type classBuilder struct {
	buf bytes.Buffer

	cpEntries [][]byte // already-encoded constant pool entries, in order
}

func newClassBuilder() *classBuilder {
	return &classBuilder{}
}

func (b *classBuilder) u1(v uint8)  { b.buf.WriteByte(v) }
func (b *classBuilder) u2(v uint16) { binary.Write(&b.buf, binary.BigEndian, v) }
func (b *classBuilder) u4(v uint32) { binary.Write(&b.buf, binary.BigEndian, v) }

// addUtf8 appends a Utf8 constant pool entry and returns its 1-based index.
func (b *classBuilder) addUtf8(s string) uint16 {
	var e bytes.Buffer
	e.WriteByte(byte(TagUtf8))
	binary.Write(&e, binary.BigEndian, uint16(len(s)))
	e.WriteString(s)
	b.cpEntries = append(b.cpEntries, e.Bytes())
	return uint16(len(b.cpEntries))
}

func (b *classBuilder) addClass(nameIdx uint16) uint16 {
	var e bytes.Buffer
	e.WriteByte(byte(TagClass))
	binary.Write(&e, binary.BigEndian, nameIdx)
	b.cpEntries = append(b.cpEntries, e.Bytes())
	return uint16(len(b.cpEntries))
}

func (b *classBuilder) addNameAndType(nameIdx, descIdx uint16) uint16 {
	var e bytes.Buffer
	e.WriteByte(byte(TagNameAndType))
	binary.Write(&e, binary.BigEndian, nameIdx)
	binary.Write(&e, binary.BigEndian, descIdx)
	b.cpEntries = append(b.cpEntries, e.Bytes())
	return uint16(len(b.cpEntries))
}

func (b *classBuilder) addInteger(v int32) uint16 {
	var e bytes.Buffer
	e.WriteByte(byte(TagInteger))
	binary.Write(&e, binary.BigEndian, v)
	b.cpEntries = append(b.cpEntries, e.Bytes())
	return uint16(len(b.cpEntries))
}

func (b *classBuilder) addLong(v int64) uint16 {
	var e bytes.Buffer
	e.WriteByte(byte(TagLong))
	binary.Write(&e, binary.BigEndian, v)
	b.cpEntries = append(b.cpEntries, e.Bytes())
	idx := uint16(len(b.cpEntries))
	b.cpEntries = append(b.cpEntries, nil) // reserved slot placeholder
	return idx
}

// memberSpec describes one field_info/method_info entry for the builder.
type memberSpec struct {
	flags uint16
	name  string
	desc  string
	code  *codeSpec
}

type codeSpec struct {
	maxStack  uint16
	maxLocals uint16
	bytecode  []byte
}

// build assembles a complete class file: major/minor, the accumulated
// constant pool, access flags, this/super, no interfaces, and the given
// fields/methods. The "Code" attribute name and member name/desc strings
// are interned into the pool automatically.
func (b *classBuilder) build(major, minor uint16, thisName, superName string, flags uint16, fields, methods []memberSpec) []byte {
	thisIdx := b.addClass(b.addUtf8(thisName))
	var superIdx uint16
	if superName != "" {
		superIdx = b.addClass(b.addUtf8(superName))
	}
	codeNameIdx := b.addUtf8("Code")

	// Pre-register every member's name/descriptor before serializing the
	// constant pool, since field_info/method_info reference them by index
	// and the pool must be fully known before it's written out.
	fieldIdxs := internMembers(b, fields)
	methodIdxs := internMembers(b, methods)

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, magic)
	binary.Write(&out, binary.BigEndian, minor)
	binary.Write(&out, binary.BigEndian, major)

	// constant pool: count = len(entries)+1 (1-based, slot 0 implicit)
	binary.Write(&out, binary.BigEndian, uint16(len(b.cpEntries)+1))
	for _, e := range b.cpEntries {
		if e == nil {
			continue // reserved slot following Long/Double consumes no bytes
		}
		out.Write(e)
	}

	binary.Write(&out, binary.BigEndian, flags)
	binary.Write(&out, binary.BigEndian, thisIdx)
	binary.Write(&out, binary.BigEndian, superIdx)
	binary.Write(&out, binary.BigEndian, uint16(0)) // interfaces_count

	writeMembers(&out, fields, fieldIdxs, codeNameIdx)
	writeMembers(&out, methods, methodIdxs, codeNameIdx)

	binary.Write(&out, binary.BigEndian, uint16(0)) // class attributes_count

	return out.Bytes()
}

type memberIdx struct{ name, desc uint16 }

func internMembers(b *classBuilder, members []memberSpec) []memberIdx {
	idxs := make([]memberIdx, len(members))
	for i, m := range members {
		idxs[i] = memberIdx{name: b.addUtf8(m.name), desc: b.addUtf8(m.desc)}
	}
	return idxs
}

func writeMembers(out *bytes.Buffer, members []memberSpec, idxs []memberIdx, codeNameIdx uint16) {
	binary.Write(out, binary.BigEndian, uint16(len(members)))
	for i, m := range members {
		nameIdx, descIdx := idxs[i].name, idxs[i].desc
		binary.Write(out, binary.BigEndian, m.flags)
		binary.Write(out, binary.BigEndian, nameIdx)
		binary.Write(out, binary.BigEndian, descIdx)

		if m.code == nil {
			binary.Write(out, binary.BigEndian, uint16(0)) // attributes_count
			continue
		}

		binary.Write(out, binary.BigEndian, uint16(1)) // attributes_count
		binary.Write(out, binary.BigEndian, codeNameIdx)

		var body bytes.Buffer
		binary.Write(&body, binary.BigEndian, m.code.maxStack)
		binary.Write(&body, binary.BigEndian, m.code.maxLocals)
		binary.Write(&body, binary.BigEndian, uint32(len(m.code.bytecode)))
		body.Write(m.code.bytecode)
		binary.Write(&body, binary.BigEndian, uint16(0)) // exception_table_length
		binary.Write(&body, binary.BigEndian, uint16(0)) // attributes_count

		binary.Write(out, binary.BigEndian, uint32(body.Len()))
		out.Write(body.Bytes())
	}
}
