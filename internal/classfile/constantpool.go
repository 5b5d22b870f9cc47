package classfile

import (
	"fmt"
	"strings"
)

// Tag identifies the kind of a constant pool entry (JVMS Table 4.4-A).
type Tag byte

const (
	TagUtf8               Tag = 1
	TagInteger            Tag = 3
	TagFloat              Tag = 4
	TagLong               Tag = 5
	TagDouble             Tag = 6
	TagClass              Tag = 7
	TagString             Tag = 8
	TagFieldRef            Tag = 9
	TagMethodRef          Tag = 10
	TagInterfaceMethodRef Tag = 11
	TagNameAndType        Tag = 12
	TagMethodHandle       Tag = 15
	TagMethodType         Tag = 16
	TagDynamic            Tag = 17
	TagInvokeDynamic      Tag = 18
	TagModule             Tag = 19
	TagPackage            Tag = 20
)

func (t Tag) String() string {
	switch t {
	case TagUtf8:
		return "Utf8"
	case TagInteger:
		return "Integer"
	case TagFloat:
		return "Float"
	case TagLong:
		return "Long"
	case TagDouble:
		return "Double"
	case TagClass:
		return "Class"
	case TagString:
		return "String"
	case TagFieldRef:
		return "FieldRef"
	case TagMethodRef:
		return "MethodRef"
	case TagInterfaceMethodRef:
		return "InterfaceMethodRef"
	case TagNameAndType:
		return "NameAndType"
	case TagMethodHandle:
		return "MethodHandle"
	case TagMethodType:
		return "MethodType"
	case TagDynamic:
		return "Dynamic"
	case TagInvokeDynamic:
		return "InvokeDynamic"
	case TagModule:
		return "Module"
	case TagPackage:
		return "Package"
	default:
		return fmt.Sprintf("Tag(0x%02X)", byte(t))
	}
}

// Entry is one logical constant pool slot. Exactly one of the typed fields
// is meaningful, selected by Tag; a nil Entry at a given index means the
// "reserved" slot following a Long/Double.
type Entry struct {
	Tag Tag

	Utf8    string // Utf8
	Int32   int32  // Integer
	Float32 float32
	Int64   int64 // Long
	Float64 float64

	NameIndex  uint16 // Class(name_idx), Module(name_idx), Package(name_idx), StringRef(utf8_idx)
	ClassIndex uint16 // FieldRef/MethodRef/InterfaceMethodRef
	NatIndex   uint16 // FieldRef/MethodRef/InterfaceMethodRef -> NameAndType; for NameAndType itself, its name index

	DescIndex uint16 // MethodType(desc_idx); NameAndType's second u16

	RefKind  uint8  // MethodHandle kind
	RefIndex uint16 // MethodHandle ref_idx

	BootstrapMethodAttrIndex uint16 // Dynamic/InvokeDynamic first u16
	// NatIndex doubles as the second u16 (NameAndType index) for Dynamic/InvokeDynamic
}

// reserved marks the slot immediately following a Long/Double entry; it is
// not readable (spec 3, "two-slot invariant").
var reserved = &Entry{Tag: 0}

// ConstantPool is the 1-indexed, ordered table of constant pool entries.
// Index 0 is never valid; the last usable index is Len().
type ConstantPool struct {
	entries []*Entry // entries[0] is unused filler so 1-based indexing holds
}

// Len returns the last usable 1-based index.
func (cp *ConstantPool) Len() int {
	return len(cp.entries) - 1
}

// Get implements the access contract from spec 4.B: index 0 is
// InvalidIndex(0), a reserved slot is UnusableSlot(i), out of range is
// InvalidIndex(i).
func (cp *ConstantPool) Get(i uint16) (*Entry, error) {
	if i == 0 || int(i) > cp.Len() {
		return nil, &InvalidIndexError{Index: i}
	}
	e := cp.entries[i]
	if e == reserved {
		return nil, &UnusableSlotError{Index: i}
	}
	return e, nil
}

// GetUtf8 requires the entry at i to be a Utf8 entry.
func (cp *ConstantPool) GetUtf8(i uint16) (string, error) {
	e, err := cp.Get(i)
	if err != nil {
		return "", err
	}
	if e.Tag != TagUtf8 {
		return "", &InvalidAttrError{Index: i, Want: "Utf8", Got: e.Tag.String()}
	}
	return e.Utf8, nil
}

// GetClassName follows Class(name_idx) -> Utf8.
func (cp *ConstantPool) GetClassName(i uint16) (string, error) {
	e, err := cp.Get(i)
	if err != nil {
		return "", err
	}
	if e.Tag != TagClass {
		return "", &InvalidAttrError{Index: i, Want: "Class", Got: e.Tag.String()}
	}
	return cp.GetUtf8(e.NameIndex)
}

// Describe recursively resolves a constant pool entry into a
// human-readable diagnostic string, following refs such as
// MethodRef -> Class.NameAndType -> "pkg/Class.name:desc". Grounded on
// jacobin's CPutils.go, which performs the same recursive resolution for
// its `FormatCP`-style diagnostics.
func (cp *ConstantPool) Describe(i uint16) string {
	e, err := cp.Get(i)
	if err != nil {
		return err.Error()
	}
	switch e.Tag {
	case TagUtf8:
		return e.Utf8
	case TagInteger:
		return fmt.Sprintf("%d", e.Int32)
	case TagFloat:
		return fmt.Sprintf("%g", e.Float32)
	case TagLong:
		return fmt.Sprintf("%d", e.Int64)
	case TagDouble:
		return fmt.Sprintf("%g", e.Float64)
	case TagClass:
		return cp.Describe(e.NameIndex)
	case TagString:
		return cp.Describe(e.NameIndex)
	case TagNameAndType:
		return fmt.Sprintf("%s:%s", cp.Describe(e.NatIndex), cp.Describe(e.DescIndex))
	case TagFieldRef, TagMethodRef, TagInterfaceMethodRef:
		return fmt.Sprintf("%s.%s", cp.Describe(e.ClassIndex), cp.Describe(e.NatIndex))
	case TagMethodType:
		return cp.Describe(e.DescIndex)
	case TagMethodHandle:
		return fmt.Sprintf("MethodHandle(kind=%d, %s)", e.RefKind, cp.Describe(e.RefIndex))
	case TagModule, TagPackage:
		return cp.Describe(e.NameIndex)
	case TagDynamic, TagInvokeDynamic:
		return fmt.Sprintf("%s#%d", cp.Describe(e.NatIndex), e.BootstrapMethodAttrIndex)
	default:
		return fmt.Sprintf("<%s>", e.Tag)
	}
}

// Dump renders every usable entry, one per line, for the `decode` CLI
// command.
func (cp *ConstantPool) Dump() string {
	var b strings.Builder
	for i := 1; i <= cp.Len(); i++ {
		e := cp.entries[i]
		if e == reserved {
			fmt.Fprintf(&b, "#%d = (reserved)\n", i)
			continue
		}
		fmt.Fprintf(&b, "#%d = %-18s %s\n", i, e.Tag, cp.Describe(uint16(i)))
	}
	return b.String()
}

// ParseConstantPool consumes pool_count (the declared header count) and
// reads pool_count-1 logical entries, per spec 4.B / 9 ("the source's
// constant-pool loader mis-reads the u16 pool_count header in one
// revision" — ParseConstantPool always reads two big-endian bytes via
// Reader.ReadU2, sidestepping that bug by construction).
func ParseConstantPool(r *Reader) (*ConstantPool, error) {
	poolCount, err := r.ReadU2()
	if err != nil {
		return nil, err
	}

	cp := &ConstantPool{entries: make([]*Entry, 1, poolCount)} // index 0 unused
	for i := uint16(1); i < poolCount; i++ {
		entry, err := parseEntry(r, i)
		if err != nil {
			return nil, err
		}
		cp.entries = append(cp.entries, entry)
		if entry.Tag == TagLong || entry.Tag == TagDouble {
			cp.entries = append(cp.entries, reserved)
			i++
		}
	}
	return cp, nil
}

func parseEntry(r *Reader, index uint16) (*Entry, error) {
	tagByte, err := r.ReadU1()
	if err != nil {
		return nil, err
	}
	tag := Tag(tagByte)
	e := &Entry{Tag: tag}

	switch tag {
	case TagUtf8:
		length, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		raw, err := r.Borrow(int(length))
		if err != nil {
			return nil, err
		}
		text, ok := decodeModifiedUTF8(raw)
		if !ok {
			return nil, &InvalidUtf8Error{Index: index}
		}
		e.Utf8 = text

	case TagInteger:
		v, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		e.Int32 = v

	case TagFloat:
		v, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		e.Float32 = v

	case TagLong:
		v, err := r.ReadI64()
		if err != nil {
			return nil, err
		}
		e.Int64 = v

	case TagDouble:
		v, err := r.ReadF64()
		if err != nil {
			return nil, err
		}
		e.Float64 = v

	case TagClass, TagModule, TagPackage:
		v, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		e.NameIndex = v

	case TagString:
		v, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		e.NameIndex = v

	case TagFieldRef, TagMethodRef, TagInterfaceMethodRef:
		ci, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		ni, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		e.ClassIndex = ci
		e.NatIndex = ni

	case TagNameAndType:
		ni, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		di, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		e.NatIndex = ni
		e.DescIndex = di

	case TagMethodHandle:
		kind, err := r.ReadU1()
		if err != nil {
			return nil, err
		}
		ref, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		e.RefKind = kind
		e.RefIndex = ref

	case TagMethodType:
		di, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		e.DescIndex = di

	case TagDynamic, TagInvokeDynamic:
		bsm, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		nat, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		e.BootstrapMethodAttrIndex = bsm
		e.NatIndex = nat

	default:
		return nil, &UnknownTagError{Index: index, Tag: tagByte}
	}

	return e, nil
}
