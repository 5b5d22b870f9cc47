package classfile

// Field access flag bits (JVMS 4.5 Table 4.5-A).
const (
	FieldPublic    uint16 = 0x0001
	FieldPrivate   uint16 = 0x0002
	FieldProtected uint16 = 0x0004
	FieldStatic    uint16 = 0x0008
	FieldFinal     uint16 = 0x0010
	FieldVolatile  uint16 = 0x0040
	FieldTransient uint16 = 0x0080
	FieldSynthetic uint16 = 0x1000
	FieldEnum      uint16 = 0x4000
)

// Field is a field_info entry (spec 3: "Access flags, constant-pool indices
// for name and descriptor, attribute list").
type Field struct {
	AccessFlags uint16
	NameIndex   uint16
	DescIndex   uint16
	Attributes  []Attribute

	Name string // resolved eagerly for convenience
	Desc string
}

func (f *Field) IsStatic() bool { return f.AccessFlags&FieldStatic != 0 }
func (f *Field) IsFinal() bool  { return f.AccessFlags&FieldFinal != 0 }
func (f *Field) IsPublic() bool { return f.AccessFlags&FieldPublic != 0 }

func parseFields(r *Reader, cp *ConstantPool) ([]*Field, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	fields := make([]*Field, count)
	for i := range fields {
		f, err := parseField(r, cp)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return fields, nil
}

func parseField(r *Reader, cp *ConstantPool) (*Field, error) {
	flags, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	nameIdx, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	descIdx, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	attrs, err := parseAttributes(r, cp)
	if err != nil {
		return nil, err
	}
	name, err := cp.GetUtf8(nameIdx)
	if err != nil {
		return nil, err
	}
	desc, err := cp.GetUtf8(descIdx)
	if err != nil {
		return nil, err
	}
	return &Field{
		AccessFlags: flags,
		NameIndex:   nameIdx,
		DescIndex:   descIdx,
		Attributes:  attrs,
		Name:        name,
		Desc:        desc,
	}, nil
}
