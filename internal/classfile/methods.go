package classfile

// Method access flag bits (JVMS 4.6 Table 4.6-A).
const (
	MethodPublic       uint16 = 0x0001
	MethodPrivate      uint16 = 0x0002
	MethodProtected    uint16 = 0x0004
	MethodStatic       uint16 = 0x0008
	MethodFinal        uint16 = 0x0010
	MethodSynchronized uint16 = 0x0020
	MethodBridge       uint16 = 0x0040
	MethodVarargs      uint16 = 0x0080
	MethodNative       uint16 = 0x0100
	MethodAbstract     uint16 = 0x0400
	MethodStrict       uint16 = 0x0800
	MethodSynthetic    uint16 = 0x1000
)

// Method is a method_info entry, exposing a resolved signature string
// "name:descriptor" matching spec 3's Method model.
type Method struct {
	AccessFlags uint16
	NameIndex   uint16
	DescIndex   uint16
	Attributes  []Attribute

	Name      string
	Desc      string
	Signature string // "name:descriptor"

	Code *CodeAttr // nil for native/abstract methods (spec 3: "native methods lack a context")
}

func (m *Method) IsStatic() bool   { return m.AccessFlags&MethodStatic != 0 }
func (m *Method) IsAbstract() bool { return m.AccessFlags&MethodAbstract != 0 }
func (m *Method) IsNative() bool   { return m.AccessFlags&MethodNative != 0 }
func (m *Method) IsPublic() bool   { return m.AccessFlags&MethodPublic != 0 }

func parseMethods(r *Reader, cp *ConstantPool) ([]*Method, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	methods := make([]*Method, count)
	for i := range methods {
		m, err := parseMethod(r, cp)
		if err != nil {
			return nil, err
		}
		methods[i] = m
	}
	return methods, nil
}

func parseMethod(r *Reader, cp *ConstantPool) (*Method, error) {
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

	m := &Method{
		AccessFlags: flags,
		NameIndex:   nameIdx,
		DescIndex:   descIdx,
		Attributes:  attrs,
		Name:        name,
		Desc:        desc,
		Signature:   name + ":" + desc,
	}
	for _, a := range attrs {
		if code, ok := a.(*CodeAttr); ok {
			m.Code = code
			break
		}
	}
	return m, nil
}
