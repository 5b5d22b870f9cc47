package classfile

const magic uint32 = 0xCAFEBABE

// Class access flag bits (JVMS 4.1 Table 4.1-A).
const (
	ClassPublic     uint16 = 0x0001
	ClassFinal      uint16 = 0x0010
	ClassSuper      uint16 = 0x0020
	ClassInterface  uint16 = 0x0200
	ClassAbstract   uint16 = 0x0400
	ClassSynthetic  uint16 = 0x1000
	ClassAnnotation uint16 = 0x2000
	ClassEnum       uint16 = 0x4000
	ClassModule     uint16 = 0x8000
)

// ClassFile is the parsed, arena-backed representation of a JVMS 4 class
// file. The Arena field keeps the backing buffer alive for as long as the
// ClassFile (and the bytecode/string slices borrowed from it) is reachable
// (spec 3: "Class-file arena lives as long as the derived ClassFile").
type ClassFile struct {
	Arena *Arena

	MinorVersion uint16
	MajorVersion uint16

	ConstantPool *ConstantPool

	AccessFlags uint16
	ThisClass   uint16
	SuperClass  uint16 // 0 for java/lang/Object

	Interfaces []uint16
	Fields     []*Field
	Methods    []*Method
	Attributes []Attribute
}

// Parse decodes a complete class file from buf, per spec 4.D: magic check,
// version range check, then constant pool / access flags / this+super /
// interfaces / fields / methods / class attributes in that order. Grounded
// on zserge/tojvm's single-pass `Load`, generalized to return typed errors
// and to borrow (not copy) every slice from the owning Arena.
func Parse(buf []byte) (*ClassFile, error) {
	arena := NewArena(buf)
	r := NewReader(arena)

	magicWord, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	if magicWord != magic {
		return nil, &InvalidClassfileError{Magic: magicWord}
	}

	minor, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	major, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	if major < 45 || major > 68 {
		return nil, &VersionError{Major: major}
	}

	cp, err := ParseConstantPool(r)
	if err != nil {
		return nil, err
	}

	accessFlags, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	thisClass, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	superClass, err := r.ReadU2()
	if err != nil {
		return nil, err
	}

	interfaceCount, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	interfaces := make([]uint16, interfaceCount)
	for i := range interfaces {
		interfaces[i], err = r.ReadU2()
		if err != nil {
			return nil, err
		}
	}

	fields, err := parseFields(r, cp)
	if err != nil {
		return nil, err
	}

	methods, err := parseMethods(r, cp)
	if err != nil {
		return nil, err
	}

	classAttrs, err := parseAttributes(r, cp)
	if err != nil {
		return nil, err
	}

	return &ClassFile{
		Arena:        arena,
		MinorVersion: minor,
		MajorVersion: major,
		ConstantPool: cp,
		AccessFlags:  accessFlags,
		ThisClass:    thisClass,
		SuperClass:   superClass,
		Interfaces:   interfaces,
		Fields:       fields,
		Methods:      methods,
		Attributes:   classAttrs,
	}, nil
}

func (c *ClassFile) IsPublic() bool    { return c.AccessFlags&ClassPublic != 0 }
func (c *ClassFile) IsFinal() bool     { return c.AccessFlags&ClassFinal != 0 }
func (c *ClassFile) IsAbstract() bool  { return c.AccessFlags&ClassAbstract != 0 }
func (c *ClassFile) IsInterface() bool { return c.AccessFlags&ClassInterface != 0 }

// ClassName resolves this_class via the constant pool to a Utf8 class name.
func (c *ClassFile) ClassName() (string, error) {
	return c.ConstantPool.GetClassName(c.ThisClass)
}

// SuperClassName resolves super_class; returns "" for java/lang/Object,
// whose super_class index is 0.
func (c *ClassFile) SuperClassName() (string, error) {
	if c.SuperClass == 0 {
		return "", nil
	}
	return c.ConstantPool.GetClassName(c.SuperClass)
}

// InterfaceNames resolves every entry of the interfaces table.
func (c *ClassFile) InterfaceNames() ([]string, error) {
	names := make([]string, len(c.Interfaces))
	for i, idx := range c.Interfaces {
		n, err := c.ConstantPool.GetClassName(idx)
		if err != nil {
			return nil, err
		}
		names[i] = n
	}
	return names, nil
}

// FieldNames returns the declared name of every field, in declaration
// order.
func (c *ClassFile) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}

// MethodSignatures returns (name, descriptor) pairs for every method, in
// declaration order.
func (c *ClassFile) MethodSignatures() [][2]string {
	sigs := make([][2]string, len(c.Methods))
	for i, m := range c.Methods {
		sigs[i] = [2]string{m.Name, m.Desc}
	}
	return sigs
}
