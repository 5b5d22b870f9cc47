package classfile

// Attribute is implemented by every typed attribute payload. Unknown
// attribute names decode to *RawAttr and are otherwise inert, per spec 7:
// "Unknown attribute names are not errors — they are skipped."
type Attribute interface {
	attrName() string
}

// ExceptionTableEntry is one row of a Code attribute's exception table.
type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType uint16 // 0 means catch-all
}

// CodeAttr is the `Code` attribute: the bytecode and its immediate
// metadata that the interpreter needs (spec 1: "the interpreter's
// correctness is defined in terms of how the decoder exposes Code
// attribute contents").
type CodeAttr struct {
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte // borrows from the arena; never copied
	ExceptionTable []ExceptionTableEntry
	Attributes     []Attribute // nested attributes (StackMapTable, LineNumberTable, ...)
}

func (*CodeAttr) attrName() string { return "Code" }

type ConstantValueAttr struct{ Index uint16 }

func (*ConstantValueAttr) attrName() string { return "ConstantValue" }

type ExceptionsAttr struct{ Indexes []uint16 }

func (*ExceptionsAttr) attrName() string { return "Exceptions" }

type InnerClassEntry struct {
	InnerClassInfoIndex   uint16
	OuterClassInfoIndex   uint16
	InnerNameIndex        uint16
	InnerClassAccessFlags uint16
}

type InnerClassesAttr struct{ Classes []InnerClassEntry }

func (*InnerClassesAttr) attrName() string { return "InnerClasses" }

type EnclosingMethodAttr struct {
	ClassIndex  uint16
	MethodIndex uint16 // 0 if not enclosed by a method
}

func (*EnclosingMethodAttr) attrName() string { return "EnclosingMethod" }

type SyntheticAttr struct{}

func (*SyntheticAttr) attrName() string { return "Synthetic" }

type SignatureAttr struct{ Index uint16 }

func (*SignatureAttr) attrName() string { return "Signature" }

type SourceFileAttr struct{ Index uint16 }

func (*SourceFileAttr) attrName() string { return "SourceFile" }

type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

type LineNumberTableAttr struct{ Lines []LineNumberEntry }

func (*LineNumberTableAttr) attrName() string { return "LineNumberTable" }

type LocalVariableEntry struct {
	StartPC   uint16
	Length    uint16
	NameIndex uint16
	DescIndex uint16
	Index     uint16
}

type LocalVariableTableAttr struct{ Locals []LocalVariableEntry }

func (*LocalVariableTableAttr) attrName() string { return "LocalVariableTable" }

type LocalVariableTypeEntry struct {
	StartPC        uint16
	Length         uint16
	NameIndex      uint16
	SignatureIndex uint16
	Index          uint16
}

type LocalVariableTypeTableAttr struct{ Locals []LocalVariableTypeEntry }

func (*LocalVariableTypeTableAttr) attrName() string { return "LocalVariableTypeTable" }

type DeprecatedAttr struct{}

func (*DeprecatedAttr) attrName() string { return "Deprecated" }

// RuntimeVisibleAnnotationsAttr carries both the parsed annotations and the
// raw byte range, per spec 4.C.3: annotation semantics depend on later type
// resolution that is out of scope here, so the raw bytes are preserved
// alongside the parse.
type RuntimeVisibleAnnotationsAttr struct {
	Raw         []byte
	Annotations []*Annotation
}

func (*RuntimeVisibleAnnotationsAttr) attrName() string { return "RuntimeVisibleAnnotations" }

type RuntimeInvisibleAnnotationsAttr struct {
	Annotations []*Annotation
}

func (*RuntimeInvisibleAnnotationsAttr) attrName() string { return "RuntimeInvisibleAnnotations" }

type AnnotationDefaultAttr struct {
	Raw   []byte
	Value ElementValue
}

func (*AnnotationDefaultAttr) attrName() string { return "AnnotationDefault" }

type MethodParameterEntry struct {
	NameIndex   uint16
	AccessFlags uint16
}

type MethodParametersAttr struct{ Parameters []MethodParameterEntry }

func (*MethodParametersAttr) attrName() string { return "MethodParameters" }

type NestHostAttr struct{ HostClassIndex uint16 }

func (*NestHostAttr) attrName() string { return "NestHost" }

type NestMembersAttr struct{ Classes []uint16 }

func (*NestMembersAttr) attrName() string { return "NestMembers" }

type RecordComponentEntry struct {
	NameIndex  uint16
	DescIndex  uint16
	Attributes []Attribute
}

type RecordAttr struct{ Components []RecordComponentEntry }

func (*RecordAttr) attrName() string { return "Record" }

// RawAttr is the fallback for any attribute name this decoder doesn't
// recognize: Data is preserved (borrowed from the arena) but otherwise
// inert.
type RawAttr struct {
	Name string
	Data []byte
}

func (r *RawAttr) attrName() string { return r.Name }

// parseAttributes reads an attribute_count followed by that many
// attributes, dispatching each by its resolved Utf8 name (spec 4.C).
func parseAttributes(r *Reader, cp *ConstantPool) ([]Attribute, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	attrs := make([]Attribute, count)
	for i := range attrs {
		a, err := parseAttribute(r, cp)
		if err != nil {
			return nil, err
		}
		attrs[i] = a
	}
	return attrs, nil
}

func parseAttribute(r *Reader, cp *ConstantPool) (Attribute, error) {
	nameIndex, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	length, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	name, err := cp.GetUtf8(nameIndex)
	if err != nil {
		return nil, err
	}

	startOffset := r.Arena().Offset()

	var attr Attribute
	switch name {
	case "ConstantValue":
		idx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		attr = &ConstantValueAttr{Index: idx}

	case "Code":
		attr, err = parseCode(r, cp)
		if err != nil {
			return nil, err
		}

	case "StackMapTable":
		attr, err = parseStackMapTable(r)
		if err != nil {
			return nil, err
		}

	case "Exceptions":
		n, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		idxs := make([]uint16, n)
		for i := range idxs {
			idxs[i], err = r.ReadU2()
			if err != nil {
				return nil, err
			}
		}
		attr = &ExceptionsAttr{Indexes: idxs}

	case "InnerClasses":
		n, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		classes := make([]InnerClassEntry, n)
		for i := range classes {
			inner, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			outer, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			innerName, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			flags, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			classes[i] = InnerClassEntry{inner, outer, innerName, flags}
		}
		attr = &InnerClassesAttr{Classes: classes}

	case "EnclosingMethod":
		classIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		methodIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		attr = &EnclosingMethodAttr{ClassIndex: classIdx, MethodIndex: methodIdx}

	case "Synthetic":
		attr = &SyntheticAttr{}

	case "Signature":
		idx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		attr = &SignatureAttr{Index: idx}

	case "SourceFile":
		idx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		attr = &SourceFileAttr{Index: idx}

	case "LineNumberTable":
		n, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		lines := make([]LineNumberEntry, n)
		for i := range lines {
			startPC, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			lineNo, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			lines[i] = LineNumberEntry{startPC, lineNo}
		}
		attr = &LineNumberTableAttr{Lines: lines}

	case "LocalVariableTable":
		n, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		locals := make([]LocalVariableEntry, n)
		for i := range locals {
			locals[i], err = readLocalVariableEntry(r)
			if err != nil {
				return nil, err
			}
		}
		attr = &LocalVariableTableAttr{Locals: locals}

	case "LocalVariableTypeTable":
		n, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		locals := make([]LocalVariableTypeEntry, n)
		for i := range locals {
			startPC, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			length, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			nameIdx, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			sigIdx, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			index, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			locals[i] = LocalVariableTypeEntry{startPC, length, nameIdx, sigIdx, index}
		}
		attr = &LocalVariableTypeTableAttr{Locals: locals}

	case "Deprecated":
		attr = &DeprecatedAttr{}

	case "RuntimeVisibleAnnotations":
		raw, err := r.Arena().Peek(int(length))
		if err != nil {
			return nil, err
		}
		anns, err := parseAnnotations(r)
		if err != nil {
			return nil, err
		}
		attr = &RuntimeVisibleAnnotationsAttr{Raw: raw, Annotations: anns}

	case "RuntimeInvisibleAnnotations":
		anns, err := parseAnnotations(r)
		if err != nil {
			return nil, err
		}
		attr = &RuntimeInvisibleAnnotationsAttr{Annotations: anns}

	case "AnnotationDefault":
		raw, err := r.Arena().Peek(int(length))
		if err != nil {
			return nil, err
		}
		val, err := parseElementValue(r)
		if err != nil {
			return nil, err
		}
		attr = &AnnotationDefaultAttr{Raw: raw, Value: val}

	case "MethodParameters":
		n, err := r.ReadU1()
		if err != nil {
			return nil, err
		}
		params := make([]MethodParameterEntry, n)
		for i := range params {
			nameIdx, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			flags, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			params[i] = MethodParameterEntry{nameIdx, flags}
		}
		attr = &MethodParametersAttr{Parameters: params}

	case "NestHost":
		idx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		attr = &NestHostAttr{HostClassIndex: idx}

	case "NestMembers":
		n, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		classes := make([]uint16, n)
		for i := range classes {
			classes[i], err = r.ReadU2()
			if err != nil {
				return nil, err
			}
		}
		attr = &NestMembersAttr{Classes: classes}

	case "Record":
		n, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		comps := make([]RecordComponentEntry, n)
		for i := range comps {
			nameIdx, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			descIdx, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			sub, err := parseAttributes(r, cp)
			if err != nil {
				return nil, err
			}
			comps[i] = RecordComponentEntry{nameIdx, descIdx, sub}
		}
		attr = &RecordAttr{Components: comps}

	default:
		// Unknown attribute: honor `length` by skipping exactly that many
		// bytes, per spec 4.C.1. Preserve the raw bytes (still a borrow,
		// no copy) so diagnostics can show what was skipped.
		data, err := r.Borrow(int(length))
		if err != nil {
			return nil, err
		}
		return &RawAttr{Name: name, Data: data}, nil
	}

	// Defensive resync: if a recognized attribute's parser consumed a
	// different number of bytes than `length` declares (shouldn't happen
	// for a well-formed class file), trust `length` and seek to keep the
	// overall attribute list aligned.
	consumed := r.Arena().Offset() - startOffset
	if consumed != int(length) {
		if err := r.Arena().Seek(startOffset + int(length)); err != nil {
			return nil, err
		}
	}

	return attr, nil
}

func readLocalVariableEntry(r *Reader) (LocalVariableEntry, error) {
	startPC, err := r.ReadU2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	length, err := r.ReadU2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	nameIdx, err := r.ReadU2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	descIdx, err := r.ReadU2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	index, err := r.ReadU2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	return LocalVariableEntry{startPC, length, nameIdx, descIdx, index}, nil
}

// parseCode handles the nested Code attribute recursively: its tail is
// itself an attribute list (spec 4.C.2).
func parseCode(r *Reader, cp *ConstantPool) (*CodeAttr, error) {
	maxStack, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	maxLocals, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	codeLength, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	code, err := r.Borrow(int(codeLength))
	if err != nil {
		return nil, err
	}

	excCount, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	excTable := make([]ExceptionTableEntry, excCount)
	for i := range excTable {
		startPC, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		endPC, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		handlerPC, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		catchType, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		excTable[i] = ExceptionTableEntry{startPC, endPC, handlerPC, catchType}
	}

	nested, err := parseAttributes(r, cp)
	if err != nil {
		return nil, err
	}

	return &CodeAttr{
		MaxStack:       maxStack,
		MaxLocals:      maxLocals,
		Code:           code,
		ExceptionTable: excTable,
		Attributes:     nested,
	}, nil
}
