package classfile

import "fmt"

// ElementValue is one value inside an annotation, tagged per JVMS 4.7.16.1.
type ElementValue struct {
	Tag byte

	ConstValueIndex uint16 // B C D F I J S Z s

	TypeNameIndex  uint16 // e
	ConstNameIndex uint16 // e

	ClassInfoIndex uint16 // c

	Annotation *Annotation // @

	Array []ElementValue // [
}

// AnnotationPair is one name=value entry inside an annotation.
type AnnotationPair struct {
	ElementNameIndex uint16
	Value            ElementValue
}

// Annotation is one parsed `@Annotation(...)` occurrence.
type Annotation struct {
	TypeIndex      uint16
	ElementPairs   []AnnotationPair
}

// parseElementValue implements the table in spec 4.C: the tag byte selects
// the variant.
func parseElementValue(r *Reader) (ElementValue, error) {
	tagByte, err := r.ReadU1()
	if err != nil {
		return ElementValue{}, err
	}
	ev := ElementValue{Tag: tagByte}

	switch tagByte {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 's':
		idx, err := r.ReadU2()
		if err != nil {
			return ElementValue{}, err
		}
		ev.ConstValueIndex = idx

	case 'e':
		typeIdx, err := r.ReadU2()
		if err != nil {
			return ElementValue{}, err
		}
		nameIdx, err := r.ReadU2()
		if err != nil {
			return ElementValue{}, err
		}
		ev.TypeNameIndex = typeIdx
		ev.ConstNameIndex = nameIdx

	case 'c':
		idx, err := r.ReadU2()
		if err != nil {
			return ElementValue{}, err
		}
		ev.ClassInfoIndex = idx

	case '@':
		ann, err := parseAnnotation(r)
		if err != nil {
			return ElementValue{}, err
		}
		ev.Annotation = ann

	case '[':
		count, err := r.ReadU2()
		if err != nil {
			return ElementValue{}, err
		}
		ev.Array = make([]ElementValue, count)
		for i := range ev.Array {
			v, err := parseElementValue(r)
			if err != nil {
				return ElementValue{}, err
			}
			ev.Array[i] = v
		}

	default:
		return ElementValue{}, fmt.Errorf("classfile: unknown element-value tag %q", rune(tagByte))
	}

	return ev, nil
}

func parseAnnotation(r *Reader) (*Annotation, error) {
	typeIdx, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	ann := &Annotation{TypeIndex: typeIdx, ElementPairs: make([]AnnotationPair, count)}
	for i := range ann.ElementPairs {
		nameIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		val, err := parseElementValue(r)
		if err != nil {
			return nil, err
		}
		ann.ElementPairs[i] = AnnotationPair{ElementNameIndex: nameIdx, Value: val}
	}
	return ann, nil
}

func parseAnnotations(r *Reader) ([]*Annotation, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	anns := make([]*Annotation, count)
	for i := range anns {
		a, err := parseAnnotation(r)
		if err != nil {
			return nil, err
		}
		anns[i] = a
	}
	return anns, nil
}
