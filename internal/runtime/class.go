package runtime

import (
	"strings"
	"sync"

	"github.com/cogwheel/jayvee/internal/classfile"
)

// Class is a method area entry: one loaded class's methods, static fields,
// and hierarchy link (spec 3: "Runtime class (method area entry)").
type Class struct {
	Name   string
	Parent string // "" for java/lang/Object and primitive/array pseudo-classes

	methodsMu sync.RWMutex
	methods   *orderedMap[*classfile.Method]

	staticsMu sync.RWMutex
	statics   *orderedMap[*FieldValue]

	declaredFields []*classfile.Field // this class's own instance fields, in declaration order

	instanceFieldsMu    sync.Mutex
	instanceFieldsCache *orderedMap[*orderedMap[string]] // class name -> field name -> desc, hierarchy-flattened, computed lazily
}

// NewClass builds a method-area Class from a decoded ClassFile.
func NewClass(cf *classfile.ClassFile) (*Class, error) {
	name, err := cf.ClassName()
	if err != nil {
		return nil, err
	}
	parent, err := cf.SuperClassName()
	if err != nil {
		return nil, err
	}

	c := &Class{
		Name:    name,
		Parent:  parent,
		methods: newOrderedMap[*classfile.Method](),
		statics: newOrderedMap[*FieldValue](),
	}
	for _, m := range cf.Methods {
		c.methods.Set(m.Signature, m)
	}
	for _, f := range cf.Fields {
		if f.IsStatic() {
			c.statics.Set(f.Name, NewFieldValue(f.Desc))
		} else {
			c.declaredFields = append(c.declaredFields, f)
		}
	}
	return c, nil
}

// newPseudoClass builds a Class with no methods or fields, used for
// primitives (B,C,D,F,I,J,S,Z,V) and for on-demand array classes.
func newPseudoClass(name string) *Class {
	return &Class{
		Name:    name,
		methods: newOrderedMap[*classfile.Method](),
		statics: newOrderedMap[*FieldValue](),
	}
}

// GetMethod implements the two-step lookup from spec 4.E: exact match on
// "name:descriptor" first, then (if sig has no ':') a match on name alone.
func (c *Class) GetMethod(sig string) (*classfile.Method, error) {
	c.methodsMu.RLock()
	defer c.methodsMu.RUnlock()

	if m, ok := c.methods.Get(sig); ok {
		return m, nil
	}
	if !strings.Contains(sig, ":") {
		for _, k := range c.methods.Keys() {
			if strings.HasPrefix(k, sig+":") {
				m, _ := c.methods.Get(k)
				return m, nil
			}
		}
	}
	return nil, &MethodNotFoundError{ClassName: c.Name, Signature: sig}
}

// GetStatic returns the shared FieldValue handle for a static field.
func (c *Class) GetStatic(name string) (*FieldValue, error) {
	c.staticsMu.RLock()
	defer c.staticsMu.RUnlock()
	fv, ok := c.statics.Get(name)
	if !ok {
		return nil, &InvalidObjectAccessError{Class: c.Name, Field: name}
	}
	return fv, nil
}
