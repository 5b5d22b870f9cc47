package runtime

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// rawClassField is a (name, descriptor, isStatic) triple for buildRawClass.
type rawClassField struct {
	name     string
	desc     string
	isStatic bool
}

// buildRawClass hand-assembles a minimal valid class file byte-for-byte:
// just enough constant pool, this/super, and fields to exercise the method
// area without needing a compiled .class fixture.
func buildRawClass(t *testing.T, thisName, superName string, fields []rawClassField) []byte {
	t.Helper()

	var cp bytes.Buffer
	entryCount := 0
	addUtf8 := func(s string) uint16 {
		entryCount++
		idx := uint16(entryCount)
		cp.WriteByte(1) // TagUtf8
		binary.Write(&cp, binary.BigEndian, uint16(len(s)))
		cp.WriteString(s)
		return idx
	}
	addClass := func(nameIdx uint16) uint16 {
		entryCount++
		idx := uint16(entryCount)
		cp.WriteByte(7) // TagClass
		binary.Write(&cp, binary.BigEndian, nameIdx)
		return idx
	}

	thisUtf8 := addUtf8(thisName)
	thisClassIdx := addClass(thisUtf8)
	var superClassIdx uint16
	if superName != "" {
		superUtf8 := addUtf8(superName)
		superClassIdx = addClass(superUtf8)
	}

	type fieldIdx struct{ nameIdx, descIdx uint16 }
	idxs := make([]fieldIdx, len(fields))
	for i, f := range fields {
		idxs[i] = fieldIdx{addUtf8(f.name), addUtf8(f.desc)}
	}

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint32(0xCAFEBABE))
	binary.Write(&out, binary.BigEndian, uint16(0))  // minor
	binary.Write(&out, binary.BigEndian, uint16(52)) // major
	binary.Write(&out, binary.BigEndian, uint16(entryCount+1))
	out.Write(cp.Bytes())
	binary.Write(&out, binary.BigEndian, uint16(0x0001)) // access flags: public
	binary.Write(&out, binary.BigEndian, thisClassIdx)
	binary.Write(&out, binary.BigEndian, superClassIdx)
	binary.Write(&out, binary.BigEndian, uint16(0)) // interfaces_count

	binary.Write(&out, binary.BigEndian, uint16(len(fields)))
	for i, f := range fields {
		flags := uint16(0x0001)
		if f.isStatic {
			flags |= 0x0008
		}
		binary.Write(&out, binary.BigEndian, flags)
		binary.Write(&out, binary.BigEndian, idxs[i].nameIdx)
		binary.Write(&out, binary.BigEndian, idxs[i].descIdx)
		binary.Write(&out, binary.BigEndian, uint16(0)) // attributes_count
	}

	binary.Write(&out, binary.BigEndian, uint16(0)) // methods_count
	binary.Write(&out, binary.BigEndian, uint16(0)) // class attributes_count
	return out.Bytes()
}

// fakeLoader serves raw class bytes registered by name.
type fakeLoader struct {
	classes map[string][]byte
}

func newFakeLoader() *fakeLoader { return &fakeLoader{classes: make(map[string][]byte)} }

func (l *fakeLoader) Load(name string) ([]byte, error) {
	b, ok := l.classes[name]
	if !ok {
		return nil, ErrClassNotFound
	}
	return b, nil
}

func resetMethodArea() {
	globalMethodAreaMu.Lock()
	globalMethodArea = nil
	globalMethodAreaMu.Unlock()
}

func TestInitMethodAreaPrePopulatesPrimitives(t *testing.T) {
	resetMethodArea()
	ma, err := InitMethodArea(newFakeLoader())
	if err != nil {
		t.Fatalf("InitMethodArea: %v", err)
	}
	for _, name := range primitiveNames {
		c, err := ma.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if c.Name != name {
			t.Errorf("Get(%q).Name = %q", name, c.Name)
		}
	}
}

func TestInitMethodAreaSecondCallFails(t *testing.T) {
	resetMethodArea()
	if _, err := InitMethodArea(newFakeLoader()); err != nil {
		t.Fatalf("first InitMethodArea: %v", err)
	}
	if _, err := InitMethodArea(newFakeLoader()); err != ErrMethodAreaInitialised {
		t.Fatalf("second InitMethodArea = %v, want ErrMethodAreaInitialised", err)
	}
}

func TestMethodAreaGetSynthesizesArrayClass(t *testing.T) {
	resetMethodArea()
	ma, _ := InitMethodArea(newFakeLoader())
	c, err := ma.Get("[I")
	if err != nil {
		t.Fatalf("Get([I): %v", err)
	}
	if c.Name != "[I" {
		t.Errorf("Name = %q", c.Name)
	}
	again, err := ma.Get("[I")
	if err != nil || again != c {
		t.Fatalf("second Get([I) should return the same published instance")
	}
}

func TestMethodAreaLoadsFromLoader(t *testing.T) {
	resetMethodArea()
	loader := newFakeLoader()
	loader.classes["Person"] = buildRawClass(t, "Person", "", []rawClassField{
		{name: "age", desc: "I"},
		{name: "count", desc: "I", isStatic: true},
	})
	ma, _ := InitMethodArea(loader)

	c, err := ma.Get("Person")
	if err != nil {
		t.Fatalf("Get(Person): %v", err)
	}
	if c.Name != "Person" {
		t.Errorf("Name = %q, want Person", c.Name)
	}
	if _, err := c.GetStatic("count"); err != nil {
		t.Errorf("GetStatic(count): %v", err)
	}
	if _, err := c.GetStatic("age"); err == nil {
		t.Errorf("GetStatic(age) should fail: age is an instance field")
	}
}

func TestCreateInstanceWithDefaultFlattensHierarchy(t *testing.T) {
	resetMethodArea()
	loader := newFakeLoader()
	loader.classes["Animal"] = buildRawClass(t, "Animal", "", []rawClassField{
		{name: "legs", desc: "I"},
	})
	loader.classes["Dog"] = buildRawClass(t, "Dog", "Animal", []rawClassField{
		{name: "breed", desc: "Ljava/lang/String;"},
	})
	ma, _ := InitMethodArea(loader)

	inst, err := ma.CreateInstanceWithDefault("Dog")
	if err != nil {
		t.Fatalf("CreateInstanceWithDefault: %v", err)
	}
	if _, err := inst.Field("Animal", "legs"); err != nil {
		t.Errorf("Field(Animal, legs): %v", err)
	}
	if _, err := inst.Field("Dog", "breed"); err != nil {
		t.Errorf("Field(Dog, breed): %v", err)
	}
	if _, err := inst.Field("Dog", "legs"); err == nil {
		t.Errorf("Field(Dog, legs) should fail: legs is declared on Animal")
	}
}

func TestBootstrapThreadIDIsOneShot(t *testing.T) {
	resetMethodArea()
	ma, _ := InitMethodArea(newFakeLoader())
	calls := 0
	compute := func() int32 { calls++; return 42 }

	first := ma.BootstrapThreadID(compute)
	second := ma.BootstrapThreadID(compute)
	if first != 42 || second != 42 {
		t.Fatalf("BootstrapThreadID = %d, %d, want 42, 42", first, second)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}
