package classfile

import "testing"

func TestParseMinimalClass(t *testing.T) {
	b := newClassBuilder()
	buf := b.build(68, 0, "Person", "java/lang/Object", ClassPublic|ClassSuper,
		[]memberSpec{
			{flags: FieldPrivate, name: "name", desc: "Ljava/lang/String;"},
			{flags: FieldPrivate, name: "age", desc: "I"},
		},
		[]memberSpec{
			{flags: MethodPublic, name: "<init>", desc: "(Ljava/lang/String;I)V",
				code: &codeSpec{maxStack: 1, maxLocals: 3, bytecode: []byte{0xb1}}}, // return
			{flags: MethodPublic, name: "getName", desc: "()Ljava/lang/String;",
				code: &codeSpec{maxStack: 1, maxLocals: 1, bytecode: []byte{0xb0}}}, // areturn (stubbed)
		})

	cf, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	name, err := cf.ClassName()
	if err != nil || name != "Person" {
		t.Fatalf("ClassName() = %q, %v, want Person", name, err)
	}
	super, err := cf.SuperClassName()
	if err != nil || super != "java/lang/Object" {
		t.Fatalf("SuperClassName() = %q, %v, want java/lang/Object", super, err)
	}

	wantFields := []string{"name", "age"}
	gotFields := cf.FieldNames()
	if len(gotFields) != len(wantFields) {
		t.Fatalf("FieldNames() = %v, want %v", gotFields, wantFields)
	}
	for i, f := range wantFields {
		if gotFields[i] != f {
			t.Errorf("FieldNames()[%d] = %q, want %q", i, gotFields[i], f)
		}
	}

	wantSigs := [][2]string{
		{"<init>", "(Ljava/lang/String;I)V"},
		{"getName", "()Ljava/lang/String;"},
	}
	gotSigs := cf.MethodSignatures()
	if len(gotSigs) != len(wantSigs) {
		t.Fatalf("MethodSignatures() = %v, want %v", gotSigs, wantSigs)
	}
	for i, s := range wantSigs {
		if gotSigs[i] != s {
			t.Errorf("MethodSignatures()[%d] = %v, want %v", i, gotSigs[i], s)
		}
	}

	if !cf.IsPublic() {
		t.Error("IsPublic() = false, want true")
	}
}

func TestParseRejectsBadMagic(t *testing.T) {
	_, err := Parse([]byte{0, 0, 0, 0})
	var ice *InvalidClassfileError
	if !asError(err, &ice) {
		t.Fatalf("Parse(bad magic) err = %v, want *InvalidClassfileError", err)
	}
}

func TestParseRejectsOutOfRangeVersion(t *testing.T) {
	for _, major := range []uint16{44, 69} {
		b := newClassBuilder()
		buf := b.build(major, 0, "X", "", 0, nil, nil)
		_, err := Parse(buf)
		var ve *VersionError
		if !asError(err, &ve) {
			t.Errorf("Parse(major=%d) err = %v, want *VersionError", major, err)
		}
	}
}

func TestConstantPoolTwoSlotInvariant(t *testing.T) {
	b := newClassBuilder()
	longIdx := b.addLong(0x0123456789ABCDEF)
	buf := b.build(68, 0, "X", "", 0, nil, nil)
	cf, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	entry, err := cf.ConstantPool.Get(longIdx)
	if err != nil || entry.Int64 != 0x0123456789ABCDEF {
		t.Fatalf("Get(longIdx) = %v, %v", entry, err)
	}

	_, err = cf.ConstantPool.Get(longIdx + 1)
	var use *UnusableSlotError
	if !asError(err, &use) {
		t.Fatalf("Get(reserved slot) err = %v, want *UnusableSlotError", err)
	}
}

func TestConstantPoolIndexZero(t *testing.T) {
	b := newClassBuilder()
	buf := b.build(68, 0, "X", "", 0, nil, nil)
	cf, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = cf.ConstantPool.Get(0)
	var ie *InvalidIndexError
	if !asError(err, &ie) || ie.Index != 0 {
		t.Fatalf("Get(0) err = %v, want InvalidIndexError{0}", err)
	}
}

func TestCodeAttributeEmptyBytecodeParses(t *testing.T) {
	b := newClassBuilder()
	buf := b.build(68, 0, "X", "", 0, nil, []memberSpec{
		{flags: MethodStatic, name: "noop", desc: "()V", code: &codeSpec{maxStack: 0, maxLocals: 0, bytecode: nil}},
	})
	cf, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cf.Methods[0].Code.Code) != 0 {
		t.Errorf("Code = %v, want empty", cf.Methods[0].Code.Code)
	}
}

// asError stands in for errors.As with direct type assertions on the error
// types these tests check; wrapped errors are not unwrapped.
func asError(err error, target interface{}) bool {
	switch t := target.(type) {
	case **InvalidClassfileError:
		e, ok := err.(*InvalidClassfileError)
		*t = e
		return ok
	case **VersionError:
		e, ok := err.(*VersionError)
		*t = e
		return ok
	case **UnusableSlotError:
		e, ok := err.(*UnusableSlotError)
		*t = e
		return ok
	case **InvalidIndexError:
		e, ok := err.(*InvalidIndexError)
		*t = e
		return ok
	default:
		return false
	}
}
