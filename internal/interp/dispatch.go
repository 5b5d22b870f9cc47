package interp

// dispatch routes one opcode to its group handler by the byte ranges in
// spec 4.F plus the two unlisted groups documented in SPEC_FULL.md. done
// is true when the current frame returned and should be popped; returned
// carries its return slots in that case.
func dispatch(op byte, f *Frame, env *Env) (done bool, returned []int32, err error) {
	switch {
	case op <= 20:
		return false, nil, execConstants(op, f)
	case op <= 53:
		return false, nil, execLoads(op, f, env)
	case op <= 86:
		return false, nil, execStores(op, f, env)
	case op <= 95:
		return false, nil, execStackOps(op, f)
	case op <= 132:
		return false, nil, execArithmetic(op, f)
	case op <= 147:
		return false, nil, execConversions(op, f)
	case op <= 166:
		return false, nil, execComparisons(op, f)
	case op == opGoto || (op >= opIreturn && op <= opReturn):
		d, ret, err := execControl(op, f)
		return d, ret, err
	case op >= opGetstatic && op <= opPutfield:
		return false, nil, execFields(op, f, env)
	default:
		return false, nil, &UnknownOpcodeError{Opcode: op, PC: f.PC}
	}
}
