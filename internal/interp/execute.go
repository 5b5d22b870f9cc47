package interp

// Execute runs the top frame of frames to completion, per spec 4.F.8: on
// each iteration it dispatches the current opcode of the top frame; a frame
// that returns (or runs off the end of its code) is popped, and once the
// frame stack is empty the last popped frame's return slots are returned.
// Calling it with an empty frame stack is an EmptyStackError.
// Method invocation opcodes are out of scope, so only one frame is ever
// pushed here: the one the caller seeds.
func Execute(env *Env, frames *FrameStack) ([]int32, error) {
	for {
		f, err := frames.Top()
		if err != nil {
			return nil, err
		}
		if f.PC >= len(f.Code) {
			// An empty (or exhausted) Code attribute terminates the frame
			// without advancing rather than faulting (spec 8: "a Code
			// attribute with code_length = 0 parses successfully;
			// attempting to execute a frame backed by it terminates
			// without advancing").
			if _, err := frames.Pop(); err != nil {
				return nil, err
			}
			if frames.Empty() {
				return nil, nil
			}
			continue
		}

		op := f.Code[f.PC]
		env.Log.Trace().Int("pc", f.PC).Int("opcode", int(op)).Msg("dispatched")
		done, returned, err := dispatch(op, f, env)
		if err != nil {
			return nil, err
		}
		if done {
			if _, popErr := frames.Pop(); popErr != nil {
				return nil, popErr
			}
			if frames.Empty() {
				return returned, nil
			}
			continue
		}
	}
}
