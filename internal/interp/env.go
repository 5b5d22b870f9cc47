package interp

import (
	"github.com/rs/zerolog"

	"github.com/cogwheel/jayvee/internal/runtime"
)

// Env bundles the interpreter's external collaborators: the method area
// and heap that back loads/stores/field access/allocation, and a
// structured trace emitter called once per executed opcode (spec 6:
// "Logger (external)... not required for correctness").
type Env struct {
	MethodArea *runtime.MethodArea
	Heap       *runtime.Heap
	Log        zerolog.Logger
}
