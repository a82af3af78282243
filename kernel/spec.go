package kernel

import "fmt"

// Mode is a kernel's declared concurrency mode. The compiler emits either a
// single-threaded body or a tiled multi-threaded one; the mode is part of
// the kernel's contract, not a runtime knob.
type Mode uint8

const (
	// SingleThreaded kernels run on one goroutine.
	SingleThreaded Mode = iota
	// MultiThreaded kernels run tiled across a worker pool.
	MultiThreaded
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case SingleThreaded:
		return "single-threaded"
	case MultiThreaded:
		return "multi-threaded"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Spec is one kernel's compile-time declaration: its name, concurrency
// mode, and the container layouts it consumes and produces.
type Spec struct {
	Name    string
	Mode    Mode
	Inputs  []Signature
	Outputs []Signature
}

// NewSpec builds a validated kernel declaration. The name must be non-empty
// (ErrEmptyName) and the mode known (ErrBadMode). Input and output lists
// may be empty.
func NewSpec(name string, mode Mode, inputs, outputs []Signature) (*Spec, error) {
	const op = "kernel.NewSpec"
	if name == "" {
		return nil, kernelErrorf(op, ErrEmptyName)
	}
	if mode != SingleThreaded && mode != MultiThreaded {
		return nil, fmt.Errorf("%s: mode %d: %w", op, uint8(mode), ErrBadMode)
	}

	return &Spec{Name: name, Mode: mode, Inputs: inputs, Outputs: outputs}, nil
}
