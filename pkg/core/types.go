package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// View is the read-only surface a presenter draws from. Cells are row-major
// with one byte per cell; non-zero means alive.
type View interface {
	Size() Size
	Cells() []uint8
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	View
	Name() string
	Reset(seed int64)
	Step()
}
