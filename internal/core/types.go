package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Point addresses a single cell by row and column.
type Point struct {
	Row int
	Col int
}

// Sim defines the minimal contract a frontend needs to drive an automaton.
type Sim interface {
	Name() string
	Size() Size
	Seed()
	Reset(seed int64)
	Step()
	Alive(row, col int) bool
	Generation() int
	Population() int
}
