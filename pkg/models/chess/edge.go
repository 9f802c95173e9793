package chess

import "fmt"

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	}
	return "?"
}

func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "h", "H", "horizontal":
		return Horizontal, nil
	case "v", "V", "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: orientation %q", ErrInvalidEdge, s)
}

// Edge is a segment between two neighbouring dots. A horizontal edge (r, c)
// is the top of cell (r, c); a vertical edge (r, c) is the left of cell (r, c).
type Edge struct {
	Row         int
	Col         int
	Orientation Orientation
}

func H(row, col int) Edge {
	return Edge{Row: row, Col: col, Orientation: Horizontal}
}

func V(row, col int) Edge {
	return Edge{Row: row, Col: col, Orientation: Vertical}
}

func (e Edge) String() string {
	return fmt.Sprintf("%s(%d, %d)", e.Orientation, e.Row, e.Col)
}

// Valid reports whether e lies on a board with size cells per side.
func (e Edge) Valid(size int) bool {
	switch e.Orientation {
	case Horizontal:
		return e.Row >= 0 && e.Row <= size && e.Col >= 0 && e.Col < size
	case Vertical:
		return e.Row >= 0 && e.Row < size && e.Col >= 0 && e.Col <= size
	}
	return false
}

// index maps e onto the flat edge arena: horizontal edges first, row-major,
// then vertical edges, row-major.
func (e Edge) index(size int) int {
	if e.Orientation == Horizontal {
		return e.Row*size + e.Col
	}
	return (size+1)*size + e.Row*(size+1) + e.Col
}

func EdgesCount(size int) int {
	return 2 * size * (size + 1)
}

var edgesMap = make(map[int][]Edge)

func init() {
	for size := MinBoardSize; size <= MaxBoardSize; size++ {
		edgesMap[size] = newEdges(size)
	}
}

// Edges lists every edge of the board in arena order. The returned slice is
// shared and must not be modified.
func Edges(size int) []Edge {
	if res, c := edgesMap[size]; c {
		return res
	}
	return newEdges(size)
}

func newEdges(size int) []Edge {
	edges := make([]Edge, 0, EdgesCount(size))
	for r := range size + 1 {
		for c := range size {
			edges = append(edges, H(r, c))
		}
	}
	for r := range size {
		for c := range size + 1 {
			edges = append(edges, V(r, c))
		}
	}
	return edges
}
