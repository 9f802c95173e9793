package chess

import "fmt"

type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Edges returns top, bottom, left and right.
func (c Cell) Edges() [4]Edge {
	return [...]Edge{
		H(c.Row, c.Col),
		H(c.Row+1, c.Col),
		V(c.Row, c.Col),
		V(c.Row, c.Col+1),
	}
}

func (c Cell) index(size int) int {
	return c.Row*size + c.Col
}

func (c Cell) Valid(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

var cellsMap = make(map[int][]Cell)

func init() {
	for size := MinBoardSize; size <= MaxBoardSize; size++ {
		cellsMap[size] = newCells(size)
	}
}

func Cells(size int) []Cell {
	if res, c := cellsMap[size]; c {
		return res
	}
	return newCells(size)
}

func newCells(size int) []Cell {
	cells := make([]Cell, 0, size*size)
	for r := range size {
		for c := range size {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}
