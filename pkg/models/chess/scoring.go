package chess

// AdjacentCells returns the cells bordered by e: one for an edge on the
// outer boundary, two for an interior edge.
func AdjacentCells(size int, e Edge) []Cell {
	var near []Cell
	switch e.Orientation {
	case Horizontal:
		if e.Row > 0 {
			near = append(near, Cell{Row: e.Row - 1, Col: e.Col})
		}
		if e.Row < size {
			near = append(near, Cell{Row: e.Row, Col: e.Col})
		}
	case Vertical:
		if e.Col > 0 {
			near = append(near, Cell{Row: e.Row, Col: e.Col - 1})
		}
		if e.Col < size {
			near = append(near, Cell{Row: e.Row, Col: e.Col})
		}
	}
	return near
}

// CellEdgeCount is the number of owned edges around cell, in [0, 4].
func CellEdgeCount(b *Board, cell Cell) (count int) {
	for _, e := range cell.Edges() {
		if b.IsEdgeClaimed(e) {
			count++
		}
	}
	return
}

// ObtainsCells lists the cells that claiming the free edge e would complete.
func ObtainsCells(b *Board, e Edge) (obtains []Cell) {
	if !e.Valid(b.size) || b.IsEdgeClaimed(e) {
		return
	}

	for _, cell := range AdjacentCells(b.size, e) {
		if CellEdgeCount(b, cell) == 3 {
			obtains = append(obtains, cell)
		}
	}
	return
}

func WouldComplete(b *Board, e Edge) bool {
	return len(ObtainsCells(b, e)) > 0
}
