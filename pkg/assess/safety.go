package assess

import (
	"iter"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
)

type Class int8

const (
	Scoring Class = iota
	Safe
	Sacrificial
)

func (c Class) String() string {
	switch c {
	case Scoring:
		return "scoring"
	case Safe:
		return "safe"
	case Sacrificial:
		return "sacrificial"
	}
	return ""
}

// UnclaimedEdges yields the free edges of b, horizontal edges row-major then
// vertical edges row-major. Each call starts a fresh pass over the current
// board.
func UnclaimedEdges(b *chess.Board) iter.Seq[chess.Edge] {
	return func(yield func(chess.Edge) bool) {
		for _, e := range chess.Edges(b.Size()) {
			if b.IsEdgeClaimed(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// IsSafe reports whether placing e leaves every adjacent cell with fewer
// than 3 owned edges, so the opponent gets no cell from it.
func IsSafe(b *chess.Board, e chess.Edge) bool {
	for _, cell := range chess.AdjacentCells(b.Size(), e) {
		if chess.CellEdgeCount(b, cell)+1 >= 3 {
			return false
		}
	}
	return true
}

// Classify checks scoring before safety: a move that completes a cell is
// Scoring even if it also sets up another cell for the opponent.
func Classify(b *chess.Board, e chess.Edge) Class {
	if chess.WouldComplete(b, e) {
		return Scoring
	}
	if IsSafe(b, e) {
		return Safe
	}
	return Sacrificial
}
