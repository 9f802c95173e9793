package chess

import (
	"fmt"
	"strings"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 12
)

// Board owns the edges and cells of one game. Ownership lives in two flat
// arenas indexed by Edge.index and Cell.index; an owner, once set, is never
// overwritten.
type Board struct {
	size    int
	edges   []Player
	cells   []Player
	claimed int
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrBoardSizeOutOfRange, size, MinBoardSize, MaxBoardSize)
	}

	return &Board{
		size:  size,
		edges: make([]Player, EdgesCount(size)),
		cells: make([]Player, size*size),
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) IsEdgeClaimed(e Edge) bool {
	return b.EdgeOwner(e) != NoPlayer
}

func (b *Board) EdgeOwner(e Edge) Player {
	if !e.Valid(b.size) {
		return NoPlayer
	}
	return b.edges[e.index(b.size)]
}

func (b *Board) CellOwner(c Cell) Player {
	if !c.Valid(b.size) {
		return NoPlayer
	}
	return b.cells[c.index(b.size)]
}

// ClaimEdge gives e to p and returns the cells the claim completed, all of
// which now belong to p. A claimed edge is left untouched and reported with
// ErrEdgeAlreadyClaimed.
func (b *Board) ClaimEdge(e Edge, p Player) ([]Cell, error) {
	if !e.Valid(b.size) {
		return nil, fmt.Errorf("%w: %s on size %d", ErrInvalidEdge, e, b.size)
	}
	if !p.Valid() {
		return nil, ErrInvalidPlayer
	}

	idx := e.index(b.size)
	if b.edges[idx] != NoPlayer {
		return nil, ErrEdgeAlreadyClaimed
	}
	b.edges[idx] = p
	b.claimed++

	var completed []Cell
	for _, cell := range AdjacentCells(b.size, e) {
		if CellEdgeCount(b, cell) == 4 && b.cells[cell.index(b.size)] == NoPlayer {
			b.cells[cell.index(b.size)] = p
			completed = append(completed, cell)
		}
	}
	return completed, nil
}

func (b *Board) ClaimedCount() int {
	return b.claimed
}

func (b *Board) FreeEdgesCount() int {
	return len(b.edges) - b.claimed
}

func (b *Board) Full() bool {
	return b.FreeEdgesCount() == 0
}

// CellsOwnedBy recounts the cells held by p from the cell arena.
func (b *Board) CellsOwnedBy(p Player) (count int) {
	for _, owner := range b.cells {
		if owner == p {
			count++
		}
	}
	return
}

func (b *Board) OwnedCellsCount() int {
	return b.CellsOwnedBy(P1) + b.CellsOwnedBy(P2)
}

func (b *Board) Clone() *Board {
	return &Board{
		size:    b.size,
		edges:   append([]Player(nil), b.edges...),
		cells:   append([]Player(nil), b.cells...),
		claimed: b.claimed,
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.size + 1 {
		for c := range b.size {
			sb.WriteByte('+')
			if b.IsEdgeClaimed(H(r, c)) {
				sb.WriteString("---")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("+\n")

		if r == b.size {
			break
		}
		for c := range b.size + 1 {
			if b.IsEdgeClaimed(V(r, c)) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			if c < b.size {
				switch b.CellOwner(Cell{Row: r, Col: c}) {
				case P1:
					sb.WriteString(" 1 ")
				case P2:
					sb.WriteString(" 2 ")
				default:
					sb.WriteString("   ")
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
