package chess

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := NewBoard(size)
	require.NoError(t, err)
	return b
}

func claimAll(t *testing.T, b *Board, p Player, edges ...Edge) {
	t.Helper()
	for _, e := range edges {
		_, err := b.ClaimEdge(e, p)
		require.NoError(t, err, "claim %s", e)
	}
}

func TestNewBoardSizeRange(t *testing.T) {
	for _, size := range []int{-1, 0, 2, 13} {
		_, err := NewBoard(size)
		require.ErrorIs(t, err, ErrBoardSizeOutOfRange, "size %d", size)
	}
	for size := MinBoardSize; size <= MaxBoardSize; size++ {
		_, err := NewBoard(size)
		require.NoError(t, err, "size %d", size)
	}
}

func TestEdgeAndCellCounts(t *testing.T) {
	for size := MinBoardSize; size <= MaxBoardSize; size++ {
		edges := Edges(size)
		require.Len(t, edges, 2*size*(size+1))
		require.Len(t, Cells(size), size*size)

		seen := make(map[int]struct{}, len(edges))
		for _, e := range edges {
			require.True(t, e.Valid(size), "edge %s on size %d", e, size)
			seen[e.index(size)] = struct{}{}
		}
		require.Len(t, seen, len(edges), "edge indexes must be dense and unique")

		b := newTestBoard(t, size)
		require.Equal(t, len(edges), b.FreeEdgesCount())
	}
}

func TestEdgesOrder(t *testing.T) {
	edges := Edges(3)
	require.Equal(t, H(0, 0), edges[0])
	require.Equal(t, H(0, 1), edges[1])
	require.Equal(t, H(3, 2), edges[11])
	require.Equal(t, V(0, 0), edges[12])
	require.Equal(t, V(2, 3), edges[23])
}

func TestEdgeValid(t *testing.T) {
	cases := []struct {
		edge  Edge
		valid bool
	}{
		{H(0, 0), true},
		{H(3, 2), true},
		{H(4, 0), false},
		{H(0, 3), false},
		{H(-1, 0), false},
		{V(2, 3), true},
		{V(3, 0), false},
		{V(0, 4), false},
		{Edge{Row: 0, Col: 0, Orientation: 7}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.valid, c.edge.Valid(3), "edge %s", c.edge)
	}
}

func TestAdjacentCells(t *testing.T) {
	require.Equal(t, []Cell{{0, 0}}, AdjacentCells(3, H(0, 0)))
	require.Equal(t, []Cell{{0, 1}, {1, 1}}, AdjacentCells(3, H(1, 1)))
	require.Equal(t, []Cell{{2, 2}}, AdjacentCells(3, H(3, 2)))
	require.Equal(t, []Cell{{1, 0}}, AdjacentCells(3, V(1, 0)))
	require.Equal(t, []Cell{{1, 0}, {1, 1}}, AdjacentCells(3, V(1, 1)))
	require.Equal(t, []Cell{{1, 2}}, AdjacentCells(3, V(1, 3)))

	for size := MinBoardSize; size <= MaxBoardSize; size++ {
		for _, e := range Edges(size) {
			for _, cell := range AdjacentCells(size, e) {
				require.Contains(t, cell.Edges(), e, "cell %s must be bounded by %s", cell, e)
			}
		}
	}
}

func TestClaimEdgeCompletesCell(t *testing.T) {
	b := newTestBoard(t, 3)
	claimAll(t, b, P1, H(0, 0), H(1, 0), V(0, 0))
	require.Equal(t, 3, CellEdgeCount(b, Cell{0, 0}))
	require.True(t, WouldComplete(b, V(0, 1)))
	require.Equal(t, NoPlayer, b.CellOwner(Cell{0, 0}))

	cells, err := b.ClaimEdge(V(0, 1), P2)
	require.NoError(t, err)
	require.Equal(t, []Cell{{0, 0}}, cells)
	require.Equal(t, P2, b.CellOwner(Cell{0, 0}), "last claimer owns the cell")
	require.Equal(t, 4, CellEdgeCount(b, Cell{0, 0}))
	require.False(t, WouldComplete(b, V(0, 1)))
}

func TestClaimEdgeCompletesTwoCells(t *testing.T) {
	b := newTestBoard(t, 3)
	claimAll(t, b, P1,
		H(0, 0), V(0, 0), H(1, 0),
		H(0, 1), V(0, 2), H(1, 1),
	)

	cells, err := b.ClaimEdge(V(0, 1), P1)
	require.NoError(t, err)
	require.ElementsMatch(t, []Cell{{0, 0}, {0, 1}}, cells)
	require.Equal(t, 2, b.CellsOwnedBy(P1))
}

func TestClaimEdgeRejectsClaimed(t *testing.T) {
	b := newTestBoard(t, 3)
	claimAll(t, b, P1, H(0, 0))

	cells, err := b.ClaimEdge(H(0, 0), P2)
	require.ErrorIs(t, err, ErrEdgeAlreadyClaimed)
	require.Empty(t, cells)
	require.Equal(t, P1, b.EdgeOwner(H(0, 0)))
	require.Equal(t, 1, b.ClaimedCount())
}

func TestClaimEdgeRejectsInvalid(t *testing.T) {
	b := newTestBoard(t, 3)

	_, err := b.ClaimEdge(H(4, 0), P1)
	require.ErrorIs(t, err, ErrInvalidEdge)

	_, err = b.ClaimEdge(V(0, 0), NoPlayer)
	require.ErrorIs(t, err, ErrInvalidPlayer)

	require.Zero(t, b.ClaimedCount())
	require.False(t, b.IsEdgeClaimed(H(4, 0)))
}

// Random complete games: a cell is owned iff its four edges are owned, and
// by whoever claimed the last of them.
func TestCellOwnershipFollowsLastEdge(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	for size := MinBoardSize; size <= 6; size++ {
		for round := 0; round < 20; round++ {
			b := newTestBoard(t, size)
			lastClaimer := make(map[Cell]Player)
			edges := append([]Edge(nil), Edges(size)...)
			rnd.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

			for i, e := range edges {
				p := P1
				if rnd.IntN(2) == 0 {
					p = P2
				}
				completed, err := b.ClaimEdge(e, p)
				require.NoError(t, err)
				for _, cell := range completed {
					lastClaimer[cell] = p
				}

				for _, cell := range Cells(size) {
					complete := CellEdgeCount(b, cell) == 4
					require.Equal(t, complete, b.CellOwner(cell) != NoPlayer, "cell %s after %d claims", cell, i+1)
				}
			}

			require.True(t, b.Full())
			require.Equal(t, size*size, b.OwnedCellsCount())
			for cell, p := range lastClaimer {
				require.Equal(t, p, b.CellOwner(cell))
			}
		}
	}
}

func TestClone(t *testing.T) {
	b := newTestBoard(t, 3)
	claimAll(t, b, P1, H(0, 0))

	c := b.Clone()
	claimAll(t, c, P2, H(1, 0))

	require.False(t, b.IsEdgeClaimed(H(1, 0)))
	require.True(t, c.IsEdgeClaimed(H(0, 0)))
	require.Equal(t, 1, b.ClaimedCount())
	require.Equal(t, 2, c.ClaimedCount())
}

func TestBoardString(t *testing.T) {
	b := newTestBoard(t, 3)
	claimAll(t, b, P1, H(0, 0), H(1, 0), V(0, 0), V(0, 1))

	want := "" +
		"+---+   +   +\n" +
		"| 1 |        \n" +
		"+---+   +   +\n" +
		"             \n" +
		"+   +   +   +\n" +
		"             \n" +
		"+   +   +   +\n"
	require.Equal(t, want, b.String())
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("h")
	require.NoError(t, err)
	require.Equal(t, Horizontal, o)

	o, err = ParseOrientation("vertical")
	require.NoError(t, err)
	require.Equal(t, Vertical, o)

	_, err = ParseOrientation("x")
	require.ErrorIs(t, err, ErrInvalidEdge)
}

func TestPlayer(t *testing.T) {
	require.Equal(t, P2, P1.Other())
	require.Equal(t, P1, P2.Other())
	require.False(t, NoPlayer.Valid())

	p, ok := PlayerFromNumber(2)
	require.True(t, ok)
	require.Equal(t, P2, p)
	require.Equal(t, 2, p.Number())

	_, ok = PlayerFromNumber(3)
	require.False(t, ok)
}
