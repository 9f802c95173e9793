package assess

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
)

func newBoard(t *testing.T, size int, edges ...chess.Edge) *chess.Board {
	t.Helper()
	b, err := chess.NewBoard(size)
	require.NoError(t, err)
	for _, e := range edges {
		_, err := b.ClaimEdge(e, chess.P1)
		require.NoError(t, err)
	}
	return b
}

func TestIsSafe(t *testing.T) {
	// cell (1,1) already has its top and left edges
	b := newBoard(t, 3, chess.H(1, 1), chess.V(1, 1))
	require.Equal(t, 2, chess.CellEdgeCount(b, chess.Cell{Row: 1, Col: 1}))

	t.Run("third edge of a two-edge cell is unsafe", func(t *testing.T) {
		require.False(t, IsSafe(b, chess.H(2, 1)))
		require.False(t, IsSafe(b, chess.V(1, 2)))
		require.Equal(t, Sacrificial, Classify(b, chess.H(2, 1)))
	})

	t.Run("edge away from two-edge cells is safe", func(t *testing.T) {
		require.True(t, IsSafe(b, chess.H(0, 2)))
		require.True(t, IsSafe(b, chess.V(2, 3)))
		require.Equal(t, Safe, Classify(b, chess.H(0, 2)))
	})

	t.Run("edge shared with a one-edge cell is safe", func(t *testing.T) {
		// H(1,0) borders (0,0) with no edges and (1,0) with only V(1,1)
		require.True(t, IsSafe(b, chess.H(1, 0)))
	})
}

func TestClassifyScoringFirst(t *testing.T) {
	b := newBoard(t, 3, chess.H(0, 0), chess.H(1, 0), chess.V(0, 0), chess.H(0, 1), chess.H(1, 1))
	// V(0,1) completes (0,0) and gives (0,1) its third edge
	require.False(t, IsSafe(b, chess.V(0, 1)))
	require.Equal(t, Scoring, Classify(b, chess.V(0, 1)))
}

func TestUnclaimedEdges(t *testing.T) {
	b := newBoard(t, 3)
	all := slices.Collect(UnclaimedEdges(b))
	require.Equal(t, chess.Edges(3), all)

	_, err := b.ClaimEdge(chess.H(0, 0), chess.P2)
	require.NoError(t, err)
	_, err = b.ClaimEdge(chess.V(2, 3), chess.P2)
	require.NoError(t, err)

	free := slices.Collect(UnclaimedEdges(b))
	require.Len(t, free, 22)
	require.NotContains(t, free, chess.H(0, 0))
	require.NotContains(t, free, chess.V(2, 3))
	require.Equal(t, chess.H(0, 1), free[0])

	// enumeration can be restarted and stopped early
	var first []chess.Edge
	for e := range UnclaimedEdges(b) {
		first = append(first, e)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []chess.Edge{chess.H(0, 1), chess.H(0, 2)}, first)
}
