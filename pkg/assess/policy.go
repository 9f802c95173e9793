package assess

import (
	"math/rand/v2"
	"time"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
)

type Tier int8

const (
	ScoringTier Tier = iota + 1
	SafeTier
	RandomTier
)

func (t Tier) String() string {
	switch t {
	case ScoringTier:
		return "scoring"
	case SafeTier:
		return "safe"
	case RandomTier:
		return "random"
	}
	return "none"
}

// Policy is the greedy computer player. It is not safe for concurrent use;
// every session owns its own Policy.
type Policy struct {
	rand *rand.Rand
}

func NewPolicy(src rand.Source) *Policy {
	return &Policy{rand: rand.New(src)}
}

func NewRandomPolicy() *Policy {
	now := uint64(time.Now().UnixNano())
	return NewPolicy(rand.NewPCG(now, now>>7|1))
}

// SelectEdge picks the computer's next edge. The first scoring edge in
// board order wins; otherwise a random safe edge; otherwise any random free
// edge. ok is false only on a full board.
func (p *Policy) SelectEdge(b *chess.Board) (e chess.Edge, tier Tier, ok bool) {
	if e, ok = ScoringEdge(b); ok {
		return e, ScoringTier, true
	}

	if safe := SafeEdges(b); len(safe) > 0 {
		return safe[p.rand.IntN(len(safe))], SafeTier, true
	}

	var free []chess.Edge
	for e := range UnclaimedEdges(b) {
		free = append(free, e)
	}
	if len(free) == 0 {
		return chess.Edge{}, 0, false
	}
	return free[p.rand.IntN(len(free))], RandomTier, true
}

func ScoringEdge(b *chess.Board) (chess.Edge, bool) {
	for e := range UnclaimedEdges(b) {
		if chess.WouldComplete(b, e) {
			return e, true
		}
	}
	return chess.Edge{}, false
}

func SafeEdges(b *chess.Board) (safe []chess.Edge) {
	for e := range UnclaimedEdges(b) {
		if IsSafe(b, e) {
			safe = append(safe, e)
		}
	}
	return
}
