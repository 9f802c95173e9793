package game

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
)

type ClaimedEdge struct {
	chess.Edge
	Owner chess.Player
}

type OwnedCell struct {
	chess.Cell
	Owner chess.Player
}

// Snapshot is a consistent copy of a session taken under its lock.
type Snapshot struct {
	GameUid      message.GameUid
	Mode         Mode
	Size         int
	State        State
	Current      chess.Player
	Player1Score int
	Player2Score int
	Moves        int
	Edges        []ClaimedEdge
	Cells        []OwnedCell
	Outcome      *Outcome
	StartedAt    time.Time
	FinishedAt   time.Time
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		GameUid:      s.id,
		Mode:         s.mode,
		Size:         s.size,
		State:        s.state,
		Current:      s.current,
		Player1Score: s.scores[chess.P1],
		Player2Score: s.scores[chess.P2],
		Moves:        s.moves,
		StartedAt:    s.started,
		FinishedAt:   s.finished,
	}
	if s.state == Finished {
		o := s.outcome
		snap.Outcome = &o
	}
	if s.board == nil {
		return snap
	}

	for _, e := range chess.Edges(s.size) {
		if owner := s.board.EdgeOwner(e); owner != chess.NoPlayer {
			snap.Edges = append(snap.Edges, ClaimedEdge{Edge: e, Owner: owner})
		}
	}
	for _, c := range chess.Cells(s.size) {
		if owner := s.board.CellOwner(c); owner != chess.NoPlayer {
			snap.Cells = append(snap.Cells, OwnedCell{Cell: c, Owner: owner})
		}
	}
	return snap
}

// Board returns a copy of the current board, nil outside a game.
func (s *Session) Board() *chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board == nil {
		return nil
	}
	return s.board.Clone()
}
