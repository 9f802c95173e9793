package main

import (
	"errors"
	"math/rand/v2"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
)

const (
	player1Name = "Greedy 1"
	player2Name = "Greedy 2"
)

var errStalled = errors.New("policy found no edge on an unfinished board")

type Stats struct {
	Games       int
	Player1Wins int
	Player2Wins int
	Draws       int
	Moves       int
	Tiers       map[assess.Tier]int
}

// Runner plays pvp sessions with both seats driven by their own policy.
type Runner struct {
	size     int
	policies map[chess.Player]*assess.Policy
	recorder game.Recorder
}

func NewRunner(size int, seed uint64, recorder game.Recorder) *Runner {
	return &Runner{
		size: size,
		policies: map[chess.Player]*assess.Policy{
			chess.P1: assess.NewPolicy(rand.NewPCG(seed, 1)),
			chess.P2: assess.NewPolicy(rand.NewPCG(seed, 2)),
		},
		recorder: recorder,
	}
}

// Play runs one game to the end and adds it to stats.
func (r *Runner) Play(stats *Stats) error {
	options := []game.Option{game.WithPlayerNames(player1Name, player2Name)}
	if r.recorder != nil {
		options = append(options, game.WithRecorder(r.recorder))
	}
	s, err := game.NewSession(game.PvP, r.size, options...)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Start(); err != nil {
		return err
	}

	for s.State() == game.Playing {
		current := s.Snapshot().Current
		e, tier, ok := r.policies[current].SelectEdge(s.Board())
		if !ok {
			return errStalled
		}
		if _, err := s.Move(e, current); err != nil {
			return err
		}
		stats.Tiers[tier]++
		stats.Moves++
	}

	outcome := s.Snapshot().Outcome
	stats.Games++
	switch {
	case outcome.Draw():
		stats.Draws++
	case outcome.Winner == chess.P1:
		stats.Player1Wins++
	default:
		stats.Player2Wins++
	}
	return nil
}

// Run plays n games, calling progress after each one.
func (r *Runner) Run(n int, progress func()) (Stats, error) {
	stats := Stats{Tiers: make(map[assess.Tier]int)}
	for range n {
		if err := r.Play(&stats); err != nil {
			return stats, err
		}
		if progress != nil {
			progress()
		}
	}
	return stats, nil
}
