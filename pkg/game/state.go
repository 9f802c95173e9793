package game

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
)

var (
	ErrGameNotPlaying = errors.New("game is not being played")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrNotInSetup     = errors.New("game already started")
	ErrInvalidMode    = errors.New("invalid game mode")
	ErrSessionClosed  = errors.New("session closed")
)

type State int8

const (
	Setup State = iota
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return ""
}

type Mode string

const (
	PvP Mode = "pvp"
	PvC Mode = "pvc"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case PvP, PvC:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// ComputerPlayer is the seat driven by the policy, NoPlayer in pvp.
func (m Mode) ComputerPlayer() chess.Player {
	if m == PvC {
		return chess.P2
	}
	return chess.NoPlayer
}

// PlayerName is the display name stored with a finished game.
func (m Mode) PlayerName(p chess.Player) string {
	switch {
	case p == chess.P1:
		return "P1"
	case p == chess.P2 && m == PvC:
		return "Computer"
	case p == chess.P2:
		return "P2"
	}
	return ""
}
