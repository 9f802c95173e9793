package game

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
)

const DefaultComputerDelay = 600 * time.Millisecond

type Option func(*Session)

func WithGameUid(id message.GameUid) Option {
	return func(s *Session) {
		s.id = id
	}
}

func WithPolicy(p *assess.Policy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

func WithScheduler(sc Scheduler) Option {
	return func(s *Session) {
		s.scheduler = sc
	}
}

func WithComputerDelay(d time.Duration) Option {
	return func(s *Session) {
		s.delay = d
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listener = l
	}
}

// WithPlayerNames overrides the display names stored with the result. An
// empty name keeps the mode's default.
func WithPlayerNames(player1Name, player2Name string) Option {
	return func(s *Session) {
		s.player1Name = player1Name
		s.player2Name = player2Name
	}
}
