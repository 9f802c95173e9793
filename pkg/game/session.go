package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
)

// Session drives one game: Setup -> Playing -> Finished, and back to Setup
// on Reset. Every step runs under mu, so a human move and a computer timer
// never interleave.
type Session struct {
	id   message.GameUid
	mode Mode
	size int

	mu       sync.Mutex
	state    State
	board    *chess.Board
	current  chess.Player
	scores   map[chess.Player]int
	moves    int
	outcome  Outcome
	closed   bool
	epoch    uint64
	timer    Timer
	started  time.Time
	finished time.Time

	policy    *assess.Policy
	scheduler Scheduler
	delay     time.Duration
	recorder  Recorder
	listener  Listener

	player1Name string
	player2Name string
}

// MoveResult describes an accepted move.
type MoveResult struct {
	Cells   []chess.Cell
	Current chess.Player
	State   State
}

func NewSession(mode Mode, size int, opts ...Option) (*Session, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if size < chess.MinBoardSize || size > chess.MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", chess.ErrBoardSizeOutOfRange, size)
	}

	s := &Session{
		mode:      mode,
		size:      size,
		state:     Setup,
		scores:    make(map[chess.Player]int),
		scheduler: clock{},
		delay:     DefaultComputerDelay,
		recorder:  RecorderFunc(func(Summary, func(error)) {}),
		listener:  ListenerFunc(func(Event) {}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.id == "" {
		s.id = message.NewGameUid()
	}
	if s.player1Name == "" {
		s.player1Name = mode.PlayerName(chess.P1)
	}
	if s.player2Name == "" {
		s.player2Name = mode.PlayerName(chess.P2)
	}
	if s.policy == nil && mode == PvC {
		s.policy = assess.NewRandomPolicy()
	}
	return s, nil
}

func (s *Session) GameUid() message.GameUid {
	return s.id
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Size() int {
	return s.size
}

// PlayerName is the display name of a seat.
func (s *Session) PlayerName(p chess.Player) string {
	switch p {
	case chess.P1:
		return s.player1Name
	case chess.P2:
		return s.player2Name
	}
	return ""
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start moves a session in Setup to Playing on a fresh board with P1 to move.
func (s *Session) Start() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.state != Setup {
		s.mu.Unlock()
		return ErrNotInSetup
	}

	board, err := chess.NewBoard(s.size)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.board = board
	s.current = chess.P1
	s.scores = make(map[chess.Player]int)
	s.moves = 0
	s.outcome = Outcome{}
	s.state = Playing
	s.started = time.Now()
	s.finished = time.Time{}
	events := []Event{s.event(EventStarted, chess.P1)}
	s.scheduleComputerLocked()
	s.mu.Unlock()

	s.dispatch(events)
	return nil
}

// Move applies a move from the human side. The acting player must be the
// current player and, in pvc, must not be the computer's seat.
func (s *Session) Move(e chess.Edge, p chess.Player) (MoveResult, error) {
	if !p.Valid() {
		return MoveResult{}, chess.ErrInvalidPlayer
	}
	if p == s.mode.ComputerPlayer() {
		return MoveResult{}, ErrNotYourTurn
	}

	s.mu.Lock()
	res, events, summary, err := s.applyLocked(e, p)
	s.mu.Unlock()
	if err != nil {
		return MoveResult{}, err
	}

	s.dispatch(events)
	if summary != nil {
		s.record(*summary)
	}
	return res, nil
}

// Reset discards the board and returns to Setup. A pending computer move is
// cancelled; one whose timer already fired sees the new epoch and gives up.
func (s *Session) Reset() {
	s.mu.Lock()
	s.resetLocked()
	events := []Event{s.event(EventReset, chess.NoPlayer)}
	s.mu.Unlock()

	s.dispatch(events)
}

// Restart is Reset followed by Start with the same mode and size.
func (s *Session) Restart() error {
	s.Reset()
	return s.Start()
}

// Close stops the session for good.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.closed = true
}

func (s *Session) resetLocked() {
	s.epoch++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = Setup
	s.board = nil
	s.current = chess.NoPlayer
	s.scores = make(map[chess.Player]int)
	s.moves = 0
	s.outcome = Outcome{}
}

func (s *Session) applyLocked(e chess.Edge, p chess.Player) (MoveResult, []Event, *Summary, error) {
	if s.state != Playing {
		return MoveResult{}, nil, nil, ErrGameNotPlaying
	}
	if p != s.current {
		return MoveResult{}, nil, nil, ErrNotYourTurn
	}

	cells, err := s.board.ClaimEdge(e, p)
	if err != nil {
		return MoveResult{}, nil, nil, err
	}
	s.moves++

	// a scoring move keeps the turn however many cells it took
	if len(cells) > 0 {
		s.scores[p] += len(cells)
	} else {
		s.current = s.current.Other()
	}

	moved := s.event(EventMoveApplied, p)
	moved.Edge = e
	moved.Cells = cells
	events := []Event{moved}
	if len(cells) == 0 {
		events = append(events, s.event(EventTurnChanged, s.current))
	}

	var summary *Summary
	if s.scores[chess.P1]+s.scores[chess.P2] == s.size*s.size {
		s.state = Finished
		s.finished = time.Now()
		s.outcome = NewOutcome(s.scores[chess.P1], s.scores[chess.P2])
		over := s.event(EventGameOver, s.outcome.Winner)
		over.Outcome = s.outcome
		events = append(events, over)

		sum := newSummary(s.mode, s.size, s.outcome, s.player1Name, s.player2Name)
		summary = &sum
	} else {
		s.scheduleComputerLocked()
	}

	return MoveResult{Cells: cells, Current: s.current, State: s.state}, events, summary, nil
}

func (s *Session) scheduleComputerLocked() {
	computer := s.mode.ComputerPlayer()
	if computer == chess.NoPlayer || s.state != Playing || s.current != computer || s.timer != nil {
		return
	}

	epoch := s.epoch
	s.timer = s.scheduler.AfterFunc(s.delay, func() {
		s.computerMove(epoch)
	})
}

func (s *Session) computerMove(epoch uint64) {
	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return
	}
	s.timer = nil

	computer := s.mode.ComputerPlayer()
	if s.state != Playing || s.current != computer {
		s.mu.Unlock()
		return
	}

	e, _, ok := s.policy.SelectEdge(s.board)
	if !ok {
		s.mu.Unlock()
		return
	}
	_, events, summary, err := s.applyLocked(e, computer)
	s.mu.Unlock()
	if err != nil {
		return
	}

	s.dispatch(events)
	if summary != nil {
		s.record(*summary)
	}
}

func (s *Session) record(summary Summary) {
	s.recorder.Record(summary, func(err error) {
		s.dispatch([]Event{{
			Type:         EventRecordFailed,
			GameUid:      s.id,
			Player1Score: summary.Player1Score,
			Player2Score: summary.Player2Score,
			Err:          err,
		}})
	})
}

// event must be called with mu held.
func (s *Session) event(t EventType, p chess.Player) Event {
	return Event{
		Type:         t,
		GameUid:      s.id,
		Player:       p,
		Player1Score: s.scores[chess.P1],
		Player2Score: s.scores[chess.P2],
	}
}

func (s *Session) dispatch(events []Event) {
	for _, e := range events {
		s.listener.OnEvent(e)
	}
}
