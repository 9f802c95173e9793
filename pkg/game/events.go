package game

import (
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
)

type EventType string

const (
	EventStarted      EventType = "started"
	EventMoveApplied  EventType = "move"
	EventTurnChanged  EventType = "turnChanged"
	EventGameOver     EventType = "gameOver"
	EventRecordFailed EventType = "recordFailed"
	EventReset        EventType = "reset"
)

// Event is delivered to the session's Listener after the step that caused
// it has released the session lock.
//
// Player is the mover for EventMoveApplied and the new current player for
// EventStarted and EventTurnChanged.
type Event struct {
	Type         EventType
	GameUid      message.GameUid
	Player       chess.Player
	Edge         chess.Edge
	Cells        []chess.Cell
	Player1Score int
	Player2Score int
	Outcome      Outcome
	Err          error
}

type Listener interface {
	OnEvent(Event)
}

type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Recorder persists finished games. Record must not block; a failed write
// is reported through onFailure at some later point.
type Recorder interface {
	Record(summary Summary, onFailure func(error))
}

type RecorderFunc func(Summary, func(error))

func (f RecorderFunc) Record(s Summary, onFailure func(error)) {
	f(s, onFailure)
}
