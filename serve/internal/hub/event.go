package hub

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
)

// NewEventMessage converts a session event into its wire frame.
func NewEventMessage(mode game.Mode, e game.Event) message.EventMessage {
	msg := message.EventMessage{
		Type:         string(e.Type),
		GameUid:      e.GameUid,
		TimeStamp:    message.NewTimeStamp(time.Now()),
		Player:       e.Player.Number(),
		Player1Score: e.Player1Score,
		Player2Score: e.Player2Score,
	}

	switch e.Type {
	case game.EventMoveApplied:
		msg.Edge = &message.EdgeMessage{
			Row:         e.Edge.Row,
			Col:         e.Edge.Col,
			Orientation: e.Edge.Orientation.String(),
		}
		for _, c := range e.Cells {
			msg.Cells = append(msg.Cells, message.CellMessage{
				Row:   c.Row,
				Col:   c.Col,
				Owner: e.Player.Number(),
			})
		}
	case game.EventGameOver:
		msg.Winner = e.Outcome.WinnerLabel(mode)
	case game.EventRecordFailed:
		if e.Err != nil {
			msg.Error = e.Err.Error()
		}
	}

	return msg
}
