package message

import "github.com/bytedance/sonic"

type EdgeMessage struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
}

type CellMessage struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Owner int `json:"owner"`
}

// EventMessage is one frame of a session's event stream.
type EventMessage struct {
	Type         string        `json:"type"`
	GameUid      GameUid       `json:"gameId"`
	TimeStamp    TimeStamp     `json:"timestamp"`
	Player       int           `json:"player,omitempty"`
	Edge         *EdgeMessage  `json:"edge,omitempty"`
	Cells        []CellMessage `json:"cells,omitempty"`
	Player1Score int           `json:"player1Score"`
	Player2Score int           `json:"player2Score"`
	Winner       string        `json:"winner,omitempty"`
	Error        string        `json:"error,omitempty"`
}

func NewEventMessage(b []byte) (m EventMessage, err error) {
	err = sonic.Unmarshal(b, &m)
	return
}

func (m EventMessage) Bytes() []byte {
	b, _ := sonic.Marshal(m)
	return b
}

func (m EventMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
