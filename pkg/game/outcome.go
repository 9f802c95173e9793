package game

import "github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"

const (
	WinnerPlayer1  = "Player 1"
	WinnerPlayer2  = "Player 2"
	WinnerComputer = "Computer"
	WinnerDraw     = "Draw"
)

// Outcome of a finished game. Winner is NoPlayer on a draw.
type Outcome struct {
	Winner       chess.Player
	Player1Score int
	Player2Score int
}

func NewOutcome(player1Score, player2Score int) Outcome {
	o := Outcome{Player1Score: player1Score, Player2Score: player2Score}
	if player1Score > player2Score {
		o.Winner = chess.P1
	} else if player1Score < player2Score {
		o.Winner = chess.P2
	}
	return o
}

func (o Outcome) Draw() bool {
	return o.Winner == chess.NoPlayer
}

// WinnerLabel names the winner the way results are stored: the second seat
// is reported as "Computer" in pvc games.
func (o Outcome) WinnerLabel(mode Mode) string {
	switch o.Winner {
	case chess.P1:
		return WinnerPlayer1
	case chess.P2:
		if mode == PvC {
			return WinnerComputer
		}
		return WinnerPlayer2
	}
	return WinnerDraw
}

// Summary is what a finished session hands to its Recorder.
type Summary struct {
	Mode         Mode
	GridSize     int
	Player1Score int
	Player2Score int
	Winner       string
	Player1Name  string
	Player2Name  string
}

func newSummary(mode Mode, size int, o Outcome, player1Name, player2Name string) Summary {
	return Summary{
		Mode:         mode,
		GridSize:     size,
		Player1Score: o.Player1Score,
		Player2Score: o.Player2Score,
		Winner:       o.WinnerLabel(mode),
		Player1Name:  player1Name,
		Player2Name:  player2Name,
	}
}
