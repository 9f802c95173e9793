package logic

import (
	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/gameresult"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/hub"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

func toGameResult(r *gameresult.GameResult) types.GameResult {
	return types.GameResult{
		Id:           r.ID.Hex(),
		Mode:         r.Mode,
		GridSize:     r.GridSize,
		Player1Score: r.Player1Score,
		Player2Score: r.Player2Score,
		Player1Name:  r.Player1Name,
		Player2Name:  r.Player2Name,
		Winner:       r.Winner,
		CreatedAt:    string(message.NewTimeStamp(r.CreateAt)),
	}
}

func toCells(cells []chess.Cell, owner chess.Player) []types.Cell {
	out := make([]types.Cell, 0, len(cells))
	for _, c := range cells {
		out = append(out, types.Cell{Row: c.Row, Col: c.Col, Owner: owner.Number()})
	}
	return out
}

func toGame(g *hub.Game) types.Game {
	snap := g.Snapshot()
	resp := types.Game{
		Id:            string(snap.GameUid),
		Mode:          string(snap.Mode),
		GridSize:      snap.Size,
		State:         snap.State.String(),
		CurrentPlayer: snap.Current.Number(),
		Player1Score:  snap.Player1Score,
		Player2Score:  snap.Player2Score,
		Player1Name:   g.PlayerName(chess.P1),
		Player2Name:   g.PlayerName(chess.P2),
		Moves:         snap.Moves,
		Edges:         make([]types.Edge, 0, len(snap.Edges)),
		Cells:         make([]types.Cell, 0, len(snap.Cells)),
	}

	for _, e := range snap.Edges {
		resp.Edges = append(resp.Edges, types.Edge{
			Row:         e.Row,
			Col:         e.Col,
			Orientation: e.Orientation.String(),
			Owner:       e.Owner.Number(),
		})
	}
	for _, c := range snap.Cells {
		resp.Cells = append(resp.Cells, types.Cell{Row: c.Row, Col: c.Col, Owner: c.Owner.Number()})
	}
	if snap.Outcome != nil {
		winner := snap.Outcome.WinnerLabel(snap.Mode)
		resp.Winner = &winner
	}

	return resp
}

// gameFromHub resolves a path id to a registered session.
func gameFromHub(h *hub.Hub, id string) (*hub.Game, error) {
	uid, err := message.ParseGameUid(id)
	if err != nil {
		return nil, hub.ErrGameNotFound
	}
	return h.GetGame(uid)
}

var winnerLabels = map[string]struct{}{
	game.WinnerPlayer1:  {},
	game.WinnerPlayer2:  {},
	game.WinnerComputer: {},
	game.WinnerDraw:     {},
}
