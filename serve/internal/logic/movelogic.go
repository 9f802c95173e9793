package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

type MoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MoveLogic {
	return &MoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Move applies one move. Moves the game refuses (edge taken, wrong turn,
// game not running) are answered with accepted=false; only malformed
// coordinates are errors.
func (l *MoveLogic) Move(req *types.MoveReq) (*types.MoveResp, error) {
	g, err := gameFromHub(l.svcCtx.Hub, req.Id)
	if err != nil {
		return nil, err
	}

	orientation, err := chess.ParseOrientation(req.Orientation)
	if err != nil {
		return nil, err
	}
	edge := chess.Edge{Row: req.Row, Col: req.Col, Orientation: orientation}
	if !edge.Valid(g.Size()) {
		return nil, fmt.Errorf("%w: %s on a %dx%d grid", chess.ErrInvalidEdge, edge, g.Size(), g.Size())
	}
	player, ok := chess.PlayerFromNumber(req.Player)
	if !ok {
		return nil, fmt.Errorf("%w: %d", chess.ErrInvalidPlayer, req.Player)
	}

	res, err := g.Move(edge, player)
	switch {
	case err == nil:
		return &types.MoveResp{
			Accepted: true,
			Cells:    toCells(res.Cells, player),
			Game:     toGame(g),
		}, nil
	case errors.Is(err, chess.ErrEdgeAlreadyClaimed),
		errors.Is(err, game.ErrGameNotPlaying),
		errors.Is(err, game.ErrNotYourTurn):
		l.Infof("game %s: move %s by %s ignored: %v", g.GameUid(), edge, player, err)
		return &types.MoveResp{
			Reason: err.Error(),
			Cells:  []types.Cell{},
			Game:   toGame(g),
		}, nil
	default:
		return nil, err
	}
}
