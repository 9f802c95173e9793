package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/gameresult"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/errorx"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

type CreateResultLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateResultLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateResultLogic {
	return &CreateResultLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CreateResultLogic) CreateResult(req *types.CreateResultReq) (*types.GameResult, error) {
	if req.Winner != nil {
		if _, ok := winnerLabels[*req.Winner]; !ok {
			return nil, errorx.BadRequest(fmt.Errorf("winner %q is not one of Player 1, Player 2, Computer, Draw", *req.Winner))
		}
	}

	mode := game.Mode(req.Mode)
	if req.Player1Name == "" {
		req.Player1Name = mode.PlayerName(chess.P1)
	}
	if req.Player2Name == "" {
		req.Player2Name = mode.PlayerName(chess.P2)
	}

	result := &gameresult.GameResult{
		Mode:         req.Mode,
		GridSize:     req.GridSize,
		Player1Score: req.Player1Score,
		Player2Score: req.Player2Score,
		Player1Name:  req.Player1Name,
		Player2Name:  req.Player2Name,
		Winner:       req.Winner,
	}
	if err := l.svcCtx.ResultModel.Insert(l.ctx, result); err != nil {
		return nil, err
	}

	resp := toGameResult(result)
	return &resp, nil
}
