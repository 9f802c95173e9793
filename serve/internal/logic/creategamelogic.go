package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

type CreateGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateGameLogic {
	return &CreateGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CreateGameLogic) CreateGame(req *types.CreateGameReq) (*types.Game, error) {
	mode, err := game.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}

	g, err := l.svcCtx.Hub.CreateGame(mode, req.GridSize, req.Player1Name, req.Player2Name)
	if err != nil {
		return nil, err
	}

	resp := toGame(g)
	return &resp, nil
}
