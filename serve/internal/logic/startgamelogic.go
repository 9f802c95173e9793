package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

type StartGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewStartGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StartGameLogic {
	return &StartGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *StartGameLogic) StartGame(req *types.GameReq) (*types.Game, error) {
	g, err := gameFromHub(l.svcCtx.Hub, req.Id)
	if err != nil {
		return nil, err
	}

	if err := g.Start(); err != nil {
		return nil, err
	}
	resp := toGame(g)
	return &resp, nil
}
