package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

type ResetGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewResetGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResetGameLogic {
	return &ResetGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ResetGameLogic) ResetGame(req *types.GameReq) (*types.Game, error) {
	g, err := gameFromHub(l.svcCtx.Hub, req.Id)
	if err != nil {
		return nil, err
	}

	g.Reset()
	resp := toGame(g)
	return &resp, nil
}
