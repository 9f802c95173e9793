package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/gameresult"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

type ListResultsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewListResultsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListResultsLogic {
	return &ListResultsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ListResultsLogic) ListResults() ([]types.GameResult, error) {
	results, err := l.svcCtx.ResultModel.ListRecent(l.ctx, gameresult.RecentLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]types.GameResult, 0, len(results))
	for _, r := range results {
		resp = append(resp, toGameResult(r))
	}
	return resp, nil
}
