package gameresult

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	cacheRecentKey        = "cache:gameResult:recent"
	defaultCacheExpiresIn = 60
)

var _ GameResultModel = (*CachedModel)(nil)

// CachedModel keeps the newest RecentLimit results in redis in front of
// another model. Every insert drops the cached list. A redis failure is
// logged and the call falls through to the underlying model.
type CachedModel struct {
	GameResultModel
	rds     *redis.Redis
	expires int
}

func NewCachedModel(m GameResultModel, rds *redis.Redis, expiresIn int) *CachedModel {
	if expiresIn <= 0 {
		expiresIn = defaultCacheExpiresIn
	}
	return &CachedModel{
		GameResultModel: m,
		rds:             rds,
		expires:         expiresIn,
	}
}

func (m *CachedModel) Insert(ctx context.Context, data *GameResult) error {
	if err := m.GameResultModel.Insert(ctx, data); err != nil {
		return err
	}

	if _, err := m.rds.DelCtx(ctx, cacheRecentKey); err != nil {
		logx.WithContext(ctx).Errorf("drop %s: %v", cacheRecentKey, err)
	}
	return nil
}

func (m *CachedModel) ListRecent(ctx context.Context, limit int64) ([]*GameResult, error) {
	if limit > RecentLimit {
		return m.GameResultModel.ListRecent(ctx, limit)
	}

	if results, ok := m.loadRecent(ctx); ok {
		return truncate(results, limit), nil
	}

	results, err := m.GameResultModel.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}
	m.storeRecent(ctx, results)
	return truncate(results, limit), nil
}

func (m *CachedModel) loadRecent(ctx context.Context) ([]*GameResult, bool) {
	val, err := m.rds.GetCtx(ctx, cacheRecentKey)
	if err != nil {
		logx.WithContext(ctx).Errorf("get %s: %v", cacheRecentKey, err)
		return nil, false
	}
	if val == "" {
		return nil, false
	}

	var results []*GameResult
	if err := sonic.UnmarshalString(val, &results); err != nil {
		logx.WithContext(ctx).Errorf("decode %s: %v", cacheRecentKey, err)
		return nil, false
	}
	return results, true
}

func (m *CachedModel) storeRecent(ctx context.Context, results []*GameResult) {
	val, err := sonic.MarshalString(results)
	if err != nil {
		logx.WithContext(ctx).Errorf("encode %s: %v", cacheRecentKey, err)
		return
	}
	if err := m.rds.SetexCtx(ctx, cacheRecentKey, val, m.expires); err != nil {
		logx.WithContext(ctx).Errorf("set %s: %v", cacheRecentKey, err)
	}
}

func truncate(results []*GameResult, limit int64) []*GameResult {
	if limit >= 0 && int64(len(results)) > limit {
		return results[:limit]
	}
	return results
}
