package svc

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/env"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/gameresult"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/config"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/hub"
)

type ServiceContext struct {
	Config      config.Config
	ResultModel gameresult.GameResultModel
	Recorder    *gameresult.Recorder
	Hub         *hub.Hub
}

func NewServiceContext(c config.Config) *ServiceContext {
	return NewServiceContextWithModel(c, newResultModel(c))
}

// NewServiceContextWithModel wires the service around an existing result
// model and starts the background workers.
func NewServiceContextWithModel(c config.Config, model gameresult.GameResultModel) *ServiceContext {
	recorder := gameresult.NewRecorder(model, c.Recorder.PushInterval, c.Recorder.InsertTimeout)
	recorder.Start()

	h := hub.NewHub(c.Game.MaxSessions, c.Game.SessionTTL,
		game.WithComputerDelay(c.Game.ComputerDelay),
		game.WithRecorder(recorder),
	)
	if c.Game.CleanupInterval > 0 {
		go h.MaintainGames(c.Game.CleanupInterval)
	}

	return &ServiceContext{
		Config:      c,
		ResultModel: model,
		Recorder:    recorder,
		Hub:         h,
	}
}

func newResultModel(c config.Config) gameresult.GameResultModel {
	var model gameresult.GameResultModel
	switch c.Storage {
	case config.StorageMongo:
		if c.MongoConf.PassWord == "" {
			c.MongoConf.PassWord = env.MongoPassWord
		}
		url := c.MongoConf.Url
		if c.MongoConf.PassWord != "" {
			url = fmt.Sprintf(url, c.MongoConf.PassWord)
		}
		model = gameresult.NewGameResultModel(url, c.MongoConf.DataBaseName, c.MongoConf.Collection)
	default:
		model = gameresult.NewMemoryGameResultModel()
	}

	if c.CacheRedis.Host != "" {
		if c.CacheRedis.Pass == "" {
			c.CacheRedis.Pass = env.RedisPassWord
		}
		model = gameresult.NewCachedModel(model, redis.MustNewRedis(c.CacheRedis), c.CacheExpires)
	}

	logx.Infof("results stored in %s, redis cache %t", c.Storage, c.CacheRedis.Host != "")
	return model
}

// Close stops the sessions and flushes results still waiting to be written.
func (s *ServiceContext) Close() {
	s.Hub.Stop()
	s.Recorder.Stop()
}
