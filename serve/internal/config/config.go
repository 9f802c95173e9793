package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

type Config struct {
	rest.RestConf
	Storage   string `json:",default=memory,options=memory|mongo"`
	MongoConf struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",default=dots_and_boxes"`
		Collection   string `json:",default=game_results"`
		PassWord     string `json:",optional"`
	}
	CacheRedis   redis.RedisConf `json:",optional"`
	CacheExpires int             `json:",default=60"`
	Game         struct {
		ComputerDelay   time.Duration `json:",default=600ms"`
		SessionTTL      time.Duration `json:",default=30m"`
		MaxSessions     int           `json:",default=1024"`
		CleanupInterval time.Duration `json:",default=1m"`
	}
	Recorder struct {
		PushInterval  time.Duration `json:",default=1s"`
		InsertTimeout time.Duration `json:",default=5s"`
	}
	DebugAddr string `json:",optional"`
}
