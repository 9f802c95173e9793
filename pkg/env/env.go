package env

import "os"

var (
	MongoPassWord = os.Getenv("MONGO_PASSWORD")
	RedisPassWord = os.Getenv("REDIS_PASSWORD")
)
