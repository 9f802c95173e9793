package main

import (
	"flag"
	"time"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/env"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/model"
)

var (
	BoardSize = flag.Int("BoardSize", 4, "cells per side, 3 to 12")
	Games     = flag.Int("Games", 100, "games to play")
	Seed      = flag.Uint64("Seed", 0, "random seed, 0 seeds from the clock")
	MongoUrl  = flag.String("MongoUrl", "mongodb://root:%s@127.0.0.1:27017", "mongo url, %s is replaced by MONGO_PASSWORD")
	MongoDB   = flag.String("MongoDB", "dots_and_boxes", "mongo database")

	Record = model.Off
)

func init() {
	flag.Var(&Record, "Record", "store every result in mongo (ON/OFF)")
}

func initConfig() {
	flag.Parse()
	if *Seed == 0 {
		*Seed = uint64(time.Now().UnixNano())
	}
	if env.MongoPassWord == "" {
		return
	}
	*MongoUrl = replacePassword(*MongoUrl, env.MongoPassWord)
}
