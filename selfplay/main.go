package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/gameresult"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/model"
)

func main() {
	initConfig()

	if *BoardSize < chess.MinBoardSize || *BoardSize > chess.MaxBoardSize {
		fmt.Println(aurora.Red(fmt.Sprintf("BoardSize must be within [%d, %d]", chess.MinBoardSize, chess.MaxBoardSize)))
		os.Exit(2)
	}

	var recorder game.Recorder
	if Record {
		r := gameresult.NewRecorder(
			gameresult.NewGameResultModel(*MongoUrl, *MongoDB, gameresult.GameResultCollectionName),
			time.Second, 0,
		)
		r.Start()
		defer r.Stop()
		recorder = r
	}

	bar := model.NewBar(os.Stderr, *Games, fmt.Sprintf("%dx%d self-play", *BoardSize, *BoardSize))
	stats, err := NewRunner(*BoardSize, *Seed, recorder).Run(*Games, func() { bar.Add(1) })
	bar.Close()
	if err != nil {
		logx.Errorf("self-play stopped after %d games: %v", stats.Games, err)
	}

	fmt.Println()
	printStats(stats)
}

func printStats(stats Stats) {
	if stats.Games == 0 {
		return
	}

	percent := func(n int) string {
		return fmt.Sprintf("%5.1f%%", 100*float64(n)/float64(stats.Games))
	}
	fmt.Printf("games   %d (seed %d, record %s)\n", stats.Games, *Seed, Record)
	fmt.Printf("%s %s\n", aurora.Cyan(player1Name+" wins"), percent(stats.Player1Wins))
	fmt.Printf("%s %s\n", aurora.Magenta(player2Name+" wins"), percent(stats.Player2Wins))
	fmt.Printf("%s      %s\n", aurora.Yellow("draws"), percent(stats.Draws))

	if stats.Moves == 0 {
		return
	}
	for _, tier := range []assess.Tier{assess.ScoringTier, assess.SafeTier, assess.RandomTier} {
		fmt.Printf("  %-8s %5.1f%% of moves\n", tier, 100*float64(stats.Tiers[tier])/float64(stats.Moves))
	}
}

func replacePassword(url, password string) string {
	if !strings.Contains(url, "%s") {
		return url
	}
	return fmt.Sprintf(url, password)
}
