package gameresult

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
)

type failingModel struct {
	GameResultModel
}

func (failingModel) Insert(context.Context, *GameResult) error {
	return errors.New("connection refused")
}

func summary() game.Summary {
	return game.Summary{
		Mode:         game.PvC,
		GridSize:     3,
		Player1Score: 4,
		Player2Score: 5,
		Winner:       game.WinnerComputer,
		Player1Name:  "P1",
		Player2Name:  "Computer",
	}
}

func TestRecorderInsertsResults(t *testing.T) {
	model := NewMemoryGameResultModel()
	r := NewRecorder(model, time.Hour, 0)

	failed := false
	r.Record(summary(), func(error) { failed = true })
	require.Equal(t, 1, r.Pending())

	r.Flush()
	assert.Zero(t, r.Pending())
	assert.False(t, failed)

	got, err := model.ListRecent(context.Background(), RecentLimit)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pvc", got[0].Mode)
	assert.Equal(t, "Computer", got[0].Player2Name)
	require.NotNil(t, got[0].Winner)
	assert.Equal(t, "Computer", *got[0].Winner)
	assert.False(t, got[0].ID.IsZero())
}

func TestRecorderReportsEachFailure(t *testing.T) {
	r := NewRecorder(failingModel{}, time.Hour, time.Second)

	var errs []error
	for range 2 {
		r.Record(summary(), func(err error) { errs = append(errs, err) })
	}
	r.Stop()

	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "connection refused")
	assert.Zero(t, r.Pending(), "failed results are not retried")
}

func TestRecorderStopFlushes(t *testing.T) {
	model := NewMemoryGameResultModel()
	r := NewRecorder(model, time.Hour, 0)
	r.Start()

	r.Record(summary(), nil)
	r.Stop()

	got, err := model.ListRecent(context.Background(), RecentLimit)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
