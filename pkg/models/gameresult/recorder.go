package gameresult

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/pusher"
)

const defaultInsertTimeout = 5 * time.Second

type resultJob struct {
	result    *GameResult
	onFailure func(error)
}

var _ game.Recorder = (*Recorder)(nil)

// Recorder writes finished games in the background. Each result that
// fails to insert is reported to its own failure callback and not retried.
type Recorder struct {
	model   GameResultModel
	pusher  *pusher.Pusher[resultJob]
	timeout time.Duration
}

func NewRecorder(model GameResultModel, interval, timeout time.Duration) *Recorder {
	if timeout <= 0 {
		timeout = defaultInsertTimeout
	}

	r := &Recorder{
		model:   model,
		timeout: timeout,
	}
	r.pusher = pusher.NewPusher(
		pusher.WithPushInterval[resultJob](interval),
		pusher.WithPushLogic(r.push),
	)
	return r
}

func NewGameResultFromSummary(s game.Summary) *GameResult {
	winner := s.Winner
	return &GameResult{
		Mode:         string(s.Mode),
		GridSize:     s.GridSize,
		Player1Score: s.Player1Score,
		Player2Score: s.Player2Score,
		Player1Name:  s.Player1Name,
		Player2Name:  s.Player2Name,
		Winner:       &winner,
	}
}

func (r *Recorder) Record(s game.Summary, onFailure func(error)) {
	r.pusher.AddMessages(resultJob{
		result:    NewGameResultFromSummary(s),
		onFailure: onFailure,
	})
}

func (r *Recorder) push(jobs ...resultJob) error {
	for _, job := range jobs {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		err := r.model.Insert(ctx, job.result)
		cancel()
		if err == nil {
			continue
		}

		logx.Errorf("insert game result %s %d:%d: %v",
			job.result.Mode, job.result.Player1Score, job.result.Player2Score, err)
		if job.onFailure != nil {
			job.onFailure(err)
		}
	}

	return nil
}

// Flush writes everything recorded so far.
func (r *Recorder) Flush() {
	_ = r.pusher.PushAll()
}

func (r *Recorder) Pending() int {
	return r.pusher.Len()
}

func (r *Recorder) Start() {
	r.pusher.Start()
}

func (r *Recorder) Stop() {
	r.pusher.Stop()
}
