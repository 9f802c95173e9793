package game

import "time"

type Timer interface {
	Stop() bool
}

// Scheduler delays the computer's move. The default runs on time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clock struct{}

func (clock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
