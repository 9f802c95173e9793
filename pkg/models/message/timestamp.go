package message

import "time"

const TimeFormatString = "2006-01-02T15:04:05.000Z07:00"

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(TimeFormatString))
}

func (ts TimeStamp) Time() (time.Time, error) {
	return time.Parse(TimeFormatString, string(ts))
}
