package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseGameUid(t *testing.T) {
	id := NewGameUid()
	parsed, err := ParseGameUid(string(id))
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = ParseGameUid("../../etc/passwd")
	require.Error(t, err)
}

func TestTimeStamp(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 30, 15, 250*int(time.Millisecond), time.UTC)
	ts := NewTimeStamp(now)
	require.Equal(t, TimeStamp("2026-10-19T08:30:15.250Z"), ts)

	parsed, err := ts.Time()
	require.NoError(t, err)
	require.True(t, now.Equal(parsed))
}

func TestEventMessageOmitsEmptyFields(t *testing.T) {
	m := EventMessage{Type: "turnChanged", GameUid: "g", TimeStamp: "t", Player: 2}
	decoded, err := NewEventMessage(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, m, decoded)
	require.NotContains(t, m.String(), "edge")
	require.NotContains(t, m.String(), "winner")
}
