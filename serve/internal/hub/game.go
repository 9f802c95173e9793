package hub

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
)

const subscriberBuffer = 32

// Game is a registered session plus the websocket subscribers of its
// event stream.
type Game struct {
	*game.Session

	mu          sync.Mutex
	subscribers map[*Subscriber]struct{}
	lastSeen    time.Time
	closed      bool
}

// Subscriber receives the event stream of one game. C is closed when the
// subscriber falls behind, unsubscribes or the game goes away.
type Subscriber struct {
	C  <-chan message.EventMessage
	ch chan message.EventMessage
}

func newGame(now time.Time) *Game {
	return &Game{
		subscribers: make(map[*Subscriber]struct{}),
		lastSeen:    now,
	}
}

func (g *Game) Subscribe() *Subscriber {
	ch := make(chan message.EventMessage, subscriberBuffer)
	sub := &Subscriber{C: ch, ch: ch}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		close(ch)
		return sub
	}
	g.subscribers[sub] = struct{}{}
	return sub
}

func (g *Game) Unsubscribe(sub *Subscriber) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.subscribers[sub]; ok {
		delete(g.subscribers, sub)
		close(sub.ch)
	}
}

func (g *Game) Subscribers() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.subscribers)
}

// OnEvent fans a session event out to the subscribers. A subscriber whose
// buffer is full is dropped instead of stalling the session.
func (g *Game) OnEvent(e game.Event) {
	if e.Type == game.EventRecordFailed {
		logx.Errorf("game %s: record result: %v", e.GameUid, e.Err)
	}
	if e.Type == game.EventGameOver {
		logx.Infof("game %s finished %d:%d", e.GameUid, e.Player1Score, e.Player2Score)
	}

	msg := NewEventMessage(g.Mode(), e)

	g.mu.Lock()
	defer g.mu.Unlock()

	for sub := range g.subscribers {
		select {
		case sub.ch <- msg:
		default:
			delete(g.subscribers, sub)
			close(sub.ch)
			logx.Infof("game %s: dropped slow subscriber", e.GameUid)
		}
	}
}

func (g *Game) touch(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastSeen = now
}

func (g *Game) idle(now time.Time) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	return now.Sub(g.lastSeen)
}

func (g *Game) close() {
	g.Session.Close()

	g.mu.Lock()
	defer g.mu.Unlock()

	g.closed = true
	for sub := range g.subscribers {
		close(sub.ch)
	}
	g.subscribers = make(map[*Subscriber]struct{})
}
