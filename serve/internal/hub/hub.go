package hub

import (
	"errors"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrHubFull      = errors.New("too many games in progress")
)

// Hub is the registry of live sessions. A session that nobody touched for
// ttl is closed by CleanupExpiredGames.
type Hub struct {
	mu       sync.RWMutex
	games    map[message.GameUid]*Game
	maxGames int
	ttl      time.Duration
	options  []game.Option
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewHub returns a hub holding at most maxGames sessions. options are
// applied to every session it creates.
func NewHub(maxGames int, ttl time.Duration, options ...game.Option) *Hub {
	return &Hub{
		games:    make(map[message.GameUid]*Game),
		maxGames: maxGames,
		ttl:      ttl,
		options:  options,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// CreateGame registers and starts a new session.
func (h *Hub) CreateGame(mode game.Mode, size int, player1Name, player2Name string) (*Game, error) {
	g := newGame(h.now())

	options := append([]game.Option{}, h.options...)
	options = append(options,
		game.WithListener(g),
		game.WithPlayerNames(player1Name, player2Name),
	)
	session, err := game.NewSession(mode, size, options...)
	if err != nil {
		return nil, err
	}
	g.Session = session

	h.mu.Lock()
	if len(h.games) >= h.maxGames {
		h.removeExpiredLocked()
	}
	if len(h.games) >= h.maxGames {
		h.mu.Unlock()
		return nil, ErrHubFull
	}
	h.games[session.GameUid()] = g
	h.mu.Unlock()

	if err := session.Start(); err != nil {
		h.RemoveGame(session.GameUid())
		return nil, err
	}

	logx.Infof("game %s created: mode=%s size=%d", session.GameUid(), mode, size)
	return g, nil
}

// GetGame looks a session up and marks it as used.
func (h *Hub) GetGame(id message.GameUid) (*Game, error) {
	h.mu.RLock()
	g, ok := h.games[id]
	h.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}

	g.touch(h.now())
	return g, nil
}

func (h *Hub) RemoveGame(id message.GameUid) {
	h.mu.Lock()
	g, ok := h.games[id]
	delete(h.games, id)
	h.mu.Unlock()

	if ok {
		g.close()
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.games)
}

func (h *Hub) CleanupExpiredGames() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeExpiredLocked()
}

func (h *Hub) removeExpiredLocked() {
	now := h.now()
	for id, g := range h.games {
		if g.idle(now) > h.ttl {
			delete(h.games, id)
			g.close()
			logx.Infof("game %s expired", id)
		}
	}
}

// MaintainGames runs CleanupExpiredGames every interval until Stop.
func (h *Hub) MaintainGames(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.CleanupExpiredGames()
		case <-h.stop:
			return
		}
	}
}

// Stop closes every session and ends MaintainGames.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, g := range h.games {
		g.close()
	}
	h.games = make(map[message.GameUid]*Game)
}
