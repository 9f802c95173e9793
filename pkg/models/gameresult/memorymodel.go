package gameresult

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ GameResultModel = (*memoryGameResultModel)(nil)

// memoryGameResultModel keeps results in process, for development and tests.
type memoryGameResultModel struct {
	mu      sync.RWMutex
	results []*GameResult
	now     func() time.Time
}

func NewMemoryGameResultModel() GameResultModel {
	return &memoryGameResultModel{now: time.Now}
}

func (m *memoryGameResultModel) Insert(_ context.Context, data *GameResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = m.now()
		data.UpdateAt = data.CreateAt
	}
	cp := *data
	m.results = append(m.results, &cp)
	return nil
}

func (m *memoryGameResultModel) FindOne(_ context.Context, id string) (*GameResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.results {
		if r.ID == oid {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryGameResultModel) ListRecent(_ context.Context, limit int64) ([]*GameResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// insertion order breaks ties between equal timestamps
	out := make([]*GameResult, 0, len(m.results))
	for i := len(m.results) - 1; i >= 0; i-- {
		cp := *m.results[i]
		out = append(out, &cp)
	}
	slices.SortStableFunc(out, func(a, b *GameResult) int {
		return b.CreateAt.Compare(a.CreateAt)
	})

	return truncate(out, limit), nil
}
