package gameresult

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type gameResultModel interface {
	Insert(ctx context.Context, data *GameResult) error
	FindOne(ctx context.Context, id string) (*GameResult, error)
}

type defaultGameResultModel struct {
	conn *mon.Model
}

func newDefaultGameResultModel(conn *mon.Model) *defaultGameResultModel {
	return &defaultGameResultModel{conn: conn}
}

func (m *defaultGameResultModel) Insert(ctx context.Context, data *GameResult) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = data.CreateAt
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultGameResultModel) FindOne(ctx context.Context, id string) (*GameResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data GameResult
	err = m.conn.FindOne(ctx, &data, bson.M{"_id": oid})
	switch err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
