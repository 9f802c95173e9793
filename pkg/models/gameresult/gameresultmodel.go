package gameresult

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const GameResultCollectionName = "game_results"

var _ GameResultModel = (*customGameResultModel)(nil)

type (
	// GameResultModel stores finished games. ListRecent returns at most
	// limit results, newest first.
	GameResultModel interface {
		gameResultModel
		ListRecent(ctx context.Context, limit int64) ([]*GameResult, error)
	}

	customGameResultModel struct {
		*defaultGameResultModel
	}
)

// NewGameResultModel returns a model for the mongo.
func NewGameResultModel(url, db, collection string) GameResultModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customGameResultModel{
		defaultGameResultModel: newDefaultGameResultModel(conn),
	}
}

func (m *customGameResultModel) ListRecent(ctx context.Context, limit int64) ([]*GameResult, error) {
	var data []*GameResult
	opts := options.Find().
		SetSort(bson.D{{Key: "createAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	if err := m.conn.Find(ctx, &data, bson.M{}, opts); err != nil {
		return nil, err
	}
	return data, nil
}
