package gameresult

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RecentLimit = 50

type GameResult struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	Mode         string  `bson:"mode" json:"mode"`
	GridSize     int     `bson:"gridSize" json:"gridSize"`
	Player1Score int     `bson:"player1Score" json:"player1Score"`
	Player2Score int     `bson:"player2Score" json:"player2Score"`
	Player1Name  string  `bson:"player1Name" json:"player1Name"`
	Player2Name  string  `bson:"player2Name" json:"player2Name"`
	Winner       *string `bson:"winner" json:"winner"`
}
