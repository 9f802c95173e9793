package chess

import "errors"

var (
	ErrEdgeAlreadyClaimed  = errors.New("edge already claimed")
	ErrInvalidEdge         = errors.New("invalid edge coordinate")
	ErrInvalidPlayer       = errors.New("invalid player")
	ErrBoardSizeOutOfRange = errors.New("board size out of range")
)
