package errorx

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/game"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/gameresult"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/hub"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

type badRequest struct {
	err error
}

func (e badRequest) Error() string {
	return e.err.Error()
}

func (e badRequest) Unwrap() error {
	return e.err
}

// BadRequest marks err as the caller's fault.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}
	return badRequest{err: err}
}

var statusCodes = []struct {
	err  error
	code int
}{
	{chess.ErrInvalidEdge, http.StatusBadRequest},
	{chess.ErrInvalidPlayer, http.StatusBadRequest},
	{chess.ErrBoardSizeOutOfRange, http.StatusBadRequest},
	{game.ErrInvalidMode, http.StatusBadRequest},
	{gameresult.ErrInvalidObjectId, http.StatusBadRequest},
	{hub.ErrGameNotFound, http.StatusNotFound},
	{gameresult.ErrNotFound, http.StatusNotFound},
	{game.ErrNotInSetup, http.StatusConflict},
	{hub.ErrHubFull, http.StatusServiceUnavailable},
}

// Handler renders errors as {"message": ...} with a matching status code.
// It is installed with httpx.SetErrorHandlerCtx.
func Handler(ctx context.Context, err error) (int, any) {
	var br badRequest
	if errors.As(err, &br) {
		return http.StatusBadRequest, types.ErrorResponse{Message: err.Error()}
	}

	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return sc.code, types.ErrorResponse{Message: err.Error()}
		}
	}

	logx.WithContext(ctx).Errorf("internal error: %v", err)
	return http.StatusInternalServerError, types.ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)}
}
