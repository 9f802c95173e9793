package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/results",
				Handler: ListResultsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/results",
				Handler: CreateResultHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/games",
				Handler: CreateGameHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/games/:id",
				Handler: GetGameHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/games/:id/moves",
				Handler: MoveHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/games/:id/reset",
				Handler: ResetGameHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/games/:id/start",
				Handler: StartGameHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/games/:id/events",
				Handler: GameEventsHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
	)
}
