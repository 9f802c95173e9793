package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/errorx"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/logic"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

func ListResultsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewListResultsLogic(r.Context(), svcCtx)
		resp, err := l.ListResults()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func CreateResultHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateResultReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.BadRequest(err))
			return
		}

		l := logic.NewCreateResultLogic(r.Context(), svcCtx)
		resp, err := l.CreateResult(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusCreated, resp)
		}
	}
}
