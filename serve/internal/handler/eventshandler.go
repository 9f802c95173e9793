package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/errorx"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/hub"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GameEventsHandler streams the events of one game over a websocket until
// the client goes away or the game is dropped from the hub.
func GameEventsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GameReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.BadRequest(err))
			return
		}
		uid, err := message.ParseGameUid(req.Id)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, hub.ErrGameNotFound)
			return
		}
		g, err := svcCtx.Hub.GetGame(uid)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.WithContext(r.Context()).Errorf("websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		sub := g.Subscribe()
		defer g.Unsubscribe(sub)

		done := make(chan struct{})
		go readPump(conn, done)
		writePump(conn, sub, done)
	}
}

// readPump drains client frames so control messages are processed, and
// closes done once the connection fails.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writePump(conn *websocket.Conn, sub *hub.Subscriber, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg.Bytes()); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
