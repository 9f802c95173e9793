package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/go-zero/rest/pathvar"

	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/gameresult"
	"github.com/HuXin0817/dots-and-boxes-web/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/config"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/errorx"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-web/serve/internal/types"
)

func TestMain(m *testing.M) {
	logx.Disable()
	httpx.SetErrorHandlerCtx(errorx.Handler)
	os.Exit(m.Run())
}

func newServiceContext(t *testing.T) *svc.ServiceContext {
	t.Helper()

	var c config.Config
	c.Game.ComputerDelay = time.Hour
	c.Game.SessionTTL = time.Hour
	c.Game.MaxSessions = 8
	c.Recorder.PushInterval = time.Hour

	svcCtx := svc.NewServiceContextWithModel(c, gameresult.NewMemoryGameResultModel())
	t.Cleanup(svcCtx.Close)
	return svcCtx
}

func call(t *testing.T, h http.HandlerFunc, method, body string, vars map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if vars != nil {
		r = pathvar.WithVars(r, vars)
	}
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCreateResult(t *testing.T) {
	svcCtx := newServiceContext(t)
	create := CreateResultHandler(svcCtx)

	w := call(t, create, http.MethodPost,
		`{"mode":"pvc","gridSize":4,"player1Score":7,"player2Score":9,"winner":"Computer"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[types.GameResult](t, w)
	assert.NotEmpty(t, res.Id)
	assert.NotEmpty(t, res.CreatedAt)
	assert.Equal(t, "pvc", res.Mode)
	assert.Equal(t, "P1", res.Player1Name)
	assert.Equal(t, "Computer", res.Player2Name)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "Computer", *res.Winner)

	w = call(t, create, http.MethodPost,
		`{"mode":"pvp","gridSize":3,"player1Score":9,"player2Score":0,"winner":null}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Nil(t, decode[types.GameResult](t, w).Winner)

	bad := map[string]string{
		"missing field":    `{"mode":"pvp","gridSize":3,"player1Score":5}`,
		"mistyped field":   `{"mode":"pvp","gridSize":"three","player1Score":5,"player2Score":4}`,
		"unknown mode":     `{"mode":"online","gridSize":3,"player1Score":5,"player2Score":4}`,
		"grid too large":   `{"mode":"pvp","gridSize":13,"player1Score":5,"player2Score":4}`,
		"unknown winner":   `{"mode":"pvp","gridSize":3,"player1Score":5,"player2Score":4,"winner":"Alice"}`,
		"missing json body": ``,
	}
	for name, body := range bad {
		t.Run(name, func(t *testing.T) {
			w := call(t, create, http.MethodPost, body, nil)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[types.ErrorResponse](t, w).Message)
		})
	}
}

func TestListResults(t *testing.T) {
	svcCtx := newServiceContext(t)
	ctx := context.Background()

	for i := range 55 {
		winner := "Draw"
		require.NoError(t, svcCtx.ResultModel.Insert(ctx, &gameresult.GameResult{
			Mode:         "pvp",
			GridSize:     3 + i%10,
			Player1Score: i,
			Winner:       &winner,
		}))
	}

	w := call(t, ListResultsHandler(svcCtx), http.MethodGet, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	results := decode[[]types.GameResult](t, w)
	require.Len(t, results, gameresult.RecentLimit)
	assert.Equal(t, 54, results[0].Player1Score, "newest first")
	assert.Equal(t, 5, results[len(results)-1].Player1Score)
}

func createGame(t *testing.T, svcCtx *svc.ServiceContext, body string) types.Game {
	t.Helper()

	w := call(t, CreateGameHandler(svcCtx), http.MethodPost, body, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[types.Game](t, w)
}

func move(t *testing.T, svcCtx *svc.ServiceContext, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	return call(t, MoveHandler(svcCtx), http.MethodPost, body, map[string]string{"id": id})
}

func TestGameLifecycle(t *testing.T) {
	svcCtx := newServiceContext(t)

	g := createGame(t, svcCtx, `{"mode":"pvp","gridSize":3,"player1Name":"Ann"}`)
	assert.Equal(t, "playing", g.State)
	assert.Equal(t, 1, g.CurrentPlayer)
	assert.Equal(t, "Ann", g.Player1Name)
	assert.Equal(t, "P2", g.Player2Name)
	assert.Empty(t, g.Edges)
	vars := map[string]string{"id": g.Id}

	w := move(t, svcCtx, g.Id, `{"row":0,"col":0,"orientation":"h","player":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[types.MoveResp](t, w)
	assert.True(t, resp.Accepted)
	assert.Equal(t, 2, resp.Game.CurrentPlayer)
	assert.Equal(t, []types.Edge{{Row: 0, Col: 0, Orientation: "h", Owner: 1}}, resp.Game.Edges)

	t.Run("claimed edge is a no-op", func(t *testing.T) {
		w := move(t, svcCtx, g.Id, `{"row":0,"col":0,"orientation":"h","player":2}`)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[types.MoveResp](t, w)
		assert.False(t, resp.Accepted)
		assert.Equal(t, chess.ErrEdgeAlreadyClaimed.Error(), resp.Reason)
		assert.Len(t, resp.Game.Edges, 1)
	})

	t.Run("wrong player is a no-op", func(t *testing.T) {
		w := move(t, svcCtx, g.Id, `{"row":1,"col":0,"orientation":"h","player":1}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decode[types.MoveResp](t, w).Accepted)
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		for _, body := range []string{
			`{"row":4,"col":0,"orientation":"h","player":2}`,
			`{"row":0,"col":3,"orientation":"h","player":2}`,
			`{"row":-1,"col":0,"orientation":"v","player":2}`,
			`{"row":0,"col":0,"orientation":"d","player":2}`,
			`{"row":0,"col":0,"orientation":"v","player":3}`,
		} {
			w := move(t, svcCtx, g.Id, body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})

	t.Run("unknown game", func(t *testing.T) {
		w := move(t, svcCtx, string(message.NewGameUid()), `{"row":0,"col":0,"orientation":"h","player":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		w = call(t, GetGameHandler(svcCtx), http.MethodGet, "", map[string]string{"id": "../etc/passwd"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	w = call(t, ResetGameHandler(svcCtx), http.MethodPost, "", vars)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "setup", decode[types.Game](t, w).State)

	w = move(t, svcCtx, g.Id, `{"row":0,"col":0,"orientation":"v","player":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[types.MoveResp](t, w).Accepted, "not playing")

	w = call(t, StartGameHandler(svcCtx), http.MethodPost, "", vars)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "playing", decode[types.Game](t, w).State)

	w = call(t, StartGameHandler(svcCtx), http.MethodPost, "", vars)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(t, GetGameHandler(svcCtx), http.MethodGet, "", vars)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[types.Game](t, w).CurrentPlayer)
}

func TestCreateGameValidation(t *testing.T) {
	svcCtx := newServiceContext(t)

	for _, body := range []string{
		`{"mode":"pvp"}`,
		`{"mode":"pve","gridSize":3}`,
		`{"mode":"pvp","gridSize":2}`,
	} {
		w := call(t, CreateGameHandler(svcCtx), http.MethodPost, body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestPvCHumanCannotMoveForComputer(t *testing.T) {
	svcCtx := newServiceContext(t)

	g := createGame(t, svcCtx, `{"mode":"pvc","gridSize":3}`)
	assert.Equal(t, "Computer", g.Player2Name)

	w := move(t, svcCtx, g.Id, `{"row":0,"col":0,"orientation":"h","player":1}`)
	require.True(t, decode[types.MoveResp](t, w).Accepted)

	w = move(t, svcCtx, g.Id, `{"row":1,"col":0,"orientation":"h","player":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[types.MoveResp](t, w).Accepted)
}

func TestFinishedGameIsRecorded(t *testing.T) {
	svcCtx := newServiceContext(t)

	g := createGame(t, svcCtx, `{"mode":"pvp","gridSize":3,"player2Name":"Bob"}`)
	var last types.MoveResp
	player := 1
	for _, e := range chess.Edges(3) {
		body, err := sonic.MarshalString(map[string]any{
			"row":         e.Row,
			"col":         e.Col,
			"orientation": e.Orientation.String(),
			"player":      player,
		})
		require.NoError(t, err)

		w := move(t, svcCtx, g.Id, body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		last = decode[types.MoveResp](t, w)
		require.True(t, last.Accepted, body)
		player = last.Game.CurrentPlayer
	}

	assert.Equal(t, "finished", last.Game.State)
	require.NotNil(t, last.Game.Winner)
	assert.Equal(t, 9, last.Game.Player1Score+last.Game.Player2Score)

	svcCtx.Recorder.Flush()
	w := call(t, ListResultsHandler(svcCtx), http.MethodGet, "", nil)
	results := decode[[]types.GameResult](t, w)
	require.Len(t, results, 1)
	assert.Equal(t, "Bob", results[0].Player2Name)
	assert.Equal(t, *last.Game.Winner, *results[0].Winner)
}

func TestGameEvents(t *testing.T) {
	svcCtx := newServiceContext(t)
	g := createGame(t, svcCtx, `{"mode":"pvp","gridSize":3}`)

	events := GameEventsHandler(svcCtx)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events(w, pathvar.WithVars(r, map[string]string{"id": g.Id}))
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	uid, err := message.ParseGameUid(g.Id)
	require.NoError(t, err)
	live, err := svcCtx.Hub.GetGame(uid)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return live.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

	w := move(t, svcCtx, g.Id, `{"row":0,"col":0,"orientation":"h","player":1}`)
	require.True(t, decode[types.MoveResp](t, w).Accepted)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var kinds []string
	for range 2 {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		msg, err := message.NewEventMessage(data)
		require.NoError(t, err)
		assert.Equal(t, message.GameUid(g.Id), msg.GameUid)
		kinds = append(kinds, msg.Type)
	}
	assert.Equal(t, []string{"move", "turnChanged"}, kinds)

	svcCtx.Hub.RemoveGame(uid)
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "%v", err)
}

func TestGameEventsUnknownGame(t *testing.T) {
	svcCtx := newServiceContext(t)

	w := call(t, GameEventsHandler(svcCtx), http.MethodGet, "", map[string]string{"id": string(message.NewGameUid())})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte("game not found")))
}
