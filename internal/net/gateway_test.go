package net

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"riftlane/server/internal/config"
	"riftlane/server/internal/content"
	"riftlane/server/internal/input"
	"riftlane/server/internal/room"
)

type testServer struct {
	gw      *Gateway
	srv     *httptest.Server
	manager *room.Manager
	intake  *Intake
}

func newTestServer(t *testing.T, perTeam int) *testServer {
	t.Helper()
	reg := content.Default()
	sessions := NewSessionTable(nil)
	manager := room.NewManager(context.Background(), room.Options{
		Registry: reg,
		MapID:    "summoners-rift",
		Simulation: config.SimulationConfig{
			TickRate:        30,
			IngressSize:     64,
			CatchupMaxTicks: 4,
		},
		RateLimit: input.DefaultConfig(),
	}, sessions)
	t.Cleanup(manager.Shutdown)

	intake := NewIntake(reg, manager, perTeam, nil)
	gw := NewGateway(config.ServerConfig{
		IdleTimeout:         2 * time.Minute,
		WriteTimeout:        10 * time.Second,
		EgressQueue:         64,
		MalformedFrameLimit: 10,
	}, manager, sessions, intake, nil, nil)

	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(srv.Close)
	return &testServer{gw: gw, srv: srv, manager: manager, intake: intake}
}

func (ts *testServer) dial(t *testing.T, query string) *websocket.Conn {
	t.Helper()
	url := strings.Replace(ts.srv.URL, "http", "ws", 1) + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readFrameOfType drains frames until one of the wanted type arrives. The
// stream interleaves STATE_UPDATEs once a match is running.
func readFrameOfType(t *testing.T, conn *websocket.Conn, want string) map[string]json.RawMessage {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	conn.SetReadDeadline(deadline)
	for time.Now().Before(deadline) {
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(payload, &raw))
		var typ string
		require.NoError(t, json.Unmarshal(raw["type"], &typ))
		if typ == want {
			return raw
		}
	}
	t.Fatalf("no %s frame before deadline", want)
	return nil
}

func TestHealthReportsStatus(t *testing.T) {
	ts := newTestServer(t, 1)

	resp, err := http.Get(ts.srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Zero(t, health.Rooms)
	require.Zero(t, health.Connections)
}

func TestCreateMatchStartsRoom(t *testing.T) {
	ts := newTestServer(t, 1)

	body := `{"players":[
		{"playerId":"p1","championId":"ashka","side":0},
		{"playerId":"p2","championId":"vael","side":1}
	]}`
	resp, err := http.Post(ts.srv.URL+"/matches", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created createMatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.GameID)

	require.Equal(t, 1, ts.manager.RoomCount())
	gameID, ok := ts.manager.GameFor("p1")
	require.True(t, ok)
	require.Equal(t, created.GameID, gameID)
}

func TestCreateMatchRejectsBadJSON(t *testing.T) {
	ts := newTestServer(t, 1)
	resp, err := http.Post(ts.srv.URL+"/matches", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateMatchRejectsEmptyDescriptor(t *testing.T) {
	ts := newTestServer(t, 1)
	resp, err := http.Post(ts.srv.URL+"/matches", "application/json", strings.NewReader(`{"players":[]}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Zero(t, ts.manager.RoomCount())
}

func TestMatchesRejectsGet(t *testing.T) {
	ts := newTestServer(t, 1)
	resp, err := http.Get(ts.srv.URL + "/matches")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPingPongOverWebsocket(t *testing.T) {
	ts := newTestServer(t, 1)
	conn := ts.dial(t, "")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"ver":1,"type":"PING","timestamp":42}`)))

	raw := readFrameOfType(t, conn, "PONG")
	var clientTS int64
	require.NoError(t, json.Unmarshal(raw["clientTimestamp"], &clientTS))
	require.EqualValues(t, 42, clientTS)
}

func TestInputBeforeReadyIsRejected(t *testing.T) {
	ts := newTestServer(t, 1)
	conn := ts.dial(t, "")

	frame := `{"ver":1,"type":"INPUT","input":{"seq":1,"type":"MOVE","targetX":100,"targetY":100}}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))

	raw := readFrameOfType(t, conn, "ERROR")
	var msg string
	require.NoError(t, json.Unmarshal(raw["error"], &msg))
	require.Contains(t, msg, "READY")
}

func TestQuickMatchOverWebsocket(t *testing.T) {
	ts := newTestServer(t, 1)
	c1 := ts.dial(t, "")
	c2 := ts.dial(t, "")

	require.NoError(t, c1.WriteMessage(websocket.TextMessage,
		[]byte(`{"ver":1,"type":"READY","playerId":"p1","championId":"ashka"}`)))
	require.NoError(t, c2.WriteMessage(websocket.TextMessage,
		[]byte(`{"ver":1,"type":"READY","playerId":"p2","championId":"vael"}`)))

	for _, conn := range []*websocket.Conn{c1, c2} {
		start := readFrameOfType(t, conn, "GAME_START")
		var gameID string
		require.NoError(t, json.Unmarshal(start["gameId"], &gameID))
		require.NotEmpty(t, gameID)
		readFrameOfType(t, conn, "FULL_STATE")
		readFrameOfType(t, conn, "STATE_UPDATE")
	}

	require.Equal(t, 1, ts.manager.RoomCount())
	require.Zero(t, ts.intake.Queued())
}

func TestReadyWithUnknownChampionGetsError(t *testing.T) {
	ts := newTestServer(t, 1)
	conn := ts.dial(t, "")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"ver":1,"type":"READY","playerId":"p1","championId":"teemo"}`)))

	raw := readFrameOfType(t, conn, "ERROR")
	var msg string
	require.NoError(t, json.Unmarshal(raw["error"], &msg))
	require.Contains(t, msg, "unknown champion")
	require.Zero(t, ts.intake.Queued())
}

func TestSessionTableSendWithoutConnection(t *testing.T) {
	table := NewSessionTable(nil)
	require.False(t, table.Send("ghost", []byte("{}")))
	require.Zero(t, table.Count())
}
