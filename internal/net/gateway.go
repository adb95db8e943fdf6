package net

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"riftlane/server/internal/config"
	"riftlane/server/internal/room"
	"riftlane/server/internal/telemetry"
)

// Gateway is the HTTP/websocket front of the server. It upgrades /ws
// connections into sessions, answers /health, and accepts explicit match
// descriptors on POST /matches for an external matchmaker.
type Gateway struct {
	logger   *zap.Logger
	metrics  telemetry.Metrics
	cfg      config.ServerConfig
	manager  *room.Manager
	sessions *SessionTable
	intake   *Intake
	upgrader websocket.Upgrader
	started  time.Time
}

// NewGateway wires the gateway. sessions must be the same table the room
// manager sends through.
func NewGateway(cfg config.ServerConfig, manager *room.Manager, sessions *SessionTable, intake *Intake, logger *zap.Logger, metrics telemetry.Metrics) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = telemetry.Nop()
	}
	return &Gateway{
		logger:   logger,
		metrics:  metrics,
		cfg:      cfg,
		manager:  manager,
		sessions: sessions,
		intake:   intake,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		started: time.Now(),
	}
}

// Handler returns the gateway's HTTP mux.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", g.handleWS)
	mux.HandleFunc("/health", g.handleHealth)
	mux.HandleFunc("/matches", g.handleMatches)
	return mux
}

func (g *Gateway) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	s := newSession(g, conn)
	// Allow ?player= to pre-bind the session so a client can reconnect
	// without re-sending READY.
	if playerID := r.URL.Query().Get("player"); playerID != "" {
		s.playerID = playerID
		if prev := g.sessions.bind(playerID, s); prev != nil {
			prev.close()
		}
		g.metrics.Store("connections", uint64(g.sessions.Count()))
		if _, ok := g.manager.GameFor(playerID); ok {
			g.manager.Reconnect(playerID)
		}
	}
	s.serve()
}

type healthResponse struct {
	Status      string  `json:"status"`
	Connections int     `json:"connections"`
	Uptime      float64 `json:"uptime"`
	Rooms       int     `json:"rooms"`
}

func (g *Gateway) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(healthResponse{
		Status:      "ok",
		Connections: g.sessions.Count(),
		Uptime:      time.Since(g.started).Seconds(),
		Rooms:       g.manager.RoomCount(),
	})
}

type createMatchResponse struct {
	GameID string `json:"gameId"`
}

// handleMatches accepts a match descriptor from an external matchmaker
// and creates the room immediately.
func (g *Gateway) handleMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var desc room.MatchDescriptor
	if err := json.NewDecoder(r.Body).Decode(&desc); err != nil {
		http.Error(w, "invalid match descriptor", http.StatusBadRequest)
		return
	}
	gameID, err := g.manager.CreateRoom(desc)
	if err != nil {
		g.logger.Warn("match creation rejected", zap.Error(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createMatchResponse{GameID: gameID})
}
