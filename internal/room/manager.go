package room

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"riftlane/server/internal/telemetry"
)

// Manager owns every live room and the player routing tables. A single
// mutex guards the maps; they change only on room creation and teardown
// and on connect/disconnect routing, never inside a tick.
type Manager struct {
	logger  *zap.Logger
	metrics telemetry.Metrics
	opts    Options
	sink    Sink

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	rooms    map[string]*managedRoom
	byPlayer map[string]string
}

type managedRoom struct {
	room   *Room
	cancel context.CancelFunc
}

// NewManager builds a manager. opts is the per-room template; the sink
// delivers frames to player connections.
func NewManager(ctx context.Context, opts Options, sink Sink) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = telemetry.Nop()
	}
	mctx, cancel := context.WithCancel(ctx)
	return &Manager{
		logger:   logger,
		metrics:  metrics,
		opts:     opts,
		sink:     sink,
		ctx:      mctx,
		cancel:   cancel,
		rooms:    make(map[string]*managedRoom),
		byPlayer: make(map[string]string),
	}
}

// CreateRoom builds, starts, and runs a room for the descriptor,
// returning the new game id.
func (m *Manager) CreateRoom(desc MatchDescriptor) (string, error) {
	m.mu.Lock()
	for _, seat := range desc.Players {
		if gameID, busy := m.byPlayer[seat.PlayerID]; busy {
			m.mu.Unlock()
			return "", fmt.Errorf("player %s already in game %s", seat.PlayerID, gameID)
		}
	}
	m.mu.Unlock()

	id := uuid.NewString()
	r, err := New(id, desc, m.opts, m.sink)
	if err != nil {
		return "", err
	}
	r.onEnd = m.roomEnded
	if err := r.Start(); err != nil {
		return "", err
	}

	rctx, cancel := context.WithCancel(m.ctx)
	m.mu.Lock()
	m.rooms[id] = &managedRoom{room: r, cancel: cancel}
	for pid := range r.players {
		m.byPlayer[pid] = id
	}
	m.metrics.Store("rooms_active", uint64(len(m.rooms)))
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		r.RunLoop(rctx)
	}()
	m.logger.Info("room created",
		zap.String("game_id", id),
		zap.Int("players", len(r.players)))
	return id, nil
}

// GameFor returns the game id the player is seated in.
func (m *Manager) GameFor(playerID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byPlayer[playerID]
	return id, ok
}

func (m *Manager) roomFor(playerID string) (*Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gameID, ok := m.byPlayer[playerID]
	if !ok {
		return nil, false
	}
	h, ok := m.rooms[gameID]
	if !ok {
		return nil, false
	}
	return h.room, true
}

// Route delivers an inbound message to the player's room.
func (m *Manager) Route(playerID string, msg Inbound) bool {
	r, ok := m.roomFor(playerID)
	if !ok {
		return false
	}
	msg.PlayerID = playerID
	return r.Submit(msg)
}

// Disconnect tells the player's room their connection dropped.
func (m *Manager) Disconnect(playerID string) {
	m.Route(playerID, Inbound{Kind: InboundDisconnect})
}

// Reconnect resumes a player's stream in their existing room, reporting
// whether they had one.
func (m *Manager) Reconnect(playerID string) bool {
	return m.Route(playerID, Inbound{Kind: InboundReconnect})
}

// RoomCount returns the number of live rooms.
func (m *Manager) RoomCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rooms)
}

// roomEnded tears down a finished room and frees its players for new
// matches. Called from the room's own goroutine.
func (m *Manager) roomEnded(gameID string) {
	m.mu.Lock()
	h, ok := m.rooms[gameID]
	if ok {
		delete(m.rooms, gameID)
		for pid, gid := range m.byPlayer {
			if gid == gameID {
				delete(m.byPlayer, pid)
			}
		}
		m.metrics.Store("rooms_active", uint64(len(m.rooms)))
	}
	m.mu.Unlock()
	if ok {
		h.cancel()
		m.logger.Info("room removed", zap.String("game_id", gameID))
	}
}

// Shutdown cancels every room loop and waits for them to exit.
func (m *Manager) Shutdown() {
	m.cancel()
	m.wg.Wait()
}
