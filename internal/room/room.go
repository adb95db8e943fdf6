// Package room runs one match per Room: a world simulation, the input
// handler, and the per-viewer replication pipeline, all driven by a
// single goroutine. The Manager owns the set of rooms and the player
// routing tables.
package room

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"riftlane/server/internal/config"
	"riftlane/server/internal/content"
	"riftlane/server/internal/input"
	"riftlane/server/internal/protocol"
	"riftlane/server/internal/replication"
	"riftlane/server/internal/telemetry"
	"riftlane/server/internal/world"
)

// State is a room's lifecycle phase.
type State string

const (
	StateWaiting  State = "waiting"
	StateStarting State = "starting"
	StatePlaying  State = "playing"
	StateEnded    State = "ended"
)

// Seat is one player's slot in a match descriptor.
type Seat struct {
	PlayerID   string       `json:"playerId"`
	ChampionID string       `json:"championId"`
	Side       content.Side `json:"side"`
}

// MatchDescriptor is the external matchmaker's contract: who plays what
// on which side.
type MatchDescriptor struct {
	Players []Seat `json:"players"`
}

// Options bundles the shared dependencies and tuning a room needs.
type Options struct {
	Logger   *zap.Logger
	Metrics  telemetry.Metrics
	Registry *content.Registry
	MapID    string

	Simulation  config.SimulationConfig
	Replication config.ReplicationConfig
	RateLimit   input.Config
}

// seatState is a room's view of one player.
type seatState struct {
	seat      Seat
	entityID  world.ID
	connected bool
}

// Room owns one match. All mutable state is confined to the goroutine
// running the tick loop; other goroutines interact via Submit and the
// read-only State accessor.
type Room struct {
	id      string
	logger  *zap.Logger
	metrics telemetry.Metrics
	sink    Sink

	dt           float64
	tickInterval time.Duration
	catchupMax   int

	w      *world.World
	inputs *input.Handler
	ser    *replication.Serializer
	prio   *replication.Prioritizer
	events *replication.EventQueue

	ingress chan Inbound
	players map[string]*seatState
	order   []string

	mu    sync.Mutex
	state State

	// onEnd fires once when the room reaches StateEnded.
	onEnd func(roomID string)
}

// New builds a room for the descriptor. Call Start before RunLoop.
func New(id string, desc MatchDescriptor, opts Options, sink Sink) (*Room, error) {
	if len(desc.Players) == 0 {
		return nil, fmt.Errorf("room %s: empty match descriptor", id)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = telemetry.Nop()
	}
	w, err := world.New(opts.Registry, opts.MapID)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", id, err)
	}
	ingressSize := opts.Simulation.IngressSize
	if ingressSize <= 0 {
		ingressSize = 256
	}
	repl := opts.Replication
	r := &Room{
		id:           id,
		logger:       logger.With(zap.String("game_id", id)),
		metrics:      metrics,
		sink:         sink,
		dt:           opts.Simulation.Dt(),
		tickInterval: opts.Simulation.TickInterval(),
		catchupMax:   opts.Simulation.CatchupMaxTicks,
		w:            w,
		inputs:       input.New(opts.RateLimit, logger),
		ser:          replication.NewSerializer(repl.StaleTickThreshold),
		prio: replication.NewPrioritizer(replication.PrioritizerConfig{
			CriticalDistance:      repl.CriticalDistance,
			HighDistance:          repl.HighDistance,
			MediumDistance:        repl.MediumDistance,
			MaxTicksWithoutUpdate: repl.MaxTicksWithoutUpdate,
		}),
		events: replication.NewEventQueue(replication.EventQueueConfig{
			RetryIntervalTicks: repl.RetryIntervalTicks,
			MaxRetries:         repl.MaxRetries,
			Capacity:           repl.EventQueueCap,
		}),
		ingress: make(chan Inbound, ingressSize),
		players: make(map[string]*seatState),
		state:   StateWaiting,
	}
	r.inputs.OnSocial = r.fanOutSocial
	for _, seat := range desc.Players {
		if _, dup := r.players[seat.PlayerID]; dup {
			return nil, fmt.Errorf("room %s: duplicate player %s", id, seat.PlayerID)
		}
		r.players[seat.PlayerID] = &seatState{seat: seat}
		r.order = append(r.order, seat.PlayerID)
	}
	sort.Strings(r.order)
	return r, nil
}

// ID returns the room's game id.
func (r *Room) ID() string { return r.id }

// State returns the current lifecycle phase.
func (r *Room) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Room) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// Start spawns every seat's champion and announces the match. A player
// whose champion cannot be spawned is dropped from the room; the room
// fails only when nobody could be seated.
func (r *Room) Start() error {
	r.setState(StateStarting)
	seated := 0
	for _, id := range r.order {
		st := r.players[id]
		c, err := r.w.AddChampion(st.seat.PlayerID, st.seat.ChampionID, st.seat.Side)
		if err != nil {
			r.logger.Error("failed to seat player",
				zap.String("player_id", st.seat.PlayerID),
				zap.String("champion_id", st.seat.ChampionID),
				zap.Error(err))
			delete(r.players, id)
			continue
		}
		st.entityID = c.ID
		st.connected = true
		seated++
	}
	if seated == 0 {
		r.setState(StateEnded)
		return fmt.Errorf("room %s: no player could be seated", r.id)
	}
	r.order = r.order[:0]
	for id := range r.players {
		r.order = append(r.order, id)
	}
	sort.Strings(r.order)
	r.setState(StatePlaying)
	for _, id := range r.order {
		r.sendGameStart(id)
		r.sendFullState(id)
	}
	r.metrics.Add("rooms_started", 1)
	return nil
}

// Submit hands a message to the room goroutine. When the ingress channel
// is full the message is dropped with a warning; inputs are best-effort
// and rate-limited anyway.
func (r *Room) Submit(msg Inbound) bool {
	if r.State() == StateEnded {
		return false
	}
	select {
	case r.ingress <- msg:
		return true
	default:
		r.metrics.Add("room_ingress_dropped", 1)
		r.logger.Warn("ingress full, dropping message",
			zap.String("player_id", msg.PlayerID))
		return false
	}
}

// Tick runs one full frame: drain ingress, process inputs, advance the
// world, partition events, and emit per-player updates.
func (r *Room) Tick(now time.Time) {
	r.drainIngress()
	r.inputs.Process(r.w)
	r.w.Tick(r.dt)

	events := r.w.DrainEvents()
	unreliable := make([]world.Event, 0, len(events))
	var gameEnd *world.Event
	for i := range events {
		ev := events[i]
		if ev.Kind == world.EventGameEnd {
			gameEnd = &events[i]
		}
		if ev.Kind.Reliable() {
			for _, id := range r.order {
				if r.players[id].connected {
					r.events.Queue(id, ev, r.w.CurrentTick())
				}
			}
			continue
		}
		unreliable = append(unreliable, ev)
	}

	r.emitUpdates(unreliable, now)

	if gameEnd != nil {
		r.finish(gameEnd.Payload.(world.GameEndPayload))
	}
}

func (r *Room) drainIngress() {
	for {
		select {
		case msg := <-r.ingress:
			r.handleInbound(msg)
		default:
			return
		}
	}
}

func (r *Room) handleInbound(msg Inbound) {
	st, ok := r.players[msg.PlayerID]
	if !ok {
		return
	}
	switch msg.Kind {
	case InboundInput:
		if !st.connected {
			return
		}
		if ok, reason := r.inputs.Queue(msg.PlayerID, msg.Input, r.w.GameTime()); !ok {
			r.metrics.Add("inputs_rejected", 1)
			r.logger.Warn("input rejected",
				zap.String("player_id", msg.PlayerID),
				zap.String("input_type", msg.Input.Type),
				zap.Uint64("seq", msg.Input.Seq),
				zap.String("reason", string(reason)))
		}
	case InboundEventAck:
		r.events.Acknowledge(msg.PlayerID, msg.LastEventID)
	case InboundReconnect:
		r.handleReconnect(msg.PlayerID, st)
	case InboundDisconnect:
		r.handleDisconnect(msg.PlayerID, st)
	}
}

// handleDisconnect clears the player's streams. Their champion stays in
// the world and the simulation carries on without them.
func (r *Room) handleDisconnect(playerID string, st *seatState) {
	if !st.connected {
		return
	}
	st.connected = false
	r.inputs.ClearPlayer(playerID)
	r.ser.ClearPlayer(playerID)
	r.prio.ClearPlayer(playerID)
	r.events.ClearPlayer(playerID)
	r.logger.Info("player disconnected", zap.String("player_id", playerID))
}

// handleReconnect resumes a player's stream from a zero baseline.
func (r *Room) handleReconnect(playerID string, st *seatState) {
	st.connected = true
	r.ser.ClearPlayer(playerID)
	r.prio.ClearPlayer(playerID)
	r.sendGameStart(playerID)
	r.sendFullState(playerID)
	r.logger.Info("player reconnected", zap.String("player_id", playerID))
}

// fanOutSocial relays a PING or CHAT input to the sender's teammates as
// an unreliable EVENT frame.
func (r *Room) fanOutSocial(playerID string, in protocol.ClientInput) {
	sender, ok := r.players[playerID]
	if !ok {
		return
	}
	payload := map[string]any{
		"playerId": playerID,
		"x":        in.X,
		"y":        in.Y,
	}
	if in.Type == protocol.InputChat {
		payload["message"] = in.Message
	}
	data, err := protocol.EncodeEvent(in.Type, payload)
	if err != nil {
		return
	}
	for _, id := range r.order {
		st := r.players[id]
		if !st.connected || st.seat.Side != sender.seat.Side {
			continue
		}
		r.sink.Send(id, data)
	}
}

// emitUpdates builds and sends one STATE_UPDATE per connected player:
// visible set, prioritized subset, serializer deltas with the full
// visible list for removal detection, plus the reliable events due.
func (r *Room) emitUpdates(unreliable []world.Event, now time.Time) {
	tick := r.w.CurrentTick()
	acks := r.inputs.Acks()
	snaps := r.w.Snapshots()
	for _, id := range r.order {
		st := r.players[id]
		if !st.connected {
			continue
		}
		visible := r.w.VisibleIDs(st.seat.Side)
		vsnaps := make([]world.Snapshot, 0, len(snaps))
		for i := range snaps {
			if _, ok := visible[snaps[i].ID]; ok {
				vsnaps = append(vsnaps, snaps[i])
			}
		}
		var viewerPos world.Vec2
		hasViewer := false
		if c := r.w.Champion(st.entityID); c != nil && !c.Dead {
			viewerPos = c.Pos
			hasViewer = true
		}
		selected := r.prio.Select(id, tick, viewerPos, hasViewer, vsnaps)
		deltas := r.ser.Update(id, tick, selected, visible)

		events := append([]world.Event(nil), unreliable...)
		events = append(events, r.events.EventsToSend(id, tick)...)
		var lastEventID uint64
		for _, ev := range events {
			if ev.ID > lastEventID {
				lastEventID = ev.ID
			}
		}

		frame := protocol.StateUpdate{
			Tick:        tick,
			Timestamp:   now.UnixMilli(),
			GameTime:    r.w.GameTime(),
			InputAcks:   acks,
			Deltas:      wireDeltas(deltas),
			Events:      events,
			LastEventID: lastEventID,
		}
		data, err := protocol.EncodeStateUpdate(frame)
		if err != nil {
			r.logger.Error("failed to encode state update", zap.Error(err))
			continue
		}
		r.sink.Send(id, data)
	}
}

func wireDeltas(deltas []replication.Delta) []protocol.EntityDelta {
	out := make([]protocol.EntityDelta, 0, len(deltas))
	for i := range deltas {
		d := &deltas[i]
		wire := protocol.EntityDelta{
			EntityID:   d.Snapshot.ID,
			EntityType: d.Snapshot.Type,
			Side:       d.Snapshot.Side,
			ChangeMask: uint32(d.Mask),
		}
		if d.Removed {
			wire.Data = protocol.RemovalPayload()
		} else {
			wire.Data = protocol.DeltaPayload(&d.Snapshot, d.Mask)
		}
		out = append(out, wire)
	}
	return out
}

func (r *Room) sendGameStart(playerID string) {
	st, ok := r.players[playerID]
	if !ok {
		return
	}
	roster := make([]protocol.GameStartPlayer, 0, len(r.players))
	for _, id := range r.order {
		p := r.players[id]
		roster = append(roster, protocol.GameStartPlayer{
			PlayerID:   p.seat.PlayerID,
			ChampionID: p.seat.ChampionID,
			Side:       p.seat.Side,
			EntityID:   p.entityID,
		})
	}
	data, err := protocol.EncodeGameStart(protocol.GameStart{
		GameID:   r.id,
		Tick:     r.w.CurrentTick(),
		GameTime: r.w.GameTime(),
		YourSide: st.seat.Side,
		Players:  roster,
	})
	if err != nil {
		return
	}
	r.sink.Send(playerID, data)
}

func (r *Room) sendFullState(playerID string) {
	st, ok := r.players[playerID]
	if !ok {
		return
	}
	visible := r.w.VisibleIDs(st.seat.Side)
	snaps := r.w.Snapshots()
	entities := make([]protocol.FullEntity, 0, len(snaps))
	for i := range snaps {
		if _, ok := visible[snaps[i].ID]; !ok {
			continue
		}
		entities = append(entities, protocol.FullSnapshot(&snaps[i]))
	}
	data, err := protocol.EncodeFullState(protocol.FullState{
		Tick:      r.w.CurrentTick(),
		Timestamp: time.Now().UnixMilli(),
		GameTime:  r.w.GameTime(),
		Entities:  entities,
	})
	if err != nil {
		return
	}
	r.sink.Send(playerID, data)
}

// finish transitions to ended and tells every connection the result.
func (r *Room) finish(result world.GameEndPayload) {
	if r.State() == StateEnded {
		return
	}
	data, err := protocol.EncodeGameEnd(protocol.GameEnd{
		WinningSide: result.Winner,
		Duration:    result.Duration,
	})
	if err == nil {
		for _, id := range r.order {
			if r.players[id].connected {
				r.sink.Send(id, data)
			}
		}
	}
	r.setState(StateEnded)
	r.metrics.Add("rooms_ended", 1)
	r.logger.Info("match ended",
		zap.Int("winning_side", int(result.Winner)),
		zap.Float64("duration", result.Duration))
	if r.onEnd != nil {
		r.onEnd(r.id)
	}
}
