// Package input validates and dispatches player inputs. Each player owns a
// FIFO of pending inputs; the room drains it at the start of every tick.
// Validation happens at queue time so rejected inputs never occupy queue
// space; accepted inputs advance the player's acknowledged sequence when
// they are processed.
package input

import (
	"sort"

	"go.uber.org/zap"

	"riftlane/server/internal/content"
	"riftlane/server/internal/protocol"
	"riftlane/server/internal/world"
)

// RejectReason names why an input was refused.
type RejectReason string

const (
	RejectOldSequence RejectReason = "old_sequence"
	RejectInvalidType RejectReason = "invalid_type"
	RejectRateLimited RejectReason = "rate_limited"
)

// knownTypes is the set of input kinds the dispatcher understands.
var knownTypes = map[string]struct{}{
	protocol.InputMove:       {},
	protocol.InputAttackMove: {},
	protocol.InputTargetUnit: {},
	protocol.InputStop:       {},
	protocol.InputAbility:    {},
	protocol.InputLevelUp:    {},
	protocol.InputBuyItem:    {},
	protocol.InputSellItem:   {},
	protocol.InputRecall:     {},
	protocol.InputPing:       {},
	protocol.InputChat:       {},
	protocol.InputPlaceWard:  {},
}

// Config tunes the per-type sliding-window rate limits, in inputs per
// second. Types absent from Limits fall back to Default.
type Config struct {
	Limits  map[string]int
	Default int
}

// DefaultConfig returns the stock per-type budgets.
func DefaultConfig() Config {
	return Config{
		Limits: map[string]int{
			protocol.InputMove:       20,
			protocol.InputAttackMove: 20,
			protocol.InputTargetUnit: 20,
			protocol.InputStop:       20,
			protocol.InputAbility:    8,
			protocol.InputLevelUp:    5,
			protocol.InputBuyItem:    5,
			protocol.InputSellItem:   5,
			protocol.InputRecall:     2,
			protocol.InputPing:       5,
			protocol.InputChat:       3,
			protocol.InputPlaceWard:  3,
		},
		Default: 10,
	}
}

func (c Config) limit(inputType string) int {
	if n, ok := c.Limits[inputType]; ok {
		return n
	}
	if c.Default > 0 {
		return c.Default
	}
	return 10
}

// playerState is one player's queue, sequence cursor, and limiter windows.
// All of it resets on ClearPlayer.
type playerState struct {
	queue      []protocol.ClientInput
	lastAcked  uint64
	lastQueued uint64
	windows    map[string][]float64
}

// Handler owns every player's input state for one room. It is driven only
// by the room goroutine and needs no locking.
type Handler struct {
	cfg     Config
	logger  *zap.Logger
	players map[string]*playerState

	// OnSocial receives PING and CHAT inputs, which carry no simulation
	// effect; the room fans them out as unreliable events.
	OnSocial func(playerID string, in protocol.ClientInput)
}

// New builds a handler. A nil logger falls back to zap.NewNop.
func New(cfg Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Limits == nil {
		cfg = DefaultConfig()
	}
	return &Handler{
		cfg:     cfg,
		logger:  logger,
		players: make(map[string]*playerState),
	}
}

func (h *Handler) player(playerID string) *playerState {
	p, ok := h.players[playerID]
	if !ok {
		p = &playerState{windows: make(map[string][]float64)}
		h.players[playerID] = p
	}
	return p
}

// Queue validates an input and appends it to the player's FIFO. now is
// simulation time in seconds; the limiter window never reads the wall
// clock. A rejected input leaves all state untouched except the limiter,
// which records accepted inputs only.
func (h *Handler) Queue(playerID string, in protocol.ClientInput, now float64) (bool, RejectReason) {
	p := h.player(playerID)
	if in.Seq <= p.lastAcked || in.Seq <= p.lastQueued {
		return false, RejectOldSequence
	}
	if _, ok := knownTypes[in.Type]; !ok {
		return false, RejectInvalidType
	}
	window := p.windows[in.Type]
	cut := 0
	for cut < len(window) && now-window[cut] >= 1.0 {
		cut++
	}
	window = window[cut:]
	if len(window) >= h.cfg.limit(in.Type) {
		p.windows[in.Type] = window
		return false, RejectRateLimited
	}
	p.windows[in.Type] = append(window, now)
	p.queue = append(p.queue, in)
	p.lastQueued = in.Seq
	return true, ""
}

// Process drains every player's queue in arrival order and applies each
// input to the world. Players are visited in a stable order so replays of
// the same queues produce the same world.
func (h *Handler) Process(w *world.World) {
	ids := make([]string, 0, len(h.players))
	for id, p := range h.players {
		if len(p.queue) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := h.players[id]
		queue := p.queue
		p.queue = nil
		for i := range queue {
			h.dispatch(id, &queue[i], w)
			if queue[i].Seq > p.lastAcked {
				p.lastAcked = queue[i].Seq
			}
		}
	}
}

// dispatch applies one validated input. Failures here are silent by
// design: the client self-corrects from the next state update.
func (h *Handler) dispatch(playerID string, in *protocol.ClientInput, w *world.World) {
	switch in.Type {
	case protocol.InputPing, protocol.InputChat:
		if h.OnSocial != nil {
			h.OnSocial(playerID, *in)
		}
		return
	}

	c := w.ChampionByPlayer(playerID)
	if c == nil || c.Dead {
		return
	}

	// Anything except stopping or recalling interrupts a recall channel.
	switch in.Type {
	case protocol.InputStop, protocol.InputRecall:
	default:
		c.CancelRecall(w)
	}

	switch in.Type {
	case protocol.InputMove, protocol.InputAttackMove:
		if in.TargetX == nil || in.TargetY == nil {
			return
		}
		pos := world.Vec2{X: *in.TargetX, Y: *in.TargetY}
		c.SetMoveTarget(w, pos, in.Type == protocol.InputAttackMove)
	case protocol.InputTargetUnit:
		c.SetUnitTarget(w, in.TargetEntityID)
	case protocol.InputStop:
		c.Stop()
	case protocol.InputAbility:
		var pos world.Vec2
		hasPos := in.TargetX != nil && in.TargetY != nil
		if hasPos {
			pos = world.Vec2{X: *in.TargetX, Y: *in.TargetY}
		}
		if res := c.Cast(w, in.Slot.Ability, in.TargetEntityID, pos, hasPos); res != world.CastOK {
			h.logger.Debug("cast rejected",
				zap.String("player_id", playerID),
				zap.String("slot", string(in.Slot.Ability)),
				zap.String("reason", string(res)))
		}
	case protocol.InputLevelUp:
		c.LevelUpAbility(in.Slot.Ability)
	case protocol.InputBuyItem:
		c.BuyItem(w, in.ItemID)
	case protocol.InputSellItem:
		c.SellItem(w, in.Slot.Item)
	case protocol.InputRecall:
		c.StartRecall(w)
	case protocol.InputPlaceWard:
		kind := content.WardKind(in.WardType)
		if kind != content.WardStealth && kind != content.WardFarsight {
			return
		}
		c.PlaceWard(w, world.Vec2{X: in.X, Y: in.Y}, kind)
	}
}

// Acks snapshots every player's acknowledged sequence for the outbound
// state update.
func (h *Handler) Acks() map[string]uint64 {
	out := make(map[string]uint64, len(h.players))
	for id, p := range h.players {
		out[id] = p.lastAcked
	}
	return out
}

// LastAcked returns the player's acknowledged sequence cursor.
func (h *Handler) LastAcked(playerID string) uint64 {
	if p, ok := h.players[playerID]; ok {
		return p.lastAcked
	}
	return 0
}

// Pending reports the player's queued input count.
func (h *Handler) Pending(playerID string) int {
	if p, ok := h.players[playerID]; ok {
		return len(p.queue)
	}
	return 0
}

// ClearPlayer forgets the player entirely; a rejoining player starts from
// a clean slate.
func (h *Handler) ClearPlayer(playerID string) {
	delete(h.players, playerID)
}
