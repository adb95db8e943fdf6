package replication

import "riftlane/server/internal/world"

// TrackedEvent is one reliable event pending acknowledgement by a player.
type TrackedEvent struct {
	Event       world.Event
	FirstQueued uint64
	Attempts    int
	LastSent    uint64
}

// EventQueueConfig tunes retry pacing and capacity.
type EventQueueConfig struct {
	RetryIntervalTicks int
	MaxRetries         int
	Capacity           int
}

// DefaultEventQueueConfig returns the stock pacing: retry every 10 ticks,
// give up after 10 attempts, hold at most 100 events per player.
func DefaultEventQueueConfig() EventQueueConfig {
	return EventQueueConfig{RetryIntervalTicks: 10, MaxRetries: 10, Capacity: 100}
}

// playerEvents is one player's pending reliable events plus their ack
// cursor. lastAcked only ever advances.
type playerEvents struct {
	pending   []*TrackedEvent
	lastAcked uint64
}

// EventQueue delivers reliable events at-least-once per player. Event ids
// are assigned by the world and are strictly monotone per room, so the
// ack cutoff is a single comparison.
type EventQueue struct {
	cfg     EventQueueConfig
	players map[string]*playerEvents
}

// NewEventQueue builds a queue. Zero config fields take defaults.
func NewEventQueue(cfg EventQueueConfig) *EventQueue {
	def := DefaultEventQueueConfig()
	if cfg.RetryIntervalTicks <= 0 {
		cfg.RetryIntervalTicks = def.RetryIntervalTicks
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}
	return &EventQueue{cfg: cfg, players: make(map[string]*playerEvents)}
}

func (q *EventQueue) player(playerID string) *playerEvents {
	p, ok := q.players[playerID]
	if !ok {
		p = &playerEvents{}
		q.players[playerID] = p
	}
	return p
}

// Queue tracks an event for the player. At capacity the oldest pending
// event is shed; under pathological back-pressure delivery degrades to
// best effort.
func (q *EventQueue) Queue(playerID string, ev world.Event, tick uint64) {
	p := q.player(playerID)
	if ev.ID <= p.lastAcked {
		return
	}
	if len(p.pending) >= q.cfg.Capacity {
		p.pending = p.pending[1:]
	}
	p.pending = append(p.pending, &TrackedEvent{Event: ev, FirstQueued: tick})
}

// EventsToSend returns the events due this tick: never-sent events plus
// those past the retry interval, excluding ones that exhausted their
// retries. Returned events have their attempt counters advanced.
func (q *EventQueue) EventsToSend(playerID string, tick uint64) []world.Event {
	p, ok := q.players[playerID]
	if !ok {
		return nil
	}
	var out []world.Event
	for _, t := range p.pending {
		if t.Attempts >= q.cfg.MaxRetries {
			continue
		}
		if t.Attempts > 0 && tick-t.LastSent < uint64(q.cfg.RetryIntervalTicks) {
			continue
		}
		t.Attempts++
		t.LastSent = tick
		out = append(out, t.Event)
	}
	return out
}

// Acknowledge drops every tracked event with id at or below lastEventID.
// Stale acks are no-ops; the cursor never moves backwards.
func (q *EventQueue) Acknowledge(playerID string, lastEventID uint64) {
	p, ok := q.players[playerID]
	if !ok {
		return
	}
	if lastEventID <= p.lastAcked {
		return
	}
	p.lastAcked = lastEventID
	kept := p.pending[:0]
	for _, t := range p.pending {
		if t.Event.ID > lastEventID {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(p.pending); i++ {
		p.pending[i] = nil
	}
	p.pending = kept
}

// LastAcked returns the player's acknowledged event cursor.
func (q *EventQueue) LastAcked(playerID string) uint64 {
	if p, ok := q.players[playerID]; ok {
		return p.lastAcked
	}
	return 0
}

// Failed lists events that exhausted their retries without an ack.
func (q *EventQueue) Failed(playerID string) []world.Event {
	p, ok := q.players[playerID]
	if !ok {
		return nil
	}
	var out []world.Event
	for _, t := range p.pending {
		if t.Attempts >= q.cfg.MaxRetries {
			out = append(out, t.Event)
		}
	}
	return out
}

// SweepFailed discards events that exhausted their retries and returns
// how many were dropped.
func (q *EventQueue) SweepFailed(playerID string) int {
	p, ok := q.players[playerID]
	if !ok {
		return 0
	}
	kept := p.pending[:0]
	dropped := 0
	for _, t := range p.pending {
		if t.Attempts >= q.cfg.MaxRetries {
			dropped++
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(p.pending); i++ {
		p.pending[i] = nil
	}
	p.pending = kept
	return dropped
}

// Pending reports the player's tracked event count.
func (q *EventQueue) Pending(playerID string) int {
	if p, ok := q.players[playerID]; ok {
		return len(p.pending)
	}
	return 0
}

// ClearPlayer forgets the player's queue and ack cursor.
func (q *EventQueue) ClearPlayer(playerID string) {
	delete(q.players, playerID)
}
