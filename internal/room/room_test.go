package room

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"riftlane/server/internal/config"
	"riftlane/server/internal/content"
	"riftlane/server/internal/input"
	"riftlane/server/internal/protocol"
	"riftlane/server/internal/world"
)

// captureSink records every frame sent per player.
type captureSink struct {
	mu     sync.Mutex
	frames map[string][][]byte
}

func newCaptureSink() *captureSink {
	return &captureSink{frames: make(map[string][][]byte)}
}

func (s *captureSink) Send(playerID string, frame []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames[playerID] = append(s.frames[playerID], frame)
	return true
}

func (s *captureSink) take(playerID string) [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.frames[playerID]
	s.frames[playerID] = nil
	return out
}

func frameType(t *testing.T, frame []byte) string {
	t.Helper()
	var head struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(frame, &head))
	return head.Type
}

func testOptions() Options {
	return Options{
		Registry: content.Default(),
		MapID:    "summoners-rift",
		Simulation: config.SimulationConfig{
			TickRate:        30,
			IngressSize:     32,
			CatchupMaxTicks: 4,
		},
		RateLimit: input.DefaultConfig(),
	}
}

func testDescriptor() MatchDescriptor {
	return MatchDescriptor{Players: []Seat{
		{PlayerID: "p1", ChampionID: "ashka", Side: content.SideBlue},
		{PlayerID: "p2", ChampionID: "vael", Side: content.SideRed},
	}}
}

func newTestRoom(t *testing.T) (*Room, *captureSink) {
	t.Helper()
	sink := newCaptureSink()
	r, err := New("game-1", testDescriptor(), testOptions(), sink)
	require.NoError(t, err)
	require.NoError(t, r.Start())
	return r, sink
}

func TestNewValidatesDescriptor(t *testing.T) {
	sink := newCaptureSink()
	_, err := New("g", MatchDescriptor{}, testOptions(), sink)
	require.Error(t, err)

	_, err = New("g", MatchDescriptor{Players: []Seat{
		{PlayerID: "p1", ChampionID: "ashka"},
		{PlayerID: "p1", ChampionID: "vael"},
	}}, testOptions(), sink)
	require.Error(t, err)
}

func TestStartSendsGameStartAndFullState(t *testing.T) {
	r, sink := newTestRoom(t)
	require.Equal(t, StatePlaying, r.State())

	p2frames := sink.take("p2")
	require.Len(t, p2frames, 2)
	require.Equal(t, protocol.TypeGameStart, frameType(t, p2frames[0]))
	require.Equal(t, protocol.TypeFullState, frameType(t, p2frames[1]))

	raw := sink.take("p1")
	require.Len(t, raw, 2)
	var start protocol.GameStart
	require.NoError(t, json.Unmarshal(raw[0], &start))
	require.Equal(t, "game-1", start.GameID)
	require.Equal(t, content.SideBlue, start.YourSide)
	require.Len(t, start.Players, 2)

	var full protocol.FullState
	require.NoError(t, json.Unmarshal(raw[1], &full))
	require.NotEmpty(t, full.Entities)
}

func TestTickEmitsStateUpdates(t *testing.T) {
	r, sink := newTestRoom(t)
	sink.take("p1")
	sink.take("p2")

	r.Tick(time.Now())

	frames := sink.take("p1")
	require.NotEmpty(t, frames)
	var update protocol.StateUpdate
	require.NoError(t, json.Unmarshal(frames[len(frames)-1], &update))
	require.EqualValues(t, 1, update.Tick)
	require.NotEmpty(t, update.Deltas, "first update carries full snapshots")
	for _, d := range update.Deltas {
		require.EqualValues(t, world.MaskAll, d.ChangeMask)
	}
}

func TestSecondTickSendsOnlyChanges(t *testing.T) {
	r, sink := newTestRoom(t)
	r.Tick(time.Now())
	sink.take("p1")

	r.Tick(time.Now())
	frames := sink.take("p1")
	require.NotEmpty(t, frames)
	var update protocol.StateUpdate
	require.NoError(t, json.Unmarshal(frames[len(frames)-1], &update))
	for _, d := range update.Deltas {
		require.NotEqualValues(t, world.MaskAll, d.ChangeMask,
			"entity %d re-sent in full on an unchanged tick", d.EntityID)
	}
	// Static structures must not reappear every tick.
	require.Less(t, len(update.Deltas), 10)
}

func TestInputAckRoundTrip(t *testing.T) {
	r, sink := newTestRoom(t)
	x, y := 2000.0, 2000.0
	ok := r.Submit(Inbound{Kind: InboundInput, PlayerID: "p1", Input: protocol.ClientInput{
		Seq:     1,
		Type:    protocol.InputMove,
		TargetX: &x,
		TargetY: &y,
	}})
	require.True(t, ok)

	r.Tick(time.Now())
	frames := sink.take("p1")
	var update protocol.StateUpdate
	require.NoError(t, json.Unmarshal(frames[len(frames)-1], &update))
	require.EqualValues(t, 1, update.InputAcks["p1"])
}

func TestDuplicateSequenceNotReprocessed(t *testing.T) {
	r, sink := newTestRoom(t)
	x, y := 2000.0, 2000.0
	in := protocol.ClientInput{Seq: 1, Type: protocol.InputMove, TargetX: &x, TargetY: &y}
	r.Submit(Inbound{Kind: InboundInput, PlayerID: "p1", Input: in})
	r.Tick(time.Now())
	sink.take("p1")

	r.Submit(Inbound{Kind: InboundInput, PlayerID: "p1", Input: in})
	r.Tick(time.Now())
	frames := sink.take("p1")
	var update protocol.StateUpdate
	require.NoError(t, json.Unmarshal(frames[len(frames)-1], &update))
	require.EqualValues(t, 1, update.InputAcks["p1"], "ack cursor moved on a duplicate")
}

func TestDisconnectStopsStreamAndReconnectResumes(t *testing.T) {
	r, sink := newTestRoom(t)
	r.Tick(time.Now())
	sink.take("p1")

	r.Submit(Inbound{Kind: InboundDisconnect, PlayerID: "p1"})
	r.Tick(time.Now())
	require.Empty(t, sink.take("p1"), "disconnected player still receiving")

	r.Submit(Inbound{Kind: InboundReconnect, PlayerID: "p1"})
	r.Tick(time.Now())
	frames := sink.take("p1")
	require.NotEmpty(t, frames)
	require.Equal(t, protocol.TypeGameStart, frameType(t, frames[0]))
	require.Equal(t, protocol.TypeFullState, frameType(t, frames[1]))
	// The post-reconnect update re-sends everything in full.
	var update protocol.StateUpdate
	require.NoError(t, json.Unmarshal(frames[len(frames)-1], &update))
	for _, d := range update.Deltas {
		require.EqualValues(t, world.MaskAll, d.ChangeMask)
	}
}

func TestSocialPingsFanOutToTeamOnly(t *testing.T) {
	sink := newCaptureSink()
	desc := MatchDescriptor{Players: []Seat{
		{PlayerID: "p1", ChampionID: "ashka", Side: content.SideBlue},
		{PlayerID: "p2", ChampionID: "lume", Side: content.SideBlue},
		{PlayerID: "p3", ChampionID: "vael", Side: content.SideRed},
	}}
	r, err := New("game-2", desc, testOptions(), sink)
	require.NoError(t, err)
	require.NoError(t, r.Start())
	for _, id := range []string{"p1", "p2", "p3"} {
		sink.take(id)
	}

	r.Submit(Inbound{Kind: InboundInput, PlayerID: "p1", Input: protocol.ClientInput{
		Seq:  1,
		Type: protocol.InputPing,
		X:    4000,
		Y:    4000,
	}})
	r.Tick(time.Now())

	hasEvent := func(id string) bool {
		for _, f := range sink.take(id) {
			if frameType(t, f) == protocol.TypeEvent {
				return true
			}
		}
		return false
	}
	require.True(t, hasEvent("p1"), "sender misses own ping")
	require.True(t, hasEvent("p2"), "teammate misses ping")
	require.False(t, hasEvent("p3"), "enemy received ping")
}

func TestReliableEventsRetryUntilAcked(t *testing.T) {
	r, sink := newTestRoom(t)
	r.Tick(time.Now())
	sink.take("p1")

	// Kill p2's champion so a reliable CHAMPION_KILL event enters the
	// queue on the next tick's drain.
	killer := r.w.ChampionByPlayer("p1")
	victim := r.w.ChampionByPlayer("p2")
	victim.TakeDamage(1000000, content.DamageTrue, killer.ID, r.w)
	r.Tick(time.Now())

	firstIDs := collectEventIDs(t, sink.take("p1"))
	require.NotEmpty(t, firstIDs, "reliable events missing from update")

	// Without an ack the events come back after the retry interval.
	for i := 0; i < 9; i++ {
		r.Tick(time.Now())
	}
	require.Empty(t, collectEventIDs(t, sink.take("p1")))
	r.Tick(time.Now())
	retryIDs := collectEventIDs(t, sink.take("p1"))
	require.Equal(t, firstIDs, retryIDs, "retry does not repeat the same events")

	// Acking the newest id silences the queue.
	var last uint64
	for _, id := range retryIDs {
		if id > last {
			last = id
		}
	}
	r.Submit(Inbound{Kind: InboundEventAck, PlayerID: "p1", LastEventID: last})
	for i := 0; i < 15; i++ {
		r.Tick(time.Now())
	}
	require.Empty(t, collectEventIDs(t, sink.take("p1")))
}

// collectEventIDs gathers the reliable event ids from STATE_UPDATE frames.
func collectEventIDs(t *testing.T, frames [][]byte) []uint64 {
	t.Helper()
	var out []uint64
	for _, f := range frames {
		if frameType(t, f) != protocol.TypeStateUpdate {
			continue
		}
		var update protocol.StateUpdate
		require.NoError(t, json.Unmarshal(f, &update))
		for _, ev := range update.Events {
			if ev.Kind.Reliable() {
				out = append(out, ev.ID)
			}
		}
	}
	return out
}

func TestFinishSendsGameEndAndSealsRoom(t *testing.T) {
	r, sink := newTestRoom(t)
	sink.take("p1")
	sink.take("p2")

	r.finish(world.GameEndPayload{Winner: content.SideRed, Duration: 321})

	require.Equal(t, StateEnded, r.State())
	frames := sink.take("p1")
	require.NotEmpty(t, frames)
	var end protocol.GameEnd
	require.NoError(t, json.Unmarshal(frames[len(frames)-1], &end))
	require.Equal(t, content.SideRed, end.WinningSide)
	require.Equal(t, 321.0, end.Duration)

	require.False(t, r.Submit(Inbound{Kind: InboundInput, PlayerID: "p1"}))
}
