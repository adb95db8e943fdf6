package input

import (
	"testing"

	"github.com/stretchr/testify/require"

	"riftlane/server/internal/content"
	"riftlane/server/internal/protocol"
	"riftlane/server/internal/world"
)

func f64(v float64) *float64 { return &v }

func moveInput(seq uint64, x, y float64) protocol.ClientInput {
	return protocol.ClientInput{
		Seq:     seq,
		Type:    protocol.InputMove,
		TargetX: f64(x),
		TargetY: f64(y),
	}
}

func TestQueueRejectsOldSequence(t *testing.T) {
	h := New(DefaultConfig(), nil)

	ok, _ := h.Queue("p1", moveInput(5, 100, 100), 0)
	require.True(t, ok)

	ok, reason := h.Queue("p1", moveInput(5, 100, 100), 0.1)
	require.False(t, ok)
	require.Equal(t, RejectOldSequence, reason)

	ok, reason = h.Queue("p1", moveInput(3, 100, 100), 0.1)
	require.False(t, ok)
	require.Equal(t, RejectOldSequence, reason)

	ok, _ = h.Queue("p1", moveInput(6, 100, 100), 0.1)
	require.True(t, ok)
}

func TestQueueRejectsUnknownType(t *testing.T) {
	h := New(DefaultConfig(), nil)
	ok, reason := h.Queue("p1", protocol.ClientInput{Seq: 1, Type: "TELEPORT"}, 0)
	require.False(t, ok)
	require.Equal(t, RejectInvalidType, reason)
	require.Zero(t, h.Pending("p1"))
}

func TestRateLimitBudgetBoundary(t *testing.T) {
	h := New(DefaultConfig(), nil)

	// 25 MOVE commands inside 100ms of simulation time: exactly the
	// 20-per-second budget is accepted.
	accepted, rejected := 0, 0
	now := 0.0
	for seq := uint64(1); seq <= 25; seq++ {
		ok, reason := h.Queue("p1", moveInput(seq, 100, 100), now)
		if ok {
			accepted++
		} else {
			rejected++
			require.Equal(t, RejectRateLimited, reason)
		}
		now += 0.004
	}
	require.Equal(t, 20, accepted)
	require.Equal(t, 5, rejected)

	// After the window slides past the burst the budget frees up again.
	ok, _ := h.Queue("p1", moveInput(26, 100, 100), 1.05)
	require.True(t, ok)
}

func TestRateLimitWindowsArePerType(t *testing.T) {
	h := New(DefaultConfig(), nil)
	seq := uint64(1)
	for i := 0; i < 20; i++ {
		ok, _ := h.Queue("p1", moveInput(seq, 100, 100), 0)
		require.True(t, ok)
		seq++
	}
	ok, reason := h.Queue("p1", moveInput(seq, 100, 100), 0)
	require.False(t, ok)
	require.Equal(t, RejectRateLimited, reason)
	seq++

	// STOP has its own window; the MOVE burst does not consume it.
	ok, _ = h.Queue("p1", protocol.ClientInput{Seq: seq, Type: protocol.InputStop}, 0)
	require.True(t, ok)
}

func TestRateLimitIsolatedPerPlayer(t *testing.T) {
	h := New(DefaultConfig(), nil)
	for seq := uint64(1); seq <= 21; seq++ {
		h.Queue("p1", moveInput(seq, 100, 100), 0)
	}
	ok, _ := h.Queue("p2", moveInput(1, 100, 100), 0)
	require.True(t, ok)
}

func TestRejectedInputDoesNotConsumeBudget(t *testing.T) {
	cfg := DefaultConfig()
	h := New(cfg, nil)

	// Fill with valid inputs, then send rejects; the window should only
	// hold the accepted ones.
	for seq := uint64(1); seq <= 5; seq++ {
		ok, _ := h.Queue("p1", protocol.ClientInput{Seq: seq, Type: protocol.InputChat}, 0)
		if seq <= 3 {
			require.True(t, ok, "seq %d", seq)
		} else {
			require.False(t, ok, "seq %d over the CHAT budget", seq)
		}
	}
	// Old-sequence rejects leave the MOVE window untouched.
	h.Queue("p1", moveInput(2, 100, 100), 0)
	for seq := uint64(10); seq < 30; seq++ {
		ok, _ := h.Queue("p1", moveInput(seq, 100, 100), 0)
		require.True(t, ok, "seq %d", seq)
	}
}

func TestProcessAdvancesAckCursor(t *testing.T) {
	w, err := world.New(content.Default(), "summoners-rift")
	require.NoError(t, err)
	_, err = w.AddChampion("p1", "ashka", content.SideBlue)
	require.NoError(t, err)

	h := New(DefaultConfig(), nil)
	h.Queue("p1", moveInput(1, 1000, 1000), 0)
	h.Queue("p1", moveInput(2, 1200, 1200), 0.01)
	require.Equal(t, 2, h.Pending("p1"))

	h.Process(w)
	require.Zero(t, h.Pending("p1"))
	require.EqualValues(t, 2, h.LastAcked("p1"))
	require.Equal(t, map[string]uint64{"p1": 2}, h.Acks())
}

func TestDispatchSetsMoveTarget(t *testing.T) {
	w, err := world.New(content.Default(), "summoners-rift")
	require.NoError(t, err)
	c, err := w.AddChampion("p1", "ashka", content.SideBlue)
	require.NoError(t, err)

	h := New(DefaultConfig(), nil)
	h.Queue("p1", moveInput(1, 2000, 2000), 0)
	h.Process(w)

	snap := c.Snapshot()
	require.True(t, snap.HasMoveTarget)
	require.Equal(t, 2000.0, snap.TargetX)
	require.Equal(t, 2000.0, snap.TargetY)
}

func TestDispatchStopClearsOrders(t *testing.T) {
	w, err := world.New(content.Default(), "summoners-rift")
	require.NoError(t, err)
	c, err := w.AddChampion("p1", "ashka", content.SideBlue)
	require.NoError(t, err)

	h := New(DefaultConfig(), nil)
	h.Queue("p1", moveInput(1, 2000, 2000), 0)
	h.Queue("p1", protocol.ClientInput{Seq: 2, Type: protocol.InputStop}, 0.01)
	h.Process(w)

	require.False(t, c.Snapshot().HasMoveTarget)
}

func TestDispatchSocialBypassesWorld(t *testing.T) {
	w, err := world.New(content.Default(), "summoners-rift")
	require.NoError(t, err)

	h := New(DefaultConfig(), nil)
	var social []protocol.ClientInput
	h.OnSocial = func(playerID string, in protocol.ClientInput) {
		require.Equal(t, "p1", playerID)
		social = append(social, in)
	}

	// No champion for p1; social inputs must still flow.
	h.Queue("p1", protocol.ClientInput{Seq: 1, Type: protocol.InputPing, X: 50, Y: 60}, 0)
	h.Queue("p1", protocol.ClientInput{Seq: 2, Type: protocol.InputChat, Message: "gank mid"}, 0.01)
	h.Process(w)

	require.Len(t, social, 2)
	require.Equal(t, "gank mid", social[1].Message)
}

func TestDispatchIgnoredWhileDead(t *testing.T) {
	w, err := world.New(content.Default(), "summoners-rift")
	require.NoError(t, err)
	c, err := w.AddChampion("p1", "ashka", content.SideBlue)
	require.NoError(t, err)
	c.TakeDamage(100000, content.DamageTrue, 0, w)
	require.True(t, c.Dead)

	h := New(DefaultConfig(), nil)
	h.Queue("p1", moveInput(1, 2000, 2000), 0)
	h.Process(w)

	require.False(t, c.Snapshot().HasMoveTarget)
	// The input is still acknowledged so the client does not resend it.
	require.EqualValues(t, 1, h.LastAcked("p1"))
}

func TestClearPlayerResetsSequenceAndWindows(t *testing.T) {
	h := New(DefaultConfig(), nil)
	h.Queue("p1", moveInput(10, 100, 100), 0)

	h.ClearPlayer("p1")
	ok, _ := h.Queue("p1", moveInput(1, 100, 100), 0)
	require.True(t, ok, "fresh session should restart sequences")
}

func TestConfigOverridesAndDefault(t *testing.T) {
	cfg := Config{
		Limits:  map[string]int{protocol.InputMove: 2},
		Default: 1,
	}
	h := New(cfg, nil)

	ok, _ := h.Queue("p1", moveInput(1, 100, 100), 0)
	require.True(t, ok)
	ok, _ = h.Queue("p1", moveInput(2, 100, 100), 0)
	require.True(t, ok)
	ok, reason := h.Queue("p1", moveInput(3, 100, 100), 0)
	require.False(t, ok)
	require.Equal(t, RejectRateLimited, reason)

	// RECALL is absent from Limits, so the default budget of 1 applies.
	ok, _ = h.Queue("p1", protocol.ClientInput{Seq: 4, Type: protocol.InputRecall}, 0)
	require.True(t, ok)
	ok, reason = h.Queue("p1", protocol.ClientInput{Seq: 5, Type: protocol.InputRecall}, 0)
	require.False(t, ok)
	require.Equal(t, RejectRateLimited, reason)
}
