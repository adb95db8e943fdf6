package replication

import (
	"testing"

	"github.com/stretchr/testify/require"

	"riftlane/server/internal/world"
)

func snap(id world.ID, x, y float64) world.Snapshot {
	return world.Snapshot{
		ID:   id,
		Type: world.TypeChampion,
		X:    x,
		Y:    y,
	}
}

func visSet(ids ...world.ID) map[world.ID]struct{} {
	out := make(map[world.ID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func TestFirstSightSendsFullSnapshot(t *testing.T) {
	s := NewSerializer(72)
	deltas := s.Update("viewer", 1, []world.Snapshot{snap(1, 100, 200)}, visSet(1))

	require.Len(t, deltas, 1)
	require.Equal(t, world.MaskAll, deltas[0].Mask)
	require.False(t, deltas[0].Removed)
	require.True(t, s.HasBaseline("viewer", 1))
}

func TestUnchangedEntityEmitsNothing(t *testing.T) {
	s := NewSerializer(72)
	s.Update("viewer", 1, []world.Snapshot{snap(1, 100, 200)}, visSet(1))

	deltas := s.Update("viewer", 2, []world.Snapshot{snap(1, 100, 200)}, visSet(1))
	require.Empty(t, deltas)
}

func TestChangedFieldSetsOnlyItsBit(t *testing.T) {
	s := NewSerializer(72)
	s.Update("viewer", 1, []world.Snapshot{snap(1, 100, 200)}, visSet(1))

	deltas := s.Update("viewer", 2, []world.Snapshot{snap(1, 150, 200)}, visSet(1))
	require.Len(t, deltas, 1)
	require.Equal(t, world.MaskPosition, deltas[0].Mask)

	moved := snap(1, 150, 200)
	moved.Health = 50
	deltas = s.Update("viewer", 3, []world.Snapshot{moved}, visSet(1))
	require.Len(t, deltas, 1)
	require.Equal(t, world.MaskHealth, deltas[0].Mask)
}

func TestLeavingVisionEmitsRemoval(t *testing.T) {
	s := NewSerializer(72)
	s.Update("viewer", 1, []world.Snapshot{snap(1, 100, 200)}, visSet(1))

	deltas := s.Update("viewer", 2, nil, visSet())
	require.Len(t, deltas, 1)
	require.True(t, deltas[0].Removed)
	require.Equal(t, world.MaskState, deltas[0].Mask)
	require.Equal(t, world.ID(1), deltas[0].Snapshot.ID)
	require.False(t, s.HasBaseline("viewer", 1))

	// Coming back is a fresh full snapshot.
	deltas = s.Update("viewer", 3, []world.Snapshot{snap(1, 100, 200)}, visSet(1))
	require.Len(t, deltas, 1)
	require.Equal(t, world.MaskAll, deltas[0].Mask)
}

func TestBaselinesArePerViewer(t *testing.T) {
	s := NewSerializer(72)
	s.Update("a", 1, []world.Snapshot{snap(1, 100, 200)}, visSet(1))

	deltas := s.Update("b", 1, []world.Snapshot{snap(1, 100, 200)}, visSet(1))
	require.Len(t, deltas, 1)
	require.Equal(t, world.MaskAll, deltas[0].Mask)
}

func TestStaleBaselinesAreDropped(t *testing.T) {
	s := NewSerializer(10)
	// No visible set passed, so the baseline survives only through the
	// staleness sweep.
	s.Update("viewer", 1, []world.Snapshot{snap(1, 100, 200)}, nil)
	require.True(t, s.HasBaseline("viewer", 1))

	s.Update("viewer", 20, nil, nil)
	require.False(t, s.HasBaseline("viewer", 1))
}

func TestClearPlayerForcesFullResend(t *testing.T) {
	s := NewSerializer(72)
	s.Update("viewer", 1, []world.Snapshot{snap(1, 100, 200)}, visSet(1))

	s.ClearPlayer("viewer")
	deltas := s.Update("viewer", 2, []world.Snapshot{snap(1, 100, 200)}, visSet(1))
	require.Len(t, deltas, 1)
	require.Equal(t, world.MaskAll, deltas[0].Mask)
}
