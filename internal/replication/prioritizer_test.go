package replication

import (
	"testing"

	"github.com/stretchr/testify/require"

	"riftlane/server/internal/world"
)

func typedSnap(id world.ID, typ world.EntityType, x float64) world.Snapshot {
	return world.Snapshot{ID: id, Type: typ, X: x}
}

func TestChampionsAndStructuresAlwaysCritical(t *testing.T) {
	p := NewPrioritizer(PrioritizerConfig{})
	viewer := world.Vec2{}
	far := 10000.0

	for _, typ := range []world.EntityType{
		world.TypeChampion, world.TypeTower, world.TypeInhibitor, world.TypeNexus,
	} {
		snap := typedSnap(1, typ, far)
		require.Equal(t, PriorityCritical, p.classify(&snap, viewer, true), "type %s", typ)
	}
}

func TestDistanceBands(t *testing.T) {
	p := NewPrioritizer(PrioritizerConfig{})
	viewer := world.Vec2{}
	cases := []struct {
		dist float64
		want Priority
	}{
		{400, PriorityCritical},
		{900, PriorityHigh},
		{1400, PriorityMedium},
		{2000, PriorityLow},
	}
	for _, tc := range cases {
		snap := typedSnap(1, world.TypeMinion, tc.dist)
		require.Equal(t, tc.want, p.classify(&snap, viewer, true), "distance %v", tc.dist)
	}
}

func TestDistantProjectilesStayHigh(t *testing.T) {
	p := NewPrioritizer(PrioritizerConfig{})
	snap := typedSnap(1, world.TypeProjectile, 5000)
	require.Equal(t, PriorityHigh, p.classify(&snap, world.Vec2{}, true))
}

func TestNewEntityAlwaysIncluded(t *testing.T) {
	p := NewPrioritizer(PrioritizerConfig{})
	snaps := []world.Snapshot{typedSnap(1, world.TypeMinion, 2000)}

	out := p.Select("viewer", 1, world.Vec2{}, true, snaps)
	require.Len(t, out, 1)
}

func TestLowPriorityCadence(t *testing.T) {
	p := NewPrioritizer(PrioritizerConfig{})
	snaps := []world.Snapshot{typedSnap(1, world.TypeMinion, 2000)}

	// Included on first sight at tick 1.
	require.Len(t, p.Select("viewer", 1, world.Vec2{}, true, snaps), 1)
	// Ticks 2..15: since-last ranges 1..14, below the low cadence of 15.
	for tick := uint64(2); tick <= 15; tick++ {
		require.Empty(t, p.Select("viewer", tick, world.Vec2{}, true, snaps), "tick %d", tick)
	}
	// Tick 16: since-last is 15, due again.
	require.Len(t, p.Select("viewer", 16, world.Vec2{}, true, snaps), 1)
}

func TestCriticalIncludedEveryTick(t *testing.T) {
	p := NewPrioritizer(PrioritizerConfig{})
	snaps := []world.Snapshot{typedSnap(1, world.TypeChampion, 0)}
	for tick := uint64(1); tick <= 5; tick++ {
		require.Len(t, p.Select("viewer", tick, world.Vec2{}, true, snaps), 1, "tick %d", tick)
	}
}

func TestNoLiveChampionIncludesEverything(t *testing.T) {
	p := NewPrioritizer(PrioritizerConfig{})
	snaps := []world.Snapshot{
		typedSnap(1, world.TypeMinion, 2000),
		typedSnap(2, world.TypeMinion, 8000),
	}
	require.Len(t, p.Select("viewer", 1, world.Vec2{}, false, snaps), 2)
	// Still everything while dead, cadence does not apply.
	require.Len(t, p.Select("viewer", 2, world.Vec2{}, false, snaps), 2)
}

func TestForceIncludeAfterMaxTicks(t *testing.T) {
	p := NewPrioritizer(PrioritizerConfig{MaxTicksWithoutUpdate: 8})
	snaps := []world.Snapshot{typedSnap(1, world.TypeMinion, 2000)}

	require.Len(t, p.Select("viewer", 1, world.Vec2{}, true, snaps), 1)
	// Low cadence is 15, but the force-include bound of 8 fires first.
	for tick := uint64(2); tick <= 9; tick++ {
		require.Empty(t, p.Select("viewer", tick, world.Vec2{}, true, snaps), "tick %d", tick)
	}
	require.Len(t, p.Select("viewer", 10, world.Vec2{}, true, snaps), 1)
}

func TestClearPlayerResetsTracking(t *testing.T) {
	p := NewPrioritizer(PrioritizerConfig{})
	snaps := []world.Snapshot{typedSnap(1, world.TypeMinion, 2000)}
	p.Select("viewer", 1, world.Vec2{}, true, snaps)
	require.Empty(t, p.Select("viewer", 2, world.Vec2{}, true, snaps))

	p.ClearPlayer("viewer")
	require.Len(t, p.Select("viewer", 3, world.Vec2{}, true, snaps), 1)
}
