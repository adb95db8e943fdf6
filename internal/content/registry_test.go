package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryValidates(t *testing.T) {
	r := Default()
	require.NoError(t, r.Validate())
	require.Len(t, r.Champions, 4)
	require.NotEmpty(t, r.Items)
	require.NotEmpty(t, r.Units)
	_, ok := r.Map("summoners-rift")
	require.True(t, ok)
}

func TestEveryChampionSlotResolves(t *testing.T) {
	r := Default()
	for id := range r.Champions {
		for _, slot := range Slots {
			a, ok := r.ChampionAbility(id, slot)
			require.True(t, ok, "champion %s slot %s", id, slot)
			require.Equal(t, slot, a.Slot)
			require.Equal(t, id, a.ChampionID)
		}
	}
}

func TestValidateRejectsDanglingAbility(t *testing.T) {
	r := Default()
	r.Champions["ashka"].Abilities[SlotQ] = "no-such-ability"
	require.Error(t, r.Validate())
}

func TestValidateRejectsSlotMismatch(t *testing.T) {
	r := Default()
	// Assign a W ability into the Q slot.
	r.Champions["ashka"].Abilities[SlotQ] = "ashka-w"
	require.Error(t, r.Validate())
}

func TestValidateRejectsUnknownPassive(t *testing.T) {
	r := Default()
	r.Champions["vael"].PassiveID = "no-such-passive"
	require.Error(t, r.Validate())
}

func TestValidateRejectsUnknownEffectFamily(t *testing.T) {
	r := Default()
	r.Abilities["ashka-q"].Effects = []EffectSpec{{Family: "explode"}}
	require.Error(t, r.Validate())
}

func TestValidateRejectsCampWithUnknownUnit(t *testing.T) {
	r := Default()
	m := r.Maps["summoners-rift"]
	m.Camps[0].UnitID = "no-such-unit"
	require.Error(t, r.Validate())
}

func TestValidateRejectsItemWithUnknownPassive(t *testing.T) {
	r := Default()
	r.Items["long-sword"].PassiveID = "no-such-passive"
	require.Error(t, r.Validate())
}

func TestRankValueClamps(t *testing.T) {
	a := &AbilityDef{ManaCost: []float64{40, 45, 50}}
	require.Equal(t, 40.0, a.ManaCostAt(1))
	require.Equal(t, 50.0, a.ManaCostAt(3))
	require.Equal(t, 50.0, a.ManaCostAt(5))
	require.Equal(t, 40.0, a.ManaCostAt(0))
}

func TestAtLevelAppliesGrowth(t *testing.T) {
	base := Stats{MaxHealth: 500, AttackDamage: 50}
	growth := Stats{MaxHealth: 100, AttackDamage: 4}
	require.Equal(t, base, AtLevel(base, growth, 1))
	lvl3 := AtLevel(base, growth, 3)
	require.Equal(t, 700.0, lvl3.MaxHealth)
	require.Equal(t, 58.0, lvl3.AttackDamage)
}

func TestConstantsFormulas(t *testing.T) {
	c := defaultConstants()
	require.Equal(t, 6.0, c.RespawnSec(1))
	require.Equal(t, 16.0, c.RespawnSec(5))
	require.Equal(t, 40.0, c.RespawnSec(18))
	require.Equal(t, 0.0, c.XPToNext(18))
	require.Greater(t, c.XPToNext(2), c.XPToNext(1))
	require.Equal(t, 6, c.UltGate(1))
	require.Equal(t, 16, c.UltGate(3))
}

func TestBushContainmentEdgesAreOutside(t *testing.T) {
	b := Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	require.False(t, b.Contains(Point{X: 0, Y: 50}))
	require.False(t, b.Contains(Point{X: 100, Y: 50}))
	require.True(t, b.Contains(Point{X: 0.001, Y: 50}))
	require.True(t, b.Contains(Point{X: 50, Y: 50}))
}

func TestTowersComeInTierPairs(t *testing.T) {
	r := Default()
	m := r.Maps["summoners-rift"]
	for _, layout := range []TeamLayout{m.Blue, m.Red} {
		byLane := map[Lane][]int{}
		for _, tw := range layout.Towers {
			byLane[tw.Lane] = append(byLane[tw.Lane], tw.Tier)
		}
		for _, lane := range Lanes {
			require.ElementsMatch(t, []int{1, 2}, byLane[lane], "lane %s", lane)
		}
		require.Len(t, layout.Inhibitors, 3)
	}
}
