package world

import (
	"testing"

	"riftlane/server/internal/content"
)

const testDt = 1.0 / 30

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(content.Default(), "summoners-rift")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func addTestChampion(t *testing.T, w *World, playerID, championID string, side content.Side) *Champion {
	t.Helper()
	c, err := w.AddChampion(playerID, championID, side)
	if err != nil {
		t.Fatalf("AddChampion(%s): %v", championID, err)
	}
	return c
}

func drainKinds(w *World) map[EventKind]int {
	out := make(map[EventKind]int)
	for _, ev := range w.DrainEvents() {
		out[ev.Kind]++
	}
	return out
}

func TestNewWorldPlacesStructures(t *testing.T) {
	w := newTestWorld(t)
	towers, inhibs, nexuses := 0, 0, 0
	for _, e := range w.entities {
		switch e.base().Type {
		case TypeTower:
			towers++
		case TypeInhibitor:
			inhibs++
		case TypeNexus:
			nexuses++
		}
	}
	if towers != 12 {
		t.Fatalf("towers = %d, want 12", towers)
	}
	if inhibs != 6 {
		t.Fatalf("inhibitors = %d, want 6", inhibs)
	}
	if nexuses != 2 {
		t.Fatalf("nexuses = %d, want 2", nexuses)
	}
}

func TestEventIDsAreMonotone(t *testing.T) {
	w := newTestWorld(t)
	w.emit(EventRecallStarted, nil)
	w.emit(EventRecallCanceled, nil)
	w.emit(EventRecallStarted, nil)
	events := w.DrainEvents()
	if len(events) != 3 {
		t.Fatalf("drained %d events, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].ID <= events[i-1].ID {
			t.Fatalf("event ids not monotone: %d then %d", events[i-1].ID, events[i].ID)
		}
	}
	if got := w.DrainEvents(); len(got) != 0 {
		t.Fatalf("second drain returned %d events, want 0", len(got))
	}
}

func TestBushHidesFromOutsideSources(t *testing.T) {
	w := newTestWorld(t)
	blue := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	red := addTestChampion(t, w, "p2", "vael", content.SideRed)

	// Blue stands inside a bush; red stands 400 units away outside it,
	// well within sight range.
	blue.Pos = Vec2{X: 6000, Y: 9000}
	red.Pos = Vec2{X: 6800, Y: 9000}
	w.recomputeFog()

	if w.Visible(content.SideRed, blue.ID) {
		t.Fatal("champion in bush visible to source outside the bush")
	}
	if !w.Visible(content.SideBlue, blue.ID) {
		t.Fatal("champion not visible to own side")
	}

	// Stepping into the same bush reveals its occupants.
	red.Pos = Vec2{X: 6200, Y: 9000}
	w.recomputeFog()
	if !w.Visible(content.SideRed, blue.ID) {
		t.Fatal("champion in bush not visible to source in the same bush")
	}
}

func TestStructuresNeverHideInFog(t *testing.T) {
	w := newTestWorld(t)
	addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	w.recomputeFog()
	for _, e := range w.entities {
		b := e.base()
		if !b.Type.structure() {
			continue
		}
		if !w.Visible(content.SideBlue, b.ID) {
			t.Fatalf("%s %d not visible through fog", b.Type, b.ID)
		}
	}
}

func TestMinionWavesSpawnOnSchedule(t *testing.T) {
	w := newTestWorld(t)
	cons := w.reg.Constants

	for i := 0; i < 151; i++ {
		w.Tick(testDt)
	}
	minions := 0
	for _, e := range w.entities {
		if e.base().Type == TypeMinion {
			minions++
		}
	}
	want := cons.WaveSize * 2 * len(content.Lanes)
	if minions != want {
		t.Fatalf("minions after first wave = %d, want %d", minions, want)
	}
}

func TestChampionKillPaysGoldAndFirstBlood(t *testing.T) {
	w := newTestWorld(t)
	killer := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	victim := addTestChampion(t, w, "p2", "vael", content.SideRed)
	w.DrainEvents()

	victim.TakeDamage(100000, content.DamageTrue, killer.ID, w)

	if !victim.Dead {
		t.Fatal("victim not dead")
	}
	cons := w.reg.Constants
	wantGold := cons.StartingGold + cons.KillGold + cons.FirstBloodGold
	if int(killer.gold) != wantGold {
		t.Fatalf("killer gold = %d, want %d", int(killer.gold), wantGold)
	}
	if killer.kills != 1 || victim.deaths != 1 {
		t.Fatalf("kills/deaths = %d/%d, want 1/1", killer.kills, victim.deaths)
	}
	kinds := drainKinds(w)
	if kinds[EventFirstBlood] != 1 {
		t.Fatal("no FIRST_BLOOD event")
	}
	if kinds[EventChampionKill] != 1 {
		t.Fatal("no CHAMPION_KILL event")
	}
	// One champion per side, so the kill is also an ace.
	if kinds[EventAce] != 1 {
		t.Fatal("no ACE event")
	}
}

func TestSecondKillHasNoFirstBlood(t *testing.T) {
	w := newTestWorld(t)
	killer := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	victim := addTestChampion(t, w, "p2", "vael", content.SideRed)

	victim.TakeDamage(100000, content.DamageTrue, killer.ID, w)
	victim.respawn(w)
	w.DrainEvents()

	victim.TakeDamage(100000, content.DamageTrue, killer.ID, w)
	if kinds := drainKinds(w); kinds[EventFirstBlood] != 0 {
		t.Fatal("FIRST_BLOOD emitted twice")
	}
}

func TestAssistsCreditRecentAttackers(t *testing.T) {
	w := newTestWorld(t)
	killer := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	helper := addTestChampion(t, w, "p2", "lume", content.SideBlue)
	victim := addTestChampion(t, w, "p3", "vael", content.SideRed)

	victim.TakeDamage(10, content.DamagePhysical, helper.ID, w)
	victim.TakeDamage(100000, content.DamageTrue, killer.ID, w)

	if helper.assists != 1 {
		t.Fatalf("helper assists = %d, want 1", helper.assists)
	}
	if int(helper.gold) != w.reg.Constants.StartingGold+w.reg.Constants.AssistGold {
		t.Fatalf("helper gold = %d", int(helper.gold))
	}
}

func TestMovementTowardTarget(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	target := Vec2{X: c.Pos.X + 2000, Y: c.Pos.Y}
	before := Dist(c.Pos, target)

	c.SetMoveTarget(w, target, false)
	for i := 0; i < 30; i++ {
		w.Tick(testDt)
	}
	if after := Dist(c.Pos, target); after >= before {
		t.Fatalf("champion did not approach target: %v -> %v", before, after)
	}

	pos := c.Pos
	c.Stop()
	if c.hasMoveTarget {
		t.Fatal("Stop left the move target set")
	}
	w.Tick(testDt)
	if c.Pos != pos {
		t.Fatal("champion moved after Stop")
	}
}

func TestGameEndStopsSimulation(t *testing.T) {
	w := newTestWorld(t)
	w.endGame(content.SideBlue)

	ended, winner := w.Ended()
	if !ended || winner != content.SideBlue {
		t.Fatalf("Ended() = %v, %v", ended, winner)
	}
	events := w.DrainEvents()
	if len(events) != 1 || events[0].Kind != EventGameEnd {
		t.Fatalf("events = %+v, want single GAME_END", events)
	}
	tick := w.CurrentTick()
	w.Tick(testDt)
	if w.CurrentTick() != tick {
		t.Fatal("tick advanced after game end")
	}
}
