package world

import (
	"math"
	"testing"

	"riftlane/server/internal/content"
)

func TestReduceDamage(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		typ    content.DamageType
		armor  float64
		mr     float64
		want   float64
	}{
		{"physical vs armor", 100, content.DamagePhysical, 100, 0, 50},
		{"physical vs no armor", 100, content.DamagePhysical, 0, 0, 100},
		{"magic vs mr", 200, content.DamageMagic, 0, 100, 100},
		{"true ignores both", 100, content.DamageTrue, 100, 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := reduceDamage(tc.amount, tc.typ, tc.armor, tc.mr)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("reduceDamage = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestShieldsAbsorbBeforeHealth(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	health := c.Health

	c.shields.add(100, 5, 0, "all")
	c.TakeDamage(60, content.DamageTrue, 0, w)
	if c.Health != health {
		t.Fatalf("health dropped to %v with shield up", c.Health)
	}
	if got := c.shields.total(); got != 40 {
		t.Fatalf("shield remaining = %v, want 40", got)
	}

	// Overflow past the shield reaches health.
	c.TakeDamage(100, content.DamageTrue, 0, w)
	if c.Health != health-60 {
		t.Fatalf("health = %v, want %v", c.Health, health-60)
	}
	if c.shields.total() != 0 {
		t.Fatal("exhausted shield not removed")
	}
}

func TestShieldExpiresWithDuration(t *testing.T) {
	var l shieldList
	l.add(100, 0.5, 0, "all")
	for i := 0; i < 20; i++ {
		l.tick(testDt)
	}
	if l.total() != 0 {
		t.Fatalf("shield total = %v after expiry, want 0", l.total())
	}
}

func TestRecallChannelsToSpawn(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	c.Pos = Vec2{X: 7000, Y: 7000}
	w.DrainEvents()

	if !c.StartRecall(w) {
		t.Fatal("StartRecall refused")
	}
	ticks := int(w.reg.Constants.RecallChannelSec/testDt) + 2
	for i := 0; i < ticks; i++ {
		w.Tick(testDt)
	}
	if c.recalling {
		t.Fatal("still recalling after channel time")
	}
	if spawn := w.spawnPoint(content.SideBlue); c.Pos != spawn {
		t.Fatalf("pos = %v, want spawn %v", c.Pos, spawn)
	}
	kinds := drainKinds(w)
	if kinds[EventRecallStarted] != 1 || kinds[EventRecallFinished] != 1 {
		t.Fatalf("recall events = %v", kinds)
	}
}

func TestRecallInterruptedByDamage(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	enemy := addTestChampion(t, w, "p2", "vael", content.SideRed)
	w.DrainEvents()

	if !c.StartRecall(w) {
		t.Fatal("StartRecall refused")
	}
	c.TakeDamage(10, content.DamagePhysical, enemy.ID, w)
	if c.recalling {
		t.Fatal("recall survived damage")
	}
	if kinds := drainKinds(w); kinds[EventRecallCanceled] != 1 {
		t.Fatal("no RECALL_CANCELED event")
	}
}

func TestRecallRefusedInCombat(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	c.enterCombat(w)
	if c.StartRecall(w) {
		t.Fatal("StartRecall allowed in combat")
	}
}

func TestDeathAndRespawn(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	c.Pos = Vec2{X: 7000, Y: 7000}
	c.applyEffect(activeEffect{id: "stun", kind: content.CCStun, remaining: 10}, content.StackRefresh, 0)

	c.TakeDamage(100000, content.DamageTrue, 0, w)
	if !c.Dead {
		t.Fatal("champion survived lethal damage")
	}
	if len(c.effects) != 0 {
		t.Fatal("effects survived death")
	}
	want := w.reg.Constants.RespawnSec(c.level)
	if math.Abs(c.respawnTimer-want) > 1e-9 {
		t.Fatalf("respawn timer = %v, want %v", c.respawnTimer, want)
	}

	ticks := int(want/testDt) + 2
	for i := 0; i < ticks; i++ {
		w.Tick(testDt)
	}
	if c.Dead {
		t.Fatal("champion did not respawn")
	}
	if c.Health != c.MaxHealth {
		t.Fatalf("respawned at %v/%v health", c.Health, c.MaxHealth)
	}
	if spawn := w.spawnPoint(content.SideBlue); c.Pos != spawn {
		t.Fatalf("respawned at %v, want spawn %v", c.Pos, spawn)
	}
}

func TestBuyAndSellItem(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	baseAD := c.stats.effective().AttackDamage
	w.DrainEvents()

	if !c.BuyItem(w, "long-sword") {
		t.Fatal("BuyItem refused with enough gold")
	}
	if int(c.gold) != 150 {
		t.Fatalf("gold = %d, want 150", int(c.gold))
	}
	if got := c.stats.effective().AttackDamage; got != baseAD+10 {
		t.Fatalf("attack damage = %v, want %v", got, baseAD+10)
	}
	if c.BuyItem(w, "long-sword") {
		t.Fatal("BuyItem succeeded without gold")
	}

	if !c.SellItem(w, 0) {
		t.Fatal("SellItem refused")
	}
	refund := int(350 * w.reg.Constants.SellRefund)
	if int(c.gold) != 150+refund {
		t.Fatalf("gold after sell = %d, want %d", int(c.gold), 150+refund)
	}
	if got := c.stats.effective().AttackDamage; got != baseAD {
		t.Fatalf("attack damage after sell = %v, want %v", got, baseAD)
	}
	kinds := drainKinds(w)
	if kinds[EventItemBought] != 1 || kinds[EventItemSold] != 1 {
		t.Fatalf("shop events = %v", kinds)
	}
}

func TestUniqueItemsCannotStack(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	c.gold = 1000
	if !c.BuyItem(w, "swift-boots") {
		t.Fatal("first unique purchase refused")
	}
	if c.BuyItem(w, "swift-boots") {
		t.Fatal("duplicate unique purchase allowed")
	}
}

func TestBuyRefusedWhenInventoryFull(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	c.gold = 100000
	for i := 0; i < 6; i++ {
		if !c.BuyItem(w, "long-sword") {
			t.Fatalf("purchase %d refused", i)
		}
	}
	if c.BuyItem(w, "long-sword") {
		t.Fatal("seventh purchase allowed with full inventory")
	}
}

func TestPlaceWardSpendsCharge(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	pos := c.Pos.Add(Vec2{X: 300})

	if !c.PlaceWard(w, pos, content.WardStealth) {
		t.Fatal("PlaceWard refused in range")
	}
	if c.trinketCharges != w.reg.Constants.TrinketMaxCharges-1 {
		t.Fatalf("charges = %d", c.trinketCharges)
	}
	far := c.Pos.Add(Vec2{X: w.reg.Constants.WardPlaceRange + 100})
	if c.PlaceWard(w, far, content.WardStealth) {
		t.Fatal("PlaceWard allowed out of range")
	}

	wards := 0
	for _, e := range w.entities {
		if e.base().Type == TypeWard {
			wards++
		}
	}
	if wards != 1 {
		t.Fatalf("wards placed = %d, want 1", wards)
	}
}

func TestGainXPLevelsUp(t *testing.T) {
	w := newTestWorld(t)
	c := addTestChampion(t, w, "p1", "ashka", content.SideBlue)
	maxHealth := c.MaxHealth
	w.DrainEvents()

	c.gainXP(w.reg.Constants.XPToNext(1), w)
	if c.level != 2 {
		t.Fatalf("level = %d, want 2", c.level)
	}
	if c.skillPoints != 2 {
		t.Fatalf("skill points = %d, want 2", c.skillPoints)
	}
	if c.MaxHealth <= maxHealth {
		t.Fatal("max health did not grow with the level")
	}
	if kinds := drainKinds(w); kinds[EventLevelUp] != 1 {
		t.Fatal("no LEVEL_UP event")
	}
}
