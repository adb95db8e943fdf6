package protocol

import (
	"encoding/json"
	"testing"

	"riftlane/server/internal/world"
)

func championSnap() world.Snapshot {
	return world.Snapshot{
		ID:         7,
		Type:       world.TypeChampion,
		ChampionID: "ashka",
		PlayerID:   "p1",
		X:          100, Y: 200,
		Health: 450, MaxHealth: 560,
		Resource: 300, MaxResource: 420,
		Level: 3, Gold: 725,
	}
}

func TestDeltaPayloadGatesFieldsByMask(t *testing.T) {
	s := championSnap()

	d := DeltaPayload(&s, world.MaskPosition)
	if d.X == nil || *d.X != 100 || d.Y == nil || *d.Y != 200 {
		t.Fatalf("position missing: %+v", d)
	}
	if d.Health != nil || d.Gold != nil || d.Level != nil {
		t.Fatal("fields outside the mask populated")
	}
	if d.ChampionID != "" || d.PlayerID != "" {
		t.Fatal("identity sent on a partial delta")
	}

	d = DeltaPayload(&s, world.MaskHealth|world.MaskGold)
	if d.Health == nil || *d.Health != 450 {
		t.Fatal("health missing")
	}
	if d.Gold == nil || *d.Gold != 725 {
		t.Fatal("gold missing")
	}
	if d.X != nil {
		t.Fatal("position populated without its bit")
	}
}

func TestFullMaskCarriesIdentity(t *testing.T) {
	s := championSnap()
	d := DeltaPayload(&s, world.MaskAll)
	if d.ChampionID != "ashka" || d.PlayerID != "p1" {
		t.Fatalf("identity = %q/%q", d.ChampionID, d.PlayerID)
	}
	if d.Abilities == nil || d.Passive == nil || d.Trinket == nil {
		t.Fatal("champion groups missing on full snapshot")
	}
}

func TestNonChampionSkipsChampionGroups(t *testing.T) {
	s := world.Snapshot{ID: 3, Type: world.TypeMinion, X: 10, Y: 20, Health: 480, MaxHealth: 480}
	d := DeltaPayload(&s, world.MaskAll)
	if d.Abilities != nil || d.Passive != nil || d.Trinket != nil || d.Items != nil {
		t.Fatal("minion delta carries champion groups")
	}
	if d.X == nil || d.Health == nil {
		t.Fatal("minion delta missing shared groups")
	}
}

func TestPartialDeltaOmitsAbsentFieldsOnWire(t *testing.T) {
	s := championSnap()
	delta := EntityDelta{
		EntityID:   s.ID,
		EntityType: s.Type,
		Side:       s.Side,
		ChangeMask: uint32(world.MaskPosition),
		Data:       DeltaPayload(&s, world.MaskPosition),
	}
	data, err := json.Marshal(delta)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw["data"], &body); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if _, ok := body["x"]; !ok {
		t.Fatal("x absent from wire payload")
	}
	if _, ok := body["health"]; ok {
		t.Fatal("health leaked onto the wire without its mask bit")
	}
}

func TestRemovalPayloadShape(t *testing.T) {
	d := RemovalPayload()
	if d.IsDead == nil || !*d.IsDead {
		t.Fatal("removal payload not dead")
	}
	if d.IsDestroyed == nil || !*d.IsDestroyed {
		t.Fatal("removal payload not destroyed")
	}
	if d.X != nil || d.Health != nil {
		t.Fatal("removal payload carries state")
	}
}

func TestTargetGroupOnlyWhenSet(t *testing.T) {
	s := championSnap()
	d := DeltaPayload(&s, world.MaskTarget)
	if d.TargetX != nil || d.TargetEntityID != nil {
		t.Fatal("idle champion produced target fields")
	}

	s.HasMoveTarget = true
	s.TargetX, s.TargetY = 500, 600
	d = DeltaPayload(&s, world.MaskTarget)
	if d.TargetX == nil || *d.TargetX != 500 {
		t.Fatal("move target missing")
	}
}
