package world

import "riftlane/server/internal/content"

const (
	towerRadius = 80.0
	inhibRadius = 70.0
	nexusRadius = 100.0
)

func enemySide(s content.Side) content.Side {
	if s == content.SideBlue {
		return content.SideRed
	}
	return content.SideBlue
}

// Tower is a lane turret. It shoots the nearest enemy minion in range,
// switches to enemy champions that attack allied champions under it, and
// is invulnerable until the lower tiers of its lane have fallen.
type Tower struct {
	Base

	stats content.Stats
	lane  content.Lane
	tier  int

	targetID ID
	attackCD float64
}

func newTower(id ID, side content.Side, spot content.TowerSpot, stats content.Stats, sight float64) *Tower {
	return &Tower{
		Base: Base{
			ID:         id,
			Type:       TypeTower,
			Side:       side,
			Pos:        fromPoint(spot.Pos),
			Health:     stats.MaxHealth,
			MaxHealth:  stats.MaxHealth,
			Radius:     towerRadius,
			SightRange: sight,
		},
		stats: stats,
		lane:  spot.Lane,
		tier:  spot.Tier,
	}
}

func (t *Tower) Update(dt float64, w *World) {
	if t.Dead {
		return
	}
	if t.attackCD > 0 {
		t.attackCD -= dt
	}

	if t.targetID != 0 {
		target := w.entity(t.targetID)
		if target == nil || target.base().Dead || !t.inRange(target.base()) {
			t.targetID = 0
		}
	}
	if t.targetID == 0 {
		t.targetID = t.acquire(w)
	}
	if t.targetID == 0 || t.attackCD > 0 {
		return
	}
	target := w.entity(t.targetID)
	if target == nil {
		return
	}
	as := t.stats.AttackSpeed
	if as <= 0 {
		as = 0.5
	}
	t.attackCD = 1 / as
	target.TakeDamage(t.stats.AttackDamage, content.DamagePhysical, t.ID, w)
}

func (t *Tower) inRange(b *Base) bool {
	return Dist(t.Pos, b.Pos) <= t.stats.AttackRange+t.Radius+b.Radius
}

// acquire prefers minions over champions so that champions can dive only
// after the wave has soaked the shots.
func (t *Tower) acquire(w *World) ID {
	var bestMinion, bestChamp ID
	minionDist, champDist := 0.0, 0.0
	for _, e := range w.entities {
		b := e.base()
		if b.Dead || b.Side == t.Side || b.Side == content.SideNeutral || !t.inRange(b) {
			continue
		}
		d := Dist(t.Pos, b.Pos)
		switch b.Type {
		case TypeMinion:
			if bestMinion == 0 || d < minionDist {
				bestMinion, minionDist = b.ID, d
			}
		case TypeChampion:
			if bestChamp == 0 || d < champDist {
				bestChamp, champDist = b.ID, d
			}
		}
	}
	if bestMinion != 0 {
		return bestMinion
	}
	return bestChamp
}

// aggro retargets the tower onto a champion that just attacked an allied
// champion inside tower range.
func (t *Tower) aggro(attackerID ID) {
	t.targetID = attackerID
}

func (t *Tower) TakeDamage(amount float64, typ content.DamageType, sourceID ID, w *World) float64 {
	if t.Dead || amount <= 0 || !w.towerVulnerable(t) {
		return 0
	}
	reduced := reduceDamage(amount, typ, t.stats.Armor, t.stats.MagicResist)
	if reduced > t.Health {
		reduced = t.Health
	}
	t.Health -= reduced
	if t.Health <= 0 {
		t.Dead = true
		t.Health = 0
		t.MarkRemove()
		w.onTowerDeath(t, sourceID)
	}
	return reduced
}

func (t *Tower) Snapshot() Snapshot { return t.snapshot() }

// Inhibitor blocks the enemy's path to the nexus. It cannot fight back,
// and unlike towers it respawns a while after being destroyed.
type Inhibitor struct {
	Base

	stats        content.Stats
	lane         content.Lane
	respawnTimer float64
}

func newInhibitor(id ID, side content.Side, spot content.InhibSpot, stats content.Stats, sight float64) *Inhibitor {
	return &Inhibitor{
		Base: Base{
			ID:         id,
			Type:       TypeInhibitor,
			Side:       side,
			Pos:        fromPoint(spot.Pos),
			Health:     stats.MaxHealth,
			MaxHealth:  stats.MaxHealth,
			Radius:     inhibRadius,
			SightRange: sight,
		},
		stats: stats,
		lane:  spot.Lane,
	}
}

func (i *Inhibitor) Update(dt float64, w *World) {
	if !i.Dead {
		return
	}
	i.respawnTimer -= dt
	if i.respawnTimer <= 0 {
		i.Dead = false
		i.Health = i.MaxHealth
		i.respawnTimer = 0
		w.emit(EventInhibitorRespawned, StructurePayload{
			EntityID: i.ID,
			Side:     i.Side,
			Lane:     i.lane,
		})
	}
}

func (i *Inhibitor) TakeDamage(amount float64, typ content.DamageType, sourceID ID, w *World) float64 {
	if i.Dead || amount <= 0 || !w.inhibitorVulnerable(i) {
		return 0
	}
	reduced := reduceDamage(amount, typ, i.stats.Armor, i.stats.MagicResist)
	if reduced > i.Health {
		reduced = i.Health
	}
	i.Health -= reduced
	if i.Health <= 0 {
		i.Dead = true
		i.Health = 0
		i.respawnTimer = w.reg.Constants.InhibitorRespawnSec
		w.emit(EventInhibitorDestroyed, StructurePayload{
			EntityID: i.ID,
			Side:     i.Side,
			Lane:     i.lane,
			KillerID: sourceID,
		})
	}
	return reduced
}

func (i *Inhibitor) Snapshot() Snapshot {
	s := i.snapshot()
	s.RespawnTimer = i.respawnTimer
	return s
}

// Nexus is the win condition. Destroying it ends the match.
type Nexus struct {
	Base

	stats content.Stats
}

func newNexus(id ID, side content.Side, pos content.Point, stats content.Stats, sight float64) *Nexus {
	return &Nexus{
		Base: Base{
			ID:         id,
			Type:       TypeNexus,
			Side:       side,
			Pos:        fromPoint(pos),
			Health:     stats.MaxHealth,
			MaxHealth:  stats.MaxHealth,
			Radius:     nexusRadius,
			SightRange: sight,
		},
		stats: stats,
	}
}

func (n *Nexus) Update(dt float64, w *World) {}

func (n *Nexus) TakeDamage(amount float64, typ content.DamageType, sourceID ID, w *World) float64 {
	if n.Dead || amount <= 0 || !w.nexusVulnerable(n) {
		return 0
	}
	reduced := reduceDamage(amount, typ, n.stats.Armor, n.stats.MagicResist)
	if reduced > n.Health {
		reduced = n.Health
	}
	n.Health -= reduced
	if n.Health <= 0 {
		n.Dead = true
		n.Health = 0
		w.emit(EventNexusDestroyed, StructurePayload{
			EntityID: n.ID,
			Side:     n.Side,
			KillerID: sourceID,
		})
		w.endGame(enemySide(n.Side))
	}
	return reduced
}

func (n *Nexus) Snapshot() Snapshot { return n.snapshot() }

// towerVulnerable reports whether every lower tier of the tower's lane has
// fallen. Tier 1 towers are always open.
func (w *World) towerVulnerable(t *Tower) bool {
	if t.tier <= 1 {
		return true
	}
	for _, e := range w.entities {
		other, ok := e.(*Tower)
		if !ok || other.Dead {
			continue
		}
		if other.Side == t.Side && other.lane == t.lane && other.tier < t.tier {
			return false
		}
	}
	return true
}

// inhibitorVulnerable requires the inhibitor's lane to have no standing
// towers left.
func (w *World) inhibitorVulnerable(i *Inhibitor) bool {
	for _, e := range w.entities {
		t, ok := e.(*Tower)
		if !ok || t.Dead {
			continue
		}
		if t.Side == i.Side && t.lane == i.lane {
			return false
		}
	}
	return true
}

// nexusVulnerable requires at least one of the side's inhibitors to be
// down right now. A respawned inhibitor closes the nexus again.
func (w *World) nexusVulnerable(n *Nexus) bool {
	for _, e := range w.entities {
		i, ok := e.(*Inhibitor)
		if !ok {
			continue
		}
		if i.Side == n.Side && i.Dead {
			return true
		}
	}
	return false
}

// notifyTowerAggro pulls allied towers onto an enemy champion that just
// attacked a champion of the victim's side within tower range.
func (w *World) notifyTowerAggro(victimSide content.Side, attackerID ID) {
	attacker := w.entity(attackerID)
	if attacker == nil || attacker.base().Type != TypeChampion {
		return
	}
	ab := attacker.base()
	for _, e := range w.entities {
		t, ok := e.(*Tower)
		if !ok || t.Dead || t.Side != victimSide {
			continue
		}
		if t.inRange(ab) {
			t.aggro(attackerID)
		}
	}
}
