package world

import "riftlane/server/internal/content"

// Minion is a lane soldier. It walks its lane's waypoints, acquires the
// nearest enemy inside its sight, and attacks without a windup.
type Minion struct {
	Base
	statusHolder

	def       *content.UnitDef
	lane      content.Lane
	waypoints []Vec2
	wpIndex   int

	targetID ID
	attackCD float64
}

func newMinion(id ID, side content.Side, def *content.UnitDef, lane content.Lane, waypoints []Vec2, pos Vec2) *Minion {
	m := &Minion{
		Base: Base{
			ID:         id,
			Type:       TypeMinion,
			Side:       side,
			Pos:        pos,
			Health:     def.Stats.MaxHealth,
			MaxHealth:  def.Stats.MaxHealth,
			Radius:     def.Radius,
			SightRange: def.SightRange,
		},
		def:       def,
		lane:      lane,
		waypoints: waypoints,
	}
	m.resetStatus()
	return m
}

func (m *Minion) Update(dt float64, w *World) {
	m.tickEffects(dt, m, w)
	if m.Dead {
		return
	}
	if m.attackCD > 0 {
		m.attackCD -= dt
	}

	if m.targetID != 0 {
		target := w.entity(m.targetID)
		if target == nil || target.base().Dead || Dist(m.Pos, target.base().Pos) > m.SightRange*1.5 {
			m.targetID = 0
		}
	}
	if m.targetID == 0 {
		if enemy := w.nearestEnemyUnit(m.Side, m.Pos, m.SightRange); enemy != nil {
			m.targetID = enemy.base().ID
		}
	}

	if m.targetID != 0 {
		target := w.entity(m.targetID)
		if target != nil {
			tb := target.base()
			if Dist(m.Pos, tb.Pos) <= m.def.Stats.AttackRange+m.Radius+tb.Radius {
				if m.canAttack && m.attackCD <= 0 {
					m.attack(w, target)
				}
			} else if m.canMove {
				m.Pos, _ = moveToward(m.Pos, tb.Pos, m.moveSpeed(), dt)
			}
			return
		}
	}

	if m.canMove && m.wpIndex < len(m.waypoints) {
		var arrived bool
		m.Pos, arrived = moveToward(m.Pos, m.waypoints[m.wpIndex], m.moveSpeed(), dt)
		if arrived {
			m.wpIndex++
		}
	}
}

func (m *Minion) moveSpeed() float64 { return m.def.Stats.MoveSpeed * m.slowFactor }

func (m *Minion) attack(w *World, target Entity) {
	as := m.def.Stats.AttackSpeed
	if as <= 0 {
		as = 0.5
	}
	m.attackCD = 1 / as
	target.TakeDamage(m.def.Stats.AttackDamage, content.DamagePhysical, m.ID, w)
}

func (m *Minion) TakeDamage(amount float64, typ content.DamageType, sourceID ID, w *World) float64 {
	if m.Dead || amount <= 0 {
		return 0
	}
	reduced := reduceDamage(amount, typ, m.def.Stats.Armor, m.def.Stats.MagicResist)
	if reduced > m.Health {
		reduced = m.Health
	}
	m.Health -= reduced

	// Fight back against whoever hit us if we are idle.
	if m.targetID == 0 {
		if src := w.entity(sourceID); src != nil && src.base().Side != m.Side && unitType(src.base().Type) {
			m.targetID = sourceID
		}
	}
	if m.Health <= 0 {
		m.die(w, sourceID)
	}
	return reduced
}

func (m *Minion) die(w *World, killerID ID) {
	m.Dead = true
	m.Health = 0
	m.purgeEffects()
	m.MarkRemove()
	w.onMinionDeath(m, killerID)
}

func (m *Minion) Snapshot() Snapshot {
	s := m.snapshot()
	s.ActiveEffects = m.effectStates()
	s.MoveSpeed = m.def.Stats.MoveSpeed * m.slowFactor
	return s
}
