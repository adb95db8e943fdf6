package world

import "riftlane/server/internal/content"

// jungleLeashRange is how far a monster chases before it gives up and
// walks home, healing to full on the way.
const jungleLeashRange = 800.0

// JungleMonster guards its camp. It idles until attacked, fights back
// against its attacker, and leashes home when pulled too far.
type JungleMonster struct {
	Base
	statusHolder

	def    *content.UnitDef
	camp   *content.CampDef
	home   Vec2
	kind   content.CampKind
	campID string

	targetID  ID
	attackCD  float64
	returning bool
}

func newJungleMonster(id ID, def *content.UnitDef, camp *content.CampDef, pos Vec2) *JungleMonster {
	j := &JungleMonster{
		Base: Base{
			ID:         id,
			Type:       TypeJungle,
			Side:       content.SideNeutral,
			Pos:        pos,
			Health:     def.Stats.MaxHealth,
			MaxHealth:  def.Stats.MaxHealth,
			Radius:     def.Radius,
			SightRange: def.SightRange,
		},
		def:    def,
		camp:   camp,
		home:   pos,
		kind:   camp.Kind,
		campID: camp.ID,
	}
	j.resetStatus()
	return j
}

func (j *JungleMonster) Update(dt float64, w *World) {
	j.tickEffects(dt, j, w)
	if j.Dead {
		return
	}
	if j.attackCD > 0 {
		j.attackCD -= dt
	}

	if j.returning {
		var arrived bool
		j.Pos, arrived = moveToward(j.Pos, j.home, j.def.Stats.MoveSpeed, dt)
		if arrived {
			j.returning = false
			j.Health = j.MaxHealth
		}
		return
	}

	if j.targetID == 0 {
		return
	}
	target := w.entity(j.targetID)
	if target == nil || target.base().Dead {
		j.leash()
		return
	}
	tb := target.base()
	if Dist(j.Pos, j.home) > jungleLeashRange || Dist(tb.Pos, j.home) > jungleLeashRange {
		j.leash()
		return
	}
	if Dist(j.Pos, tb.Pos) <= j.def.Stats.AttackRange+j.Radius+tb.Radius {
		if j.canAttack && j.attackCD <= 0 {
			as := j.def.Stats.AttackSpeed
			if as <= 0 {
				as = 0.5
			}
			j.attackCD = 1 / as
			target.TakeDamage(j.def.Stats.AttackDamage, content.DamagePhysical, j.ID, w)
		}
	} else if j.canMove {
		j.Pos, _ = moveToward(j.Pos, tb.Pos, j.def.Stats.MoveSpeed*j.slowFactor, dt)
	}
}

// leash sends the monster home. It drops aggro, sheds every effect, and
// heals to full once it arrives.
func (j *JungleMonster) leash() {
	j.targetID = 0
	j.returning = true
	j.purgeEffects()
}

func (j *JungleMonster) TakeDamage(amount float64, typ content.DamageType, sourceID ID, w *World) float64 {
	if j.Dead || amount <= 0 {
		return 0
	}
	reduced := reduceDamage(amount, typ, j.def.Stats.Armor, j.def.Stats.MagicResist)
	if reduced > j.Health {
		reduced = j.Health
	}
	j.Health -= reduced

	if src := w.entity(sourceID); src != nil && unitType(src.base().Type) {
		j.returning = false
		if j.targetID == 0 {
			j.targetID = sourceID
		}
	}
	if j.Health <= 0 {
		j.die(w, sourceID)
	}
	return reduced
}

func (j *JungleMonster) die(w *World, killerID ID) {
	j.Dead = true
	j.Health = 0
	j.purgeEffects()
	j.MarkRemove()
	w.onJungleDeath(j, killerID)
}

func (j *JungleMonster) Snapshot() Snapshot {
	s := j.snapshot()
	s.ActiveEffects = j.effectStates()
	s.MoveSpeed = j.def.Stats.MoveSpeed * j.slowFactor
	return s
}
