package world

import "riftlane/server/internal/content"

// moveToward advances pos toward target at speed for dt seconds and
// reports whether the target was reached this step.
func moveToward(pos, target Vec2, speed, dt float64) (Vec2, bool) {
	delta := target.Sub(pos)
	dist := delta.Len()
	step := speed * dt
	if dist <= step || dist == 0 {
		return target, true
	}
	return pos.Add(delta.Normalized().Scale(step)), false
}

// forcedMove is an in-flight dash or knockback. While active it overrides
// normal movement gates entirely; stuns do not interrupt it.
type forcedMove struct {
	dir       Vec2
	speed     float64
	remaining float64

	// hitbox > 0 applies onHit to each enemy unit struck, at most once
	// per unit for the lifetime of the forced move.
	hitbox      float64
	onHit       []content.EffectSpec
	ctx         effectContext
	hitEntities map[ID]struct{}
}

// startForcedMove replaces any forced movement in progress.
func (b *Base) startForcedMove(fm *forcedMove) {
	if fm.hitbox > 0 && fm.hitEntities == nil {
		fm.hitEntities = make(map[ID]struct{})
	}
	b.forced = fm
}

// unitType reports whether the type is a mobile combat unit, the only
// kind a dash hitbox can strike.
func unitType(t EntityType) bool {
	switch t {
	case TypeChampion, TypeMinion, TypeJungle:
		return true
	}
	return false
}

// resolveForcedMovement advances every active dash and knockback one step
// and applies their collision effects. Runs after entity updates so a dash
// started this tick moves this tick.
func (w *World) resolveForcedMovement(dt float64) {
	for _, e := range w.entities {
		b := e.base()
		fm := b.forced
		if fm == nil {
			continue
		}
		if b.Dead {
			b.forced = nil
			continue
		}
		step := dt
		if fm.remaining < step {
			step = fm.remaining
		}
		b.Pos = Clamp(b.Pos.Add(fm.dir.Scale(fm.speed*step)), w.mapDef.Width, w.mapDef.Height)
		fm.remaining -= dt
		if fm.hitbox > 0 {
			for _, other := range w.entities {
				ob := other.base()
				if ob.Side == b.Side || ob.Dead || !unitType(ob.Type) {
					continue
				}
				if _, seen := fm.hitEntities[ob.ID]; seen {
					continue
				}
				if Dist(b.Pos, ob.Pos) > fm.hitbox+ob.Radius {
					continue
				}
				fm.hitEntities[ob.ID] = struct{}{}
				w.applyHitEffects(fm.ctx, other, fm.onHit)
			}
		}
		if fm.remaining <= 0 {
			b.forced = nil
		}
	}
}
