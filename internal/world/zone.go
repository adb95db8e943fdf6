package world

import "riftlane/server/internal/content"

// Zone is a timed area effect. Ground zones stay where they were cast;
// aura zones follow their owner each tick, which also covers instant
// around-the-caster pulses. Zones pulse their effects once when armed and
// then at their interval.
type Zone struct {
	Base

	ownerID   ID
	follow    bool
	armDelay  float64
	armed     bool
	remaining float64
	interval  float64
	nextTick  float64
	onHit     []content.EffectSpec
	ctx       effectContext
}

func (w *World) spawnZone(ctx effectContext, spec content.EffectSpec, follow bool) {
	pos := ctx.targetPos
	if follow {
		pos = ctx.origin
	}
	w.addEntity(&Zone{
		Base: Base{
			ID:     w.allocID(),
			Type:   TypeZone,
			Side:   ctx.side,
			Pos:    pos,
			Radius: spec.Radius,
		},
		ownerID:   ctx.casterID,
		follow:    follow,
		armDelay:  spec.Delay,
		remaining: spec.Duration,
		interval:  spec.Interval,
		onHit:     spec.OnHit,
		ctx:       ctx,
	})
}

func (z *Zone) Update(dt float64, w *World) {
	if z.follow {
		owner := w.entity(z.ownerID)
		if owner == nil || owner.base().Dead {
			z.MarkRemove()
			return
		}
		z.Pos = owner.base().Pos
	}
	if !z.armed {
		z.armDelay -= dt
		if z.armDelay > 0 {
			return
		}
		z.armed = true
		z.pulse(w)
		z.nextTick = z.interval
		return
	}
	// Checking lifetime before the pulse timer guarantees a zone whose
	// duration equals its interval pulses exactly once.
	z.remaining -= dt
	if z.remaining <= 0 {
		z.MarkRemove()
		return
	}
	z.nextTick -= dt
	if z.nextTick <= 0 {
		z.pulse(w)
		z.nextTick += z.interval
	}
}

// pulse applies the zone's effects to every enemy unit inside it.
func (z *Zone) pulse(w *World) {
	ctx := z.ctx
	ctx.origin = z.Pos
	for _, other := range w.entities {
		ob := other.base()
		if ob.Side == z.Side || ob.Dead || !unitType(ob.Type) {
			continue
		}
		if Dist(z.Pos, ob.Pos) > z.Radius+ob.Radius {
			continue
		}
		w.applyHitEffects(ctx, other, z.onHit)
	}
}

func (z *Zone) TakeDamage(float64, content.DamageType, ID, *World) float64 { return 0 }

func (z *Zone) Snapshot() Snapshot {
	s := z.snapshot()
	s.Remaining = z.remaining
	return s
}

// Trap is an armed ground trigger. After the arming delay, the first
// enemy champion entering the radius springs it: effects apply to the
// victim and the owner's passive may gain stacks.
type Trap struct {
	Base

	ownerID    ID
	armDelay   float64
	remaining  float64
	stackAward int
	onHit      []content.EffectSpec
	ctx        effectContext
}

func (w *World) spawnTrap(ctx effectContext, spec content.EffectSpec) {
	w.addEntity(&Trap{
		Base: Base{
			ID:     w.allocID(),
			Type:   TypeTrap,
			Side:   ctx.side,
			Pos:    ctx.targetPos,
			Radius: spec.Radius,
		},
		ownerID:    ctx.casterID,
		armDelay:   spec.Delay,
		remaining:  spec.Duration,
		stackAward: int(spec.Amount),
		onHit:      spec.OnHit,
		ctx:        ctx,
	})
}

func (t *Trap) Update(dt float64, w *World) {
	if t.armDelay > 0 {
		t.armDelay -= dt
		if t.armDelay > 0 {
			return
		}
	}
	for _, other := range w.entities {
		ob := other.base()
		if ob.Side == t.Side || ob.Dead || ob.Type != TypeChampion {
			continue
		}
		if Dist(t.Pos, ob.Pos) > t.Radius+ob.Radius {
			continue
		}
		t.spring(w, other)
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.MarkRemove()
	}
}

func (t *Trap) spring(w *World, victim Entity) {
	ctx := t.ctx
	ctx.origin = t.Pos
	w.applyHitEffects(ctx, victim, t.onHit)
	if t.stackAward > 0 {
		if owner, ok := w.entity(t.ownerID).(*Champion); ok && !owner.Dead {
			owner.passive.gainStacks(t.stackAward, owner)
		}
	}
	t.MarkRemove()
}

func (t *Trap) TakeDamage(float64, content.DamageType, ID, *World) float64 { return 0 }

func (t *Trap) Snapshot() Snapshot {
	s := t.snapshot()
	s.Remaining = t.remaining
	return s
}

// Ward is a placed vision totem. Stealth wards are hidden from enemies;
// farsight wards trade stealth for a longer life. Attacks chip a ward one
// point per hit regardless of damage.
type Ward struct {
	Base

	ownerID   ID
	kind      content.WardKind
	remaining float64
	stealthed bool
}

func (w *World) spawnWard(ownerID ID, side content.Side, pos Vec2, kind content.WardKind) {
	cons := w.reg.Constants
	duration := cons.StealthWardSec
	if kind == content.WardFarsight {
		duration = cons.FarsightWardSec
	}
	ward := &Ward{
		Base: Base{
			ID:         w.allocID(),
			Type:       TypeWard,
			Side:       side,
			Pos:        pos,
			Health:     cons.WardHealth,
			MaxHealth:  cons.WardHealth,
			SightRange: cons.WardSightRange,
		},
		ownerID:   ownerID,
		kind:      kind,
		remaining: duration,
		stealthed: kind == content.WardStealth,
	}
	w.addEntity(ward)
	w.emit(EventWardPlaced, WardPayload{EntityID: ward.ID, OwnerID: ownerID, Kind: kind})
}

func (wd *Ward) Update(dt float64, w *World) {
	wd.remaining -= dt
	if wd.remaining <= 0 {
		wd.expire(w)
	}
}

func (wd *Ward) expire(w *World) {
	if wd.remove {
		return
	}
	wd.Dead = true
	wd.MarkRemove()
	w.emit(EventWardExpired, WardPayload{EntityID: wd.ID, OwnerID: wd.ownerID, Kind: wd.kind})
}

// TakeDamage chips one point per hit; resistances and amounts are
// irrelevant to wards.
func (wd *Ward) TakeDamage(amount float64, _ content.DamageType, _ ID, w *World) float64 {
	if wd.Dead || amount <= 0 {
		return 0
	}
	wd.Health--
	if wd.Health <= 0 {
		wd.Health = 0
		wd.expire(w)
	}
	return 1
}

func (wd *Ward) Snapshot() Snapshot {
	s := wd.snapshot()
	s.Remaining = wd.remaining
	return s
}
