package world

import "riftlane/server/internal/content"

// Projectile is a traveling skillshot. It flies in a straight line,
// applies its on-hit effects to enemy units it crosses, and despawns at
// max distance or on first impact unless it pierces.
type Projectile struct {
	Base

	dir         Vec2
	speed       float64
	traveled    float64
	maxDist     float64
	hitRadius   float64
	pierce      bool
	onHit       []content.EffectSpec
	ctx         effectContext
	hitEntities map[ID]struct{}
}

func (w *World) spawnProjectile(ctx effectContext, spec content.EffectSpec) {
	dir := ctx.targetPos.Sub(ctx.origin).Normalized()
	if dir == (Vec2{}) {
		dir = Vec2{X: 1}
	}
	p := &Projectile{
		Base: Base{
			ID:     w.allocID(),
			Type:   TypeProjectile,
			Side:   ctx.side,
			Pos:    ctx.origin,
			Radius: spec.Radius,
		},
		dir:         dir,
		speed:       spec.Speed,
		maxDist:     spec.MaxDistance,
		hitRadius:   spec.Radius,
		pierce:      spec.Pierce,
		onHit:       spec.OnHit,
		ctx:         ctx,
		hitEntities: make(map[ID]struct{}),
	}
	w.addEntity(p)
}

func (p *Projectile) Update(dt float64, w *World) {
	step := p.speed * dt
	p.Pos = p.Pos.Add(p.dir.Scale(step))
	p.traveled += step

	for _, other := range w.entities {
		ob := other.base()
		if ob.Side == p.Side || ob.Dead || !unitType(ob.Type) {
			continue
		}
		if _, seen := p.hitEntities[ob.ID]; seen {
			continue
		}
		if Dist(p.Pos, ob.Pos) > p.hitRadius+ob.Radius {
			continue
		}
		p.hitEntities[ob.ID] = struct{}{}
		w.applyHitEffects(p.ctx, other, p.onHit)
		w.armRecast(p.ctx.casterID, p.ctx.abilityID, p.Pos)
		if !p.pierce {
			p.MarkRemove()
			return
		}
	}

	if p.traveled >= p.maxDist || !w.mapDef.InBounds(toPoint(p.Pos)) {
		p.MarkRemove()
	}
}

func (p *Projectile) TakeDamage(float64, content.DamageType, ID, *World) float64 { return 0 }

func (p *Projectile) Snapshot() Snapshot { return p.snapshot() }

// Orb is a champion-anchored orb: it travels like a slow piercing
// projectile, striking each enemy unit once, then lingers at its endpoint
// as a dash anchor until it expires. A champion keeps at most one orb;
// casting again replaces it.
type Orb struct {
	Base

	ownerID     ID
	dest        Vec2
	speed       float64
	traveling   bool
	remaining   float64
	onHit       []content.EffectSpec
	ctx         effectContext
	hitEntities map[ID]struct{}
}

func (w *World) spawnOrb(ctx effectContext, spec content.EffectSpec) {
	if old := w.findOrb(ctx.casterID); old != nil {
		old.MarkRemove()
	}
	o := &Orb{
		Base: Base{
			ID:     w.allocID(),
			Type:   TypeZone,
			Side:   ctx.side,
			Pos:    ctx.origin,
			Radius: spec.Radius,
		},
		ownerID:     ctx.casterID,
		dest:        ClampToRange(ctx.origin, ctx.targetPos, spec.MaxDistance),
		speed:       spec.Speed,
		traveling:   true,
		remaining:   spec.Duration,
		onHit:       spec.OnHit,
		ctx:         ctx,
		hitEntities: make(map[ID]struct{}),
	}
	w.addEntity(o)
}

func (o *Orb) Update(dt float64, w *World) {
	if o.traveling {
		var arrived bool
		o.Pos, arrived = moveToward(o.Pos, o.dest, o.speed, dt)
		if arrived {
			o.traveling = false
		}
		for _, other := range w.entities {
			ob := other.base()
			if ob.Side == o.Side || ob.Dead || !unitType(ob.Type) {
				continue
			}
			if _, seen := o.hitEntities[ob.ID]; seen {
				continue
			}
			if Dist(o.Pos, ob.Pos) > o.Radius+ob.Radius {
				continue
			}
			o.hitEntities[ob.ID] = struct{}{}
			w.applyHitEffects(o.ctx, other, o.onHit)
		}
	}
	o.remaining -= dt
	if o.remaining <= 0 {
		o.MarkRemove()
	}
}

func (o *Orb) TakeDamage(float64, content.DamageType, ID, *World) float64 { return 0 }

func (o *Orb) Snapshot() Snapshot {
	s := o.snapshot()
	s.Remaining = o.remaining
	return s
}

// findOrb returns the live orb anchored to the given champion, if any.
func (w *World) findOrb(ownerID ID) *Orb {
	for _, e := range w.entities {
		if o, ok := e.(*Orb); ok && o.ownerID == ownerID && !o.remove {
			return o
		}
	}
	return nil
}
