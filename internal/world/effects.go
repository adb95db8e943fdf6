package world

import (
	"math"

	"riftlane/server/internal/content"
)

// effectContext freezes the inputs an effect instance needs. Stats are
// captured at cast time so later stat changes never alter in-flight
// projectiles, zones, or scheduled spawns.
type effectContext struct {
	casterID  ID
	side      content.Side
	abilityID string
	rank      int
	origin    Vec2
	targetPos Vec2
	targetID  ID
	stats     content.Stats

	// damageDealt feeds on-hit ratios like lifesteal.
	damageDealt float64

	// fromPassive suppresses the on-ability-hit trigger so passive
	// damage cannot re-trigger itself.
	fromPassive bool
}

// statValue resolves a ratio-stat name against a frozen stat block.
func statValue(s content.Stats, name string) float64 {
	switch name {
	case "ad", "attackDamage":
		return s.AttackDamage
	case "ap", "abilityPower":
		return s.AbilityPower
	case "maxHealth":
		return s.MaxHealth
	case "armor":
		return s.Armor
	case "mr", "magicResist":
		return s.MagicResist
	case "moveSpeed":
		return s.MoveSpeed
	}
	return 0
}

// amount resolves a spec's rank-indexed base plus its stat ratio.
func (ctx effectContext) amount(spec content.EffectSpec) float64 {
	amt := spec.BaseAt(ctx.rank)
	if spec.Ratio != 0 {
		if spec.RatioStat == "damageDealt" {
			amt += spec.Ratio * ctx.damageDealt
		} else {
			amt += spec.Ratio * statValue(ctx.stats, spec.RatioStat)
		}
	}
	return amt
}

// effectID names the timed effect an instance creates, synthesized from
// the ability when the spec does not name one.
func effectID(ctx effectContext, spec content.EffectSpec) string {
	if spec.EffectID != "" {
		return spec.EffectID
	}
	return ctx.abilityID + ":" + string(spec.Family)
}

// healEntity restores health up to max. The dead stay dead.
func healEntity(e Entity, amount float64) {
	b := e.base()
	if b.Dead || amount <= 0 {
		return
	}
	b.Health = math.Min(b.Health+amount, b.MaxHealth)
}

// effectHandler applies one effect family. victim is the struck entity
// for on-hit children and nil for top-level casts, where the handler
// resolves its own target from the context.
type effectHandler func(w *World, ctx effectContext, spec content.EffectSpec, victim Entity)

// effectHandlers dispatches by family tag. Families that spawn entities
// hand off to the entity constructors; the rest mutate their victim in
// place.
var effectHandlers map[content.Family]effectHandler

func init() {
	effectHandlers = map[content.Family]effectHandler{
		content.FamilyDamage:    execDamage,
		content.FamilyHeal:      execHeal,
		content.FamilyShield:    execShield,
		content.FamilyProjectile: func(w *World, ctx effectContext, spec content.EffectSpec, _ Entity) {
			w.spawnProjectile(ctx, spec)
		},
		content.FamilyOrb: func(w *World, ctx effectContext, spec content.EffectSpec, _ Entity) {
			w.spawnOrb(ctx, spec)
		},
		content.FamilyDash:    execDash,
		content.FamilyOrbDash: execOrbDash,
		content.FamilyBlink:   execBlink,
		content.FamilyZone: func(w *World, ctx effectContext, spec content.EffectSpec, _ Entity) {
			w.spawnZone(ctx, spec, false)
		},
		content.FamilyAura: func(w *World, ctx effectContext, spec content.EffectSpec, _ Entity) {
			w.spawnZone(ctx, spec, true)
		},
		content.FamilyTrap: func(w *World, ctx effectContext, spec content.EffectSpec, _ Entity) {
			w.spawnTrap(ctx, spec)
		},
		content.FamilyDisable:   execDisable,
		content.FamilySlow:      execSlow,
		content.FamilyStatMod:   execStatMod,
		content.FamilyKnockback: execKnockback,
	}
}

// execEffects runs the top-level effects of a cast or trigger.
func (w *World) execEffects(ctx effectContext, specs []content.EffectSpec) {
	for _, spec := range specs {
		if h, ok := effectHandlers[spec.Family]; ok {
			h(w, ctx, spec, nil)
		}
	}
}

// applyHitEffects applies child effects to a struck victim. Specs that
// target self route back to the caster, as in damage-and-self-heal
// abilities.
func (w *World) applyHitEffects(ctx effectContext, victim Entity, specs []content.EffectSpec) {
	for _, spec := range specs {
		h, ok := effectHandlers[spec.Family]
		if !ok {
			continue
		}
		h(w, ctx, spec, victim)
	}
}

// castPrecheck reports whether every effect can execute in the current
// world state. It runs during cast validation, before costs are paid.
func (w *World) castPrecheck(casterID ID, specs []content.EffectSpec) bool {
	for _, spec := range specs {
		if spec.Family == content.FamilyOrbDash && w.findOrb(casterID) == nil {
			return false
		}
	}
	return true
}

// resolveVictim picks the entity a single-target effect lands on.
func resolveVictim(w *World, ctx effectContext, spec content.EffectSpec, victim Entity) Entity {
	if spec.Target == "self" {
		return w.entity(ctx.casterID)
	}
	if victim != nil {
		return victim
	}
	if ctx.targetID != 0 {
		return w.entity(ctx.targetID)
	}
	return nil
}

func execDamage(w *World, ctx effectContext, spec content.EffectSpec, victim Entity) {
	target := resolveVictim(w, ctx, spec, victim)
	if target == nil || target.base().Dead {
		return
	}
	amt := ctx.amount(spec)
	if amt <= 0 {
		return
	}
	if spec.Duration > 0 && spec.Interval > 0 {
		// Damage over time: amt is per tick.
		if a, ok := target.(afflictable); ok {
			a.status().applyEffect(activeEffect{
				id:          effectID(ctx, spec),
				remaining:   spec.Duration,
				sourceID:    ctx.casterID,
				dotDamage:   amt,
				dotType:     spec.DamageType,
				dotInterval: spec.Interval,
				dotNext:     spec.Interval,
			}, spec.StackPolicy, spec.MaxStacks)
		}
		return
	}
	dealt := target.TakeDamage(amt, spec.DamageType, ctx.casterID, w)
	if dealt > 0 && !ctx.fromPassive && ctx.abilityID != "" && target.base().Side != ctx.side {
		w.firePassive(ctx.casterID, content.TriggerOnAbilityHit, triggerPayload{
			target:     target,
			damage:     dealt,
			damageType: spec.DamageType,
			abilityID:  ctx.abilityID,
		})
	}
}

func execHeal(w *World, ctx effectContext, spec content.EffectSpec, victim Entity) {
	target := resolveVictim(w, ctx, spec, victim)
	if target == nil {
		return
	}
	healEntity(target, ctx.amount(spec))
}

func execShield(w *World, ctx effectContext, spec content.EffectSpec, victim Entity) {
	target := resolveVictim(w, ctx, spec, victim)
	c, ok := target.(*Champion)
	if !ok || c.Dead {
		return
	}
	c.shields.add(ctx.amount(spec), spec.Duration, ctx.casterID, spec.Kind)
}

func execDash(w *World, ctx effectContext, spec content.EffectSpec, _ Entity) {
	caster := w.entity(ctx.casterID)
	if caster == nil || caster.base().Dead {
		return
	}
	b := caster.base()
	target := ClampToRange(b.Pos, ctx.targetPos, spec.Range)
	delta := target.Sub(b.Pos)
	dist := delta.Len()
	if dist == 0 || spec.Duration <= 0 {
		return
	}
	b.startForcedMove(&forcedMove{
		dir:       delta.Normalized(),
		speed:     dist / spec.Duration,
		remaining: spec.Duration,
		hitbox:    spec.Radius,
		onHit:     spec.OnHit,
		ctx:       ctx,
	})
}

func execOrbDash(w *World, ctx effectContext, spec content.EffectSpec, _ Entity) {
	orb := w.findOrb(ctx.casterID)
	if orb == nil {
		return
	}
	ctx.targetPos = orb.Pos
	execDash(w, ctx, spec, nil)
}

func execBlink(w *World, ctx effectContext, spec content.EffectSpec, _ Entity) {
	caster := w.entity(ctx.casterID)
	if caster == nil || caster.base().Dead {
		return
	}
	b := caster.base()
	b.Pos = Clamp(ClampToRange(b.Pos, ctx.targetPos, spec.Range), w.mapDef.Width, w.mapDef.Height)
}

func execDisable(w *World, ctx effectContext, spec content.EffectSpec, victim Entity) {
	target := resolveVictim(w, ctx, spec, victim)
	a, ok := target.(afflictable)
	if !ok || target.base().Dead {
		return
	}
	a.status().applyEffect(activeEffect{
		id:        effectID(ctx, spec),
		kind:      content.CCKind(spec.Kind),
		remaining: spec.Duration,
		sourceID:  ctx.casterID,
	}, spec.StackPolicy, spec.MaxStacks)
}

func execSlow(w *World, ctx effectContext, spec content.EffectSpec, victim Entity) {
	target := resolveVictim(w, ctx, spec, victim)
	a, ok := target.(afflictable)
	if !ok || target.base().Dead {
		return
	}
	a.status().applyEffect(activeEffect{
		id:         effectID(ctx, spec),
		kind:       content.CCSlow,
		remaining:  spec.Duration,
		sourceID:   ctx.casterID,
		slowAmount: spec.Amount,
	}, spec.StackPolicy, spec.MaxStacks)
}

func execStatMod(w *World, ctx effectContext, spec content.EffectSpec, victim Entity) {
	target := resolveVictim(w, ctx, spec, victim)
	c, ok := target.(*Champion)
	if !ok || c.Dead {
		return
	}
	id := effectID(ctx, spec)
	c.stats.removeModifierSource(id)
	c.stats.pushModifier(modifier{source: id, flat: spec.Stat, remaining: spec.Duration})
	if spec.HealFromMaxHealth && spec.Stat.MaxHealth > 0 {
		c.refreshStats(w)
		healEntity(c, spec.Stat.MaxHealth)
	}
	// Visible buff entry alongside the stat change.
	c.status().applyEffect(activeEffect{
		id:        id,
		remaining: spec.Duration,
		sourceID:  ctx.casterID,
	}, content.StackRefresh, 0)
}

func execKnockback(w *World, ctx effectContext, spec content.EffectSpec, victim Entity) {
	target := resolveVictim(w, ctx, spec, victim)
	if target == nil || target.base().Dead || !unitType(target.base().Type) {
		return
	}
	if spec.Duration <= 0 {
		return
	}
	b := target.base()
	dir := b.Pos.Sub(ctx.origin).Normalized()
	if dir == (Vec2{}) {
		dir = Vec2{X: 1}
	}
	b.startForcedMove(&forcedMove{
		dir:       dir,
		speed:     spec.Range / spec.Duration,
		remaining: spec.Duration,
	})
}
