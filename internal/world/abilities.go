package world

import "riftlane/server/internal/content"

// CastResult is the outcome of a cast attempt. Failures name the first
// pipeline stage that rejected the cast.
type CastResult string

const (
	CastOK            CastResult = "ok"
	CastNotLearned    CastResult = "not_learned"
	CastStunned       CastResult = "stunned"
	CastSilenced      CastResult = "silenced"
	CastOnCooldown    CastResult = "on_cooldown"
	CastNotEnoughMana CastResult = "not_enough_mana"
	CastInvalidTarget CastResult = "invalid_target"
	CastOutOfRange    CastResult = "out_of_range"
)

// abilityRuntime is one slot's live state on a champion.
type abilityRuntime struct {
	def      *content.AbilityDef
	rank     int
	cooldown float64

	// Recast state, armed when the primary instance lands.
	recastLeft   int
	recastWindow float64
	recastPos    Vec2
}

func (a *abilityRuntime) tick(dt float64) {
	if a.cooldown > 0 {
		a.cooldown -= dt
		if a.cooldown < 0 {
			a.cooldown = 0
		}
	}
	if a.recastWindow > 0 {
		a.recastWindow -= dt
		if a.recastWindow <= 0 {
			a.recastWindow = 0
			a.recastLeft = 0
		}
	}
}

func (a *abilityRuntime) recastAvailable() bool {
	return a.def != nil && a.def.RecastCount > 0 && a.recastLeft > 0 && a.recastWindow > 0
}

// hasMobility reports whether any effect relocates the caster, which a
// root or ground forbids even though casting in general is allowed.
func hasMobility(specs []content.EffectSpec) bool {
	for _, s := range specs {
		switch s.Family {
		case content.FamilyDash, content.FamilyOrbDash, content.FamilyBlink:
			return true
		}
	}
	return false
}

func (a *abilityRuntime) state() AbilityState {
	return AbilityState{
		Rank:              a.rank,
		CooldownRemaining: a.cooldown,
		RecastRemaining:   a.recastLeft,
		RecastWindow:      a.recastWindow,
	}
}

// Cast runs the cast pipeline for one slot. Validation fails with the
// first matching reason; on success costs are paid, events and passive
// triggers are dispatched, and the effects execute now or at the
// ability's keyframe.
func (c *Champion) Cast(w *World, slot content.Slot, targetID ID, targetPos Vec2, hasPos bool) CastResult {
	ab := c.ability(slot)
	if ab == nil || ab.def == nil || ab.rank <= 0 {
		return CastNotLearned
	}
	if c.hasCC(content.CCStun) {
		return CastStunned
	}
	if c.hasCC(content.CCSilence) {
		return CastSilenced
	}
	if ab.recastAvailable() {
		if !c.canUseMobility && hasMobility(ab.def.RecastEffects) {
			return CastStunned
		}
		c.executeRecast(w, ab, slot)
		return CastOK
	}
	if !c.canUseMobility && hasMobility(ab.def.Effects) {
		return CastStunned
	}
	if ab.cooldown > 0 {
		return CastOnCooldown
	}
	cost := ab.def.ManaCostAt(ab.rank)
	if c.resource < cost {
		return CastNotEnoughMana
	}

	var target Entity
	switch ab.def.Targeting {
	case content.TargetSelf, content.TargetNone:
	case content.TargetEnemy, content.TargetAlly, content.TargetUnit:
		target = w.entity(targetID)
		if target == nil || target.base().Dead {
			return CastInvalidTarget
		}
		tb := target.base()
		if ab.def.Targeting == content.TargetEnemy && tb.Side == c.Side {
			return CastInvalidTarget
		}
		if ab.def.Targeting == content.TargetAlly && tb.Side != c.Side {
			return CastInvalidTarget
		}
		if !ab.def.AllowsType(string(tb.Type)) {
			return CastInvalidTarget
		}
		if Dist(c.Pos, tb.Pos) > ab.def.RangeAt(ab.rank) {
			return CastOutOfRange
		}
	case content.TargetSkill:
		if !hasPos {
			return CastInvalidTarget
		}
	case content.TargetGround:
		if !hasPos {
			return CastInvalidTarget
		}
		if Dist(c.Pos, targetPos) > ab.def.RangeAt(ab.rank) {
			return CastOutOfRange
		}
	}
	if !w.castPrecheck(c.ID, ab.def.Effects) {
		return CastInvalidTarget
	}

	c.resource -= cost
	ab.cooldown = ab.def.CooldownAt(ab.rank)
	c.enterCombat(w)

	ctx := effectContext{
		casterID:  c.ID,
		side:      c.Side,
		abilityID: ab.def.ID,
		rank:      ab.rank,
		origin:    c.Pos,
		targetPos: targetPos,
		targetID:  targetID,
		stats:     c.effectiveStats(w),
	}
	if target != nil {
		ctx.targetPos = target.base().Pos
	} else if !hasPos {
		ctx.targetPos = c.Pos
	}

	w.emit(EventAbilityCast, CastPayload{
		CasterID:  c.ID,
		AbilityID: ab.def.ID,
		Slot:      slot,
		Rank:      ab.rank,
		TargetID:  targetID,
		X:         ctx.targetPos.X,
		Y:         ctx.targetPos.Y,
	})
	w.firePassive(c.ID, content.TriggerOnAbilityCast, triggerPayload{abilityID: ab.def.ID})
	if !ab.def.IsStealth {
		c.breakStealth()
	}

	if ab.def.KeyframeDelay > 0 {
		spawnCtx := ctx
		effects := ab.def.Effects
		c.abilitySched.Schedule(actionAbility, ab.def.KeyframeDelay, func(w *World) {
			if c.Dead {
				return
			}
			// Origin is captured at spawn time, not cast time.
			spawnCtx.origin = c.Pos
			w.execEffects(spawnCtx, effects)
		})
	} else {
		w.execEffects(ctx, ab.def.Effects)
	}
	return CastOK
}

// executeRecast fires the stored recast at the captured landing position.
// Recasts consume no mana and apply no cooldown.
func (c *Champion) executeRecast(w *World, ab *abilityRuntime, slot content.Slot) {
	ctx := effectContext{
		casterID:  c.ID,
		side:      c.Side,
		abilityID: ab.def.ID,
		rank:      ab.rank,
		origin:    c.Pos,
		targetPos: ab.recastPos,
		stats:     c.effectiveStats(w),
	}
	ab.recastLeft--
	if ab.recastLeft <= 0 {
		ab.recastWindow = 0
	}
	c.enterCombat(w)
	w.emit(EventAbilityCast, CastPayload{
		CasterID:  c.ID,
		AbilityID: ab.def.ID,
		Slot:      slot,
		Rank:      ab.rank,
		X:         ab.recastPos.X,
		Y:         ab.recastPos.Y,
	})
	w.firePassive(c.ID, content.TriggerOnAbilityCast, triggerPayload{abilityID: ab.def.ID})
	if !ab.def.IsStealth {
		c.breakStealth()
	}
	w.execEffects(ctx, ab.def.RecastEffects)
}

// armRecast stores a landing position for an ability with recast behavior
// and opens its window. Called when the primary instance lands.
func (w *World) armRecast(casterID ID, abilityID string, pos Vec2) {
	c, ok := w.entity(casterID).(*Champion)
	if !ok {
		return
	}
	for i := range c.abilities {
		ab := &c.abilities[i]
		if ab.def == nil || ab.def.ID != abilityID || ab.def.RecastCount <= 0 {
			continue
		}
		ab.recastLeft = ab.def.RecastCount
		ab.recastWindow = ab.def.RecastWindow
		ab.recastPos = pos
	}
}

// LevelUpAbility spends a skill point on the slot. Ultimate ranks are
// gated by champion level.
func (c *Champion) LevelUpAbility(slot content.Slot) bool {
	ab := c.ability(slot)
	if ab == nil || ab.def == nil {
		return false
	}
	if c.skillPoints <= 0 || ab.rank >= ab.def.MaxRank {
		return false
	}
	if slot == content.SlotR {
		if gate := c.reg.Constants.UltGate(ab.rank + 1); gate > 0 && c.level < gate {
			return false
		}
	}
	ab.rank++
	c.skillPoints--
	return true
}
