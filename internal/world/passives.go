package world

import "riftlane/server/internal/content"

// triggerPayload carries what a passive handler may inspect when fired.
type triggerPayload struct {
	target     Entity
	damage     float64
	damageType content.DamageType
	sourceID   ID
	abilityID  string
}

// passiveRuntime tracks one passive instance between triggers: internal
// cooldown, stacks with decay, interval countdown, and the armed flag for
// stack passives. Champions own one for their innate passive and one per
// item that carries a passive.
type passiveRuntime struct {
	def       *content.PassiveDef
	cooldown  float64
	stacks    int
	stackTime float64
	interval  float64
	active    bool
}

func newPassiveRuntime(def *content.PassiveDef) passiveRuntime {
	p := passiveRuntime{def: def}
	if def != nil && def.IntervalSec > 0 {
		p.interval = def.IntervalSec
	}
	return p
}

// tick advances the internal cooldown, decays stacks, and fires interval
// passives whose countdown reached zero.
func (p *passiveRuntime) tick(dt float64, owner *Champion, w *World) {
	if p.def == nil {
		return
	}
	if p.cooldown > 0 {
		p.cooldown -= dt
		if p.cooldown < 0 {
			p.cooldown = 0
		}
	}
	if p.stacks > 0 && p.def.StackDecaySec > 0 {
		p.stackTime -= dt
		if p.stackTime <= 0 {
			p.stacks = 0
			p.active = false
		}
	}
	if p.def.IntervalSec > 0 && p.def.HandlesTrigger(content.TriggerOnInterval) && !owner.Dead {
		p.interval -= dt
		if p.interval <= 0 {
			p.execute(owner, w, triggerPayload{})
			p.interval += p.def.IntervalSec
		}
	}
}

// fire reacts to a trigger. Stack passives accumulate; armed stack
// passives with consume-on-use spend their stacks instead. Everything
// else executes its effects behind the internal cooldown.
func (p *passiveRuntime) fire(trigger content.TriggerKind, owner *Champion, w *World, payload triggerPayload) {
	if p.def == nil || !p.def.HandlesTrigger(trigger) {
		return
	}
	if trigger == content.TriggerOnInterval {
		return // driven by tick, not by the bus
	}
	if p.cooldown > 0 {
		return
	}
	if p.def.HealthThreshold > 0 && owner.Health > owner.MaxHealth*p.def.HealthThreshold {
		return
	}
	if p.def.MaxStacks > 0 {
		if p.active && p.def.ConsumeOnUse {
			p.execute(owner, w, payload)
			p.stacks = 0
			p.active = false
			p.cooldown = p.def.CooldownSec
			return
		}
		p.gainStacks(p.def.StacksPerTrigger, owner)
		return
	}
	p.execute(owner, w, payload)
	p.cooldown = p.def.CooldownSec
}

// gainStacks adds stacks, refreshes decay, arms the active flag, and
// applies any permanent per-stack stat growth.
func (p *passiveRuntime) gainStacks(n int, owner *Champion) {
	if p.def == nil || p.def.MaxStacks <= 0 {
		return
	}
	if n <= 0 {
		n = 1
	}
	before := p.stacks
	p.stacks += n
	if p.stacks > p.def.MaxStacks {
		p.stacks = p.def.MaxStacks
	}
	p.stackTime = p.def.StackDecaySec
	if p.def.RequiredStacks > 0 && p.stacks >= p.def.RequiredStacks {
		p.active = true
	}
	if gained := p.stacks - before; gained > 0 {
		zero := content.Stats{}
		if p.def.StatPerStack != zero {
			owner.stats.addPermanentFlat("passive:"+p.def.ID, p.def.StatPerStack.Scale(float64(gained)))
		}
	}
}

func (p *passiveRuntime) execute(owner *Champion, w *World, payload triggerPayload) {
	if len(p.def.Effects) == 0 {
		return
	}
	ctx := effectContext{
		casterID:    owner.ID,
		side:        owner.Side,
		abilityID:   p.def.ID,
		rank:        1,
		origin:      owner.Pos,
		stats:       owner.effectiveStats(w),
		damageDealt: payload.damage,
		fromPassive: true,
	}
	if payload.target != nil {
		tb := payload.target.base()
		ctx.targetID = tb.ID
		ctx.targetPos = tb.Pos
		w.applyHitEffects(ctx, payload.target, p.def.Effects)
		return
	}
	w.execEffects(ctx, p.def.Effects)
}

func (p *passiveRuntime) state() PassiveState {
	return PassiveState{
		IsActive:           p.active,
		CooldownRemaining:  p.cooldown,
		Stacks:             p.stacks,
		StackTimeRemaining: p.stackTime,
	}
}

// firePassive routes a trigger to a champion's innate passive and its
// item passives. Non-champion sources are ignored.
func (w *World) firePassive(id ID, trigger content.TriggerKind, payload triggerPayload) {
	c, ok := w.entity(id).(*Champion)
	if !ok || c.Dead {
		return
	}
	c.passive.fire(trigger, c, w, payload)
	for i := range c.items {
		if c.items[i].def != nil && c.items[i].passive.def != nil {
			c.items[i].passive.fire(trigger, c, w, payload)
		}
	}
}
