package world

import "riftlane/server/internal/content"

// activeEffect is one timed effect on an entity. kind is empty for pure
// damage-over-time effects with no crowd-control component.
type activeEffect struct {
	id        string
	kind      content.CCKind
	remaining float64
	sourceID  ID
	stacks    int

	// Periodic damage while the effect lasts.
	dotDamage   float64
	dotType     content.DamageType
	dotInterval float64
	dotNext     float64

	// Movement slow fraction for kind slow, 0.4 = 40% slower.
	slowAmount float64
}

// afflictable is implemented by the entity variants that carry timed
// effects: champions, minions and jungle monsters.
type afflictable interface {
	Entity
	status() *statusHolder
}

// statusHolder tracks timed effects and the crowd-control flags derived
// from them. Champions, minions and jungle monsters embed it. The zero
// value is not usable; call resetStatus first.
type statusHolder struct {
	effects []activeEffect

	canMove        bool
	canAttack      bool
	canCast        bool
	canUseMobility bool
	stealthed      bool

	// Multiplicative move-speed factor, 1 means no slow.
	slowFactor float64
}

func (s *statusHolder) status() *statusHolder { return s }

func (s *statusHolder) resetStatus() {
	s.effects = nil
	s.recomputeCC()
}

// applyEffect adds or merges an effect per the stack policy and recomputes
// crowd control.
func (s *statusHolder) applyEffect(e activeEffect, policy content.StackPolicy, maxStacks int) {
	for i := range s.effects {
		if s.effects[i].id != e.id {
			continue
		}
		switch policy {
		case content.StackIgnore:
		case content.StackAdd:
			if maxStacks <= 0 || s.effects[i].stacks < maxStacks {
				s.effects[i].stacks++
			}
			s.effects[i].remaining = e.remaining
			s.effects[i].sourceID = e.sourceID
		default: // refresh
			s.effects[i].remaining = e.remaining
			s.effects[i].sourceID = e.sourceID
			s.effects[i].dotDamage = e.dotDamage
			s.effects[i].slowAmount = e.slowAmount
		}
		s.recomputeCC()
		return
	}
	if e.stacks == 0 {
		e.stacks = 1
	}
	s.effects = append(s.effects, e)
	s.recomputeCC()
}

// tickEffects advances effect timers and deals periodic damage to owner.
// Expired effects are dropped and crowd control is recomputed.
func (s *statusHolder) tickEffects(dt float64, owner Entity, w *World) {
	for i := range s.effects {
		e := &s.effects[i]
		e.remaining -= dt
		if e.dotDamage <= 0 || e.dotInterval <= 0 {
			continue
		}
		e.dotNext -= dt
		for e.dotNext <= 0 {
			// A tick lands if the effect was alive when the frame began.
			if e.remaining+dt > 0 {
				owner.TakeDamage(e.dotDamage, e.dotType, e.sourceID, w)
			}
			e.dotNext += e.dotInterval
		}
	}
	kept := s.effects[:0]
	changed := false
	for _, e := range s.effects {
		if e.remaining > 0 {
			kept = append(kept, e)
		} else {
			changed = true
		}
	}
	s.effects = kept
	if changed {
		s.recomputeCC()
	}
}

// recomputeCC rederives the movement, attack and cast gates from the
// currently active effects.
func (s *statusHolder) recomputeCC() {
	var stun, root, silence, disarm, blind, ground, stealth bool
	maxSlow := 0.0
	for _, e := range s.effects {
		switch e.kind {
		case content.CCStun:
			stun = true
		case content.CCRoot:
			root = true
		case content.CCSilence:
			silence = true
		case content.CCDisarm:
			disarm = true
		case content.CCBlind:
			blind = true
		case content.CCGround:
			ground = true
		case content.CCStealth:
			stealth = true
		case content.CCSlow:
			if e.slowAmount > maxSlow {
				maxSlow = e.slowAmount
			}
		}
	}
	s.canMove = !(stun || root)
	s.canAttack = !(stun || disarm || blind)
	s.canCast = !(stun || silence)
	s.canUseMobility = s.canMove && s.canCast && !ground
	s.stealthed = stealth
	s.slowFactor = 1 - maxSlow
}

func (s *statusHolder) hasCC(kind content.CCKind) bool {
	for _, e := range s.effects {
		if e.kind == kind {
			return true
		}
	}
	return false
}

// breakStealth removes stealth effects, typically after attacking or
// casting a non-stealth ability.
func (s *statusHolder) breakStealth() {
	if !s.stealthed {
		return
	}
	kept := s.effects[:0]
	for _, e := range s.effects {
		if e.kind != content.CCStealth {
			kept = append(kept, e)
		}
	}
	s.effects = kept
	s.recomputeCC()
}

// purgeEffects clears everything, used on death and jungle leash resets.
func (s *statusHolder) purgeEffects() {
	s.effects = nil
	s.recomputeCC()
}

// effectStates renders the active effects for serialization.
func (s *statusHolder) effectStates() []EffectState {
	if len(s.effects) == 0 {
		return nil
	}
	out := make([]EffectState, 0, len(s.effects))
	for _, e := range s.effects {
		out = append(out, EffectState{
			EffectID:  e.id,
			Kind:      e.kind,
			Remaining: e.remaining,
			SourceID:  e.sourceID,
			Stacks:    e.stacks,
		})
	}
	return out
}
