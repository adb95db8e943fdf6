package world

import "riftlane/server/internal/content"

// reduceDamage applies resistance scaling. Physical is reduced by armor,
// magic by magic resist, true damage passes through.
func reduceDamage(amount float64, typ content.DamageType, armor, magicResist float64) float64 {
	switch typ {
	case content.DamagePhysical:
		if 100+armor <= 0 {
			return amount
		}
		return amount * 100 / (100 + armor)
	case content.DamageMagic:
		if 100+magicResist <= 0 {
			return amount
		}
		return amount * 100 / (100 + magicResist)
	default:
		return amount
	}
}

// shield is one absorption pool with a lifetime.
type shield struct {
	amount    float64
	remaining float64
	sourceID  ID
	typ       string
}

// shieldList absorbs damage in insertion order before health is touched.
type shieldList struct {
	shields []shield
}

func (l *shieldList) add(amount, duration float64, sourceID ID, typ string) {
	if typ == "" {
		typ = "all"
	}
	l.shields = append(l.shields, shield{amount: amount, remaining: duration, sourceID: sourceID, typ: typ})
}

// absorb eats damage from the shields in order and returns what is left
// for health. Exhausted shields are removed.
func (l *shieldList) absorb(damage float64) float64 {
	if damage <= 0 {
		return 0
	}
	for i := range l.shields {
		if damage <= 0 {
			break
		}
		s := &l.shields[i]
		if s.amount >= damage {
			s.amount -= damage
			damage = 0
		} else {
			damage -= s.amount
			s.amount = 0
		}
	}
	kept := l.shields[:0]
	for _, s := range l.shields {
		if s.amount > 0 {
			kept = append(kept, s)
		}
	}
	l.shields = kept
	return damage
}

func (l *shieldList) tick(dt float64) {
	kept := l.shields[:0]
	for _, s := range l.shields {
		s.remaining -= dt
		if s.remaining > 0 {
			kept = append(kept, s)
		}
	}
	l.shields = kept
}

func (l *shieldList) clear() { l.shields = nil }

func (l *shieldList) total() float64 {
	sum := 0.0
	for _, s := range l.shields {
		sum += s.amount
	}
	return sum
}

func (l *shieldList) states() []ShieldState {
	if len(l.shields) == 0 {
		return nil
	}
	out := make([]ShieldState, 0, len(l.shields))
	for _, s := range l.shields {
		out = append(out, ShieldState{
			Amount:            s.amount,
			RemainingDuration: s.remaining,
			SourceID:          s.sourceID,
			ShieldType:        s.typ,
		})
	}
	return out
}
