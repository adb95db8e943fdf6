package world

import "riftlane/server/internal/content"

// modifier is a stat adjustment pushed by an ability, item passive, or
// champion passive. Permanent modifiers never expire and survive respawn.
type modifier struct {
	source    string
	flat      content.Stats
	percent   content.Stats
	remaining float64
	permanent bool
}

// statBlock derives a champion's effective stats from base, growth,
// items, and modifiers. Totals are rebuilt lazily when an input changes.
type statBlock struct {
	base      content.Stats
	growth    content.Stats
	level     int
	itemStats content.Stats
	mods      []modifier

	dirty bool
	total content.Stats
}

func newStatBlock(base, growth content.Stats) statBlock {
	return statBlock{base: base, growth: growth, level: 1, dirty: true}
}

func (b *statBlock) setLevel(level int) {
	if b.level != level {
		b.level = level
		b.dirty = true
	}
}

func (b *statBlock) setItemStats(s content.Stats) {
	b.itemStats = s
	b.dirty = true
}

func (b *statBlock) pushModifier(m modifier) {
	b.mods = append(b.mods, m)
	b.dirty = true
}

// addPermanentFlat merges a flat bonus into the permanent modifier with
// the given source, creating it on first use. Stacking passives grow a
// single entry instead of one modifier per stack.
func (b *statBlock) addPermanentFlat(source string, delta content.Stats) {
	for i := range b.mods {
		if b.mods[i].source == source && b.mods[i].permanent {
			b.mods[i].flat = b.mods[i].flat.Add(delta)
			b.dirty = true
			return
		}
	}
	b.pushModifier(modifier{source: source, flat: delta, permanent: true})
}

func (b *statBlock) removeModifierSource(source string) {
	kept := b.mods[:0]
	removed := false
	for _, m := range b.mods {
		if m.source == source {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	b.mods = kept
	if removed {
		b.dirty = true
	}
}

// clearTimedModifiers drops every non-permanent modifier, used on death.
func (b *statBlock) clearTimedModifiers() {
	kept := b.mods[:0]
	for _, m := range b.mods {
		if m.permanent {
			kept = append(kept, m)
		}
	}
	if len(kept) != len(b.mods) {
		b.dirty = true
	}
	b.mods = kept
}

// tickModifiers advances timed modifiers and reports whether any expired.
func (b *statBlock) tickModifiers(dt float64) bool {
	expired := false
	kept := b.mods[:0]
	for _, m := range b.mods {
		if !m.permanent {
			m.remaining -= dt
			if m.remaining <= 0 {
				expired = true
				continue
			}
		}
		kept = append(kept, m)
	}
	b.mods = kept
	if expired {
		b.dirty = true
	}
	return expired
}

// effective returns the current totals, rebuilding them if stale.
func (b *statBlock) effective() content.Stats {
	if !b.dirty {
		return b.total
	}
	total := content.AtLevel(b.base, b.growth, b.level).Add(b.itemStats)
	var pct content.Stats
	for _, m := range b.mods {
		total = total.Add(m.flat)
		pct = pct.Add(m.percent)
	}
	total = content.Stats{
		MaxHealth:     total.MaxHealth * (1 + pct.MaxHealth),
		HealthRegen:   total.HealthRegen * (1 + pct.HealthRegen),
		MaxResource:   total.MaxResource * (1 + pct.MaxResource),
		ResourceRegen: total.ResourceRegen * (1 + pct.ResourceRegen),
		AttackDamage:  total.AttackDamage * (1 + pct.AttackDamage),
		AbilityPower:  total.AbilityPower * (1 + pct.AbilityPower),
		Armor:         total.Armor * (1 + pct.Armor),
		MagicResist:   total.MagicResist * (1 + pct.MagicResist),
		AttackSpeed:   total.AttackSpeed * (1 + pct.AttackSpeed),
		MoveSpeed:     total.MoveSpeed * (1 + pct.MoveSpeed),
		AttackRange:   total.AttackRange * (1 + pct.AttackRange),
	}
	b.total = total
	b.dirty = false
	return total
}
