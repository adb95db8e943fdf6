package content

import "fmt"

// Registry is the immutable content database shared by every room. Build it
// with Default or Load, call Validate once at startup, and never mutate it
// afterwards.
type Registry struct {
	Champions map[string]*ChampionDef
	Abilities map[string]*AbilityDef
	Passives  map[string]*PassiveDef
	Items     map[string]*ItemDef
	Units     map[string]*UnitDef
	Maps      map[string]*MapDef
	Constants Constants
}

// Champion looks up a champion definition.
func (r *Registry) Champion(id string) (*ChampionDef, bool) {
	c, ok := r.Champions[id]
	return c, ok
}

// Ability looks up an ability definition.
func (r *Registry) Ability(id string) (*AbilityDef, bool) {
	a, ok := r.Abilities[id]
	return a, ok
}

// Passive looks up a passive definition.
func (r *Registry) Passive(id string) (*PassiveDef, bool) {
	p, ok := r.Passives[id]
	return p, ok
}

// Item looks up an item definition.
func (r *Registry) Item(id string) (*ItemDef, bool) {
	i, ok := r.Items[id]
	return i, ok
}

// Unit looks up a minion or monster definition.
func (r *Registry) Unit(id string) (*UnitDef, bool) {
	u, ok := r.Units[id]
	return u, ok
}

// Map looks up a map definition.
func (r *Registry) Map(id string) (*MapDef, bool) {
	m, ok := r.Maps[id]
	return m, ok
}

// ChampionAbility resolves the ability in a champion's slot.
func (r *Registry) ChampionAbility(championID string, slot Slot) (*AbilityDef, bool) {
	c, ok := r.Champions[championID]
	if !ok {
		return nil, false
	}
	return r.Ability(c.Abilities[slot])
}

// Validate cross-checks every table. Any failure here is fatal at startup;
// the simulation assumes a validated registry and does not re-check.
func (r *Registry) Validate() error {
	for id, c := range r.Champions {
		if id != c.ID {
			return fmt.Errorf("content: champion key %q does not match id %q", id, c.ID)
		}
		if err := c.validate(); err != nil {
			return fmt.Errorf("content: %w", err)
		}
		for _, slot := range Slots {
			abilityID := c.Abilities[slot]
			a, ok := r.Abilities[abilityID]
			if !ok {
				return fmt.Errorf("content: champion %s slot %s references unknown ability %q", id, slot, abilityID)
			}
			if a.ChampionID != id {
				return fmt.Errorf("content: ability %s belongs to %q, referenced by %s", abilityID, a.ChampionID, id)
			}
			if a.Slot != slot {
				return fmt.Errorf("content: ability %s declared for slot %s, assigned to %s", abilityID, a.Slot, slot)
			}
		}
		if c.PassiveID != "" {
			if _, ok := r.Passives[c.PassiveID]; !ok {
				return fmt.Errorf("content: champion %s references unknown passive %q", id, c.PassiveID)
			}
		}
	}
	for id, a := range r.Abilities {
		if id != a.ID {
			return fmt.Errorf("content: ability key %q does not match id %q", id, a.ID)
		}
		if err := a.validate(); err != nil {
			return fmt.Errorf("content: %w", err)
		}
		if _, ok := r.Champions[a.ChampionID]; !ok {
			return fmt.Errorf("content: ability %s references unknown champion %q", id, a.ChampionID)
		}
	}
	for id, p := range r.Passives {
		if id != p.ID {
			return fmt.Errorf("content: passive key %q does not match id %q", id, p.ID)
		}
		if err := p.validate(); err != nil {
			return fmt.Errorf("content: %w", err)
		}
	}
	for id, item := range r.Items {
		if id != item.ID {
			return fmt.Errorf("content: item key %q does not match id %q", id, item.ID)
		}
		if err := item.validate(); err != nil {
			return fmt.Errorf("content: %w", err)
		}
		if item.PassiveID != "" {
			if _, ok := r.Passives[item.PassiveID]; !ok {
				return fmt.Errorf("content: item %s references unknown passive %q", id, item.PassiveID)
			}
		}
	}
	for id, u := range r.Units {
		if id != u.ID {
			return fmt.Errorf("content: unit key %q does not match id %q", id, u.ID)
		}
		if err := u.validate(); err != nil {
			return fmt.Errorf("content: %w", err)
		}
	}
	if len(r.Maps) == 0 {
		return fmt.Errorf("content: no maps defined")
	}
	for id, m := range r.Maps {
		if id != m.ID {
			return fmt.Errorf("content: map key %q does not match id %q", id, m.ID)
		}
		if err := m.validate(r.Units); err != nil {
			return fmt.Errorf("content: %w", err)
		}
	}
	if err := r.Constants.validate(); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	if _, ok := r.Units[r.Constants.MinionUnitID]; !ok {
		return fmt.Errorf("content: constants reference unknown minion unit %q", r.Constants.MinionUnitID)
	}
	return nil
}
