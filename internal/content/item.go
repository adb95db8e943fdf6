package content

import "fmt"

// ItemDef is a purchasable item granting flat stats and optionally a passive.
type ItemDef struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Cost      int    `yaml:"cost" json:"cost"`
	Stats     Stats  `yaml:"stats" json:"stats"`
	PassiveID string `yaml:"passiveId,omitempty" json:"passiveId,omitempty"`
	// Unique items may occupy at most one inventory slot.
	Unique bool `yaml:"unique,omitempty" json:"unique,omitempty"`
}

func (i *ItemDef) validate() error {
	if i.ID == "" {
		return fmt.Errorf("item with empty id")
	}
	if i.Cost < 0 {
		return fmt.Errorf("item %s: negative cost", i.ID)
	}
	return nil
}

// UnitDef is the template for lane minions and jungle monsters.
type UnitDef struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	Stats      Stats   `yaml:"stats" json:"stats"`
	Radius     float64 `yaml:"radius" json:"radius"`
	SightRange float64 `yaml:"sightRange" json:"sightRange"`
	// Gold and XP are awarded on last hit.
	Gold int     `yaml:"gold" json:"gold"`
	XP   float64 `yaml:"xp" json:"xp"`
}

func (u *UnitDef) validate() error {
	if u.ID == "" {
		return fmt.Errorf("unit with empty id")
	}
	if u.Stats.MaxHealth <= 0 {
		return fmt.Errorf("unit %s: maxHealth must be positive", u.ID)
	}
	if u.Radius <= 0 {
		return fmt.Errorf("unit %s: radius must be positive", u.ID)
	}
	return nil
}
