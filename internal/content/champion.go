package content

import "fmt"

// ChampionDef is the immutable template a champion entity is built from.
type ChampionDef struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Base   Stats  `yaml:"base" json:"base"`
	Growth Stats  `yaml:"growth" json:"growth"`

	Radius     float64 `yaml:"radius" json:"radius"`
	SightRange float64 `yaml:"sightRange" json:"sightRange"`

	// AttackKeyframe is the delay in seconds between attack start and the
	// damage frame of the attack animation.
	AttackKeyframe float64 `yaml:"attackKeyframe" json:"attackKeyframe"`
	// AttackAnimation is the full animation length sent with BasicAttack
	// events so clients can play it back.
	AttackAnimation float64 `yaml:"attackAnimation" json:"attackAnimation"`

	Abilities map[Slot]string `yaml:"abilities" json:"abilities"`
	PassiveID string          `yaml:"passiveId" json:"passiveId"`
}

func (c *ChampionDef) validate() error {
	if c.ID == "" {
		return fmt.Errorf("champion with empty id")
	}
	if c.Base.MaxHealth <= 0 {
		return fmt.Errorf("champion %s: base maxHealth must be positive", c.ID)
	}
	if c.Base.MoveSpeed <= 0 {
		return fmt.Errorf("champion %s: base moveSpeed must be positive", c.ID)
	}
	if c.Base.AttackSpeed <= 0 {
		return fmt.Errorf("champion %s: base attackSpeed must be positive", c.ID)
	}
	if c.Base.AttackRange <= 0 {
		return fmt.Errorf("champion %s: base attackRange must be positive", c.ID)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("champion %s: radius must be positive", c.ID)
	}
	if c.SightRange <= 0 {
		return fmt.Errorf("champion %s: sightRange must be positive", c.ID)
	}
	for _, slot := range Slots {
		if c.Abilities[slot] == "" {
			return fmt.Errorf("champion %s: slot %s has no ability", c.ID, slot)
		}
	}
	return nil
}

// PassiveDef describes a champion or item passive registered on the trigger
// bus. Stack passives set MaxStacks; RequiredStacks > 0 arms isActive once
// reached, and ConsumeOnUse clears stacks when the active fires.
type PassiveDef struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	Trigger       TriggerKind   `yaml:"trigger" json:"trigger"`
	ExtraTriggers []TriggerKind `yaml:"extraTriggers,omitempty" json:"extraTriggers,omitempty"`

	// CooldownSec is the internal cooldown between firings, per champion.
	CooldownSec float64 `yaml:"cooldownSec,omitempty" json:"cooldownSec,omitempty"`
	// IntervalSec drives on_interval passives.
	IntervalSec float64 `yaml:"intervalSec,omitempty" json:"intervalSec,omitempty"`
	// HealthThreshold is the health fraction gating on_low_health.
	HealthThreshold float64 `yaml:"healthThreshold,omitempty" json:"healthThreshold,omitempty"`

	MaxStacks      int     `yaml:"maxStacks,omitempty" json:"maxStacks,omitempty"`
	RequiredStacks int     `yaml:"requiredStacks,omitempty" json:"requiredStacks,omitempty"`
	StackDecaySec  float64 `yaml:"stackDecaySec,omitempty" json:"stackDecaySec,omitempty"`
	ConsumeOnUse   bool    `yaml:"consumeOnUse,omitempty" json:"consumeOnUse,omitempty"`

	// StacksPerTrigger defaults to 1 when MaxStacks is set.
	StacksPerTrigger int `yaml:"stacksPerTrigger,omitempty" json:"stacksPerTrigger,omitempty"`

	// StatPerStack grants a permanent flat bonus for every stack gained.
	StatPerStack Stats `yaml:"statPerStack,omitempty" json:"statPerStack,omitempty"`

	Effects []EffectSpec `yaml:"effects,omitempty" json:"effects,omitempty"`
}

// HandlesTrigger reports whether the passive reacts to the given trigger,
// either as its primary or one of its extra triggers.
func (p *PassiveDef) HandlesTrigger(t TriggerKind) bool {
	if p.Trigger == t {
		return true
	}
	for _, extra := range p.ExtraTriggers {
		if extra == t {
			return true
		}
	}
	return false
}

func (p *PassiveDef) validate() error {
	if p.ID == "" {
		return fmt.Errorf("passive with empty id")
	}
	triggers := append([]TriggerKind{p.Trigger}, p.ExtraTriggers...)
	for _, tr := range triggers {
		known := false
		for _, t := range Triggers {
			if tr == t {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("passive %s: unknown trigger %q", p.ID, tr)
		}
	}
	if p.Trigger == TriggerOnInterval && p.IntervalSec <= 0 {
		return fmt.Errorf("passive %s: on_interval needs intervalSec", p.ID)
	}
	if p.Trigger == TriggerOnLowHealth && (p.HealthThreshold <= 0 || p.HealthThreshold >= 1) {
		return fmt.Errorf("passive %s: on_low_health needs healthThreshold in (0,1)", p.ID)
	}
	if p.RequiredStacks > 0 && p.MaxStacks < p.RequiredStacks {
		return fmt.Errorf("passive %s: requiredStacks exceeds maxStacks", p.ID)
	}
	for i, spec := range p.Effects {
		if err := spec.validate(fmt.Sprintf("passive %s effects[%d]", p.ID, i)); err != nil {
			return err
		}
	}
	return nil
}
