package content

import "fmt"

// Family tags an effect spec with the handler that executes it. Handlers are
// registered by the ability engine; validation only checks the tag is known.
type Family string

const (
	FamilyDamage     Family = "damage"
	FamilyHeal       Family = "heal"
	FamilyShield     Family = "shield"
	FamilyProjectile Family = "projectile"
	FamilyDash       Family = "dash"
	FamilyBlink      Family = "blink"
	FamilyZone       Family = "zone"
	FamilyTrap       Family = "trap"
	FamilyDisable    Family = "disable"
	FamilySlow       Family = "slow"
	FamilyStatMod    Family = "stat_mod"
	FamilyAura       Family = "aura"
	FamilyOrb        Family = "orb"
	FamilyOrbDash    Family = "orb_dash"
	FamilyKnockback  Family = "knockback"
)

// Families lists every effect family the engine must register a handler for.
var Families = []Family{
	FamilyDamage, FamilyHeal, FamilyShield, FamilyProjectile, FamilyDash,
	FamilyBlink, FamilyZone, FamilyTrap, FamilyDisable, FamilySlow,
	FamilyStatMod, FamilyAura, FamilyOrb, FamilyOrbDash, FamilyKnockback,
}

// EffectSpec is one data-driven effect step inside an ability, passive, trap,
// or zone. Which fields are meaningful depends on the family; Validate checks
// the per-family requirements.
type EffectSpec struct {
	Family Family `yaml:"family" json:"family"`

	// EffectID keys status deduplication per (effectId, target). Families
	// that apply a lasting status (disable, slow, stat_mod, shield) need it.
	EffectID string `yaml:"effectId,omitempty" json:"effectId,omitempty"`

	// Target selects who the step applies to: "victim" (default) or "self".
	Target string `yaml:"target,omitempty" json:"target,omitempty"`

	DamageType DamageType `yaml:"damageType,omitempty" json:"damageType,omitempty"`

	// Base holds the rank-indexed magnitude. Index is rank-1, clamped to the
	// last element, so passives and single-rank specs use one entry.
	Base      []float64 `yaml:"base,omitempty" json:"base,omitempty"`
	Ratio     float64   `yaml:"ratio,omitempty" json:"ratio,omitempty"`
	RatioStat string    `yaml:"ratioStat,omitempty" json:"ratioStat,omitempty"`

	Duration    float64     `yaml:"duration,omitempty" json:"duration,omitempty"`
	Radius      float64     `yaml:"radius,omitempty" json:"radius,omitempty"`
	Speed       float64     `yaml:"speed,omitempty" json:"speed,omitempty"`
	Range       float64     `yaml:"range,omitempty" json:"range,omitempty"`
	Interval    float64     `yaml:"interval,omitempty" json:"interval,omitempty"`
	Delay       float64     `yaml:"delay,omitempty" json:"delay,omitempty"`
	MaxDistance float64     `yaml:"maxDistance,omitempty" json:"maxDistance,omitempty"`
	Pierce      bool        `yaml:"pierce,omitempty" json:"pierce,omitempty"`
	Kind        string      `yaml:"kind,omitempty" json:"kind,omitempty"`
	Amount      float64     `yaml:"amount,omitempty" json:"amount,omitempty"`
	Stat        Stats       `yaml:"stat,omitempty" json:"stat,omitempty"`
	HealFromMaxHealth bool  `yaml:"healFromMaxHealth,omitempty" json:"healFromMaxHealth,omitempty"`
	StackPolicy StackPolicy `yaml:"stackPolicy,omitempty" json:"stackPolicy,omitempty"`
	MaxStacks   int         `yaml:"maxStacks,omitempty" json:"maxStacks,omitempty"`

	// OnHit nests the steps applied to each entity struck by a projectile,
	// dash, zone tick, aura pulse, or trap trigger.
	OnHit []EffectSpec `yaml:"onHit,omitempty" json:"onHit,omitempty"`
}

// BaseAt returns the rank-indexed base magnitude. Rank 1 reads index 0;
// out-of-range ranks clamp to the last entry; an empty slice yields 0.
func (e EffectSpec) BaseAt(rank int) float64 {
	if len(e.Base) == 0 {
		return 0
	}
	i := rank - 1
	if i < 0 {
		i = 0
	}
	if i >= len(e.Base) {
		i = len(e.Base) - 1
	}
	return e.Base[i]
}

func (e EffectSpec) validate(path string) error {
	known := false
	for _, f := range Families {
		if e.Family == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%s: unknown effect family %q", path, e.Family)
	}
	switch e.Family {
	case FamilyDamage:
		switch e.DamageType {
		case DamagePhysical, DamageMagic, DamageTrue:
		default:
			return fmt.Errorf("%s: damage needs a damage type", path)
		}
	case FamilyProjectile, FamilyOrb:
		if e.Speed <= 0 {
			return fmt.Errorf("%s: %s needs speed > 0", path, e.Family)
		}
		if e.MaxDistance <= 0 {
			return fmt.Errorf("%s: %s needs maxDistance > 0", path, e.Family)
		}
	case FamilyZone, FamilyAura:
		if e.Duration <= 0 || e.Interval <= 0 || e.Radius <= 0 {
			return fmt.Errorf("%s: %s needs duration, interval, and radius", path, e.Family)
		}
	case FamilyTrap:
		if e.Duration <= 0 || e.Radius <= 0 {
			return fmt.Errorf("%s: trap needs duration and trigger radius", path)
		}
	case FamilyDisable:
		switch CCKind(e.Kind) {
		case CCStun, CCRoot, CCSilence, CCDisarm, CCBlind, CCGround, CCStealth:
		default:
			return fmt.Errorf("%s: disable kind %q unknown", path, e.Kind)
		}
		if e.Duration <= 0 {
			return fmt.Errorf("%s: disable needs duration", path)
		}
	case FamilySlow:
		if e.Amount <= 0 || e.Amount >= 1 {
			return fmt.Errorf("%s: slow amount must be a fraction in (0,1)", path)
		}
		if e.Duration <= 0 {
			return fmt.Errorf("%s: slow needs duration", path)
		}
	case FamilyDash, FamilyKnockback:
		if e.Range <= 0 || e.Duration <= 0 {
			return fmt.Errorf("%s: %s needs range and duration", path, e.Family)
		}
	case FamilyBlink:
		if e.Range <= 0 {
			return fmt.Errorf("%s: blink needs range", path)
		}
	}
	for i, child := range e.OnHit {
		if err := child.validate(fmt.Sprintf("%s.onHit[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// AbilityDef is one champion ability. All tunables are rank-indexed where a
// slice is used; slices shorter than max rank clamp to their last entry.
type AbilityDef struct {
	ID         string    `yaml:"id" json:"id"`
	ChampionID string    `yaml:"championId" json:"championId"`
	Slot       Slot      `yaml:"slot" json:"slot"`
	Name       string    `yaml:"name" json:"name"`
	MaxRank    int       `yaml:"maxRank" json:"maxRank"`
	Targeting  Targeting `yaml:"targeting" json:"targeting"`

	// AllowedTargets restricts unit targeting by entity type tag. Empty
	// means champions, minions, and jungle monsters.
	AllowedTargets []string `yaml:"allowedTargets,omitempty" json:"allowedTargets,omitempty"`

	ManaCost []float64 `yaml:"manaCost,omitempty" json:"manaCost,omitempty"`
	Cooldown []float64 `yaml:"cooldown,omitempty" json:"cooldown,omitempty"`
	Range    []float64 `yaml:"range,omitempty" json:"range,omitempty"`

	// CastTime locks the champion briefly before the ability resolves.
	CastTime float64 `yaml:"castTime,omitempty" json:"castTime,omitempty"`

	// KeyframeDelay defers projectile spawn past the cast by this many
	// seconds, matching the cast animation's release frame.
	KeyframeDelay float64 `yaml:"keyframeDelay,omitempty" json:"keyframeDelay,omitempty"`

	RecastWindow float64 `yaml:"recastWindow,omitempty" json:"recastWindow,omitempty"`
	RecastCount  int     `yaml:"recastCount,omitempty" json:"recastCount,omitempty"`
	IsStealth    bool    `yaml:"isStealth,omitempty" json:"isStealth,omitempty"`

	Effects []EffectSpec `yaml:"effects" json:"effects"`

	// RecastEffects run when the ability is recast inside its window.
	RecastEffects []EffectSpec `yaml:"recastEffects,omitempty" json:"recastEffects,omitempty"`
}

func rankValue(values []float64, rank int) float64 {
	if len(values) == 0 {
		return 0
	}
	i := rank - 1
	if i < 0 {
		i = 0
	}
	if i >= len(values) {
		i = len(values) - 1
	}
	return values[i]
}

// AllowsType reports whether the ability may target the given entity type
// tag. An empty list allows champions, minions, and jungle monsters.
func (a *AbilityDef) AllowsType(t string) bool {
	if len(a.AllowedTargets) == 0 {
		return t == "champion" || t == "minion" || t == "jungle"
	}
	for _, allowed := range a.AllowedTargets {
		if allowed == t {
			return true
		}
	}
	return false
}

// ManaCostAt returns the mana cost at the given rank.
func (a *AbilityDef) ManaCostAt(rank int) float64 { return rankValue(a.ManaCost, rank) }

// CooldownAt returns the cooldown seconds at the given rank.
func (a *AbilityDef) CooldownAt(rank int) float64 { return rankValue(a.Cooldown, rank) }

// RangeAt returns the cast range at the given rank.
func (a *AbilityDef) RangeAt(rank int) float64 { return rankValue(a.Range, rank) }

func (a *AbilityDef) validate() error {
	if a.ID == "" {
		return fmt.Errorf("ability with empty id")
	}
	if a.MaxRank < 1 || a.MaxRank > 5 {
		return fmt.Errorf("ability %s: maxRank %d out of range [1,5]", a.ID, a.MaxRank)
	}
	switch a.Slot {
	case SlotQ, SlotW, SlotE, SlotR:
	default:
		return fmt.Errorf("ability %s: unknown slot %q", a.ID, a.Slot)
	}
	switch a.Targeting {
	case TargetSelf, TargetNone, TargetEnemy, TargetAlly, TargetUnit, TargetSkill, TargetGround:
	default:
		return fmt.Errorf("ability %s: unknown targeting %q", a.ID, a.Targeting)
	}
	if len(a.Effects) == 0 {
		return fmt.Errorf("ability %s: no effects", a.ID)
	}
	for i, spec := range a.Effects {
		if err := spec.validate(fmt.Sprintf("ability %s effects[%d]", a.ID, i)); err != nil {
			return err
		}
	}
	for i, spec := range a.RecastEffects {
		if err := spec.validate(fmt.Sprintf("ability %s recastEffects[%d]", a.ID, i)); err != nil {
			return err
		}
	}
	if a.RecastCount > 0 && a.RecastWindow <= 0 {
		return fmt.Errorf("ability %s: recastCount without recastWindow", a.ID)
	}
	if a.RecastCount > 0 && len(a.RecastEffects) == 0 {
		return fmt.Errorf("ability %s: recastCount without recastEffects", a.ID)
	}
	return nil
}
