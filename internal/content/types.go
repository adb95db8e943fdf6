package content

// Side identifies a team. Neutral entities (jungle monsters) belong to no
// team and are hostile to both.
type Side int

const (
	SideBlue    Side = 0
	SideRed     Side = 1
	SideNeutral Side = 2
)

// DamageType selects the resistance applied when damage lands.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagic    DamageType = "magic"
	DamageTrue     DamageType = "true"
)

// Slot names one of the four ability slots.
type Slot string

const (
	SlotQ Slot = "Q"
	SlotW Slot = "W"
	SlotE Slot = "E"
	SlotR Slot = "R"
)

// Slots lists the ability slots in display order.
var Slots = []Slot{SlotQ, SlotW, SlotE, SlotR}

// Targeting describes how an ability selects its target.
type Targeting string

const (
	TargetSelf    Targeting = "self"
	TargetNone    Targeting = "no_target"
	TargetEnemy   Targeting = "target_enemy"
	TargetAlly    Targeting = "target_ally"
	TargetUnit    Targeting = "target_unit"
	TargetSkill   Targeting = "skillshot"
	TargetGround  Targeting = "ground_target"
)

// CCKind tags a crowd-control category carried by a status effect.
type CCKind string

const (
	CCStun     CCKind = "stun"
	CCRoot     CCKind = "root"
	CCSilence  CCKind = "silence"
	CCDisarm   CCKind = "disarm"
	CCBlind    CCKind = "blind"
	CCGround   CCKind = "ground"
	CCSlow     CCKind = "slow"
	CCStealth  CCKind = "stealth"
)

// TriggerKind names a passive trigger bus event.
type TriggerKind string

const (
	TriggerOnAttack      TriggerKind = "on_attack"
	TriggerOnHit         TriggerKind = "on_hit"
	TriggerOnAbilityCast TriggerKind = "on_ability_cast"
	TriggerOnAbilityHit  TriggerKind = "on_ability_hit"
	TriggerOnTakeDamage  TriggerKind = "on_take_damage"
	TriggerOnKill        TriggerKind = "on_kill"
	TriggerOnLowHealth   TriggerKind = "on_low_health"
	TriggerOnInterval    TriggerKind = "on_interval"
	TriggerAlways        TriggerKind = "always"
)

// Triggers lists every trigger the engine dispatches.
var Triggers = []TriggerKind{
	TriggerOnAttack, TriggerOnHit, TriggerOnAbilityCast, TriggerOnAbilityHit,
	TriggerOnTakeDamage, TriggerOnKill, TriggerOnLowHealth, TriggerOnInterval,
	TriggerAlways,
}

// StackPolicy governs what a re-application of an already-present status does.
type StackPolicy string

const (
	StackRefresh StackPolicy = "refresh"
	StackAdd     StackPolicy = "stack"
	StackIgnore  StackPolicy = "ignore"
)

// Lane names one of the three lanes.
type Lane string

const (
	LaneTop Lane = "top"
	LaneMid Lane = "mid"
	LaneBot Lane = "bot"
)

// Lanes lists the lanes in map order.
var Lanes = []Lane{LaneTop, LaneMid, LaneBot}

// WardKind selects the ward placed by PLACE_WARD.
type WardKind string

const (
	WardStealth  WardKind = "stealth"
	WardFarsight WardKind = "farsight"
)

// Stats is the additive stat block shared by champions, units, and items.
// Champion growth uses the same shape as a per-level increment.
type Stats struct {
	MaxHealth     float64 `yaml:"maxHealth,omitempty" json:"maxHealth,omitempty"`
	HealthRegen   float64 `yaml:"healthRegen,omitempty" json:"healthRegen,omitempty"`
	MaxResource   float64 `yaml:"maxResource,omitempty" json:"maxResource,omitempty"`
	ResourceRegen float64 `yaml:"resourceRegen,omitempty" json:"resourceRegen,omitempty"`
	AttackDamage  float64 `yaml:"attackDamage,omitempty" json:"attackDamage,omitempty"`
	AbilityPower  float64 `yaml:"abilityPower,omitempty" json:"abilityPower,omitempty"`
	Armor         float64 `yaml:"armor,omitempty" json:"armor,omitempty"`
	MagicResist   float64 `yaml:"magicResist,omitempty" json:"magicResist,omitempty"`
	AttackSpeed   float64 `yaml:"attackSpeed,omitempty" json:"attackSpeed,omitempty"`
	MoveSpeed     float64 `yaml:"moveSpeed,omitempty" json:"moveSpeed,omitempty"`
	AttackRange   float64 `yaml:"attackRange,omitempty" json:"attackRange,omitempty"`
}

// Add returns the element-wise sum of two stat blocks.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		MaxHealth:     s.MaxHealth + o.MaxHealth,
		HealthRegen:   s.HealthRegen + o.HealthRegen,
		MaxResource:   s.MaxResource + o.MaxResource,
		ResourceRegen: s.ResourceRegen + o.ResourceRegen,
		AttackDamage:  s.AttackDamage + o.AttackDamage,
		AbilityPower:  s.AbilityPower + o.AbilityPower,
		Armor:         s.Armor + o.Armor,
		MagicResist:   s.MagicResist + o.MagicResist,
		AttackSpeed:   s.AttackSpeed + o.AttackSpeed,
		MoveSpeed:     s.MoveSpeed + o.MoveSpeed,
		AttackRange:   s.AttackRange + o.AttackRange,
	}
}

// Scale returns the stat block multiplied by n.
func (s Stats) Scale(n float64) Stats {
	return Stats{
		MaxHealth:     s.MaxHealth * n,
		HealthRegen:   s.HealthRegen * n,
		MaxResource:   s.MaxResource * n,
		ResourceRegen: s.ResourceRegen * n,
		AttackDamage:  s.AttackDamage * n,
		AbilityPower:  s.AbilityPower * n,
		Armor:         s.Armor * n,
		MagicResist:   s.MagicResist * n,
		AttackSpeed:   s.AttackSpeed * n,
		MoveSpeed:     s.MoveSpeed * n,
		AttackRange:   s.AttackRange * n,
	}
}

// AtLevel composes base stats with growth applied for the given level.
// Level 1 is the base block unchanged.
func AtLevel(base, growth Stats, level int) Stats {
	if level <= 1 {
		return base
	}
	return base.Add(growth.Scale(float64(level - 1)))
}

// Point is a map position in world units.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Rect is an axis-aligned region, used for walls and bushes.
type Rect struct {
	MinX float64 `yaml:"minX" json:"minX"`
	MinY float64 `yaml:"minY" json:"minY"`
	MaxX float64 `yaml:"maxX" json:"maxX"`
	MaxY float64 `yaml:"maxY" json:"maxY"`
}

// Contains reports whether p lies inside the rect. Edges count as outside
// the region for bush-style containment.
func (r Rect) Contains(p Point) bool {
	return p.X > r.MinX && p.X < r.MaxX && p.Y > r.MinY && p.Y < r.MaxY
}

// Center returns the midpoint of the rect.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}
