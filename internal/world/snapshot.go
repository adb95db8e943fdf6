package world

import (
	"slices"

	"riftlane/server/internal/content"
)

// Mask is the per-delta change bitset. Each bit gates one field group in
// the serialized entity state; the serializer sets a bit when any field in
// the group differs from the viewer's baseline.
type Mask uint32

const (
	MaskPosition Mask = 1 << iota
	MaskHealth
	MaskResource
	MaskLevel
	MaskAbilities
	MaskEffects
	MaskShields
	MaskPassive
	MaskItems
	MaskTarget
	MaskState
	MaskTrinket
	MaskGold
)

// MaskAll marks a full snapshot.
const MaskAll Mask = (1 << 13) - 1

// AbilityState is one slot's client-facing state.
type AbilityState struct {
	Rank              int     `json:"rank"`
	CooldownRemaining float64 `json:"cooldownRemaining"`
	RecastRemaining   int     `json:"recastRemaining,omitempty"`
	RecastWindow      float64 `json:"recastWindow,omitempty"`
}

// PassiveState is the champion passive's client-facing state.
type PassiveState struct {
	IsActive           bool    `json:"isActive"`
	CooldownRemaining  float64 `json:"cooldownRemaining"`
	Stacks             int     `json:"stacks"`
	StackTimeRemaining float64 `json:"stackTimeRemaining"`
}

// TrinketState is the warding trinket's client-facing state.
type TrinketState struct {
	Charges          int     `json:"charges"`
	MaxCharges       int     `json:"maxCharges"`
	Cooldown         float64 `json:"cooldown"`
	RechargeProgress float64 `json:"rechargeProgress"`
}

// ItemState is one inventory slot. A zero DefinitionID means the slot is
// empty.
type ItemState struct {
	DefinitionID     string  `json:"definitionId"`
	Slot             int     `json:"slot"`
	PassiveID        string  `json:"-"`
	PassiveCooldown  float64 `json:"-"`
	NextIntervalTick uint64  `json:"nextIntervalTick,omitempty"`
}

// EffectState is one active timed effect on an entity.
type EffectState struct {
	EffectID  string         `json:"effectId"`
	Kind      content.CCKind `json:"kind,omitempty"`
	Remaining float64        `json:"remaining"`
	SourceID  ID             `json:"sourceId,omitempty"`
	Stacks    int            `json:"stacks,omitempty"`
}

// ShieldState is one absorption shield on an entity.
type ShieldState struct {
	Amount            float64 `json:"amount"`
	RemainingDuration float64 `json:"remainingDuration"`
	SourceID          ID      `json:"sourceId"`
	ShieldType        string  `json:"shieldType"`
}

// Snapshot is one entity's full serializable state at a tick. It is flat
// and value-comparable per field group so the serializer can diff two
// snapshots without reflection. Non-champion entities leave the champion
// groups zeroed.
type Snapshot struct {
	ID   ID
	Type EntityType
	Side content.Side

	// Identity, immutable after spawn.
	ChampionID string
	PlayerID   string

	// Position group.
	X float64
	Y float64

	// Health group.
	Health    float64
	MaxHealth float64

	// Resource group.
	Resource    float64
	MaxResource float64

	// Level group.
	Level            int
	Experience       int
	ExperienceToNext int
	SkillPoints      int

	// Abilities group, indexed by content.Slot.
	Abilities [4]AbilityState

	// Effects group. Computed stats travel with effects because effects,
	// items and levels all feed them.
	ActiveEffects []EffectState
	AttackDamage  float64
	AbilityPower  float64
	Armor         float64
	MagicResist   float64
	AttackSpeed   float64
	MoveSpeed     float64

	Shields []ShieldState

	Passive PassiveState

	Items [6]ItemState

	// Target group.
	HasMoveTarget  bool
	TargetX        float64
	TargetY        float64
	TargetEntityID ID

	// State group. Remaining carries zone/ward/trap lifetime.
	IsDead         bool
	RespawnTimer   float64
	IsRecalling    bool
	RecallProgress float64
	Remaining      float64

	Trinket TrinketState

	// Score group.
	Gold    int
	Kills   int
	Deaths  int
	Assists int
	CS      int
}

// Diff returns the change mask between a baseline and a new snapshot.
func Diff(prev, next *Snapshot) Mask {
	var m Mask
	if prev.X != next.X || prev.Y != next.Y {
		m |= MaskPosition
	}
	if prev.Health != next.Health || prev.MaxHealth != next.MaxHealth {
		m |= MaskHealth
	}
	if prev.Resource != next.Resource || prev.MaxResource != next.MaxResource {
		m |= MaskResource
	}
	if prev.Level != next.Level || prev.Experience != next.Experience ||
		prev.ExperienceToNext != next.ExperienceToNext || prev.SkillPoints != next.SkillPoints {
		m |= MaskLevel
	}
	if prev.Abilities != next.Abilities {
		m |= MaskAbilities
	}
	if !slices.Equal(prev.ActiveEffects, next.ActiveEffects) || prev.AttackDamage != next.AttackDamage ||
		prev.AbilityPower != next.AbilityPower || prev.Armor != next.Armor ||
		prev.MagicResist != next.MagicResist || prev.AttackSpeed != next.AttackSpeed ||
		prev.MoveSpeed != next.MoveSpeed {
		m |= MaskEffects
	}
	if !slices.Equal(prev.Shields, next.Shields) {
		m |= MaskShields
	}
	if prev.Passive != next.Passive {
		m |= MaskPassive
	}
	if prev.Items != next.Items {
		m |= MaskItems
	}
	if prev.HasMoveTarget != next.HasMoveTarget || prev.TargetX != next.TargetX ||
		prev.TargetY != next.TargetY || prev.TargetEntityID != next.TargetEntityID {
		m |= MaskTarget
	}
	if prev.IsDead != next.IsDead || prev.RespawnTimer != next.RespawnTimer ||
		prev.IsRecalling != next.IsRecalling || prev.RecallProgress != next.RecallProgress ||
		prev.Remaining != next.Remaining {
		m |= MaskState
	}
	if prev.Trinket != next.Trinket {
		m |= MaskTrinket
	}
	if prev.Gold != next.Gold || prev.Kills != next.Kills || prev.Deaths != next.Deaths ||
		prev.Assists != next.Assists || prev.CS != next.CS {
		m |= MaskGold
	}
	return m
}
