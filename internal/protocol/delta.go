package protocol

import (
	"riftlane/server/internal/content"
	"riftlane/server/internal/world"
)

// EntityDelta is one entity's entry in a STATE_UPDATE. Identity fields are
// always present; everything else sits behind the change mask so clients
// can apply partial updates. Side rides along unconditionally because
// clients need it for fog filtering when an entity reappears.
type EntityDelta struct {
	EntityID   world.ID         `json:"entityId"`
	EntityType world.EntityType `json:"entityType"`
	Side       content.Side     `json:"side"`
	ChangeMask uint32           `json:"changeMask"`
	Data       EntityData       `json:"data"`
}

// EntityData is a partial entity snapshot. Every field is optional; the
// change mask on the surrounding delta says which groups are populated.
type EntityData struct {
	ChampionID string `json:"championId,omitempty"`
	PlayerID   string `json:"playerId,omitempty"`

	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`

	Health    *float64 `json:"health,omitempty"`
	MaxHealth *float64 `json:"maxHealth,omitempty"`

	Resource    *float64 `json:"resource,omitempty"`
	MaxResource *float64 `json:"maxResource,omitempty"`

	Level                  *int `json:"level,omitempty"`
	Experience             *int `json:"experience,omitempty"`
	ExperienceToNextLevel  *int `json:"experienceToNextLevel,omitempty"`
	SkillPoints            *int `json:"skillPoints,omitempty"`

	Abilities map[content.Slot]world.AbilityState `json:"abilities,omitempty"`

	ActiveEffects []world.EffectState `json:"activeEffects,omitempty"`
	AttackDamage  *float64            `json:"attackDamage,omitempty"`
	AbilityPower  *float64            `json:"abilityPower,omitempty"`
	Armor         *float64            `json:"armor,omitempty"`
	MagicResist   *float64            `json:"magicResist,omitempty"`
	AttackSpeed   *float64            `json:"attackSpeed,omitempty"`
	MovementSpeed *float64            `json:"movementSpeed,omitempty"`

	Shields []world.ShieldState `json:"shields,omitempty"`

	Passive *world.PassiveState `json:"passive,omitempty"`

	Items []*world.ItemState `json:"items,omitempty"`

	TargetX        *float64  `json:"targetX,omitempty"`
	TargetY        *float64  `json:"targetY,omitempty"`
	TargetEntityID *world.ID `json:"targetEntityId,omitempty"`

	IsDead         *bool    `json:"isDead,omitempty"`
	RespawnTimer   *float64 `json:"respawnTimer,omitempty"`
	IsRecalling    *bool    `json:"isRecalling,omitempty"`
	RecallProgress *float64 `json:"recallProgress,omitempty"`
	Remaining      *float64 `json:"remaining,omitempty"`
	IsDestroyed    *bool    `json:"isDestroyed,omitempty"`

	Trinket *world.TrinketState `json:"trinket,omitempty"`

	Gold    *int `json:"gold,omitempty"`
	Kills   *int `json:"kills,omitempty"`
	Deaths  *int `json:"deaths,omitempty"`
	Assists *int `json:"assists,omitempty"`
	CS      *int `json:"cs,omitempty"`
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }
func boolp(v bool) *bool     { return &v }

// DeltaPayload builds the partial payload for the given change mask.
func DeltaPayload(s *world.Snapshot, m world.Mask) EntityData {
	var d EntityData
	if m == world.MaskAll {
		d.ChampionID = s.ChampionID
		d.PlayerID = s.PlayerID
	}
	if m&world.MaskPosition != 0 {
		d.X = f64(s.X)
		d.Y = f64(s.Y)
	}
	if m&world.MaskHealth != 0 {
		d.Health = f64(s.Health)
		d.MaxHealth = f64(s.MaxHealth)
	}
	if m&world.MaskResource != 0 {
		d.Resource = f64(s.Resource)
		d.MaxResource = f64(s.MaxResource)
	}
	if m&world.MaskLevel != 0 {
		d.Level = intp(s.Level)
		d.Experience = intp(s.Experience)
		d.ExperienceToNextLevel = intp(s.ExperienceToNext)
		d.SkillPoints = intp(s.SkillPoints)
	}
	if m&world.MaskAbilities != 0 && s.Type == world.TypeChampion {
		d.Abilities = make(map[content.Slot]world.AbilityState, len(content.Slots))
		for i, slot := range content.Slots {
			d.Abilities[slot] = s.Abilities[i]
		}
	}
	if m&world.MaskEffects != 0 {
		d.ActiveEffects = s.ActiveEffects
		d.AttackDamage = f64(s.AttackDamage)
		d.AbilityPower = f64(s.AbilityPower)
		d.Armor = f64(s.Armor)
		d.MagicResist = f64(s.MagicResist)
		d.AttackSpeed = f64(s.AttackSpeed)
		d.MovementSpeed = f64(s.MoveSpeed)
	}
	if m&world.MaskShields != 0 {
		d.Shields = s.Shields
	}
	if m&world.MaskPassive != 0 && s.Type == world.TypeChampion {
		p := s.Passive
		d.Passive = &p
	}
	if m&world.MaskItems != 0 && s.Type == world.TypeChampion {
		d.Items = make([]*world.ItemState, len(s.Items))
		for i := range s.Items {
			if s.Items[i].DefinitionID == "" {
				continue
			}
			item := s.Items[i]
			d.Items[i] = &item
		}
	}
	if m&world.MaskTarget != 0 {
		if s.HasMoveTarget {
			d.TargetX = f64(s.TargetX)
			d.TargetY = f64(s.TargetY)
		}
		if s.TargetEntityID != 0 {
			id := s.TargetEntityID
			d.TargetEntityID = &id
		}
	}
	if m&world.MaskState != 0 {
		d.IsDead = boolp(s.IsDead)
		d.RespawnTimer = f64(s.RespawnTimer)
		d.IsRecalling = boolp(s.IsRecalling)
		d.RecallProgress = f64(s.RecallProgress)
		if s.Remaining > 0 {
			d.Remaining = f64(s.Remaining)
		}
	}
	if m&world.MaskTrinket != 0 && s.Type == world.TypeChampion {
		t := s.Trinket
		d.Trinket = &t
	}
	if m&world.MaskGold != 0 {
		d.Gold = intp(s.Gold)
		d.Kills = intp(s.Kills)
		d.Deaths = intp(s.Deaths)
		d.Assists = intp(s.Assists)
		d.CS = intp(s.CS)
	}
	return d
}

// RemovalPayload marks an entity gone from the viewer's world.
func RemovalPayload() EntityData {
	return EntityData{IsDead: boolp(true), IsDestroyed: boolp(true)}
}

// FullSnapshot renders one complete entity for a FULL_STATE frame.
func FullSnapshot(s *world.Snapshot) FullEntity {
	return FullEntity{
		EntityID:   s.ID,
		EntityType: s.Type,
		Side:       s.Side,
		EntityData: DeltaPayload(s, world.MaskAll),
	}
}
