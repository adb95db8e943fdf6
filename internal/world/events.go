package world

import "riftlane/server/internal/content"

// EventKind names a discrete game occurrence surfaced to clients.
type EventKind string

const (
	EventChampionKill       EventKind = "CHAMPION_KILL"
	EventFirstBlood         EventKind = "FIRST_BLOOD"
	EventAce                EventKind = "ACE"
	EventLevelUp            EventKind = "LEVEL_UP"
	EventTowerDestroyed     EventKind = "TOWER_DESTROYED"
	EventInhibitorDestroyed EventKind = "INHIBITOR_DESTROYED"
	EventInhibitorRespawned EventKind = "INHIBITOR_RESPAWNED"
	EventNexusDestroyed     EventKind = "NEXUS_DESTROYED"
	EventDragonKilled       EventKind = "DRAGON_KILLED"
	EventBaronKilled        EventKind = "BARON_KILLED"
	EventAbilityCast        EventKind = "ABILITY_CAST"
	EventAttackWindup       EventKind = "ATTACK_WINDUP"
	EventRecallStarted      EventKind = "RECALL_STARTED"
	EventRecallFinished     EventKind = "RECALL_FINISHED"
	EventRecallCanceled     EventKind = "RECALL_CANCELED"
	EventMinionKilled       EventKind = "MINION_KILLED"
	EventWardPlaced         EventKind = "WARD_PLACED"
	EventWardExpired        EventKind = "WARD_EXPIRED"
	EventItemBought         EventKind = "ITEM_BOUGHT"
	EventItemSold           EventKind = "ITEM_SOLD"
	EventGameEnd            EventKind = "GAME_END"
)

// Reliable reports whether the kind must be delivered with retry and
// acknowledgement rather than fire-and-forget.
func (k EventKind) Reliable() bool {
	switch k {
	case EventChampionKill, EventFirstBlood, EventAce, EventLevelUp,
		EventTowerDestroyed, EventInhibitorDestroyed, EventInhibitorRespawned,
		EventNexusDestroyed, EventDragonKilled, EventBaronKilled:
		return true
	}
	return false
}

// Event is a single occurrence emitted during a tick. ID is a match-wide
// monotone sequence assigned when the event is emitted; clients use it to
// acknowledge reliable events.
type Event struct {
	ID      uint64    `json:"eventId"`
	Kind    EventKind `json:"kind"`
	Tick    uint64    `json:"tick"`
	Payload any       `json:"payload,omitempty"`
}

// KillPayload describes a champion death.
type KillPayload struct {
	VictimID  ID   `json:"victimId"`
	KillerID  ID   `json:"killerId,omitempty"`
	AssistIDs []ID `json:"assistIds,omitempty"`
	Gold      int  `json:"gold,omitempty"`
}

// AcePayload reports a whole team being dead at once.
type AcePayload struct {
	Side content.Side `json:"side"`
}

// LevelUpPayload reports a champion reaching a new level.
type LevelUpPayload struct {
	EntityID ID  `json:"entityId"`
	Level    int `json:"level"`
}

// StructurePayload reports a tower, inhibitor or nexus changing state.
type StructurePayload struct {
	EntityID ID           `json:"entityId"`
	Side     content.Side `json:"side"`
	Lane     content.Lane `json:"lane,omitempty"`
	Tier     int          `json:"tier,omitempty"`
	KillerID ID           `json:"killerId,omitempty"`
}

// ObjectivePayload reports a dragon or baron kill.
type ObjectivePayload struct {
	EntityID ID           `json:"entityId"`
	Side     content.Side `json:"side"`
	KillerID ID           `json:"killerId,omitempty"`
}

// CastPayload reports a successful ability cast.
type CastPayload struct {
	CasterID  ID           `json:"casterId"`
	AbilityID string       `json:"abilityId"`
	Slot      content.Slot `json:"slot"`
	Rank      int          `json:"rank"`
	TargetID  ID           `json:"targetId,omitempty"`
	X         float64      `json:"x,omitempty"`
	Y         float64      `json:"y,omitempty"`
}

// WindupPayload reports a basic-attack windup so clients can animate it.
type WindupPayload struct {
	AttackerID ID      `json:"attackerId"`
	TargetID   ID      `json:"targetId"`
	Duration   float64 `json:"duration"`
}

// RecallPayload reports recall channel transitions.
type RecallPayload struct {
	EntityID ID `json:"entityId"`
}

// MinionKillPayload reports a last hit for kill-feed and CS tracking.
type MinionKillPayload struct {
	VictimID ID `json:"victimId"`
	KillerID ID `json:"killerId,omitempty"`
}

// WardPayload reports ward placement or expiry.
type WardPayload struct {
	EntityID ID               `json:"entityId"`
	OwnerID  ID               `json:"ownerId"`
	Kind     content.WardKind `json:"kind"`
}

// ItemPayload reports a shop transaction.
type ItemPayload struct {
	EntityID ID     `json:"entityId"`
	ItemID   string `json:"itemId"`
	Gold     int    `json:"gold"`
}

// GameEndPayload reports the match result.
type GameEndPayload struct {
	Winner   content.Side `json:"winner"`
	Duration float64      `json:"duration"`
}
