// Package protocol defines the versioned JSON frames exchanged with game
// clients. Decode functions validate the wire version per frame; encode
// functions stamp it. The concrete socket library lives in internal/net;
// this package only shapes payloads.
package protocol

import (
	"encoding/json"
	"fmt"

	"riftlane/server/internal/content"
	"riftlane/server/internal/world"
)

// Version tracks the wire-protocol revision expected by clients.
const Version = 1

// Client frame type identifiers.
const (
	TypeInput    = "INPUT"
	TypePing     = "PING"
	TypeReady    = "READY"
	TypeEventAck = "EVENT_ACK"
)

// Server frame type identifiers.
const (
	TypeStateUpdate = "STATE_UPDATE"
	TypeFullState   = "FULL_STATE"
	TypeGameStart   = "GAME_START"
	TypeGameEnd     = "GAME_END"
	TypePong        = "PONG"
	TypeError       = "ERROR"
	TypeEvent       = "EVENT"
)

// Input kind identifiers carried inside INPUT frames.
const (
	InputMove       = "MOVE"
	InputAttackMove = "ATTACK_MOVE"
	InputTargetUnit = "TARGET_UNIT"
	InputStop       = "STOP"
	InputAbility    = "ABILITY"
	InputLevelUp    = "LEVEL_UP"
	InputBuyItem    = "BUY_ITEM"
	InputSellItem   = "SELL_ITEM"
	InputRecall     = "RECALL"
	InputPing       = "PING"
	InputChat       = "CHAT"
	InputPlaceWard  = "PLACE_WARD"
)

// SlotRef addresses either an ability slot ("Q".."R") or a numeric
// inventory slot; the input type disambiguates which one applies.
type SlotRef struct {
	Ability content.Slot
	Item    int
}

// UnmarshalJSON accepts both the string and the numeric form.
func (s *SlotRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		s.Ability = content.Slot(raw)
		s.Item = -1
		return nil
	}
	s.Ability = ""
	return json.Unmarshal(data, &s.Item)
}

// MarshalJSON renders whichever form is populated.
func (s SlotRef) MarshalJSON() ([]byte, error) {
	if s.Ability != "" {
		return json.Marshal(string(s.Ability))
	}
	return json.Marshal(s.Item)
}

// ClientInput is the body of an INPUT frame. Optional coordinates are
// pointers so the dispatcher can tell "absent" from "zero".
type ClientInput struct {
	Seq            uint64   `json:"seq"`
	Type           string   `json:"type"`
	ClientTime     int64    `json:"clientTime,omitempty"`
	TargetX        *float64 `json:"targetX,omitempty"`
	TargetY        *float64 `json:"targetY,omitempty"`
	TargetEntityID world.ID `json:"targetEntityId,omitempty"`
	Slot           SlotRef  `json:"slot,omitempty"`
	ItemID         string   `json:"itemId,omitempty"`
	X              float64  `json:"x,omitempty"`
	Y              float64  `json:"y,omitempty"`
	WardType       string   `json:"wardType,omitempty"`
	Message        string   `json:"message,omitempty"`
}

// ClientFrame is one decoded inbound message.
type ClientFrame struct {
	Ver         int          `json:"ver,omitempty"`
	Type        string       `json:"type"`
	Input       *ClientInput `json:"input,omitempty"`
	Timestamp   int64        `json:"timestamp,omitempty"`
	PlayerID    string       `json:"playerId,omitempty"`
	ChampionID  string       `json:"championId,omitempty"`
	LastEventID uint64       `json:"lastEventId,omitempty"`
}

// DecodeClientFrame converts a raw payload into a structured frame. A
// missing version is treated as current; any other mismatch is rejected.
func DecodeClientFrame(payload []byte) (ClientFrame, error) {
	var frame ClientFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return frame, err
	}
	if frame.Ver == 0 {
		frame.Ver = Version
	}
	if frame.Ver != Version {
		return frame, fmt.Errorf("unsupported client protocol version %d", frame.Ver)
	}
	if frame.Type == TypeInput && frame.Input == nil {
		return frame, fmt.Errorf("INPUT frame without input body")
	}
	return frame, nil
}

// StateUpdate is the per-tick delta frame sent to one viewer.
type StateUpdate struct {
	Ver         int               `json:"ver"`
	Type        string            `json:"type"`
	Tick        uint64            `json:"tick"`
	Timestamp   int64             `json:"timestamp"`
	GameTime    float64           `json:"gameTime"`
	InputAcks   map[string]uint64 `json:"inputAcks,omitempty"`
	Deltas      []EntityDelta     `json:"deltas"`
	Events      []world.Event     `json:"events,omitempty"`
	LastEventID uint64            `json:"lastEventId,omitempty"`
}

// EncodeStateUpdate renders a STATE_UPDATE frame.
func EncodeStateUpdate(msg StateUpdate) ([]byte, error) {
	msg.Ver = Version
	msg.Type = TypeStateUpdate
	return json.Marshal(msg)
}

// FullEntity is one complete entity record inside a FULL_STATE frame.
type FullEntity struct {
	EntityID   world.ID         `json:"entityId"`
	EntityType world.EntityType `json:"entityType"`
	Side       content.Side     `json:"side"`
	EntityData
}

// FullState carries every visible entity, sent on join and reconnect.
type FullState struct {
	Ver       int           `json:"ver"`
	Type      string        `json:"type"`
	Tick      uint64        `json:"tick"`
	Timestamp int64         `json:"timestamp"`
	GameTime  float64       `json:"gameTime"`
	Entities  []FullEntity  `json:"entities"`
	Events    []world.Event `json:"events"`
}

// EncodeFullState renders a FULL_STATE frame.
func EncodeFullState(msg FullState) ([]byte, error) {
	msg.Ver = Version
	msg.Type = TypeFullState
	if msg.Events == nil {
		msg.Events = []world.Event{}
	}
	return json.Marshal(msg)
}

// GameStartPlayer describes one seat in the GAME_START roster.
type GameStartPlayer struct {
	PlayerID   string       `json:"playerId"`
	ChampionID string       `json:"championId"`
	Side       content.Side `json:"side"`
	EntityID   world.ID     `json:"entityId"`
}

// GameStart announces the match to one player.
type GameStart struct {
	Ver      int               `json:"ver"`
	Type     string            `json:"type"`
	GameID   string            `json:"gameId"`
	Tick     uint64            `json:"tick"`
	GameTime float64           `json:"gameTime"`
	YourSide content.Side      `json:"yourSide"`
	Players  []GameStartPlayer `json:"players"`
}

// EncodeGameStart renders a GAME_START frame.
func EncodeGameStart(msg GameStart) ([]byte, error) {
	msg.Ver = Version
	msg.Type = TypeGameStart
	return json.Marshal(msg)
}

// GameEnd reports the match result.
type GameEnd struct {
	Ver         int          `json:"ver"`
	Type        string       `json:"type"`
	WinningSide content.Side `json:"winningSide"`
	Duration    float64      `json:"duration"`
}

// EncodeGameEnd renders a GAME_END frame.
func EncodeGameEnd(msg GameEnd) ([]byte, error) {
	msg.Ver = Version
	msg.Type = TypeGameEnd
	return json.Marshal(msg)
}

// Pong answers a transport-level PING.
type Pong struct {
	Ver             int    `json:"ver"`
	Type            string `json:"type"`
	ClientTimestamp int64  `json:"clientTimestamp"`
	ServerTimestamp int64  `json:"serverTimestamp"`
}

// EncodePong renders a PONG frame.
func EncodePong(msg Pong) ([]byte, error) {
	msg.Ver = Version
	msg.Type = TypePong
	return json.Marshal(msg)
}

// ErrorFrame reports a request-level failure to the client.
type ErrorFrame struct {
	Ver   int    `json:"ver"`
	Type  string `json:"type"`
	Error string `json:"error"`
}

// EncodeError renders an ERROR frame.
func EncodeError(message string) ([]byte, error) {
	return json.Marshal(ErrorFrame{Ver: Version, Type: TypeError, Error: message})
}

// EventFrame is the unreliable envelope for lobby and social notices.
type EventFrame struct {
	Ver     int    `json:"ver"`
	Type    string `json:"type"`
	Kind    string `json:"kind"`
	Payload any    `json:"payload,omitempty"`
}

// EncodeEvent renders an EVENT frame.
func EncodeEvent(kind string, payload any) ([]byte, error) {
	return json.Marshal(EventFrame{Ver: Version, Type: TypeEvent, Kind: kind, Payload: payload})
}
