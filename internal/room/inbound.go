package room

import "riftlane/server/internal/protocol"

// InboundKind tags a message handed to the room goroutine.
type InboundKind int

const (
	// InboundInput carries a player input frame.
	InboundInput InboundKind = iota
	// InboundEventAck carries a reliable-event acknowledgement.
	InboundEventAck
	// InboundReconnect asks the room to resume a player's stream.
	InboundReconnect
	// InboundDisconnect tells the room a player's connection dropped.
	InboundDisconnect
)

// Inbound is one message on a room's ingress channel. Everything that
// touches room state flows through here so the tick goroutine stays the
// only writer.
type Inbound struct {
	Kind        InboundKind
	PlayerID    string
	Input       protocol.ClientInput
	LastEventID uint64
}

// Sink delivers encoded frames to a player's connection. Send must not
// block; implementations shed to a bounded per-connection queue and
// report false when the player has no live connection.
type Sink interface {
	Send(playerID string, frame []byte) bool
}
