package world

import "riftlane/server/internal/content"

// Entity is the contract every simulated object implements. The world
// drives entities only through this surface; per-type behavior lives on
// the concrete structs. The unexported accessor seals the interface to
// this package.
type Entity interface {
	base() *Base

	// Update advances the entity by one fixed step.
	Update(dt float64, w *World)

	// TakeDamage applies typed damage after resistances and shields and
	// returns the amount removed from shields plus health.
	TakeDamage(amount float64, typ content.DamageType, sourceID ID, w *World) float64

	// Snapshot renders the entity's serializable state.
	Snapshot() Snapshot
}

// Base is the state shared by every entity variant. Concrete types embed
// it and get the sealed accessor for free.
type Base struct {
	ID         ID
	Type       EntityType
	Side       content.Side
	Pos        Vec2
	Health     float64
	MaxHealth  float64
	Radius     float64
	SightRange float64
	Dead       bool

	remove bool
	forced *forcedMove
}

func (b *Base) base() *Base { return b }

// MarkRemove flags the entity for the reap phase at the end of the tick.
func (b *Base) MarkRemove() { b.remove = true }

// Alive reports whether the entity still participates in the simulation.
func (b *Base) Alive() bool { return !b.Dead && !b.remove }

func (b *Base) snapshot() Snapshot {
	return Snapshot{
		ID:        b.ID,
		Type:      b.Type,
		Side:      b.Side,
		X:         b.Pos.X,
		Y:         b.Pos.Y,
		Health:    b.Health,
		MaxHealth: b.MaxHealth,
		IsDead:    b.Dead,
	}
}
