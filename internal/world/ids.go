package world

// ID identifies an entity within a single match. IDs are assigned
// sequentially starting at 1 and are never reused.
type ID uint64

// EntityType tags what kind of entity a snapshot describes.
type EntityType string

const (
	TypeChampion   EntityType = "champion"
	TypeMinion     EntityType = "minion"
	TypeJungle     EntityType = "jungle"
	TypeTower      EntityType = "tower"
	TypeInhibitor  EntityType = "inhibitor"
	TypeNexus      EntityType = "nexus"
	TypeProjectile EntityType = "projectile"
	TypeZone       EntityType = "zone"
	TypeTrap       EntityType = "trap"
	TypeWard       EntityType = "ward"
)

// structure reports whether the type is a fixed map structure. Structures
// are visible to both teams at all times.
func (t EntityType) structure() bool {
	switch t {
	case TypeTower, TypeInhibitor, TypeNexus:
		return true
	}
	return false
}
