package content

import "fmt"

// CampKind distinguishes ordinary jungle camps from the epic objectives.
type CampKind string

const (
	CampSmall  CampKind = "small"
	CampDragon CampKind = "dragon"
	CampBaron  CampKind = "baron"
)

// TowerSpot places one tower. Tier 1 is the outer tower; higher tiers are
// untargetable until the lane's lower tier has fallen.
type TowerSpot struct {
	Lane Lane  `yaml:"lane" json:"lane"`
	Tier int   `yaml:"tier" json:"tier"`
	Pos  Point `yaml:"pos" json:"pos"`
}

// InhibSpot places one inhibitor.
type InhibSpot struct {
	Lane Lane  `yaml:"lane" json:"lane"`
	Pos  Point `yaml:"pos" json:"pos"`
}

// TeamLayout holds one side's structures and spawn point.
type TeamLayout struct {
	Spawn      Point       `yaml:"spawn" json:"spawn"`
	Nexus      Point       `yaml:"nexus" json:"nexus"`
	Towers     []TowerSpot `yaml:"towers" json:"towers"`
	Inhibitors []InhibSpot `yaml:"inhibitors" json:"inhibitors"`
}

// CampDef places a jungle camp. The camp respawns RespawnSec after its last
// monster dies.
type CampDef struct {
	ID            string   `yaml:"id" json:"id"`
	Kind          CampKind `yaml:"kind" json:"kind"`
	UnitID        string   `yaml:"unitId" json:"unitId"`
	Pos           Point    `yaml:"pos" json:"pos"`
	Count         int      `yaml:"count" json:"count"`
	FirstSpawnSec float64  `yaml:"firstSpawnSec" json:"firstSpawnSec"`
	RespawnSec    float64  `yaml:"respawnSec" json:"respawnSec"`
}

// MapDef is the static geometry of a battleground.
type MapDef struct {
	ID     string  `yaml:"id" json:"id"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`

	// CellSize is the navigation grid resolution in world units.
	CellSize float64 `yaml:"cellSize" json:"cellSize"`

	Walls  []Rect `yaml:"walls,omitempty" json:"walls,omitempty"`
	Bushes []Rect `yaml:"bushes,omitempty" json:"bushes,omitempty"`

	// Lanes holds waypoints in blue-to-red walking order; red-side minions
	// walk them reversed.
	Lanes map[Lane][]Point `yaml:"lanes" json:"lanes"`

	Blue TeamLayout `yaml:"blue" json:"blue"`
	Red  TeamLayout `yaml:"red" json:"red"`

	Camps []CampDef `yaml:"camps,omitempty" json:"camps,omitempty"`
}

// Team returns the layout for a side.
func (m *MapDef) Team(side Side) TeamLayout {
	if side == SideRed {
		return m.Red
	}
	return m.Blue
}

// InBounds reports whether p lies inside the map rectangle.
func (m *MapDef) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= m.Width && p.Y <= m.Height
}

// BushAt returns the index of the bush containing p, or -1.
func (m *MapDef) BushAt(p Point) int {
	for i, b := range m.Bushes {
		if b.Contains(p) {
			return i
		}
	}
	return -1
}

func (m *MapDef) validate(units map[string]*UnitDef) error {
	if m.ID == "" {
		return fmt.Errorf("map with empty id")
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map %s: non-positive bounds", m.ID)
	}
	if m.CellSize <= 0 {
		return fmt.Errorf("map %s: cellSize must be positive", m.ID)
	}
	for _, lane := range Lanes {
		if len(m.Lanes[lane]) == 0 {
			return fmt.Errorf("map %s: lane %s has no waypoints", m.ID, lane)
		}
		for i, wp := range m.Lanes[lane] {
			if !m.InBounds(wp) {
				return fmt.Errorf("map %s: lane %s waypoint %d out of bounds", m.ID, lane, i)
			}
		}
	}
	for _, side := range []struct {
		name   string
		layout TeamLayout
	}{{"blue", m.Blue}, {"red", m.Red}} {
		if !m.InBounds(side.layout.Spawn) {
			return fmt.Errorf("map %s: %s spawn out of bounds", m.ID, side.name)
		}
		if !m.InBounds(side.layout.Nexus) {
			return fmt.Errorf("map %s: %s nexus out of bounds", m.ID, side.name)
		}
		for _, t := range side.layout.Towers {
			if !m.InBounds(t.Pos) {
				return fmt.Errorf("map %s: %s %s tier %d tower out of bounds", m.ID, side.name, t.Lane, t.Tier)
			}
			if t.Tier < 1 {
				return fmt.Errorf("map %s: %s tower tier %d invalid", m.ID, side.name, t.Tier)
			}
		}
		for _, inh := range side.layout.Inhibitors {
			if !m.InBounds(inh.Pos) {
				return fmt.Errorf("map %s: %s %s inhibitor out of bounds", m.ID, side.name, inh.Lane)
			}
		}
	}
	for _, camp := range m.Camps {
		if camp.ID == "" {
			return fmt.Errorf("map %s: camp with empty id", m.ID)
		}
		if _, ok := units[camp.UnitID]; !ok {
			return fmt.Errorf("map %s: camp %s references unknown unit %q", m.ID, camp.ID, camp.UnitID)
		}
		if !m.InBounds(camp.Pos) {
			return fmt.Errorf("map %s: camp %s out of bounds", m.ID, camp.ID)
		}
		if camp.Count < 1 {
			return fmt.Errorf("map %s: camp %s count must be at least 1", m.ID, camp.ID)
		}
		switch camp.Kind {
		case CampSmall, CampDragon, CampBaron:
		default:
			return fmt.Errorf("map %s: camp %s unknown kind %q", m.ID, camp.ID, camp.Kind)
		}
	}
	return nil
}
