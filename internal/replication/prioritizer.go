package replication

import "riftlane/server/internal/world"

// Priority classifies how often an entity is replicated to a viewer.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// cadence returns the minimum ticks between inclusions for the class.
func (p Priority) cadence() uint64 {
	switch p {
	case PriorityCritical:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 5
	default:
		return 15
	}
}

// PrioritizerConfig tunes the distance bands and the staleness bound.
type PrioritizerConfig struct {
	CriticalDistance      float64
	HighDistance          float64
	MediumDistance        float64
	MaxTicksWithoutUpdate int
}

// DefaultPrioritizerConfig returns the stock bands: 500/1000/1500 map
// units and a one-second force-include bound at 30 Hz.
func DefaultPrioritizerConfig() PrioritizerConfig {
	return PrioritizerConfig{
		CriticalDistance:      500,
		HighDistance:          1000,
		MediumDistance:        1500,
		MaxTicksWithoutUpdate: 30,
	}
}

// track is the per-(viewer, entity) inclusion record.
type track struct {
	lastIncluded uint64
	lastSeen     uint64
	priority     Priority
}

// Prioritizer decides which visible entities enter a viewer's update each
// tick. Champions and structures always rate critical; everything else is
// banded by distance from the viewer's champion.
type Prioritizer struct {
	cfg     PrioritizerConfig
	viewers map[string]map[world.ID]*track
}

// NewPrioritizer builds a prioritizer. Zero config fields take defaults.
func NewPrioritizer(cfg PrioritizerConfig) *Prioritizer {
	def := DefaultPrioritizerConfig()
	if cfg.CriticalDistance <= 0 {
		cfg.CriticalDistance = def.CriticalDistance
	}
	if cfg.HighDistance <= 0 {
		cfg.HighDistance = def.HighDistance
	}
	if cfg.MediumDistance <= 0 {
		cfg.MediumDistance = def.MediumDistance
	}
	if cfg.MaxTicksWithoutUpdate <= 0 {
		cfg.MaxTicksWithoutUpdate = def.MaxTicksWithoutUpdate
	}
	return &Prioritizer{cfg: cfg, viewers: make(map[string]map[world.ID]*track)}
}

func (p *Prioritizer) classify(snap *world.Snapshot, viewerPos world.Vec2, hasViewer bool) Priority {
	switch snap.Type {
	case world.TypeChampion, world.TypeTower, world.TypeInhibitor, world.TypeNexus:
		return PriorityCritical
	}
	if !hasViewer {
		return PriorityCritical
	}
	d := world.Dist(viewerPos, world.Vec2{X: snap.X, Y: snap.Y})
	if snap.Type == world.TypeProjectile {
		if d < p.cfg.CriticalDistance {
			return PriorityCritical
		}
		return PriorityHigh
	}
	switch {
	case d < p.cfg.CriticalDistance:
		return PriorityCritical
	case d < p.cfg.HighDistance:
		return PriorityHigh
	case d < p.cfg.MediumDistance:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Select returns the subset of snaps to replicate to the viewer this
// tick. hasViewer is false when the viewer has no live champion, in which
// case every visible entity is included. Entities new to the viewer are
// always included.
func (p *Prioritizer) Select(viewerID string, tick uint64, viewerPos world.Vec2, hasViewer bool, snaps []world.Snapshot) []world.Snapshot {
	v, ok := p.viewers[viewerID]
	if !ok {
		v = make(map[world.ID]*track)
		p.viewers[viewerID] = v
	}
	out := make([]world.Snapshot, 0, len(snaps))
	for i := range snaps {
		snap := &snaps[i]
		prio := p.classify(snap, viewerPos, hasViewer)
		t, known := v[snap.ID]
		if !known {
			t = &track{}
			v[snap.ID] = t
		}
		t.lastSeen = tick
		t.priority = prio

		include := !known || !hasViewer
		if !include {
			since := tick - t.lastIncluded
			include = since >= prio.cadence() || since > uint64(p.cfg.MaxTicksWithoutUpdate)
		}
		if include {
			t.lastIncluded = tick
			out = append(out, *snap)
		}
	}
	// Tracks for entities that left vision long ago expire so the next
	// sighting counts as new-to-viewer again.
	horizon := uint64(p.cfg.MaxTicksWithoutUpdate) * 4
	for id, t := range v {
		if tick-t.lastSeen > horizon {
			delete(v, id)
		}
	}
	return out
}

// ClearPlayer drops all tracking for the viewer.
func (p *Prioritizer) ClearPlayer(viewerID string) {
	delete(p.viewers, viewerID)
}
