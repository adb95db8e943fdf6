// Package replication shapes the per-viewer outbound stream: delta
// compression against per-viewer baselines, interest-based inclusion
// cadence, and at-least-once delivery for reliable events. All state here
// is owned by one room goroutine; nothing locks.
package replication

import "riftlane/server/internal/world"

// Delta is one serializer emission. Removed deltas carry the STATE mask
// and no snapshot beyond identity.
type Delta struct {
	Snapshot world.Snapshot
	Mask     world.Mask
	Removed  bool
}

// baseline remembers the last snapshot prepared for a (viewer, entity)
// pair and the tick it was emitted.
type baseline struct {
	snap     world.Snapshot
	lastSent uint64
}

// Serializer computes per-viewer deltas. Baselines unmentioned for longer
// than staleTicks are dropped to bound memory per viewer; the entity is
// re-sent in full next time it appears.
type Serializer struct {
	staleTicks uint64
	viewers    map[string]map[world.ID]*baseline
}

// NewSerializer builds a serializer with the given staleness bound.
func NewSerializer(staleTicks int) *Serializer {
	if staleTicks <= 0 {
		staleTicks = 72
	}
	return &Serializer{
		staleTicks: uint64(staleTicks),
		viewers:    make(map[string]map[world.ID]*baseline),
	}
}

func (s *Serializer) viewer(id string) map[world.ID]*baseline {
	v, ok := s.viewers[id]
	if !ok {
		v = make(map[world.ID]*baseline)
		s.viewers[id] = v
	}
	return v
}

// Update diffs the prioritized snapshots against the viewer's baselines
// and returns the deltas to send. Entities with no baseline emit a full
// snapshot; unchanged entities emit nothing. visible is the complete
// visible-entity set for the viewer this tick; any baseline outside it is
// emitted as a removal and forgotten. Passing a nil visible set skips
// removal detection.
func (s *Serializer) Update(viewerID string, tick uint64, snaps []world.Snapshot, visible map[world.ID]struct{}) []Delta {
	v := s.viewer(viewerID)
	var out []Delta
	for i := range snaps {
		snap := &snaps[i]
		b, ok := v[snap.ID]
		if !ok {
			out = append(out, Delta{Snapshot: *snap, Mask: world.MaskAll})
			v[snap.ID] = &baseline{snap: *snap, lastSent: tick}
			continue
		}
		mask := world.Diff(&b.snap, snap)
		if mask == 0 {
			continue
		}
		out = append(out, Delta{Snapshot: *snap, Mask: mask})
		b.snap = *snap
		b.lastSent = tick
	}
	if visible != nil {
		for id, b := range v {
			if _, ok := visible[id]; ok {
				continue
			}
			gone := b.snap
			gone.IsDead = true
			out = append(out, Delta{Snapshot: gone, Mask: world.MaskState, Removed: true})
			delete(v, id)
		}
	}
	for id, b := range v {
		if tick-b.lastSent > s.staleTicks {
			delete(v, id)
		}
	}
	return out
}

// HasBaseline reports whether the viewer holds a baseline for the entity.
func (s *Serializer) HasBaseline(viewerID string, id world.ID) bool {
	_, ok := s.viewers[viewerID][id]
	return ok
}

// ClearPlayer wipes every baseline for the viewer; the next update
// re-sends full snapshots.
func (s *Serializer) ClearPlayer(viewerID string) {
	delete(s.viewers, viewerID)
}
