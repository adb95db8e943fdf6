package world

import "riftlane/server/internal/content"

// fogSource is one vision emitter gathered for a team's sweep.
type fogSource struct {
	pos   Vec2
	sight float64
	bush  int
}

// recomputeFog rebuilds each team's visible-entity set. It runs once per
// tick after entity updates, so everything downstream (targeting checks,
// replication) reads a consistent view.
func (w *World) recomputeFog() {
	for _, side := range []content.Side{content.SideBlue, content.SideRed} {
		w.visible[side] = w.sweepVision(side)
	}
}

func (w *World) sweepVision(side content.Side) map[ID]struct{} {
	vis := make(map[ID]struct{}, len(w.entities))
	var sources []fogSource
	for _, e := range w.entities {
		b := e.base()
		if b.Side == side {
			vis[b.ID] = struct{}{}
			if !b.Dead && b.SightRange > 0 {
				sources = append(sources, fogSource{
					pos:   b.Pos,
					sight: b.SightRange,
					bush:  w.mapDef.BushAt(toPoint(b.Pos)),
				})
			}
			continue
		}
		if b.Type.structure() {
			// Structures never hide in the fog.
			vis[b.ID] = struct{}{}
		}
	}
	for _, e := range w.entities {
		b := e.base()
		if _, ok := vis[b.ID]; ok {
			continue
		}
		if hiddenFromEnemies(e) {
			continue
		}
		bush := w.mapDef.BushAt(toPoint(b.Pos))
		for _, src := range sources {
			if Dist(src.pos, b.Pos) > src.sight {
				continue
			}
			// Bush cover: only a source standing in the same bush
			// reveals an entity inside it.
			if bush >= 0 && src.bush != bush {
				continue
			}
			vis[b.ID] = struct{}{}
			break
		}
	}
	return vis
}

// hiddenFromEnemies reports whether the entity is invisible regardless of
// sight range. Traps never show; stealth wards and stealthed units hide
// until revealed by their own rules.
func hiddenFromEnemies(e Entity) bool {
	switch v := e.(type) {
	case *Trap:
		return true
	case *Ward:
		return v.stealthed
	}
	if a, ok := e.(afflictable); ok {
		return a.status().stealthed
	}
	return false
}

// Visible reports whether the entity is inside the side's current vision.
func (w *World) Visible(side content.Side, id ID) bool {
	set := w.visible[side]
	if set == nil {
		return false
	}
	_, ok := set[id]
	return ok
}

// VisibleIDs returns the side's current vision set. The map is rebuilt
// each tick; callers must not mutate it.
func (w *World) VisibleIDs(side content.Side) map[ID]struct{} {
	return w.visible[side]
}
