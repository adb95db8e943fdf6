package world

import (
	"fmt"

	"riftlane/server/internal/content"
)

// World is the authoritative simulation state for one match. It is not
// safe for concurrent use; the owning room goroutine drives it.
type World struct {
	reg    *content.Registry
	mapDef *content.MapDef
	nav    *navGrid

	entities []Entity
	index    map[ID]Entity
	nextID   ID

	tick     uint64
	gameTime float64

	events      []Event
	nextEventID uint64

	visible map[content.Side]map[ID]struct{}

	nextWaveAt float64
	camps      []campState

	firstBloodDone bool
	ended          bool
	winner         content.Side
}

// New builds a world on the named map with both teams' structures placed.
// Champions join afterwards through AddChampion.
func New(reg *content.Registry, mapID string) (*World, error) {
	mapDef, ok := reg.Map(mapID)
	if !ok {
		return nil, fmt.Errorf("world: unknown map %q", mapID)
	}
	w := &World{
		reg:     reg,
		mapDef:  mapDef,
		nav:     newNavGrid(mapDef),
		index:   make(map[ID]Entity),
		visible: make(map[content.Side]map[ID]struct{}),
	}
	w.placeStructures()
	w.initSpawns()
	w.recomputeFog()
	return w, nil
}

func (w *World) placeStructures() {
	cons := w.reg.Constants
	for _, side := range []content.Side{content.SideBlue, content.SideRed} {
		layout := w.mapDef.Team(side)
		for _, spot := range layout.Towers {
			w.addEntity(newTower(w.allocID(), side, spot, cons.TowerStats, cons.TowerSight))
		}
		for _, spot := range layout.Inhibitors {
			w.addEntity(newInhibitor(w.allocID(), side, spot, cons.InhibitorStats, cons.TowerSight))
		}
		w.addEntity(newNexus(w.allocID(), side, layout.Nexus, cons.NexusStats, cons.TowerSight))
	}
}

// AddChampion spawns a player's champion at the side's fountain.
func (w *World) AddChampion(playerID, championID string, side content.Side) (*Champion, error) {
	def, ok := w.reg.Champion(championID)
	if !ok {
		return nil, fmt.Errorf("world: unknown champion %q", championID)
	}
	c := newChampion(w.allocID(), side, playerID, def, w.reg, w.spawnPoint(side))
	w.addEntity(c)
	w.recomputeFog()
	return c, nil
}

func (w *World) allocID() ID {
	w.nextID++
	return w.nextID
}

func (w *World) addEntity(e Entity) {
	w.entities = append(w.entities, e)
	w.index[e.base().ID] = e
}

// entity returns the live entity with the given id, or nil.
func (w *World) entity(id ID) Entity {
	if id == 0 {
		return nil
	}
	return w.index[id]
}

func (w *World) spawnPoint(side content.Side) Vec2 {
	return fromPoint(w.mapDef.Team(side).Spawn)
}

// Champion returns the champion entity with the given id, or nil.
func (w *World) Champion(id ID) *Champion {
	c, _ := w.entity(id).(*Champion)
	return c
}

// ChampionByPlayer returns the champion owned by the player, or nil.
func (w *World) ChampionByPlayer(playerID string) *Champion {
	for _, e := range w.entities {
		if c, ok := e.(*Champion); ok && c.PlayerID == playerID {
			return c
		}
	}
	return nil
}

// nearestEnemyUnit finds the closest living enemy champion, minion or
// monster within range that the side can currently see. Neutral monsters
// are skipped; they are attacked deliberately, never acquired.
func (w *World) nearestEnemyUnit(side content.Side, pos Vec2, rng float64) Entity {
	var best Entity
	bestDist := 0.0
	for _, e := range w.entities {
		b := e.base()
		if b.Dead || !unitType(b.Type) || b.Side == side || b.Side == content.SideNeutral {
			continue
		}
		if (side == content.SideBlue || side == content.SideRed) && !w.Visible(side, b.ID) {
			continue
		}
		d := Dist(pos, b.Pos)
		if d > rng {
			continue
		}
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// Tick advances the simulation one fixed step. Entities update in
// insertion order; entities spawned during the tick first update on the
// next one. Events emitted during the tick stay buffered until
// DrainEvents.
func (w *World) Tick(dt float64) {
	if w.ended {
		return
	}
	w.tick++
	w.gameTime += dt

	w.tickSpawns()

	n := len(w.entities)
	for i := 0; i < n; i++ {
		w.entities[i].Update(dt, w)
	}
	w.resolveForcedMovement(dt)
	w.recomputeFog()
	w.reap()
}

// reap drops entities marked for removal from the slice and the index.
func (w *World) reap() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.base().remove {
			delete(w.index, e.base().ID)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
}

// emit appends an event with the next match-wide event id.
func (w *World) emit(kind EventKind, payload any) {
	w.nextEventID++
	w.events = append(w.events, Event{
		ID:      w.nextEventID,
		Kind:    kind,
		Tick:    w.tick,
		Payload: payload,
	})
}

// DrainEvents returns the events emitted since the last drain.
func (w *World) DrainEvents() []Event {
	out := w.events
	w.events = nil
	return out
}

func (w *World) endGame(winner content.Side) {
	if w.ended {
		return
	}
	w.ended = true
	w.winner = winner
	w.emit(EventGameEnd, GameEndPayload{Winner: winner, Duration: w.gameTime})
}

// CurrentTick returns the number of completed ticks.
func (w *World) CurrentTick() uint64 { return w.tick }

// GameTime returns elapsed simulation time in seconds.
func (w *World) GameTime() float64 { return w.gameTime }

// Ended reports whether the nexus has fallen and which side won.
func (w *World) Ended() (bool, content.Side) { return w.ended, w.winner }

// Snapshots captures the wire state of every live entity in insertion
// order. Callers filter per viewer with VisibleIDs.
func (w *World) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(w.entities))
	for _, e := range w.entities {
		out = append(out, e.Snapshot())
	}
	return out
}

// Map exposes the static map definition.
func (w *World) Map() *content.MapDef { return w.mapDef }
