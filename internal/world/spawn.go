package world

import (
	"math"

	"riftlane/server/internal/content"
)

// campState tracks one jungle camp between spawns. nextSpawn is the game
// time of the pending spawn, or negative while the camp is up.
type campState struct {
	def       *content.CampDef
	unit      *content.UnitDef
	alive     int
	nextSpawn float64
}

func (w *World) initSpawns() {
	cons := w.reg.Constants
	w.nextWaveAt = cons.FirstWaveSec
	for i := range w.mapDef.Camps {
		camp := &w.mapDef.Camps[i]
		unit, ok := w.reg.Unit(camp.UnitID)
		if !ok {
			continue
		}
		w.camps = append(w.camps, campState{
			def:       camp,
			unit:      unit,
			nextSpawn: camp.FirstSpawnSec,
		})
	}
}

// tickSpawns releases due minion waves and camp respawns.
func (w *World) tickSpawns() {
	if w.gameTime >= w.nextWaveAt {
		w.nextWaveAt += w.reg.Constants.WavePeriodSec
		for _, side := range []content.Side{content.SideBlue, content.SideRed} {
			for _, lane := range content.Lanes {
				w.spawnWave(side, lane)
			}
		}
	}
	for i := range w.camps {
		cs := &w.camps[i]
		if cs.nextSpawn >= 0 && w.gameTime >= cs.nextSpawn {
			cs.nextSpawn = -1
			w.spawnCamp(cs)
		}
	}
}

// laneWaypoints returns the lane's waypoints in the side's walking order.
// Lane data is stored blue to red; red minions walk it backwards.
func (w *World) laneWaypoints(side content.Side, lane content.Lane) []Vec2 {
	points := w.mapDef.Lanes[lane]
	out := make([]Vec2, len(points))
	if side == content.SideRed {
		for i, p := range points {
			out[len(points)-1-i] = fromPoint(p)
		}
	} else {
		for i, p := range points {
			out[i] = fromPoint(p)
		}
	}
	return out
}

func (w *World) spawnWave(side content.Side, lane content.Lane) {
	unit, ok := w.reg.Unit(w.reg.Constants.MinionUnitID)
	if !ok {
		return
	}
	waypoints := w.laneWaypoints(side, lane)
	if len(waypoints) == 0 {
		return
	}
	// File the wave behind its spawn point so the minions walk in a line
	// instead of stacking.
	back := Vec2{X: -1}
	if len(waypoints) > 1 {
		back = waypoints[0].Sub(waypoints[1]).Normalized()
	}
	for i := 0; i < w.reg.Constants.WaveSize; i++ {
		pos := Clamp(waypoints[0].Add(back.Scale(float64(i)*unit.Radius*2.5)), w.mapDef.Width, w.mapDef.Height)
		m := newMinion(w.allocID(), side, unit, lane, waypoints, pos)
		w.addEntity(m)
	}
}

func (w *World) spawnCamp(cs *campState) {
	center := fromPoint(cs.def.Pos)
	for i := 0; i < cs.def.Count; i++ {
		pos := center
		if i > 0 {
			angle := 2 * math.Pi * float64(i) / float64(cs.def.Count)
			offset := Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(cs.unit.Radius * 2.5)
			pos = Clamp(center.Add(offset), w.mapDef.Width, w.mapDef.Height)
		}
		j := newJungleMonster(w.allocID(), cs.unit, cs.def, pos)
		w.addEntity(j)
		cs.alive++
	}
}

// campMonsterDied decrements the camp population and arms the respawn
// timer once the camp is cleared.
func (w *World) campMonsterDied(campID string) {
	for i := range w.camps {
		cs := &w.camps[i]
		if cs.def.ID != campID {
			continue
		}
		if cs.alive > 0 {
			cs.alive--
		}
		if cs.alive == 0 && cs.nextSpawn < 0 {
			cs.nextSpawn = w.gameTime + cs.def.RespawnSec
		}
		return
	}
}
