package world

import "riftlane/server/internal/content"

// onChampionDeath settles a kill: gold and experience for the killer,
// assist gold for recent attackers, first blood and ace bookkeeping.
func (w *World) onChampionDeath(victim *Champion, killerID ID) {
	cons := w.reg.Constants
	killer, _ := w.entity(killerID).(*Champion)

	var killerChampID ID
	if killer != nil && killer.Side != victim.Side {
		killerChampID = killer.ID
	} else {
		killer = nil
	}
	assists := victim.recentAttackers(w.gameTime, cons.AssistWindowSec, killerChampID)

	gold := 0
	if killer != nil {
		gold = cons.KillGold
		if !w.firstBloodDone {
			w.firstBloodDone = true
			gold += cons.FirstBloodGold
			w.emit(EventFirstBlood, KillPayload{
				VictimID: victim.ID,
				KillerID: killer.ID,
			})
		}
		killer.addGold(gold)
		killer.kills++
		killer.gainXP(cons.ChampionKillXPBase+cons.ChampionKillXPPerLevel*float64(victim.level), w)
		w.firePassive(killer.ID, content.TriggerOnKill, triggerPayload{target: victim})
	}
	for _, id := range assists {
		if a, ok := w.entity(id).(*Champion); ok && a.Side != victim.Side {
			a.addGold(cons.AssistGold)
			a.assists++
		}
	}

	w.emit(EventChampionKill, KillPayload{
		VictimID:  victim.ID,
		KillerID:  killerID,
		AssistIDs: assists,
		Gold:      gold,
	})
	w.checkAce(victim.Side)
}

// checkAce fires when every champion on the side is dead.
func (w *World) checkAce(side content.Side) {
	any := false
	for _, e := range w.entities {
		c, ok := e.(*Champion)
		if !ok || c.Side != side {
			continue
		}
		any = true
		if !c.Dead {
			return
		}
	}
	if any {
		w.emit(EventAce, AcePayload{Side: enemySide(side)})
	}
}

// onMinionDeath pays the last hitter and spreads experience to enemy
// champions near the corpse.
func (w *World) onMinionDeath(m *Minion, killerID ID) {
	if killer, ok := w.entity(killerID).(*Champion); ok && killer.Side != m.Side {
		killer.addGold(m.def.Gold)
		killer.cs++
	}
	w.shareXP(enemySide(m.Side), m.Pos, m.def.XP)
	w.emit(EventMinionKilled, MinionKillPayload{
		VictimID: m.ID,
		KillerID: killerID,
	})
}

// onJungleDeath pays the killer, spreads experience to the killing team,
// and schedules the camp respawn. Epic camps pay their bounty to every
// champion on the killing side.
func (w *World) onJungleDeath(j *JungleMonster, killerID ID) {
	cons := w.reg.Constants
	killer, _ := w.entity(killerID).(*Champion)
	rewardSide := content.SideNeutral
	if src := w.entity(killerID); src != nil {
		rewardSide = src.base().Side
	}

	if killer != nil {
		killer.addGold(j.def.Gold)
		killer.cs++
	}
	if rewardSide == content.SideBlue || rewardSide == content.SideRed {
		w.shareXP(rewardSide, j.Pos, j.def.XP)
	}

	switch j.kind {
	case content.CampDragon:
		w.teamGold(rewardSide, cons.DragonGold)
		w.emit(EventDragonKilled, ObjectivePayload{EntityID: j.ID, Side: rewardSide, KillerID: killerID})
	case content.CampBaron:
		w.teamGold(rewardSide, cons.BaronGold)
		w.emit(EventBaronKilled, ObjectivePayload{EntityID: j.ID, Side: rewardSide, KillerID: killerID})
	}
	w.campMonsterDied(j.campID)
}

// onTowerDeath pays the killer and the whole attacking team.
func (w *World) onTowerDeath(t *Tower, killerID ID) {
	cons := w.reg.Constants
	if killer, ok := w.entity(killerID).(*Champion); ok && killer.Side != t.Side {
		killer.addGold(cons.TowerGoldKiller)
	}
	w.teamGold(enemySide(t.Side), cons.TowerGoldTeam)
	w.emit(EventTowerDestroyed, StructurePayload{
		EntityID: t.ID,
		Side:     t.Side,
		Lane:     t.lane,
		Tier:     t.tier,
		KillerID: killerID,
	})
}

// shareXP grants the full amount to each of the side's living champions
// within the share radius.
func (w *World) shareXP(side content.Side, pos Vec2, amount float64) {
	if amount <= 0 {
		return
	}
	radius := w.reg.Constants.XPRadius
	for _, e := range w.entities {
		c, ok := e.(*Champion)
		if !ok || c.Side != side || c.Dead {
			continue
		}
		if Dist(c.Pos, pos) <= radius {
			c.gainXP(amount, w)
		}
	}
}

// teamGold pays every champion on the side, dead or alive.
func (w *World) teamGold(side content.Side, amount int) {
	if amount <= 0 || (side != content.SideBlue && side != content.SideRed) {
		return
	}
	for _, e := range w.entities {
		if c, ok := e.(*Champion); ok && c.Side == side {
			c.addGold(amount)
		}
	}
}
