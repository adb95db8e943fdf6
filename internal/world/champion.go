package world

import (
	"math"

	"riftlane/server/internal/content"
)

// Scheduler action tags.
const (
	actionAttack  = "attack"
	actionAbility = "ability"
)

// itemSlot is one inventory slot with its passive runtime, when the item
// carries one.
type itemSlot struct {
	def     *content.ItemDef
	passive passiveRuntime
}

// damageRecord remembers an enemy champion's hit for assist credit.
type damageRecord struct {
	attackerID ID
	at         float64
}

// Champion is a player-controlled entity.
type Champion struct {
	Base
	statusHolder

	def *content.ChampionDef
	reg *content.Registry

	PlayerID string

	// Orders.
	moveTarget    Vec2
	hasMoveTarget bool
	attackMove    bool
	attackTarget  ID
	followTarget  ID
	path          []Vec2
	pathIndex     int

	// Progression.
	resource    float64
	maxResource float64
	level       int
	xp          float64
	skillPoints int

	// Combat.
	stats        statBlock
	shields      shieldList
	attackCD     float64
	combatTimer  float64
	attackSched  Scheduler
	abilitySched Scheduler
	abilities    [4]abilityRuntime
	passive      passiveRuntime

	// Economy.
	gold            float64
	items           [6]itemSlot
	trinketCharges  int
	trinketRecharge float64

	kills, deaths, assists, cs int

	respawnTimer float64

	recalling      bool
	recallProgress float64

	damageLog []damageRecord

	// Stamped each update so snapshots can reference tick time.
	tickNow uint64
	dtNow   float64
}

func slotIndex(slot content.Slot) int {
	switch slot {
	case content.SlotQ:
		return 0
	case content.SlotW:
		return 1
	case content.SlotE:
		return 2
	case content.SlotR:
		return 3
	}
	return -1
}

func (c *Champion) ability(slot content.Slot) *abilityRuntime {
	i := slotIndex(slot)
	if i < 0 {
		return nil
	}
	return &c.abilities[i]
}

func newChampion(id ID, side content.Side, playerID string, def *content.ChampionDef, reg *content.Registry, pos Vec2) *Champion {
	c := &Champion{
		Base: Base{
			ID:         id,
			Type:       TypeChampion,
			Side:       side,
			Pos:        pos,
			Radius:     def.Radius,
			SightRange: def.SightRange,
		},
		def:      def,
		reg:      reg,
		PlayerID: playerID,
		level:    1,
		stats:    newStatBlock(def.Base, def.Growth),
	}
	c.resetStatus()
	for i, slot := range content.Slots {
		if abDef, ok := reg.ChampionAbility(def.ID, slot); ok {
			c.abilities[i] = abilityRuntime{def: abDef}
		}
	}
	if p, ok := reg.Passive(def.PassiveID); ok {
		c.passive = newPassiveRuntime(p)
	}
	cons := reg.Constants
	c.gold = float64(cons.StartingGold)
	c.skillPoints = 1
	c.trinketCharges = cons.TrinketMaxCharges
	c.trinketRecharge = cons.TrinketRechargeSec
	eff := c.stats.effective()
	c.MaxHealth = eff.MaxHealth
	c.Health = eff.MaxHealth
	c.maxResource = eff.MaxResource
	c.resource = eff.MaxResource
	c.dtNow = 1.0 / 30
	return c
}

// effectiveStats returns the champion's current totals.
func (c *Champion) effectiveStats(_ *World) content.Stats {
	return c.stats.effective()
}

// refreshStats recomputes totals and reconciles health and resource pools
// with their new maxima.
func (c *Champion) refreshStats(_ *World) {
	eff := c.stats.effective()
	c.MaxHealth = eff.MaxHealth
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	c.maxResource = eff.MaxResource
	if c.resource > c.maxResource {
		c.resource = c.maxResource
	}
}

// moveSpeed is the effective speed after slows.
func (c *Champion) moveSpeed() float64 {
	return c.stats.effective().MoveSpeed * c.slowFactor
}

func (c *Champion) enterCombat(_ *World) {
	c.combatTimer = c.reg.Constants.CombatDurationSec
}

func (c *Champion) inCombat() bool { return c.combatTimer > 0 }

// Update advances one tick of champion logic: timers, regen, recall,
// passives, orders, and the two action schedulers.
func (c *Champion) Update(dt float64, w *World) {
	c.tickNow = w.CurrentTick()
	c.dtNow = dt

	if c.Dead {
		c.respawnTimer -= dt
		if c.respawnTimer <= 0 {
			c.respawn(w)
		}
		return
	}

	for i := range c.abilities {
		c.abilities[i].tick(dt)
	}
	if c.attackCD > 0 {
		c.attackCD -= dt
	}
	if c.combatTimer > 0 {
		c.combatTimer -= dt
	}
	cons := c.reg.Constants
	if c.trinketCharges < cons.TrinketMaxCharges {
		c.trinketRecharge -= dt
		if c.trinketRecharge <= 0 {
			c.trinketCharges++
			c.trinketRecharge = cons.TrinketRechargeSec
		}
	}

	if c.stats.tickModifiers(dt) {
		c.refreshStats(w)
	}
	c.tickEffects(dt, c, w)
	if c.Dead {
		return // a damage-over-time tick can kill
	}
	c.shields.tick(dt)
	c.passive.tick(dt, c, w)
	for i := range c.items {
		if c.items[i].def != nil {
			c.items[i].passive.tick(dt, c, w)
		}
	}

	// Losing the attack or cast gate voids wound-up actions.
	if !c.canAttack {
		c.attackSched.Cancel(actionAttack)
	}
	if !c.canCast {
		c.abilitySched.Cancel(actionAbility)
	}

	eff := c.stats.effective()
	c.Health = math.Min(c.Health+eff.HealthRegen*dt, c.MaxHealth)
	c.resource = math.Min(c.resource+eff.ResourceRegen*dt, c.maxResource)
	if w.gameTime >= cons.GoldTrickleStartSec {
		c.gold += cons.GoldTricklePerSec * dt
	}

	if c.recalling {
		c.recallProgress += dt
		if c.recallProgress >= cons.RecallChannelSec {
			c.finishRecall(w)
		}
	} else if c.forced == nil {
		c.act(dt, w)
	}

	c.attackSched.Advance(dt, w)
	c.abilitySched.Advance(dt, w)
}

// act runs the standing order: attack a target, follow an ally, or move.
func (c *Champion) act(dt float64, w *World) {
	if c.attackTarget != 0 {
		target := w.entity(c.attackTarget)
		if target == nil || target.base().Dead || target.base().Side == c.Side {
			c.attackTarget = 0
		} else {
			c.engage(dt, w, target)
			return
		}
	}
	if c.followTarget != 0 {
		ally := w.entity(c.followTarget)
		if ally == nil || ally.base().Dead {
			c.followTarget = 0
		} else if c.canMove {
			if Dist(c.Pos, ally.base().Pos) > c.Radius+ally.base().Radius+50 {
				c.Pos, _ = moveToward(c.Pos, ally.base().Pos, c.moveSpeed(), dt)
			}
			return
		}
	}
	if c.hasMoveTarget {
		if c.attackMove {
			if enemy := w.nearestEnemyUnit(c.Side, c.Pos, c.SightRange); enemy != nil {
				c.attackTarget = enemy.base().ID
				return
			}
		}
		if c.canMove {
			c.advancePath(dt)
		}
	}
}

// engage attacks the target when in range, otherwise chases it.
func (c *Champion) engage(dt float64, w *World, target Entity) {
	tb := target.base()
	eff := c.stats.effective()
	if Dist(c.Pos, tb.Pos) <= eff.AttackRange+c.Radius+tb.Radius {
		if c.canAttack && c.attackCD <= 0 {
			c.startAttack(w, target)
		}
		return
	}
	if c.canMove {
		c.Pos, _ = moveToward(c.Pos, tb.Pos, c.moveSpeed(), dt)
	}
}

// startAttack begins a basic attack: cooldown from attack speed, a windup
// event for clients, and a deferred damage action at the keyframe that
// re-validates before landing.
func (c *Champion) startAttack(w *World, target Entity) {
	eff := c.stats.effective()
	as := eff.AttackSpeed
	if as <= 0 {
		as = 0.1
	}
	c.attackCD = 1 / as
	c.enterCombat(w)
	c.breakStealth()

	targetID := target.base().ID
	w.emit(EventAttackWindup, WindupPayload{
		AttackerID: c.ID,
		TargetID:   targetID,
		Duration:   c.def.AttackAnimation,
	})
	ad := eff.AttackDamage
	leeway := c.reg.Constants.AttackRangeLeeway
	attackRange := eff.AttackRange
	c.attackSched.Schedule(actionAttack, c.def.AttackKeyframe, func(w *World) {
		victim := w.entity(targetID)
		if victim == nil || victim.base().Dead {
			return
		}
		vb := victim.base()
		if Dist(c.Pos, vb.Pos) > attackRange+leeway+c.Radius+vb.Radius {
			return
		}
		dealt := victim.TakeDamage(ad, content.DamagePhysical, c.ID, w)
		payload := triggerPayload{target: victim, damage: dealt, damageType: content.DamagePhysical}
		w.firePassive(c.ID, content.TriggerOnAttack, payload)
		w.firePassive(c.ID, content.TriggerOnHit, payload)
	})
}

// advancePath walks the computed waypoints toward the move target.
func (c *Champion) advancePath(dt float64) {
	if c.pathIndex < len(c.path) {
		var arrived bool
		c.Pos, arrived = moveToward(c.Pos, c.path[c.pathIndex], c.moveSpeed(), dt)
		if arrived {
			c.pathIndex++
		}
	}
	if c.pathIndex >= len(c.path) {
		c.hasMoveTarget = false
		c.attackMove = false
		c.path = nil
		c.pathIndex = 0
	}
}

// SetMoveTarget orders movement to pos, clearing unit targets.
func (c *Champion) SetMoveTarget(w *World, pos Vec2, attackMove bool) {
	pos = Clamp(pos, w.mapDef.Width, w.mapDef.Height)
	c.moveTarget = pos
	c.hasMoveTarget = true
	c.attackMove = attackMove
	c.attackTarget = 0
	c.followTarget = 0
	c.path = w.nav.FindPath(c.Pos, pos)
	c.pathIndex = 0
}

// SetUnitTarget orders an attack on an enemy or a follow on an ally.
func (c *Champion) SetUnitTarget(w *World, targetID ID) {
	target := w.entity(targetID)
	if target == nil || target.base().Dead || targetID == c.ID {
		return
	}
	c.hasMoveTarget = false
	c.attackMove = false
	c.path = nil
	if target.base().Side == c.Side {
		c.followTarget = targetID
		c.attackTarget = 0
	} else {
		c.attackTarget = targetID
		c.followTarget = 0
	}
}

// Stop clears every standing order.
func (c *Champion) Stop() {
	c.hasMoveTarget = false
	c.attackMove = false
	c.attackTarget = 0
	c.followTarget = 0
	c.path = nil
	c.pathIndex = 0
}

// StartRecall begins the recall channel. Refused while dead or in combat.
func (c *Champion) StartRecall(w *World) bool {
	if c.Dead || c.inCombat() || c.recalling {
		return false
	}
	c.recalling = true
	c.recallProgress = 0
	c.Stop()
	w.emit(EventRecallStarted, RecallPayload{EntityID: c.ID})
	return true
}

// CancelRecall interrupts an active recall.
func (c *Champion) CancelRecall(w *World) {
	if !c.recalling {
		return
	}
	c.recalling = false
	c.recallProgress = 0
	w.emit(EventRecallCanceled, RecallPayload{EntityID: c.ID})
}

func (c *Champion) finishRecall(w *World) {
	c.recalling = false
	c.recallProgress = 0
	c.Pos = w.spawnPoint(c.Side)
	c.Stop()
	w.emit(EventRecallFinished, RecallPayload{EntityID: c.ID})
}

// PlaceWard spends a trinket charge to plant a ward at pos.
func (c *Champion) PlaceWard(w *World, pos Vec2, kind content.WardKind) bool {
	cons := c.reg.Constants
	if c.Dead || c.trinketCharges <= 0 {
		return false
	}
	if !w.mapDef.InBounds(toPoint(pos)) {
		return false
	}
	if Dist(c.Pos, pos) > cons.WardPlaceRange {
		return false
	}
	if c.trinketCharges == cons.TrinketMaxCharges {
		c.trinketRecharge = cons.TrinketRechargeSec
	}
	c.trinketCharges--
	w.spawnWard(c.ID, c.Side, pos, kind)
	return true
}

// BuyItem purchases into the first empty slot.
func (c *Champion) BuyItem(w *World, itemID string) bool {
	def, ok := c.reg.Item(itemID)
	if !ok || c.Dead {
		return false
	}
	if def.Unique {
		for i := range c.items {
			if c.items[i].def != nil && c.items[i].def.ID == itemID {
				return false
			}
		}
	}
	slot := -1
	for i := range c.items {
		if c.items[i].def == nil {
			slot = i
			break
		}
	}
	if slot < 0 || int(c.gold) < def.Cost {
		return false
	}
	c.gold -= float64(def.Cost)
	c.items[slot].def = def
	if p, ok := c.reg.Passive(def.PassiveID); ok && def.PassiveID != "" {
		c.items[slot].passive = newPassiveRuntime(p)
	} else {
		c.items[slot].passive = passiveRuntime{}
	}
	c.syncItemStats(w)
	w.emit(EventItemBought, ItemPayload{EntityID: c.ID, ItemID: itemID, Gold: def.Cost})
	return true
}

// SellItem refunds part of the item's cost and empties the slot.
func (c *Champion) SellItem(w *World, slot int) bool {
	if slot < 0 || slot >= len(c.items) || c.items[slot].def == nil {
		return false
	}
	def := c.items[slot].def
	refund := int(float64(def.Cost) * c.reg.Constants.SellRefund)
	c.gold += float64(refund)
	c.items[slot] = itemSlot{}
	c.syncItemStats(w)
	w.emit(EventItemSold, ItemPayload{EntityID: c.ID, ItemID: def.ID, Gold: refund})
	return true
}

func (c *Champion) syncItemStats(w *World) {
	var sum content.Stats
	for i := range c.items {
		if c.items[i].def != nil {
			sum = sum.Add(c.items[i].def.Stats)
		}
	}
	c.stats.setItemStats(sum)
	c.refreshStats(w)
}

// gainXP adds experience and resolves any level ups.
func (c *Champion) gainXP(amount float64, w *World) {
	cons := c.reg.Constants
	if c.level >= cons.LevelCap {
		return
	}
	c.xp += amount
	for c.level < cons.LevelCap {
		need := cons.XPToNext(c.level)
		if need <= 0 || c.xp < need {
			break
		}
		c.xp -= need
		c.level++
		c.skillPoints++
		c.stats.setLevel(c.level)
		c.refreshStats(w)
		w.emit(EventLevelUp, LevelUpPayload{EntityID: c.ID, Level: c.level})
	}
}

func (c *Champion) addGold(n int) {
	c.gold += float64(n)
}

// TakeDamage applies resistances and shields, interrupts recall, records
// assist credit, and resolves death.
func (c *Champion) TakeDamage(amount float64, typ content.DamageType, sourceID ID, w *World) float64 {
	if c.Dead || amount <= 0 {
		return 0
	}
	eff := c.stats.effective()
	reduced := reduceDamage(amount, typ, eff.Armor, eff.MagicResist)
	left := c.shields.absorb(reduced)
	healthLoss := math.Min(left, c.Health)
	c.Health -= healthLoss
	applied := (reduced - left) + healthLoss
	c.enterCombat(w)
	c.CancelRecall(w)

	if src, ok := w.entity(sourceID).(*Champion); ok && src.Side != c.Side {
		c.damageLog = append(c.damageLog, damageRecord{attackerID: src.ID, at: w.gameTime})
		w.notifyTowerAggro(c.Side, sourceID)
	}
	w.firePassive(c.ID, content.TriggerOnTakeDamage, triggerPayload{
		damage:     applied,
		damageType: typ,
		sourceID:   sourceID,
	})
	if c.Health/c.MaxHealth <= lowHealthFraction(c) {
		w.firePassive(c.ID, content.TriggerOnLowHealth, triggerPayload{
			damage:     applied,
			damageType: typ,
			sourceID:   sourceID,
		})
	}
	if c.Health <= 0 {
		c.die(w, sourceID)
	}
	return applied
}

// lowHealthFraction picks the champion passive's threshold, defaulting to
// 30% when no passive declares one.
func lowHealthFraction(c *Champion) float64 {
	if c.passive.def != nil && c.passive.def.HealthThreshold > 0 {
		return c.passive.def.HealthThreshold
	}
	return 0.3
}

func (c *Champion) die(w *World, killerID ID) {
	c.Dead = true
	c.Health = 0
	c.Stop()
	c.forced = nil
	c.recalling = false
	c.recallProgress = 0
	c.purgeEffects()
	c.stats.clearTimedModifiers()
	c.shields.clear()
	c.attackSched.Clear()
	c.abilitySched.Clear()
	c.deaths++
	c.respawnTimer = c.reg.Constants.RespawnSec(c.level)
	c.refreshStats(w)
	w.onChampionDeath(c, killerID)
	c.damageLog = nil
}

func (c *Champion) respawn(w *World) {
	c.Dead = false
	c.respawnTimer = 0
	c.Pos = w.spawnPoint(c.Side)
	c.resetStatus()
	c.refreshStats(w)
	c.Health = c.MaxHealth
	c.resource = c.maxResource
	c.combatTimer = 0
}

// recentAttackers lists enemy champions who damaged this champion within
// the assist window, excluding the killer.
func (c *Champion) recentAttackers(now, window float64, killerID ID) []ID {
	var out []ID
	seen := map[ID]struct{}{killerID: {}}
	for _, rec := range c.damageLog {
		if now-rec.at > window {
			continue
		}
		if _, dup := seen[rec.attackerID]; dup {
			continue
		}
		seen[rec.attackerID] = struct{}{}
		out = append(out, rec.attackerID)
	}
	return out
}

func (c *Champion) Snapshot() Snapshot {
	s := c.snapshot()
	s.ChampionID = c.def.ID
	s.PlayerID = c.PlayerID
	s.Resource = c.resource
	s.MaxResource = c.maxResource
	s.Level = c.level
	s.Experience = int(c.xp)
	s.ExperienceToNext = int(c.reg.Constants.XPToNext(c.level))
	s.SkillPoints = c.skillPoints
	for i := range c.abilities {
		s.Abilities[i] = c.abilities[i].state()
	}
	s.ActiveEffects = c.effectStates()
	eff := c.stats.effective()
	s.AttackDamage = eff.AttackDamage
	s.AbilityPower = eff.AbilityPower
	s.Armor = eff.Armor
	s.MagicResist = eff.MagicResist
	s.AttackSpeed = eff.AttackSpeed
	s.MoveSpeed = eff.MoveSpeed * c.slowFactor
	s.Shields = c.shields.states()
	s.Passive = c.passive.state()
	for i := range c.items {
		if c.items[i].def == nil {
			continue
		}
		item := ItemState{DefinitionID: c.items[i].def.ID, Slot: i}
		if p := c.items[i].passive.def; p != nil {
			item.PassiveID = p.ID
			item.PassiveCooldown = c.items[i].passive.cooldown
			if p.IntervalSec > 0 && c.dtNow > 0 {
				item.NextIntervalTick = c.tickNow + uint64(c.items[i].passive.interval/c.dtNow+0.5)
			}
		}
		s.Items[i] = item
	}
	s.HasMoveTarget = c.hasMoveTarget
	s.TargetX = c.moveTarget.X
	s.TargetY = c.moveTarget.Y
	if c.attackTarget != 0 {
		s.TargetEntityID = c.attackTarget
	} else {
		s.TargetEntityID = c.followTarget
	}
	s.RespawnTimer = math.Max(c.respawnTimer, 0)
	s.IsRecalling = c.recalling
	if cons := c.reg.Constants; c.recalling && cons.RecallChannelSec > 0 {
		s.RecallProgress = c.recallProgress / cons.RecallChannelSec
	}
	cons := c.reg.Constants
	s.Trinket = TrinketState{
		Charges:    c.trinketCharges,
		MaxCharges: cons.TrinketMaxCharges,
	}
	if c.trinketCharges < cons.TrinketMaxCharges {
		s.Trinket.Cooldown = math.Max(c.trinketRecharge, 0)
		if cons.TrinketRechargeSec > 0 {
			s.Trinket.RechargeProgress = 1 - c.trinketRecharge/cons.TrinketRechargeSec
		}
	}
	s.Gold = int(c.gold)
	s.Kills = c.kills
	s.Deaths = c.deaths
	s.Assists = c.assists
	s.CS = c.cs
	return s
}
