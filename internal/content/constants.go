package content

import "fmt"

// Constants are the match-wide gameplay tunables. They ship with compiled-in
// defaults and may be overlaid from constants.yaml.
type Constants struct {
	// Respawn timer is RespawnBaseSec + RespawnPerLevelSec*(level-1), capped.
	RespawnBaseSec     float64 `yaml:"respawnBaseSec" json:"respawnBaseSec"`
	RespawnPerLevelSec float64 `yaml:"respawnPerLevelSec" json:"respawnPerLevelSec"`
	RespawnCapSec      float64 `yaml:"respawnCapSec" json:"respawnCapSec"`

	RecallChannelSec float64 `yaml:"recallChannelSec" json:"recallChannelSec"`
	CombatDurationSec float64 `yaml:"combatDurationSec" json:"combatDurationSec"`

	StartingGold        int     `yaml:"startingGold" json:"startingGold"`
	GoldTricklePerSec   float64 `yaml:"goldTricklePerSec" json:"goldTricklePerSec"`
	GoldTrickleStartSec float64 `yaml:"goldTrickleStartSec" json:"goldTrickleStartSec"`
	KillGold            int     `yaml:"killGold" json:"killGold"`
	AssistGold          int     `yaml:"assistGold" json:"assistGold"`
	AssistWindowSec     float64 `yaml:"assistWindowSec" json:"assistWindowSec"`
	FirstBloodGold      int     `yaml:"firstBloodGold" json:"firstBloodGold"`
	SellRefund          float64 `yaml:"sellRefund" json:"sellRefund"`

	// XPRadius is the share range for minion and monster deaths.
	XPRadius        float64 `yaml:"xpRadius" json:"xpRadius"`
	LevelCap        int     `yaml:"levelCap" json:"levelCap"`
	XPCurveBase     float64 `yaml:"xpCurveBase" json:"xpCurveBase"`
	XPCurvePerLevel float64 `yaml:"xpCurvePerLevel" json:"xpCurvePerLevel"`
	// Champion kill XP is ChampionKillXPBase + ChampionKillXPPerLevel*victimLevel.
	ChampionKillXPBase     float64 `yaml:"championKillXpBase" json:"championKillXpBase"`
	ChampionKillXPPerLevel float64 `yaml:"championKillXpPerLevel" json:"championKillXpPerLevel"`

	// UltLevelGates are the champion levels required for R ranks 1..3.
	UltLevelGates [3]int `yaml:"ultLevelGates" json:"ultLevelGates"`

	WaveSize      int     `yaml:"waveSize" json:"waveSize"`
	WavePeriodSec float64 `yaml:"wavePeriodSec" json:"wavePeriodSec"`
	FirstWaveSec  float64 `yaml:"firstWaveSec" json:"firstWaveSec"`
	MinionUnitID  string  `yaml:"minionUnitId" json:"minionUnitId"`

	TowerGoldKiller int `yaml:"towerGoldKiller" json:"towerGoldKiller"`
	TowerGoldTeam   int `yaml:"towerGoldTeam" json:"towerGoldTeam"`
	DragonGold      int `yaml:"dragonGold" json:"dragonGold"`
	BaronGold       int `yaml:"baronGold" json:"baronGold"`

	InhibitorRespawnSec float64 `yaml:"inhibitorRespawnSec" json:"inhibitorRespawnSec"`

	TowerStats     Stats   `yaml:"towerStats" json:"towerStats"`
	TowerSight     float64 `yaml:"towerSight" json:"towerSight"`
	NexusStats     Stats   `yaml:"nexusStats" json:"nexusStats"`
	InhibitorStats Stats   `yaml:"inhibitorStats" json:"inhibitorStats"`

	TrinketMaxCharges  int     `yaml:"trinketMaxCharges" json:"trinketMaxCharges"`
	TrinketRechargeSec float64 `yaml:"trinketRechargeSec" json:"trinketRechargeSec"`
	WardPlaceRange     float64 `yaml:"wardPlaceRange" json:"wardPlaceRange"`
	StealthWardSec     float64 `yaml:"stealthWardSec" json:"stealthWardSec"`
	FarsightWardSec    float64 `yaml:"farsightWardSec" json:"farsightWardSec"`
	WardSightRange     float64 `yaml:"wardSightRange" json:"wardSightRange"`
	WardHealth         float64 `yaml:"wardHealth" json:"wardHealth"`

	// AttackRangeLeeway is the extra distance allowed when a wound-up attack
	// re-validates at its damage keyframe.
	AttackRangeLeeway float64 `yaml:"attackRangeLeeway" json:"attackRangeLeeway"`
}

// XPToNext returns the experience required to advance from the given level.
func (c Constants) XPToNext(level int) float64 {
	if level >= c.LevelCap {
		return 0
	}
	return c.XPCurveBase + c.XPCurvePerLevel*float64(level)
}

// RespawnSec returns the death timer for a champion of the given level.
func (c Constants) RespawnSec(level int) float64 {
	d := c.RespawnBaseSec + c.RespawnPerLevelSec*float64(level-1)
	if d > c.RespawnCapSec {
		d = c.RespawnCapSec
	}
	return d
}

// UltGate returns the champion level required to take R rank (1-indexed).
func (c Constants) UltGate(rank int) int {
	if rank < 1 || rank > len(c.UltLevelGates) {
		return 0
	}
	return c.UltLevelGates[rank-1]
}

func (c Constants) validate() error {
	if c.RespawnBaseSec <= 0 || c.RespawnCapSec <= 0 {
		return fmt.Errorf("constants: respawn timers must be positive")
	}
	if c.RecallChannelSec <= 0 {
		return fmt.Errorf("constants: recallChannelSec must be positive")
	}
	if c.SellRefund < 0 || c.SellRefund > 1 {
		return fmt.Errorf("constants: sellRefund must be in [0,1]")
	}
	if c.LevelCap < 1 {
		return fmt.Errorf("constants: levelCap must be at least 1")
	}
	if c.WaveSize < 1 || c.WavePeriodSec <= 0 {
		return fmt.Errorf("constants: minion wave config invalid")
	}
	if c.MinionUnitID == "" {
		return fmt.Errorf("constants: minionUnitId is required")
	}
	if c.TowerStats.MaxHealth <= 0 || c.NexusStats.MaxHealth <= 0 || c.InhibitorStats.MaxHealth <= 0 {
		return fmt.Errorf("constants: structure health must be positive")
	}
	if c.TrinketMaxCharges < 1 || c.TrinketRechargeSec <= 0 {
		return fmt.Errorf("constants: trinket config invalid")
	}
	if c.XPRadius <= 0 {
		return fmt.Errorf("constants: xpRadius must be positive")
	}
	return nil
}
