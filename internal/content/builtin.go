package content

// Default returns the compiled-in content baseline. The server boots with it
// when no data directory is configured; Load overlays YAML tables on top.
func Default() *Registry {
	r := &Registry{
		Champions: map[string]*ChampionDef{},
		Abilities: map[string]*AbilityDef{},
		Passives:  map[string]*PassiveDef{},
		Items:     map[string]*ItemDef{},
		Units:     map[string]*UnitDef{},
		Maps:      map[string]*MapDef{},
		Constants: defaultConstants(),
	}
	for _, c := range builtinChampions() {
		r.Champions[c.ID] = c
	}
	for _, a := range builtinAbilities() {
		r.Abilities[a.ID] = a
	}
	for _, p := range builtinPassives() {
		r.Passives[p.ID] = p
	}
	for _, i := range builtinItems() {
		r.Items[i.ID] = i
	}
	for _, u := range builtinUnits() {
		r.Units[u.ID] = u
	}
	m := riftMap()
	r.Maps[m.ID] = m
	return r
}

func defaultConstants() Constants {
	return Constants{
		RespawnBaseSec:     6,
		RespawnPerLevelSec: 2.5,
		RespawnCapSec:      40,

		RecallChannelSec:  8,
		CombatDurationSec: 5,

		StartingGold:        500,
		GoldTricklePerSec:   1.6,
		GoldTrickleStartSec: 10,
		KillGold:            300,
		AssistGold:          150,
		AssistWindowSec:     10,
		FirstBloodGold:      100,
		SellRefund:          0.7,

		XPRadius:               1400,
		LevelCap:               18,
		XPCurveBase:            180,
		XPCurvePerLevel:        100,
		ChampionKillXPBase:     100,
		ChampionKillXPPerLevel: 50,

		UltLevelGates: [3]int{6, 11, 16},

		WaveSize:      3,
		WavePeriodSec: 30,
		FirstWaveSec:  5,
		MinionUnitID:  "lane-minion",

		TowerGoldKiller: 150,
		TowerGoldTeam:   100,
		DragonGold:      100,
		BaronGold:       150,

		InhibitorRespawnSec: 300,

		TowerStats: Stats{
			MaxHealth:    3000,
			AttackDamage: 180,
			Armor:        40,
			MagicResist:  40,
			AttackSpeed:  0.83,
			AttackRange:  750,
		},
		TowerSight: 1100,
		NexusStats: Stats{
			MaxHealth:   5000,
			Armor:       30,
			MagicResist: 30,
		},
		InhibitorStats: Stats{
			MaxHealth:   2500,
			Armor:       20,
			MagicResist: 20,
		},

		TrinketMaxCharges:  2,
		TrinketRechargeSec: 60,
		WardPlaceRange:     600,
		StealthWardSec:     90,
		FarsightWardSec:    300,
		WardSightRange:     900,
		WardHealth:         3,

		AttackRangeLeeway: 100,
	}
}

func builtinChampions() []*ChampionDef {
	return []*ChampionDef{
		{
			ID:   "ashka",
			Name: "Ashka, the Cinderheart",
			Base: Stats{
				MaxHealth: 560, HealthRegen: 1.2,
				MaxResource: 420, ResourceRegen: 1.6,
				AttackDamage: 52, Armor: 22, MagicResist: 30,
				AttackSpeed: 0.65, MoveSpeed: 330, AttackRange: 550,
			},
			Growth: Stats{
				MaxHealth: 88, HealthRegen: 0.1,
				MaxResource: 28, ResourceRegen: 0.12,
				AttackDamage: 3, Armor: 3.5, MagicResist: 1.2,
				AttackSpeed: 0.015,
			},
			Radius: 55, SightRange: 1200,
			AttackKeyframe: 0.25, AttackAnimation: 0.6,
			Abilities: map[Slot]string{
				SlotQ: "ashka-q", SlotW: "ashka-w", SlotE: "ashka-e", SlotR: "ashka-r",
			},
			PassiveID: "ashka-cinderheart",
		},
		{
			ID:   "vael",
			Name: "Vael, the Deadeye",
			Base: Stats{
				MaxHealth: 540, HealthRegen: 1.0,
				MaxResource: 300, ResourceRegen: 1.4,
				AttackDamage: 60, Armor: 24, MagicResist: 28,
				AttackSpeed: 0.7, MoveSpeed: 335, AttackRange: 600,
			},
			Growth: Stats{
				MaxHealth: 84, HealthRegen: 0.08,
				MaxResource: 24, ResourceRegen: 0.1,
				AttackDamage: 3.6, Armor: 3.2, MagicResist: 1.1,
				AttackSpeed: 0.03,
			},
			Radius: 55, SightRange: 1200,
			AttackKeyframe: 0.2, AttackAnimation: 0.5,
			Abilities: map[Slot]string{
				SlotQ: "vael-q", SlotW: "vael-w", SlotE: "vael-e", SlotR: "vael-r",
			},
			PassiveID: "vael-deadeye",
		},
		{
			ID:   "lume",
			Name: "Lume, the Lightborne",
			Base: Stats{
				MaxHealth: 520, HealthRegen: 1.4,
				MaxResource: 460, ResourceRegen: 1.9,
				AttackDamage: 48, Armor: 20, MagicResist: 32,
				AttackSpeed: 0.62, MoveSpeed: 340, AttackRange: 525,
			},
			Growth: Stats{
				MaxHealth: 80, HealthRegen: 0.12,
				MaxResource: 32, ResourceRegen: 0.14,
				AttackDamage: 2.6, Armor: 3, MagicResist: 1.3,
				AttackSpeed: 0.012,
			},
			Radius: 50, SightRange: 1200,
			AttackKeyframe: 0.28, AttackAnimation: 0.62,
			Abilities: map[Slot]string{
				SlotQ: "lume-q", SlotW: "lume-w", SlotE: "lume-e", SlotR: "lume-r",
			},
			PassiveID: "lume-lightborne",
		},
		{
			ID:   "korrin",
			Name: "Korrin, the Gravewarden",
			Base: Stats{
				MaxHealth: 640, HealthRegen: 1.8,
				MaxResource: 280, ResourceRegen: 1.2,
				AttackDamage: 62, Armor: 30, MagicResist: 32,
				AttackSpeed: 0.6, MoveSpeed: 325, AttackRange: 175,
			},
			Growth: Stats{
				MaxHealth: 104, HealthRegen: 0.16,
				MaxResource: 20, ResourceRegen: 0.08,
				AttackDamage: 3.8, Armor: 4, MagicResist: 1.5,
				AttackSpeed: 0.02,
			},
			Radius: 60, SightRange: 1200,
			AttackKeyframe: 0.3, AttackAnimation: 0.7,
			Abilities: map[Slot]string{
				SlotQ: "korrin-q", SlotW: "korrin-w", SlotE: "korrin-e", SlotR: "korrin-r",
			},
			PassiveID: "korrin-soul-harvest",
		},
	}
}

func builtinAbilities() []*AbilityDef {
	return []*AbilityDef{
		// Ashka: burst mage.
		{
			ID: "ashka-q", ChampionID: "ashka", Slot: SlotQ,
			Name: "Emberbolt", MaxRank: 5, Targeting: TargetSkill,
			ManaCost: []float64{40, 45, 50, 55, 60},
			Cooldown: []float64{6, 5.5, 5, 4.5, 4},
			Range:    []float64{900},
			KeyframeDelay: 0.25,
			Effects: []EffectSpec{{
				Family: FamilyProjectile, Speed: 1400, MaxDistance: 900, Radius: 60,
				OnHit: []EffectSpec{{
					Family: FamilyDamage, DamageType: DamageMagic,
					Base: []float64{70, 110, 150, 190, 230}, Ratio: 0.65, RatioStat: "ap",
				}},
			}},
		},
		{
			ID: "ashka-w", ChampionID: "ashka", Slot: SlotW,
			Name: "Flamewake", MaxRank: 5, Targeting: TargetGround,
			ManaCost: []float64{60, 65, 70, 75, 80},
			Cooldown: []float64{12, 11, 10, 9, 8},
			Range:    []float64{800},
			Effects: []EffectSpec{{
				Family: FamilyZone, Duration: 3, Interval: 0.5, Radius: 250,
				OnHit: []EffectSpec{{
					Family: FamilyDamage, DamageType: DamageMagic,
					Base: []float64{20, 30, 40, 50, 60}, Ratio: 0.15, RatioStat: "ap",
				}},
			}},
		},
		{
			ID: "ashka-e", ChampionID: "ashka", Slot: SlotE,
			Name: "Ashstep", MaxRank: 5, Targeting: TargetGround,
			ManaCost: []float64{50},
			Cooldown: []float64{16, 15, 14, 13, 12},
			Range:    []float64{450},
			Effects: []EffectSpec{
				{Family: FamilyBlink, Range: 450},
				{
					Family: FamilyAura, Duration: 0.1, Interval: 0.1, Radius: 300,
					OnHit: []EffectSpec{{
						Family: FamilySlow, EffectID: "ashstep-slow",
						Amount: 0.3, Duration: 1.5,
					}},
				},
			},
		},
		{
			ID: "ashka-r", ChampionID: "ashka", Slot: SlotR,
			Name: "Pyroclasm", MaxRank: 3, Targeting: TargetGround,
			ManaCost: []float64{100},
			Cooldown: []float64{110, 95, 80},
			Range:    []float64{850},
			Effects: []EffectSpec{{
				Family: FamilyAura, Delay: 0.75, Duration: 0.1, Interval: 0.1, Radius: 375,
				OnHit: []EffectSpec{
					{
						Family: FamilyDamage, DamageType: DamageMagic,
						Base: []float64{250, 400, 550}, Ratio: 0.8, RatioStat: "ap",
					},
					{
						Family: FamilyDisable, EffectID: "pyroclasm-stun",
						Kind: string(CCStun), Duration: 1.25,
					},
				},
			}},
		},

		// Vael: marksman with a recast ultimate.
		{
			ID: "vael-q", ChampionID: "vael", Slot: SlotQ,
			Name: "Piercing Shot", MaxRank: 5, Targeting: TargetSkill,
			ManaCost: []float64{35, 40, 45, 50, 55},
			Cooldown: []float64{8, 7.5, 7, 6.5, 6},
			Range:    []float64{1100},
			KeyframeDelay: 0.2,
			Effects: []EffectSpec{{
				Family: FamilyProjectile, Speed: 1800, MaxDistance: 1100, Radius: 50, Pierce: true,
				OnHit: []EffectSpec{{
					Family: FamilyDamage, DamageType: DamagePhysical,
					Base: []float64{60, 95, 130, 165, 200}, Ratio: 0.9, RatioStat: "ad",
				}},
			}},
		},
		{
			ID: "vael-w", ChampionID: "vael", Slot: SlotW,
			Name: "Quickstep", MaxRank: 5, Targeting: TargetGround,
			ManaCost: []float64{40},
			Cooldown: []float64{14, 13, 12, 11, 10},
			Range:    []float64{300},
			Effects: []EffectSpec{
				{Family: FamilyDash, Range: 300, Duration: 0.25},
				{
					Family: FamilyStatMod, EffectID: "quickstep-haste", Target: "self",
					Duration: 2, Stat: Stats{MoveSpeed: 60},
				},
			},
		},
		{
			ID: "vael-e", ChampionID: "vael", Slot: SlotE,
			Name: "Crippling Volley", MaxRank: 5, Targeting: TargetEnemy,
			ManaCost: []float64{50, 55, 60, 65, 70},
			Cooldown: []float64{10, 9.5, 9, 8.5, 8},
			Range:    []float64{600},
			Effects: []EffectSpec{
				{
					Family: FamilyDamage, DamageType: DamagePhysical,
					Base: []float64{50, 85, 120, 155, 190}, Ratio: 0.7, RatioStat: "ad",
				},
				{
					Family: FamilySlow, EffectID: "crippling-volley-slow",
					Amount: 0.4, Duration: 2.5,
				},
			},
		},
		{
			ID: "vael-r", ChampionID: "vael", Slot: SlotR,
			Name: "Death From Above", MaxRank: 3, Targeting: TargetSkill,
			ManaCost: []float64{100},
			Cooldown: []float64{100, 85, 70},
			Range:    []float64{1500},
			KeyframeDelay: 0.25,
			RecastWindow:  3,
			RecastCount:   1,
			Effects: []EffectSpec{{
				Family: FamilyProjectile, Speed: 2000, MaxDistance: 1500, Radius: 70,
				OnHit: []EffectSpec{{
					Family: FamilyDamage, DamageType: DamagePhysical,
					Base: []float64{200, 325, 450}, Ratio: 1.0, RatioStat: "ad",
				}},
			}},
			RecastEffects: []EffectSpec{
				{Family: FamilyDash, Range: 1500, Duration: 0.4},
			},
		},

		// Lume: enchanter built around the orb.
		{
			ID: "lume-q", ChampionID: "lume", Slot: SlotQ,
			Name: "Radiant Orb", MaxRank: 5, Targeting: TargetSkill,
			ManaCost: []float64{45, 50, 55, 60, 65},
			Cooldown: []float64{9, 8.5, 8, 7.5, 7},
			Range:    []float64{800},
			KeyframeDelay: 0.25,
			Effects: []EffectSpec{{
				Family: FamilyOrb, Speed: 1000, MaxDistance: 800, Radius: 60, Duration: 4,
				OnHit: []EffectSpec{{
					Family: FamilyDamage, DamageType: DamageMagic,
					Base: []float64{60, 95, 130, 165, 200}, Ratio: 0.55, RatioStat: "ap",
				}},
			}},
		},
		{
			ID: "lume-w", ChampionID: "lume", Slot: SlotW,
			Name: "Glimmer", MaxRank: 5, Targeting: TargetAlly,
			ManaCost: []float64{60, 70, 80, 90, 100},
			Cooldown: []float64{10, 9.5, 9, 8.5, 8},
			Range:    []float64{650},
			Effects: []EffectSpec{{
				Family: FamilyHeal,
				Base:   []float64{70, 110, 150, 190, 230}, Ratio: 0.5, RatioStat: "ap",
			}},
		},
		{
			ID: "lume-e", ChampionID: "lume", Slot: SlotE,
			Name: "Flickerstep", MaxRank: 5, Targeting: TargetNone,
			ManaCost: []float64{40},
			Cooldown: []float64{18, 16.5, 15, 13.5, 12},
			Range:    []float64{1200},
			Effects: []EffectSpec{
				{Family: FamilyOrbDash, Range: 1200, Duration: 0.3},
			},
		},
		{
			ID: "lume-r", ChampionID: "lume", Slot: SlotR,
			Name: "Prism Burst", MaxRank: 3, Targeting: TargetSelf,
			ManaCost: []float64{100},
			Cooldown: []float64{90, 75, 60},
			Effects: []EffectSpec{{
				Family: FamilyAura, Duration: 0.1, Interval: 0.1, Radius: 450,
				OnHit: []EffectSpec{
					{
						Family: FamilyDamage, DamageType: DamageMagic,
						Base: []float64{180, 280, 380}, Ratio: 0.7, RatioStat: "ap",
					},
					{
						Family: FamilyDisable, EffectID: "prism-silence",
						Kind: string(CCSilence), Duration: 1,
					},
				},
			}},
		},

		// Korrin: juggernaut with traps and soul stacks.
		{
			ID: "korrin-q", ChampionID: "korrin", Slot: SlotQ,
			Name: "Reaping Strike", MaxRank: 5, Targeting: TargetNone,
			ManaCost: []float64{30},
			Cooldown: []float64{7, 6.5, 6, 5.5, 5},
			Effects: []EffectSpec{{
				Family: FamilyAura, Duration: 0.1, Interval: 0.1, Radius: 300,
				OnHit: []EffectSpec{
					{
						Family: FamilyDamage, DamageType: DamagePhysical,
						Base: []float64{60, 95, 130, 165, 200}, Ratio: 0.8, RatioStat: "ad",
					},
					{
						Family: FamilyHeal, Target: "self",
						Base: []float64{15, 20, 25, 30, 35},
					},
				},
			}},
		},
		{
			ID: "korrin-w", ChampionID: "korrin", Slot: SlotW,
			Name: "Iron Bulwark", MaxRank: 5, Targeting: TargetSelf,
			ManaCost: []float64{50},
			Cooldown: []float64{16, 15, 14, 13, 12},
			Effects: []EffectSpec{
				{
					Family: FamilyShield, EffectID: "bulwark-shield", Target: "self",
					Base: []float64{80, 100, 120, 140, 160}, Ratio: 0.6, RatioStat: "ap",
					Duration: 4, Kind: "physical",
				},
				{
					Family: FamilyStatMod, EffectID: "bulwark-vigor", Target: "self",
					Duration: 5, Stat: Stats{MaxHealth: 100, Armor: 20},
					HealFromMaxHealth: true,
				},
			},
		},
		{
			ID: "korrin-e", ChampionID: "korrin", Slot: SlotE,
			Name: "Soul Snare", MaxRank: 5, Targeting: TargetGround,
			ManaCost: []float64{40},
			Cooldown: []float64{14, 13, 12, 11, 10},
			Range:    []float64{700},
			Effects: []EffectSpec{{
				Family: FamilyTrap, Duration: 30, Radius: 150, Delay: 1, Amount: 1,
				OnHit: []EffectSpec{
					{
						Family: FamilyDisable, EffectID: "soul-snare-root",
						Kind: string(CCRoot), Duration: 1.5,
					},
					{
						Family: FamilyDamage, DamageType: DamageMagic,
						Base: []float64{40, 70, 100, 130, 160}, Ratio: 0.4, RatioStat: "ap",
					},
				},
			}},
		},
		{
			ID: "korrin-r", ChampionID: "korrin", Slot: SlotR,
			Name: "Grave Grasp", MaxRank: 3, Targeting: TargetGround,
			ManaCost: []float64{100},
			Cooldown: []float64{120, 100, 80},
			Range:    []float64{600},
			Effects: []EffectSpec{{
				Family: FamilyAura, Delay: 0.5, Duration: 0.1, Interval: 0.1, Radius: 350,
				OnHit: []EffectSpec{
					{
						Family: FamilyDamage, DamageType: DamageMagic,
						Base: []float64{150, 250, 350}, Ratio: 0.6, RatioStat: "ap",
					},
					{Family: FamilyKnockback, Range: 250, Duration: 0.3},
				},
			}},
		},
	}
}

func builtinPassives() []*PassiveDef {
	return []*PassiveDef{
		{
			ID: "ashka-cinderheart", Name: "Cinderheart",
			Trigger: TriggerOnAbilityHit, CooldownSec: 4,
			Effects: []EffectSpec{{
				Family: FamilyDamage, DamageType: DamageMagic,
				Base: []float64{10}, Ratio: 0.1, RatioStat: "ap",
				Duration: 3, Interval: 1,
			}},
		},
		{
			ID: "vael-deadeye", Name: "Deadeye Focus",
			Trigger:   TriggerOnAttack,
			MaxStacks: 5, RequiredStacks: 5, StackDecaySec: 4, ConsumeOnUse: true,
			Effects: []EffectSpec{{
				Family: FamilyDamage, DamageType: DamageTrue,
				Base: []float64{30}, Ratio: 0.2, RatioStat: "ad",
			}},
		},
		{
			ID: "lume-lightborne", Name: "Lightborne",
			Trigger: TriggerOnInterval, IntervalSec: 10,
			Effects: []EffectSpec{{
				Family: FamilyShield, EffectID: "lightborne-shield", Target: "self",
				Base: []float64{40}, Ratio: 0.15, RatioStat: "ap",
				Duration: 3, Kind: "magic",
			}},
		},
		{
			ID: "korrin-soul-harvest", Name: "Soul Harvest",
			Trigger:   TriggerOnKill,
			MaxStacks: 999, StacksPerTrigger: 1,
			StatPerStack: Stats{AttackDamage: 1},
		},

		// Item passives.
		{
			ID: "lifedrink", Name: "Lifedrink",
			Trigger: TriggerOnHit,
			Effects: []EffectSpec{{
				Family: FamilyHeal, Target: "self",
				Ratio: 0.08, RatioStat: "damageDealt",
			}},
		},
		{
			ID: "immolate", Name: "Immolate",
			Trigger: TriggerOnInterval, IntervalSec: 1,
			Effects: []EffectSpec{{
				Family: FamilyAura, Duration: 0.1, Interval: 0.1, Radius: 325,
				OnHit: []EffectSpec{{
					Family: FamilyDamage, DamageType: DamageMagic, Base: []float64{15},
				}},
			}},
		},
	}
}

func builtinItems() []*ItemDef {
	return []*ItemDef{
		{ID: "long-sword", Name: "Long Sword", Cost: 350, Stats: Stats{AttackDamage: 10}},
		{ID: "amplifying-tome", Name: "Amplifying Tome", Cost: 435, Stats: Stats{AbilityPower: 20}},
		{ID: "ruby-crystal", Name: "Ruby Crystal", Cost: 400, Stats: Stats{MaxHealth: 150}},
		{ID: "sapphire-crystal", Name: "Sapphire Crystal", Cost: 350, Stats: Stats{MaxResource: 250}},
		{ID: "cloth-armor", Name: "Cloth Armor", Cost: 300, Stats: Stats{Armor: 15}},
		{ID: "null-magic-mantle", Name: "Null-Magic Mantle", Cost: 400, Stats: Stats{MagicResist: 20}},
		{ID: "dagger", Name: "Dagger", Cost: 300, Stats: Stats{AttackSpeed: 0.15}},
		{ID: "swift-boots", Name: "Swift Boots", Cost: 300, Stats: Stats{MoveSpeed: 25}, Unique: true},
		{
			ID: "vampiric-scepter", Name: "Vampiric Scepter", Cost: 900,
			Stats: Stats{AttackDamage: 15}, PassiveID: "lifedrink",
		},
		{
			ID: "sunfire-aegis", Name: "Sunfire Aegis", Cost: 2600,
			Stats: Stats{MaxHealth: 250, Armor: 25}, PassiveID: "immolate", Unique: true,
		},
	}
}

func builtinUnits() []*UnitDef {
	return []*UnitDef{
		{
			ID: "lane-minion", Name: "Lane Minion",
			Stats: Stats{
				MaxHealth: 480, AttackDamage: 12,
				AttackSpeed: 0.75, MoveSpeed: 325, AttackRange: 120,
			},
			Radius: 40, SightRange: 900, Gold: 20, XP: 60,
		},
		{
			ID: "direwolf", Name: "Direwolf",
			Stats: Stats{
				MaxHealth: 900, AttackDamage: 40, Armor: 10, MagicResist: 10,
				AttackSpeed: 0.7, MoveSpeed: 350, AttackRange: 150,
			},
			Radius: 50, SightRange: 700, Gold: 35, XP: 110,
		},
		{
			ID: "stonehide", Name: "Stonehide Golem",
			Stats: Stats{
				MaxHealth: 1400, AttackDamage: 55, Armor: 20, MagicResist: 10,
				AttackSpeed: 0.5, MoveSpeed: 300, AttackRange: 180,
			},
			Radius: 65, SightRange: 700, Gold: 45, XP: 140,
		},
		{
			ID: "dragon", Name: "Rift Dragon",
			Stats: Stats{
				MaxHealth: 3500, AttackDamage: 100, Armor: 30, MagicResist: 30,
				AttackSpeed: 0.6, MoveSpeed: 320, AttackRange: 300,
			},
			Radius: 90, SightRange: 800, Gold: 100, XP: 300,
		},
		{
			ID: "baron", Name: "Baron of the Deep",
			Stats: Stats{
				MaxHealth: 6000, AttackDamage: 150, Armor: 50, MagicResist: 50,
				AttackSpeed: 0.55, MoveSpeed: 0, AttackRange: 500,
			},
			Radius: 110, SightRange: 800, Gold: 150, XP: 600,
		},
	}
}

// riftMap lays out the default three-lane battleground. Blue occupies the
// lower-left corner, red the upper-right; coordinates mirror across the
// anti-diagonal.
func riftMap() *MapDef {
	return &MapDef{
		ID:       "summoners-rift",
		Width:    15000,
		Height:   15000,
		CellSize: 50,

		Walls: []Rect{
			{MinX: 3500, MinY: 6500, MaxX: 5500, MaxY: 7000},
			{MinX: 6500, MinY: 3500, MaxX: 7000, MaxY: 5500},
			{MinX: 8000, MinY: 9500, MaxX: 8500, MaxY: 11500},
			{MinX: 9500, MinY: 8000, MaxX: 11500, MaxY: 8500},
			{MinX: 2500, MinY: 4500, MaxX: 3000, MaxY: 6000},
			{MinX: 4500, MinY: 2500, MaxX: 6000, MaxY: 3000},
			{MinX: 9000, MinY: 12000, MaxX: 10500, MaxY: 12500},
			{MinX: 12000, MinY: 9000, MaxX: 12500, MaxY: 10500},
		},

		Bushes: []Rect{
			{MinX: 5600, MinY: 8600, MaxX: 6400, MaxY: 9400},
			{MinX: 8600, MinY: 5600, MaxX: 9400, MaxY: 6400},
			{MinX: 1100, MinY: 6500, MaxX: 1600, MaxY: 7300},
			{MinX: 6500, MinY: 1100, MaxX: 7300, MaxY: 1600},
			{MinX: 13400, MinY: 7700, MaxX: 13900, MaxY: 8500},
			{MinX: 7700, MinY: 13400, MaxX: 8500, MaxY: 13900},
			{MinX: 4000, MinY: 5200, MaxX: 4700, MaxY: 5800},
			{MinX: 10300, MinY: 9200, MaxX: 11000, MaxY: 9800},
		},

		Lanes: map[Lane][]Point{
			LaneTop: {
				{X: 1500, Y: 2500}, {X: 1300, Y: 5000}, {X: 1300, Y: 9000},
				{X: 1300, Y: 12500}, {X: 2500, Y: 13700}, {X: 6000, Y: 13700},
				{X: 10000, Y: 13700}, {X: 12800, Y: 13700}, {X: 13400, Y: 13500},
			},
			LaneMid: {
				{X: 1800, Y: 1800}, {X: 3000, Y: 3000}, {X: 4600, Y: 4600},
				{X: 7500, Y: 7500}, {X: 10400, Y: 10400}, {X: 12000, Y: 12000},
				{X: 13200, Y: 13200},
			},
			LaneBot: {
				{X: 2500, Y: 1500}, {X: 5000, Y: 1300}, {X: 9000, Y: 1300},
				{X: 12500, Y: 1300}, {X: 13700, Y: 2500}, {X: 13700, Y: 6000},
				{X: 13700, Y: 10000}, {X: 13700, Y: 12800}, {X: 13500, Y: 13400},
			},
		},

		Blue: TeamLayout{
			Spawn: Point{X: 750, Y: 750},
			Nexus: Point{X: 1200, Y: 1200},
			Towers: []TowerSpot{
				{Lane: LaneTop, Tier: 1, Pos: Point{X: 1300, Y: 9000}},
				{Lane: LaneTop, Tier: 2, Pos: Point{X: 1300, Y: 5000}},
				{Lane: LaneMid, Tier: 1, Pos: Point{X: 4600, Y: 4600}},
				{Lane: LaneMid, Tier: 2, Pos: Point{X: 3000, Y: 3000}},
				{Lane: LaneBot, Tier: 1, Pos: Point{X: 9000, Y: 1300}},
				{Lane: LaneBot, Tier: 2, Pos: Point{X: 5000, Y: 1300}},
			},
			Inhibitors: []InhibSpot{
				{Lane: LaneTop, Pos: Point{X: 1600, Y: 2800}},
				{Lane: LaneMid, Pos: Point{X: 2200, Y: 2200}},
				{Lane: LaneBot, Pos: Point{X: 2800, Y: 1600}},
			},
		},
		Red: TeamLayout{
			Spawn: Point{X: 14250, Y: 14250},
			Nexus: Point{X: 13800, Y: 13800},
			Towers: []TowerSpot{
				{Lane: LaneTop, Tier: 1, Pos: Point{X: 6000, Y: 13700}},
				{Lane: LaneTop, Tier: 2, Pos: Point{X: 10000, Y: 13700}},
				{Lane: LaneMid, Tier: 1, Pos: Point{X: 10400, Y: 10400}},
				{Lane: LaneMid, Tier: 2, Pos: Point{X: 12000, Y: 12000}},
				{Lane: LaneBot, Tier: 1, Pos: Point{X: 13700, Y: 6000}},
				{Lane: LaneBot, Tier: 2, Pos: Point{X: 13700, Y: 10000}},
			},
			Inhibitors: []InhibSpot{
				{Lane: LaneTop, Pos: Point{X: 12200, Y: 13400}},
				{Lane: LaneMid, Pos: Point{X: 12800, Y: 12800}},
				{Lane: LaneBot, Pos: Point{X: 13400, Y: 12200}},
			},
		},

		Camps: []CampDef{
			{
				ID: "blue-wolves", Kind: CampSmall, UnitID: "direwolf",
				Pos: Point{X: 4200, Y: 8200}, Count: 2,
				FirstSpawnSec: 90, RespawnSec: 60,
			},
			{
				ID: "blue-golem", Kind: CampSmall, UnitID: "stonehide",
				Pos: Point{X: 8200, Y: 4200}, Count: 1,
				FirstSpawnSec: 90, RespawnSec: 60,
			},
			{
				ID: "red-wolves", Kind: CampSmall, UnitID: "direwolf",
				Pos: Point{X: 6800, Y: 10800}, Count: 2,
				FirstSpawnSec: 90, RespawnSec: 60,
			},
			{
				ID: "red-golem", Kind: CampSmall, UnitID: "stonehide",
				Pos: Point{X: 10800, Y: 6800}, Count: 1,
				FirstSpawnSec: 90, RespawnSec: 60,
			},
			{
				ID: "dragon-pit", Kind: CampDragon, UnitID: "dragon",
				Pos: Point{X: 9500, Y: 5500}, Count: 1,
				FirstSpawnSec: 120, RespawnSec: 300,
			},
			{
				ID: "baron-pit", Kind: CampBaron, UnitID: "baron",
				Pos: Point{X: 5500, Y: 9500}, Count: 1,
				FirstSpawnSec: 300, RespawnSec: 420,
			},
		},
	}
}
