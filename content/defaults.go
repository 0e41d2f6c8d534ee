package content

import (
	"github.com/lixenwraith/creepwave/component"
)

// DefaultLevel is the stock map
//
//	#      path
//	*      spawner slot
//	a-z    waypoints in route order
//	> ^    arrow and bolt towers
//	~      mage tower
//	@      cannon tower
var DefaultLevel = []string{
	"        o",
	"        n###m",
	"   c##d     #",
	"   # >#  k##l",
	"a##b  #  #",
	"      #  #",
	"      #  j####i",
	"  f###e       #",
	"  #           #",
	"  g###########h",
	"",
	" * * * * * *",
}

// Default returns a fresh copy of the stock catalog
func Default() *Catalog {
	return &Catalog{
		Level:    append([]string(nil), DefaultLevel...),
		Towers:   defaultTowers(),
		Spawners: defaultSpawners(),
		Schedule: defaultSchedule(),
	}
}

func defaultTowers() map[rune]component.TowerStats {
	return map[rune]component.TowerStats{
		'>': {
			Title:    "Arrow Tower",
			Desc:     "Basic tower that is effective against weak creeps.",
			Label:    "arrow",
			Width:    32,
			Height:   32,
			Range:    2.5,
			FireRate: 2,
			Damage:   10,
			Opacity:  0.5,
		},
		'^': {
			Title:    "Bolt Tower",
			Desc:     "Upgraded tower that is more effective against creep.",
			Label:    "arrow",
			Width:    32,
			Height:   32,
			Range:    2.75,
			FireRate: 2,
			Damage:   15,
			Opacity:  0.5,
		},
		'~': {
			Title:         "Mage Tower",
			Desc:          "Magic damage ignores a portion of a creeps armor.",
			Label:         "magic",
			Width:         32,
			Height:        32,
			Range:         2.25,
			FireRate:      1.5,
			Damage:        15,
			ArmorPiercing: 7.5,
			Opacity:       0.2,
		},
		'@': {
			Title:    "Cannon Tower",
			Desc:     "Slow firing tower that deals splash damage.",
			Label:    "cannon",
			Width:    32,
			Height:   32,
			Range:    3,
			FireRate: 0.34,
			Aura:     0.5,
			Damage:   20,
			Opacity:  0.3,
		},
	}
}

func defaultSpawners() []component.SpawnerDef {
	i := component.Int
	f := component.Float

	return []component.SpawnerDef{
		{
			Creep: component.CreepStats{
				Title:     "Footman",
				Desc:      "Basic melee creep.",
				Label:     "footman",
				Cost:      60,
				IncomeSec: 1,
				Spawns:    1,
				Speed:     1.35,
				Health:    20,
				Width:     10,
				Height:    10,
				Color:     "blue",
				Key:       "F",
			},
			Upgrades: []component.UpgradeTrack{
				{
					Title: "Training Grounds",
					Desc:  "Increase the number of Footmen sent each group.",
					Levels: []component.UpgradeLevel{
						{Cost: 110, Apply: component.StatDelta{Spawns: i(2)}},
						{Cost: 200, Apply: component.StatDelta{Spawns: i(3)}},
					},
				},
				{
					Title: "Improved Rations",
					Desc:  "Increase the health of Footmen.",
					Levels: []component.UpgradeLevel{
						{Cost: 125, Apply: component.StatDelta{Health: f(30)}},
						{Cost: 215, Apply: component.StatDelta{Health: f(40)}},
						{Cost: 500, Apply: component.StatDelta{Health: f(50)}},
					},
				},
			},
		},
		{
			Creep: component.CreepStats{
				Title:     "Paladin",
				Desc:      "Heavily armored creep.",
				Label:     "paladin",
				Cost:      110,
				IncomeSec: 1,
				Spawns:    1,
				Speed:     1,
				Health:    40,
				Armor:     2,
				Width:     12,
				Height:    12,
				Color:     "darkgrey",
				Key:       "A",
			},
			Upgrades: []component.UpgradeTrack{
				{
					Title: "Steel Plating",
					Desc:  "Increase the armor of Paladins.",
					Levels: []component.UpgradeLevel{
						{Cost: 140, Apply: component.StatDelta{Armor: f(4)}},
						{Cost: 240, Apply: component.StatDelta{Armor: f(5)}},
					},
				},
				{
					Title: "Holy Hands",
					Desc:  "Paladins heal themselves every second.",
					Levels: []component.UpgradeLevel{
						{Cost: 200, Apply: component.StatDelta{HealSec: f(2)}},
						{Cost: 500, Apply: component.StatDelta{HealSec: f(4)}},
					},
				},
			},
		},
		{
			Creep: component.CreepStats{
				Title:     "Wizard",
				Desc:      "Power spell caster able to buff allies with spells.",
				Label:     "wizard",
				Cost:      60,
				IncomeSec: 1,
				Spawns:    1,
				Speed:     1.35,
				Health:    15,
				Width:     10,
				Height:    10,
				Color:     "purple",
				Key:       "W",
			},
			Upgrades: []component.UpgradeTrack{
				{
					Title: "Protection Aura",
					Desc:  "Reduce enemy spell damage around the Wizard.",
					Levels: []component.UpgradeLevel{
						{Cost: 100, Apply: component.StatDelta{MagicResist: f(5), Aura: f(1)}},
						{Cost: 300, Apply: component.StatDelta{MagicResist: f(10), Aura: f(1.25)}},
						{Cost: 600, Apply: component.StatDelta{MagicResist: f(15), Aura: f(1.5)}},
					},
				},
				{
					Title: "Far Sight",
					Desc:  "Wizards dodge incoming attacks.",
					Levels: []component.UpgradeLevel{
						{Cost: 200, Apply: component.StatDelta{Dodge: f(25)}},
						{Cost: 500, Apply: component.StatDelta{Dodge: f(50)}},
					},
				},
			},
		},
	}
}

func defaultSchedule() []Construction {
	return []Construction{
		{Round: 3, Type: ">", Row: 8, Col: 4},
		{Round: 5, Type: ">", Row: 7, Col: 12},
		{Round: 6, Type: "~", Row: 5, Col: 8},
		{Round: 7, Type: "^", Row: 2, Col: 11},
		{Round: 9, Type: "@", Row: 8, Col: 8},
		{Round: 15, Type: "@", Row: 2, Col: 8},
	}
}
