package component

// TowerStats is the stat snapshot of one tower type
// Copied into towers on build and upgrade; never shared with presentation
type TowerStats struct {
	Title         string  `toml:"title"`
	Desc          string  `toml:"desc"`
	Label         string  `toml:"label"` // Visual class: arrow, magic, cannon
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	Range         float64 `toml:"range"`     // Grid cells
	FireRate      float64 `toml:"fire_rate"` // Shots per second
	Damage        float64 `toml:"damage"`
	ArmorPiercing float64 `toml:"armor_piercing"`
	Aura          float64 `toml:"aura"` // Splash radius in grid cells, 0 for single target
	Opacity       float64 `toml:"opacity"`
}

// FireInterval returns seconds between shots, 0 when the tower cannot fire
func (s TowerStats) FireInterval() float64 {
	if s.FireRate <= 0 {
		return 0
	}
	return 1 / s.FireRate
}

// CreepStats is the stat snapshot a spawner hands to the creep pool
type CreepStats struct {
	Title       string  `toml:"title"`
	Desc        string  `toml:"desc"`
	Label       string  `toml:"label"`
	Cost        int     `toml:"cost"`
	IncomeSec   int     `toml:"income_sec"`
	Spawns      int     `toml:"spawns"`
	Speed       float64 `toml:"speed"` // Pixels per step
	Health      float64 `toml:"health"`
	Armor       float64 `toml:"armor"`
	HealSec     float64 `toml:"heal_sec"`
	MagicResist float64 `toml:"magic_resist"`
	Aura        float64 `toml:"aura"`         // Caster radius in grid cells
	Dodge       float64 `toml:"dodge"`        // Percent
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Color       string  `toml:"color"`
	Key         string  `toml:"key"` // Quick-buy key
}

// reset zeroes every numeric stat
func (s *CreepStats) reset() {
	s.Cost, s.IncomeSec, s.Spawns = 0, 0, 0
	s.Speed, s.Health, s.Armor, s.HealSec = 0, 0, 0, 0
	s.MagicResist, s.Aura, s.Dodge = 0, 0, 0
	s.Width, s.Height = 0, 0
}

// StatDelta carries the stats an upgrade level overrides; nil fields are untouched
type StatDelta struct {
	Spawns      *int     `toml:"spawns"`
	Speed       *float64 `toml:"speed"`
	Health      *float64 `toml:"health"`
	Armor       *float64 `toml:"armor"`
	HealSec     *float64 `toml:"heal_sec"`
	MagicResist *float64 `toml:"magic_resist"`
	Aura        *float64 `toml:"aura"`
	Dodge       *float64 `toml:"dodge"`
}

// ApplyTo overwrites the set fields of s
func (d StatDelta) ApplyTo(s *CreepStats) {
	if d.Spawns != nil {
		s.Spawns = *d.Spawns
	}
	if d.Speed != nil {
		s.Speed = *d.Speed
	}
	if d.Health != nil {
		s.Health = *d.Health
	}
	if d.Armor != nil {
		s.Armor = *d.Armor
	}
	if d.HealSec != nil {
		s.HealSec = *d.HealSec
	}
	if d.MagicResist != nil {
		s.MagicResist = *d.MagicResist
	}
	if d.Aura != nil {
		s.Aura = *d.Aura
	}
	if d.Dodge != nil {
		s.Dodge = *d.Dodge
	}
}

// UpgradeLevel is one purchasable step of an upgrade track
type UpgradeLevel struct {
	Cost  int       `toml:"cost"`
	Apply StatDelta `toml:"apply"`
}

// UpgradeTrack is an ordered list of levels bought one at a time
type UpgradeTrack struct {
	Title  string         `toml:"title"`
	Desc   string         `toml:"desc"`
	Levels []UpgradeLevel `toml:"levels"`
}

// SpawnerDef is a creep type a spawner slot can be bought as
type SpawnerDef struct {
	Creep    CreepStats     `toml:"creep"`
	Upgrades []UpgradeTrack `toml:"upgrades"`
}

// Int returns a pointer to v, for building StatDelta literals
func Int(v int) *int { return &v }

// Float returns a pointer to v, for building StatDelta literals
func Float(v float64) *float64 { return &v }

// StatKind names a stat with a qualitative label table
type StatKind int

const (
	StatFireRate StatKind = iota
	StatRange
	StatArmor
	StatSpeed
	StatMagicResist
)

var statLabels = map[StatKind][]struct {
	upTo  float64
	label string
}{
	StatFireRate:    {{1, "Very Slow"}, {1.5, "Slow"}, {2.5, "Medium"}},
	StatRange:       {{2.5, "Medium"}, {2.75, "Far"}, {3, "Very Far"}},
	StatArmor:       {{0, "None"}, {2, "Low"}, {4, "Medium"}, {5, "High"}},
	StatSpeed:       {{1, "Slow"}, {1.35, "Medium"}, {2.25, "Fast"}, {2.5, "Very Fast"}, {3, "Extremely Fast"}},
	StatMagicResist: {{0, "None"}, {5, "Low"}, {10, "Medium"}, {15, "High"}},
}

// StatLabel returns the qualitative label for a stat value
// Values past the last bracket take the last label
func StatLabel(kind StatKind, v float64) string {
	brackets := statLabels[kind]
	if len(brackets) == 0 {
		return ""
	}
	for _, b := range brackets {
		if v <= b.upTo {
			return b.label
		}
	}
	return brackets[len(brackets)-1].label
}
