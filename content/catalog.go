// Package content holds the static gameplay data consumed by the simulation:
// level layout, tower and spawner stat tables, and the round construction schedule
package content

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/lixenwraith/creepwave/component"
)

var (
	ErrNoTowers   = errors.New("content: tower table is empty")
	ErrNoSpawners = errors.New("content: spawner table is empty")
)

// Construction places or upgrades a tower at the start of a round
type Construction struct {
	Round int    `toml:"round"`
	Type  string `toml:"type"` // Single-rune tower code
	Row   int    `toml:"row"`
	Col   int    `toml:"col"`
}

// Code returns the tower type rune
func (c Construction) Code() rune {
	r, _ := utf8.DecodeRuneInString(c.Type)
	return r
}

// Catalog is the full static data set for one game
type Catalog struct {
	Level    []string
	Towers   map[rune]component.TowerStats
	Spawners []component.SpawnerDef
	Schedule []Construction
}

// IsTower reports whether r is a known tower code
func (c *Catalog) IsTower(r rune) bool {
	_, ok := c.Towers[r]
	return ok
}

// TowerCodes returns the known tower codes in sorted order
func (c *Catalog) TowerCodes() []rune {
	codes := make([]rune, 0, len(c.Towers))
	for r := range c.Towers {
		codes = append(codes, r)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Round returns the constructions scheduled for round n in declaration order
func (c *Catalog) Round(n int) []Construction {
	var out []Construction
	for _, cons := range c.Schedule {
		if cons.Round == n {
			out = append(out, cons)
		}
	}
	return out
}

// Validate checks cross-references between tables
func (c *Catalog) Validate() error {
	if len(c.Towers) == 0 {
		return ErrNoTowers
	}
	if len(c.Spawners) == 0 {
		return ErrNoSpawners
	}

	for code, t := range c.Towers {
		if t.FireRate <= 0 {
			return fmt.Errorf("content: tower %q: fire_rate must be positive", code)
		}
		if t.Range <= 0 {
			return fmt.Errorf("content: tower %q: range must be positive", code)
		}
	}

	for i, s := range c.Spawners {
		if s.Creep.Title == "" {
			return fmt.Errorf("content: spawner %d: missing title", i)
		}
		if s.Creep.Speed <= 0 || s.Creep.Health <= 0 {
			return fmt.Errorf("content: spawner %q: speed and health must be positive", s.Creep.Title)
		}
		for _, track := range s.Upgrades {
			if len(track.Levels) == 0 {
				return fmt.Errorf("content: spawner %q: upgrade %q has no levels", s.Creep.Title, track.Title)
			}
		}
	}

	for _, cons := range c.Schedule {
		if utf8.RuneCountInString(cons.Type) != 1 || !c.IsTower(cons.Code()) {
			return fmt.Errorf("content: round %d: unknown tower type %q", cons.Round, cons.Type)
		}
		if cons.Round < 1 {
			return fmt.Errorf("content: schedule round %d must be positive", cons.Round)
		}
	}

	return nil
}
