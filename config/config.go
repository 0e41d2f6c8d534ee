// Package config loads the game configuration from a TOML file layered over built-in defaults
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/creepwave/component"
	"github.com/lixenwraith/creepwave/content"
	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/game"
	"github.com/lixenwraith/creepwave/input"
	"github.com/lixenwraith/creepwave/parameter"
)

var ErrUnknownKeys = errors.New("config: unknown keys")

// Config is the decoded configuration file
type Config struct {
	Game  GameSection  `toml:"game"`
	Audio AudioSection `toml:"audio"`
	Log   LogSection   `toml:"log"`
	Level LevelSection `toml:"level"`

	// Towers replaces whole tower definitions keyed by their single-rune code
	Towers map[string]component.TowerStats `toml:"towers"`
	// Spawners replaces the creep type list when non-empty
	Spawners []component.SpawnerDef `toml:"spawners"`
	// Schedule replaces the construction schedule when present
	Schedule []content.Construction `toml:"schedule"`

	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// GameSection holds session and loop tuning
type GameSection struct {
	FPS      int     `toml:"fps"`
	GridSize float64 `toml:"grid_size"`
	Money    int     `toml:"money"`
	Lives    int     `toml:"lives"`
	Waves    int     `toml:"waves"`
	Bounty   int     `toml:"bounty"`
	MaxPool  int     `toml:"max_pool"`
}

// AudioSection is overridden by CREEPWAVE_* environment variables in the audio package
type AudioSection struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// LogSection controls the debug log file
type LogSection struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// LevelSection selects the map; File wins over Rows
type LevelSection struct {
	File string   `toml:"file"`
	Rows []string `toml:"rows"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameSection{
			FPS:      parameter.DefaultFPS,
			GridSize: parameter.GridSize,
			Money:    parameter.StartingMoney,
			Lives:    parameter.StartingLives,
			Waves:    parameter.StartingWaves,
			Bounty:   parameter.LeakBounty,
			MaxPool:  parameter.CreepPoolMaxSize,
		},
		Audio: AudioSection{
			Enabled: true,
			Volume:  parameter.DefaultMasterVolume,
		},
		Log: LogSection{
			Dir: "logs",
		},
	}
}

// Load decodes path over Default and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKeys, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges of the scalar settings
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.FPS <= 0 || g.FPS > 240:
		return fmt.Errorf("config: game.fps must be in 1..240, got %d", g.FPS)
	case g.GridSize <= 0:
		return fmt.Errorf("config: game.grid_size must be positive, got %v", g.GridSize)
	case g.Money < 0:
		return fmt.Errorf("config: game.money must not be negative, got %d", g.Money)
	case g.Lives <= 0:
		return fmt.Errorf("config: game.lives must be positive, got %d", g.Lives)
	case g.Waves <= 0:
		return fmt.Errorf("config: game.waves must be positive, got %d", g.Waves)
	case g.MaxPool < 0:
		return fmt.Errorf("config: game.max_pool must not be negative, got %d", g.MaxPool)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio.volume must be in 0..1, got %v", c.Audio.Volume)
	}

	for code := range c.Towers {
		if utf8.RuneCountInString(code) != 1 {
			return fmt.Errorf("config: towers.%s: code must be a single character", code)
		}
	}
	return nil
}

// Catalog builds the content catalog with the file overrides applied
func (c *Config) Catalog() (*content.Catalog, error) {
	cat := content.Default()

	switch {
	case c.Level.File != "":
		rows, err := content.LoadLevelFile(c.Level.File)
		if err != nil {
			return nil, err
		}
		cat.Level = rows
	case len(c.Level.Rows) > 0:
		cat.Level = append([]string(nil), c.Level.Rows...)
	}

	for code, stats := range c.Towers {
		r, _ := utf8.DecodeRuneInString(code)
		cat.Towers[r] = stats
	}
	if len(c.Spawners) > 0 {
		cat.Spawners = c.Spawners
	}
	if c.Schedule != nil {
		cat.Schedule = c.Schedule
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// GameConfig returns the game settings; the catalog comes from Catalog
func (c *Config) GameConfig() (game.Config, error) {
	cat, err := c.Catalog()
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		Catalog: cat,
		Session: engine.SessionConfig{
			Money:  c.Game.Money,
			Lives:  c.Game.Lives,
			Waves:  c.Game.Waves,
			Bounty: c.Game.Bounty,
		},
		GridSize: c.Game.GridSize,
		FPS:      c.Game.FPS,
		MaxPool:  c.Game.MaxPool,
	}, nil
}

// KeyTable merges the [keys] and [runes] overrides into the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if c.Keys == nil && c.Runes == nil {
		return base, nil
	}
	override, err := input.ParseKeymap(c.Keys, c.Runes)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return input.MergeKeyTable(base, override), nil
}
