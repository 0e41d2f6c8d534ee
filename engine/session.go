package engine

import (
	"github.com/google/uuid"
)

// Outcome is the terminal state of a session
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "playing"
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

const (
	MinGameSpeed = 1
	MaxGameSpeed = 3
)

// SessionConfig holds the starting values applied by Reset
type SessionConfig struct {
	Money  int
	Lives  int
	Waves  int
	Bounty int // Money credited when a creep leaks
}

// Session is the mutable economy and wave state of one game
// Written only by the update phase
type Session struct {
	ID uuid.UUID

	Money     int
	Income    int
	Lives     int
	WavesLeft int
	Round     int
	Bounty    int

	GroupCount     int
	WaveInProgress bool
	GameSpeed      float64

	IncomeAccumulator float64
	SpawnAccumulator  float64

	Outcome Outcome

	cfg SessionConfig
}

// NewSession creates a session initialized from cfg
func NewSession(cfg SessionConfig) *Session {
	s := &Session{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores the starting values and assigns a new ID
func (s *Session) Reset() {
	cfg := s.cfg
	*s = Session{
		ID:        uuid.New(),
		Money:     cfg.Money,
		Lives:     cfg.Lives,
		WavesLeft: cfg.Waves,
		Round:     1,
		Bounty:    cfg.Bounty,
		GameSpeed: MinGameSpeed,
		cfg:       cfg,
	}
}

// Leak applies a creep reaching the end of the route
func (s *Session) Leak() {
	s.Lives--
	s.Money += s.Bounty
}

// CanAfford reports whether cost can be paid
func (s *Session) CanAfford(cost int) bool {
	return s.Money >= cost
}

// Spend deducts cost, false and no change when unaffordable
func (s *Session) Spend(cost int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.Money -= cost
	return true
}

// SetGameSpeed sets the simulation multiplier, clamped to [MinGameSpeed, MaxGameSpeed]
func (s *Session) SetGameSpeed(n int) {
	s.GameSpeed = float64(min(max(n, MinGameSpeed), MaxGameSpeed))
}

// IsOver reports whether the session reached a terminal outcome
func (s *Session) IsOver() bool {
	return s.Outcome != OutcomeNone
}
