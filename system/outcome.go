package system

import (
	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/event"
	"github.com/lixenwraith/creepwave/parameter"
)

// OutcomeSystem decides the end of the game once per step
// Lives exhausted loses; no waves left wins. Loss is checked first
type OutcomeSystem struct {
	field *Field

	// OnOutcome runs once when the game ends, typically stopping the loop
	OnOutcome func(engine.Outcome)
}

// NewOutcomeSystem creates the end-of-game check for field
func NewOutcomeSystem(field *Field, onOutcome func(engine.Outcome)) *OutcomeSystem {
	return &OutcomeSystem{
		field:     field,
		OnOutcome: onOutcome,
	}
}

// Name returns system's name
func (s *OutcomeSystem) Name() string {
	return "outcome"
}

// Priority returns the system's priority
func (s *OutcomeSystem) Priority() int {
	return parameter.PriorityOutcome
}

// Update latches the outcome
func (s *OutcomeSystem) Update(dt float64) {
	f := s.field
	session := f.Session
	if session.IsOver() {
		return
	}

	switch {
	case session.Lives <= 0:
		session.Outcome = engine.OutcomeLost
		f.Events.Emit(event.EventGameLost, f.wavePayload(0))
	case session.WavesLeft <= 0:
		session.Outcome = engine.OutcomeWon
		f.Events.Emit(event.EventGameWon, f.wavePayload(0))
	default:
		return
	}

	if s.OnOutcome != nil {
		s.OnOutcome(session.Outcome)
	}
}
