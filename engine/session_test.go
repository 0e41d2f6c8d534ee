package engine

import (
	"testing"

	"github.com/google/uuid"
)

func testSessionConfig() SessionConfig {
	return SessionConfig{Money: 110, Lives: 20, Waves: 20, Bounty: 30}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(testSessionConfig())

	if s.ID == uuid.Nil {
		t.Error("Expected a session ID")
	}
	if s.Money != 110 || s.Lives != 20 || s.WavesLeft != 20 || s.Round != 1 || s.Income != 0 {
		t.Errorf("Unexpected starting state: %+v", s)
	}
	if s.GameSpeed != 1 {
		t.Errorf("Expected game speed 1, got %v", s.GameSpeed)
	}
	if s.Outcome != OutcomeNone {
		t.Errorf("Expected no outcome, got %v", s.Outcome)
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession(testSessionConfig())
	first := s.ID

	s.Money = 5
	s.Round = 7
	s.WaveInProgress = true
	s.Outcome = OutcomeLost
	s.Reset()

	if s.Money != 110 || s.Round != 1 || s.WaveInProgress || s.Outcome != OutcomeNone {
		t.Errorf("Expected starting state after reset, got %+v", s)
	}
	if s.ID == first {
		t.Error("Expected a new ID after reset")
	}
}

func TestSessionLeak(t *testing.T) {
	s := NewSession(testSessionConfig())
	s.Leak()

	if s.Lives != 19 {
		t.Errorf("Expected 19 lives, got %d", s.Lives)
	}
	if s.Money != 140 {
		t.Errorf("Expected money 140, got %d", s.Money)
	}
}

func TestSessionSpend(t *testing.T) {
	s := NewSession(testSessionConfig())

	if !s.Spend(60) {
		t.Fatal("Expected spend of 60 to succeed")
	}
	if s.Money != 50 {
		t.Errorf("Expected money 50, got %d", s.Money)
	}
	if s.Spend(60) {
		t.Error("Expected spend beyond balance to fail")
	}
	if s.Money != 50 {
		t.Errorf("Expected money unchanged at 50, got %d", s.Money)
	}
}

func TestSessionSetGameSpeed(t *testing.T) {
	tests := []struct {
		in   int
		want float64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{9, 3},
	}

	s := NewSession(testSessionConfig())
	for _, tt := range tests {
		s.SetGameSpeed(tt.in)
		if s.GameSpeed != tt.want {
			t.Errorf("SetGameSpeed(%d): expected %v, got %v", tt.in, tt.want, s.GameSpeed)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeWon.String() != "won" || OutcomeLost.String() != "lost" {
		t.Errorf("Unexpected outcome names %q %q", OutcomeWon, OutcomeLost)
	}
}
