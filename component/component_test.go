package component

import (
	"testing"

	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/event"
	"github.com/lixenwraith/creepwave/level"
	"github.com/lixenwraith/creepwave/vmath"
)

const testGrid = 10.0

func newTestSession() *engine.Session {
	return engine.NewSession(engine.SessionConfig{Money: 110, Lives: 20, Waves: 20, Bounty: 30})
}

// newTestTrack builds a track over cells with a field large enough to contain the route
func newTestTrack(t *testing.T, cells ...level.Cell) *Track {
	t.Helper()
	route, err := level.NewRoute(cells, testGrid)
	if err != nil {
		t.Fatalf("NewRoute failed: %v", err)
	}
	return &Track{
		Route:   route,
		Field:   vmath.Rect{Width: 100, Height: 100},
		Session: newTestSession(),
		Events:  event.NewEventQueue(),
	}
}

func footmanStats() CreepStats {
	return CreepStats{
		Title: "Footman", Label: "footman", Cost: 60, IncomeSec: 1, Spawns: 1,
		Speed: 1, Health: 20, Width: 10, Height: 10, Color: "blue", Key: "F",
	}
}

func TestCreepSetStartsAtRouteEntry(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 3})
	c := NewCreep(track)

	if c.IsAlive() {
		t.Fatal("Expected new creep to be dead")
	}

	c.Set(footmanStats())

	if !c.IsAlive() || c.TimeToLive != engine.Infinite {
		t.Errorf("Expected alive creep with infinite ttl, got %d", c.TimeToLive)
	}
	if c.Position.X != -5 || c.Position.Y != 5 {
		t.Errorf("Expected position (-5,5), got (%v,%v)", c.Position.X, c.Position.Y)
	}
	if c.Velocity.X != 1 || c.Velocity.Y != 0 {
		t.Errorf("Expected velocity (1,0), got (%v,%v)", c.Velocity.X, c.Velocity.Y)
	}
	if c.WP != 1 || c.WPX != 35 || c.WPY != 5 {
		t.Errorf("Expected wp 1 at (35,5), got %d at (%v,%v)", c.WP, c.WPX, c.WPY)
	}
	if c.FullHealth != 20 || c.Health != 20 {
		t.Errorf("Expected health 20/20, got %v/%v", c.Health, c.FullHealth)
	}
	if c.CenterX != -10 || c.CenterY != 0 {
		t.Errorf("Expected draw origin (-10,0), got (%d,%d)", c.CenterX, c.CenterY)
	}
}

func TestCreepDamage(t *testing.T) {
	tests := []struct {
		name       string
		armor      float64
		dodge      float64
		resist     float64
		amount     float64
		sp         Specials
		roll       float64
		wantHealth float64
		wantKilled bool
	}{
		{"armor mitigates", 5, 0, 0, 20, Specials{}, 0, 5, false},
		{"armor piercing", 5, 0, 0, 10, Specials{ArmorPiercing: 7.5}, 0, 10, false},
		{"mitigation floors at zero", 30, 0, 0, 20, Specials{}, 0, 20, false},
		{"dodge 100 always misses", 5, 100, 0, 20, Specials{}, 0.999, 20, false},
		{"dodge roll fails", 0, 25, 0, 5, Specials{}, 0.5, 15, false},
		{"resist ignored for physical hits", 0, 0, 5, 10, Specials{}, 0, 10, false},
		{"resist applies to magic hits", 0, 0, 5, 15, Specials{ArmorPiercing: 7.5}, 0, 10, false},
		{"lethal", 0, 0, 0, 25, Specials{}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 3})
			roll := tt.roll
			track.Rand = func() float64 { return roll }

			stats := footmanStats()
			stats.Armor = tt.armor
			stats.Dodge = tt.dodge
			c := NewCreep(track)
			c.Set(stats)
			c.ResistPiercing = tt.resist

			killed := c.Damage(tt.amount, tt.sp)
			if killed != tt.wantKilled {
				t.Errorf("Expected killed=%v, got %v", tt.wantKilled, killed)
			}
			if c.Health != tt.wantHealth {
				t.Errorf("Expected health %v, got %v", tt.wantHealth, c.Health)
			}
			if c.IsAlive() == tt.wantKilled {
				t.Errorf("Expected alive=%v", !tt.wantKilled)
			}
		})
	}
}

func TestCreepDamageOnDeadCreep(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 3})
	c := NewCreep(track)
	c.Set(footmanStats())

	if !c.Damage(100, Specials{}) {
		t.Fatal("Expected first hit to kill")
	}
	if c.Damage(100, Specials{}) {
		t.Error("Expected hit on dead creep to report no kill")
	}
}

func TestCreepWaypointTransition(t *testing.T) {
	track := newTestTrack(t,
		level.Cell{Row: 0, Col: -1},
		level.Cell{Row: 0, Col: 3},
		level.Cell{Row: 3, Col: 3},
		level.Cell{Row: 3, Col: 10},
	)
	c := NewCreep(track)
	c.Set(footmanStats())

	// From x=-5 to wpX=35 at one pixel per step
	for i := 0; i < 39; i++ {
		c.Update(1.0 / 60)
	}
	if c.WP != 1 {
		t.Fatalf("Expected wp 1 before reaching x=35, got %d at x=%v", c.WP, c.Position.X)
	}

	c.Update(1.0 / 60)
	if c.WP != 2 {
		t.Fatalf("Expected wp 2 at x=%v, got %d", c.Position.X, c.WP)
	}
	if c.Velocity.X != 0 || c.Velocity.Y != 1 {
		t.Errorf("Expected velocity (0,1) toward next waypoint, got (%v,%v)", c.Velocity.X, c.Velocity.Y)
	}
	if c.WPX != 35 || c.WPY != 35 {
		t.Errorf("Expected target (35,35), got (%v,%v)", c.WPX, c.WPY)
	}
}

func TestCreepReachesEnd(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 1})
	stats := footmanStats()
	stats.Speed = 5
	c := NewCreep(track)
	c.Set(stats)

	for i := 0; i < 3; i++ {
		c.Update(1.0 / 60)
	}
	if !c.IsAlive() {
		t.Fatal("Expected creep alive before final waypoint")
	}

	c.Update(1.0 / 60)
	if c.IsAlive() {
		t.Fatal("Expected creep dead after final waypoint")
	}
	if track.Session.Lives != 19 {
		t.Errorf("Expected 19 lives, got %d", track.Session.Lives)
	}
	if track.Session.Money != 140 {
		t.Errorf("Expected money 140, got %d", track.Session.Money)
	}
	if c.Health != 0 || c.Stats.Speed != 0 {
		t.Errorf("Expected numeric state reset, got health %v speed %v", c.Health, c.Stats.Speed)
	}

	events := track.Events.Consume()
	if len(events) != 1 || events[0].Type != event.EventCreepLeaked {
		t.Errorf("Expected one leak event, got %v", events)
	}
}

func TestCreepTraveledGate(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 8})
	c := NewCreep(track)
	c.Set(footmanStats())

	// x goes -5 -> 0 outside the field, counting starts on the first step strictly inside
	for i := 0; i < 5; i++ {
		c.Update(1.0 / 60)
	}
	if c.StartCounting || c.Traveled != 0 {
		t.Fatalf("Expected no counting at x=%v, got %v traveled %v", c.Position.X, c.StartCounting, c.Traveled)
	}

	c.Update(1.0 / 60)
	if !c.StartCounting || c.Traveled != 0 {
		t.Fatalf("Expected gate open without accrual, got %v traveled %v", c.StartCounting, c.Traveled)
	}

	prev := c.Traveled
	for i := 0; i < 10; i++ {
		c.Update(1.0 / 60)
		if c.Traveled <= prev {
			t.Fatalf("Expected traveled to increase, got %v after %v", c.Traveled, prev)
		}
		prev = c.Traveled
	}
	if c.Traveled != 10 {
		t.Errorf("Expected traveled 10, got %v", c.Traveled)
	}
}

func TestCreepHealsOncePerSecond(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 100})
	stats := footmanStats()
	stats.HealSec = 2
	stats.Health = 40
	c := NewCreep(track)
	c.Set(stats)
	c.Health = 35

	for i := 0; i < 59; i++ {
		c.Update(1.0 / 60)
	}
	if c.Health != 35 {
		t.Errorf("Expected no heal before a full second, got %v", c.Health)
	}

	for i := 0; i < 2; i++ {
		c.Update(1.0 / 60)
	}
	if c.Health != 37 {
		t.Errorf("Expected 37 after one second, got %v", c.Health)
	}

	c.Update(3)
	if c.Health != 40 {
		t.Errorf("Expected heal clamped to 40, got %v", c.Health)
	}
}

func TestCreepGameSpeedScalesMovement(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 100})
	track.Session.SetGameSpeed(3)
	c := NewCreep(track)
	c.Set(footmanStats())

	c.Update(1.0 / 60)
	if c.Position.X != -2 {
		t.Errorf("Expected x -2 after one step at speed 3, got %v", c.Position.X)
	}
}
