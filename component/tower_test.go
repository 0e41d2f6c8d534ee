package component

import (
	"errors"
	"testing"

	"github.com/lixenwraith/creepwave/level"
)

func arrowStats() TowerStats {
	return TowerStats{Title: "Arrow Tower", Label: "arrow", Width: 32, Height: 32, Range: 2.5, FireRate: 2, Damage: 10}
}

// placeCreep spawns a creep and pins it at x, y with the given traveled distance
func placeCreep(track *Track, stats CreepStats, x, y, traveled float64) *Creep {
	c := NewCreep(track)
	c.Set(stats)
	c.Position.Set(x, y)
	c.Traveled = traveled
	return c
}

func TestTowerTargetsFurthestTraveled(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 20})
	tower := NewTower(0, '>', arrowStats(), level.Cell{Row: 2, Col: 2}, testGrid, false)
	cx, cy := tower.Center.X, tower.Center.Y

	tests := []struct {
		name      string
		traveled  [3]float64
		positions [3][2]float64
		want      int // Index of expected target, -1 for none
	}{
		{"equal distance, greater traveled wins", [3]float64{4, 9, 2}, [3][2]float64{{cx + 10, cy}, {cx - 10, cy}, {cx, cy + 10}}, 1},
		{"equal traveled keeps first scanned", [3]float64{5, 5, 5}, [3][2]float64{{cx + 10, cy}, {cx - 10, cy}, {cx, cy + 10}}, 0},
		{"out of range ignored", [3]float64{4, 9, 2}, [3][2]float64{{cx + 10, cy}, {cx + 100, cy}, {cx, cy + 10}}, 0},
		{"zero traveled never targeted", [3]float64{0, 0, 0}, [3][2]float64{{cx, cy}, {cx, cy}, {cx, cy}}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creeps := make([]*Creep, 3)
			for i := range creeps {
				creeps[i] = placeCreep(track, footmanStats(), tt.positions[i][0], tt.positions[i][1], tt.traveled[i])
			}

			tower.Accumulator = 0
			tower.Update(0, creeps)

			if tt.want < 0 {
				if tower.Target != nil {
					t.Errorf("Expected no target, got %p", tower.Target)
				}
				return
			}
			if tower.Target != creeps[tt.want] {
				t.Errorf("Expected creep %d targeted", tt.want)
			}
		})
	}
}

func TestTowerFireCadence(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 20})
	tower := NewTower(0, '>', arrowStats(), level.Cell{Row: 0, Col: 0}, testGrid, false)
	stats := footmanStats()
	stats.Health = 1000
	c := placeCreep(track, stats, tower.Center.X, tower.Center.Y, 1)
	creeps := []*Creep{c}

	shots := 0
	for i := 0; i < 8; i++ {
		if tower.Update(0.25, creeps) {
			shots++
		}
	}

	// 2 seconds at 2 shots per second
	if shots != 4 {
		t.Errorf("Expected 4 shots, got %d", shots)
	}
	if c.Health != 960 {
		t.Errorf("Expected health 960, got %v", c.Health)
	}
}

func TestTowerIdleDoesNotBank(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 20})
	tower := NewTower(0, '>', arrowStats(), level.Cell{Row: 0, Col: 0}, testGrid, false)

	for i := 0; i < 100; i++ {
		tower.Update(0.1, nil)
	}
	if tower.Accumulator >= tower.RateOfFire+1e-9 {
		t.Errorf("Expected idle accumulator at most %v, got %v", tower.RateOfFire, tower.Accumulator)
	}

	stats := footmanStats()
	stats.Health = 1000
	c := placeCreep(track, stats, tower.Center.X, tower.Center.Y, 1)
	creeps := []*Creep{c}

	shots := 0
	for i := 0; i < 3; i++ {
		if tower.Update(0.1, creeps) {
			shots++
		}
	}
	if shots != 1 {
		t.Errorf("Expected a single shot after idling, got %d", shots)
	}
}

func TestTowerSplash(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 20})
	cannon := TowerStats{Title: "Cannon Tower", Label: "cannon", Width: 32, Height: 32, Range: 3, FireRate: 0.34, Damage: 20, Aura: 0.5}
	tower := NewTower(0, '@', cannon, level.Cell{Row: 2, Col: 2}, testGrid, false)
	cx, cy := tower.Center.X, tower.Center.Y

	stats := footmanStats()
	stats.Health = 100
	primary := placeCreep(track, stats, cx, cy, 10)
	near := placeCreep(track, stats, cx+4, cy, 5)
	far := placeCreep(track, stats, cx+20, cy, 1)

	tower.Accumulator = tower.RateOfFire
	if !tower.Update(0, []*Creep{near, primary, far}) {
		t.Fatal("Expected cannon to fire")
	}

	if len(tower.Hits) != 2 {
		t.Errorf("Expected 2 creeps hit, got %d", len(tower.Hits))
	}
	if primary.Health != 80 || near.Health != 80 {
		t.Errorf("Expected primary and splash target at 80, got %v and %v", primary.Health, near.Health)
	}
	if far.Health != 100 {
		t.Errorf("Expected creep outside splash untouched, got %v", far.Health)
	}
}

func TestTowerBuildingSkips(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 20})
	tower := NewTower(0, '>', arrowStats(), level.Cell{Row: 0, Col: 0}, testGrid, true)
	c := placeCreep(track, footmanStats(), tower.Center.X, tower.Center.Y, 1)

	for i := 0; i < 10; i++ {
		if tower.Update(1, []*Creep{c}) {
			t.Fatal("Expected building tower not to fire")
		}
	}
	if tower.Accumulator != 0 || tower.Target != nil {
		t.Errorf("Expected no state change while building, got acc %v target %p", tower.Accumulator, tower.Target)
	}

	tower.Upgrade()
	tower.Accumulator = 0
	if !tower.Update(0.5, []*Creep{c}) {
		t.Error("Expected tower to fire after construction")
	}
}

func TestTowerUpgradeSwapsStats(t *testing.T) {
	tower := NewTower(0, '>', arrowStats(), level.Cell{Row: 0, Col: 0}, 40, false)
	bolt := TowerStats{Title: "Bolt Tower", Label: "arrow", Width: 32, Height: 32, Range: 2.75, FireRate: 4, Damage: 15}

	tower.BeginUpgrade('^', bolt)
	if !tower.IsBuilding || tower.Type != '^' || tower.Stats.Damage != 15 {
		t.Errorf("Expected building bolt tower, got building=%v type=%q damage=%v", tower.IsBuilding, tower.Type, tower.Stats.Damage)
	}
	if tower.RateOfFire != 0.25 {
		t.Errorf("Expected fire interval 0.25, got %v", tower.RateOfFire)
	}
	if tower.RangeRadius() != 110 {
		t.Errorf("Expected range 110px, got %v", tower.RangeRadius())
	}

	tower.Upgrade()
	if tower.IsBuilding {
		t.Error("Expected upgrade to finish construction")
	}
}

func TestThreeFootmenDieWithinThreeSeconds(t *testing.T) {
	track := newTestTrack(t, level.Cell{Row: 0, Col: -1}, level.Cell{Row: 0, Col: 20})
	tower := NewTower(0, '>', arrowStats(), level.Cell{Row: 2, Col: 2}, testGrid, false)

	creeps := make([]*Creep, 3)
	for i := range creeps {
		creeps[i] = placeCreep(track, footmanStats(), tower.Center.X+float64(i), tower.Center.Y, float64(3-i))
	}

	const dt = 1.0 / 60
	// One extra step absorbs float accumulation at the 3s boundary
	steps := 3*60 + 1
	killedAt := -1
	for i := 1; i <= steps; i++ {
		tower.Update(dt, creeps)
		alive := 0
		for _, c := range creeps {
			if c.IsAlive() {
				alive++
			}
		}
		if i == 170 && alive != 1 {
			t.Errorf("Expected one footman left at 2.83s, got %d", alive)
		}
		if alive == 0 {
			killedAt = i
			break
		}
	}

	if killedAt < 0 {
		t.Fatalf("Expected all footmen dead within %d steps", steps)
	}
}

func TestSpawnerLifecycle(t *testing.T) {
	spawns2 := 2
	defs := []SpawnerDef{{
		Creep: footmanStats(),
		Upgrades: []UpgradeTrack{{
			Title:  "Training Grounds",
			Levels: []UpgradeLevel{{Cost: 110, Apply: StatDelta{Spawns: &spawns2}}, {Cost: 200, Apply: StatDelta{Spawns: Int(3)}}},
		}},
	}}
	s := NewSpawner(0, level.Cell{Row: 11, Col: 1}, 40, defs)
	session := newTestSession()

	if s.IsOwned() || s.Creep().Spawns != 0 {
		t.Fatal("Expected empty spawner")
	}

	opts := s.Options()
	if len(opts) != 1 || opts[0].Kind != OptionBuy || opts[0].Cost != 60 {
		t.Fatalf("Unexpected empty options %+v", opts)
	}

	if _, err := s.Purchase(0, session); err != nil {
		t.Fatalf("Buy failed: %v", err)
	}
	if session.Money != 50 || session.Income != 1 {
		t.Errorf("Expected money 50 income 1, got %d %d", session.Money, session.Income)
	}
	if s.Refund() != 45 {
		t.Errorf("Expected refund 45, got %d", s.Refund())
	}

	opts = s.Options()
	if len(opts) != 2 || opts[0].Kind != OptionUpgrade || opts[1].Kind != OptionSell {
		t.Fatalf("Unexpected owned options %+v", opts)
	}
	if opts[0].Label() != "Training Grounds (0/2)" {
		t.Errorf("Unexpected label %q", opts[0].Label())
	}

	if _, err := s.Purchase(0, session); !errors.Is(err, ErrCannotAfford) {
		t.Errorf("Expected ErrCannotAfford, got %v", err)
	}

	session.Money = 1000
	for i := 0; i < 2; i++ {
		if _, err := s.Purchase(0, session); err != nil {
			t.Fatalf("Upgrade %d failed: %v", i, err)
		}
	}
	if s.Creep().Spawns != 3 {
		t.Errorf("Expected 3 spawns, got %d", s.Creep().Spawns)
	}
	if s.Refund() != 45+83+150 {
		t.Errorf("Expected refund 278, got %d", s.Refund())
	}
	if opts := s.Options(); !opts[0].Completed {
		t.Error("Expected track completed")
	}
	if _, err := s.Purchase(0, session); !errors.Is(err, ErrCompleted) {
		t.Errorf("Expected ErrCompleted, got %v", err)
	}

	money := session.Money
	if _, err := s.Purchase(1, session); err != nil {
		t.Fatalf("Sell failed: %v", err)
	}
	if session.Money != money+278 || session.Income != 0 {
		t.Errorf("Expected refund credited and income removed, got %d %d", session.Money, session.Income)
	}
	if s.IsOwned() || s.Creep().Spawns != 0 {
		t.Error("Expected spawner empty after sale")
	}

	if _, err := s.Purchase(5, session); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption, got %v", err)
	}
}

func TestSpawnerHitTest(t *testing.T) {
	s := NewSpawner(0, level.Cell{Row: 11, Col: 1}, 40, nil)
	cursor := s.Cell.Rect(40)
	cursor.X += 5
	cursor.Y += 5
	cursor.Width, cursor.Height = 1, 1

	if !s.CollidesWith(cursor) {
		t.Error("Expected cursor inside slot to collide")
	}
	cursor.X = 0
	if s.CollidesWith(cursor) {
		t.Error("Expected cursor outside slot not to collide")
	}
}

func TestStatLabel(t *testing.T) {
	tests := []struct {
		kind StatKind
		v    float64
		want string
	}{
		{StatFireRate, 0.34, "Very Slow"},
		{StatFireRate, 2, "Medium"},
		{StatRange, 2.25, "Medium"},
		{StatRange, 3, "Very Far"},
		{StatArmor, 0, "None"},
		{StatArmor, 4, "Medium"},
		{StatSpeed, 1.35, "Medium"},
		{StatSpeed, 3, "Extremely Fast"},
		{StatMagicResist, 10, "Medium"},
	}
	for _, tt := range tests {
		if got := StatLabel(tt.kind, tt.v); got != tt.want {
			t.Errorf("StatLabel(%d, %v): expected %q, got %q", tt.kind, tt.v, tt.want, got)
		}
	}
}
