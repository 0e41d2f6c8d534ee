package parameter

// Session Defaults
const (
	// StartingMoney is the balance at session start
	StartingMoney = 110

	// StartingLives is the number of leaks tolerated before losing
	StartingLives = 20

	// StartingWaves is the number of waves to send to win
	StartingWaves = 20

	// LeakBounty is credited to the player each time a creep reaches the end of the route
	LeakBounty = 30

	// RefundRate is the share of spent money returned when a spawner is sold
	RefundRate = 0.75
)

// Wave Timing (simulated seconds)
const (
	// IncomeInterval between income credits while a wave is active
	IncomeInterval = 1.0

	// GroupInterval between spawned groups within a wave
	GroupInterval = 2.0

	// GroupsPerWave is the number of groups before a wave stops spawning
	GroupsPerWave = 9

	// GroupSpacing is the pixel gap between creeps of one group
	GroupSpacing = 2

	// HealInterval between passive heal ticks
	HealInterval = 1.0
)

// Creep Pool
const (
	// CreepPoolMaxSize bounds the creep pool, 0 for unbounded
	CreepPoolMaxSize = 0

	// ShotPoolMaxSize bounds the tracer pool; tracers beyond it are silently skipped
	ShotPoolMaxSize = 64

	// ShotTTL is the tracer lifetime in simulation steps
	ShotTTL = 6
)
