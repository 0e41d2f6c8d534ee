package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityWave    = 10  // Economy and spawning before movement
	PriorityCreep   = 20  // Pool update
	PriorityTower   = 30  // Sees this step's creep positions
	PriorityAura    = 40  // Caster scan after damage resolution
	PriorityEffect  = 50  // Shot tracers
	PriorityOutcome = 100 // Win/lose check, last
)

// Render Layer Priorities (lower draws first)
const (
	LayerBackground = 0
	LayerTowers     = 100
	LayerSpawners   = 150
	LayerCreeps     = 200
	LayerShots      = 300
	LayerHUD        = 900
	LayerOverlay    = 1000
)
