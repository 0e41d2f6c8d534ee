package engine

// System is a unit of per-step simulation logic
type System interface {
	// Name identifies the system in logs and metrics
	Name() string

	// Priority orders execution, lower runs first
	Priority() int

	// Update advances the system by dt seconds of simulated time
	Update(dt float64)
}

// World runs registered systems in priority order
// All calls happen on the loop goroutine, no locking
type World struct {
	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		systems: make([]System, 0),
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(dt)
	}
}
