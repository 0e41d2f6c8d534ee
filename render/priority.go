package render

import "github.com/lixenwraith/creepwave/parameter"

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = parameter.LayerBackground
	PriorityTowers     RenderPriority = parameter.LayerTowers
	PrioritySpawners   RenderPriority = parameter.LayerSpawners
	PriorityCreeps     RenderPriority = parameter.LayerCreeps
	PriorityShots      RenderPriority = parameter.LayerShots
	PriorityHUD        RenderPriority = parameter.LayerHUD
	PriorityOverlay    RenderPriority = parameter.LayerOverlay
)
