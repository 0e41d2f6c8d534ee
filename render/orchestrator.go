package render

type rendererEntry struct {
	renderer LayerRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an empty orchestrator
func NewRenderOrchestrator() *RenderOrchestrator {
	return &RenderOrchestrator{
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers every game layer at its standard priority
func NewDefaultOrchestrator() *RenderOrchestrator {
	o := NewRenderOrchestrator()
	o.Register(&BackgroundRenderer{}, PriorityBackground)
	o.Register(&TowerRenderer{}, PriorityTowers)
	o.Register(&SpawnerRenderer{}, PrioritySpawners)
	o.Register(&CreepRenderer{}, PriorityCreeps)
	o.Register(&ShotRenderer{}, PriorityShots)
	o.Register(&HUDRenderer{}, PriorityHUD)
	o.Register(&OverlayRenderer{}, PriorityOverlay)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r LayerRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Len returns the number of registered renderers
func (o *RenderOrchestrator) Len() int {
	return len(o.renderers)
}

// RenderFrame runs every visible renderer in priority order
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext, s Surface) {
	if ctx.Snapshot == nil {
		return
	}
	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, s)
	}
}
