package render

import (
	"github.com/lixenwraith/creepwave/game"
	"github.com/lixenwraith/creepwave/input"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot *game.Snapshot

	// Frame counter from the loop, drives blinking
	Frame int64

	// Frontend toggles
	Muted bool
	Debug bool

	// Keys supplies menu hints, numbered hints when nil
	Keys *input.KeyTable
}

// NewRenderContext wraps a snapshot for one frame
func NewRenderContext(snap *game.Snapshot, frame int64) RenderContext {
	return RenderContext{
		Snapshot: snap,
		Frame:    frame,
	}
}

// HUDTop returns the y coordinate where the status panel starts
func (ctx RenderContext) HUDTop() float64 {
	return ctx.Snapshot.Height
}
