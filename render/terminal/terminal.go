// Package terminal runs the game in a terminal through tcell
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/creepwave/core"
	"github.com/lixenwraith/creepwave/game"
	"github.com/lixenwraith/creepwave/input"
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/render"
)

// Options configures the terminal frontend
type Options struct {
	Debug bool

	// ToggleMute flips audio and returns the new muted state, nil disables the key
	ToggleMute func() bool
	Muted      bool
}

// Terminal drives the game loop and draws cells to a tcell screen
// Input is polled on its own goroutine and handed to the loop as actions
type Terminal struct {
	screen tcell.Screen
	game   *game.Game
	keys   *input.KeyTable
	orch   *render.RenderOrchestrator
	buf    *CellBuffer
	opts   Options

	actions chan func()
	keyed   chan struct{}
	cancel  context.CancelFunc
}

// New creates a terminal frontend; a nil screen opens the real terminal in Run
func New(screen tcell.Screen, g *game.Game, keys *input.KeyTable, opts Options) *Terminal {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	t := &Terminal{
		screen:  screen,
		game:    g,
		keys:    keys,
		orch:    render.NewDefaultOrchestrator(),
		buf:     NewCellBuffer(0, 0),
		opts:    opts,
		actions: make(chan func(), 64),
		keyed:   make(chan struct{}, 1),
	}
	g.SetRenderer(t.draw)
	return t
}

// Run blocks until quit, context cancellation, or a key press after the game ends
func (t *Terminal) Run(ctx context.Context) error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	core.SetRestore(t.screen.Fini)
	defer func() {
		core.SetRestore(nil)
		t.screen.Fini()
	}()

	ctx, t.cancel = context.WithCancel(ctx)
	defer t.cancel()

	t.resize()
	t.draw()
	core.Go(func() { t.poll(ctx) })

	err := t.game.Loop().Run(ctx, t.actions)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil || !t.game.Session.IsOver() {
		return err
	}

	// Keep the final frame until a key is pressed
	t.draw()
	select {
	case <-t.keyed:
	default:
	}
	select {
	case <-t.keyed:
	case <-ctx.Done():
	}
	return nil
}

// poll forwards screen events until the screen is finalized or ctx ends
func (t *Terminal) poll(ctx context.Context) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		var fn func()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case t.keyed <- struct{}{}:
			default:
			}
			key, r, ok := convertKey(ev)
			if !ok {
				continue
			}
			in, ok := t.keys.Resolve(key, r)
			if !ok {
				continue
			}
			if in.Type == input.IntentQuit {
				t.cancel()
				return
			}
			fn = func() { t.apply(in) }

		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			col, row := ev.Position()
			x := (float64(col) + 0.5) * parameter.TerminalCellWidth
			y := (float64(row) + 0.5) * parameter.TerminalCellHeight
			fn = func() { t.click(x, y) }

		case *tcell.EventResize:
			fn = func() {
				t.resize()
				t.screen.Sync()
			}
		}

		if fn == nil {
			continue
		}
		select {
		case t.actions <- fn:
		case <-ctx.Done():
			return
		}
	}
}

// apply runs on the loop goroutine
func (t *Terminal) apply(in input.Intent) {
	switch in.Type {
	case input.IntentToggleDebug:
		t.opts.Debug = !t.opts.Debug
	case input.IntentToggleMute:
		if t.opts.ToggleMute != nil {
			t.opts.Muted = t.opts.ToggleMute()
		}
	default:
		if err := t.game.Apply(in); err != nil && t.opts.Debug {
			log.Printf("terminal: %s: %v", in.Type, err)
		}
	}
}

func (t *Terminal) click(x, y float64) {
	if id, ok := t.game.SpawnerAt(x, y); ok {
		if err := t.game.SelectBuilding(id); err != nil {
			log.Printf("terminal: select spawner %d: %v", id, err)
		}
	}
}

func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	t.buf.Resize(cols, rows)
}

// draw renders the current snapshot and shows it
func (t *Terminal) draw() {
	if t.screen == nil {
		return
	}
	t.buf.Clear()
	ctx := render.NewRenderContext(t.game.Snapshot(), t.game.Frame())
	ctx.Muted = t.opts.Muted
	ctx.Debug = t.opts.Debug
	ctx.Keys = t.keys
	t.orch.RenderFrame(ctx, t.buf)
	t.buf.Flush(t.screen)
	t.screen.Show()
}
