// Package window runs the game in a desktop window through ebiten
package window

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/creepwave/game"
	"github.com/lixenwraith/creepwave/input"
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/render"
)

// Options configures the window frontend
type Options struct {
	Title string
	Scale int // Window size multiplier, parameter.WindowScale when zero
	Debug bool

	// ToggleMute flips audio and returns the new muted state, nil disables the key
	ToggleMute func() bool
	Muted      bool
}

// Window adapts a game to ebiten.Game
// ebiten calls Update and Draw on one goroutine, which becomes the loop goroutine
type Window struct {
	game    *game.Game
	keys    *input.KeyTable
	orch    *render.RenderOrchestrator
	opts    Options
	surface surface

	snap   *game.Snapshot
	width  int
	height int

	keyBuf  []ebiten.Key
	charBuf []rune
	quit    bool
}

// New wires the window as the game's renderer
func New(g *game.Game, keys *input.KeyTable, opts Options) *Window {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	if opts.Scale <= 0 {
		opts.Scale = parameter.WindowScale
	}
	if opts.Title == "" {
		opts.Title = "creepwave"
	}

	w := &Window{
		game: g,
		keys: keys,
		orch: render.NewDefaultOrchestrator(),
		opts: opts,
	}
	w.snap = g.Snapshot()
	w.width = int(w.snap.Width)
	w.height = int(w.snap.Height) + parameter.HUDHeight

	g.SetRenderer(func() { w.snap = g.Snapshot() })
	return w
}

// Run opens the window and blocks until it is closed or quit is requested
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.width*w.opts.Scale, w.height*w.opts.Scale)
	ebiten.SetWindowTitle(w.opts.Title)

	w.game.Loop().Start()
	defer w.game.Loop().Stop()

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update handles input, then advances the loop by one real frame
func (w *Window) Update() error {
	w.handleKeys()
	w.handleMouse()
	if w.quit {
		return ebiten.Termination
	}

	// Stopped loop after game over keeps the final snapshot on screen
	w.game.Loop().Frame()
	return nil
}

// Draw renders the latest snapshot
func (w *Window) Draw(screen *ebiten.Image) {
	w.surface.img = screen
	ctx := render.NewRenderContext(w.snap, w.game.Frame())
	ctx.Muted = w.opts.Muted
	ctx.Debug = w.opts.Debug
	ctx.Keys = w.keys
	w.orch.RenderFrame(ctx, &w.surface)
}

// Layout keeps the logical screen at playfield size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

func (w *Window) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	w.keyBuf = inpututil.AppendJustPressedKeys(w.keyBuf[:0])
	for _, k := range w.keyBuf {
		if key, ok := convertKey(k, ctrl, shift); ok {
			w.dispatch(key, 0)
		}
	}

	if ctrl {
		return
	}
	w.charBuf = ebiten.AppendInputChars(w.charBuf[:0])
	for _, r := range w.charBuf {
		w.dispatch(input.KeyRune, r)
	}
}

func (w *Window) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if id, ok := w.game.SpawnerAt(float64(x), float64(y)); ok {
		if err := w.game.SelectBuilding(id); err != nil {
			log.Printf("window: select spawner %d: %v", id, err)
		}
	}
}

func (w *Window) dispatch(key input.Key, r rune) {
	in, ok := w.keys.Resolve(key, r)
	if !ok {
		return
	}

	switch in.Type {
	case input.IntentQuit:
		w.quit = true
	case input.IntentToggleDebug:
		w.opts.Debug = !w.opts.Debug
	case input.IntentToggleMute:
		if w.opts.ToggleMute != nil {
			w.opts.Muted = w.opts.ToggleMute()
		}
	default:
		if err := w.game.Apply(in); err != nil && w.opts.Debug {
			log.Printf("window: %s: %v", in, err)
		}
	}
}
