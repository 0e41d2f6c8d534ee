package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/creepwave/input"
)

var specialKeys = map[ebiten.Key]input.Key{
	ebiten.KeyEscape:    input.KeyEscape,
	ebiten.KeyEnter:     input.KeyEnter,
	ebiten.KeyTab:       input.KeyTab,
	ebiten.KeyBackspace: input.KeyBackspace,
	ebiten.KeyF1:        input.KeyF1,
	ebiten.KeyF2:        input.KeyF2,
	ebiten.KeyF3:        input.KeyF3,
	ebiten.KeyF4:        input.KeyF4,
	ebiten.KeyF5:        input.KeyF5,
	ebiten.KeyF6:        input.KeyF6,
	ebiten.KeyF7:        input.KeyF7,
	ebiten.KeyF8:        input.KeyF8,
	ebiten.KeyF9:        input.KeyF9,
}

// convertKey maps a just-pressed non-printable key
// Printable keys arrive through AppendInputChars and are not converted here
func convertKey(k ebiten.Key, ctrl, shift bool) (input.Key, bool) {
	if ctrl {
		switch k {
		case ebiten.KeyC:
			return input.KeyCtrlC, true
		case ebiten.KeyQ:
			return input.KeyCtrlQ, true
		}
		return input.KeyNone, false
	}
	if k == ebiten.KeyTab && shift {
		return input.KeyBacktab, true
	}
	key, ok := specialKeys[k]
	return key, ok
}
