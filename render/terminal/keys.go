package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/creepwave/input"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBacktab:    input.KeyBacktab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyCtrlC:      input.KeyCtrlC,
	tcell.KeyCtrlQ:      input.KeyCtrlQ,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
}

// convertKey maps a tcell key event to the frontend-neutral key
func convertKey(ev *tcell.EventKey) (input.Key, rune, bool) {
	if ev.Key() == tcell.KeyRune {
		return input.KeyRune, ev.Rune(), true
	}
	k, ok := specialKeys[ev.Key()]
	return k, 0, ok
}
