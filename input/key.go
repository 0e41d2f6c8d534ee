package input

import "strings"

// Key identifies a non-printable key independent of the frontend
// Printable input arrives as KeyRune with the rune alongside
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyCtrlC
	KeyCtrlQ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
)

var keyNames = map[string]Key{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"backtab":   KeyBacktab,
	"backspace": KeyBackspace,
	"ctrl+c":    KeyCtrlC,
	"ctrl+q":    KeyCtrlQ,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
}

// KeyByName resolves a config key name, case-insensitive
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}

// FunctionKey returns F1..F9 for n in 1..9
func FunctionKey(n int) (Key, bool) {
	if n < 1 || n > 9 {
		return KeyNone, false
	}
	return KeyF1 + Key(n-1), true
}

var keyLabels = map[Key]string{
	KeyRune:      "rune",
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "S-Tab",
	KeyBackspace: "BS",
	KeyCtrlC:     "C-c",
	KeyCtrlQ:     "C-q",
}

// String returns a short display label
func (k Key) String() string {
	if k >= KeyF1 && k <= KeyF9 {
		return "F" + string(rune('1'+k-KeyF1))
	}
	if s, ok := keyLabels[k]; ok {
		return s
	}
	return "none"
}
