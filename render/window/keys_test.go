package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/creepwave/input"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name  string
		key   ebiten.Key
		ctrl  bool
		shift bool
		want  input.Key
		ok    bool
	}{
		{"escape", ebiten.KeyEscape, false, false, input.KeyEscape, true},
		{"tab", ebiten.KeyTab, false, false, input.KeyTab, true},
		{"backtab", ebiten.KeyTab, false, true, input.KeyBacktab, true},
		{"f3", ebiten.KeyF3, false, false, input.KeyF3, true},
		{"ctrl q", ebiten.KeyQ, true, false, input.KeyCtrlQ, true},
		{"ctrl c", ebiten.KeyC, true, false, input.KeyCtrlC, true},
		{"ctrl other", ebiten.KeyX, true, false, input.KeyNone, false},
		{"printable", ebiten.KeyA, false, false, input.KeyNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.key, tt.ctrl, tt.shift)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Expected %v/%v, got %v/%v", tt.want, tt.ok, got, ok)
			}
		})
	}
}
