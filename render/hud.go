package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/creepwave/component"
	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/game"
	"github.com/lixenwraith/creepwave/input"
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/vmath"
)

// HUDRenderer draws the status panel below the playfield
//
//	line 0: counters and wave prompt
//	line 1: selected spawner
//	line 2: purchase options
//	line 3: debug metrics
type HUDRenderer struct{}

func (r *HUDRenderer) Render(ctx RenderContext, s Surface) {
	snap := ctx.Snapshot
	h := snap.HUD
	top := ctx.HUDTop()
	width, height := s.Size()

	s.FillRect(vmath.Rect{Y: top, Width: width, Height: height - top}, RGBHUD)

	x := float64(parameter.HUDPadding)
	line := func(n int) float64 { return top + float64(n*parameter.HUDLineHeight) + 2 }

	var sb strings.Builder
	if !ctx.Muted {
		sb.WriteString(parameter.AudioStr)
	}
	fmt.Fprintf(&sb, "$%d (+%d/s)  Lives %d  Waves %d  Round %d  Speed %sx",
		h.Money, h.Income, h.Lives, h.WavesLeft, h.Round, strconv.FormatFloat(h.GameSpeed, 'f', -1, 64))
	if h.CanSend {
		sb.WriteString("  ")
		sb.WriteString(parameter.SendText)
	}
	s.Text(x, line(0), sb.String(), RGBText)

	s.Text(x, line(1), selectionText(ctx, snap), RGBText)

	cursor := x
	for i, o := range h.Options {
		text := fmt.Sprintf("[%s] %s", optionHint(ctx.Keys, o.Option, i, len(h.Options)), o.Text)
		if o.Kind != component.OptionSell && !o.Completed {
			text += fmt.Sprintf(" $%d", o.Cost)
		}
		c := RGBText
		if !o.Affordable {
			c = RGBDimText
		}
		s.Text(cursor, line(2), text, c)
		cursor += float64((len([]rune(text)) + 2) * parameter.HUDCharWidth)
	}

	if ctx.Debug && snap.Metrics != "" {
		s.Text(x, line(3), snap.Metrics, RGBDimText)
	}
}

func selectionText(ctx RenderContext, snap *game.Snapshot) string {
	sel := snap.HUD.Selected
	if sel < 0 || sel >= len(snap.Spawners) {
		hint := ""
		if ctx.Keys != nil {
			hint = ctx.Keys.Hint(input.IntentSelectNext, 0)
		}
		if hint == "" {
			return "No spawner selected"
		}
		return fmt.Sprintf("No spawner selected, [%s] to select", hint)
	}

	sp := snap.Spawners[sel]
	if !sp.Owned {
		return fmt.Sprintf("Spawner %d: empty", sp.ID+1)
	}
	return fmt.Sprintf("Spawner %d: %s", sp.ID+1, sp.Title)
}

// optionHint resolves the key for option i; the sell option is always last
func optionHint(keys *input.KeyTable, o component.Option, i, n int) string {
	if keys != nil {
		if o.Kind == component.OptionSell && i == n-1 {
			if h := keys.Hint(input.IntentSell, 0); h != "" {
				return h
			}
		}
		if h := keys.Hint(input.IntentOption, i); h != "" {
			return h
		}
	}
	return strconv.Itoa(i + 1)
}

// OverlayRenderer draws the win or lose banner
type OverlayRenderer struct{}

func (r *OverlayRenderer) Render(ctx RenderContext, s Surface) {
	h := ctx.Snapshot.HUD
	if h.Outcome == engine.OutcomeNone {
		return
	}

	text, c := parameter.WonText, RGBWon
	if h.Outcome == engine.OutcomeLost {
		text, c = parameter.LostText, RGBLost
	}

	snap := ctx.Snapshot
	band := vmath.Rect{
		Y:      snap.Height/2 - parameter.HUDLineHeight,
		Width:  snap.Width,
		Height: 2 * parameter.HUDLineHeight,
	}
	s.FillRect(band, RGBBlack)
	tw := float64(len([]rune(text)) * parameter.HUDCharWidth)
	s.Text((snap.Width-tw)/2, band.Y+parameter.HUDLineHeight/2, text, c)
}
