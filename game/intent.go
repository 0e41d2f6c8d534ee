package game

import (
	"github.com/lixenwraith/creepwave/component"
	"github.com/lixenwraith/creepwave/input"
)

// Apply performs the game action behind intent
// Frontend intents (quit, mute, debug) are ignored and left to the caller
func (g *Game) Apply(in input.Intent) error {
	switch in.Type {
	case input.IntentSpeed:
		g.SetGameSpeed(in.Arg)
	case input.IntentSendWave:
		g.SendWave()
	case input.IntentEscape:
		g.Deselect()
	case input.IntentSelectSpawner:
		return g.SelectBuilding(in.Arg)
	case input.IntentSelectNext:
		g.SelectNext()
	case input.IntentQuickBuy:
		return g.PurchaseKey(in.Buy)
	case input.IntentOption:
		return g.purchaseUpgrade(in.Arg)
	case input.IntentSell:
		return g.sell()
	}
	return nil
}

// purchaseUpgrade buys upgrade track i, or creep type i on an empty spawner
func (g *Game) purchaseUpgrade(i int) error {
	sp, ok := g.Selected()
	if !ok {
		return ErrNoSelection
	}
	opts := sp.Options()
	if i < 0 || i >= len(opts) || opts[i].Kind == component.OptionSell {
		return component.ErrInvalidOption
	}
	return g.Purchase(i)
}

func (g *Game) sell() error {
	sp, ok := g.Selected()
	if !ok {
		return ErrNoSelection
	}
	if !sp.IsOwned() {
		return component.ErrInvalidOption
	}
	return g.Purchase(len(sp.Options()) - 1)
}
