package game

import (
	"log"

	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/event"
)

// logHandler writes session transitions to the debug log
// Per-creep and per-shot events are too frequent and are left to metrics
type logHandler struct {
	session *engine.Session
}

func newLogHandler(session *engine.Session) *logHandler {
	return &logHandler{session: session}
}

func (h *logHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWaveSent,
		event.EventWaveCleared,
		event.EventTowerUpgradeStarted,
		event.EventTowerBuilt,
		event.EventPurchase,
		event.EventGameLost,
		event.EventGameWon,
	}
}

func (h *logHandler) HandleEvent(ev event.GameEvent) {
	id := h.session.ID
	switch p := ev.Payload.(type) {
	case event.WavePayload:
		log.Printf("[%s] frame %d %s: round=%d waves_left=%d lives=%d spawned=%d",
			id, ev.Frame, ev.Type, p.Round, p.WavesLeft, p.Lives, p.Spawned)
	case event.TowerPayload:
		log.Printf("[%s] frame %d %s: %q at (%d,%d)", id, ev.Frame, ev.Type, p.Code, p.Row, p.Col)
	case event.PurchasePayload:
		log.Printf("[%s] frame %d %s: spawner=%d %q amount=%d money=%d",
			id, ev.Frame, ev.Type, p.Spawner, p.Title, p.Amount, h.session.Money)
	default:
		log.Printf("[%s] frame %d %s", id, ev.Frame, ev.Type)
	}
}
