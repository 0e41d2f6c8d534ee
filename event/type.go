package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Creep Event ===

	// EventCreepSpawned signals a creep acquired from the pool
	// Trigger: WaveSystem group spawn | Payload: CreepPayload
	EventCreepSpawned

	// EventCreepKilled signals a creep whose health reached zero
	// Trigger: Tower fire | Payload: CreepPayload
	EventCreepKilled

	// EventCreepLeaked signals a creep passing the final waypoint
	// Trigger: Creep update | Payload: CreepPayload
	EventCreepLeaked

	// === Tower Event ===

	// EventTowerFired signals one shot resolved against its target set
	// Trigger: TowerSystem | Payload: ShotPayload
	EventTowerFired

	// EventTowerUpgradeStarted signals a tower telegraphed for the next round
	// Trigger: WaveSystem between waves | Payload: TowerPayload
	EventTowerUpgradeStarted

	// EventTowerBuilt signals a pending tower or upgrade completed
	// Trigger: WaveSystem between waves | Payload: TowerPayload
	EventTowerBuilt

	// === Wave Event ===

	// EventWaveSent signals a player-triggered wave
	// Trigger: SendWave action | Payload: WavePayload
	EventWaveSent

	// EventWaveCleared signals the end of a wave with no creeps alive
	// Trigger: WaveSystem | Payload: WavePayload
	EventWaveCleared

	// === Economy Event ===

	// EventPurchase signals a spawner purchase, upgrade or sale
	// Trigger: Purchase action | Payload: PurchasePayload
	EventPurchase

	// === Outcome Event ===

	// EventGameLost signals lives reaching zero
	// Trigger: OutcomeSystem | Payload: WavePayload
	EventGameLost

	// EventGameWon signals all waves sent
	// Trigger: OutcomeSystem | Payload: WavePayload
	EventGameWon

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventNone:                "None",
	EventCreepSpawned:        "CreepSpawned",
	EventCreepKilled:         "CreepKilled",
	EventCreepLeaked:         "CreepLeaked",
	EventTowerFired:          "TowerFired",
	EventTowerUpgradeStarted: "TowerUpgradeStarted",
	EventTowerBuilt:          "TowerBuilt",
	EventWaveSent:            "WaveSent",
	EventWaveCleared:         "WaveCleared",
	EventPurchase:            "Purchase",
	EventGameLost:            "GameLost",
	EventGameWon:             "GameWon",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// Lookup returns the EventType registered under name
func Lookup(name string) (EventType, bool) {
	for t, n := range eventNames {
		if n == name {
			return EventType(t), true
		}
	}
	return EventNone, false
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Simulation step the event was emitted in
}
