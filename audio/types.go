package audio

import (
	"errors"

	"github.com/lixenwraith/creepwave/event"
)

// Cue represents a game sound
type Cue int

const (
	CueShot     Cue = iota // Tower fired
	CueKill                // Creep killed
	CueLeak                // Creep reached the exit
	CueWave                // Wave sent
	CuePurchase            // Spawner bought, upgraded or sold
	CueWon                 // Game won
	CueLost                // Game lost
	cueCount
)

var cueNames = [cueCount]string{
	CueShot:     "shot",
	CueKill:     "kill",
	CueLeak:     "leak",
	CueWave:     "wave",
	CuePurchase: "purchase",
	CueWon:      "won",
	CueLost:     "lost",
}

// String returns the cue name used in CREEPWAVE_SFX_VOLUMES
func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// cueEvents maps game events to the cue they trigger
var cueEvents = map[event.EventType]Cue{
	event.EventTowerFired:  CueShot,
	event.EventCreepKilled: CueKill,
	event.EventCreepLeaked: CueLeak,
	event.EventWaveSent:    CueWave,
	event.EventPurchase:    CuePurchase,
	event.EventGameWon:     CueWon,
	event.EventGameLost:    CueLost,
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio: disabled by configuration")
)
