package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/creepwave/event"
	"github.com/lixenwraith/creepwave/parameter"
)

// SoundManager plays cues for game events
// Safe to use without a sound device: every call degrades to a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	lastPlayed [cueCount]time.Time
	now        func() time.Time
	played     atomic.Int64
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	// Initialize speaker with sample rate and buffer size
	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	sm.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	return muted
}

// IsMuted reports whether cues are suppressed
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns the number of cues accepted since creation
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Play queues cue unless muted or the same cue played within MinSoundGap
// Returns whether the cue was accepted
func (sm *SoundManager) Play(cue Cue) bool {
	if cue < 0 || cue >= cueCount || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if last := sm.lastPlayed[cue]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[cue] = now
	sm.played.Add(1)

	if !sm.initialized {
		return true
	}

	streamer := GetCueSound(cue, sm.cfg)
	if streamer == nil {
		return true
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// EventTypes returns the events that have a cue
func (sm *SoundManager) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, len(cueEvents))
	for t := range cueEvents {
		types = append(types, t)
	}
	return types
}

// HandleEvent plays the cue for ev
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if cue, ok := cueEvents[ev.Type]; ok {
		sm.Play(cue)
	}
}
