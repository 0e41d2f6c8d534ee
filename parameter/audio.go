package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive sounds of the same cue
	MinSoundGap = 50 * time.Millisecond

	// DefaultMasterVolume in [0, 1]
	DefaultMasterVolume = 0.5
)

// Cue Durations
const (
	ShotSoundDuration    = 40 * time.Millisecond
	KillSoundDuration    = 120 * time.Millisecond
	LeakSoundDuration    = 250 * time.Millisecond
	WaveSoundDuration    = 300 * time.Millisecond
	OutcomeSoundDuration = 900 * time.Millisecond
)

// Cue Frequencies (Hz)
const (
	ShotSoundFreq    = 880.0
	KillSoundFreq    = 440.0
	LeakSoundFreq    = 110.0
	WaveSoundFreq    = 330.0
	WonSoundFreq     = 660.0
	LostSoundFreq    = 90.0
	PurchaseSoundMul = 1.5 // Purchase cue pitch relative to the wave cue
)

// Cue Envelopes
const (
	CueAttack       = 5 * time.Millisecond
	ShotRelease     = 30 * time.Millisecond
	KillRelease     = 100 * time.Millisecond
	LeakRelease     = 150 * time.Millisecond
	WaveRelease     = 200 * time.Millisecond
	OutcomeRelease  = 500 * time.Millisecond
	PurchaseRelease = 60 * time.Millisecond
)
