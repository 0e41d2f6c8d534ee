package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/creepwave/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one pitch to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase at the interpolated pitch
		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, true
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue generators

// CreateShotSound generates a short high blip for a tower shot
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, parameter.ShotSoundFreq)
	if err != nil {
		// Tone above Nyquist for this rate, fall back to the built-in oscillator
		tone = NewOscillator(parameter.ShotSoundFreq, parameter.ShotSoundDuration, WaveSquare, rate)
	}
	taken := beep.Take(rate.N(parameter.ShotSoundDuration), tone)
	shaped := NewEnvelope(taken, parameter.ShotSoundDuration, parameter.CueAttack, parameter.ShotRelease, rate)

	return newVolume(shaped, cfg.CueVolumes[CueShot]*cfg.MasterVolume)
}

// CreateKillSound generates a crunch: noise burst over a falling tone
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.KillSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.CueAttack, parameter.KillRelease, rate)
	tone := NewEnvelope(NewSweep(parameter.KillSoundFreq, parameter.KillSoundFreq/2, d, WaveSine, rate), d, parameter.CueAttack, parameter.KillRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.4),
		newVolume(tone, 0.6),
	)
	return newVolume(mixed, cfg.CueVolumes[CueKill]*cfg.MasterVolume)
}

// CreateLeakSound generates a low saw buzz for a creep reaching the exit
func CreateLeakSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.LeakSoundDuration

	osc := NewOscillator(parameter.LeakSoundFreq, d, WaveSaw, rate)
	shaped := NewEnvelope(osc, d, parameter.CueAttack, parameter.LeakRelease, rate)

	return newVolume(shaped, cfg.CueVolumes[CueLeak]*cfg.MasterVolume)
}

// CreateWaveSound generates a rising horn for a wave launch
func CreateWaveSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.WaveSoundDuration

	osc := NewSweep(parameter.WaveSoundFreq, parameter.WaveSoundFreq*2, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, parameter.CueAttack, parameter.WaveRelease, rate)

	return newVolume(shaped, cfg.CueVolumes[CueWave]*cfg.MasterVolume)
}

// CreatePurchaseSound generates a two-note chime for shop transactions
func CreatePurchaseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := parameter.ShotSoundDuration
	freq := parameter.WaveSoundFreq * parameter.PurchaseSoundMul

	n1 := NewEnvelope(NewOscillator(freq, half, WaveSine, rate), half, parameter.CueAttack, parameter.PurchaseRelease/2, rate)
	n2 := NewEnvelope(NewOscillator(freq*1.5, half, WaveSine, rate), half, parameter.CueAttack, parameter.PurchaseRelease/2, rate)

	return newVolume(beep.Seq(n1, n2), cfg.CueVolumes[CuePurchase]*cfg.MasterVolume)
}

// CreateOutcomeSound generates the end-of-game fanfare, rising when won and falling when lost
func CreateOutcomeSound(cfg *AudioConfig, won bool) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.OutcomeSoundDuration

	from, to, cue := parameter.LostSoundFreq*2, parameter.LostSoundFreq, CueLost
	if won {
		from, to, cue = parameter.WonSoundFreq, parameter.WonSoundFreq*2, CueWon
	}

	fund := NewEnvelope(NewSweep(from, to, d, WaveSine, rate), d, parameter.CueAttack, parameter.OutcomeRelease, rate)
	over := NewEnvelope(NewSweep(from*2, to*2, d, WaveSine, rate), d, parameter.CueAttack, parameter.OutcomeRelease, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.CueVolumes[cue]*cfg.MasterVolume)
}

// GetCueSound returns the streamer for cue, nil for unknown cues
func GetCueSound(cue Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case CueShot:
		return CreateShotSound(cfg)
	case CueKill:
		return CreateKillSound(cfg)
	case CueLeak:
		return CreateLeakSound(cfg)
	case CueWave:
		return CreateWaveSound(cfg)
	case CuePurchase:
		return CreatePurchaseSound(cfg)
	case CueWon:
		return CreateOutcomeSound(cfg, true)
	case CueLost:
		return CreateOutcomeSound(cfg, false)
	default:
		return nil
	}
}
