package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/creepwave/parameter"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Expected streamer to drain")
	return 0, 0
}

func TestCueSoundsDrain(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		cue      Cue
		duration time.Duration
	}{
		{CueShot, parameter.ShotSoundDuration},
		{CueKill, parameter.KillSoundDuration},
		{CueLeak, parameter.LeakSoundDuration},
		{CueWave, parameter.WaveSoundDuration},
		{CuePurchase, 2 * parameter.ShotSoundDuration},
		{CueWon, parameter.OutcomeSoundDuration},
		{CueLost, parameter.OutcomeSoundDuration},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := GetCueSound(tt.cue, cfg)
			if s == nil {
				t.Fatal("Expected streamer")
			}
			n, peak := drain(t, s)
			want := rate.N(tt.duration)
			// Mixed cues may pad the final buffer with silence
			if n < want-1 || n > want+512 {
				t.Errorf("Expected about %d samples, got %d", want, n)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("Expected peak in (0, 1], got %v", peak)
			}
		})
	}

	if GetCueSound(cueCount, cfg) != nil {
		t.Error("Expected nil for unknown cue")
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full sustain, got %v", buf[50][0])
	}
	if buf[95][0] >= 1 || buf[95][0] <= 0 {
		t.Errorf("Expected release in (0,1), got %v", buf[95][0])
	}
}

func TestMuteVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, GetCueSound(CueWave, cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %v", peak)
	}
}
