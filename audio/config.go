package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/creepwave/parameter"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		CueVolumes: map[Cue]float64{
			CueShot:     0.3,
			CueKill:     0.6,
			CueLeak:     0.8,
			CueWave:     0.7,
			CuePurchase: 0.5,
			CueWon:      1.0,
			CueLost:     1.0,
		},
	}
}

// LoadAudioConfig applies environment overrides on top of base, or the defaults when base is nil
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	if base != nil {
		cfg.Enabled = base.Enabled
		cfg.MasterVolume = base.MasterVolume
		if base.SampleRate > 0 {
			cfg.SampleRate = base.SampleRate
		}
		for c, v := range base.CueVolumes {
			cfg.CueVolumes[c] = v
		}
	}

	// Check if audio is enabled
	if enabled := os.Getenv("CREEPWAVE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("CREEPWAVE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Load cue volumes from JSON
	if cueVols := os.Getenv("CREEPWAVE_SFX_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for c := Cue(0); c < cueCount; c++ {
				if v, ok := volumes[c.String()]; ok {
					cfg.CueVolumes[c] = v
				}
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("CREEPWAVE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
