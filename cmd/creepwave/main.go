package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/creepwave/audio"
	"github.com/lixenwraith/creepwave/config"
	"github.com/lixenwraith/creepwave/core"
	"github.com/lixenwraith/creepwave/game"
	"github.com/lixenwraith/creepwave/render/terminal"
	"github.com/lixenwraith/creepwave/render/window"
	"github.com/lixenwraith/creepwave/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	termFlag   = flag.Bool("term", false, "Play in the terminal instead of a window")
	debugFlag  = flag.Bool("debug", false, "Write logs to the log directory and show metrics")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	fpsFlag    = flag.Int("fps", 0, "Simulation rate, overrides [game] fps")
	seedFlag   = flag.Uint64("seed", 0, "Dodge roll seed, random when zero")
)

func main() {
	flag.Parse()
	os.Exit(runMain())
}

// runMain returns the exit status once run and its deferred cleanup have finished
func runMain() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "creepwave: %v\n", err)
		return 1
	}
	return 0
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *fpsFlag > 0 {
		cfg.Game.FPS = *fpsFlag
	}
	debug := *debugFlag || cfg.Log.Debug
	if cfg.Log.Dir != "" {
		logDir = cfg.Log.Dir
	}
	if logFile := setupLogging(debug); logFile != nil {
		defer logFile.Close()
	}

	gameCfg, err := cfg.GameConfig()
	if err != nil {
		return err
	}
	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gameCfg.Rand = vmath.NewFastRand(seed).Float64
	log.Printf("creepwave: seed %d", seed)

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	g, err := game.New(gameCfg)
	if err != nil {
		return err
	}

	// Audio is optional; the game runs silently without a device
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.MasterVolume = cfg.Audio.Volume
	sound := audio.NewSoundManager(audio.LoadAudioConfig(audioCfg))
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	if *muteFlag {
		sound.ToggleMute()
	}
	g.RegisterHandler(sound)

	if *termFlag {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		t := terminal.New(nil, g, keys, terminal.Options{
			Debug:      debug,
			ToggleMute: sound.ToggleMute,
			Muted:      sound.IsMuted(),
		})
		return t.Run(ctx)
	}

	w := window.New(g, keys, window.Options{
		Debug:      debug,
		ToggleMute: sound.ToggleMute,
		Muted:      sound.IsMuted(),
	})
	return w.Run()
}
