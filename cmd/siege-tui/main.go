// cmd/siege-tui/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"neon-siege/internal/app"
	"neon-siege/internal/audio"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/tui"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "path to YAML settings")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 - from time")
	logPath := flag.String("log", "", "write log to file (the terminal is busy)")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	game := app.NewGame(settings.Seed)
	if settings.Weapon != "" && !game.SelectWeapon(defs.WeaponName(settings.Weapon)) {
		log.Printf("Unknown weapon %q in settings", settings.Weapon)
	}
	if settings.SkipLoadout {
		if game.Pick() == "" {
			game.SelectWeapon(config.DefaultWeapon)
		}
		game.Start()
	}

	if settings.Audio {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			sound.Subscribe(game.Dispatcher())
			defer sound.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	ui, err := tui.New(screen, game)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer ui.Close()

	ui.Run()
}
