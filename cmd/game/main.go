// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"neon-siege/internal/audio"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/state"
	"neon-siege/pkg/render"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxFrameDelta {
		deltaTime = config.MaxFrameDelta
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to YAML settings")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 - from time")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	session := state.NewSession(settings, render.LoadFaces())

	if settings.Audio {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			sound.Subscribe(session.Game.Dispatcher())
			defer sound.Cleanup()
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(firstState(sm, session))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Neon Siege")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// firstState — экран снаряжения или сразу бой, если так велят настройки.
func firstState(sm *state.StateMachine, session *state.Session) state.State {
	if !session.Settings.SkipLoadout {
		return state.NewLoadoutState(sm, session)
	}
	weapon := defs.WeaponName(session.Settings.Weapon)
	if weapon == "" {
		weapon = config.DefaultWeapon
	}
	g := session.Game
	if !g.SelectWeapon(weapon) || !g.Start() {
		log.Printf("Cannot start with weapon %q, showing loadout", weapon)
		return state.NewLoadoutState(sm, session)
	}
	return state.NewBattleState(sm, session)
}
