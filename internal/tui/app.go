// internal/tui/app.go
package tui

import (
	"fmt"
	"neon-siege/internal/app"
	"neon-siege/internal/component"
	"neon-siege/internal/defs"
	"neon-siege/internal/interfaces"
	"time"

	"github.com/gdamore/tcell/v2"
)

// App — терминальный фронтенд: ввод, часы и отрисовка.
type App struct {
	screen   tcell.Screen
	game     interfaces.Match
	clock    *app.Clock
	renderer *Renderer
	paused   bool
	last     time.Time
}

// New инициализирует экран. При ошибке экран закрывать не нужно.
func New(screen tcell.Screen, game interfaces.Match) (*App, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init terminal: %w", err)
	}
	screen.HideCursor()
	return &App{
		screen:   screen,
		game:     game,
		clock:    app.NewClock(game),
		renderer: NewRenderer(screen),
		last:     time.Now(),
	}, nil
}

// Run крутит цикл до команды выхода.
func (a *App) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !a.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			a.Tick(now.Sub(a.last).Seconds())
			a.last = now
		}
	}
}

// Tick продвигает бой и перерисовывает экран.
func (a *App) Tick(elapsed float64) {
	if !a.paused {
		a.clock.Advance(elapsed)
	}
	a.renderer.Draw(a.game.Snapshot())
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.Apply(ActionFor(ev))
	}
	return true
}

// Apply выполняет команду. Возвращает false для выхода.
func (a *App) Apply(action Action) bool {
	g := a.game
	state := g.Snapshot().State
	switch action {
	case ActionQuit:
		return false
	case ActionPause:
		if state == component.PlayState {
			a.paused = !a.paused
		}
	case ActionStart:
		if state.Finished() {
			g.Restart()
		} else {
			g.Start()
		}
	case ActionRestart:
		g.Restart()
	case ActionSlot1, ActionSlot2, ActionSlot3:
		slot := action.Slot()
		switch state {
		case component.LoadoutState:
			g.SelectWeapon(defs.WeaponChoices[slot])
		case component.PlayState:
			if !a.paused {
				g.Spawn(defs.TeamPlayer, defs.UnitKinds[slot])
			}
		}
	}
	return true
}

// Close возвращает терминал в исходное состояние.
func (a *App) Close() {
	a.screen.Fini()
}
