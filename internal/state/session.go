// internal/state/session.go
package state

import (
	"neon-siege/internal/app"
	"neon-siege/internal/config"
	"neon-siege/pkg/render"
)

// Session — то, что живёт дольше одного экрана: сам матч, часы и шрифты.
type Session struct {
	Game     *app.Game
	Clock    *app.Clock
	Renderer *render.WorldRenderer
	Faces    *render.Faces
	Settings config.Settings
}

func NewSession(settings config.Settings, faces *render.Faces) *Session {
	g := app.NewGame(settings.Seed)
	return &Session{
		Game:     g,
		Clock:    app.NewClock(g),
		Renderer: render.NewWorldRenderer(config.WorldWidth, config.WorldHeight, faces),
		Faces:    faces,
		Settings: settings,
	}
}
