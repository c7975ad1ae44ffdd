package ui

import (
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawResult затемняет экран и пишет VICTORY / DEFEAT.
func DrawResult(screen *ebiten.Image, faces *render.Faces, state component.MatchState) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), render.Premultiply(config.OverlayColor), false)

	title, clr := "DEFEAT", config.DefeatColor
	if state == component.WinState {
		title, clr = "VICTORY", config.VictoryColor
	}
	render.DrawCentered(screen, title, faces.Title, w/2, int(float64(h)*0.38), render.Premultiply(clr))
	render.DrawCentered(screen, "Tap to restart", faces.Regular, w/2, int(float64(h)*0.47), render.Glow(config.TextLightColor, 0.75))
}
