package ui

import (
	"fmt"
	"neon-siege/internal/config"
	"neon-siege/internal/utils"
	"neon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// EnergyBar отображает запас энергии над кнопками спавна.
type EnergyBar struct {
	X, Y          float32
	Width, Height float32
}

func NewEnergyBar(screenWidth, screenHeight int) *EnergyBar {
	w := float32(screenWidth) * config.EnergyBarFactor
	bottomUp := float32(config.ButtonHeight + 32)
	return &EnergyBar{
		X:      (float32(screenWidth) - w) / 2,
		Y:      float32(screenHeight) - bottomUp - config.EnergyBarHeight,
		Width:  w,
		Height: config.EnergyBarHeight,
	}
}

// FillWidth — ширина заполненной части.
func (e *EnergyBar) FillWidth(energy, maxEnergy float64) float32 {
	return e.Width * float32(utils.Fraction(energy, maxEnergy))
}

func (e *EnergyBar) Draw(screen *ebiten.Image, face font.Face, energy, maxEnergy float64) {
	glow := config.TeamGlow[0]
	vector.DrawFilledRect(screen, e.X-6, e.Y-6, e.Width+12, e.Height+12, render.Glow(glow, utils.Lerp(0.12, 0.30, utils.Fraction(energy, maxEnergy))), false)
	vector.DrawFilledRect(screen, e.X, e.Y, e.Width, e.Height, render.Premultiply(config.HPBackColor), false)
	if fw := e.FillWidth(energy, maxEnergy); fw > 0 {
		vector.DrawFilledRect(screen, e.X, e.Y, fw, e.Height, render.Glow(glow, 0.75), false)
	}

	label := fmt.Sprintf("Energy: %d/%d", int(energy), int(maxEnergy))
	render.DrawCentered(screen, label, face, int(e.X+e.Width/2), int(e.Y)-14, render.Glow(config.TextLightColor, 0.9))
}
