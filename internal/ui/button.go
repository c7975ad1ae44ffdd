// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"neon-siege/internal/config"
	"neon-siege/pkg/render"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Label         string
	Sub           string // вторая строка, мельче
	Enabled       bool
	Highlighted   bool
	Glow          color.RGBA
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:    rect,
		Label:   label,
		Enabled: true,
		Glow:    config.TeamGlow[0],
	}
}

// Contains проверяет, попадает ли точка экрана в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Ready — прошёл ли ClickCooldown с последнего нажатия.
// Отмечает нажатие, если прошёл.
func (b *Button) Ready(now time.Time) bool {
	if now.Sub(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = now
	return true
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, labelFace, subFace font.Face) {
	glow := b.Glow
	if !b.Enabled {
		glow = render.DarkenColor(b.Glow)
	}
	haloAlpha, textAlpha := 0.08, 0.65
	switch {
	case !b.Enabled:
		haloAlpha, textAlpha = 0.06, 0.35
	case b.Highlighted:
		haloAlpha, textAlpha = 0.20, 0.90
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x-6, y-6, w+12, h+12, render.Glow(glow, haloAlpha), false)
	vector.DrawFilledRect(screen, x, y, w, h, render.Premultiply(config.PanelColor), false)

	cx := b.Rect.Min.X + b.Rect.Dx()/2
	cy := b.Rect.Min.Y + b.Rect.Dy()/2
	if b.Sub == "" {
		render.DrawCentered(screen, b.Label, labelFace, cx, cy+labelFace.Metrics().Ascent.Round()/2, render.Glow(glow, textAlpha))
		return
	}
	render.DrawCentered(screen, b.Label, labelFace, cx, cy+4, render.Glow(glow, textAlpha))
	render.DrawCentered(screen, b.Sub, subFace, cx, cy+4+subFace.Metrics().Height.Round()+2, render.Glow(config.TextLightColor, textAlpha*0.7))
}
