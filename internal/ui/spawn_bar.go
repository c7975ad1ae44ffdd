package ui

import (
	"fmt"
	"image"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpawnBar — ряд кнопок STRIKE / BRUTE / TANK внизу экрана.
type SpawnBar struct {
	Buttons []*Button
	kinds   []defs.UnitKind
	width   int
	top     int // верхняя граница зоны нажатия
}

func NewSpawnBar(screenWidth, screenHeight int) *SpawnBar {
	kinds := defs.UnitKinds
	bw := (screenWidth - config.ButtonMargin*2) / len(kinds)
	bottom := screenHeight - config.ButtonBottom
	top := bottom - config.ButtonHeight

	bar := &SpawnBar{
		kinds: kinds,
		width: screenWidth,
		top:   screenHeight - config.ButtonHeight - config.ButtonMargin,
	}
	for i, kind := range kinds {
		def := defs.UnitLibrary[kind]
		x0 := config.ButtonMargin + i*bw
		b := NewButton(image.Rect(x0+6, top, x0+bw-6, bottom), def.Label)
		b.Sub = fmt.Sprintf("%d", int(def.Cost))
		bar.Buttons = append(bar.Buttons, b)
	}
	return bar
}

// KindAt — вид юнита под точкой нажатия. Вся нижняя полоса делится
// на равные колонки, промах мимо кнопки засчитывается ближайшей.
func (s *SpawnBar) KindAt(x, y int) (defs.UnitKind, bool) {
	if y < s.top || len(s.kinds) == 0 {
		return "", false
	}
	bw := (s.width - config.ButtonMargin*2) / len(s.kinds)
	idx := (x - config.ButtonMargin) / bw
	if x < config.ButtonMargin {
		idx = 0
	}
	if idx >= len(s.kinds) {
		idx = len(s.kinds) - 1
	}
	return s.kinds[idx], true
}

// Update гасит кнопки, на которые не хватает энергии.
func (s *SpawnBar) Update(energy float64) {
	for i, kind := range s.kinds {
		s.Buttons[i].Enabled = energy >= defs.UnitLibrary[kind].Cost
	}
}

func (s *SpawnBar) Draw(screen *ebiten.Image, faces *render.Faces) {
	for _, b := range s.Buttons {
		b.Draw(screen, faces.Large, faces.Small)
	}
}
