package ui

import (
	"image"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/pkg/render"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// WeaponBox — карточка оружия на экране снаряжения.
type WeaponBox struct {
	*Button
	Weapon defs.WeaponName
}

// LoadoutMenu — карточки оружия и строка старта.
type LoadoutMenu struct {
	Boxes  []*WeaponBox
	Start  image.Rectangle
	width  int
	height int
}

func NewLoadoutMenu(screenWidth, screenHeight int) *LoadoutMenu {
	w, h := float64(screenWidth), float64(screenHeight)
	bw := int(w * config.LoadoutBoxFactor)
	x0 := (screenWidth - bw) / 2

	m := &LoadoutMenu{width: screenWidth, height: screenHeight}
	for i, name := range defs.WeaponChoices {
		def := defs.WeaponLibrary[name]
		bottomUp := h*config.LoadoutTopFactor - float64(i*(config.LoadoutBoxHeight+config.LoadoutBoxGap))
		bottom := screenHeight - int(bottomUp)
		rect := image.Rect(x0, bottom-config.LoadoutBoxHeight, x0+bw, bottom)

		b := NewButton(rect, strings.ToUpper(string(name)))
		b.Sub = def.Description
		b.Glow = config.TextLightColor
		m.Boxes = append(m.Boxes, &WeaponBox{Button: b, Weapon: name})
	}

	startY := screenHeight - int(h*config.StartLineFactor)
	m.Start = image.Rect(int(w*0.18), startY-config.StartHalfHeight, int(w*0.82), startY+config.StartHalfHeight)
	return m
}

// WeaponAt — оружие под точкой нажатия.
func (m *LoadoutMenu) WeaponAt(x, y int) (defs.WeaponName, bool) {
	for _, box := range m.Boxes {
		if box.Contains(x, y) {
			return box.Weapon, true
		}
	}
	return "", false
}

// StartHit — нажатие попало в строку старта.
func (m *LoadoutMenu) StartHit(x, y int) bool {
	return image.Pt(x, y).In(m.Start)
}

// Update подсвечивает выбранную карточку.
func (m *LoadoutMenu) Update(pick defs.WeaponName) {
	for _, box := range m.Boxes {
		box.Highlighted = box.Weapon == pick
		if box.Highlighted {
			box.Glow = config.TeamGlow[0]
		} else {
			box.Glow = config.TextLightColor
		}
	}
}

func (m *LoadoutMenu) Draw(screen *ebiten.Image, faces *render.Faces, ready bool) {
	cx := m.width / 2
	h := float64(m.height)
	render.DrawCentered(screen, "NEON SIEGE", faces.Title, cx, int(h*0.18), render.Glow(config.TextLightColor, 0.95))
	render.DrawCentered(screen, "Pick Your Tower Weapon", faces.Regular, cx, int(h*0.24), render.Glow(config.TextLightColor, 0.7))

	for _, box := range m.Boxes {
		box.Draw(screen, faces.Large, faces.Small)
	}

	alpha := 0.25
	if ready {
		alpha = 0.9
	}
	label := "TAP HERE TO START"
	render.DrawCentered(screen, label, faces.Regular, cx, m.Start.Min.Y+m.Start.Dy()/2+8, render.Glow(config.StartColor, alpha))
	render.DrawCentered(screen, "In-match: tap bottom buttons to spawn Striker / Brute / Tank", faces.Small, cx, m.height-int(h*0.04), render.Glow(config.TextLightColor, 0.45))
}
