// internal/tui/renderer.go
package tui

import (
	"fmt"
	"image/color"
	"neon-siege/internal/app"
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var unitGlyphs = map[defs.UnitKind]rune{
	defs.KindStriker: 's',
	defs.KindBrute:   'B',
	defs.KindTank:    'T',
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Renderer рисует снимок боя символами.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw перерисовывает весь экран и показывает его.
func (r *Renderer) Draw(s app.Snapshot) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	l := Layout{Cols: cols, Rows: rows}

	if s.State == component.LoadoutState {
		r.drawLoadout(l, s)
		r.screen.Show()
		return
	}

	r.drawField(l, s)
	r.drawHUD(l, s)
	if s.State.Finished() {
		title, c := "DEFEAT", config.DefeatColor
		if s.State == component.WinState {
			title, c = "VICTORY", config.VictoryColor
		}
		mid := l.FieldRows() / 2
		r.centered(l, mid, title, tcell.StyleDefault.Foreground(rgb(c)).Bold(true))
		r.centered(l, mid+1, "press r to restart", tcell.StyleDefault.Foreground(rgb(config.DimmedColor)))
	}
	r.screen.Show()
}

func (r *Renderer) drawField(l Layout, s app.Snapshot) {
	_, laneRow := l.Cell(0, s.LaneY)
	_, groundRow := l.Cell(0, s.GroundY)
	ground := tcell.StyleDefault.Foreground(rgb(config.LaneLineColor))
	for col := 0; col < l.Cols; col++ {
		r.put(l, col, groundRow+1, '▁', ground)
	}

	for _, c := range s.Castles {
		style := tcell.StyleDefault.Foreground(rgb(config.TeamGlow[c.Team]))
		left, top := l.Cell(c.Left, c.Top)
		right, bottom := l.Cell(c.Right, c.Bottom)
		for row := top; row <= bottom; row++ {
			for col := left; col <= right; col++ {
				r.put(l, col, row, '▓', style)
			}
		}
		hp := fmt.Sprintf("%s %3.0f", c.Weapon, c.HP)
		r.text(l, left, top-1, hp, style)
	}

	for _, p := range s.Projectiles {
		col, row := l.Cell(p.X, p.Y)
		r.put(l, col, row, '•', tcell.StyleDefault.Foreground(rgb(config.ProjectileColors[p.Team])))
	}
	for _, u := range s.Units {
		col, _ := l.Cell(u.X, u.Y)
		style := tcell.StyleDefault.Foreground(rgb(config.TeamGlow[u.Team]))
		if u.Flashing {
			style = style.Reverse(true)
		}
		r.put(l, col, laneRow, unitGlyphs[u.Kind], style)
	}
	for _, p := range s.Particles {
		col, row := l.Cell(p.X, p.Y)
		r.put(l, col, row, '·', tcell.StyleDefault.Foreground(rgb(p.Color)))
	}
}

func (r *Renderer) drawHUD(l Layout, s app.Snapshot) {
	row := l.FieldRows()
	width := l.Cols - 20
	if width < 10 {
		width = 10
	}
	filled := int(float64(width) * s.Energy / s.MaxEnergy)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	energy := tcell.StyleDefault.Foreground(rgb(config.TeamGlow[0]))
	r.text(l, 0, row, fmt.Sprintf("Energy %3d/%d ", int(s.Energy), int(s.MaxEnergy)), energy)
	r.text(l, 16, row, bar, energy)

	help := make([]string, 0, len(defs.UnitKinds))
	for i, kind := range defs.UnitKinds {
		def := defs.UnitLibrary[kind]
		help = append(help, fmt.Sprintf("[%d] %s %d", i+1, def.Label, int(def.Cost)))
	}
	r.text(l, 0, row+1, strings.Join(help, "   "), tcell.StyleDefault)
	r.text(l, 0, row+2, fmt.Sprintf("t=%.1fs  p pause  q quit", s.GameTime), tcell.StyleDefault.Foreground(rgb(config.DimmedColor)))
}

func (r *Renderer) drawLoadout(l Layout, s app.Snapshot) {
	title := tcell.StyleDefault.Foreground(rgb(config.TeamGlow[0])).Bold(true)
	r.centered(l, 1, "NEON SIEGE", title)
	r.centered(l, 3, "Pick Your Tower Weapon", tcell.StyleDefault)

	for i, name := range defs.WeaponChoices {
		style := tcell.StyleDefault.Foreground(rgb(config.DimmedColor))
		marker := " "
		if name == s.Pick {
			style = tcell.StyleDefault.Foreground(rgb(config.TeamGlow[0]))
			marker = ">"
		}
		line := fmt.Sprintf("%s [%d] %-9s %s", marker, i+1, strings.ToUpper(string(name)), defs.WeaponLibrary[name].Description)
		r.centered(l, 5+i*2, line, style)
	}

	start := tcell.StyleDefault.Foreground(rgb(config.DimmedColor))
	if s.Pick != "" {
		start = tcell.StyleDefault.Foreground(rgb(config.StartColor))
	}
	r.centered(l, 12, "ENTER TO START", start)
}

func (r *Renderer) put(l Layout, col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= l.Cols || row < 0 || row >= l.Rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) text(l Layout, col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.put(l, col, row, ch, style)
		col++
	}
}

func (r *Renderer) centered(l Layout, row int, s string, style tcell.Style) {
	r.text(l, (l.Cols-len([]rune(s)))/2, row, s, style)
}
