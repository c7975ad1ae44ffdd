// pkg/render/renderer.go
package render

import (
	"image/color"
	"neon-siege/internal/app"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WorldRenderer рисует поле боя по снимку состояния.
type WorldRenderer struct {
	width, height float64
	faces         *Faces
}

func NewWorldRenderer(width, height float64, faces *Faces) *WorldRenderer {
	return &WorldRenderer{width: width, height: height, faces: faces}
}

// Draw рисует фон, замки, снаряды, юнитов и искры.
func (r *WorldRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	view := NewView(r.height).WithShake(s.ShakeX, s.ShakeY)

	r.DrawBackground(screen, view, s.GroundY, s.LaneY)
	for _, c := range s.Castles {
		r.drawCastle(screen, view, c)
	}
	for _, p := range s.Projectiles {
		x, y := view.ToScreen(p.X, p.Y)
		GlowCircle(screen, x, y, float32(p.Radius), config.ProjectileColors[p.Team], 0.95)
	}
	for _, u := range s.Units {
		r.drawUnit(screen, view, u, s.LaneY)
	}
	for _, p := range s.Particles {
		x, y := view.ToScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, x, y, float32(p.Size), Glow(p.Color, 0.7), true)
	}
}

// DrawBackground рисует небо, землю и линию движения.
func (r *WorldRenderer) DrawBackground(screen *ebiten.Image, view View, groundY, laneY float64) {
	screen.Fill(config.BackgroundColor)

	gx, gy, gw, gh := view.RectToScreen(0, 0, r.width, groundY+42)
	vector.DrawFilledRect(screen, gx, gy, gw, gh, config.GroundColor, false)

	line := laneY - 18
	sx, sy, sw, sh := view.RectToScreen(0, line-10, r.width, 34)
	vector.DrawFilledRect(screen, sx, sy, sw, sh, Premultiply(config.LaneShadowColor), false)

	x0, y0 := view.ToScreen(0, line)
	x1, y1 := view.ToScreen(r.width, line)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, Premultiply(config.LaneLineColor), true)
}

func (r *WorldRenderer) drawCastle(screen *ebiten.Image, view View, c app.CastleView) {
	glow := config.TeamGlow[c.Team]
	w := c.Right - c.Left
	h := c.Top - c.Bottom

	hx, hy, hw, hh := view.RectToScreen(c.Left-8, c.Bottom-8, w+16, h+34)
	vector.DrawFilledRect(screen, hx, hy, hw, hh, Glow(glow, 0.10), false)

	bx, by, bw, bh := view.RectToScreen(c.Left, c.Bottom, w, h)
	vector.DrawFilledRect(screen, bx, by, bw, bh, Premultiply(config.CastleBodyColor), false)

	rx, ry, rw, rh := view.RectToScreen(c.Left, c.Top, w, 18)
	vector.DrawFilledRect(screen, rx, ry, rw, rh, Premultiply(config.CastleRoofColor), false)

	mx, my := view.ToScreen(c.MuzzleX, c.MuzzleY)
	GlowCircle(screen, mx, my, 6, glow, 0.65)

	barW := w * 1.9
	px, py, pw, ph := view.RectToScreen(c.X-barW/2, c.Bottom-26, barW, 10)
	vector.DrawFilledRect(screen, px, py, pw, ph, Premultiply(config.HPBackColor), false)
	if c.HPFraction > 0 {
		vector.DrawFilledRect(screen, px, py, pw*float32(c.HPFraction), ph, Glow(glow, 0.75), false)
	}

	if r.faces != nil {
		DrawCentered(screen, string(c.Weapon), r.faces.Small, int(px+pw/2), int(py+ph+16), Glow(config.TextLightColor, 0.6))
	}
}

func (r *WorldRenderer) drawUnit(screen *ebiten.Image, view View, u app.UnitView, laneY float64) {
	col := UnitColor(u.Team, u.Kind)

	shx, shy := view.ToScreen(u.X, laneY-5)
	vector.DrawFilledRect(screen, shx-float32(u.Radius*1.4), shy-5, float32(u.Radius*2.8), 10, Glow(col, 0.10), false)

	x, y := view.ToScreen(u.X, u.Y)
	GlowCircle(screen, x, y, float32(u.Radius), col, 1.0)
	if u.Flashing {
		vector.StrokeCircle(screen, x, y, float32(u.Radius*1.25), 2, Glow(color.RGBA{255, 255, 255, 255}, 0.9), true)
	}

	hpW := 44.0
	if u.Kind == defs.KindTank {
		hpW = 54
	}
	bx, by, bw, bh := view.RectToScreen(u.X-hpW/2, u.Y+u.Radius+6, hpW, 7)
	vector.DrawFilledRect(screen, bx, by, bw, bh, Premultiply(config.HPBackColor), false)
	if u.HPFraction > 0 {
		vector.DrawFilledRect(screen, bx, by, bw*float32(u.HPFraction), bh, Glow(col, 0.85), false)
	}
}

// GlowCircle — круг с мягким ореолом.
func GlowCircle(screen *ebiten.Image, x, y, radius float32, c color.RGBA, alpha float64) {
	vector.DrawFilledCircle(screen, x, y, radius*1.9, Glow(c, 0.08*alpha), true)
	vector.DrawFilledCircle(screen, x, y, radius*1.4, Glow(c, 0.18*alpha), true)
	vector.DrawFilledCircle(screen, x, y, radius, Glow(c, alpha), true)
}

// UnitColor — цвет юнита по команде и виду.
func UnitColor(team defs.Team, kind defs.UnitKind) color.RGBA {
	if int(team) < len(config.UnitColors) {
		if c, ok := config.UnitColors[team][string(kind)]; ok {
			return c
		}
	}
	return color.RGBA{255, 255, 255, 255}
}

// DrawCentered рисует строку с центром по x в точке cx; y - базовая линия.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}
