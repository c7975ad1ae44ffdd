package app

import (
	"image/color"
	"neon-siege/internal/component"
	"neon-siege/internal/defs"
	"neon-siege/internal/types"
	"neon-siege/internal/utils"
)

// Snapshot — копия состояния для отрисовки. Фронтенды читают только её.
type Snapshot struct {
	State     component.MatchState
	Pick      defs.WeaponName
	MatchID   string
	GameTime  float64
	Energy    float64
	MaxEnergy float64
	GroundY   float64
	LaneY     float64
	ShakeX    float64
	ShakeY    float64

	Castles     [2]CastleView
	Units       []UnitView
	Projectiles []ProjectileView
	Particles   []ParticleView
}

type CastleView struct {
	Team                     defs.Team
	X                        float64
	Left, Right, Bottom, Top float64
	HP, MaxHP, HPFraction    float64
	Weapon                   defs.WeaponName
	MuzzleX, MuzzleY         float64
}

type UnitView struct {
	ID         types.EntityID
	Team       defs.Team
	Kind       defs.UnitKind
	X, Y       float64
	Radius     float64
	HPFraction float64
	Flashing   bool
}

type ProjectileView struct {
	Team   defs.Team
	X, Y   float64
	Radius float64
}

type ParticleView struct {
	X, Y  float64
	Size  float64
	Life  float64
	Color color.RGBA
}

// Snapshot собирает текущее состояние мира.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		State:       g.State,
		Pick:        g.pick,
		MatchID:     g.matchID,
		GameTime:    w.GameTime,
		Energy:      g.EconomySystem.Energy,
		MaxEnergy:   g.EconomySystem.MaxEnergy,
		GroundY:     w.GroundY,
		LaneY:       w.LaneY,
		Units:       make([]UnitView, 0, len(w.Units)),
		Projectiles: make([]ProjectileView, 0, len(w.Projectiles)),
		Particles:   make([]ParticleView, 0, len(w.Particles)),
	}
	s.ShakeX, s.ShakeY = g.VisualEffectSystem.Offset()

	for i, c := range w.Castles {
		left, right, bottom, top := c.Bounds(w.GroundY)
		mx, my := c.Muzzle(w.GroundY)
		s.Castles[i] = CastleView{
			Team:       c.Team,
			X:          c.X,
			Left:       left,
			Right:      right,
			Bottom:     bottom,
			Top:        top,
			HP:         c.HP,
			MaxHP:      c.MaxHP,
			HPFraction: utils.Fraction(c.HP, c.MaxHP),
			Weapon:     c.Weapon.Name,
			MuzzleX:    mx,
			MuzzleY:    my,
		}
	}

	for _, u := range w.Units {
		if !u.Alive {
			continue
		}
		s.Units = append(s.Units, UnitView{
			ID:         u.ID,
			Team:       u.Team,
			Kind:       u.Kind,
			X:          u.X,
			Y:          u.Y,
			Radius:     u.Radius(),
			HPFraction: utils.Fraction(u.HP, u.Def.Health),
			Flashing:   u.Flash > 0,
		})
	}
	for _, p := range w.Projectiles {
		if p.Alive {
			s.Projectiles = append(s.Projectiles, ProjectileView{Team: p.Team, X: p.X, Y: p.Y, Radius: p.Radius})
		}
	}
	for _, p := range w.Particles {
		if p.Alive {
			s.Particles = append(s.Particles, ParticleView{X: p.X, Y: p.Y, Size: p.Size, Life: p.Life, Color: p.Color})
		}
	}
	return s
}
