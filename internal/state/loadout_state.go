// internal/state/loadout_state.go
package state

import (
	"log"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/ui"
	"neon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LoadoutState — экран выбора оружия башни.
type LoadoutState struct {
	sm      *StateMachine
	session *Session
	menu    *ui.LoadoutMenu
}

func NewLoadoutState(sm *StateMachine, session *Session) *LoadoutState {
	return &LoadoutState{
		sm:      sm,
		session: session,
		menu:    ui.NewLoadoutMenu(config.ScreenWidth, config.ScreenHeight),
	}
}

func (s *LoadoutState) Enter() {
	if w := s.session.Settings.Weapon; w != "" {
		if !s.session.Game.SelectWeapon(defs.WeaponName(w)) {
			log.Printf("LoadoutState: unknown weapon %q in settings", w)
		}
	}
}

func (s *LoadoutState) Update(deltaTime float64) {
	g := s.session.Game

	if i := numberKeyPressed(); i >= 0 && i < len(defs.WeaponChoices) {
		g.SelectWeapon(defs.WeaponChoices[i])
	}

	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if x, y, ok := justTapped(); ok {
		if name, hit := s.menu.WeaponAt(x, y); hit {
			g.SelectWeapon(name)
		} else if s.menu.StartHit(x, y) {
			start = true
		}
	}
	s.menu.Update(g.Pick())

	if start && g.Start() {
		s.sm.SetState(NewBattleState(s.sm, s.session))
	}
}

func (s *LoadoutState) Draw(screen *ebiten.Image) {
	snap := s.session.Game.Snapshot()
	s.session.Renderer.DrawBackground(screen, render.NewView(config.WorldHeight), snap.GroundY, snap.LaneY)
	s.menu.Draw(screen, s.session.Faces, snap.Pick != "")
}

func (s *LoadoutState) Exit() {}
