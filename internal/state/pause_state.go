// internal/state/pause_state.go
package state

import (
	"neon-siege/internal/config"
	"neon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает бой: часы симуляции не идут.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *BattleState
}

func NewPauseState(sm *StateMachine, prevState *BattleState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
		return
	}
	if _, _, ok := justTapped(); ok {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, render.Premultiply(config.OverlayColor), false)
	render.DrawCentered(screen, "PAUSED", s.previousState.session.Faces.Large, config.ScreenWidth/2, config.ScreenHeight/2, render.Glow(config.TextLightColor, 0.9))
}

func (s *PauseState) Exit() {}
