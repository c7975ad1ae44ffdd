// internal/state/battle_state.go
package state

import (
	"fmt"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/ui"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// BattleState — идёт бой, а после него экран результата.
type BattleState struct {
	sm        *StateMachine
	session   *Session
	spawnBar  *ui.SpawnBar
	energyBar *ui.EnergyBar
}

func NewBattleState(sm *StateMachine, session *Session) *BattleState {
	return &BattleState{
		sm:        sm,
		session:   session,
		spawnBar:  ui.NewSpawnBar(config.ScreenWidth, config.ScreenHeight),
		energyBar: ui.NewEnergyBar(config.ScreenWidth, config.ScreenHeight),
	}
}

func (b *BattleState) Enter() {}

func (b *BattleState) Update(deltaTime float64) {
	g := b.session.Game

	if g.State.Finished() {
		_, _, tapped := justTapped()
		if tapped || inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if g.Restart() {
				b.sm.SetState(NewLoadoutState(b.sm, b.session))
			}
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		b.sm.SetState(NewPauseState(b.sm, b))
		return
	}

	if i := numberKeyPressed(); i >= 0 && i < len(defs.UnitKinds) {
		g.Spawn(defs.TeamPlayer, defs.UnitKinds[i])
	}
	if x, y, ok := justTapped(); ok {
		if kind, hit := b.spawnBar.KindAt(x, y); hit {
			idx := indexOfKind(kind)
			if idx >= 0 && b.spawnBar.Buttons[idx].Ready(time.Now()) {
				g.Spawn(defs.TeamPlayer, kind)
			}
		}
	}

	b.session.Clock.Advance(deltaTime)
	b.spawnBar.Update(g.EconomySystem.Energy)
}

func indexOfKind(kind defs.UnitKind) int {
	for i, k := range defs.UnitKinds {
		if k == kind {
			return i
		}
	}
	return -1
}

func (b *BattleState) Draw(screen *ebiten.Image) {
	snap := b.session.Game.Snapshot()
	faces := b.session.Faces

	b.session.Renderer.Draw(screen, snap)
	b.energyBar.Draw(screen, faces.Regular, snap.Energy, snap.MaxEnergy)
	b.spawnBar.Draw(screen, faces)

	if snap.State.Finished() {
		ui.DrawResult(screen, faces, snap.State)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("t=%.1fs units=%d", snap.GameTime, len(snap.Units)))
}

func (b *BattleState) Exit() {}
