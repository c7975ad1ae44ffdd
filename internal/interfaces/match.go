// internal/interfaces/match.go
package interfaces

import (
	"neon-siege/internal/app"
	"neon-siege/internal/defs"
)

// Match — операции боя, которыми пользуются фронтенды.
type Match interface {
	Spawn(team defs.Team, kind defs.UnitKind) bool
	SelectWeapon(name defs.WeaponName) bool
	Start() bool
	Restart() bool
	Update(deltaTime float64)
	Snapshot() app.Snapshot
}

var _ Match = (*app.Game)(nil)
