// internal/event/types.go
package event

import (
	"image/color"
	"neon-siege/internal/defs"
	"neon-siege/internal/types"
	"time"
)

const (
	UnitSpawned     EventType = "UnitSpawned"     // юнит появился
	UnitKilled      EventType = "UnitKilled"      // юнит убран из мира
	HitOccurred     EventType = "HitOccurred"     // попадание/столкновение, для эффектов
	CastleDamaged   EventType = "CastleDamaged"   // замок получил урон
	ProjectileFired EventType = "ProjectileFired" // башня выстрелила
	MatchStarted    EventType = "MatchStarted"
	MatchEnded      EventType = "MatchEnded"
)

// AllTypes — все типы событий симуляции.
var AllTypes = []EventType{
	UnitSpawned, UnitKilled, HitOccurred, CastleDamaged, ProjectileFired, MatchStarted, MatchEnded,
}

// Hit — "в точке (X, Y) произошло попадание силы Strength цвета Color".
type Hit struct {
	X, Y     float64
	Strength float64
	Color    color.RGBA
}

type UnitInfo struct {
	ID   types.EntityID
	Team defs.Team
	Kind defs.UnitKind
	X    float64
}

type CastleDamage struct {
	Team   defs.Team // чей замок
	Amount float64
	HP     float64 // здоровье после удара
}

type Shot struct {
	ID     types.EntityID
	Team   defs.Team
	Weapon defs.WeaponName
	Target types.EntityID
}

type MatchInfo struct {
	MatchID  string
	Weapon   defs.WeaponName
	Result   string        // "win" / "lose", только для MatchEnded
	Duration time.Duration // игровое время матча
}
