// internal/defs/types.go
package defs

// Team identifies a side of the match.
type Team int

const (
	TeamPlayer Team = 0
	TeamEnemy  Team = 1
)

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}
	return TeamPlayer
}

// Direction is +1 for the player (advancing right) and -1 for the enemy.
func (t Team) Direction() float64 {
	if t == TeamPlayer {
		return 1
	}
	return -1
}

func (t Team) String() string {
	if t == TeamPlayer {
		return "player"
	}
	return "enemy"
}

// UnitKind is the troop tier.
type UnitKind string

const (
	KindStriker UnitKind = "striker"
	KindBrute   UnitKind = "brute"
	KindTank    UnitKind = "tank"
)

// WeaponName names a tower weapon preset.
type WeaponName string

const (
	WeaponCrossbow WeaponName = "Crossbow"
	WeaponBallista WeaponName = "Ballista"
	WeaponCatapult WeaponName = "Catapult"
)
