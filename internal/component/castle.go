// internal/component/castle.go
package component

import (
	"math"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
)

// Castle — замок команды с башней. Создаётся один раз на команду,
// в течение матча не уничтожается.
type Castle struct {
	Team  defs.Team
	X     float64 // центр по горизонтали
	W, H  float64
	HP    float64
	MaxHP float64

	Weapon defs.WeaponDefinition
	Timer  float64 // время до следующего выстрела
}

func NewCastle(team defs.Team, x float64) *Castle {
	weapon, _ := defs.LookupWeapon(config.DefaultWeapon)
	return &Castle{
		Team:   team,
		X:      x,
		W:      config.CastleWidth,
		H:      config.CastleHeight,
		HP:     config.CastleHealth,
		MaxHP:  config.CastleHealth,
		Weapon: weapon,
	}
}

// SetWeapon ставит пресет оружия и сбрасывает таймер стрельбы.
func (c *Castle) SetWeapon(def defs.WeaponDefinition) {
	c.Weapon = def
	c.Timer = 0
}

// Reset восстанавливает здоровье и таймер перед матчем.
func (c *Castle) Reset() {
	c.HP = c.MaxHP
	c.Timer = 0
}

func (c *Castle) BaseY(groundY float64) float64 {
	return groundY + config.CastleBaseOffset
}

// Bounds возвращает прямоугольник замка: left, right, bottom, top.
func (c *Castle) Bounds(groundY float64) (left, right, bottom, top float64) {
	by := c.BaseY(groundY)
	return c.X - c.W/2, c.X + c.W/2, by, by + c.H
}

// Muzzle — точка, из которой вылетают снаряды башни.
func (c *Castle) Muzzle(groundY float64) (x, y float64) {
	return c.X, c.BaseY(groundY) + c.H*config.MuzzleFactor
}

// TakeDamage уменьшает здоровье; ниже нуля не опускается.
func (c *Castle) TakeDamage(dmg float64) {
	if dmg <= 0 {
		return
	}
	c.HP = math.Max(0, c.HP-dmg)
}

func (c *Castle) Destroyed() bool {
	return c.HP <= 0
}
