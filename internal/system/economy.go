// internal/system/economy.go
package system

import (
	"neon-siege/internal/config"
	"neon-siege/internal/utils"
)

// EconomySystem — запас энергии игрока для спавна юнитов.
type EconomySystem struct {
	Energy    float64
	MaxEnergy float64
	Rate      float64 // восстановление в секунду
}

func NewEconomySystem() *EconomySystem {
	return &EconomySystem{
		Energy:    config.StartEnergy,
		MaxEnergy: config.MaxEnergy,
		Rate:      config.EnergyRate,
	}
}

func (s *EconomySystem) Update(deltaTime float64) {
	s.Energy = utils.Clamp(s.Energy+s.Rate*deltaTime, 0, s.MaxEnergy)
}

func (s *EconomySystem) CanAfford(cost float64) bool {
	return cost >= 0 && s.Energy >= cost
}

// Spend списывает cost целиком или не списывает ничего.
func (s *EconomySystem) Spend(cost float64) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.Energy -= cost
	return true
}

func (s *EconomySystem) Reset() {
	s.Energy = config.StartEnergy
}
