package app

import "neon-siege/internal/config"

// Stepper — то, что продвигается на dt секунд.
type Stepper interface {
	Update(deltaTime float64)
}

// Clock переводит реальное время кадра в фиксированные шаги симуляции.
// Кадр длиннее MaxFrameDelta обрезается, остаток меньше FixedStep
// отдаётся последним коротким шагом.
type Clock struct {
	target      Stepper
	accumulator float64
}

func NewClock(target Stepper) *Clock {
	return &Clock{target: target}
}

// Advance продвигает цель на elapsed секунд и возвращает число шагов.
func (c *Clock) Advance(elapsed float64) int {
	if !(elapsed > 0) {
		return 0
	}
	if elapsed > config.MaxFrameDelta {
		elapsed = config.MaxFrameDelta
	}
	c.accumulator += elapsed

	steps := 0
	for c.accumulator >= config.FixedStep {
		c.target.Update(config.FixedStep)
		c.accumulator -= config.FixedStep
		steps++
	}
	if c.accumulator > 1e-9 {
		c.target.Update(c.accumulator)
		steps++
	}
	c.accumulator = 0
	return steps
}
