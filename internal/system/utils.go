// internal/system/utils.go
package system

import (
	"image/color"
	"math"
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/event"
)

// ImpactDamage — урон от столкновения юнитов: базовая щербинка + доля hit_damage
// + степенной член от относительной скорости.
func ImpactDamage(hitDamage, relSpeed float64) float64 {
	momentum := config.ImpactK * math.Pow(math.Max(0, relSpeed), config.ImpactP)
	return config.BaseChip + hitDamage*config.HitDamageFactor + momentum
}

// CastleImpactDamage — урон юнита по замку. Скорость ограничена сверху
// CastleImpactCap, результат ослаблен множителем CastleMult.
func CastleImpactDamage(hitDamage, relSpeed float64) float64 {
	rel := math.Min(math.Max(0, relSpeed), config.CastleImpactCap)
	momentum := config.ImpactK * math.Pow(rel, config.ImpactP)
	return (config.BaseChip + hitDamage*config.HitDamageFactor + momentum) * config.CastleMult
}

// ClashDamage делит ударный урон пары юнитов по массе: тяжёлый передаёт больше.
// Возвращает урон, получаемый a и b.
func ClashDamage(a, b *component.Unit) (toA, toB float64) {
	rel := math.Abs(a.VX - b.VX)
	msum := a.Mass() + b.Mass()
	aShare := a.Mass() / msum
	bShare := b.Mass() / msum
	toB = ImpactDamage(a.Def.HitDamage, rel) * aShare
	toA = ImpactDamage(b.Def.HitDamage, rel) * bShare
	return toA, toB
}

// emitHit отправляет событие попадания для эффектов.
func emitHit(d *event.Dispatcher, x, y, strength float64, c color.RGBA) {
	if d == nil {
		return
	}
	d.Dispatch(event.Event{Type: event.HitOccurred, Data: event.Hit{X: x, Y: y, Strength: strength, Color: c}})
}
