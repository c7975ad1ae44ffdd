// internal/utils/math.go
package utils

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Fraction возвращает v/max в пределах [0, 1]; для max <= 0 - 0.
func Fraction(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return Clamp(v/max, 0, 1)
}
