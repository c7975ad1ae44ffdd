// internal/tui/layout.go
package tui

import "neon-siege/internal/config"

// hudRows — строки под полем для энергии и подсказок.
const hudRows = 4

// Layout переводит мировые координаты в клетки терминала.
// Поле занимает всё окно, кроме нижних hudRows строк.
type Layout struct {
	Cols, Rows int
}

func (l Layout) FieldRows() int {
	if r := l.Rows - hudRows; r > 1 {
		return r
	}
	return 1
}

// Cell возвращает колонку и строку для точки мира (ось y вверх).
func (l Layout) Cell(x, y float64) (int, int) {
	col := int(x / config.WorldWidth * float64(l.Cols))
	row := l.FieldRows() - 1 - int(y/config.WorldHeight*float64(l.FieldRows()))
	return col, row
}

// Span — ширина отрезка мира в клетках, не меньше одной.
func (l Layout) Span(w float64) int {
	if n := int(w / config.WorldWidth * float64(l.Cols)); n > 0 {
		return n
	}
	return 1
}

// Inside — клетка лежит в поле.
func (l Layout) Inside(col, row int) bool {
	return col >= 0 && col < l.Cols && row >= 0 && row < l.FieldRows()
}
