package render

// View переводит мировые координаты (ось y вверх) в экранные (ось y вниз)
// с учётом тряски.
type View struct {
	Height         float64
	ShakeX, ShakeY float64
}

func NewView(height float64) View {
	return View{Height: height}
}

// WithShake возвращает вид, сдвинутый на (dx, dy) в мировых координатах.
func (v View) WithShake(dx, dy float64) View {
	v.ShakeX, v.ShakeY = dx, dy
	return v
}

// ToScreen переводит точку мира в точку экрана.
func (v View) ToScreen(x, y float64) (float32, float32) {
	return float32(x + v.ShakeX), float32(v.Height - (y + v.ShakeY))
}

// RectToScreen переводит прямоугольник мира (левый нижний угол, размер)
// в экранный (левый верхний угол, размер).
func (v View) RectToScreen(x, y, w, h float64) (float32, float32, float32, float32) {
	sx, sy := v.ToScreen(x, y+h)
	return sx, sy, float32(w), float32(h)
}
