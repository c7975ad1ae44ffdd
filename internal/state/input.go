package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// justTapped возвращает точку нового нажатия мышью или касанием.
func justTapped() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	touches := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		return x, y, true
	}
	return 0, 0, false
}

var numberKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// numberKeyPressed — индекс только что нажатой цифры 1..3, иначе -1.
func numberKeyPressed() int {
	for i, k := range numberKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i
		}
	}
	return -1
}
