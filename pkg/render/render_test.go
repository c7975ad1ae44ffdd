package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewFlipsYAndAppliesShake(t *testing.T) {
	v := NewView(820)

	x, y := v.ToScreen(100, 20)
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(800), y)

	x, y = v.WithShake(3, -2).ToScreen(100, 20)
	assert.Equal(t, float32(103), x)
	assert.Equal(t, float32(802), y)
}

func TestRectToScreenUsesTopLeftCorner(t *testing.T) {
	v := NewView(820)
	x, y, w, h := v.RectToScreen(10, 200, 95, 260)
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(360), y)
	assert.Equal(t, float32(95), w)
	assert.Equal(t, float32(260), h)
}

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}

	assert.Equal(t, color.RGBA{100, 50, 25, 255}, DarkenColor(c))
	assert.Equal(t, uint8(127), WithAlpha(c, 0.5).A)
	assert.Equal(t, uint8(255), WithAlpha(c, 2).A)
	assert.Equal(t, uint8(0), WithAlpha(c, -1).A)

	g := Glow(c, 0.5)
	assert.Equal(t, uint8(127), g.A)
	assert.Equal(t, uint8(99), g.R, "premultiplied by alpha")
}
