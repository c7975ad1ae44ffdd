package ui

import (
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnBarKindAt(t *testing.T) {
	bar := NewSpawnBar(config.ScreenWidth, config.ScreenHeight)
	require.Len(t, bar.Buttons, 3)

	y := config.ScreenHeight - config.ButtonBottom - config.ButtonHeight/2
	kind, ok := bar.KindAt(20, y)
	assert.True(t, ok)
	assert.Equal(t, defs.KindStriker, kind)

	kind, ok = bar.KindAt(config.ScreenWidth/2, y)
	assert.True(t, ok)
	assert.Equal(t, defs.KindBrute, kind)

	kind, ok = bar.KindAt(config.ScreenWidth-1, y)
	assert.True(t, ok)
	assert.Equal(t, defs.KindTank, kind)

	kind, ok = bar.KindAt(0, config.ScreenHeight-1)
	assert.True(t, ok, "edge margin snaps to the first column")
	assert.Equal(t, defs.KindStriker, kind)

	_, ok = bar.KindAt(20, 100)
	assert.False(t, ok)
}

func TestSpawnBarDimsUnaffordable(t *testing.T) {
	bar := NewSpawnBar(config.ScreenWidth, config.ScreenHeight)
	bar.Update(20)
	assert.True(t, bar.Buttons[0].Enabled)
	assert.False(t, bar.Buttons[1].Enabled)
	assert.False(t, bar.Buttons[2].Enabled)
	assert.Equal(t, "36", bar.Buttons[2].Sub)
}

func TestLoadoutMenuHitTesting(t *testing.T) {
	m := NewLoadoutMenu(config.ScreenWidth, config.ScreenHeight)
	require.Len(t, m.Boxes, len(defs.WeaponChoices))

	for i, box := range m.Boxes {
		c := box.Rect.Min.Add(box.Rect.Size().Div(2))
		name, ok := m.WeaponAt(c.X, c.Y)
		assert.True(t, ok)
		assert.Equal(t, defs.WeaponChoices[i], name)
	}
	for i := 1; i < len(m.Boxes); i++ {
		assert.Greater(t, m.Boxes[i].Rect.Min.Y, m.Boxes[i-1].Rect.Max.Y, "cards do not overlap")
	}

	_, ok := m.WeaponAt(2, 2)
	assert.False(t, ok)

	c := m.Start.Min.Add(m.Start.Size().Div(2))
	assert.True(t, m.StartHit(c.X, c.Y))
	assert.False(t, m.StartHit(2, 2))

	m.Update(defs.WeaponCatapult)
	assert.True(t, m.Boxes[2].Highlighted)
	assert.False(t, m.Boxes[0].Highlighted)
}

func TestEnergyBarFill(t *testing.T) {
	e := NewEnergyBar(config.ScreenWidth, config.ScreenHeight)
	assert.InDelta(t, float64(e.Width)/2, float64(e.FillWidth(60, 120)), 1e-3)
	assert.Zero(t, e.FillWidth(0, 120))
	assert.Equal(t, e.Width, e.FillWidth(500, 120))
	assert.Less(t, e.Y+e.Height, float32(config.ScreenHeight-config.ButtonBottom-config.ButtonHeight))
}

func TestButtonCooldown(t *testing.T) {
	b := NewButton(NewSpawnBar(config.ScreenWidth, config.ScreenHeight).Buttons[0].Rect, "x")
	now := time.Now()
	assert.True(t, b.Ready(now))
	assert.False(t, b.Ready(now.Add(100*time.Millisecond)))
	assert.True(t, b.Ready(now.Add(200*time.Millisecond)))
}
