package overlay

import (
	"testing"

	"github.com/ruminaider/jobfilter/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_OpensUpwardWhenBelowIsCramped(t *testing.T) {
	// 150 units below, 600 above.
	trigger := geometry.Rect{Top: 600, Left: 32, Width: 180, Height: 40}
	viewport := geometry.Rect{Width: 1280, Height: 790}

	pl := Solve(trigger, viewport, DefaultParams)

	assert.True(t, pl.OpenUpward)
	assert.Equal(t, 280, pl.MaxHeight)
	assert.Equal(t, 32, pl.Left)
	assert.Equal(t, 180, pl.Width)
	assert.Nil(t, pl.Top)
	require.NotNil(t, pl.Bottom)
	assert.Equal(t, 790-600+4, *pl.Bottom)
}

func TestSolve_DownwardByDefault(t *testing.T) {
	trigger := geometry.Rect{Top: 100, Left: 10, Width: 200, Height: 40}
	viewport := geometry.Rect{Width: 1280, Height: 800}

	pl := Solve(trigger, viewport, DefaultParams)

	assert.False(t, pl.OpenUpward)
	assert.Equal(t, 280, pl.MaxHeight)
	assert.Nil(t, pl.Bottom)
	require.NotNil(t, pl.Top)
	assert.Equal(t, 144, *pl.Top)
}

func TestSolve_DownwardWhenBelowIsComfortableEvenIfAboveIsLarger(t *testing.T) {
	trigger := geometry.Rect{Top: 2000, Height: 40, Width: 100}
	viewport := geometry.Rect{Width: 1000, Height: 2240} // 200 below

	pl := Solve(trigger, viewport, DefaultParams)
	assert.False(t, pl.OpenUpward)
	assert.Equal(t, 190, pl.MaxHeight)
}

func TestSolve_CrampedBelowButAboveNotLarger(t *testing.T) {
	trigger := geometry.Rect{Top: 50, Height: 40, Width: 100}
	viewport := geometry.Rect{Width: 1000, Height: 190} // 100 below, 50 above

	pl := Solve(trigger, viewport, DefaultParams)
	assert.False(t, pl.OpenUpward)
	assert.Equal(t, 90, pl.MaxHeight)
}

func TestSolve_NoRoomEitherWayClampsToZero(t *testing.T) {
	trigger := geometry.Rect{Top: 5, Height: 10, Width: 100}
	viewport := geometry.Rect{Width: 1000, Height: 20} // 5 above, 5 below

	pl := Solve(trigger, viewport, DefaultParams)
	assert.Equal(t, 0, pl.MaxHeight)
	assert.True(t, (pl.Top == nil) != (pl.Bottom == nil))
}

func TestSolve_Invariants(t *testing.T) {
	for _, vh := range []int{0, 1, 24, 150, 480, 900} {
		for top := -5; top <= vh+5; top += 7 {
			for _, th := range []int{0, 1, 3, 40} {
				trigger := geometry.Rect{Top: top, Left: 3, Width: 20, Height: th}
				viewport := geometry.Rect{Width: 200, Height: vh}
				for _, p := range []Params{DefaultParams, TerminalParams} {
					pl := Solve(trigger, viewport, p)

					assert.GreaterOrEqual(t, pl.MaxHeight, 0)
					assert.True(t, (pl.Top == nil) != (pl.Bottom == nil),
						"exactly one anchor must be set")
					if vh-trigger.Bottom() >= p.MinComfortableSpace {
						assert.False(t, pl.OpenUpward)
					}
				}
			}
		}
	}
}

func TestPlacementRect(t *testing.T) {
	viewport := geometry.Rect{Width: 80, Height: 24}

	t.Run("downward anchors top", func(t *testing.T) {
		pl := Solve(geometry.Rect{Top: 2, Left: 4, Width: 12, Height: 1}, viewport, TerminalParams)
		r := pl.Rect(viewport, 12, 5)
		assert.Equal(t, geometry.Rect{Top: 3, Left: 4, Width: 12, Height: 5}, r)
	})

	t.Run("upward anchors bottom edge to trigger", func(t *testing.T) {
		pl := Solve(geometry.Rect{Top: 20, Left: 4, Width: 12, Height: 1}, viewport, TerminalParams)
		require.True(t, pl.OpenUpward)
		r := pl.Rect(viewport, 12, 5)
		assert.Equal(t, 20, r.Bottom(), "panel should end right above the trigger")
		assert.Equal(t, 15, r.Top)
	})

	t.Run("height is clamped to max height", func(t *testing.T) {
		pl := Solve(geometry.Rect{Top: 2, Left: 0, Width: 12, Height: 1}, viewport, TerminalParams)
		r := pl.Rect(viewport, 12, 100)
		assert.Equal(t, pl.MaxHeight, r.Height)
	})
}
