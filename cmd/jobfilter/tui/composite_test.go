package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeAt(t *testing.T) {
	tests := []struct {
		name       string
		background string
		overlay    string
		x, y       int
		w, h       int
		want       string
	}{
		{
			name:       "inside",
			background: "aaaaa\nbbbbb\nccccc",
			overlay:    "XY",
			x:          1, y: 1, w: 5, h: 3,
			want: "aaaaa\nbXYbb\nccccc",
		},
		{
			name:       "cut at right edge",
			background: "aaaaa",
			overlay:    "XYZ",
			x:          4, y: 0, w: 5, h: 1,
			want: "aaaaX",
		},
		{
			name:       "short background is padded",
			background: "a",
			overlay:    "X",
			x:          3, y: 0, w: 5, h: 1,
			want: "a  X",
		},
		{
			name:       "rows below screen dropped",
			background: "aa\nbb",
			overlay:    "X\nY\nZ",
			x:          0, y: 1, w: 2, h: 2,
			want: "aa\nXb",
		},
		{
			name:       "ragged overlay is padded to its widest line",
			background: "....\n....",
			overlay:    "XY\nZ",
			x:          1, y: 0, w: 4, h: 2,
			want: ".XY.\n.Z .",
		},
		{
			name:       "empty overlay",
			background: "abc",
			overlay:    "",
			x:          0, y: 0, w: 3, h: 1,
			want: "abc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompositeAt(tt.background, tt.overlay, tt.x, tt.y, tt.w, tt.h))
		})
	}
}

func TestCompositeAt_WideRunes(t *testing.T) {
	got := CompositeAt("Göteborg", "X", 1, 0, 8, 1)
	assert.Equal(t, "GXteborg", got)
}

func TestComposite_Centers(t *testing.T) {
	bg := strings.Repeat(".....\n", 4) + "....."
	got := strings.Split(Composite(bg, "X", 5, 5), "\n")
	assert.Equal(t, "..X..", got[2])
	assert.Equal(t, ".....", got[1])
}

func TestHelpModal(t *testing.T) {
	h := NewHelpModal(DefaultKeyMap())
	assert.True(t, h.Active())
	view := h.View()
	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "next filter")

	h.Close()
	assert.False(t, h.Active())
	assert.Equal(t, "", h.View())
}
