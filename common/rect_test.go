package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touch_right_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"touch_bottom_edge", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"apart", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
		{"zero_area_inside", Rect{X: 5, Y: 5, Width: 0, Height: 0}, false},
		{"zero_width_inside", Rect{X: 5, Y: 0, Width: 0, Height: 10}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(base), "symmetry")
		})
	}
}

func TestRectBB(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	bb := r.BB()
	assert.Equal(t, 1.0, bb.L)
	assert.Equal(t, 4.0, bb.R)
	assert.Equal(t, 2.0, bb.B)
	assert.Equal(t, 6.0, bb.T)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(0, 1, -3.5))
	assert.False(t, Finite(1, math.NaN()))
}
