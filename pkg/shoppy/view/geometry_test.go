package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContainsExcludesFarEdges(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	assert.True(t, r.Contains(Point{X: 10, Y: 10}))
	assert.True(t, r.Contains(Point{X: 29, Y: 29}))
	assert.False(t, r.Contains(Point{X: 30, Y: 15}))
	assert.False(t, r.Contains(Point{X: 15, Y: 30}))
}

func TestRectFit(t *testing.T) {
	box := Rect{X: 0, Y: 0, W: 100, H: 100}

	assert.Equal(t, Rect{X: 0, Y: 25, W: 100, H: 50}, box.Fit(400, 200), "wide image is letterboxed")
	assert.Equal(t, Rect{X: 25, Y: 0, W: 50, H: 100}, box.Fit(200, 400), "tall image is pillarboxed")
	assert.Equal(t, Rect{X: 40, Y: 40, W: 20, H: 20}, box.Fit(20, 20), "small image is not scaled up")
	assert.Equal(t, Rect{X: 50, Y: 50}, box.Fit(0, 10))
}

func TestRectInsetNeverNegative(t *testing.T) {
	assert.Equal(t, Rect{X: 5, Y: 5, W: 0, H: 0}, Rect{W: 6, H: 6}.Inset(5, 5))
}
