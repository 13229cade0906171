package view

import (
	"testing"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/stretchr/testify/assert"
)

var jacket = catalog.Product{
	ID:          3,
	Title:       "Mens Cotton Jacket",
	Description: "great outerwear jackets for Spring/Autumn/Winter",
	Price:       55.99,
	Image:       "https://fakestoreapi.com/img/71li-ujtlUL._AC_UX679_.jpg",
}

func TestLayoutCardListMode(t *testing.T) {
	l := LayoutCard(jacket, ViewModeList, Rect{X: 0, Y: 0, W: 400, H: 140}, 1)

	assert.Equal(t, Rect{X: 0, Y: 10, W: 400, H: 120}, l.Card)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 100, H: 100}, l.Image)
	assert.Equal(t, Rect{X: 120, Y: 20, W: 270, H: 22}, l.Title)
	assert.Equal(t, Rect{X: 120, Y: 47, W: 270, H: 32}, l.Description)
	assert.Equal(t, Rect{X: 120, Y: 84, W: 270, H: 20}, l.Price)
	assert.False(t, l.Centered)
	assert.Equal(t, "$55.99", l.PriceText)
	assert.Equal(t, jacket.Title, l.TitleText)
	assert.Equal(t, jacket.Image, l.ImageURL)
}

func TestLayoutCardGridMode(t *testing.T) {
	l := LayoutCard(jacket, ViewModeGrid, Rect{X: 0, Y: 0, W: 200, H: 234}, 1)

	assert.Equal(t, Rect{X: 5, Y: 5, W: 190, H: 224}, l.Card)
	assert.Equal(t, Rect{X: 50, Y: 20, W: 100, H: 100}, l.Image)
	assert.Equal(t, Rect{X: 20, Y: 130, W: 160, H: 22}, l.Title)
	assert.Equal(t, Rect{X: 20, Y: 194, W: 160, H: 20}, l.Price)
	assert.True(t, l.Centered)
}

func TestCardPress(t *testing.T) {
	tests := []struct {
		name string
		mode ViewMode
		cell Rect
		at   Point
		want CardPress
	}{
		{"list image", ViewModeList, Rect{W: 400, H: 140}, Point{X: 50, Y: 50}, CardPress{Kind: PressNavigate, ProductID: 3}},
		{"list title", ViewModeList, Rect{W: 400, H: 140}, Point{X: 200, Y: 25}, CardPress{Kind: PressNavigate, ProductID: 3}},
		{"list price", ViewModeList, Rect{W: 400, H: 140}, Point{X: 200, Y: 90}, CardPress{Kind: PressInert}},
		{"list margin", ViewModeList, Rect{W: 400, H: 140}, Point{X: 200, Y: 135}, CardPress{Kind: PressNone}},
		{"grid image", ViewModeGrid, Rect{W: 200, H: 234}, Point{X: 100, Y: 60}, CardPress{Kind: PressNavigate, ProductID: 3}},
		{"grid price", ViewModeGrid, Rect{W: 200, H: 234}, Point{X: 100, Y: 200}, CardPress{Kind: PressInert}},
		{"grid margin", ViewModeGrid, Rect{W: 200, H: 234}, Point{X: 2, Y: 100}, CardPress{Kind: PressNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LayoutCard(jacket, tt.mode, tt.cell, 1)
			assert.Equal(t, tt.want, l.Press(tt.at))
		})
	}
}

func TestCardActivate(t *testing.T) {
	for _, mode := range []ViewMode{ViewModeList, ViewModeGrid} {
		l := LayoutCard(jacket, mode, Rect{W: 400, H: 300}, 1)
		assert.Equal(t, CardPress{Kind: PressNavigate, ProductID: 3}, l.Activate(), mode.String())
	}
}

func TestViewModeToggle(t *testing.T) {
	m := ViewModeList
	assert.Equal(t, 1, m.Columns())

	m = m.Toggle()
	assert.Equal(t, ViewModeGrid, m)
	assert.Equal(t, 2, m.Columns())

	m = m.Toggle()
	assert.Equal(t, ViewModeList, m)
	assert.Equal(t, 1, m.Columns())
}

func TestCardHeight(t *testing.T) {
	assert.Equal(t, int32(140), ViewModeList.Style().CardHeight())
	assert.Equal(t, int32(234), ViewModeGrid.Style().CardHeight())
	assert.Equal(t, int32(280), ViewModeList.Style().Scaled(2).CardHeight())
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$22.30", FormatPrice(22.3))
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$109.95", FormatPrice(109.95))
	assert.Equal(t, "$695.00", FormatPrice(695))
}
