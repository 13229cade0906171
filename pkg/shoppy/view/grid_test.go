package view

import (
	"testing"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveProducts() []catalog.Product {
	products := make([]catalog.Product, 5)
	for i := range products {
		products[i] = catalog.Product{ID: i + 1, Title: "Product", Price: float64(i) + 0.5}
	}
	return products
}

func TestGridMoveInGridMode(t *testing.T) {
	g := NewGrid(Rect{W: 400, H: 600}, 1)
	g.SetMode(ViewModeGrid)
	g.SetCount(5)

	assert.True(t, g.Move(MoveRight))
	assert.Equal(t, 1, g.Focused())

	assert.False(t, g.Move(MoveRight), "right edge of the row")

	assert.True(t, g.Move(MoveDown))
	assert.Equal(t, 3, g.Focused())

	assert.True(t, g.Move(MoveDown), "partial last row falls back to the last card")
	assert.Equal(t, 4, g.Focused())

	assert.False(t, g.Move(MoveLeft))
	assert.False(t, g.Move(MoveDown))

	assert.True(t, g.Move(MoveUp))
	assert.Equal(t, 2, g.Focused())
}

func TestGridMoveInListMode(t *testing.T) {
	g := NewGrid(Rect{W: 400, H: 600}, 1)
	g.SetCount(3)

	assert.False(t, g.Move(MoveUp))
	assert.False(t, g.Move(MoveRight))
	assert.True(t, g.Move(MoveDown))
	assert.True(t, g.Move(MoveDown))
	assert.False(t, g.Move(MoveDown))
	assert.Equal(t, 2, g.Focused())
}

func TestGridScroll(t *testing.T) {
	g := NewGrid(Rect{W: 400, H: 300}, 1)
	g.SetCount(5)

	assert.Equal(t, int32(700), g.ContentHeight())

	g.Focus(4)
	assert.Equal(t, int32(400), g.ScrollY())

	g.ScrollBy(-1000)
	assert.Equal(t, int32(0), g.ScrollY())

	g.ScrollBy(10000)
	assert.Equal(t, int32(400), g.ScrollY())

	g.ScrollTo(140)
	assert.Equal(t, int32(140), g.ScrollY())
	assert.Equal(t, Rect{X: 0, Y: 0, W: 400, H: 140}, g.Cell(1))
}

func TestGridSetModeKeepsFocusVisible(t *testing.T) {
	g := NewGrid(Rect{W: 400, H: 300}, 1)
	g.SetCount(5)
	g.Focus(4)

	g.SetMode(ViewModeGrid)

	assert.Equal(t, 4, g.Focused())
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, int32(402), g.ScrollY())
}

func TestGridLayoutOnlyVisible(t *testing.T) {
	g := NewGrid(Rect{W: 400, H: 300}, 1)
	products := fiveProducts()
	g.SetCount(len(products))

	cards := g.Layout(products)
	require.Len(t, cards, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{cards[0].ProductID, cards[1].ProductID, cards[2].ProductID})

	g.SetMode(ViewModeGrid)
	cards = g.Layout(products)
	require.Len(t, cards, 4)
	assert.Equal(t, int32(200), cards[1].Card.X-cards[0].Card.X)
}

func TestGridPressFocusesCard(t *testing.T) {
	g := NewGrid(Rect{W: 400, H: 300}, 1)
	products := fiveProducts()
	g.SetCount(len(products))

	res := g.Press(Point{X: 50, Y: 200}, products)
	assert.Equal(t, CardPress{Kind: PressNavigate, ProductID: 2}, res)
	assert.Equal(t, 1, g.Focused())

	res = g.Press(Point{X: 200, Y: 90}, products)
	assert.Equal(t, PressInert, res.Kind)
	assert.Equal(t, 1, g.Focused())

	res = g.Press(Point{X: 50, Y: 1000}, products)
	assert.Equal(t, PressNone, res.Kind)
}

func TestGridEmpty(t *testing.T) {
	g := NewGrid(Rect{W: 400, H: 300}, 1)
	g.SetCount(0)

	assert.False(t, g.Move(MoveDown))
	assert.Equal(t, 0, g.Rows())
	assert.Empty(t, g.Layout(nil))
}
