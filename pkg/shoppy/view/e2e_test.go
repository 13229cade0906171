package view_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/devserver"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Coming back from the detail screen shows the same list without a second
// collection request.
func TestBrowseFromListToDetail(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	catalogServer := devserver.New([]catalog.Product{
		{ID: 1, Title: "A", Description: "first", Price: 9.99, Image: "https://example.com/a.png"},
	}, devserver.Options{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		catalogServer.Handler().ServeHTTP(w, r)
	}))
	defer srv.Close()

	client, err := catalog.NewClient(catalog.Options{BaseURL: srv.URL})
	require.NoError(t, err)

	ctx := context.Background()

	list := view.NewProductListState(view.FetchErrorPolicyShow, view.Rect{W: 400, H: 600}, 1, nil)
	products, err := client.Products(ctx)
	require.NoError(t, err)
	list.Succeed(products)

	cards := list.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "A", cards[0].TitleText)
	assert.Equal(t, "$9.99", cards[0].PriceText)

	assert.Equal(t, view.PressInert, list.Press(view.Point{X: cards[0].Price.X + 1, Y: cards[0].Price.Y + 1}).Kind)

	press := list.Press(view.Point{X: cards[0].Image.X + 1, Y: cards[0].Image.Y + 1})
	require.Equal(t, view.PressNavigate, press.Kind)

	detail := view.NewProductDetailState(press.ProductID, view.FetchErrorPolicyShow)
	product, err := client.Product(ctx, detail.ProductID())
	require.NoError(t, err)
	detail.Succeed(product)

	assert.Equal(t, "A", detail.Title(""))
	assert.Equal(t, "$9.99", detail.PriceText())

	back := view.NewProductListState(view.FetchErrorPolicyShow, view.Rect{W: 400, H: 600}, 1, list.Resume())
	require.False(t, back.NeedsFetch())
	assert.Equal(t, cards, back.Cards())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/products", "/products/1"}, paths)
}
