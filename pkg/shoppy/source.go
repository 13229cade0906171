package shoppy

import (
	"context"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
)

// ProductSource is where the screens get their data. *catalog.Client implements it.
type ProductSource interface {
	Products(ctx context.Context) ([]catalog.Product, error)
	Product(ctx context.Context, id int) (catalog.Product, error)
	Image(ctx context.Context, url string) ([]byte, error)
}
