package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/devserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu         sync.Mutex
	paths      []string
	requestIDs []string
}

func (r *recorder) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		r.paths = append(r.paths, req.URL.Path)
		r.requestIDs = append(r.requestIDs, req.Header.Get(catalog.RequestIDHeader))
		r.mu.Unlock()
		next.ServeHTTP(w, req)
	})
}

func (r *recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func (r *recorder) RequestIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.requestIDs...)
}

func newFixtureServer(t *testing.T, opts devserver.Options) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	ts := httptest.NewServer(rec.wrap(devserver.New(devserver.Fixtures(), opts).Handler()))
	t.Cleanup(ts.Close)
	return ts, rec
}

func newClient(t *testing.T, base string) *catalog.Client {
	t.Helper()
	c, err := catalog.NewClient(catalog.Options{BaseURL: base})
	require.NoError(t, err)
	return c
}

func TestProductsReturnsCollectionVerbatim(t *testing.T) {
	ts, rec := newFixtureServer(t, devserver.Options{})

	products, err := newClient(t, ts.URL).Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, devserver.Fixtures(), products)
	assert.Equal(t, []string{"/products"}, rec.Paths())
}

func TestProductRequestsSingleItemEndpointOnce(t *testing.T) {
	ts, rec := newFixtureServer(t, devserver.Options{})

	product, err := newClient(t, ts.URL).Product(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3, product.ID)
	assert.Equal(t, "Mens Cotton Jacket", product.Title)
	assert.Equal(t, []string{"/products/3"}, rec.Paths())
}

func TestRequestsCarryDistinctRequestIDs(t *testing.T) {
	ts, rec := newFixtureServer(t, devserver.Options{})
	c := newClient(t, ts.URL)

	_, err := c.Products(context.Background())
	require.NoError(t, err)
	_, err = c.Product(context.Background(), 1)
	require.NoError(t, err)

	ids := rec.RequestIDs()
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestProductNotFound(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		ts, _ := newFixtureServer(t, devserver.Options{})

		_, err := newClient(t, ts.URL).Product(context.Background(), 404)
		require.Error(t, err)
		assert.True(t, catalog.IsNotFound(err))
		assert.Equal(t, "not_found", catalog.KindName(err))
	})

	t.Run("status 404", func(t *testing.T) {
		ts, _ := newFixtureServer(t, devserver.Options{NotFoundStatus: true})

		_, err := newClient(t, ts.URL).Product(context.Background(), 404)
		require.Error(t, err)
		assert.True(t, catalog.IsNotFound(err))

		var fe *catalog.FetchError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "product", fe.Op)
		assert.NotEmpty(t, fe.RequestID)
		assert.Equal(t, fe.RequestID, catalog.RequestID(err))
	})
}

func TestMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "not-a-number"`))
	}))
	defer ts.Close()

	c := newClient(t, ts.URL)

	_, err := c.Products(context.Background())
	assert.True(t, catalog.IsMalformed(err))

	_, err = c.Product(context.Background(), 1)
	assert.True(t, catalog.IsMalformed(err))
}

func TestServerErrorIsTransport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newClient(t, ts.URL).Products(context.Background())
	require.Error(t, err)
	assert.True(t, catalog.IsTransport(err))
	assert.False(t, catalog.IsNotFound(err))
	assert.NotEmpty(t, catalog.RequestID(err))
	assert.Empty(t, catalog.RequestID(errors.New("plain")))
}

func TestUnreachableHostIsTransport(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	_, err := newClient(t, base).Products(context.Background())
	require.Error(t, err)
	assert.True(t, catalog.IsTransport(err))
}

func TestCancelledContextAbortsRequest(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer ts.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := newClient(t, ts.URL).Products(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "unknown", catalog.KindName(err))
}

func TestImage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer ts.Close()

	data, err := newClient(t, ts.URL).Image(context.Background(), ts.URL+"/img/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestOversizedBodyIsTransport(t *testing.T) {
	for name, tc := range map[string]struct {
		size  int
		fetch func(c *catalog.Client, base string) error
	}{
		"collection": {size: 4<<20 + 1, fetch: func(c *catalog.Client, _ string) error {
			_, err := c.Products(context.Background())
			return err
		}},
		"image": {size: 10<<20 + 1000, fetch: func(c *catalog.Client, base string) error {
			_, err := c.Image(context.Background(), base+"/img/huge.jpg")
			return err
		}},
	} {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(bytes.Repeat([]byte{'x'}, tc.size))
			}))
			defer ts.Close()

			err := tc.fetch(newClient(t, ts.URL), ts.URL)
			require.Error(t, err)
			assert.True(t, catalog.IsTransport(err))
			assert.False(t, catalog.IsMalformed(err))
			assert.Contains(t, err.Error(), "body exceeds")
		})
	}
}

func TestNewClientRejectsRelativeBaseURL(t *testing.T) {
	_, err := catalog.NewClient(catalog.Options{BaseURL: "/products"})
	assert.Error(t, err)

	c, err := catalog.NewClient(catalog.Options{})
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultBaseURL, c.BaseURL())
}
