// Package devserver serves a fixture product catalog with the same two
// resources as the public catalog. It backs development runs without network
// access and the client tests.
package devserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

// Options configures a Server.
type Options struct {
	// NotFoundStatus makes unknown ids answer 404 instead of the public
	// catalog's empty 200 body.
	NotFoundStatus bool
	Logger         *slog.Logger
}

// Server is an in-memory catalog.
type Server struct {
	products []catalog.Product
	byID     map[int]catalog.Product
	opts     Options
	logger   *slog.Logger
}

// New creates a Server over products. The slice order is the collection order.
func New(products []catalog.Product, opts Options) *Server {
	byID := make(map[int]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		products: products,
		byID:     byID,
		opts:     opts,
		logger:   logger,
	}
}

// Handler returns the HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	s.ConfigureRouter(r)
	return r
}

// ConfigureRouter mounts the catalog routes on r.
func (s *Server) ConfigureRouter(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.ListProducts)
		r.Get("/{id}", s.GetProduct)
	})
}

// ProductResponse renders one product.
type ProductResponse struct {
	catalog.Product
}

func (pr *ProductResponse) Render(_ http.ResponseWriter, _ *http.Request) error {
	return nil
}

// ListProducts answers GET /products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	list := make([]render.Renderer, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, &ProductResponse{Product: p})
	}

	s.logger.Debug("Serving products", "request_id", r.Header.Get(catalog.RequestIDHeader), "count", len(list))
	if err := render.RenderList(w, r, list); err != nil {
		s.logger.Warn("Failed to render products", "error", err)
	}
}

// GetProduct answers GET /products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		s.renderError(w, r, ErrInvalidRequest(errors.New("id must be an integer")))
		return
	}

	product, ok := s.byID[id]
	if !ok {
		s.logger.Debug("Unknown product requested", "product_id", id)
		if s.opts.NotFoundStatus {
			s.renderError(w, r, ErrNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := render.Render(w, r, &ProductResponse{Product: product}); err != nil {
		s.logger.Warn("Failed to render product", "product_id", id, "error", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, e *ErrResponse) {
	if err := render.Render(w, r, e); err != nil {
		s.logger.Warn("Failed to render error", "error", err)
	}
}
