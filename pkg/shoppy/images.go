package shoppy

import (
	"context"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/internal"
)

// ImageCache downloads product images and keeps their textures.
// It must be created after Init and closed before Close.
type ImageCache struct {
	loader *internal.ImageLoader
}

const (
	imageCacheSize   = 48
	imageConcurrency = 4
)

// NewImageCache creates an image cache fetching through source.
func NewImageCache(ctx context.Context, source ProductSource) *ImageCache {
	return &ImageCache{
		loader: internal.NewImageLoader(ctx, internal.GetWindow().Renderer, source, imageCacheSize, imageConcurrency),
	}
}

// Close aborts downloads and frees every texture.
func (c *ImageCache) Close() {
	if c != nil {
		c.loader.Close()
	}
}
