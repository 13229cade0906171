package internal

import (
	"context"
	"sync"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// ImageFetcher downloads image bytes. *catalog.Client implements it.
type ImageFetcher interface {
	Image(ctx context.Context, url string) ([]byte, error)
}

// ImageLoader downloads and decodes product images in the background and
// uploads them as textures on the render thread.
type ImageLoader struct {
	renderer *sdl.Renderer
	fetcher  ImageFetcher
	cache    *TextureCache

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	mu       sync.Mutex
	inflight map[string]bool
	decoded  map[string]*sdl.Surface
	failed   map[string]bool

	loaded *atomic.Int64
}

// NewImageLoader creates a loader that runs at most concurrency downloads at once.
func NewImageLoader(parent context.Context, renderer *sdl.Renderer, fetcher ImageFetcher, cacheSize, concurrency int) *ImageLoader {
	ctx, cancel := context.WithCancel(parent)

	group := &errgroup.Group{}
	group.SetLimit(max(concurrency, 1))

	return &ImageLoader{
		renderer: renderer,
		fetcher:  fetcher,
		cache:    NewTextureCache(cacheSize),
		ctx:      ctx,
		cancel:   cancel,
		group:    group,
		inflight: make(map[string]bool),
		decoded:  make(map[string]*sdl.Surface),
		failed:   make(map[string]bool),
		loaded:   atomic.NewInt64(0),
	}
}

// Request starts downloads for urls that are neither cached nor pending.
// It never blocks: urls over the concurrency limit are picked up by a later call.
func (l *ImageLoader) Request(urls ...string) {
	if l.ctx.Err() != nil {
		return
	}

	for _, url := range urls {
		if url == "" || l.cache.Get(url) != nil {
			continue
		}

		l.mu.Lock()
		skip := l.inflight[url] || l.failed[url] || l.decoded[url] != nil
		if !skip {
			l.inflight[url] = true
		}
		l.mu.Unlock()
		if skip {
			continue
		}

		if !l.group.TryGo(func() error { return l.load(url) }) {
			l.mu.Lock()
			delete(l.inflight, url)
			l.mu.Unlock()
			return
		}
	}
}

func (l *ImageLoader) load(url string) error {
	surface, err := l.fetchAndDecode(url)

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inflight, url)

	if err != nil {
		if l.ctx.Err() == nil {
			l.failed[url] = true
			GetInternalLogger().Warn("Failed to load image", "url", url, "error", err)
		}
		return nil
	}
	if l.ctx.Err() != nil {
		surface.Free()
		return nil
	}

	l.decoded[url] = surface
	return nil
}

func (l *ImageLoader) fetchAndDecode(url string) (*sdl.Surface, error) {
	data, err := l.fetcher.Image(l.ctx, url)
	if err != nil {
		return nil, err
	}

	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, err
	}
	return img.LoadRW(rw, true)
}

// Texture returns the texture for url, or nil while it is still loading or
// after it failed. Must be called from the render thread.
func (l *ImageLoader) Texture(url string) *sdl.Texture {
	if texture := l.cache.Get(url); texture != nil {
		return texture
	}

	l.mu.Lock()
	surface := l.decoded[url]
	delete(l.decoded, url)
	l.mu.Unlock()

	if surface == nil {
		return nil
	}
	defer surface.Free()

	texture, err := l.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Warn("Failed to upload image", "url", url, "error", err)
		return nil
	}
	l.cache.Set(url, texture)
	l.loaded.Inc()
	return texture
}

// Failed reports whether url could not be loaded.
func (l *ImageLoader) Failed(url string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failed[url]
}

// Loaded is the number of textures uploaded so far.
func (l *ImageLoader) Loaded() int64 {
	return l.loaded.Load()
}

// Close aborts downloads, waits for them and releases every texture.
func (l *ImageLoader) Close() {
	l.cancel()
	_ = l.group.Wait()

	l.mu.Lock()
	for url, surface := range l.decoded {
		surface.Free()
		delete(l.decoded, url)
	}
	l.mu.Unlock()

	GetInternalLogger().Debug("Image loader closed", "loaded", l.loaded.Load(), "evicted", l.cache.Evicted())
	l.cache.Destroy()
}
