package internal

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 64

type cachedTexture struct {
	key     string
	texture *sdl.Texture
}

// TextureCache owns up to maxSize textures keyed by string. Adding past the
// limit destroys the least recently used one, so callers must not keep a
// texture across frames without looking it up again.
type TextureCache struct {
	entries map[string]*list.Element
	lru     *list.List // front is most recently used
	maxSize int
	evicted int
}

func NewTextureCache(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &TextureCache{
		entries: make(map[string]*list.Element, maxSize),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	el, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.lru.MoveToFront(el)
	return el.Value.(*cachedTexture).texture
}

// Set stores texture under key. A different texture already stored under key is destroyed.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cachedTexture)
		if entry.texture != texture {
			entry.texture.Destroy()
			entry.texture = texture
		}
		c.lru.MoveToFront(el)
		return
	}

	for c.lru.Len() >= c.maxSize {
		c.evict(c.lru.Back())
	}
	c.entries[key] = c.lru.PushFront(&cachedTexture{key: key, texture: texture})
}

func (c *TextureCache) evict(el *list.Element) {
	entry := c.lru.Remove(el).(*cachedTexture)
	delete(c.entries, entry.key)
	entry.texture.Destroy()
	c.evicted++
}

func (c *TextureCache) Len() int     { return c.lru.Len() }
func (c *TextureCache) Evicted() int { return c.evicted }

// Destroy frees every texture. The cache stays usable.
func (c *TextureCache) Destroy() {
	for el := c.lru.Front(); el != nil; el = el.Next() {
		el.Value.(*cachedTexture).texture.Destroy()
	}
	c.entries = make(map[string]*list.Element, c.maxSize)
	c.lru.Init()
}
