package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icons/*.svg
var iconFiles embed.FS

// RasterizeIcon renders the embedded SVG icon name into a size x size image
// painted in a single color, keeping the icon's coverage as alpha.
func RasterizeIcon(name string, size int, c sdl.Color) (*image.RGBA, error) {
	data, err := iconFiles.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	for i := 0; i < len(rgba.Pix); i += 4 {
		alpha := rgba.Pix[i+3]
		rgba.Pix[i] = c.R
		rgba.Pix[i+1] = c.G
		rgba.Pix[i+2] = c.B
		rgba.Pix[i+3] = uint8(uint16(alpha) * uint16(c.A) / 255)
	}

	return rgba, nil
}

// IconTexture rasterizes an icon into a texture owned by the caller.
func IconTexture(renderer *sdl.Renderer, name string, size int32, c sdl.Color) (*sdl.Texture, error) {
	rgba, err := RasterizeIcon(name, int(size), c)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		size, size, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("icon %s surface: %w", name, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icon %s texture: %w", name, err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}
