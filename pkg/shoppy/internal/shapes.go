package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

// SDLRect converts a layout rectangle.
func SDLRect(r view.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func setColor(renderer *sdl.Renderer, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func FillRect(renderer *sdl.Renderer, r view.Rect, c sdl.Color) {
	setColor(renderer, c)
	renderer.FillRect(SDLRect(r))
}

// FillRoundedRect fills r with corners of the given radius, one scanline per corner row.
func FillRoundedRect(renderer *sdl.Renderer, r view.Rect, radius int32, c sdl.Color) {
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		FillRect(renderer, r, c)
		return
	}

	setColor(renderer, c)
	renderer.FillRect(&sdl.Rect{X: r.X, Y: r.Y + radius, W: r.W, H: r.H - 2*radius})

	rf := float64(radius)
	for dy := int32(0); dy < radius; dy++ {
		offset := rf - float64(dy) - 0.5
		inset := radius - int32(math.Round(math.Sqrt(rf*rf-offset*offset)))
		w := r.W - 2*inset
		renderer.FillRect(&sdl.Rect{X: r.X + inset, Y: r.Y + dy, W: w, H: 1})
		renderer.FillRect(&sdl.Rect{X: r.X + inset, Y: r.Y + r.H - 1 - dy, W: w, H: 1})
	}
}

// FillCircle fills a circle centered on (cx, cy).
func FillCircle(renderer *sdl.Renderer, cx, cy, radius int32, c sdl.Color) {
	FillRoundedRect(renderer, view.Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}, radius, c)
}

const spinnerDots = 8

// DrawSpinner draws an indeterminate progress indicator. The highlighted dot
// advances with ticks, which is typically sdl.GetTicks64().
func DrawSpinner(renderer *sdl.Renderer, cx, cy, radius int32, c sdl.Color, ticks uint64) {
	head := int(ticks/100) % spinnerDots
	dot := max(radius/5, 2)

	for i := 0; i < spinnerDots; i++ {
		angle := 2 * math.Pi * float64(i) / spinnerDots
		x := cx + int32(float64(radius)*math.Cos(angle))
		y := cy + int32(float64(radius)*math.Sin(angle))

		age := (head - i + spinnerDots) % spinnerDots
		faded := c
		faded.A = uint8(255 - age*(200/spinnerDots))
		FillCircle(renderer, x, y, dot, faded)
	}
}

// DrawScrollbar draws a vertical handle inside track sized to the visible fraction.
func DrawScrollbar(renderer *sdl.Renderer, track view.Rect, contentHeight, viewportHeight, scrollY int32, c sdl.Color) {
	if contentHeight <= viewportHeight || track.H <= 0 {
		return
	}

	handleHeight := int32(float64(track.H) * float64(viewportHeight) / float64(contentHeight))
	handleHeight = max(handleHeight, 20)

	maxScroll := contentHeight - viewportHeight
	handleY := int32(float64(scrollY) * float64(track.H-handleHeight) / float64(maxScroll))
	handleY = min(max(handleY, 0), track.H-handleHeight)

	FillRoundedRect(renderer, view.Rect{X: track.X, Y: track.Y + handleY, W: track.W, H: handleHeight}, track.W/2, c)
}
