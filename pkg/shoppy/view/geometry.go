package view

// Point is a position in window pixels.
type Point struct {
	X, Y int32
}

// Rect mirrors an SDL rectangle without depending on SDL.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
func (r Rect) Inset(dx, dy int32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: max(r.W-2*dx, 0), H: max(r.H-2*dy, 0)}
}

// Bottom returns the first row below r.
func (r Rect) Bottom() int32 {
	return r.Y + r.H
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Fit returns the largest rectangle with the aspect ratio of w x h that fits
// inside r, centered. Images are never scaled up.
func (r Rect) Fit(w, h int32) Rect {
	if w <= 0 || h <= 0 || r.W <= 0 || r.H <= 0 {
		return Rect{X: r.X + r.W/2, Y: r.Y + r.H/2}
	}

	scale := min(float64(r.W)/float64(w), float64(r.H)/float64(h), 1)
	fw := int32(float64(w) * scale)
	fh := int32(float64(h) * scale)

	return Rect{X: r.X + (r.W-fw)/2, Y: r.Y + (r.H-fh)/2, W: fw, H: fh}
}
