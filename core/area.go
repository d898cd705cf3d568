package core

// Rect represents an axis-aligned rectangular region in play-area units
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64 // Dimensions
}

// MaxX returns the right edge coordinate
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge coordinate
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Contains reports whether the point lies inside the rect (edges inclusive)
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.MaxX() && y >= r.Y && y <= r.MaxY()
}

// Clamp returns the point constrained to the rect
func (r Rect) Clamp(x, y float64) (float64, float64) {
	if x < r.X {
		x = r.X
	}
	if x > r.MaxX() {
		x = r.MaxX()
	}
	if y < r.Y {
		y = r.Y
	}
	if y > r.MaxY() {
		y = r.MaxY()
	}
	return x, y
}

// Inset returns the rect shrunk by d on all sides
func (r Rect) Inset(d float64) Rect {
	w := r.Width - 2*d
	h := r.Height - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + d, Y: r.Y + d, Width: w, Height: h}
}

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }
