package meadow

// Color is an RGBA color with 8-bit channels. Not premultiplied; blending
// happens per channel at draw time via Blend.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Blend composites fg over bg at the given opacity using the standard
// out = fg*alpha + bg*(1-alpha) formula per channel with integer truncation.
// The alpha channels are blended by the same formula.
func Blend(fg, bg Color, alpha uint8) Color {
	a := int(alpha)
	na := 255 - a
	return Color{
		R: uint8((int(fg.R)*a + int(bg.R)*na) / 255),
		G: uint8((int(fg.G)*a + int(bg.G)*na) / 255),
		B: uint8((int(fg.B)*a + int(bg.B)*na) / 255),
		A: uint8((int(fg.A)*a + int(bg.A)*na) / 255),
	}
}

// Rect is an axis-aligned rectangle with a signed position and non-negative
// size. The coordinate system has its origin at the top-left, with Y
// increasing downward.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether r and other overlap by at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Inset returns r shrunk by n pixels on every side. The result is clamped to
// an empty rectangle rather than turning inside out.
func (r Rect) Inset(n int) Rect {
	r.X += n
	r.Y += n
	r.W -= 2 * n
	r.H -= 2 * n
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// transparencyAlpha maps a window transparency in [0, 100] to the alpha the
// window's pixels are composited with: 0 is fully opaque (255), 100 is fully
// transparent (0).
func transparencyAlpha(transparency int) uint8 {
	t := clampInt(transparency, 0, 100)
	return uint8(255 - t*255/100)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clampFloat(v, 0, 1)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpColor interpolates each channel of a toward b by t in [0, 1].
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: uint8(lerp(float64(a.R), float64(b.R), t)),
		G: uint8(lerp(float64(a.G), float64(b.G), t)),
		B: uint8(lerp(float64(a.B), float64(b.B), t)),
		A: uint8(lerp(float64(a.A), float64(b.A), t)),
	}
}
