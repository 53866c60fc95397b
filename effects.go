package meadow

import (
	"math"
	"sort"
)

// The effects pipeline is a set of stateless drawing operations over a
// Framebuffer. Every function here is pure with respect to its inputs and
// the current framebuffer contents; nothing retains state between calls.

// maxBlur bounds the shadow/glow spread. Out-of-range inputs are clamped,
// never rejected.
const maxBlur = 10

// FillRectAlpha fills r by blending c over the existing pixels at the given
// opacity. alpha 255 degenerates to an opaque fill.
func FillRectAlpha(fb Framebuffer, r Rect, c Color, alpha uint8) {
	if r.Empty() {
		return
	}
	if alpha == 255 {
		fb.FillRect(r, c)
		return
	}
	if alpha == 0 {
		return
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			fb.SetPixel(x, y, Blend(c, fb.At(x, y), alpha))
		}
	}
}

// FillRoundedRect fills r with corners rounded to the given radius. The
// radius is clamped to half the smaller dimension.
func FillRoundedRect(fb Framebuffer, r Rect, radius int, c Color) {
	if r.Empty() {
		return
	}
	radius = clampInt(radius, 0, min(r.W, r.H)/2)
	if radius == 0 {
		fb.FillRect(r, c)
		return
	}
	// Per-scanline: shrink the run inside the corner radius by the circle
	// equation.
	for dy := 0; dy < r.H; dy++ {
		inset := roundedInset(dy, r.H, radius)
		fb.DrawHLine(r.X+inset, r.Y+dy, r.W-2*inset, c)
	}
}

// GradientStop is one color stop of a multi-stop gradient. Pos is the
// normalized position in [0, 1].
type GradientStop struct {
	Pos float64
	C   Color
}

// gradientAt interpolates the stop list at t. Stops must be sorted by Pos;
// t outside the stop range clamps to the nearest end stop.
func gradientAt(stops []GradientStop, t float64) Color {
	if len(stops) == 1 {
		return stops[0].C
	}
	if t <= stops[0].Pos {
		return stops[0].C
	}
	last := stops[len(stops)-1]
	if t >= last.Pos {
		return last.C
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Pos {
			span := stops[i].Pos - stops[i-1].Pos
			if span <= 0 {
				return stops[i].C
			}
			return lerpColor(stops[i-1].C, stops[i].C, (t-stops[i-1].Pos)/span)
		}
	}
	return last.C
}

// sortStops returns stops ordered ascending by Pos without mutating the
// caller's slice.
func sortStops(stops []GradientStop) []GradientStop {
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })
	return sorted
}

// VerticalGradient fills r interpolating the stops top to bottom, one color
// per scanline. An empty stop list draws nothing.
func VerticalGradient(fb Framebuffer, r Rect, stops []GradientStop) {
	if r.Empty() || len(stops) == 0 {
		return
	}
	sorted := sortStops(stops)
	for dy := 0; dy < r.H; dy++ {
		t := 0.0
		if r.H > 1 {
			t = float64(dy) / float64(r.H-1)
		}
		fb.DrawHLine(r.X, r.Y+dy, r.W, gradientAt(sorted, t))
	}
}

// HorizontalGradient fills r interpolating the stops left to right, one
// color per column.
func HorizontalGradient(fb Framebuffer, r Rect, stops []GradientStop) {
	if r.Empty() || len(stops) == 0 {
		return
	}
	sorted := sortStops(stops)
	for dx := 0; dx < r.W; dx++ {
		t := 0.0
		if r.W > 1 {
			t = float64(dx) / float64(r.W-1)
		}
		fb.DrawVLine(r.X+dx, r.Y, r.H, gradientAt(sorted, t))
	}
}

// RadialGradient fills r with inner at the center fading to outer at the
// nearest edge, per pixel.
func RadialGradient(fb Framebuffer, r Rect, inner, outer Color) {
	if r.Empty() {
		return
	}
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + float64(r.H)/2
	maxDist := math.Min(float64(r.W), float64(r.H)) / 2
	if maxDist <= 0 {
		return
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			t := clamp01(math.Sqrt(dx*dx+dy*dy) / maxDist)
			fb.SetPixel(x, y, lerpColor(inner, outer, t))
		}
	}
}

// DropShadow draws a soft shadow behind r, displaced by (offsetX, offsetY).
// The blur is rendered as blur nested outline rings of decreasing alpha,
// clamped to [0, maxBlur].
func DropShadow(fb Framebuffer, r Rect, offsetX, offsetY, blur int, c Color) {
	blur = clampInt(blur, 0, maxBlur)
	base := Rect{X: r.X + offsetX, Y: r.Y + offsetY, W: r.W, H: r.H}
	if blur == 0 {
		FillRectAlpha(fb, base, c, c.A)
		return
	}
	for i := 0; i < blur; i++ {
		ring := base.Inset(i)
		if ring.Empty() {
			break
		}
		// Inner rings accumulate more passes, darkening toward the core.
		alpha := uint8(int(c.A) * (i + 1) / (blur + 1))
		blendRectOutline(fb, ring, c, alpha)
	}
	core := base.Inset(blur)
	if !core.Empty() {
		FillRectAlpha(fb, core, c, c.A)
	}
}

// Glow draws an outward halo around r: radius expanding outline rings of
// decreasing alpha. The radius is clamped to [0, maxBlur].
func Glow(fb Framebuffer, r Rect, radius int, c Color) {
	radius = clampInt(radius, 0, maxBlur)
	for i := 1; i <= radius; i++ {
		ring := Rect{X: r.X - i, Y: r.Y - i, W: r.W + 2*i, H: r.H + 2*i}
		alpha := uint8(int(c.A) * (radius - i + 1) / (radius + 1))
		blendRectOutline(fb, ring, c, alpha)
	}
}

// Glass frosts the region with a uniform translucent tint over whatever is
// already there.
func Glass(fb Framebuffer, r Rect, tint Color, alpha uint8) {
	FillRectAlpha(fb, r, tint, alpha)
}

// blendRectOutline blends the one-pixel border of r over the framebuffer.
func blendRectOutline(fb Framebuffer, r Rect, c Color, alpha uint8) {
	if r.Empty() || alpha == 0 {
		return
	}
	for x := r.X; x < r.X+r.W; x++ {
		fb.SetPixel(x, r.Y, Blend(c, fb.At(x, r.Y), alpha))
		fb.SetPixel(x, r.Y+r.H-1, Blend(c, fb.At(x, r.Y+r.H-1), alpha))
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		fb.SetPixel(r.X, y, Blend(c, fb.At(r.X, y), alpha))
		fb.SetPixel(r.X+r.W-1, y, Blend(c, fb.At(r.X+r.W-1, y), alpha))
	}
}
