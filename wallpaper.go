package meadow

import (
	"math"
	"math/rand/v2"
)

// ElementKind classifies a live-wallpaper nature element. The kind selects
// both the shape drawn and the per-type animation rule.
type ElementKind uint8

const (
	ElementCloud  ElementKind = iota // drifts horizontally, wraps at the edge
	ElementHill                      // static silhouette band
	ElementTree                      // sways by a sine of elapsed time
	ElementGrass                     // sways, smaller amplitude
	ElementFlower                    // sways, accent-colored head
)

// NatureElement is one live-wallpaper element. Depth follows the shared
// convention: 0 nearest, 1 farthest; it modulates scale, alpha, parallax,
// fog, and sway amplitude.
type NatureElement struct {
	Kind  ElementKind
	X, Y  float64
	Depth float64
	Scale float64
	C     Color
	Phase float64 // per-element animation phase offset in radians
}

// maxWallpaperElements caps the element list per density level.
const maxWallpaperElements = 192

// Wallpaper is the animated nature scene behind the desktop icons. Elements
// live in a fixed-capacity list and render back-to-front by depth.
type Wallpaper struct {
	elements  []NatureElement
	elapsed   float64 // seconds
	pollenAcc float64 // ms since the last pollen mote
	screenW   int
	screenH   int

	// scratch holds the depth-sorted draw order, reused across frames.
	scratch []NatureElement
}

// NewWallpaper seeds a scene for the given screen size. density 0 yields an
// empty scene (sky only); higher densities seed proportionally more
// elements.
func NewWallpaper(screenW, screenH, density int) *Wallpaper {
	w := &Wallpaper{
		elements: make([]NatureElement, 0, maxWallpaperElements),
		screenW:  screenW,
		screenH:  screenH,
	}
	density = clampInt(density, 0, 3)
	if density == 0 {
		return w
	}
	horizon := float64(screenH) * 0.55

	for i := range 2 * density {
		w.add(NatureElement{
			Kind:  ElementHill,
			X:     float64(screenW) * float64(i) / float64(2*density),
			Y:     horizon,
			Depth: 0.8 + rand.Float64()*0.2,
			Scale: 1 + rand.Float64(),
			C:     RGB(90, 140, 90),
		})
	}
	for range 4 * density {
		w.add(NatureElement{
			Kind:  ElementCloud,
			X:     rand.Float64() * float64(screenW),
			Y:     rand.Float64() * horizon * 0.6,
			Depth: 0.5 + rand.Float64()*0.5,
			Scale: 0.6 + rand.Float64(),
			C:     RGB(245, 248, 252),
			Phase: rand.Float64() * 2 * math.Pi,
		})
	}
	for range 6 * density {
		w.add(NatureElement{
			Kind:  ElementTree,
			X:     rand.Float64() * float64(screenW),
			Y:     horizon + rand.Float64()*(float64(screenH)-horizon)*0.7,
			Depth: 0.2 + rand.Float64()*0.6,
			Scale: 0.7 + rand.Float64()*0.8,
			C:     RGB(40, 110, 50),
			Phase: rand.Float64() * 2 * math.Pi,
		})
	}
	for range 16 * density {
		kind := ElementGrass
		c := RGB(60, 150, 70)
		if rand.IntN(4) == 0 {
			kind = ElementFlower
			c = RGB(235, 120, 160)
		}
		w.add(NatureElement{
			Kind:  kind,
			X:     rand.Float64() * float64(screenW),
			Y:     horizon + rand.Float64()*(float64(screenH)-horizon),
			Depth: rand.Float64() * 0.5,
			Scale: 0.5 + rand.Float64()*0.7,
			C:     c,
			Phase: rand.Float64() * 2 * math.Pi,
		})
	}
	return w
}

func (w *Wallpaper) add(e NatureElement) {
	if len(w.elements) < maxWallpaperElements {
		w.elements = append(w.elements, e)
	}
}

// Add appends an element, failing with ErrWallpaperFull at capacity.
func (w *Wallpaper) Add(e NatureElement) error {
	if len(w.elements) >= maxWallpaperElements {
		return ErrWallpaperFull
	}
	e.Depth = clamp01(e.Depth)
	w.elements = append(w.elements, e)
	return nil
}

// ElementCount returns the number of seeded elements.
func (w *Wallpaper) ElementCount() int {
	return len(w.elements)
}

// Update advances the scene clock and drifts the clouds. Deeper clouds
// drift slower; a cloud leaving the right edge wraps to the left.
func (w *Wallpaper) Update(deltaMS float64) {
	dt := deltaMS / 1000
	w.elapsed += dt
	for i := range w.elements {
		e := &w.elements[i]
		if e.Kind != ElementCloud {
			continue
		}
		e.X += (18 - 12*e.Depth) * dt
		if e.X > float64(w.screenW)+80 {
			e.X = -80
		}
	}
}

// pollenIntervalMS is how often the scene releases one pollen mote.
const pollenIntervalMS = 400

// EmitPollen drips slow-rising pollen motes into the shared particle pool.
// An empty scene emits nothing, and a full pool drops the mote.
func (w *Wallpaper) EmitPollen(ps *ParticleSystem, deltaMS float64) {
	if len(w.elements) == 0 {
		return
	}
	w.pollenAcc += deltaMS
	for w.pollenAcc >= pollenIntervalMS {
		w.pollenAcc -= pollenIntervalMS
		p := Particle{
			X:    rand.Float64() * float64(w.screenW),
			Y:    float64(w.screenH) * (0.5 + rand.Float64()*0.5),
			VX:   4 + rand.Float64()*8,
			VY:   -(2 + rand.Float64()*6),
			Life: 3000 + rand.Float64()*3000,
			C:    RGBA(250, 240, 180, 170),
		}
		p.MaxLife = p.Life
		if ps.Spawn(p) != nil {
			return
		}
	}
}

// Elapsed returns the scene clock in seconds.
func (w *Wallpaper) Elapsed() float64 {
	return w.elapsed
}

// swayOffset returns the horizontal sway for a swaying element: a sine of
// elapsed time, with depth moderating amplitude so background elements move
// less.
func (w *Wallpaper) swayOffset(e *NatureElement) float64 {
	var amplitude, rate float64
	switch e.Kind {
	case ElementTree:
		amplitude, rate = 4, 0.8
	case ElementGrass:
		amplitude, rate = 2.5, 1.6
	case ElementFlower:
		amplitude, rate = 3, 1.2
	default:
		return 0
	}
	return math.Sin(w.elapsed*rate+e.Phase) * amplitude * e.Scale * (1 - 0.7*e.Depth)
}

// Draw renders the sky gradient and all elements back-to-front by depth,
// with parallax from the normalized cursor position and fog blending
// distant elements toward the horizon color.
func (w *Wallpaper) Draw(fb Framebuffer, theme Theme, cursorNormX, cursorNormY, parallaxIntensity float64) {
	fw, fh := fb.Size()
	VerticalGradient(fb, Rect{W: fw, H: fh}, []GradientStop{
		{Pos: 0, C: theme.DesktopTop},
		{Pos: 1, C: theme.DesktopBottom},
	})
	if len(w.elements) == 0 {
		return
	}

	w.scratch = append(w.scratch[:0], w.elements...)
	SortByDepth(w.scratch, func(e NatureElement) float64 { return e.Depth })

	// Walk from the far end of the sorted order: back-to-front.
	for i := len(w.scratch) - 1; i >= 0; i-- {
		e := &w.scratch[i]
		scale := DepthScale(e.Depth) * e.Scale
		alpha := DepthAlpha(e.Depth)
		c := Blend(theme.DesktopBottom, e.C, uint8(120*e.Depth)) // fog
		x := int(e.X + w.swayOffset(e) +
			ParallaxOffset(cursorNormX, e.Depth, parallaxIntensity))
		y := int(e.Y + ParallaxOffset(cursorNormY, e.Depth, parallaxIntensity/2))
		w.drawElement(fb, e.Kind, x, y, scale, c, alpha)
	}
}

// drawElement rasterizes one element with simple primitive shapes.
func (w *Wallpaper) drawElement(fb Framebuffer, kind ElementKind, x, y int, scale float64, c Color, alpha uint8) {
	switch kind {
	case ElementCloud:
		cw := int(60 * scale)
		ch := int(18 * scale)
		FillRoundedRectAlpha(fb, Rect{X: x, Y: y, W: cw, H: ch}, ch/2, c, alpha)
	case ElementHill:
		hw := int(240 * scale)
		hh := int(70 * scale)
		FillRoundedRectAlpha(fb, Rect{X: x - hw/2, Y: y - hh/3, W: hw, H: hh}, hh/2, c, alpha)
	case ElementTree:
		trunkH := int(26 * scale)
		crown := int(22 * scale)
		FillRectAlpha(fb, Rect{X: x - 1, Y: y - trunkH, W: max(2, int(3*scale)), H: trunkH},
			RGB(95, 70, 45), alpha)
		FillRoundedRectAlpha(fb, Rect{X: x - crown/2, Y: y - trunkH - crown, W: crown, H: crown},
			crown/2, c, alpha)
	case ElementGrass:
		gh := int(8 * scale)
		FillRectAlpha(fb, Rect{X: x, Y: y - gh, W: 1, H: gh}, c, alpha)
	case ElementFlower:
		sh := int(9 * scale)
		FillRectAlpha(fb, Rect{X: x, Y: y - sh, W: 1, H: sh}, RGB(60, 150, 70), alpha)
		FillRectAlpha(fb, Rect{X: x - 1, Y: y - sh - 2, W: 3, H: 3}, c, alpha)
	}
}

// FillRoundedRectAlpha is FillRoundedRect blended at the given opacity.
func FillRoundedRectAlpha(fb Framebuffer, r Rect, radius int, c Color, alpha uint8) {
	if alpha == 255 {
		FillRoundedRect(fb, r, radius, c)
		return
	}
	if r.Empty() || alpha == 0 {
		return
	}
	radius = clampInt(radius, 0, min(r.W, r.H)/2)
	for dy := 0; dy < r.H; dy++ {
		inset := roundedInset(dy, r.H, radius)
		for x := r.X + inset; x < r.X+r.W-inset; x++ {
			fb.SetPixel(x, r.Y+dy, Blend(c, fb.At(x, r.Y+dy), alpha))
		}
	}
}

// roundedInset returns the scanline inset at row dy of an h-tall rounded
// rectangle with the given corner radius.
func roundedInset(dy, h, radius int) int {
	if radius <= 0 {
		return 0
	}
	var d int
	switch {
	case dy < radius:
		d = radius - dy
	case dy >= h-radius:
		d = dy - (h - radius - 1)
	default:
		return 0
	}
	return radius - int(math.Sqrt(float64(radius*radius-d*d)))
}
