package meadow

// maxDesktopIcons caps the icon list.
const maxDesktopIcons = 32

// iconBaseSize is the glyph square of a depth-0 icon; labels render below.
const iconBaseSize = 40

// DesktopIcon is one launchable icon on the desktop. Depth places it in the
// parallax field; OnLaunch fires on double-click.
type DesktopIcon struct {
	Label    string
	X, Y     int
	Depth    float64
	C        Color
	OnLaunch func()
}

// IconLayer holds the desktop icons and the user's global depth offset.
// Icons render back-to-front by effective depth and hit-test front-to-back.
type IconLayer struct {
	icons       []DesktopIcon
	depthOffset float64

	scratch []int // depth-sorted index order, reused across frames
}

// NewIconLayer creates an empty layer.
func NewIconLayer() *IconLayer {
	return &IconLayer{icons: make([]DesktopIcon, 0, maxDesktopIcons)}
}

// Add appends an icon, failing with ErrIconListFull at capacity. The
// stored depth is clamped to [0, 1].
func (l *IconLayer) Add(icon DesktopIcon) error {
	if len(l.icons) >= maxDesktopIcons {
		return ErrIconListFull
	}
	icon.Depth = clamp01(icon.Depth)
	l.icons = append(l.icons, icon)
	return nil
}

// Count returns the number of icons.
func (l *IconLayer) Count() int {
	return len(l.icons)
}

// SetDepthOffset shifts every icon's effective depth uniformly without
// mutating the stored depths. The offset is clamped to [-1, 1].
func (l *IconLayer) SetDepthOffset(v float64) {
	l.depthOffset = clampFloat(v, -1, 1)
}

// DepthOffset returns the current global offset.
func (l *IconLayer) DepthOffset() float64 {
	return l.depthOffset
}

// effectiveDepth is the stored depth shifted by the global offset, clamped
// back into [0, 1].
func (l *IconLayer) effectiveDepth(i int) float64 {
	return clamp01(l.icons[i].Depth + l.depthOffset)
}

// iconRect returns the screen rectangle of icon i, scaled by its effective
// depth and displaced by cursor parallax. The same rect is used for drawing
// and hit-testing so clicks land exactly where the icon renders.
func (l *IconLayer) iconRect(i int, cursorNormX, cursorNormY, intensity float64) Rect {
	d := l.effectiveDepth(i)
	size := int(iconBaseSize * DepthScale(d))
	x := l.icons[i].X + int(ParallaxOffset(cursorNormX, d, intensity))
	y := l.icons[i].Y + int(ParallaxOffset(cursorNormY, d, intensity/2))
	return Rect{X: x, Y: y, W: size, H: size}
}

// HitTest returns the index of the nearest icon containing (x, y), or -1.
func (l *IconLayer) HitTest(x, y int, cursorNormX, cursorNormY, intensity float64) int {
	best := -1
	bestDepth := 2.0
	for i := range l.icons {
		d := l.effectiveDepth(i)
		if l.iconRect(i, cursorNormX, cursorNormY, intensity).Contains(x, y) && d < bestDepth {
			best = i
			bestDepth = d
		}
	}
	return best
}

// Launch invokes icon i's launch callback, if any. Out-of-range indices
// no-op.
func (l *IconLayer) Launch(i int) {
	if i < 0 || i >= len(l.icons) {
		return
	}
	if l.icons[i].OnLaunch != nil {
		l.icons[i].OnLaunch()
	}
}

// Draw renders the icons back-to-front by effective depth: glyph square
// with a subtle glow for near icons, label underneath.
func (l *IconLayer) Draw(fb Framebuffer, theme Theme, cursorNormX, cursorNormY, intensity float64) {
	l.scratch = l.scratch[:0]
	for i := range l.icons {
		l.scratch = append(l.scratch, i)
	}
	SortByDepth(l.scratch, func(i int) float64 { return l.effectiveDepth(i) })

	for k := len(l.scratch) - 1; k >= 0; k-- {
		i := l.scratch[k]
		d := l.effectiveDepth(i)
		r := l.iconRect(i, cursorNormX, cursorNormY, intensity)
		alpha := DepthAlpha(d)
		if d < 0.25 {
			Glow(fb, r, 3, theme.Accent.WithAlpha(60))
		}
		FillRoundedRectAlpha(fb, r, 6, l.icons[i].C, alpha)
		blendRectOutline(fb, r, Darken(l.icons[i].C, 0.2), alpha)
		if d < 0.6 {
			labelW := fb.StringWidth(l.icons[i].Label)
			fb.DrawString(r.X+(r.W-labelW)/2, r.Y+r.H+3, l.icons[i].Label,
				RGB(255, 255, 255), RGBA(0, 0, 0, 70))
		}
	}
}
