package meadow

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Framebuffer is the pixel sink the compositor draws into. Implementations
// must clip silently: out-of-bounds writes are dropped, never an error.
//
// DrawString renders text with its top-left corner at (x, y). A bg color
// with zero alpha leaves the existing pixels behind the glyphs untouched.
type Framebuffer interface {
	Size() (w, h int)
	Clear(c Color)
	SetPixel(x, y int, c Color)
	At(x, y int) Color
	FillRect(r Rect, c Color)
	DrawRectOutline(r Rect, c Color)
	DrawHLine(x, y, w int, c Color)
	DrawVLine(x, y, h int, c Color)
	DrawString(x, y int, s string, fg, bg Color)
	StringWidth(s string) int
}

// textFace is the fixed 7x13 face used for all shell text. Font shaping is
// out of scope; one bitmap face covers titles, labels, and the clock.
var textFace = basicfont.Face7x13

// TextHeight is the pixel height of a rendered line of shell text.
const TextHeight = 13

// ImageBuffer is the software Framebuffer over an in-memory RGBA image.
// It doubles as the headless render target for tests and as the pixel
// source the ebitenrun front end blits to the screen.
type ImageBuffer struct {
	img *image.RGBA
	w   int
	h   int
}

// NewImageBuffer creates a zeroed buffer of the given dimensions.
func NewImageBuffer(w, h int) *ImageBuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &ImageBuffer{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}
}

// Size returns the buffer dimensions in pixels.
func (b *ImageBuffer) Size() (w, h int) {
	return b.w, b.h
}

// Pix exposes the raw RGBA pixel data for blitting.
func (b *ImageBuffer) Pix() []byte {
	return b.img.Pix
}

// Clear fills the entire buffer with c.
func (b *ImageBuffer) Clear(c Color) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(toRGBA(c)), image.Point{}, draw.Src)
}

// SetPixel writes one pixel, silently dropping out-of-bounds coordinates.
func (b *ImageBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	i := b.img.PixOffset(x, y)
	b.img.Pix[i+0] = c.R
	b.img.Pix[i+1] = c.G
	b.img.Pix[i+2] = c.B
	b.img.Pix[i+3] = c.A
}

// At reads one pixel. Out-of-bounds reads return the zero Color.
func (b *ImageBuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return Color{}
	}
	i := b.img.PixOffset(x, y)
	return Color{
		R: b.img.Pix[i+0],
		G: b.img.Pix[i+1],
		B: b.img.Pix[i+2],
		A: b.img.Pix[i+3],
	}
}

// FillRect fills the clipped intersection of r with the buffer.
func (b *ImageBuffer) FillRect(r Rect, c Color) {
	clipped := b.clip(r)
	if clipped.Empty() {
		return
	}
	dst := image.Rect(clipped.X, clipped.Y, clipped.X+clipped.W, clipped.Y+clipped.H)
	draw.Draw(b.img, dst, image.NewUniform(toRGBA(c)), image.Point{}, draw.Src)
}

// DrawRectOutline draws the one-pixel border of r.
func (b *ImageBuffer) DrawRectOutline(r Rect, c Color) {
	if r.Empty() {
		return
	}
	b.DrawHLine(r.X, r.Y, r.W, c)
	b.DrawHLine(r.X, r.Y+r.H-1, r.W, c)
	b.DrawVLine(r.X, r.Y, r.H, c)
	b.DrawVLine(r.X+r.W-1, r.Y, r.H, c)
}

// DrawHLine draws a horizontal run of w pixels starting at (x, y).
func (b *ImageBuffer) DrawHLine(x, y, w int, c Color) {
	b.FillRect(Rect{X: x, Y: y, W: w, H: 1}, c)
}

// DrawVLine draws a vertical run of h pixels starting at (x, y).
func (b *ImageBuffer) DrawVLine(x, y, h int, c Color) {
	b.FillRect(Rect{X: x, Y: y, W: 1, H: h}, c)
}

// DrawString renders s with its top-left corner at (x, y). When bg has a
// nonzero alpha the glyph cell background is filled first.
func (b *ImageBuffer) DrawString(x, y int, s string, fg, bg Color) {
	if s == "" {
		return
	}
	if bg.A != 0 {
		b.FillRect(Rect{X: x, Y: y, W: b.StringWidth(s), H: TextHeight}, bg)
	}
	d := font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(toRGBA(fg)),
		Face: textFace,
		// Face7x13 has an ascent of 11; Dot sits on the baseline.
		Dot: fixed.P(x, y+11),
	}
	d.DrawString(s)
}

// StringWidth returns the rendered width of s in pixels.
func (b *ImageBuffer) StringWidth(s string) int {
	return font.MeasureString(textFace, s).Ceil()
}

// clip returns the intersection of r with the buffer bounds.
func (b *ImageBuffer) clip(r Rect) Rect {
	x0 := clampInt(r.X, 0, b.w)
	y0 := clampInt(r.Y, 0, b.h)
	x1 := clampInt(r.X+r.W, 0, b.w)
	y1 := clampInt(r.Y+r.H, 0, b.h)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// toRGBA stores the channel bytes verbatim so At round-trips exactly what
// was written, including unpremultiplied translucent values.
func toRGBA(c Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
