package meadow

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is the set of named color roles the compositor draws with. Themes
// are plain values; swapping one in changes every subsequent frame.
type Theme struct {
	Name string

	DesktopTop    Color // sky gradient top
	DesktopBottom Color // sky gradient bottom / horizon

	WindowBackground Color
	TitlebarActive   Color
	TitlebarInactive Color
	TitleText        Color
	WindowBorder     Color

	Taskbar       Color
	TaskbarText   Color
	MenuBack      Color
	MenuHighlight Color
	MenuText      Color

	Accent Color
	Shadow Color
}

// MeadowTheme is the default light theme.
func MeadowTheme() Theme {
	return Theme{
		Name:             "meadow",
		DesktopTop:       RGB(110, 170, 230),
		DesktopBottom:    RGB(190, 225, 170),
		WindowBackground: RGB(240, 240, 236),
		TitlebarActive:   RGB(60, 110, 180),
		TitlebarInactive: RGB(140, 150, 160),
		TitleText:        RGB(255, 255, 255),
		WindowBorder:     RGB(70, 80, 95),
		Taskbar:          RGB(40, 48, 60),
		TaskbarText:      RGB(230, 235, 240),
		MenuBack:         RGB(50, 58, 72),
		MenuHighlight:    RGB(80, 130, 200),
		MenuText:         RGB(235, 238, 242),
		Accent:           RGB(255, 180, 60),
		Shadow:           RGBA(0, 0, 0, 90),
	}
}

// MidnightTheme is the builtin dark theme.
func MidnightTheme() Theme {
	return Theme{
		Name:             "midnight",
		DesktopTop:       RGB(15, 18, 40),
		DesktopBottom:    RGB(45, 30, 70),
		WindowBackground: RGB(30, 34, 44),
		TitlebarActive:   RGB(90, 60, 160),
		TitlebarInactive: RGB(55, 58, 70),
		TitleText:        RGB(230, 228, 240),
		WindowBorder:     RGB(110, 100, 150),
		Taskbar:          RGB(18, 20, 30),
		TaskbarText:      RGB(200, 200, 215),
		MenuBack:         RGB(26, 28, 40),
		MenuHighlight:    RGB(120, 80, 200),
		MenuText:         RGB(225, 222, 238),
		Accent:           RGB(90, 220, 180),
		Shadow:           RGBA(0, 0, 0, 140),
	}
}

// Lighten shifts c toward white by amount in [0, 1] via HSL, for hover
// states and gradient endpoints.
func Lighten(c Color, amount float64) Color {
	h, s, l := toColorful(c).Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l+amount)), c.A)
}

// Darken shifts c toward black by amount in [0, 1] via HSL, for pressed
// states and gradient endpoints.
func Darken(c Color, amount float64) Color {
	h, s, l := toColorful(c).Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l-amount)), c.A)
}

// TitlebarGradient returns the two-stop gradient for a titlebar drawn from
// the base role color.
func TitlebarGradient(base Color) []GradientStop {
	return []GradientStop{
		{Pos: 0, C: Lighten(base, 0.12)},
		{Pos: 1, C: Darken(base, 0.10)},
	}
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color, a uint8) Color {
	cl := c.Clamped()
	return Color{
		R: uint8(cl.R*255 + 0.5),
		G: uint8(cl.G*255 + 0.5),
		B: uint8(cl.B*255 + 0.5),
		A: a,
	}
}

// ThemeManager holds the builtin themes plus one "custom" slot that an
// active plugin can install its theme into.
type ThemeManager struct {
	builtins map[string]Theme
	custom   *Theme
	current  Theme
}

// NewThemeManager creates a manager with the builtin themes, selecting
// "meadow".
func NewThemeManager() *ThemeManager {
	m := &ThemeManager{
		builtins: map[string]Theme{
			"meadow":   MeadowTheme(),
			"midnight": MidnightTheme(),
		},
	}
	m.current = m.builtins["meadow"]
	return m
}

// Current returns the selected theme.
func (m *ThemeManager) Current() Theme {
	return m.current
}

// Select switches to a builtin theme, or to the custom theme when name
// matches its name or the literal "custom". Unknown names return
// ErrUnknownTheme without changing the selection.
func (m *ThemeManager) Select(name string) error {
	if t, ok := m.builtins[name]; ok {
		m.current = t
		return nil
	}
	if m.custom != nil && (name == "custom" || name == m.custom.Name) {
		m.current = *m.custom
		return nil
	}
	return ErrUnknownTheme
}

// SetCustom installs t into the custom slot and selects it. A plugin's
// theme lands here on activation, replacing any previous custom theme.
func (m *ThemeManager) SetCustom(t Theme) {
	m.custom = &t
	m.current = t
}

// ClearCustom removes the custom theme, falling back to "meadow" if it was
// selected.
func (m *ThemeManager) ClearCustom() {
	if m.custom != nil && m.current.Name == m.custom.Name {
		m.current = m.builtins["meadow"]
	}
	m.custom = nil
}
