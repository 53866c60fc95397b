package meadow

// WidgetID is an opaque handle to a widget. Like WindowID, the zero value
// is invalid and IDs are never reused.
type WidgetID uint32

// WidgetKind is the closed set of core widget types. Custom widgets supply
// their own paint callback; the other kinds draw themselves.
type WidgetKind uint8

const (
	WidgetButton WidgetKind = iota
	WidgetLabel
	WidgetPanel
	WidgetCustom
)

// widget is the internal widget record. Bounds are relative to the parent
// window's content area (below the titlebar); win is a non-owning
// back-reference used for coordinate translation and hit-testing.
type widget struct {
	id   WidgetID
	win  WindowID
	kind WidgetKind

	bounds Rect
	bg     Color
	fg     Color
	text   string

	visible bool
	enabled bool

	onClick func(WidgetID)
	paint   func(fb Framebuffer, screen Rect)
}

// addWidget allocates a widget on the given window. Returns 0 for a stale
// window handle.
func (d *Desktop) addWidget(win WindowID, kind WidgetKind, bounds Rect, text string, bg, fg Color) WidgetID {
	w := d.windows[win]
	if w == nil {
		return 0
	}
	d.nextWidgetID++
	id := d.nextWidgetID
	d.widgets[id] = &widget{
		id:      id,
		win:     win,
		kind:    kind,
		bounds:  bounds,
		bg:      bg,
		fg:      fg,
		text:    text,
		visible: true,
		enabled: true,
	}
	w.widgets = append(w.widgets, id)
	return id
}

// AddButton creates a clickable button on the window. Wire the click with
// SetClickHandler.
func (d *Desktop) AddButton(win WindowID, text string, bounds Rect) WidgetID {
	theme := d.themes.Current()
	return d.addWidget(win, WidgetButton, bounds, text,
		Lighten(theme.WindowBackground, 0.05), RGB(20, 24, 30))
}

// AddLabel creates a static text widget.
func (d *Desktop) AddLabel(win WindowID, text string, bounds Rect) WidgetID {
	return d.addWidget(win, WidgetLabel, bounds, text, Color{}, RGB(20, 24, 30))
}

// AddPanel creates a filled rectangle widget, typically a grouping
// background behind other widgets.
func (d *Desktop) AddPanel(win WindowID, bounds Rect, c Color) WidgetID {
	return d.addWidget(win, WidgetPanel, bounds, "", c, c)
}

// AddCustom creates a widget rendered entirely by the given paint callback,
// which receives the widget's absolute screen rect each frame.
func (d *Desktop) AddCustom(win WindowID, bounds Rect, paint func(fb Framebuffer, screen Rect)) WidgetID {
	id := d.addWidget(win, WidgetCustom, bounds, "", Color{}, Color{})
	if id != 0 {
		d.widgets[id].paint = paint
	}
	return id
}

// SetClickHandler installs the widget's click callback.
func (d *Desktop) SetClickHandler(id WidgetID, fn func(WidgetID)) {
	if w := d.widgets[id]; w != nil {
		w.onClick = fn
	}
}

// SetWidgetText replaces the widget's text.
func (d *Desktop) SetWidgetText(id WidgetID, text string) {
	if w := d.widgets[id]; w != nil {
		w.text = text
	}
}

// WidgetText returns the widget's text, or "" for a stale handle.
func (d *Desktop) WidgetText(id WidgetID) string {
	if w := d.widgets[id]; w != nil {
		return w.text
	}
	return ""
}

// SetWidgetVisible shows or hides the widget. Hidden widgets neither draw
// nor hit-test.
func (d *Desktop) SetWidgetVisible(id WidgetID, visible bool) {
	if w := d.widgets[id]; w != nil {
		w.visible = visible
	}
}

// SetWidgetEnabled toggles whether the widget accepts clicks. Disabled
// widgets still draw, dimmed.
func (d *Desktop) SetWidgetEnabled(id WidgetID, enabled bool) {
	if w := d.widgets[id]; w != nil {
		w.enabled = enabled
	}
}

// SetWidgetColors overrides the widget's background and text colors.
func (d *Desktop) SetWidgetColors(id WidgetID, bg, fg Color) {
	if w := d.widgets[id]; w != nil {
		w.bg = bg
		w.fg = fg
	}
}

// WidgetWindow returns the widget's parent window, or 0 for a stale handle.
func (d *Desktop) WidgetWindow(id WidgetID) WindowID {
	if w := d.widgets[id]; w != nil {
		return w.win
	}
	return 0
}

// screenRect translates the widget's content-relative bounds to screen
// coordinates.
func (d *Desktop) widgetScreenRect(w *widget) Rect {
	win := d.windows[w.win]
	if win == nil {
		return Rect{}
	}
	content := win.contentRect()
	return Rect{X: content.X + w.bounds.X, Y: content.Y + w.bounds.Y, W: w.bounds.W, H: w.bounds.H}
}

// drawWidget renders one widget by kind.
func (d *Desktop) drawWidget(fb Framebuffer, w *widget) {
	r := d.widgetScreenRect(w)
	if r.Empty() {
		return
	}
	switch w.kind {
	case WidgetButton:
		bg := w.bg
		if !w.enabled {
			bg = Darken(bg, 0.08)
		}
		FillRoundedRect(fb, r, 4, bg)
		blendRectOutline(fb, r, Darken(bg, 0.25), 255)
		tw := fb.StringWidth(w.text)
		fb.DrawString(r.X+(r.W-tw)/2, r.Y+(r.H-TextHeight)/2, w.text, w.fg, Color{})
	case WidgetLabel:
		fb.DrawString(r.X, r.Y, w.text, w.fg, w.bg)
	case WidgetPanel:
		fb.FillRect(r, w.bg)
	case WidgetCustom:
		if w.paint != nil {
			w.paint(fb, r)
		}
	}
}
