package meadow

// maxTrayIcons caps the system tray.
const maxTrayIcons = 8

// Taskbar layout constants.
const (
	startButtonWidth  = 64
	windowButtonWidth = 120
	trayIconSize      = 20
	clockWidth        = 52
	taskbarPad        = 4
)

// TrayIcon is one entry of the system tray: a short glyph, a color, and an
// optional click action.
type TrayIcon struct {
	Glyph   string
	C       Color
	OnClick func()
}

// AddTrayIcon appends a tray icon, failing with ErrTrayFull at capacity.
func (d *Desktop) AddTrayIcon(icon TrayIcon) error {
	if len(d.tray) >= maxTrayIcons {
		return ErrTrayFull
	}
	d.tray = append(d.tray, icon)
	return nil
}

// TrayCount returns the number of tray icons.
func (d *Desktop) TrayCount() int {
	return len(d.tray)
}

// taskbarRect is the strip across the bottom of the screen.
func (d *Desktop) taskbarRect() Rect {
	return Rect{X: 0, Y: d.screenH - d.cfg.TaskbarHeight, W: d.screenW, H: d.cfg.TaskbarHeight}
}

// startButtonRect is the leftmost taskbar button.
func (d *Desktop) startButtonRect() Rect {
	tb := d.taskbarRect()
	return Rect{X: taskbarPad, Y: tb.Y + taskbarPad,
		W: startButtonWidth, H: tb.H - 2*taskbarPad}
}

// windowButtonRect returns the button rect for the i-th window in taskbar
// (creation) order.
func (d *Desktop) windowButtonRect(i int) Rect {
	tb := d.taskbarRect()
	x := taskbarPad*2 + startButtonWidth + i*(windowButtonWidth+taskbarPad)
	return Rect{X: x, Y: tb.Y + taskbarPad, W: windowButtonWidth, H: tb.H - 2*taskbarPad}
}

// trayIconRect returns the rect of tray icon i, laid out right to left
// before the clock.
func (d *Desktop) trayIconRect(i int) Rect {
	tb := d.taskbarRect()
	x := d.screenW - taskbarPad - clockWidth - (i+1)*(trayIconSize+taskbarPad)
	return Rect{X: x, Y: tb.Y + (tb.H-trayIconSize)/2, W: trayIconSize, H: trayIconSize}
}

// taskbarButtonAt returns which window's taskbar button contains (x, y),
// or 0. Buttons are tested in insertion order.
func (d *Desktop) taskbarButtonAt(x, y int) WindowID {
	for i, id := range d.taskbarOrder {
		if d.windowButtonRect(i).Contains(x, y) {
			return id
		}
	}
	return 0
}

// clickTaskbarButton is the taskbar button action: a focused visible window
// minimizes, anything else restores, focuses, and raises.
func (d *Desktop) clickTaskbarButton(id WindowID) {
	win := d.windows[id]
	if win == nil {
		return
	}
	if d.focused == id && win.visible {
		d.Minimize(id)
		return
	}
	if win.state == StateMinimized {
		d.Restore(id)
	}
	d.Focus(id)
	d.BringToFront(id)
}

// drawTaskbar renders the strip: start button, window buttons with
// focus/minimized states, tray icons, and the clock.
func (d *Desktop) drawTaskbar(fb Framebuffer, theme Theme) {
	tb := d.taskbarRect()
	VerticalGradient(fb, tb, []GradientStop{
		{Pos: 0, C: Lighten(theme.Taskbar, 0.06)},
		{Pos: 1, C: theme.Taskbar},
	})
	fb.DrawHLine(tb.X, tb.Y, tb.W, theme.Accent)

	sb := d.startButtonRect()
	start := theme.Accent
	if d.startMenu.Visible() {
		start = Lighten(start, 0.15)
	}
	FillRoundedRect(fb, sb, 4, start)
	tw := fb.StringWidth("Start")
	fb.DrawString(sb.X+(sb.W-tw)/2, sb.Y+(sb.H-TextHeight)/2, "Start", RGB(20, 24, 30), Color{})

	for i, id := range d.taskbarOrder {
		win := d.windows[id]
		if win == nil {
			continue
		}
		r := d.windowButtonRect(i)
		if r.X+r.W > d.trayIconRect(len(d.tray)-1).X && len(d.tray) > 0 {
			break // out of room
		}
		bg := Lighten(theme.Taskbar, 0.10)
		switch {
		case d.focused == id:
			bg = theme.MenuHighlight
		case win.state == StateMinimized:
			bg = Darken(theme.Taskbar, 0.04)
		}
		FillRoundedRect(fb, r, 4, bg)
		label := truncateLabel(fb, win.title, r.W-12)
		fb.DrawString(r.X+6, r.Y+(r.H-TextHeight)/2, label, theme.TaskbarText, Color{})
	}

	for i, icon := range d.tray {
		r := d.trayIconRect(i)
		FillRoundedRect(fb, r, 3, icon.C)
		fb.DrawString(r.X+(r.W-fb.StringWidth(icon.Glyph))/2,
			r.Y+(r.H-TextHeight)/2, icon.Glyph, RGB(250, 250, 250), Color{})
	}

	fb.DrawString(d.screenW-clockWidth, tb.Y+(tb.H-TextHeight)/2,
		d.clockText, theme.TaskbarText, Color{})
}
