package meadow

import "time"

// Update runs one compositor frame: animation and state advancement first,
// then a complete back-to-front redraw. All mutations from the events
// processed since the last frame happen-before this redraw observes them.
// deltaMS is the wall time since the previous frame in milliseconds.
func (d *Desktop) Update(deltaMS float64) {
	start := time.Now()
	d.now += deltaMS

	d.wallpaper.Update(deltaMS)
	d.wallpaper.EmitPollen(d.particles, deltaMS)
	d.particles.Update(deltaMS)
	d.startMenu.anim.Update()
	d.ctxMenu.anim.Update()
	d.switcher.anim.Update()
	d.updateFlights(deltaMS)
	d.clockText = time.Now().Format("15:04")

	updateTime := time.Since(start)
	drawStart := time.Now()

	theme := d.themes.Current()
	nx, ny := d.cursorNorm()

	d.wallpaper.Draw(d.fb, theme, nx, ny, d.cfg.ParallaxIntensity)
	if d.cfg.EnhancedEffects {
		d.plugins.RenderActive(d.fb, d.workArea(), EffectParams{"elapsed": d.wallpaper.Elapsed()})
	}
	d.icons.Draw(d.fb, theme, nx, ny, d.cfg.ParallaxIntensity)

	for i := len(d.order) - 1; i >= 0; i-- {
		d.drawWindow(d.fb, theme, d.windows[d.order[i]])
	}

	d.drawTaskbar(d.fb, theme)
	d.ctxMenu.draw(d.fb, theme)
	d.startMenu.draw(d.fb, theme, d.screenH, d.cfg.TaskbarHeight)
	d.switcher.draw(d.fb, d, theme)
	d.drawFlights(d.fb)
	d.particles.Draw(d.fb)
	d.drawCursor(d.fb, theme)

	d.frames++
	d.debugLog(frameStats{
		updateTime:  updateTime,
		drawTime:    time.Since(drawStart),
		windowCount: len(d.windows),
		particles:   d.particles.AliveCount(),
	})
}

// drawWindow renders one window: shadow, glass or opaque body, titlebar
// gradient and controls, border, then widgets.
func (d *Desktop) drawWindow(fb Framebuffer, theme Theme, win *window) {
	if win == nil || !win.visible {
		return
	}
	r := win.bounds
	DropShadow(fb, r, 4, 4, 5, theme.Shadow)

	bg := theme.WindowBackground
	tb := theme.TitlebarInactive
	if win.customColors {
		bg = win.background
		tb = win.titlebar
	} else if d.focused == win.id {
		tb = theme.TitlebarActive
	}

	alpha := transparencyAlpha(win.transparency)
	if alpha < 255 {
		Glass(fb, r, bg, alpha)
	} else {
		fb.FillRect(r, bg)
	}

	if win.hasTitlebar {
		tr := win.titlebarRect()
		VerticalGradient(fb, tr, TitlebarGradient(tb))
		fb.DrawString(tr.X+8, tr.Y+(titlebarHeight-TextHeight)/2,
			truncateLabel(fb, win.title, tr.W-3*(titlebarButtonSize+4)-16),
			theme.TitleText, Color{})
		d.drawTitlebarButton(fb, win, buttonClose, RGB(225, 85, 85), "x")
		d.drawTitlebarButton(fb, win, buttonMaximize, RGB(110, 180, 110), "+")
		d.drawTitlebarButton(fb, win, buttonMinimize, RGB(230, 195, 90), "-")
	}

	if win.hasBorder {
		border := theme.WindowBorder
		if d.focused == win.id {
			border = theme.Accent
		}
		fb.DrawRectOutline(r, border)
	}

	for _, wid := range win.widgets {
		if w := d.widgets[wid]; w != nil && w.visible {
			d.drawWidget(fb, w)
		}
	}

	if d.cfg.EnhancedEffects {
		d.plugins.RenderActive(fb, r, EffectParams{
			"focused": boolParam(d.focused == win.id),
		})
	}
}

func (d *Desktop) drawTitlebarButton(fb Framebuffer, win *window, b titlebarButton, c Color, glyph string) {
	r := win.titlebarButtonRect(b)
	FillRoundedRect(fb, r, 3, c)
	fb.DrawString(r.X+(r.W-fb.StringWidth(glyph))/2, r.Y+(r.H-TextHeight)/2,
		glyph, RGB(30, 30, 30), Color{})
}

// updateFlights advances the minimize ghosts and drops finished ones.
func (d *Desktop) updateFlights(deltaMS float64) {
	kept := d.flights[:0]
	for _, f := range d.flights {
		if _, _, done := f.tween.Update(float32(deltaMS / 1000)); !done {
			kept = append(kept, f)
		}
	}
	d.flights = kept
}

// drawFlights renders the minimize ghosts as fading rounded chips.
func (d *Desktop) drawFlights(fb Framebuffer) {
	for _, f := range d.flights {
		x, y, _ := f.tween.Update(0)
		FillRoundedRectAlpha(fb, Rect{X: int(x) - 12, Y: int(y) - 6, W: 24, H: 12}, 4, f.c, 150)
	}
}

// drawCursor renders the pointer arrow last so it is never occluded.
func (d *Desktop) drawCursor(fb Framebuffer, theme Theme) {
	x, y := d.cursorX, d.cursorY
	for i := 0; i < 10; i++ {
		fb.DrawHLine(x, y+i, min(i+1, 7), RGB(250, 250, 250))
	}
	fb.DrawVLine(x, y, 10, RGB(40, 40, 40))
	fb.DrawHLine(x, y+10, 4, RGB(40, 40, 40))
}

func boolParam(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
