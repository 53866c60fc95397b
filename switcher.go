package meadow

// Switcher is the Alt-Tab overlay: a centered row of window previews that
// scales in through a Transition. While visible, Tab cycles the selection,
// Enter confirms, Escape cancels. It snapshots the candidate list at open
// so a window closing mid-cycle cannot shift the selection under the user.
type Switcher struct {
	ids     []WindowID
	index   int
	visible bool
	anim    *Transition
}

func newSwitcher(step float64) *Switcher {
	s := &Switcher{anim: NewTransition(step)}
	s.anim.OnClosed = func() { s.visible = false }
	return s
}

// Visible reports whether the switcher claims keyboard input.
func (s *Switcher) Visible() bool {
	return s.visible
}

// open snapshots the visible windows in stacking order (topmost first) and
// preselects the second one, matching the usual "switch to previous"
// gesture. With fewer than two candidates it does not open.
func (s *Switcher) open(d *Desktop) {
	s.ids = s.ids[:0]
	for _, id := range d.order {
		if d.windows[id].visible {
			s.ids = append(s.ids, id)
		}
	}
	if len(s.ids) < 2 {
		s.ids = s.ids[:0]
		return
	}
	s.index = 1
	s.visible = true
	s.anim.Open()
}

// cycle advances the selection, wrapping.
func (s *Switcher) cycle(delta int) {
	n := len(s.ids)
	if n == 0 {
		return
	}
	s.index = ((s.index+delta)%n + n) % n
}

// confirm focuses and raises the selected window, skipping one that was
// destroyed while the switcher was up, then closes.
func (s *Switcher) confirm(d *Desktop) {
	if s.index >= 0 && s.index < len(s.ids) {
		id := s.ids[s.index]
		if d.windows[id] != nil {
			d.Focus(id)
			d.BringToFront(id)
		}
	}
	s.anim.Close()
}

// cancel closes without changing focus.
func (s *Switcher) cancel() {
	s.anim.Close()
}

// draw renders the preview row scaled in by the eased open progress.
func (s *Switcher) draw(fb Framebuffer, d *Desktop, theme Theme) {
	if !s.visible || len(s.ids) == 0 {
		return
	}
	t := s.anim.Value(EaseCubicOut)
	const previewW, previewH, gap = 96, 64, 12
	n := len(s.ids)
	totalW := n*previewW + (n-1)*gap
	baseX := (d.screenW - totalW) / 2
	baseY := (d.screenH - previewH) / 2

	panel := Rect{X: baseX - gap, Y: baseY - gap, W: totalW + 2*gap, H: previewH + 2*gap}
	Glass(fb, panel, theme.MenuBack, uint8(200*t))

	for i, id := range s.ids {
		win := d.windows[id]
		if win == nil {
			continue
		}
		// Scale each preview in around its own center.
		w := int(float64(previewW) * t)
		h := int(float64(previewH) * t)
		x := baseX + i*(previewW+gap) + (previewW-w)/2
		y := baseY + (previewH-h)/2
		r := Rect{X: x, Y: y, W: w, H: h}
		bg := theme.WindowBackground
		if win.customColors {
			bg = win.background
		}
		FillRoundedRect(fb, r, 4, bg)
		if i == s.index {
			Glow(fb, r, 3, theme.Accent.WithAlpha(140))
			fb.DrawRectOutline(r, theme.Accent)
		}
		if t > 0.8 {
			label := truncateLabel(fb, win.title, w-8)
			tw := fb.StringWidth(label)
			fb.DrawString(x+(w-tw)/2, y+h+4, label, theme.MenuText, Color{})
		}
	}
}

// truncateLabel trims s to fit maxW pixels, appending an ellipsis dot when
// cut.
func truncateLabel(fb Framebuffer, s string, maxW int) string {
	if fb.StringWidth(s) <= maxW {
		return s
	}
	for len(s) > 0 {
		s = s[:len(s)-1]
		if fb.StringWidth(s+".") <= maxW {
			return s + "."
		}
	}
	return ""
}
