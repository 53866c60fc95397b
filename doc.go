// Package meadow is the desktop compositor and window-manager core of the
// Meadow graphical shell.
//
// Meadow owns every on-screen window and widget, routes pointer and keyboard
// input to the correct target, drives window lifecycle transitions (move,
// snap, minimize, maximize, restore, close), and renders a layered visual
// effects pipeline: shadows, gradients, glow, glass, particles, and
// depth-based parallax. A small plugin registry lets alternate theme and
// effect providers be swapped in at runtime.
//
// # Quick start
//
// The simplest way to get a desktop on screen is the ebitenrun front end:
//
//	fb := meadow.NewImageBuffer(1024, 768)
//	d := meadow.NewDesktop(fb, meadow.DefaultConfig())
//	win := d.CreateWindow("Hello", 100, 100, 400, 300)
//	d.AddButton(win, "OK", meadow.Rect{X: 20, Y: 20, W: 80, H: 28})
//	ebitenrun.Run(d, fb, ebitenrun.Options{Title: "Meadow"})
//
// For full control, drive the frame loop yourself: feed input through
// [Desktop.ProcessEvent] and call [Desktop.Update] once per display frame.
// Update performs all animation, state mutation observed from the last batch
// of events, and a complete back-to-front redraw into the framebuffer.
//
// # Architecture
//
// The core runs on a single logical thread with no internal locking. All
// drawing goes through the [Framebuffer] interface; [ImageBuffer] is the
// software implementation, which also serves as the headless target for
// tests. Windows and widgets are addressed by opaque handles ([WindowID],
// [WidgetID]) — every handle-taking operation silently no-ops on a stale or
// zero handle, so callers never crash on a window that was closed under them.
package meadow
