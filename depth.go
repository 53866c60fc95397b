package meadow

import "sort"

// Depth is a normalized distance from the viewer: 0 is nearest (foreground),
// 1 is farthest (background). Every depth-dependent quantity — scale, alpha,
// parallax, fog — is a monotonic function of this value.

// DepthScale returns the size factor for an element at depth d:
// 1 - 0.7*d, so the nearest elements render at full size and the farthest
// at 30%.
func DepthScale(d float64) float64 {
	return 1 - 0.7*clamp01(d)
}

// DepthAlpha returns the opacity for an element at depth d:
// 255 - 155*d, so the nearest elements are fully opaque and the farthest
// fade to 100.
func DepthAlpha(d float64) uint8 {
	return uint8(255 - int(155*clamp01(d)))
}

// ParallaxOffset returns the pixel displacement along one axis for an
// element at depth d given the cursor's normalized position on that axis in
// [-1, 1]. Nearer layers track the cursor less.
func ParallaxOffset(cursorNorm, d, intensity float64) float64 {
	return cursorNorm * clamp01(d) * intensity
}

// SortByDepth stably sorts items ascending by depth; ties keep insertion
// order. Renderers walk the sorted slice from the far end so drawing is
// back-to-front and nearer elements occlude farther ones.
func SortByDepth[T any](items []T, depth func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return depth(items[i]) < depth(items[j])
	})
}
