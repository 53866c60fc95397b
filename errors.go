package meadow

import "errors"

// Sentinel errors returned by capacity- and registry-bound operations.
// Handle-taking window/widget operations never return these; per the error
// model they silently no-op on invalid handles instead.
var (
	// ErrPluginExists is returned by Registry.Register when a plugin with
	// the same name is already registered.
	ErrPluginExists = errors.New("meadow: plugin name already registered")

	// ErrAPIVersion is returned by Registry.Register when the plugin's
	// declared API version does not match PluginAPIVersion.
	ErrAPIVersion = errors.New("meadow: plugin API version mismatch")

	// ErrUnknownPlugin is returned when a plugin is looked up by a name
	// that was never registered.
	ErrUnknownPlugin = errors.New("meadow: unknown plugin")

	// ErrUnknownEffect is returned by RenderEffect for an effect name the
	// plugin never added.
	ErrUnknownEffect = errors.New("meadow: unknown plugin effect")

	// ErrEffectExists is returned by Plugin.AddEffect for a duplicate
	// effect name.
	ErrEffectExists = errors.New("meadow: effect name already registered")

	// ErrEffectListFull is returned by Plugin.AddEffect when the per-plugin
	// effect list is at capacity.
	ErrEffectListFull = errors.New("meadow: plugin effect list full")

	// ErrPoolFull is returned by ParticleSystem.Spawn when every pool slot
	// holds a live particle.
	ErrPoolFull = errors.New("meadow: particle pool full")

	// ErrTrayFull is returned by AddTrayIcon past the tray capacity.
	ErrTrayFull = errors.New("meadow: system tray full")

	// ErrIconListFull is returned by AddIcon past the desktop icon capacity.
	ErrIconListFull = errors.New("meadow: desktop icon list full")

	// ErrWallpaperFull is returned by Wallpaper.Add past the element capacity.
	ErrWallpaperFull = errors.New("meadow: wallpaper element list full")

	// ErrUnknownTheme is returned by ThemeManager.Select for a name that is
	// neither a builtin nor the installed custom theme.
	ErrUnknownTheme = errors.New("meadow: unknown theme")
)
