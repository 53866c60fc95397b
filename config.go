package meadow

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the effective shell tunables. Load order: DefaultConfig,
// then any fields present in the YAML file override, then validation
// clamps everything into its documented range.
type Config struct {
	// TaskbarHeight is the pixel height of the strip at the bottom of the
	// screen. Clamped to [24, 96].
	TaskbarHeight int

	// DoubleClickMS is the maximum gap between two clicks counted as a
	// double-click. Clamped to [150, 1000].
	DoubleClickMS int

	// DoubleClickDist is the maximum pixel distance between two clicks
	// counted as a double-click, per axis. Clamped to [1, 32].
	DoubleClickDist int

	// AnimationStep is the progress added to a Transition each frame.
	// Clamped to [0.01, 0.5].
	AnimationStep float64

	// ParallaxIntensity is the maximum pixel displacement of the deepest
	// layer as the cursor crosses the screen. Clamped to [0, 64].
	ParallaxIntensity float64

	// ParticleCap is the particle pool capacity. Clamped to [64, 4096].
	ParticleCap int

	// WallpaperDensity scales how many live-wallpaper elements are seeded:
	// 0 disables the nature layer entirely. Clamped to [0, 3].
	WallpaperDensity int

	// Theme is the theme selected at startup. Unknown names fall back to
	// the default with a logged note.
	Theme string

	// EnhancedEffects enables the active plugin's effects during
	// compositing.
	EnhancedEffects bool

	// Debug enables per-frame stats on stderr.
	Debug bool
}

// rawConfig mirrors Config with pointer fields so absent YAML keys are
// distinguishable from zero values.
type rawConfig struct {
	TaskbarHeight     *int     `yaml:"taskbar_height"`
	DoubleClickMS     *int     `yaml:"double_click_ms"`
	DoubleClickDist   *int     `yaml:"double_click_dist"`
	AnimationStep     *float64 `yaml:"animation_step"`
	ParallaxIntensity *float64 `yaml:"parallax_intensity"`
	ParticleCap       *int     `yaml:"particle_cap"`
	WallpaperDensity  *int     `yaml:"wallpaper_density"`
	Theme             *string  `yaml:"theme"`
	EnhancedEffects   *bool    `yaml:"enhanced_effects"`
	Debug             *bool    `yaml:"debug"`
}

// DefaultConfig returns the shipped defaults.
func DefaultConfig() Config {
	return Config{
		TaskbarHeight:     36,
		DoubleClickMS:     400,
		DoubleClickDist:   4,
		AnimationStep:     0.08,
		ParallaxIntensity: 16,
		ParticleCap:       512,
		WallpaperDensity:  1,
		Theme:             "meadow",
		EnhancedEffects:   false,
		Debug:             false,
	}
}

// ParseConfig merges YAML data over the defaults and clamps the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if raw.TaskbarHeight != nil {
		cfg.TaskbarHeight = *raw.TaskbarHeight
	}
	if raw.DoubleClickMS != nil {
		cfg.DoubleClickMS = *raw.DoubleClickMS
	}
	if raw.DoubleClickDist != nil {
		cfg.DoubleClickDist = *raw.DoubleClickDist
	}
	if raw.AnimationStep != nil {
		cfg.AnimationStep = *raw.AnimationStep
	}
	if raw.ParallaxIntensity != nil {
		cfg.ParallaxIntensity = *raw.ParallaxIntensity
	}
	if raw.ParticleCap != nil {
		cfg.ParticleCap = *raw.ParticleCap
	}
	if raw.WallpaperDensity != nil {
		cfg.WallpaperDensity = *raw.WallpaperDensity
	}
	if raw.Theme != nil {
		cfg.Theme = *raw.Theme
	}
	if raw.EnhancedEffects != nil {
		cfg.EnhancedEffects = *raw.EnhancedEffects
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
	cfg.clamp()
	return cfg, nil
}

// LoadConfig reads and parses the file at path. A missing file yields the
// defaults without error, so a fresh install needs no config at all.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// clamp forces every tunable into its documented range. Out-of-range values
// are corrected silently except the theme, which is validated against the
// manager at desktop construction.
func (c *Config) clamp() {
	c.TaskbarHeight = clampInt(c.TaskbarHeight, 24, 96)
	c.DoubleClickMS = clampInt(c.DoubleClickMS, 150, 1000)
	c.DoubleClickDist = clampInt(c.DoubleClickDist, 1, 32)
	c.AnimationStep = clampFloat(c.AnimationStep, 0.01, 0.5)
	c.ParallaxIntensity = clampFloat(c.ParallaxIntensity, 0, 64)
	c.ParticleCap = clampInt(c.ParticleCap, 64, 4096)
	c.WallpaperDensity = clampInt(c.WallpaperDensity, 0, 3)
	if c.Theme == "" {
		c.Theme = "meadow"
	}
}

// applyTheme selects cfg.Theme on the manager, falling back to the default
// on an unknown name.
func applyTheme(m *ThemeManager, name string) {
	if err := m.Select(name); err != nil {
		log.Printf("meadow: unknown theme %q, using default", name)
	}
}
