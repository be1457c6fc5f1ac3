package frost

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the start-up configuration, usually loaded from a YAML file.
// Omitted keys keep their DefaultConfig values.
type Config struct {
	Window        WindowConfig `yaml:"window"`
	Button        ButtonConfig `yaml:"button"`
	Glass         GlassConfig  `yaml:"glass"`
	Field         FieldConfig  `yaml:"field"`
	Motion        MotionConfig `yaml:"motion"`
	Debug         bool         `yaml:"debug"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
}

// WindowConfig sizes the initial surfaces and window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ButtonConfig shapes the glass button.
type ButtonConfig struct {
	Size   float64 `yaml:"size"`
	Aspect float64 `yaml:"aspect"`
	Radius float64 `yaml:"radius"`
	Label  string  `yaml:"label"`
}

// GlassConfig holds the initial live parameters.
type GlassConfig struct {
	Strength float64 `yaml:"strength"`
	Opacity  float64 `yaml:"opacity"`
	EdgeBlur float64 `yaml:"edge_blur"`
}

// FieldConfig controls the background field.
type FieldConfig struct {
	Objects     int    `yaml:"objects"`
	Seed        uint64 `yaml:"seed"`
	Decorations bool   `yaml:"decorations"`
}

// MotionConfig controls how the button follows the pointer.
type MotionConfig struct {
	Mode            string  `yaml:"mode"`
	Smoothing       float64 `yaml:"smoothing"`
	SpringFrequency float64 `yaml:"spring_frequency"`
	SpringDamping   float64 `yaml:"spring_damping"`
	RecenterSeconds float64 `yaml:"recenter_seconds"`
	RecenterEase    string  `yaml:"recenter_ease"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	p := DefaultParams()
	return Config{
		Window: WindowConfig{Width: 800, Height: 600, Title: "frost"},
		Button: ButtonConfig{
			Size:   p.ButtonSize,
			Aspect: DefaultAspect,
			Radius: DefaultCornerRadius,
			Label:  DefaultLabel,
		},
		Glass: GlassConfig{
			Strength: p.RefractionStrength,
			Opacity:  p.GlassOpacity,
			EdgeBlur: p.EdgeBlur,
		},
		Field: FieldConfig{Objects: DefaultObjectCount, Seed: 1},
		Motion: MotionConfig{
			Mode:            MotionSmooth.String(),
			Smoothing:       DefaultSmoothing,
			SpringFrequency: 6,
			SpringDamping:   0.5,
			RecenterSeconds: 0.6,
			RecenterEase:    "out-cubic",
		},
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate clamps numeric values into their accepted ranges and rejects
// values that cannot be repaired.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidSize)
	}
	if _, err := ParseMotionMode(c.Motion.Mode); err != nil {
		return fmt.Errorf("motion: %w", err)
	}
	for name, v := range map[string]float64{
		"button.size":      c.Button.Size,
		"button.aspect":    c.Button.Aspect,
		"button.radius":    c.Button.Radius,
		"glass.strength":   c.Glass.Strength,
		"glass.opacity":    c.Glass.Opacity,
		"glass.edge_blur":  c.Glass.EdgeBlur,
		"motion.smoothing": c.Motion.Smoothing,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: value is not finite", name)
		}
	}

	p := c.Params()
	c.Glass.Strength = p.RefractionStrength
	c.Glass.Opacity = p.GlassOpacity
	c.Glass.EdgeBlur = p.EdgeBlur
	c.Button.Size = p.ButtonSize

	if c.Button.Aspect <= 0 {
		c.Button.Aspect = DefaultAspect
	}
	c.Button.Radius = max(c.Button.Radius, 0)
	c.Field.Objects = max(c.Field.Objects, 0)
	c.Motion.Smoothing = clamp(c.Motion.Smoothing, 0.01, 1)
	if c.Motion.SpringFrequency <= 0 {
		c.Motion.SpringFrequency = 6
	}
	c.Motion.SpringDamping = max(c.Motion.SpringDamping, 0)
	c.Motion.RecenterSeconds = max(c.Motion.RecenterSeconds, 0)
	return nil
}

// Params returns the live parameters described by c, clamped.
func (c Config) Params() Params {
	return Params{
		RefractionStrength: c.Glass.Strength,
		GlassOpacity:       c.Glass.Opacity,
		EdgeBlur:           c.Glass.EdgeBlur,
		ButtonSize:         c.Button.Size,
	}.Clamped()
}
