package onboard

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownScene is returned when a config names content missing from the
// registry.
var ErrUnknownScene = errors.New("onboard: unknown scene")

// Config is the file form of Options. Scene content cannot live in a file,
// so scenes reference content by name and are resolved against a registry
// in Options.
//
// Example:
//
//	minSwipeDistance: 60
//	enableBackgroundTransition: true
//	scenes:
//	  - name: welcome
//	    backgroundColor: "#3D5AFE"
//	  - name: features
//	    backgroundColor: "#00BFA5"
//	actionable: signup
type Config struct {
	MinSwipeDistance             *float64      `yaml:"minSwipeDistance"`
	ActiveColor                  string        `yaml:"activeColor"`
	InactiveColor                string        `yaml:"inactiveColor"`
	ClearColor                   string        `yaml:"clearColor"`
	EnableBackgroundTransition   bool          `yaml:"enableBackgroundTransition"`
	HideStatusBar                *bool         `yaml:"hideStatusBar"`
	NavigateButtonTitle          string        `yaml:"navigateButtonTitle"`
	NavigateButtonCompletedTitle string        `yaml:"navigateButtonCompletedTitle"`
	ActionableButtonTitle        string        `yaml:"buttonActionableTitle"`
	TransitionDuration           float32       `yaml:"transitionDuration"`
	DragDeadZone                 float64       `yaml:"dragDeadZone"`
	Scenes                       []SceneConfig `yaml:"scenes"`
	Actionable                   string        `yaml:"actionable"`
}

// SceneConfig names one scene's content and background color.
type SceneConfig struct {
	Name            string `yaml:"name"`
	BackgroundColor string `yaml:"backgroundColor"`
}

// LoadConfig reads and validates a YAML carousel config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read onboarding config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates YAML config data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse onboarding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid onboarding config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the file-level constraints: at least one scene, named
// scenes, a positive finite threshold when one is given and parseable
// colors. An omitted threshold takes the default.
func (c *Config) Validate() error {
	if len(c.Scenes) == 0 {
		return ErrNoScenes
	}
	if d := c.MinSwipeDistance; d != nil && (*d <= 0 || math.IsNaN(*d) || math.IsInf(*d, 0)) {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, *d)
	}
	for i, s := range c.Scenes {
		if s.Name == "" {
			return fmt.Errorf("scene %d: missing name", i)
		}
		if s.BackgroundColor != "" {
			if _, err := ParseHex(s.BackgroundColor); err != nil {
				return fmt.Errorf("scene %d (%s): %w", i, s.Name, err)
			}
		}
	}
	for _, hex := range []string{c.ActiveColor, c.InactiveColor, c.ClearColor} {
		if hex == "" {
			continue
		}
		if _, err := ParseHex(hex); err != nil {
			return err
		}
	}
	return nil
}

// Options resolves scene names against registry and copies the configured
// fields into a fresh Options. Callbacks and the logger are left for the
// caller to set.
func (c *Config) Options(registry map[string]SceneContent) (Options, error) {
	var o Options
	o.Scenes = make([]Scene, 0, len(c.Scenes))
	for _, sc := range c.Scenes {
		content, ok := registry[sc.Name]
		if !ok || content == nil {
			return Options{}, fmt.Errorf("%w %q", ErrUnknownScene, sc.Name)
		}
		var bg Color
		if sc.BackgroundColor != "" {
			var err error
			if bg, err = ParseHex(sc.BackgroundColor); err != nil {
				return Options{}, fmt.Errorf("scene %s: %w", sc.Name, err)
			}
		}
		o.Scenes = append(o.Scenes, Scene{Content: content, BackgroundColor: bg})
	}
	if c.Actionable != "" {
		content, ok := registry[c.Actionable]
		if !ok || content == nil {
			return Options{}, fmt.Errorf("%w %q", ErrUnknownScene, c.Actionable)
		}
		o.ActionableScene = content
	}

	var err error
	if o.ActiveColor, err = optionalHex(c.ActiveColor); err != nil {
		return Options{}, err
	}
	if o.InactiveColor, err = optionalHex(c.InactiveColor); err != nil {
		return Options{}, err
	}
	if o.ClearColor, err = optionalHex(c.ClearColor); err != nil {
		return Options{}, err
	}

	if c.MinSwipeDistance != nil {
		o.MinSwipeDistance = *c.MinSwipeDistance
	}
	o.EnableBackgroundTransition = c.EnableBackgroundTransition
	o.ShowStatusBar = c.HideStatusBar != nil && !*c.HideStatusBar
	o.NavigateButtonTitle = c.NavigateButtonTitle
	o.NavigateButtonCompletedTitle = c.NavigateButtonCompletedTitle
	o.ActionableButtonTitle = c.ActionableButtonTitle
	o.TransitionDuration = c.TransitionDuration
	o.DragDeadZone = c.DragDeadZone
	return o, nil
}

func optionalHex(s string) (Color, error) {
	if s == "" {
		return Color{}, nil
	}
	return ParseHex(s)
}
