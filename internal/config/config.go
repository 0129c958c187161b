// Package config loads lensdemo settings. LENSDEMO_* environment variables
// win over the yaml file, which wins over the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/lensdemo"
)

// EnvPrefix prefixes every environment override, e.g. LENSDEMO_OUTPUT_DIR.
const EnvPrefix = "LENSDEMO"

// DefaultPath is the config file read when LENSDEMO_CONFIG is unset.
const DefaultPath = "lensdemo.yaml"

// Config is the full lensdemo configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Scene  SceneConfig  `mapstructure:"scene"`
	Photo  PhotoConfig  `mapstructure:"photo"`
	Log    LogConfig    `mapstructure:"log"`
	Bands  []BandConfig `mapstructure:"bands"`
}

// OutputConfig names the directories figures are written to.
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	DiagramsDir string `mapstructure:"diagrams_dir"`
}

// SceneConfig sizes the synthetic scene and sets its focus depth.
type SceneConfig struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	FocusDepth float64 `mapstructure:"focus_depth"`
}

// PhotoConfig locates the optional source photo and controls its resize.
type PhotoConfig struct {
	Path          string  `mapstructure:"path"`
	TargetWidth   int     `mapstructure:"target_width"`
	Interpolation string  `mapstructure:"interpolation"`
	FocusDepth    float64 `mapstructure:"focus_depth"`
}

// LogConfig selects the zap mode ("release" or development) and level.
type LogConfig struct {
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
}

// BandConfig mirrors lensdemo.Band. An empty band list keeps the defaults.
type BandConfig struct {
	Label    string  `mapstructure:"label"`
	Limit    float64 `mapstructure:"limit"`
	Relative bool    `mapstructure:"relative"`
	Sigma    float64 `mapstructure:"sigma"`
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return unmarshal(v)
}

// New loads the file named by LENSDEMO_CONFIG, or DefaultPath. A missing file
// is not an error: defaults and environment overrides still apply.
func New() (*Config, error) {
	path := Path()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default()
	}
	return Load(path)
}

// Default returns the defaults with environment overrides applied.
func Default() (*Config, error) {
	return unmarshal(newViper())
}

// Path returns the config file location.
func Path() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	demo := lensdemo.DefaultDemoConfig()

	v.SetDefault("output.dir", demo.OutputDir)
	v.SetDefault("output.diagrams_dir", "diagrams")

	v.SetDefault("scene.width", demo.SceneWidth)
	v.SetDefault("scene.height", demo.SceneHeight)
	v.SetDefault("scene.focus_depth", demo.SceneFocus)

	v.SetDefault("photo.path", demo.PhotoPath)
	v.SetDefault("photo.target_width", demo.PhotoWidth)
	v.SetDefault("photo.interpolation", string(demo.Interpolation))
	v.SetDefault("photo.focus_depth", demo.PhotoFocus)

	v.SetDefault("log.mode", "debug")
	v.SetDefault("log.level", "info")
}

// Validate rejects settings GenerateDemo cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Output.Dir == "":
		return errors.New("config: output.dir is empty")
	case c.Output.DiagramsDir == "":
		return errors.New("config: output.diagrams_dir is empty")
	case c.Scene.Width <= 0 || c.Scene.Height <= 0:
		return fmt.Errorf("config: scene size %dx%d must be positive", c.Scene.Width, c.Scene.Height)
	}
	if _, err := lensdemo.ParseInterpolation(c.Photo.Interpolation); err != nil {
		return fmt.Errorf("config: photo.interpolation: %w", err)
	}
	for i, b := range c.Bands {
		if math.IsNaN(b.Limit) || math.IsNaN(b.Sigma) {
			return fmt.Errorf("config: bands[%d]: NaN limit or sigma", i)
		}
	}
	return nil
}

// Demo converts the configuration into lensdemo.GenerateDemo's input.
func (c *Config) Demo() (lensdemo.DemoConfig, error) {
	interp, err := lensdemo.ParseInterpolation(c.Photo.Interpolation)
	if err != nil {
		return lensdemo.DemoConfig{}, fmt.Errorf("config: photo.interpolation: %w", err)
	}

	demo := lensdemo.DemoConfig{
		OutputDir:     filepath.Clean(c.Output.Dir),
		PhotoPath:     c.Photo.Path,
		SceneWidth:    c.Scene.Width,
		SceneHeight:   c.Scene.Height,
		SceneFocus:    c.Scene.FocusDepth,
		PhotoWidth:    c.Photo.TargetWidth,
		PhotoFocus:    c.Photo.FocusDepth,
		Interpolation: interp,
	}
	for _, b := range c.Bands {
		demo.Bands = append(demo.Bands, lensdemo.Band{
			Label:    b.Label,
			Limit:    b.Limit,
			Relative: b.Relative,
			Sigma:    b.Sigma,
		})
	}
	return demo, nil
}
