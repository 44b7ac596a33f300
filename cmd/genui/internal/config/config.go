package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/genui/pkg/resources"
)

// FileName is the name of the optional project configuration file.
const FileName = "genui.yaml"

// Defaults applied when genui.yaml omits a value.
const (
	DefaultDensity        = 1.0
	DefaultTheme          = "light"
	DefaultResourceDir    = "res"
	DefaultPreloadWorkers = 4
)

// Config represents the optional genui.yaml configuration.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Resources ResourcesConfig `yaml:"resources"`
	Errors    ErrorsConfig    `yaml:"errors"`
	Schema    SchemaConfig    `yaml:"schema"`
}

// ScreenConfig describes the headless screen trees are built against.
type ScreenConfig struct {
	Density float64 `yaml:"density,omitempty"`
	Theme   string  `yaml:"theme,omitempty"`
}

// ResourcesConfig locates bitmaps and icons.
type ResourcesConfig struct {
	Dir            string `yaml:"dir,omitempty"`
	PreloadWorkers int    `yaml:"preload_workers,omitempty"`
}

// ErrorsConfig controls error reporting.
type ErrorsConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// SchemaConfig gates accepted tree files.
type SchemaConfig struct {
	MinVersion string `yaml:"min_version,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root             string
	Density          float64
	Theme            string
	ResourceDir      string
	PreloadWorkers   int
	Verbose          bool
	MinSchemaVersion string
}

// LoadOptional reads genui.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads genui.yaml (if present), applies defaults, and validates
// the result.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	density := cfg.Screen.Density
	if density == 0 {
		density = DefaultDensity
	}
	if density < 0 || density > 8 {
		return nil, fmt.Errorf("screen.density must be in (0, 8], got %v", density)
	}

	theme := strings.ToLower(strings.TrimSpace(cfg.Screen.Theme))
	if theme == "" {
		theme = DefaultTheme
	}
	if _, err := resources.PaletteByName(theme); err != nil {
		return nil, fmt.Errorf("screen.theme: %w", err)
	}

	resDir := strings.TrimSpace(cfg.Resources.Dir)
	if resDir == "" {
		resDir = DefaultResourceDir
	}
	if !filepath.IsAbs(resDir) {
		resDir = filepath.Join(dir, resDir)
	}

	workers := cfg.Resources.PreloadWorkers
	if workers == 0 {
		workers = DefaultPreloadWorkers
	}
	if workers < 0 || workers > 64 {
		return nil, fmt.Errorf("resources.preload_workers must be in [1, 64], got %d", workers)
	}

	minVersion := strings.TrimSpace(cfg.Schema.MinVersion)
	if minVersion != "" && !semver.IsValid(minVersion) {
		return nil, fmt.Errorf("schema.min_version %q is not a semantic version (e.g. v1.2.0)", minVersion)
	}

	return &Resolved{
		Root:             dir,
		Density:          density,
		Theme:            theme,
		ResourceDir:      resDir,
		PreloadWorkers:   workers,
		Verbose:          cfg.Errors.Verbose,
		MinSchemaVersion: minVersion,
	}, nil
}

// Palette returns the palette for the resolved theme.
func (r *Resolved) Palette() *resources.Palette {
	p, err := resources.PaletteByName(r.Theme)
	if err != nil {
		return resources.LightPalette()
	}
	return p
}

// FindProjectRoot walks up from start to the nearest directory holding
// genui.yaml. If none is found it returns start.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for d := dir; ; {
		if _, err := os.Stat(filepath.Join(d, FileName)); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return dir, nil
		}
		d = parent
	}
}
