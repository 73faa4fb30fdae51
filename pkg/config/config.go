// Package config loads the optional arbor.yaml file and resolves defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	arborerrors "github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/widget"
)

// FileName is the name of the configuration file.
const FileName = "arbor.yaml"

const (
	defaultVersion = "v1.0.0"
	defaultWidth   = 640
	defaultHeight  = 480
	defaultTitle   = "arbor"
)

// Mode selects debug or release behavior.
type Mode string

const (
	// ModeDebug panics on widget contract violations.
	ModeDebug Mode = "debug"
	// ModeRelease logs contract violations and drops the offending request.
	ModeRelease Mode = "release"
)

// Config represents the optional arbor.yaml configuration.
type Config struct {
	Version string       `yaml:"version,omitempty"`
	Mode    string       `yaml:"mode,omitempty"`
	Log     LogConfig    `yaml:"log"`
	Window  WindowConfig `yaml:"window"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// WindowConfig contains the initial window settings.
type WindowConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Title  string  `yaml:"title,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	Version     string
	Mode        Mode
	LogLevel    slog.Level
	WindowSize  graphics.Size
	WindowTitle string
}

// LoadOptional reads arbor.yaml if present.
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

// Resolve loads arbor.yaml (if present) and resolves defaults. Failures are
// returned as *errors.Error with errors.KindConfig.
func Resolve(dir string) (*Resolved, error) {
	resolved, err := resolve(dir)
	if err != nil {
		return nil, &arborerrors.Error{Op: "config.Resolve", Kind: arborerrors.KindConfig, Err: err}
	}
	return resolved, nil
}

func resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = defaultVersion
	}
	if err := validateVersion(version); err != nil {
		return nil, err
	}

	mode := Mode(strings.ToLower(strings.TrimSpace(cfg.Mode)))
	switch mode {
	case "":
		mode = ModeRelease
	case ModeDebug, ModeRelease:
	default:
		return nil, fmt.Errorf("invalid mode %q: must be %q or %q", cfg.Mode, ModeDebug, ModeRelease)
	}

	level := slog.LevelInfo
	if s := strings.TrimSpace(cfg.Log.Level); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", s, err)
		}
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid window size %vx%v", width, height)
	}
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	title := strings.TrimSpace(cfg.Window.Title)
	if title == "" {
		title = defaultWindowTitle(dir)
	}

	return &Resolved{
		Root:        dir,
		Version:     version,
		Mode:        mode,
		LogLevel:    level,
		WindowSize:  graphics.Size{Width: width, Height: height},
		WindowTitle: title,
	}, nil
}

// Policy maps the mode to the widget contract policy.
func (r *Resolved) Policy() widget.ContractPolicy {
	if r.Mode == ModeDebug {
		return widget.PolicyPanic
	}
	return widget.PolicyLogAndDrop
}

// Logger returns a text logger writing to w at the configured level.
func (r *Resolved) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: r.LogLevel}))
}

// FindRoot walks up from dir to the first directory containing arbor.yaml
// or go.mod.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found", FileName)
		}
		dir = parent
	}
}

func validateVersion(version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid version %q: must be a semantic version such as %s", version, defaultVersion)
	}
	if major := semver.Major(version); major != "v1" {
		return fmt.Errorf("unsupported version %q: major version %s, want v1", version, major)
	}
	return nil
}

// defaultWindowTitle uses the last element of the module path when dir
// holds a go.mod, and "arbor" otherwise.
func defaultWindowTitle(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return defaultTitle
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return defaultTitle
	}
	prefix, _, ok := module.SplitPathVersion(path)
	if !ok {
		return defaultTitle
	}
	if i := strings.LastIndex(prefix, "/"); i >= 0 {
		prefix = prefix[i+1:]
	}
	if prefix == "" {
		return defaultTitle
	}
	return prefix
}
