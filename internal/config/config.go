// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3; project values win

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied beneath any config file.
const (
	DefaultMarker      = "~"
	DefaultQuitKey     = "q"
	DefaultEndBound    = EndBoundCols
	DefaultReadTimeout = 100 * time.Millisecond
)

// Settings holds the merged configuration.
// Banner is a pointer so that an explicit empty banner can disable it.
type Settings struct {
	Banner      *string       `yaml:"banner,omitempty"`
	Marker      string        `yaml:"marker,omitempty"`
	QuitKey     string        `yaml:"quit_key,omitempty"`
	EndBound    string        `yaml:"end_bound,omitempty"`
	ReadTimeout time.Duration `yaml:"read_timeout,omitempty"`
	LogFile     string        `yaml:"log_file,omitempty"`
}

// Defaults returns the built-in settings for the given program version.
func Defaults(version string) *Settings {
	banner := "Kilo editor -- version " + version
	return &Settings{
		Banner:      &banner,
		Marker:      DefaultMarker,
		QuitKey:     DefaultQuitKey,
		EndBound:    DefaultEndBound,
		ReadTimeout: DefaultReadTimeout,
	}
}

// BannerText returns the configured banner or "" when disabled.
func (s *Settings) BannerText() string {
	if s.Banner == nil {
		return ""
	}
	return *s.Banner
}

// Load reads and merges global and project-local settings.
// Project settings override global settings. Missing files are skipped.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// LoadPath reads a single explicitly named config file. Unlike Load, a
// missing file is an error.
func LoadPath(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	ResolveEnvVars(s)
	return s, nil
}

// Overlay returns base with every set field of over applied on top.
func Overlay(base, over *Settings) *Settings {
	return merge(base, over)
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	return decode(data, path)
}

func decode(data []byte, name string) (*Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Set project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Banner != nil {
		b := *project.Banner
		result.Banner = &b
	}
	if project.Marker != "" {
		result.Marker = project.Marker
	}
	if project.QuitKey != "" {
		result.QuitKey = project.QuitKey
	}
	if project.EndBound != "" {
		result.EndBound = project.EndBound
	}
	if project.ReadTimeout != 0 {
		result.ReadTimeout = project.ReadTimeout
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}

	return &result
}
