package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectFile is the per-project settings file in the working directory.
	ProjectFile = ".ghostmigrate.yaml"
	// globalFile is the settings file inside Dir().
	globalFile = "config.yaml"

	defaultInputName = "ghost.json"
)

// Settings controls a migration run. Empty fields fall back to the
// migrator's defaults.
type Settings struct {
	Input       string `yaml:"input,omitempty"`
	OutputDir   string `yaml:"output_dir,omitempty"`
	Extension   string `yaml:"extension,omitempty"`
	Layout      string `yaml:"layout,omitempty"`
	MissingTags string `yaml:"missing_tags,omitempty"`
	SkipDrafts  bool   `yaml:"skip_drafts,omitempty"`
}

// LoadFile reads settings from a YAML file. Unknown keys are rejected.
func LoadFile(path string) (Settings, error) {
	var settings Settings

	file, err := os.Open(path)
	if err != nil {
		return settings, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return settings, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return settings, nil
}

// Load resolves settings. An explicit path must exist; otherwise the
// project file and then the global file are tried, and missing files are
// not an error. Environment overrides are applied last. The returned
// string names the file that was read, or is empty.
func Load(explicit string) (Settings, string, error) {
	candidates := []string{explicit}
	if explicit == "" {
		candidates = []string{ProjectFile}
		if dir := Dir(); dir != "" {
			candidates = append(candidates, filepath.Join(dir, globalFile))
		}
	}

	var settings Settings
	var source string
	for _, path := range candidates {
		loaded, err := LoadFile(path)
		if err != nil {
			if explicit == "" && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Settings{}, "", err
		}
		settings, source = loaded, path
		break
	}

	if err := settings.ApplyEnv(); err != nil {
		return Settings{}, "", err
	}
	return settings, source, nil
}

// ApplyEnv overrides settings from GHOSTMIGRATE_* environment variables.
func (s *Settings) ApplyEnv() error {
	overrides := []struct {
		key    string
		target *string
	}{
		{"GHOSTMIGRATE_INPUT", &s.Input},
		{"GHOSTMIGRATE_OUTPUT_DIR", &s.OutputDir},
		{"GHOSTMIGRATE_EXTENSION", &s.Extension},
		{"GHOSTMIGRATE_LAYOUT", &s.Layout},
		{"GHOSTMIGRATE_MISSING_TAGS", &s.MissingTags},
	}
	for _, o := range overrides {
		if value := os.Getenv(o.key); value != "" {
			*o.target = value
		}
	}

	if value := os.Getenv("GHOSTMIGRATE_SKIP_DRAFTS"); value != "" {
		skip, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid GHOSTMIGRATE_SKIP_DRAFTS %q: %w", value, err)
		}
		s.SkipDrafts = skip
	}
	return nil
}

// InputPath returns the configured input, or DefaultInput when unset.
func (s Settings) InputPath() string {
	if s.Input != "" {
		return s.Input
	}
	return DefaultInput()
}
