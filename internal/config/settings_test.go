package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets every override so tests see only file values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GHOSTMIGRATE_INPUT",
		"GHOSTMIGRATE_OUTPUT_DIR",
		"GHOSTMIGRATE_EXTENSION",
		"GHOSTMIGRATE_LAYOUT",
		"GHOSTMIGRATE_MISSING_TAGS",
		"GHOSTMIGRATE_SKIP_DRAFTS",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "input: export.json\noutput_dir: site/_posts\nextension: markdown\nlayout: article\nmissing_tags: skip\nskip_drafts: true\n")

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	want := Settings{
		Input:       "export.json",
		OutputDir:   "site/_posts",
		Extension:   "markdown",
		Layout:      "article",
		MissingTags: "skip",
		SkipDrafts:  true,
	}
	if got != want {
		t.Errorf("LoadFile() = %+v, want %+v", got, want)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.yaml")
	writeFile(t, unknown, "output: _posts\n")
	if _, err := LoadFile(unknown); err == nil {
		t.Error("LoadFile() should reject unknown keys")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "output_dir: [unterminated\n")
	if _, err := LoadFile(invalid); err == nil {
		t.Error("LoadFile() should reject invalid YAML")
	}

	empty := filepath.Join(dir, "empty.yaml")
	writeFile(t, empty, "")
	if got, err := LoadFile(empty); err != nil || got != (Settings{}) {
		t.Errorf("LoadFile(empty) = %+v, %v", got, err)
	}
}

func TestLoad_Resolution(t *testing.T) {
	clearEnv(t)
	work := t.TempDir()
	home := t.TempDir()
	t.Setenv("GHOSTMIGRATE_CONFIG_HOME", home)
	t.Chdir(work)

	settings, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if source != "" || settings != (Settings{}) {
		t.Errorf("Load() with no files = %+v from %q", settings, source)
	}

	writeFile(t, filepath.Join(home, "config.yaml"), "layout: global\n")
	settings, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.Layout != "global" || source != filepath.Join(home, "config.yaml") {
		t.Errorf("Load() = %+v from %q, want global file", settings, source)
	}

	writeFile(t, filepath.Join(work, ProjectFile), "layout: project\n")
	settings, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.Layout != "project" || source != ProjectFile {
		t.Errorf("Load() = %+v from %q, want project file", settings, source)
	}
}

func TestLoad_ExplicitMustExist(t *testing.T) {
	clearEnv(t)
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit config file")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "output_dir: from-file\nmissing_tags: fail\n")
	t.Setenv("GHOSTMIGRATE_OUTPUT_DIR", "from-env")
	t.Setenv("GHOSTMIGRATE_SKIP_DRAFTS", "true")

	settings, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.OutputDir != "from-env" {
		t.Errorf("OutputDir = %q, want from-env", settings.OutputDir)
	}
	if settings.MissingTags != "fail" {
		t.Errorf("MissingTags = %q, want file value", settings.MissingTags)
	}
	if !settings.SkipDrafts {
		t.Error("SkipDrafts should be set from the environment")
	}
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("GHOSTMIGRATE_SKIP_DRAFTS", "sometimes")

	var settings Settings
	if err := settings.ApplyEnv(); err == nil {
		t.Error("ApplyEnv() should reject a non-boolean GHOSTMIGRATE_SKIP_DRAFTS")
	}
}

func TestSettings_InputPath(t *testing.T) {
	if got := (Settings{Input: "export.json"}).InputPath(); got != "export.json" {
		t.Errorf("InputPath() = %q", got)
	}
	if got := (Settings{}).InputPath(); got != DefaultInput() {
		t.Errorf("InputPath() = %q, want DefaultInput()", got)
	}
}
