// Package config resolves ghostmigrate settings from files and the environment.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "ghostmigrate"

// Dir returns the ghostmigrate configuration directory.
//
// Resolution:
//   - $GHOSTMIGRATE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/ghostmigrate if set (respects XDG on any platform)
//   - %AppData%/ghostmigrate on Windows
//   - ~/.config/ghostmigrate on macOS and Linux
func Dir() string {
	if dir := os.Getenv("GHOSTMIGRATE_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// DefaultInput returns ghost.json next to the running executable, or
// ghost.json in the working directory when the executable cannot be located.
func DefaultInput() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultInputName
	}
	return filepath.Join(filepath.Dir(exe), defaultInputName)
}
