// Package envfile loads ghostmigrate settings from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Prefix marks the variables ghostmigrate reads. Other keys in a .env file
// belong to the site and are left alone.
const Prefix = "GHOSTMIGRATE_"

// Load reads a .env file and sets any GHOSTMIGRATE_* variables not already in
// the environment. It returns the keys it set. A missing file is not an error.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	var set []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok || !strings.HasPrefix(key, Prefix) {
			continue
		}
		if os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return set, fmt.Errorf("setting %s from %s: %w", key, path, err)
		}
		set = append(set, key)
	}
	if err := scanner.Err(); err != nil {
		return set, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return set, nil
}

// parseEnvLine extracts KEY=VALUE from a line, ignoring blanks and comments.
// Handles an optional export prefix and single or double quotes.
func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}
