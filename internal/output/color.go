package output

import (
	"fmt"
	"io"
	"os"
)

// ColorMode is the value of the --color flag.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value. Empty means auto.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(value); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", value)
	}
}

// Styled reports whether output to w gets lipgloss styles. In auto mode a
// non-empty NO_COLOR environment variable turns styling off.
func (m ColorMode) Styled(w io.Writer) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return IsTTY(w)
	}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
