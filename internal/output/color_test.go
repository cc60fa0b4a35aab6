package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		value   string
		want    ColorMode
		wantErr bool
	}{
		{value: "", want: ColorAuto},
		{value: "auto", want: ColorAuto},
		{value: "always", want: ColorAlways},
		{value: "never", want: ColorNever},
		{value: "bogus", wantErr: true},
		{value: "NEVER", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseColorMode(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestColorMode_Styled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer

	tests := []struct {
		mode ColorMode
		want bool
	}{
		{mode: ColorNever, want: false},
		{mode: ColorAlways, want: true},
		{mode: ColorAuto, want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := tt.mode.Styled(&buf); got != tt.want {
				t.Errorf("%s.Styled(buffer) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestColorMode_StyledNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	devnull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer devnull.Close() //nolint:errcheck // test cleanup

	if ColorAuto.Styled(devnull) {
		t.Error("auto should be unstyled when NO_COLOR is set")
	}
	if !ColorAlways.Styled(devnull) {
		t.Error("always should ignore NO_COLOR")
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestColorNever_ClearsStyles(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, ColorNever.Styled(&buf))

	if printer.IsTTY() {
		t.Error("printer should report non-TTY when color=never")
	}
	empty := lipgloss.NewStyle()
	if printer.styles.Error.GetForeground() != empty.GetForeground() {
		t.Error("Error style should have no foreground color when color=never")
	}
}

func TestColorAlways_KeepsStyles(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, ColorAlways.Styled(&buf))

	if !printer.IsTTY() {
		t.Error("printer should report TTY when color=always")
	}
	empty := lipgloss.NewStyle()
	if printer.styles.Error.GetForeground() == empty.GetForeground() {
		t.Error("Error style should have foreground color when color=always")
	}
}

func TestColorNever_NoANSI(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, ColorNever.Styled(&buf))

	printer.Error(NewUserError("post 7 has invalid published_at"))

	if containsANSI(buf.String()) {
		t.Errorf("--color never should produce no ANSI codes, got: %q", buf.String())
	}
}

// containsANSI checks if a string contains ANSI escape sequences.
func containsANSI(s string) bool {
	for i := range len(s) - 1 {
		if s[i] == '\033' && s[i+1] == '[' {
			return true
		}
	}
	return false
}
