package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results, warnings and errors.
//
// Results go to the main writer. In human mode warnings and errors go to the
// stderr writer; in JSON mode errors stay on the main writer so a failed
// command still prints one JSON document, while warnings go to stderr as JSON
// lines and never interleave with the result.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Header  lipgloss.Style
	Key     lipgloss.Style
	Cell    lipgloss.Style
}

// newStyles returns the colored palette, or unstyled text when styled is false.
func newStyles(styled bool) *Styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return &Styles{Error: plain, Success: plain, Warning: plain, Header: plain, Key: plain, Cell: plain}
	}
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Cell:    lipgloss.NewStyle(),
	}
}

// NewPrinter creates a Printer writing to w. jsonMode selects JSON output;
// styled enables colors for human output.
func NewPrinter(w io.Writer, jsonMode bool, styled bool) *Printer {
	return &Printer{
		w:      w,
		errW:   w,
		json:   jsonMode,
		isTTY:  styled,
		styles: newStyles(styled),
	}
}

// WithStderr sets the writer for warnings, and for errors in human mode.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if human output is styled.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success outputs a success result: the data as JSON, or in human mode the
// "message" key alone or every key/value pair.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.WriteJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}
	for key, val := range data {
		p.KeyValue(key, fmt.Sprint(val))
	}
	return nil
}

// Error outputs an error with its exit code. Errors that are not an
// *ExitError are reported as user errors.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		mustWrite(fmt.Fprintf(p.w, "%s\n", ErrorJSON(exitErr.Message, exitErr.Code)))
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn outputs a warning to the stderr writer.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		line, _ := json.Marshal(struct {
			Warning string `json:"warning"`
		}{msg})
		mustWrite(fmt.Fprintf(p.errW, "%s\n", line))
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON writes data as indented JSON.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns {"error": message, "code": code}.
func ErrorJSON(message string, code int) []byte {
	result, _ := json.Marshal(struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}{message, code})
	return result
}

// mustWrite panics if a write to stdout, stderr or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Table renders rows under headers with columns aligned by display width,
// so titles and tags outside ASCII line up. The last column is not padded.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := columnWidths(headers, rows)
	p.tableRow(headers, widths, p.styles.Header)
	for _, row := range rows {
		p.tableRow(row, widths, p.styles.Cell)
	}
}

// columnWidths returns the widest cell of each column.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

func (p *Printer) tableRow(row []string, widths []int, style lipgloss.Style) {
	var line strings.Builder
	last := min(len(row), len(widths)) - 1
	for i := 0; i <= last; i++ {
		if i > 0 {
			line.WriteString("  ")
		}
		cell := style.Render(row[i])
		line.WriteString(cell)
		if i < last {
			line.WriteString(strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(row[i]))))
		}
	}
	mustWrite(fmt.Fprintln(p.w, line.String()))
}

// KeyValue renders "Key: Value".
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}
