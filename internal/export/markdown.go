package export

import (
	"fmt"
	"strings"
	"time"
)

// Rendered is a post ready to be written.
type Rendered struct {
	Path   string
	Layout string
	Title  string
	Date   time.Time
	Tags   []string
	Image  string
	Body   string
}

// Content returns the full file content: header followed by body.
func (r *Rendered) Content() string {
	var builder strings.Builder

	writeFrontmatter(&builder, r)
	writeBody(&builder, r.Body)

	return builder.String()
}

// writeFrontmatter writes the YAML header in its fixed key order.
func writeFrontmatter(builder *strings.Builder, r *Rendered) {
	builder.WriteString("---\n")
	fmt.Fprintf(builder, "layout: %s\n", r.Layout)
	fmt.Fprintf(builder, "title: %s\n", singleQuote(r.Title))
	fmt.Fprintf(builder, "date: %s\n", r.Date.Format(headerDateLayout))

	if len(r.Tags) > 0 {
		builder.WriteString("tags:\n")
		for _, tag := range r.Tags {
			fmt.Fprintf(builder, "- %s\n", singleQuote(tag))
		}
	}

	if r.Image != "" {
		fmt.Fprintf(builder, "image: %s\n", plainOrQuoted(r.Image))
	}

	builder.WriteString("---\n")
}

// writeBody writes the body, terminating its last line.
func writeBody(builder *strings.Builder, body string) {
	builder.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		builder.WriteString("\n")
	}
}

// plainOrQuoted leaves s bare when YAML reads it back as the same string,
// and single-quotes it otherwise.
func plainOrQuoted(s string) string {
	switch {
	case s == "",
		strings.ContainsAny(s[:1], "-?:,[]{}#&*!|>'\"%@` \t"),
		strings.ContainsAny(s, "\n\r"),
		strings.Contains(s, ": "),
		strings.Contains(s, " #"),
		strings.HasSuffix(s, ":"),
		strings.HasSuffix(s, " "):
		return singleQuote(s)
	}
	return s
}

// singleQuote renders s as a YAML single-quoted scalar.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
