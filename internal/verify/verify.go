// Package verify checks Jekyll post files written by a migration.
//
// Each post must be named YYYY-MM-DD-<slug>.<ext>, start with a front matter
// block carrying a layout, title and date, and contain no fenced code block
// still using Ghost's "lang-" language prefix.
package verify

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// postNameRegex matches Jekyll post file names.
var postNameRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-.+\.[^.]+$`)

// ghostLangPrefix is the fence language prefix the migration removes.
const ghostLangPrefix = "lang-"

// Finding is a single problem in a post file.
type Finding struct {
	Path    string `json:"path"`
	Problem string `json:"problem"`
}

// Report is the outcome of checking a directory.
type Report struct {
	Checked  int       `json:"checked"`
	Findings []Finding `json:"findings"`
}

// OK reports whether no problems were found.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// frontMatter is the subset of the header that is checked.
type frontMatter struct {
	Layout string   `yaml:"layout"`
	Title  string   `yaml:"title"`
	Date   any      `yaml:"date"`
	Tags   []string `yaml:"tags"`
	Image  string   `yaml:"image"`
}

// Dir checks every *.<ext> file under dir, in lexical order.
func Dir(dir, ext string) (*Report, error) {
	suffix := "." + strings.TrimPrefix(ext, ".")
	var paths []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(paths)

	report := &Report{Findings: []Finding{}}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		report.Checked++
		for _, problem := range Check(filepath.Base(path), data) {
			report.Findings = append(report.Findings, Finding{Path: path, Problem: problem})
		}
	}
	return report, nil
}

// Check returns the problems found in one post file.
func Check(name string, data []byte) []string {
	var problems []string

	if !postNameRegex.MatchString(name) {
		problems = append(problems, "file name is not YYYY-MM-DD-slug.ext")
	}

	var meta frontMatter
	body, err := frontmatter.MustParse(bytes.NewReader(data), &meta)
	if err != nil {
		return append(problems, fmt.Sprintf("front matter: %v", err))
	}

	if meta.Layout == "" {
		problems = append(problems, "front matter has no layout")
	}
	if meta.Title == "" {
		problems = append(problems, "front matter has no title")
	}
	if meta.Date == nil {
		problems = append(problems, "front matter has no date")
	}

	for _, line := range ghostFenceLines(body) {
		problems = append(problems, fmt.Sprintf("body line %d: code fence still uses %q", line, ghostLangPrefix))
	}
	return problems
}

// ghostFenceLines returns the body line numbers of fenced code blocks whose
// language starts with the Ghost prefix.
func ghostFenceLines(body []byte) []int {
	doc := goldmark.New().Parser().Parse(text.NewReader(body))

	var lines []int
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := node.(*ast.FencedCodeBlock)
		if !ok || block.Info == nil {
			return ast.WalkContinue, nil
		}
		if strings.HasPrefix(string(block.Language(body)), ghostLangPrefix) {
			lines = append(lines, bytes.Count(body[:block.Info.Segment.Start], []byte("\n"))+1)
		}
		return ast.WalkContinue, nil
	})
	return lines
}
