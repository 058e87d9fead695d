// Package highlight turns code blocks into syntax-highlighted HTML.
package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Highlighter renders a code block as HTML.
type Highlighter interface {
	Highlight(code, language string) (template.HTML, error)
}

// Goldmark highlights code by rendering it as a fenced markdown block with the
// chroma-backed goldmark highlighting extension.
type Goldmark struct {
	md       goldmark.Markdown
	language string
}

// New creates a Goldmark highlighter using the chroma style name (e.g.
// "github") and the language applied when a caller passes none.
func New(style, defaultLanguage string) *Goldmark {
	if style == "" {
		style = "github"
	}
	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
				),
			),
		),
		language: defaultLanguage,
	}
}

func (g *Goldmark) Highlight(code, language string) (template.HTML, error) {
	if language == "" {
		language = g.language
	}
	code = strings.TrimRight(code, "\n")
	fence := fenceFor(code)

	var src strings.Builder
	src.WriteString(fence)
	src.WriteString(language)
	src.WriteByte('\n')
	src.WriteString(code)
	src.WriteByte('\n')
	src.WriteString(fence)
	src.WriteByte('\n')

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src.String()), &buf); err != nil {
		return "", fmt.Errorf("highlighting %s block: %w", language, err)
	}
	return template.HTML(buf.String()), nil
}

// fenceFor returns a backtick fence longer than any backtick run in code.
func fenceFor(code string) string {
	longest, run := 0, 0
	for _, c := range code {
		if c == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}
