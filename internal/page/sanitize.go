package page

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// NewUGCSanitizer returns bluemonday's user-generated-content policy.
func NewUGCSanitizer() Sanitizer {
	return bluemonday.UGCPolicy()
}

// exerciseHTML marks an exercise string as HTML. Exercise text comes from the
// content document and is trusted unless a sanitizer is configured.
func (r *Renderer) exerciseHTML(ex string) template.HTML {
	if r.sanitizer != nil {
		ex = r.sanitizer.Sanitize(ex)
	}
	return template.HTML(ex)
}
