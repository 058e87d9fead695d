// Package progress reports how far a content check has come.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Update per checked page.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a LineReporter when CI or GITHUB_ACTIONS is set and a
// BarReporter otherwise. Both write to w.
func NewReporter(w io.Writer, description string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{w: w, description: description}
	}
	return &BarReporter{w: w, description: description}
}

// BarReporter draws a progress bar.
type BarReporter struct {
	w           io.Writer
	description string
	bar         *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(r.description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per update, for logs that cannot redraw.
type LineReporter struct {
	w           io.Writer
	description string
	total       int
}

func (r *LineReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.w, "%s: %d pages\n", r.description, total)
}

func (r *LineReporter) Update(current int, message string) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", current, r.total, message)
}

func (r *LineReporter) Finish() {
	fmt.Fprintf(r.w, "%s: done\n", r.description)
}
