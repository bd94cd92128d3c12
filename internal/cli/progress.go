package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter renders pipeline progress callbacks as a terminal
// progress bar. The core pipelines report integer percentages; the bar
// is driven in percent units.
type ProgressReporter struct {
	bar  *progressbar.ProgressBar
	last int
}

// NewProgressReporter creates a reporter writing to w with the given
// description.
func NewProgressReporter(w io.Writer, description string) *ProgressReporter {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)

	return &ProgressReporter{bar: bar}
}

// Update advances the bar to the given percentage. Percentages are
// monotonic within a run; stale values are ignored.
func (p *ProgressReporter) Update(percent int) {
	if percent <= p.last {
		return
	}
	p.last = percent
	if err := p.bar.Set(percent); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Finish forces the bar to completion, for runs that end before
// reporting 100 percent.
func (p *ProgressReporter) Finish() {
	if p.last >= 100 {
		return
	}
	if err := p.bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}
