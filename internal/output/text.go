package output

import (
	"fmt"
	"io"

	"github.com/readably/readably/internal/analyze"
)

// TextFormatter outputs reports in human-readable text format.
// When Color is true, metric statuses are colored green/yellow/red.
type TextFormatter struct {
	Color bool
}

// Format writes each report as a block: counts, readability indices
// with their bands, the audience fit score, and the six writing
// metrics with any suggestions.
func (f *TextFormatter) Format(w io.Writer, reports []Report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := f.formatOne(w, r); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatOne(w io.Writer, r Report) error {
	res := r.Result

	_, err := fmt.Fprintf(w,
		"%s\n  %d words, %d sentences, %d paragraphs; reading %d min, speaking %d min\n",
		r.Path, res.WordCount, res.SentenceCount, res.ParagraphCount,
		res.ReadingTimeMinutes, res.SpeakingTimeMinutes)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "  Readability\n"); err != nil {
		return err
	}
	for _, s := range res.Indices {
		if _, err := fmt.Fprintf(w, "    %-28s %6.1f  %s\n", s.Name, s.Value, s.Label); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "  Audience fit (%s): %d/100\n", res.Audience.Name, res.AudienceFit)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "  Writing\n"); err != nil {
		return err
	}
	for _, m := range res.Metrics {
		if _, err := fmt.Fprintf(w, "    %s %-20s %s\n",
			f.statusMark(m.Status), m.Name, m.Display); err != nil {
			return err
		}
		if m.Suggestion != "" {
			if _, err := fmt.Fprintf(w, "      %s\n", m.Suggestion); err != nil {
				return err
			}
		}
	}

	return nil
}

// statusMark renders a metric status as a fixed-width marker,
// optionally colored: good in green, ok in yellow, poor in red.
func (f *TextFormatter) statusMark(s analyze.Status) string {
	mark := fmt.Sprintf("%-4s", string(s))
	if !f.Color {
		return mark
	}
	switch s {
	case analyze.StatusGood:
		return "\033[32m" + mark + "\033[0m"
	case analyze.StatusOK:
		return "\033[33m" + mark + "\033[0m"
	default:
		return "\033[31m" + mark + "\033[0m"
	}
}
