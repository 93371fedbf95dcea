// Package readably analyzes document text for readability and writing
// quality. It computes linguistic counts, six standard readability
// indices, an audience-fit score, and actionable writing metrics in a
// single stateless pass. Callers supply content; nothing is retained
// between calls, and concurrent use needs no coordination.
package readably

import (
	"github.com/readably/readably/internal/analyze"
	"github.com/readably/readably/internal/audience"
)

// Result is the immutable outcome of one Analyze call.
type Result = analyze.Result

// Metric is one thresholded writing measurement.
type Metric = analyze.Metric

// Status classifies a metric: good, ok, or poor.
type Status = analyze.Status

// Metric statuses.
const (
	StatusGood = analyze.StatusGood
	StatusOK   = analyze.StatusOK
	StatusPoor = analyze.StatusPoor
)

// Profile is a named target grade-level range.
type Profile = audience.Profile

// Option adjusts an Analyze call.
type Option func(*analyze.Options)

// WithAudience targets the analysis at the audience preset with the
// given ID. Unknown IDs fall back to the general profile.
func WithAudience(id string) Option {
	return func(o *analyze.Options) { o.TargetAudience = id }
}

// WithWordsPerMinute overrides the reading rate used for the reading
// time estimate. The default is 200.
func WithWordsPerMinute(n int) Option {
	return func(o *analyze.Options) { o.WordsPerMinute = n }
}

// WithSpeakingWordsPerMinute overrides the speaking rate used for the
// speaking time estimate. The default is 150.
func WithSpeakingWordsPerMinute(n int) Option {
	return func(o *analyze.Options) { o.SpeakingWordsPerMinute = n }
}

// Analyze runs the full analysis pipeline over content. Markup is
// stripped permissively; malformed tags never cause an error, and
// empty content yields a zero-valued result.
func Analyze(content string, opts ...Option) Result {
	var o analyze.Options
	for _, opt := range opts {
		opt(&o)
	}
	return analyze.Analyze(content, o)
}

// Profiles returns the five audience presets.
func Profiles() []Profile {
	return audience.Profiles()
}
