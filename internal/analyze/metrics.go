package analyze

import "fmt"

// Status classifies a writing metric against its thresholds.
type Status string

// Statuses, best to worst.
const (
	StatusGood Status = "good"
	StatusOK   Status = "ok"
	StatusPoor Status = "poor"
)

// Metric is one thresholded writing measurement with an optional
// improvement suggestion. Suggestions appear only on poor status.
type Metric struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Display     string  `json:"display"`
	Status      Status  `json:"status"`
	Description string  `json:"description"`
	Suggestion  string  `json:"suggestion,omitempty"`
}

// Fixed metric thresholds. "Ceiling" metrics degrade as the value
// rises; "floor" metrics degrade as it falls.
const (
	wordsPerSentenceGood = 20.0
	wordsPerSentenceOK   = 25.0

	longSentenceGoodPct = 25.0
	longSentenceOKPct   = 40.0

	passiveGoodPct = 10.0
	passiveOKPct   = 20.0

	transitionGoodPct = 30.0
	transitionOKPct   = 20.0

	complexWordGoodPct = 10.0
	complexWordOKPct   = 20.0

	shortParagraphGoodPct = 80.0
	shortParagraphOKPct   = 60.0
)

// buildMetrics derives the six writing metrics from a computed result.
func buildMetrics(res Result) []Metric {
	wps := 0.0
	if res.SentenceCount > 0 {
		wps = float64(res.WordCount) / float64(res.SentenceCount)
	}

	return []Metric{
		ceilingMetric(
			"words-per-sentence", "Words per sentence", wps,
			fmt.Sprintf("%.1f words", wps),
			"Average sentence length.",
			wordsPerSentenceGood, wordsPerSentenceOK,
			"Vary sentence length and include more short sentences.",
		),
		ceilingMetric(
			"long-sentences", "Long sentences", res.LongSentencePercentage,
			percentDisplay(res.LongSentencePercentage),
			"Share of sentences longer than 20 words.",
			longSentenceGoodPct, longSentenceOKPct,
			"Break long sentences into shorter ones for better readability.",
		),
		ceilingMetric(
			"passive-voice", "Passive voice", res.PassivePercentage,
			percentDisplay(res.PassivePercentage),
			"Share of sentences using passive constructions.",
			passiveGoodPct, passiveOKPct,
			"Use active voice more often for clearer writing.",
		),
		floorMetric(
			"transition-words", "Transition words", res.TransitionPercentage,
			percentDisplay(res.TransitionPercentage),
			"Transition words relative to sentence count.",
			transitionGoodPct, transitionOKPct,
			"Add transition words to connect ideas between sentences.",
			res.SentenceCount == 0,
		),
		ceilingMetric(
			"complex-words", "Complex words", res.ComplexWordPercentage,
			percentDisplay(res.ComplexWordPercentage),
			"Share of words with three or more syllables.",
			complexWordGoodPct, complexWordOKPct,
			"Consider using simpler words where possible.",
		),
		floorMetric(
			"short-paragraphs", "Short paragraphs", res.ShortParagraphPercentage,
			percentDisplay(res.ShortParagraphPercentage),
			"Share of paragraphs with three or fewer sentences.",
			shortParagraphGoodPct, shortParagraphOKPct,
			"Split long paragraphs to make content easier to scan.",
			res.ParagraphCount == 0,
		),
	}
}

// ceilingMetric grades a value where lower is better.
func ceilingMetric(id, name string, value float64, display, description string, good, ok float64, suggestion string) Metric {
	m := Metric{
		ID:          id,
		Name:        name,
		Value:       value,
		Display:     display,
		Status:      StatusGood,
		Description: description,
	}
	switch {
	case value <= good:
	case value <= ok:
		m.Status = StatusOK
	default:
		m.Status = StatusPoor
		m.Suggestion = suggestion
	}
	return m
}

// floorMetric grades a value where higher is better. An empty document
// (vacuous denominator) grades as good with no suggestion.
func floorMetric(id, name string, value float64, display, description string, good, ok float64, suggestion string, vacuous bool) Metric {
	m := Metric{
		ID:          id,
		Name:        name,
		Value:       value,
		Display:     display,
		Status:      StatusGood,
		Description: description,
	}
	if vacuous {
		return m
	}
	switch {
	case value >= good:
	case value >= ok:
		m.Status = StatusOK
	default:
		m.Status = StatusPoor
		m.Suggestion = suggestion
	}
	return m
}

func percentDisplay(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
