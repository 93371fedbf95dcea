// Package analyze runs the full writing-quality pipeline over one
// document: tokenize, count syllables, run the pattern detectors,
// compute the readability indices, score audience fit, and derive the
// six writing metrics with their suggestions. The pipeline is a pure
// function of its input; it holds no state across calls and is safe to
// invoke concurrently.
package analyze

import (
	"math"

	"github.com/readably/readably/internal/audience"
	"github.com/readably/readably/internal/detect"
	"github.com/readably/readably/internal/index"
	"github.com/readably/readably/internal/syllable"
	"github.com/readably/readably/internal/text"
)

// Defaults for caller-configurable rates.
const (
	DefaultWordsPerMinute         = 200
	DefaultSpeakingWordsPerMinute = 150
)

// Exemplar list caps.
const (
	maxComplexWordExamples  = 10
	maxLongSentenceExamples = 5
)

// Options configures one analysis call. Zero values mean defaults:
// the general audience, 200 reading and 150 speaking words per minute.
type Options struct {
	TargetAudience         string
	WordsPerMinute         int
	SpeakingWordsPerMinute int
}

// Result is the immutable outcome of one analysis call.
type Result struct {
	WordCount        int `json:"word_count"`
	SentenceCount    int `json:"sentence_count"`
	ParagraphCount   int `json:"paragraph_count"`
	CharacterCount   int `json:"character_count"`
	SyllableCount    int `json:"syllable_count"`
	ComplexWordCount int `json:"complex_word_count"`

	ComplexWordPercentage    float64 `json:"complex_word_percentage"`
	PassivePercentage        float64 `json:"passive_percentage"`
	TransitionPercentage     float64 `json:"transition_percentage"`
	LongSentencePercentage   float64 `json:"long_sentence_percentage"`
	ShortParagraphPercentage float64 `json:"short_paragraph_percentage"`

	Indices            []index.Score `json:"indices"`
	FleschKincaidGrade float64       `json:"flesch_kincaid_grade"`

	Audience    audience.Profile `json:"audience"`
	AudienceFit int              `json:"audience_fit"`

	ReadingTimeMinutes  int `json:"reading_time_minutes"`
	SpeakingTimeMinutes int `json:"speaking_time_minutes"`

	ComplexWords  []string `json:"complex_words,omitempty"`
	LongSentences []string `json:"long_sentences,omitempty"`

	Metrics []Metric `json:"metrics"`
}

// Analyze runs the pipeline over content. It never fails: empty input
// yields a zero-valued result and malformed markup is tolerated.
func Analyze(content string, opts Options) Result {
	prof := audience.Resolve(opts.TargetAudience)
	wpm := opts.WordsPerMinute
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	swpm := opts.SpeakingWordsPerMinute
	if swpm <= 0 {
		swpm = DefaultSpeakingWordsPerMinute
	}

	tok := text.Tokenize(content)

	syllables := 0
	for _, w := range tok.Words {
		syllables += syllable.Count(w)
	}

	complexCount, complexExamples := detect.ComplexWords(tok.Words)
	passiveCount := detect.PassiveSentences(tok.Sentences)
	transitionCount := detect.TransitionCount(tok.PlainText)
	longCount, longExamples := detect.LongSentences(tok.Sentences)
	shortParagraphCount := detect.ShortParagraphs(tok.Paragraphs)

	counts := index.Counts{
		Words:        len(tok.Words),
		Sentences:    len(tok.Sentences),
		Characters:   text.CountCharacters(tok.PlainText),
		Syllables:    syllables,
		ComplexWords: complexCount,
	}

	res := Result{
		WordCount:        counts.Words,
		SentenceCount:    counts.Sentences,
		ParagraphCount:   len(tok.Paragraphs),
		CharacterCount:   counts.Characters,
		SyllableCount:    counts.Syllables,
		ComplexWordCount: complexCount,

		ComplexWordPercentage:    detect.Percentage(complexCount, counts.Words),
		PassivePercentage:        detect.Percentage(passiveCount, counts.Sentences),
		TransitionPercentage:     math.Min(detect.Percentage(transitionCount, counts.Sentences), 100),
		LongSentencePercentage:   detect.Percentage(longCount, counts.Sentences),
		ShortParagraphPercentage: detect.Percentage(shortParagraphCount, len(tok.Paragraphs)),

		Indices:            index.ComputeAll(counts),
		FleschKincaidGrade: index.FleschKincaidGrade(counts),

		Audience: prof,

		ComplexWords:  capped(complexExamples, maxComplexWordExamples),
		LongSentences: capped(longExamples, maxLongSentenceExamples),
	}

	if counts.Words > 0 {
		res.AudienceFit = audience.Score(res.FleschKincaidGrade, prof)
		res.ReadingTimeMinutes = int(math.Ceil(float64(counts.Words) / float64(wpm)))
		res.SpeakingTimeMinutes = int(math.Ceil(float64(counts.Words) / float64(swpm)))
	}

	res.Metrics = buildMetrics(res)
	return res
}

func capped(list []string, max int) []string {
	if len(list) <= max {
		return list
	}
	return list[:max]
}
