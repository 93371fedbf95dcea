// Package detect holds the writing-pattern detectors: complex words,
// passive voice, transition words, long sentences, and short
// paragraphs. The passive and transition detectors are regex
// heuristics, not grammatical analysis; they are kept approximate on
// purpose so scores stay comparable over time.
package detect

import (
	"regexp"
	"strings"

	"github.com/readably/readably/internal/syllable"
	"github.com/readably/readably/internal/text"
)

// LongSentenceWords is the word count above which a sentence counts as
// long.
const LongSentenceWords = 20

// ShortParagraphSentences is the sentence count at or below which a
// paragraph counts as short.
const ShortParagraphSentences = 3

// Irregular past participles the "-ed" suffix check would miss.
var irregularParticiples = []string{
	"begun", "blown", "born", "bought", "broken", "brought", "built",
	"caught", "chosen", "done", "drawn", "driven", "eaten", "felt",
	"flown", "found", "given", "grown", "heard", "held", "kept", "known",
	"left", "lost", "made", "meant", "paid", "read", "said", "seen",
	"sent", "shown", "spent", "spoken", "sung", "taken", "taught",
	"thrown", "told", "won", "worn", "written",
}

// Connector words and phrases counted as transitions.
var transitionWords = []string{
	"for example", "for instance", "in addition", "in conclusion",
	"in contrast", "accordingly", "additionally", "also", "besides",
	"consequently", "finally", "first", "furthermore", "hence",
	"however", "instead", "likewise", "meanwhile", "moreover",
	"nevertheless", "next", "nonetheless", "otherwise", "second",
	"similarly", "then", "therefore", "third", "thus",
}

var (
	passivePattern = regexp.MustCompile(
		`(?i)\b(?:is|are|was|were|be|been|being)\s+(?:\w+ed|` +
			strings.Join(irregularParticiples, "|") + `)\b`)
	transitionPattern = regexp.MustCompile(
		`(?i)\b(?:` + strings.Join(transitionWords, "|") + `)\b`)
)

// ComplexWords returns the number of words with three or more
// estimated syllables, plus the distinct complex words in order of
// first appearance.
func ComplexWords(words []string) (int, []string) {
	count := 0
	seen := make(map[string]struct{})
	var examples []string
	for _, w := range words {
		if syllable.Count(w) < 3 {
			continue
		}
		count++
		trimmed := strings.Trim(w, ".,;:!?\"'()[]")
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		examples = append(examples, trimmed)
	}
	return count, examples
}

// PassiveSentences returns the number of sentences matching the
// auxiliary-verb + past-participle heuristic.
func PassiveSentences(sentences []string) int {
	count := 0
	for _, s := range sentences {
		if passivePattern.MatchString(s) {
			count++
		}
	}
	return count
}

// TransitionCount returns the number of word-boundary transition-word
// matches across the whole text.
func TransitionCount(plain string) int {
	return len(transitionPattern.FindAllString(plain, -1))
}

// LongSentences returns the number of sentences with more than
// LongSentenceWords words, plus those sentences verbatim.
func LongSentences(sentences []string) (int, []string) {
	count := 0
	var examples []string
	for _, s := range sentences {
		if len(strings.Fields(s)) > LongSentenceWords {
			count++
			examples = append(examples, s)
		}
	}
	return count, examples
}

// ShortParagraphs returns the number of paragraphs with
// ShortParagraphSentences or fewer sentences.
func ShortParagraphs(paragraphs []string) int {
	count := 0
	for _, p := range paragraphs {
		if len(text.SplitSentences(p)) <= ShortParagraphSentences {
			count++
		}
	}
	return count
}

// Percentage divides part by whole and scales to 0-100, returning 0
// when whole is 0.
func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
