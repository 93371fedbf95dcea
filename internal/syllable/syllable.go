// Package syllable estimates per-word syllable counts with the
// vowel-group heuristic used by the readability formulas. The count is
// approximate for some English words; the formulas only need a stable,
// deterministic estimate.
package syllable

import (
	"regexp"
	"strings"
)

var (
	nonLetterPattern = regexp.MustCompile(`[^a-z]`)
	// Trailing consonant + "es"/"ed", or consonant + silent "e".
	suffixPattern     = regexp.MustCompile(`(?:[^aeiouy]es|[^aeiouy]ed|[^aeiouy]e)$`)
	vowelGroupPattern = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// Count estimates the number of syllables in word. It returns at least
// 1 for any word that contains a letter.
func Count(word string) int {
	w := strings.ToLower(word)
	w = nonLetterPattern.ReplaceAllString(w, "")
	if len(w) <= 3 {
		return 1
	}

	w = suffixPattern.ReplaceAllString(w, "")
	w = strings.TrimPrefix(w, "y")

	n := len(vowelGroupPattern.FindAllString(w, -1))
	if n == 0 {
		return 1
	}
	return n
}
