package syllable_test

import (
	"testing"

	"github.com/readably/readably/internal/syllable"
)

func TestCount_ShortWordsAreOneSyllable(t *testing.T) {
	for _, w := range []string{"a", "an", "the", "cat", "mat", "sat"} {
		if got := syllable.Count(w); got != 1 {
			t.Errorf("Count(%q): got %d, want 1", w, got)
		}
	}
}

func TestCount_SilentE(t *testing.T) {
	if got := syllable.Count("make"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestCount_TrailingEd(t *testing.T) {
	if got := syllable.Count("wanted"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestCount_Hello(t *testing.T) {
	if got := syllable.Count("hello"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestCount_Education(t *testing.T) {
	if got := syllable.Count("education"); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

func TestCount_Readability(t *testing.T) {
	if got := syllable.Count("readability"); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestCount_LeadingYStripped(t *testing.T) {
	// "yellow" -> strip leading y -> "ellow" -> "e", "o".
	if got := syllable.Count("yellow"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestCount_IgnoresCaseAndPunctuation(t *testing.T) {
	if a, b := syllable.Count("Hello!"), syllable.Count("hello"); a != b {
		t.Errorf("punctuated %d != bare %d", a, b)
	}
}

func TestCount_NeverZeroForNonEmptyWords(t *testing.T) {
	words := []string{"I", "rhythm", "strength", "queue", "fly", "a", "xyz", "42nd"}
	for _, w := range words {
		if got := syllable.Count(w); got < 1 {
			t.Errorf("Count(%q): got %d, want >= 1", w, got)
		}
	}
}
