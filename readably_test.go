package readably_test

import (
	"testing"

	readably "github.com/readably/readably"
)

func TestAnalyze_Defaults(t *testing.T) {
	res := readably.Analyze("The cat sat on the mat.")
	if res.WordCount != 6 {
		t.Errorf("word count: got %d, want 6", res.WordCount)
	}
	if res.Audience.ID != "general" {
		t.Errorf("audience: got %q, want %q", res.Audience.ID, "general")
	}
}

func TestAnalyze_Options(t *testing.T) {
	res := readably.Analyze("Some words to read.",
		readably.WithAudience("business"),
		readably.WithWordsPerMinute(100),
	)
	if res.Audience.ID != "business" {
		t.Errorf("audience: got %q, want %q", res.Audience.ID, "business")
	}
	if res.ReadingTimeMinutes != 1 {
		t.Errorf("reading time: got %d, want 1", res.ReadingTimeMinutes)
	}
}

func TestProfiles(t *testing.T) {
	if got := len(readably.Profiles()); got != 5 {
		t.Errorf("got %d profiles, want 5", got)
	}
}
