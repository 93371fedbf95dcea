package index_test

import (
	"math"
	"testing"

	"github.com/readably/readably/internal/index"
)

// sample is a mid-size document aggregate: 100 words, 5 sentences,
// 450 characters, 150 syllables, 10 complex words.
var sample = index.Counts{
	Words:        100,
	Sentences:    5,
	Characters:   450,
	Syllables:    150,
	ComplexWords: 10,
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestFleschReadingEase(t *testing.T) {
	// 206.835 - 1.015*20 - 84.6*1.5 = 59.635
	got := index.FleschReadingEase(sample)
	if !almostEqual(got, 59.635) {
		t.Errorf("got %v, want 59.635", got)
	}
}

func TestFleschReadingEase_ClampedToRange(t *testing.T) {
	easy := index.Counts{Words: 10, Sentences: 10, Characters: 30, Syllables: 10}
	if got := index.FleschReadingEase(easy); got > 100 {
		t.Errorf("got %v, want <= 100", got)
	}
}

func TestFleschKincaidGrade(t *testing.T) {
	// 0.39*20 + 11.8*1.5 - 15.59 = 9.91
	got := index.FleschKincaidGrade(sample)
	if !almostEqual(got, 9.91) {
		t.Errorf("got %v, want 9.91", got)
	}
}

func TestGunningFog(t *testing.T) {
	// 0.4*(20 + 10) = 12
	got := index.GunningFog(sample)
	if !almostEqual(got, 12) {
		t.Errorf("got %v, want 12", got)
	}
}

func TestSMOG_ZeroBelowThirtySentences(t *testing.T) {
	if got := index.SMOG(sample); got != 0 {
		t.Errorf("got %v, want 0 for %d sentences", got, sample.Sentences)
	}
}

func TestSMOG_ThirtySentences(t *testing.T) {
	c := index.Counts{Words: 600, Sentences: 30, ComplexWords: 36}
	// 1.043*sqrt(36*(30/30)) + 3.1291 = 1.043*6 + 3.1291 = 9.3871
	got := index.SMOG(c)
	if !almostEqual(got, 9.3871) {
		t.Errorf("got %v, want 9.3871", got)
	}
}

func TestColemanLiau(t *testing.T) {
	// L = 450, Sp = 5: 0.0588*450 - 0.296*5 - 15.8 = 9.18
	got := index.ColemanLiau(sample)
	if !almostEqual(got, 9.18) {
		t.Errorf("got %v, want 9.18", got)
	}
}

func TestARI(t *testing.T) {
	// 4.71*4.5 + 0.5*20 - 21.43 = 9.765
	got := index.ARI(sample)
	if !almostEqual(got, 9.765) {
		t.Errorf("got %v, want 9.765", got)
	}
}

func TestAllFormulas_ZeroOnEmptyCounts(t *testing.T) {
	var zero index.Counts
	for _, def := range index.All() {
		if got := def.Compute(zero); got != 0 {
			t.Errorf("%s: got %v, want 0 on empty counts", def.ID, got)
		}
	}
}

func TestComputeAll_SixScoresWithBands(t *testing.T) {
	scores := index.ComputeAll(sample)
	if len(scores) != 6 {
		t.Fatalf("got %d scores, want 6", len(scores))
	}
	for _, s := range scores {
		if s.Label == "" {
			t.Errorf("%s: empty band label", s.ID)
		}
	}
}

func TestFleschBand_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		label string
	}{
		{95, "Very Easy"},
		{85, "Easy"},
		{75, "Fairly Easy"},
		{65, "Standard"},
		{55, "Fairly Difficult"},
		{40, "Difficult"},
		{10, "Very Difficult"},
	}
	for _, tc := range cases {
		if got := index.FleschBand(tc.score).Label; got != tc.label {
			t.Errorf("FleschBand(%v): got %q, want %q", tc.score, got, tc.label)
		}
	}
}

func TestGradeBand_Thresholds(t *testing.T) {
	cases := []struct {
		grade float64
		label string
	}{
		{3, "Elementary School"},
		{7, "Middle School"},
		{10, "High School"},
		{14, "College"},
		{18, "Graduate"},
	}
	for _, tc := range cases {
		if got := index.GradeBand(tc.grade).Label; got != tc.label {
			t.Errorf("GradeBand(%v): got %q, want %q", tc.grade, got, tc.label)
		}
	}
}
