// Package index computes the six standard readability indices over
// aggregate text counts. Each formula is an independently callable
// pure function; the registry gives callers a uniform view with
// display bands attached.
package index

import "math"

// Counts is the aggregate input shared by all formulas.
type Counts struct {
	Words        int
	Sentences    int
	Characters   int
	Syllables    int
	ComplexWords int
}

func (c Counts) wordsPerSentence() float64 {
	if c.Sentences == 0 {
		return 0
	}
	return float64(c.Words) / float64(c.Sentences)
}

func (c Counts) syllablesPerWord() float64 {
	if c.Words == 0 {
		return 0
	}
	return float64(c.Syllables) / float64(c.Words)
}

func (c Counts) charactersPerWord() float64 {
	if c.Words == 0 {
		return 0
	}
	return float64(c.Characters) / float64(c.Words)
}

func (c Counts) complexWordPercentage() float64 {
	if c.Words == 0 {
		return 0
	}
	return float64(c.ComplexWords) / float64(c.Words) * 100
}

func (c Counts) empty() bool {
	return c.Words == 0 || c.Sentences == 0
}

// FleschReadingEase scores 0-100; higher is easier to read.
func FleschReadingEase(c Counts) float64 {
	if c.empty() {
		return 0
	}
	score := 206.835 - 1.015*c.wordsPerSentence() - 84.6*c.syllablesPerWord()
	return clamp(score, 0, 100)
}

// FleschKincaidGrade estimates the US school grade needed to read the
// text.
func FleschKincaidGrade(c Counts) float64 {
	if c.empty() {
		return 0
	}
	grade := 0.39*c.wordsPerSentence() + 11.8*c.syllablesPerWord() - 15.59
	return math.Max(grade, 0)
}

// GunningFog estimates years of formal education needed to understand
// the text on first reading.
func GunningFog(c Counts) float64 {
	if c.empty() {
		return 0
	}
	return 0.4 * (c.wordsPerSentence() + c.complexWordPercentage())
}

// SMOG estimates a grade level from polysyllable density. The formula
// needs at least 30 sentences to be meaningful and returns 0 below
// that.
func SMOG(c Counts) float64 {
	if c.Sentences < 30 {
		return 0
	}
	polysyllables := float64(c.ComplexWords)
	return 1.043*math.Sqrt(polysyllables*(30/float64(c.Sentences))) + 3.1291
}

// ColemanLiau estimates a grade level from characters per word and
// sentences per word, with no syllable counting.
func ColemanLiau(c Counts) float64 {
	if c.Words == 0 {
		return 0
	}
	l := c.charactersPerWord() * 100
	s := float64(c.Sentences) / float64(c.Words) * 100
	return math.Max(0.0588*l-0.296*s-15.8, 0)
}

// ARI is the Automated Readability Index: a grade level from
// characters per word and words per sentence.
func ARI(c Counts) float64 {
	if c.empty() {
		return 0
	}
	grade := 4.71*c.charactersPerWord() + 0.5*c.wordsPerSentence() - 21.43
	return math.Max(grade, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
