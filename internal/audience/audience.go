// Package audience holds the target-audience presets and the fit
// scorer that maps a grade-level estimate onto them.
package audience

import "math"

// Profile is a named target grade-level range.
type Profile struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	MinGrade float64 `json:"min_grade"`
	MaxGrade float64 `json:"max_grade"`
}

// profiles is static configuration, built once and never mutated.
var profiles = []Profile{
	{ID: "general", Name: "General Public", MinGrade: 7, MaxGrade: 9},
	{ID: "academic", Name: "Academic", MinGrade: 12, MaxGrade: 16},
	{ID: "technical", Name: "Technical", MinGrade: 10, MaxGrade: 14},
	{ID: "children", Name: "Children", MinGrade: 3, MaxGrade: 6},
	{ID: "business", Name: "Business", MinGrade: 8, MaxGrade: 11},
}

// Profiles returns a copy of the five presets.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Lookup finds a preset by ID.
func Lookup(id string) (Profile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Default returns the profile used when none (or an unknown one) is
// requested.
func Default() Profile {
	return profiles[0]
}

// Resolve returns the preset for id, falling back to the default for
// empty or unknown IDs.
func Resolve(id string) Profile {
	if p, ok := Lookup(id); ok {
		return p
	}
	return Default()
}

// Score rates how well a grade-level estimate fits the profile: 100
// inside the range, dropping 10 points per grade level of distance
// outside it, floored at 0.
func Score(grade float64, p Profile) int {
	if grade >= p.MinGrade && grade <= p.MaxGrade {
		return 100
	}
	distance := grade - p.MaxGrade
	if grade < p.MinGrade {
		distance = p.MinGrade - grade
	}
	score := 100 - int(math.Round(distance*10))
	if score < 0 {
		return 0
	}
	return score
}
