package index

// Band is the display label and description attached to an index
// value.
type Band struct {
	Label       string
	Description string
}

// Definition describes one readability index and how to compute and
// display it.
type Definition struct {
	ID          string
	Name        string
	Description string
	Min, Max    float64
	Compute     func(Counts) float64
	Band        func(float64) Band
}

// Score is one computed index with its display band resolved.
type Score struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

var registry = []Definition{
	{
		ID:          "flesch-reading-ease",
		Name:        "Flesch Reading Ease",
		Description: "0-100 scale; higher means easier to read.",
		Min:         0,
		Max:         100,
		Compute:     FleschReadingEase,
		Band:        FleschBand,
	},
	{
		ID:          "flesch-kincaid-grade",
		Name:        "Flesch-Kincaid Grade Level",
		Description: "US school-grade estimate of required reading level.",
		Min:         0,
		Max:         18,
		Compute:     FleschKincaidGrade,
		Band:        GradeBand,
	},
	{
		ID:          "gunning-fog",
		Name:        "Gunning Fog Index",
		Description: "Years of formal education needed to understand the text on first reading.",
		Min:         0,
		Max:         18,
		Compute:     GunningFog,
		Band:        GradeBand,
	},
	{
		ID:          "smog",
		Name:        "SMOG Index",
		Description: "Grade-level estimate; requires at least 30 sentences to be meaningful.",
		Min:         0,
		Max:         18,
		Compute:     SMOG,
		Band:        GradeBand,
	},
	{
		ID:          "coleman-liau",
		Name:        "Coleman-Liau Index",
		Description: "Grade-level estimate from characters per word and sentences per word.",
		Min:         0,
		Max:         18,
		Compute:     ColemanLiau,
		Band:        GradeBand,
	},
	{
		ID:          "ari",
		Name:        "Automated Readability Index",
		Description: "Grade-level estimate from characters per word and words per sentence.",
		Min:         0,
		Max:         18,
		Compute:     ARI,
		Band:        GradeBand,
	},
}

// All returns a copy of the index definitions in display order.
func All() []Definition {
	defs := make([]Definition, len(registry))
	copy(defs, registry)
	return defs
}

// ComputeAll evaluates every index against the counts.
func ComputeAll(c Counts) []Score {
	scores := make([]Score, 0, len(registry))
	for _, def := range registry {
		v := def.Compute(c)
		band := def.Band(v)
		scores = append(scores, Score{
			ID:          def.ID,
			Name:        def.Name,
			Value:       v,
			Label:       band.Label,
			Description: band.Description,
		})
	}
	return scores
}

// FleschBand maps a Flesch Reading Ease score to its fixed display
// band.
func FleschBand(score float64) Band {
	switch {
	case score >= 90:
		return Band{"Very Easy", "Very easy to read. Easily understood by an average 11-year-old student."}
	case score >= 80:
		return Band{"Easy", "Easy to read. Conversational English for consumers."}
	case score >= 70:
		return Band{"Fairly Easy", "Fairly easy to read."}
	case score >= 60:
		return Band{"Standard", "Plain English. Easily understood by 13- to 15-year-old students."}
	case score >= 50:
		return Band{"Fairly Difficult", "Fairly difficult to read."}
	case score >= 30:
		return Band{"Difficult", "Difficult to read. Best understood by college graduates."}
	default:
		return Band{"Very Difficult", "Very difficult to read. Best understood by university graduates."}
	}
}

// GradeBand maps a school-grade estimate to its reading-level band.
func GradeBand(grade float64) Band {
	switch {
	case grade < 6:
		return Band{"Elementary School", "Very easy to read. Easily understood by an average 11-year-old student."}
	case grade < 9:
		return Band{"Middle School", "Fairly easy to read. Conversational English for consumers."}
	case grade < 13:
		return Band{"High School", "Standard difficulty. Suitable for most readers."}
	case grade < 17:
		return Band{"College", "Fairly difficult to read. Best understood by college graduates."}
	default:
		return Band{"Graduate", "Difficult to read. Best understood by university graduates."}
	}
}
