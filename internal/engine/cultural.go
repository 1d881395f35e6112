package engine

import "strings"

// Cultural context categories recorded in SignalRecord.CulturalFactors.
const (
	CategoryFamily         = "family_terms"
	CategorySocialPressure = "social_pressure_terms"
	CategorySpiritual      = "spiritual_terms"
	CategoryWorkCulture    = "work_culture_terms"
)

// Per-category score contributions. Only the spiritual and social-pressure
// categories move the score; family and work-culture hits are recorded for
// diagnostics but contribute nothing. Scoring is presence-based: five
// spiritual matches count the same as one.
const (
	spiritualBonus      = 0.1
	socialPressureMalus = -0.1
)

// culturalVocabulary pairs a category with its fixed term list. The slice
// order fixes the order categories are scanned in.
type culturalVocabulary struct {
	category string
	terms    []string
}

var culturalVocabularies = []culturalVocabulary{
	{
		category: CategoryFamily,
		terms: []string{
			"family", "parents", "mother", "father", "sister", "brother", "grandparents",
			"relatives", "uncle", "aunt", "cousins", "joint family", "elders", "in-laws",
		},
	},
	{
		category: CategorySocialPressure,
		terms: []string{
			"expectations", "society", "marriage", "career", "studies", "exams",
			"competitive", "comparison", "neighbors", "relatives", "community",
			"grades", "rank", "JEE", "NEET", "board exams", "family name",
			"what will people say", "log kya kahenge", "respect", "honor",
		},
	},
	{
		category: CategorySpiritual,
		terms: []string{
			"meditation", "yoga", "prayer", "temple", "puja", "spiritual", "faith",
			"god", "goddess", "festival", "ritual", "karma", "dharma", "mantra",
		},
	},
	{
		category: CategoryWorkCulture,
		terms: []string{
			"office", "deadline", "manager", "boss", "overtime", "pressure",
			"promotion", "colleagues", "workplace", "IT", "software", "project",
			"client", "delivery", "target", "meeting",
		},
	},
}

// scanCulturalContext checks the transcript against the fixed term
// vocabularies using case-insensitive substring containment. It returns the
// additive cultural score and a map of category -> matched terms for every
// category with at least one hit.
func scanCulturalContext(transcript string) (float64, map[string][]string) {
	lowered := strings.ToLower(transcript)

	score := 0.0
	factors := make(map[string][]string)

	for _, vocab := range culturalVocabularies {
		var matched []string
		for _, term := range vocab.terms {
			if strings.Contains(lowered, strings.ToLower(term)) {
				matched = append(matched, term)
			}
		}
		if len(matched) == 0 {
			continue
		}

		factors[vocab.category] = matched

		switch vocab.category {
		case CategorySpiritual:
			score += spiritualBonus
		case CategorySocialPressure:
			score += socialPressureMalus
		}
	}

	return score, factors
}
