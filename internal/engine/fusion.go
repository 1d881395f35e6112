package engine

// Fusion weights. Fixed by design; they are neither configurable nor
// learned.
const (
	weightBase       = 0.5
	weightContextual = 0.3
	weightCultural   = 0.1
	weightAudio      = 0.1
)

// Sentiment labels assigned by fusion.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Label thresholds. The neutral band is intentionally asymmetric around
// zero: positive requires a clearly strong score while negative triggers
// earlier.
const (
	positiveThreshold = 0.6
	negativeThreshold = -0.3
)

// FusionResult is the fused view of one utterance, the input to mood
// classification.
type FusionResult struct {
	FinalScore      float64             `json:"score"`
	SentimentLabel  string              `json:"label"`
	Emotions        map[string]float64  `json:"emotions"`
	Keywords        []string            `json:"keywords"`
	CulturalFactors map[string][]string `json:"cultural_context"`
	Severity        Severity            `json:"severity"`
	Degraded        bool                `json:"degraded"`
	DegradedSources []Source            `json:"degraded_sources,omitempty"`
}

// fuse combines the four weighted signals into the final bounded score,
// merges the emotion distributions and assigns the sentiment label.
func fuse(rec SignalRecord) FusionResult {
	score := rec.BaseSentiment*weightBase +
		rec.ContextualAdjustment*weightContextual +
		rec.CulturalScore*weightCultural +
		rec.AudioAdjustment*weightAudio
	score = clamp(score, -1, 1)

	return FusionResult{
		FinalScore:      score,
		SentimentLabel:  sentimentLabel(score),
		Emotions:        mergeEmotions(rec.EmotionTop, rec.ContextualEmotions),
		Keywords:        rec.Keywords,
		CulturalFactors: rec.CulturalFactors,
		Severity:        rec.Severity,
		Degraded:        rec.Degraded,
		DegradedSources: rec.DegradedSources,
	}
}

// mergeEmotions starts from the classifier's top emotion and folds in the
// LLM emotion probabilities: collisions are averaged, new emotions are
// inserted as-is.
func mergeEmotions(top EmotionResult, contextual map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(contextual)+1)
	if top.Label != "" {
		merged[top.Label] = top.Confidence
	}
	for name, prob := range contextual {
		if existing, ok := merged[name]; ok {
			merged[name] = (existing + prob) / 2
		} else {
			merged[name] = prob
		}
	}
	return merged
}

func sentimentLabel(score float64) string {
	switch {
	case score >= positiveThreshold:
		return SentimentPositive
	case score <= negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
