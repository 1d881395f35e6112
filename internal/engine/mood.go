package engine

import "math"

// MoodClassification is the final discrete output for an utterance.
type MoodClassification struct {
	Label string `json:"moodLabel"`
	Score int    `json:"moodScore"` // in [1,10], within the mood's range
}

// MoodPrototype is one of the nine fixed mood reference points.
type MoodPrototype struct {
	Label    string
	Emotions []string // emotions associated with this mood
	MinScore float64  // lower bound of the mood's sentiment band
	rangeMid float64  // derived: MinScore + 0.1, set at table build
	ScoreLo  int
	ScoreHi  int
}

// moodPrototypes is scanned in declared order; only a strictly greater match
// score replaces the current best, so the earlier prototype wins exact ties.
// Keep this a slice, never a map: map iteration would break the tie-break.
var moodPrototypes = []MoodPrototype{
	{Label: "joyful", Emotions: []string{"joy", "love", "optimism"}, MinScore: 0.85, ScoreLo: 8, ScoreHi: 10},
	{Label: "happy", Emotions: []string{"joy", "optimism"}, MinScore: 0.6, ScoreLo: 7, ScoreHi: 8},
	{Label: "calm", Emotions: []string{"neutral", "joy"}, MinScore: 0.3, ScoreLo: 6, ScoreHi: 7},
	{Label: "relaxed", Emotions: []string{"neutral", "joy"}, MinScore: 0.2, ScoreLo: 5, ScoreHi: 6},
	{Label: "neutral", Emotions: []string{"neutral"}, MinScore: 0, ScoreLo: 5, ScoreHi: 5},
	{Label: "anxious", Emotions: []string{"fear", "worry"}, MinScore: -0.2, ScoreLo: 4, ScoreHi: 5},
	{Label: "stressed", Emotions: []string{"fear", "anger", "worry"}, MinScore: -0.4, ScoreLo: 3, ScoreHi: 4},
	{Label: "sad", Emotions: []string{"sadness"}, MinScore: -0.6, ScoreLo: 2, ScoreHi: 3},
	{Label: "depressed", Emotions: []string{"sadness", "disgust"}, MinScore: -0.85, ScoreLo: 1, ScoreHi: 2},
}

func init() {
	// Each prototype's band is 0.2 wide, so the midpoint sits 0.1 above the
	// lower bound.
	for i := range moodPrototypes {
		moodPrototypes[i].rangeMid = moodPrototypes[i].MinScore + 0.1
	}
}

// Classification weights: emotion overlap dominates, score proximity breaks
// the rest.
const (
	weightEmotionMatch = 0.7
	weightProximity    = 0.3
)

// moodScoreBuckets maps the [-1,1] score onto 1..10 before range clamping.
const moodScoreBuckets = 9

// Classify maps a fusion result onto the nearest mood prototype and a
// bounded integer score. It is a pure, total function: any well-formed
// FusionResult, including the fallback one, yields a valid classification.
func Classify(res FusionResult) MoodClassification {
	best := moodPrototypes[0]
	bestScore := math.Inf(-1)

	for _, proto := range moodPrototypes {
		proximity := 1 - math.Abs(res.FinalScore-proto.rangeMid)

		emotionMatch := 0.0
		for _, emotion := range proto.Emotions {
			emotionMatch += res.Emotions[emotion]
		}

		matchScore := emotionMatch*weightEmotionMatch + proximity*weightProximity
		if matchScore > bestScore {
			bestScore = matchScore
			best = proto
		}
	}

	return MoodClassification{
		Label: best.Label,
		Score: moodScore(res.FinalScore, best),
	}
}

// moodScore converts the [-1,1] sentiment score onto the 1..10 scale and
// clamps it into the winning prototype's declared range.
func moodScore(finalScore float64, proto MoodPrototype) int {
	raw := int(((finalScore+1)/2)*moodScoreBuckets) + 1
	if raw < proto.ScoreLo {
		return proto.ScoreLo
	}
	if raw > proto.ScoreHi {
		return proto.ScoreHi
	}
	return raw
}
