package engine

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestFuseWeights(t *testing.T) {
	rec := SignalRecord{
		BaseSentiment:        -0.9,
		ContextualAdjustment: -0.2,
		CulturalScore:        -0.1,
		AudioAdjustment:      -0.1,
	}

	got := fuse(rec)

	// -0.45 - 0.06 - 0.01 - 0.01 = -0.53
	if math.Abs(got.FinalScore-(-0.53)) > epsilon {
		t.Errorf("FinalScore = %v, want -0.53", got.FinalScore)
	}
	if got.SentimentLabel != SentimentNegative {
		t.Errorf("SentimentLabel = %q, want %q", got.SentimentLabel, SentimentNegative)
	}
}

func TestFuseScoreAlwaysBounded(t *testing.T) {
	// Exercise every combination of the documented extremes of the four raw
	// signals and check containment in [-1,1].
	bases := []float64{-1, 0, 1}
	contextuals := []float64{-0.3, 0, 0.3}
	culturals := []float64{-0.1, 0, 0.1}
	audios := []float64{-0.2, 0, 0.2}

	for _, b := range bases {
		for _, c := range contextuals {
			for _, cu := range culturals {
				for _, a := range audios {
					rec := SignalRecord{
						BaseSentiment:        b,
						ContextualAdjustment: c,
						CulturalScore:        cu,
						AudioAdjustment:      a,
					}
					got := fuse(rec).FinalScore
					if got < -1 || got > 1 {
						t.Errorf("fuse(%v,%v,%v,%v) = %v, out of [-1,1]", b, c, cu, a, got)
					}
				}
			}
		}
	}
}

func TestSentimentLabelThresholds(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"exactly positive threshold", 0.6, SentimentPositive},
		{"just below positive threshold", 0.6 - epsilon, SentimentNeutral},
		{"exactly negative threshold", -0.3, SentimentNegative},
		{"just above negative threshold", -0.3 + epsilon, SentimentNeutral},
		{"zero", 0, SentimentNeutral},
		{"strongly positive", 1, SentimentPositive},
		{"strongly negative", -1, SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sentimentLabel(tt.score); got != tt.want {
				t.Errorf("sentimentLabel(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestMergeEmotions(t *testing.T) {
	top := EmotionResult{Label: "joy", Confidence: 0.9}
	contextual := map[string]float64{"joy": 0.7, "love": 0.5}

	got := mergeEmotions(top, contextual)

	if len(got) != 2 {
		t.Fatalf("merged %d emotions, want 2: %v", len(got), got)
	}
	if math.Abs(got["joy"]-0.8) > epsilon {
		t.Errorf("joy = %v, want 0.8 (average on collision)", got["joy"])
	}
	if math.Abs(got["love"]-0.5) > epsilon {
		t.Errorf("love = %v, want 0.5 (inserted)", got["love"])
	}
}

func TestMergeEmotionsWithoutClassifierTop(t *testing.T) {
	got := mergeEmotions(EmotionResult{}, map[string]float64{"fear": 0.4})

	if len(got) != 1 || got["fear"] != 0.4 {
		t.Errorf("merged = %v, want only fear 0.4", got)
	}
}

func TestFuseStronglyPositiveInputStaysNeutral(t *testing.T) {
	// A 0.9-confidence positive classifier result alone lands at 0.45,
	// below the 0.6 positive threshold.
	rec := SignalRecord{BaseSentiment: 0.9}

	got := fuse(rec)

	if math.Abs(got.FinalScore-0.45) > epsilon {
		t.Errorf("FinalScore = %v, want 0.45", got.FinalScore)
	}
	if got.SentimentLabel != SentimentNeutral {
		t.Errorf("SentimentLabel = %q, want %q", got.SentimentLabel, SentimentNeutral)
	}
}
