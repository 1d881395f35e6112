// Package engine implements the mood fusion and classification pipeline:
// four external signal sources are normalized with fail-open defaults,
// fused into a bounded sentiment score with fixed weights, and mapped onto
// one of nine mood prototypes.
package engine

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/moodmirror/go-mood-mirror/internal/audio"
)

// ErrContextualDisabled is reported when no contextual analyzer is
// configured; the source then degrades to its neutral defaults.
var ErrContextualDisabled = errors.New("contextual analyzer not configured")

type disabledContextual struct{}

func (disabledContextual) Adjust(context.Context, string) (Adjustment, error) {
	return Adjustment{}, ErrContextualDisabled
}

// Engine runs the fusion pipeline. It is stateless between invocations;
// concurrent calls for different transcripts are independent.
type Engine struct {
	sentiment  SentimentClassifier
	emotion    EmotionClassifier
	linguistic LinguisticAnalyzer
	contextual ContextualAnalyzer
	log        *logrus.Logger
}

// New creates an Engine wired to the four signal sources. A nil contextual
// analyzer is allowed and treated as a permanently degraded source.
func New(sentiment SentimentClassifier, emotion EmotionClassifier, linguistic LinguisticAnalyzer, contextual ContextualAnalyzer, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if contextual == nil {
		contextual = disabledContextual{}
	}
	return &Engine{
		sentiment:  sentiment,
		emotion:    emotion,
		linguistic: linguistic,
		contextual: contextual,
		log:        log,
	}
}

// Result is the full engine output for one utterance.
type Result struct {
	Fusion FusionResult
	Mood   MoodClassification
}

// Fuse runs signal collection and score fusion for one utterance. It never
// returns an error: individual source failures are absorbed with their
// documented defaults, and anything escaping those recovery points is
// converted into the fixed fallback result.
func (e *Engine) Fuse(ctx context.Context, transcript string, features *audio.FeatureSummary) (res FusionResult) {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithField("panic", r).Error("mood pipeline failed, returning fallback")
			res = FallbackResult()
		}
	}()

	return fuse(e.collect(ctx, transcript, features))
}

// Analyze is the full pipeline: fuse then classify. On total failure the
// mood classification is skipped and the caller receives the neutral
// fallback mood directly.
func (e *Engine) Analyze(ctx context.Context, transcript string, features *audio.FeatureSummary) Result {
	fused := e.Fuse(ctx, transcript, features)
	if isFallback(fused) {
		return Result{Fusion: fused, Mood: fallbackMood()}
	}

	mood := Classify(fused)
	e.log.WithFields(logrus.Fields{
		"score":    fused.FinalScore,
		"label":    fused.SentimentLabel,
		"mood":     mood.Label,
		"severity": fused.Severity,
		"degraded": fused.Degraded,
	}).Info("utterance analyzed")

	return Result{Fusion: fused, Mood: mood}
}

// FallbackResult is the fixed all-or-nothing result returned when the
// pipeline fails past the per-source recovery points. Partial results are
// never returned in that case.
func FallbackResult() FusionResult {
	return FusionResult{
		FinalScore:      0,
		SentimentLabel:  SentimentNeutral,
		Emotions:        map[string]float64{"neutral": 1.0},
		Keywords:        []string{},
		CulturalFactors: map[string][]string{},
		Severity:        SeverityNormal,
		Degraded:        true,
		DegradedSources: []Source{SourcePipeline},
	}
}

func fallbackMood() MoodClassification {
	// The neutral prototype's range is [5,5].
	return MoodClassification{Label: "neutral", Score: 5}
}

func isFallback(res FusionResult) bool {
	for _, src := range res.DegradedSources {
		if src == SourcePipeline {
			return true
		}
	}
	return false
}
