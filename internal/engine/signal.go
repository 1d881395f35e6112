package engine

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/moodmirror/go-mood-mirror/internal/audio"
)

// Source identifies one of the external signal sources feeding the engine.
type Source string

const (
	// SourceSentiment is the binary POSITIVE/NEGATIVE classifier.
	SourceSentiment Source = "sentiment"
	// SourceEmotion is the top-1 emotion classifier.
	SourceEmotion Source = "emotion"
	// SourceLinguistic is the token/entity extractor used for keywords.
	SourceLinguistic Source = "linguistic"
	// SourceContextual is the LLM contextual-adjustment service.
	SourceContextual Source = "contextual"
	// SourcePipeline marks the total-failure fallback rather than a single
	// degraded source.
	SourcePipeline Source = "pipeline"
)

// Severity is the coarse urgency flag produced by the contextual-adjustment
// service.
type Severity string

const (
	SeverityNormal     Severity = "normal"
	SeverityConcerning Severity = "concerning"
	SeverityUrgent     Severity = "urgent"
)

// Sentiment classifier labels.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
)

// SentimentResult is the binary classifier output.
type SentimentResult struct {
	Label      string
	Confidence float64 // in [0,1]
}

// EmotionResult is the top-1 emotion classifier output.
type EmotionResult struct {
	Label      string
	Confidence float64 // in [0,1]
}

// Token is a single token from the linguistic analyzer.
type Token struct {
	Text        string
	Stopword    bool
	Punctuation bool
}

// Entity is a named entity from the linguistic analyzer.
type Entity struct {
	Text  string
	Label string
}

// LinguisticResult holds tokens and entities for a transcript.
type LinguisticResult struct {
	Tokens   []Token
	Entities []Entity
}

// Adjustment is the contextual-adjustment service output.
type Adjustment struct {
	ScoreAdjustment float64            // in [-0.3, 0.3] after validation
	Emotions        map[string]float64 // emotion -> probability
	CulturalFactors []string
	Severity        Severity
}

// Collaborator contracts. Each is implemented by a client package and faked
// in tests.
type (
	// SentimentClassifier scores text polarity.
	SentimentClassifier interface {
		Sentiment(ctx context.Context, text string) (SentimentResult, error)
	}

	// EmotionClassifier returns the single best emotion for a text.
	EmotionClassifier interface {
		Emotion(ctx context.Context, text string) (EmotionResult, error)
	}

	// LinguisticAnalyzer tokenizes text and extracts entities.
	LinguisticAnalyzer interface {
		Analyze(ctx context.Context, text string) (LinguisticResult, error)
	}

	// ContextualAnalyzer asks the LLM service for a contextual sentiment
	// adjustment.
	ContextualAnalyzer interface {
		Adjust(ctx context.Context, text string) (Adjustment, error)
	}
)

// SignalRecord is the normalized view of all signal sources for one
// utterance. It is created fresh per call and discarded after fusion.
type SignalRecord struct {
	BaseSentiment        float64 // in [-1,1], signed classifier confidence
	EmotionTop           EmotionResult
	Keywords             []string
	CulturalScore        float64
	CulturalFactors      map[string][]string
	ContextualAdjustment float64 // in [-0.3,0.3]
	ContextualEmotions   map[string]float64
	Severity             Severity
	AudioAdjustment      float64 // in [-0.2,0.2]

	Degraded        bool
	DegradedSources []Source
}

func (r *SignalRecord) markDegraded(src Source) {
	r.Degraded = true
	r.DegradedSources = append(r.DegradedSources, src)
}

// maxKeywords caps the keyword list built from the linguistic analyzer.
const maxKeywords = 10

// collect queries the four signal sources and assembles a SignalRecord,
// substituting the documented fail-open default for every source that
// errors. The sources are independent, so they are issued concurrently and
// joined here; completion order cannot affect the record.
func (e *Engine) collect(ctx context.Context, transcript string, features *audio.FeatureSummary) SignalRecord {
	rec := SignalRecord{
		ContextualEmotions: map[string]float64{},
		Severity:           SeverityNormal,
	}
	rec.CulturalScore, rec.CulturalFactors = scanCulturalContext(transcript)

	var (
		wg sync.WaitGroup

		sentRes SentimentResult
		sentErr error
		emoRes  EmotionResult
		emoErr  error
		lingRes LinguisticResult
		lingErr error
		adjRes  Adjustment
		adjErr  error

		// A panic inside a source goroutine would escape the recovery in
		// Fuse; each slot captures its goroutine's panic so it can be
		// re-raised on this goroutine after the join.
		panics [4]any
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		defer func() { panics[0] = recover() }()
		sentRes, sentErr = e.sentiment.Sentiment(ctx, transcript)
	}()
	go func() {
		defer wg.Done()
		defer func() { panics[1] = recover() }()
		emoRes, emoErr = e.emotion.Emotion(ctx, transcript)
	}()
	go func() {
		defer wg.Done()
		defer func() { panics[2] = recover() }()
		lingRes, lingErr = e.linguistic.Analyze(ctx, transcript)
	}()
	go func() {
		defer wg.Done()
		defer func() { panics[3] = recover() }()
		adjRes, adjErr = e.contextual.Adjust(ctx, transcript)
	}()
	wg.Wait()

	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}

	if sentErr != nil {
		e.log.WithError(sentErr).Warn("sentiment classifier unavailable, defaulting to 0")
		rec.markDegraded(SourceSentiment)
	} else {
		rec.BaseSentiment = signSentiment(sentRes)
	}

	if emoErr != nil {
		e.log.WithError(emoErr).Warn("emotion classifier unavailable, dropping top emotion")
		rec.markDegraded(SourceEmotion)
	} else {
		rec.EmotionTop = EmotionResult{
			Label:      emoRes.Label,
			Confidence: clamp(emoRes.Confidence, 0, 1),
		}
	}

	if lingErr != nil {
		e.log.WithError(lingErr).Warn("linguistic analyzer unavailable, keywords empty")
		rec.markDegraded(SourceLinguistic)
	} else {
		rec.Keywords = extractKeywords(lingRes.Tokens)
	}

	if adjErr != nil {
		e.log.WithError(adjErr).Warn("contextual adjustment unavailable, using neutral defaults")
		rec.markDegraded(SourceContextual)
	} else {
		rec.ContextualAdjustment = clamp(adjRes.ScoreAdjustment, -maxContextualAdjustment, maxContextualAdjustment)
		if adjRes.Emotions != nil {
			rec.ContextualEmotions = adjRes.Emotions
		}
		rec.Severity = normalizeSeverity(adjRes.Severity)
	}

	rec.AudioAdjustment = audioAdjustment(rec.BaseSentiment, features)

	return rec
}

// maxContextualAdjustment bounds the LLM adjustment at the adapter boundary.
const maxContextualAdjustment = 0.3

// maxAudioAdjustment bounds the audio intensity contribution.
const maxAudioAdjustment = 0.2

// signSentiment converts the binary classifier output into a signed score:
// +confidence for POSITIVE, -confidence for NEGATIVE. Unknown labels count
// as negative polarity only when explicitly labelled; anything else scores 0.
func signSentiment(res SentimentResult) float64 {
	conf := clamp(res.Confidence, 0, 1)
	switch res.Label {
	case LabelPositive:
		return conf
	case LabelNegative:
		return -conf
	default:
		return 0
	}
}

// extractKeywords keeps the first maxKeywords tokens that are neither
// stopwords nor punctuation, preserving token order.
func extractKeywords(tokens []Token) []string {
	var keywords []string
	for _, tok := range tokens {
		if tok.Stopword || tok.Punctuation {
			continue
		}
		keywords = append(keywords, tok.Text)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// audioAdjustment derives a bounded intensity adjustment from the audio
// summary. Energy and tempo correlate with arousal, so the adjustment
// amplifies whichever polarity the base sentiment already has and is zero
// for neutral sentiment or missing audio.
func audioAdjustment(baseSentiment float64, features *audio.FeatureSummary) float64 {
	if features == nil {
		return 0
	}

	intensity := features.MeanRMS()*5 + features.Tempo/200

	switch {
	case baseSentiment > 0:
		return math.Min(intensity*maxAudioAdjustment, maxAudioAdjustment)
	case baseSentiment < 0:
		return math.Max(-intensity*maxAudioAdjustment, -maxAudioAdjustment)
	default:
		return 0
	}
}

// normalizeSeverity whitelists the severity value, defaulting to normal.
func normalizeSeverity(s Severity) Severity {
	switch Severity(strings.ToLower(string(s))) {
	case SeverityConcerning:
		return SeverityConcerning
	case SeverityUrgent:
		return SeverityUrgent
	default:
		return SeverityNormal
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
