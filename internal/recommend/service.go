// Package recommend builds personalized wellness suggestions for a mood:
// curated catalog entries mixed with mood-matched music and videos from
// external sources. External sources fail open; the catalog is always
// available.
package recommend

import (
	"context"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
)

// Mix limits: up to 3 catalog entries, 2 music picks and 2 videos, capped
// at 5 total after shuffling.
const (
	maxCatalog = 3
	maxMusic   = 2
	maxVideo   = 2
	maxTotal   = 5
)

// minCatalogBeforeBackfill triggers adjacent-mood backfill when filtering
// previously seen suggestions leaves too few.
const minCatalogBeforeBackfill = 3

// CatalogStore provides curated suggestions for a mood. Implemented by the
// database repository; nil means the built-in catalog is used directly.
type CatalogStore interface {
	ForMood(ctx context.Context, mood string) ([]Recommendation, error)
}

// MusicSource provides mood-matched music suggestions.
type MusicSource interface {
	ForMood(ctx context.Context, mood string, limit int) ([]Recommendation, error)
}

// VideoSource provides mood-matched video suggestions.
type VideoSource interface {
	ForMood(ctx context.Context, mood string, limit int) ([]Recommendation, error)
}

// Service assembles recommendation mixes.
type Service struct {
	catalog CatalogStore
	music   MusicSource
	video   VideoSource
	rng     *rand.Rand
	log     *logrus.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCatalog sets a catalog store in front of the built-in catalog.
func WithCatalog(store CatalogStore) Option {
	return func(s *Service) { s.catalog = store }
}

// WithMusic sets the music source.
func WithMusic(src MusicSource) Option {
	return func(s *Service) { s.music = src }
}

// WithVideo sets the video source.
func WithVideo(src VideoSource) Option {
	return func(s *Service) { s.video = src }
}

// WithRand sets the random source used for shuffling, for deterministic
// tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a recommendation service. All sources are optional;
// with no options the service serves the built-in catalog only.
func NewService(log *logrus.Logger, opts ...Option) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Service{log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Personalized returns up to five suggestions for the mood, skipping IDs the
// user has already seen. Unknown moods fall back to neutral suggestions.
func (s *Service) Personalized(ctx context.Context, mood string, previous []string) []Recommendation {
	seen := make(map[string]bool, len(previous))
	for _, id := range previous {
		seen[id] = true
	}

	catalog := s.catalogFor(ctx, mood, seen)

	// Music and video lookups are independent; fetch them concurrently and
	// drop whichever fails.
	var (
		wg     sync.WaitGroup
		music  []Recommendation
		videos []Recommendation
	)
	if s.music != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			music, err = s.music.ForMood(ctx, mood, maxMusic)
			if err != nil {
				s.log.WithError(err).WithField("mood", mood).Warn("music source unavailable")
				music = nil
			}
		}()
	}
	if s.video != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			videos, err = s.video.ForMood(ctx, mood, maxVideo)
			if err != nil {
				s.log.WithError(err).WithField("mood", mood).Warn("video source unavailable")
				videos = nil
			}
		}()
	}
	wg.Wait()

	mix := make([]Recommendation, 0, maxTotal)
	mix = append(mix, capped(catalog, maxCatalog)...)
	mix = append(mix, capped(music, maxMusic)...)
	mix = append(mix, capped(videos, maxVideo)...)

	if s.rng != nil {
		s.rng.Shuffle(len(mix), func(i, j int) { mix[i], mix[j] = mix[j], mix[i] })
	} else {
		rand.Shuffle(len(mix), func(i, j int) { mix[i], mix[j] = mix[j], mix[i] })
	}

	return capped(mix, maxTotal)
}

// catalogFor loads curated suggestions for the mood, filters out previously
// seen ones, and backfills from adjacent moods when too few remain.
func (s *Service) catalogFor(ctx context.Context, mood string, seen map[string]bool) []Recommendation {
	filtered := filterSeen(s.loadCatalog(ctx, mood), seen)
	if len(filtered) >= minCatalogBeforeBackfill {
		return filtered
	}

	idx := moodIndex(mood)
	if idx < 0 {
		// Unknown mood: pad with neutral suggestions.
		for _, rec := range filterSeen(s.loadCatalog(ctx, "neutral"), seen) {
			filtered = append(filtered, rec)
			if len(filtered) >= minCatalogBeforeBackfill {
				break
			}
		}
		return filtered
	}

	// Walk outward one then two steps, taking at most one suggestion per
	// adjacent mood.
	for step := 1; step <= 2; step++ {
		if lower := idx - step; lower >= 0 {
			if recs := filterSeen(s.loadCatalog(ctx, moodOrder[lower]), seen); len(recs) > 0 {
				filtered = append(filtered, recs[0])
			}
		}
		if upper := idx + step; upper < len(moodOrder) {
			if recs := filterSeen(s.loadCatalog(ctx, moodOrder[upper]), seen); len(recs) > 0 {
				filtered = append(filtered, recs[0])
			}
		}
	}
	return filtered
}

// loadCatalog prefers the configured store and falls back to the built-in
// catalog on error or when no store is set.
func (s *Service) loadCatalog(ctx context.Context, mood string) []Recommendation {
	if s.catalog == nil {
		return builtinFor(mood)
	}
	recs, err := s.catalog.ForMood(ctx, mood)
	if err != nil {
		s.log.WithError(err).WithField("mood", mood).Warn("catalog store unavailable, using builtin")
		return builtinFor(mood)
	}
	if len(recs) == 0 {
		return builtinFor(mood)
	}
	return recs
}

func filterSeen(recs []Recommendation, seen map[string]bool) []Recommendation {
	var out []Recommendation
	for _, rec := range recs {
		if !seen[rec.ID] {
			out = append(out, rec)
		}
	}
	return out
}

func capped(recs []Recommendation, n int) []Recommendation {
	if len(recs) > n {
		return recs[:n]
	}
	return recs
}

func moodIndex(mood string) int {
	for i, m := range moodOrder {
		if m == mood {
			return i
		}
	}
	return -1
}
