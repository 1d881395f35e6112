package db

import (
	"context"
	"fmt"

	"github.com/moodmirror/go-mood-mirror/internal/recommend"
)

// Catalog adapts the recommendation repository to the shape the
// recommendation service consumes. It implements recommend.CatalogStore.
type Catalog struct {
	repo *RecommendationRepository
}

// Catalog returns a catalog store backed by the recommendations table.
func (db *DB) Catalog() *Catalog {
	return &Catalog{repo: db.Recommendations()}
}

// ForMood returns the curated suggestions stored for a mood.
func (c *Catalog) ForMood(ctx context.Context, mood string) ([]recommend.Recommendation, error) {
	stored, err := c.repo.ForMood(ctx, mood)
	if err != nil {
		return nil, err
	}

	recs := make([]recommend.Recommendation, len(stored))
	for i, s := range stored {
		recs[i] = toShared(s)
	}
	return recs, nil
}

// Seed upserts the built-in catalog so a fresh database serves the same
// suggestions as the in-memory fallback.
func (c *Catalog) Seed(ctx context.Context) error {
	builtin := recommend.Builtin()
	stored := make([]StoredRecommendation, len(builtin))
	for i, rec := range builtin {
		stored[i] = toStored(rec)
	}
	if err := c.repo.UpsertBatch(ctx, stored); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	return nil
}

func toShared(s StoredRecommendation) recommend.Recommendation {
	rec := recommend.Recommendation{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Type:        s.Type,
		Tags:        s.Tags,
		Duration:    s.Duration,
		ForMoods:    s.ForMoods,
	}
	if s.Link != nil {
		rec.Link = *s.Link
	}
	if s.ImageURL != nil {
		rec.ImageURL = *s.ImageURL
	}
	return rec
}

func toStored(rec recommend.Recommendation) StoredRecommendation {
	s := StoredRecommendation{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Type:        rec.Type,
		Tags:        rec.Tags,
		Duration:    rec.Duration,
		ForMoods:    rec.ForMoods,
	}
	if rec.Link != "" {
		s.Link = &rec.Link
	}
	if rec.ImageURL != "" {
		s.ImageURL = &rec.ImageURL
	}
	return s
}
