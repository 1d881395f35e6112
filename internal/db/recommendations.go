package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecommendationRepository handles curated recommendation rows.
type RecommendationRepository struct {
	pool *pgxpool.Pool
}

// Get retrieves a recommendation by ID.
func (r *RecommendationRepository) Get(ctx context.Context, id string) (*StoredRecommendation, error) {
	query := `
		SELECT id, title, description, type, tags, duration, link, image_url, for_moods, created_at
		FROM recommendations
		WHERE id = $1
	`
	var rec StoredRecommendation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.Title,
		&rec.Description,
		&rec.Type,
		&rec.Tags,
		&rec.Duration,
		&rec.Link,
		&rec.ImageURL,
		&rec.ForMoods,
		&rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying recommendation: %w", err)
	}
	return &rec, nil
}

// ForMood retrieves all curated recommendations tagged for a mood, oldest
// first so IDs come back in seed order.
func (r *RecommendationRepository) ForMood(ctx context.Context, mood string) ([]StoredRecommendation, error) {
	query := `
		SELECT id, title, description, type, tags, duration, link, image_url, for_moods, created_at
		FROM recommendations
		WHERE $1 = ANY(for_moods)
		ORDER BY created_at, id
	`
	rows, err := r.pool.Query(ctx, query, mood)
	if err != nil {
		return nil, fmt.Errorf("querying recommendations for mood: %w", err)
	}
	defer rows.Close()

	var recs []StoredRecommendation
	for rows.Next() {
		var rec StoredRecommendation
		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Description,
			&rec.Type,
			&rec.Tags,
			&rec.Duration,
			&rec.Link,
			&rec.ImageURL,
			&rec.ForMoods,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// UpsertBatch inserts or updates multiple recommendations in one round trip.
// Used to seed the curated catalog at startup.
func (r *RecommendationRepository) UpsertBatch(ctx context.Context, recs []StoredRecommendation) error {
	if len(recs) == 0 {
		return nil
	}

	query := `
		INSERT INTO recommendations (id, title, description, type, tags, duration, link, image_url, for_moods, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			type = EXCLUDED.type,
			tags = EXCLUDED.tags,
			duration = EXCLUDED.duration,
			link = EXCLUDED.link,
			image_url = EXCLUDED.image_url,
			for_moods = EXCLUDED.for_moods
	`

	now := time.Now()
	batch := &pgx.Batch{}
	for _, rec := range recs {
		batch.Queue(query,
			rec.ID,
			rec.Title,
			rec.Description,
			rec.Type,
			rec.Tags,
			rec.Duration,
			rec.Link,
			rec.ImageURL,
			rec.ForMoods,
			now,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range recs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch upserting recommendations: %w", err)
		}
	}
	return nil
}
