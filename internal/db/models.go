package db

import "time"

// StoredRecommendation represents a curated wellness suggestion row.
type StoredRecommendation struct {
	ID          string
	Title       string
	Description string
	Type        string
	Tags        []string
	Duration    string
	Link        *string // nullable
	ImageURL    *string // nullable
	ForMoods    []string
	CreatedAt   time.Time
}
