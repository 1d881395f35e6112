package inference

import (
	"context"
	"fmt"

	"github.com/moodmirror/go-mood-mirror/internal/engine"
)

// classificationResponse is the wire format shared by the binary sentiment
// and top-1 emotion endpoints.
type classificationResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Sentiment calls the binary POSITIVE/NEGATIVE classifier.
func (c *Client) Sentiment(ctx context.Context, text string) (engine.SentimentResult, error) {
	var resp classificationResponse
	if err := c.post(ctx, "/sentiment", text, &resp); err != nil {
		return engine.SentimentResult{}, fmt.Errorf("sentiment: %w", err)
	}
	return engine.SentimentResult{Label: resp.Label, Confidence: resp.Score}, nil
}

// Emotion calls the multi-class emotion classifier and returns its single
// best label.
func (c *Client) Emotion(ctx context.Context, text string) (engine.EmotionResult, error) {
	var resp classificationResponse
	if err := c.post(ctx, "/emotion", text, &resp); err != nil {
		return engine.EmotionResult{}, fmt.Errorf("emotion: %w", err)
	}
	return engine.EmotionResult{Label: resp.Label, Confidence: resp.Score}, nil
}
