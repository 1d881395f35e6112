package inference

import (
	"context"
	"fmt"

	"github.com/moodmirror/go-mood-mirror/internal/engine"
)

// analyzeResponse is the wire format of the /analyze endpoint.
type analyzeResponse struct {
	Tokens []struct {
		Text    string `json:"text"`
		IsStop  bool   `json:"is_stop"`
		IsPunct bool   `json:"is_punct"`
	} `json:"tokens"`
	Entities []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	} `json:"entities"`
}

// Analyze calls the linguistic feature extractor, returning tokens with
// stopword/punctuation flags and named entities.
func (c *Client) Analyze(ctx context.Context, text string) (engine.LinguisticResult, error) {
	var resp analyzeResponse
	if err := c.post(ctx, "/analyze", text, &resp); err != nil {
		return engine.LinguisticResult{}, fmt.Errorf("analyze: %w", err)
	}

	result := engine.LinguisticResult{
		Tokens:   make([]engine.Token, len(resp.Tokens)),
		Entities: make([]engine.Entity, len(resp.Entities)),
	}
	for i, tok := range resp.Tokens {
		result.Tokens[i] = engine.Token{
			Text:        tok.Text,
			Stopword:    tok.IsStop,
			Punctuation: tok.IsPunct,
		}
	}
	for i, ent := range resp.Entities {
		result.Entities[i] = engine.Entity{Text: ent.Text, Label: ent.Label}
	}
	return result, nil
}
