// Package llm calls an OpenAI-compatible chat completion endpoint for deep
// contextual mood analysis. The response is parsed once into a typed
// Adjustment here; downstream code never sees the raw payload.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/moodmirror/go-mood-mirror/internal/engine"
)

const (
	// DefaultBaseURL targets the OpenAI API; point it elsewhere for any
	// compatible gateway.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the completion model used for contextual analysis.
	DefaultModel = "gpt-4"

	defaultTimeout = 45 * time.Second
)

// systemPrompt fixes the analysis task. The response must be a bare JSON
// object so it can be parsed into contextualPayload.
const systemPrompt = `You are an expert in mental health analysis for Indian individuals.
Analyze the sentiment and emotional state from this text, considering Indian cultural context.
Consider family dynamics, social pressures, spiritual practices, and work culture in India.

Return ONLY a JSON object with the following structure:
{
  "context_analysis": "Brief analysis of the person's emotional state",
  "sentiment_score_adjustment": Value between -0.3 and 0.3 to adjust the sentiment score,
  "detected_emotions": {
    "emotion1": probability from 0 to 1,
    "emotion2": probability from 0 to 1
  },
  "cultural_factors": ["List of identified cultural factors affecting mood"],
  "severity_level": "normal" or "concerning" or "urgent"
}`

// ErrEmptyCompletion is returned when the service responds without any
// choices.
var ErrEmptyCompletion = errors.New("completion had no choices")

// Client is a contextual-adjustment client backed by a chat completion API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithModel overrides the completion model.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// NewClient creates a contextual-adjustment client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chat completion wire types, limited to the fields the client uses.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// contextualPayload is the JSON object the model is instructed to return.
// Absent fields fall back to their zero values, which match the documented
// neutral defaults.
type contextualPayload struct {
	ContextAnalysis          string             `json:"context_analysis"`
	SentimentScoreAdjustment float64            `json:"sentiment_score_adjustment"`
	DetectedEmotions         map[string]float64 `json:"detected_emotions"`
	CulturalFactors          []string           `json:"cultural_factors"`
	SeverityLevel            string             `json:"severity_level"`
}

// Adjust asks the model for a contextual sentiment adjustment. Any failure
// (transport, API error, unparseable content) is returned as an error for
// the engine's adapter to absorb.
func (c *Client) Adjust(ctx context.Context, text string) (engine.Adjustment, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
	}
	reqBody.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(reqBody)
	if err != nil {
		return engine.Adjustment{}, fmt.Errorf("encoding completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return engine.Adjustment{}, fmt.Errorf("creating completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return engine.Adjustment{}, fmt.Errorf("executing completion request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return engine.Adjustment{}, fmt.Errorf("reading completion response: %w", err)
	}

	var completion chatResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return engine.Adjustment{}, fmt.Errorf("parsing completion response: %w", err)
	}
	if completion.Error != nil {
		return engine.Adjustment{}, fmt.Errorf("completion API error (%s): %s", completion.Error.Type, completion.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return engine.Adjustment{}, fmt.Errorf("completion request failed: %s", resp.Status)
	}
	if len(completion.Choices) == 0 {
		return engine.Adjustment{}, ErrEmptyCompletion
	}

	var payload contextualPayload
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &payload); err != nil {
		return engine.Adjustment{}, fmt.Errorf("parsing analysis payload: %w", err)
	}

	emotions := payload.DetectedEmotions
	if emotions == nil {
		emotions = map[string]float64{}
	}

	return engine.Adjustment{
		ScoreAdjustment: payload.SentimentScoreAdjustment,
		Emotions:        emotions,
		CulturalFactors: payload.CulturalFactors,
		Severity:        engine.Severity(payload.SeverityLevel),
	}, nil
}
