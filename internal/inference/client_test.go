package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// fastRetries swaps the backoff for test-sized delays.
func fastRetries(c *Client) *Client {
	c.retryDelays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
	return c
}

func newTestServer(t *testing.T, path string, status int, body any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			t.Errorf("request path = %q, want %q", r.URL.Path, path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("request method = %q, want POST", r.Method)
		}

		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request body: %v", err)
		}

		w.WriteHeader(status)
		if body != nil {
			if err := json.NewEncoder(w).Encode(body); err != nil {
				t.Errorf("encoding response: %v", err)
			}
		}
	}))
}

func TestSentiment(t *testing.T) {
	server := newTestServer(t, "/sentiment", http.StatusOK, classificationResponse{
		Label: "NEGATIVE",
		Score: 0.87,
	})
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Sentiment(context.Background(), "rough week at the office")
	if err != nil {
		t.Fatalf("Sentiment() error = %v", err)
	}

	if got.Label != "NEGATIVE" {
		t.Errorf("Label = %q, want NEGATIVE", got.Label)
	}
	if got.Confidence != 0.87 {
		t.Errorf("Confidence = %v, want 0.87", got.Confidence)
	}
}

func TestEmotion(t *testing.T) {
	server := newTestServer(t, "/emotion", http.StatusOK, classificationResponse{
		Label: "joy",
		Score: 0.91,
	})
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Emotion(context.Background(), "what a wonderful surprise")
	if err != nil {
		t.Fatalf("Emotion() error = %v", err)
	}

	if got.Label != "joy" || got.Confidence != 0.91 {
		t.Errorf("got %+v, want joy/0.91", got)
	}
}

func TestAnalyze(t *testing.T) {
	server := newTestServer(t, "/analyze", http.StatusOK, map[string]any{
		"tokens": []map[string]any{
			{"text": "feeling", "is_stop": false, "is_punct": false},
			{"text": "the", "is_stop": true, "is_punct": false},
			{"text": ".", "is_stop": false, "is_punct": true},
		},
		"entities": []map[string]any{
			{"text": "Diwali", "label": "EVENT"},
		},
	})
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Analyze(context.Background(), "feeling the Diwali spirit.")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(got.Tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(got.Tokens))
	}
	if got.Tokens[0].Text != "feeling" || got.Tokens[0].Stopword || got.Tokens[0].Punctuation {
		t.Errorf("Tokens[0] = %+v, want plain token 'feeling'", got.Tokens[0])
	}
	if !got.Tokens[1].Stopword {
		t.Error("Tokens[1].Stopword = false, want true")
	}
	if !got.Tokens[2].Punctuation {
		t.Error("Tokens[2].Punctuation = false, want true")
	}
	if len(got.Entities) != 1 || got.Entities[0].Label != "EVENT" {
		t.Errorf("Entities = %+v, want one EVENT", got.Entities)
	}
}

func TestErrorStatusSurfacesAsError(t *testing.T) {
	server := newTestServer(t, "/sentiment", http.StatusInternalServerError, nil)
	defer server.Close()

	client := fastRetries(NewClient(server.URL))
	if _, err := client.Sentiment(context.Background(), "anything"); err == nil {
		t.Fatal("Sentiment() error = nil, want non-nil on persistent 500")
	}
}

func TestTransientErrorIsRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(classificationResponse{Label: "POSITIVE", Score: 0.8})
	}))
	defer server.Close()

	client := fastRetries(NewClient(server.URL))
	got, err := client.Sentiment(context.Background(), "better late than never")
	if err != nil {
		t.Fatalf("Sentiment() error = %v, want success after retries", err)
	}
	if got.Label != "POSITIVE" {
		t.Errorf("Label = %q, want POSITIVE", got.Label)
	}
	if calls.Load() != 3 {
		t.Errorf("server received %d calls, want 3", calls.Load())
	}
}

func TestRetriesAreBounded(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := fastRetries(NewClient(server.URL))
	if _, err := client.Sentiment(context.Background(), "anything"); err == nil {
		t.Fatal("Sentiment() error = nil, want non-nil after exhausted retries")
	}
	if calls.Load() != 4 {
		t.Errorf("server received %d calls, want 4 (1 attempt + 3 retries)", calls.Load())
	}
}

func TestClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := fastRetries(NewClient(server.URL))
	if _, err := client.Sentiment(context.Background(), "anything"); err == nil {
		t.Fatal("Sentiment() error = nil, want non-nil on 400")
	}
	if calls.Load() != 1 {
		t.Errorf("server received %d calls, want 1 (400 is not retryable)", calls.Load())
	}
}
