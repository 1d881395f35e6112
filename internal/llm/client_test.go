package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moodmirror/go-mood-mirror/internal/engine"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer test-key", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.ResponseFormat.Type != "json_object" {
			t.Errorf("response_format = %q, want json_object", req.ResponseFormat.Type)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %+v, want system + user", req.Messages)
		}

		resp := chatResponse{}
		resp.Choices = []struct {
			Message chatMessage `json:"message"`
		}{
			{Message: chatMessage{Role: "assistant", Content: content}},
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
}

func TestAdjust(t *testing.T) {
	server := completionServer(t, `{
		"context_analysis": "signs of exam-related pressure",
		"sentiment_score_adjustment": -0.2,
		"detected_emotions": {"fear": 0.6, "worry": 0.5},
		"cultural_factors": ["academic pressure"],
		"severity_level": "concerning"
	}`)
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	got, err := client.Adjust(context.Background(), "the exams are crushing me")
	if err != nil {
		t.Fatalf("Adjust() error = %v", err)
	}

	if got.ScoreAdjustment != -0.2 {
		t.Errorf("ScoreAdjustment = %v, want -0.2", got.ScoreAdjustment)
	}
	if got.Emotions["fear"] != 0.6 || got.Emotions["worry"] != 0.5 {
		t.Errorf("Emotions = %v, want fear 0.6 worry 0.5", got.Emotions)
	}
	if got.Severity != engine.SeverityConcerning {
		t.Errorf("Severity = %q, want concerning", got.Severity)
	}
	if len(got.CulturalFactors) != 1 {
		t.Errorf("CulturalFactors = %v, want one entry", got.CulturalFactors)
	}
}

func TestAdjustDefaultsMissingFields(t *testing.T) {
	server := completionServer(t, `{"context_analysis": "nothing remarkable"}`)
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	got, err := client.Adjust(context.Background(), "had lunch")
	if err != nil {
		t.Fatalf("Adjust() error = %v", err)
	}

	if got.ScoreAdjustment != 0 {
		t.Errorf("ScoreAdjustment = %v, want 0", got.ScoreAdjustment)
	}
	if got.Emotions == nil || len(got.Emotions) != 0 {
		t.Errorf("Emotions = %v, want empty non-nil map", got.Emotions)
	}
}

func TestAdjustMalformedContentIsAnError(t *testing.T) {
	server := completionServer(t, "I cannot answer in JSON, sorry.")
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	if _, err := client.Adjust(context.Background(), "anything"); err == nil {
		t.Fatal("Adjust() error = nil, want parse error for non-JSON content")
	}
}

func TestAdjustEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	if _, err := client.Adjust(context.Background(), "anything"); err == nil {
		t.Fatal("Adjust() error = nil, want ErrEmptyCompletion")
	}
}
