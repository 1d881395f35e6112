package video

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"
)

func firstQuery(queries []string) string { return queries[0] }

func searchServer(t *testing.T, items []searchItem, checkQuery func(url.Values)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if checkQuery != nil {
			checkQuery(r.URL.Query())
		}
		json.NewEncoder(w).Encode(searchResponse{Items: items})
	}))
}

func TestForMood(t *testing.T) {
	items := []searchItem{
		{
			ID: searchID{VideoID: "abc123"},
			Snippet: snippet{
				Title:       "10 Minute Guided Meditation for Anxiety",
				Description: "A calming session.",
				Thumbnails:  thumbnails{High: thumbnail{URL: "https://img.example/abc123.jpg"}},
			},
		},
		{
			ID: searchID{VideoID: "def456"},
			Snippet: snippet{
				Title:       "Pranayama Breathing Basics",
				Description: "Learn traditional breathing.",
			},
		},
	}

	var gotQuery string
	srv := searchServer(t, items, func(q url.Values) {
		gotQuery = q.Get("q")
		if q.Get("regionCode") != "IN" {
			t.Errorf("regionCode = %q, want IN", q.Get("regionCode"))
		}
		if q.Get("relevanceLanguage") != "hi,en" {
			t.Errorf("relevanceLanguage = %q, want hi,en", q.Get("relevanceLanguage"))
		}
		if q.Get("type") != "video" {
			t.Errorf("type = %q, want video", q.Get("type"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", q.Get("key"))
		}
		if q.Get("maxResults") != "2" {
			t.Errorf("maxResults = %q, want 2", q.Get("maxResults"))
		}
	})
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL), WithQueryPicker(firstQuery))

	got, err := c.ForMood(context.Background(), "anxious", 2)
	if err != nil {
		t.Fatalf("ForMood: %v", err)
	}
	if gotQuery != "anxiety relief meditation hindi" {
		t.Errorf("search query = %q, want first anxious query", gotQuery)
	}
	if len(got) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(got))
	}

	first := got[0]
	if first.ID != "youtube_abc123" {
		t.Errorf("ID = %q, want youtube_abc123", first.ID)
	}
	if first.Type != "meditation" {
		t.Errorf("Type = %q, want meditation from title keywords", first.Type)
	}
	if first.Link != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("Link = %q", first.Link)
	}
	if first.ImageURL != "https://img.example/abc123.jpg" {
		t.Errorf("ImageURL = %q", first.ImageURL)
	}

	if got[1].Type != "breathing" {
		t.Errorf("second Type = %q, want breathing", got[1].Type)
	}
}

func TestForMoodUnknownMoodUsesNeutralQueries(t *testing.T) {
	var gotQuery string
	srv := searchServer(t, nil, func(q url.Values) { gotQuery = q.Get("q") })
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL), WithQueryPicker(firstQuery))

	if _, err := c.ForMood(context.Background(), "perplexed", 3); err != nil {
		t.Fatalf("ForMood: %v", err)
	}
	if gotQuery != "mindfulness meditation hindi" {
		t.Errorf("search query = %q, want first neutral query", gotQuery)
	}
}

func TestForMoodTruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("a", 150)
	srv := searchServer(t, []searchItem{
		{ID: searchID{VideoID: "v1"}, Snippet: snippet{Title: "Ambient Mix", Description: long}},
	}, nil)
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL), WithQueryPicker(firstQuery))

	got, err := c.ForMood(context.Background(), "neutral", 1)
	if err != nil {
		t.Fatalf("ForMood: %v", err)
	}
	if want := strings.Repeat("a", 100) + "..."; got[0].Description != want {
		t.Errorf("description length = %d, want truncated to 103", len(got[0].Description))
	}
}

func TestForMoodTruncatesOnRuneBoundaries(t *testing.T) {
	long := strings.Repeat("ध्यान और योग ", 20)
	srv := searchServer(t, []searchItem{
		{ID: searchID{VideoID: "v1"}, Snippet: snippet{Title: "Dhyan Session", Description: long}},
	}, nil)
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL), WithQueryPicker(firstQuery))

	got, err := c.ForMood(context.Background(), "calm", 1)
	if err != nil {
		t.Fatalf("ForMood: %v", err)
	}

	desc := got[0].Description
	if !utf8.ValidString(desc) {
		t.Errorf("truncated description is not valid UTF-8: %q", desc)
	}
	if want := string([]rune(long)[:100]) + "..."; desc != want {
		t.Errorf("description = %q, want first 100 runes plus ellipsis", desc)
	}
}

func TestForMoodErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 403}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("bad-key", WithBaseURL(srv.URL), WithQueryPicker(firstQuery))

	if _, err := c.ForMood(context.Background(), "calm", 3); err == nil {
		t.Fatal("ForMood returned nil error for 403 response")
	}
}

func TestClassifyTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Guided Meditation for Sleep", "meditation"},
		{"Morning Yoga Flow", "activity"},
		{"Pranayama for Beginners", "breathing"},
		{"Positive Affirmations Hindi", "affirmation"},
		{"Peaceful Ragas Collection", "video"},
	}
	for _, tt := range tests {
		if got := classifyTitle(tt.title); got != tt.want {
			t.Errorf("classifyTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
