// Package video fetches mood-matched wellness videos from the YouTube Data
// API. Each mood maps to a set of search queries tuned for Hindi and English
// content.
package video

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/moodmirror/go-mood-mirror/internal/recommend"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3/search"
	userAgent      = "mood-mirror/1.0"
)

// maxDescription caps video descriptions in recommendations, in runes.
const maxDescription = 100

// moodQueries maps each mood to its YouTube search queries. One is picked at
// random per request so repeat lookups surface different content.
var moodQueries = map[string][]string{
	"joyful":    {"uplifting Indian music", "happy bollywood dance", "joyful yoga"},
	"happy":     {"positive affirmations hindi", "happy bollywood songs", "cheerful bhajans"},
	"calm":      {"peaceful ragas", "calming Indian flute music", "nature sounds India"},
	"relaxed":   {"guided relaxation hindi", "gentle yoga", "relaxing Indian classical music"},
	"neutral":   {"mindfulness meditation hindi", "ambient music", "breathing exercises yoga"},
	"anxious":   {"anxiety relief meditation hindi", "pranayama breathing techniques", "calming mantra chanting"},
	"stressed":  {"stress relief yoga nidra", "guided imagery hindi", "indian classical for stress"},
	"sad":       {"uplifting bhajans", "motivational speeches hindi", "self-compassion meditation"},
	"depressed": {"depression relief meditation hindi", "positive affirmations indian", "light therapy music"},
}

// Client is a YouTube Data API search client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	pickQuery  func(queries []string) string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the search endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithQueryPicker overrides the random query selection, for deterministic
// tests.
func WithQueryPicker(pick func(queries []string) string) Option {
	return func(c *Client) { c.pickQuery = pick }
}

// NewClient creates a YouTube search client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		pickQuery: func(queries []string) string {
			return queries[rand.Intn(len(queries))]
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ForMood searches for up to limit videos matching the mood. Unknown moods
// use the neutral queries. It implements recommend.VideoSource.
func (c *Client) ForMood(ctx context.Context, mood string, limit int) ([]recommend.Recommendation, error) {
	if limit <= 0 {
		return nil, nil
	}

	queries, ok := moodQueries[mood]
	if !ok {
		queries = moodQueries["neutral"]
	}
	query := c.pickQuery(queries)

	params := url.Values{
		"part":              {"snippet"},
		"q":                 {query},
		"maxResults":        {strconv.Itoa(limit)},
		"type":              {"video"},
		"relevanceLanguage": {"hi,en"},
		"regionCode":        {"IN"},
		"key":               {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("youtube search returned %d: %s", resp.StatusCode, body)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	recs := make([]recommend.Recommendation, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		recs = append(recs, toRecommendation(item, mood))
	}
	return recs, nil
}

// toRecommendation converts one search result into the shared recommendation
// shape.
func toRecommendation(item searchItem, mood string) recommend.Recommendation {
	videoType := classifyTitle(item.Snippet.Title)

	description := item.Snippet.Description
	// Truncate on rune boundaries; Hindi descriptions are multi-byte.
	if runes := []rune(description); len(runes) > maxDescription {
		description = string(runes[:maxDescription]) + "..."
	}

	return recommend.Recommendation{
		ID:          "youtube_" + item.ID.VideoID,
		Title:       item.Snippet.Title,
		Description: description,
		Type:        videoType,
		Tags:        []string{"video", "youtube", videoType},
		Duration:    "5-10 min",
		Link:        "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		ImageURL:    item.Snippet.Thumbnails.High.URL,
		ForMoods:    []string{mood},
	}
}

// classifyTitle buckets a video by keywords in its title.
func classifyTitle(title string) string {
	lower := strings.ToLower(title)
	switch {
	case containsAny(lower, "meditation", "mindfulness", "guided"):
		return "meditation"
	case containsAny(lower, "yoga", "exercise", "workout"):
		return "activity"
	case containsAny(lower, "breathing", "pranayama"):
		return "breathing"
	case containsAny(lower, "affirmation", "positive"):
		return "affirmation"
	default:
		return "video"
	}
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
