// Package music provides mood-matched music recommendations backed by the
// Spotify Web API. Candidate tracks are clustered by audio features and the
// cluster closest to the mood's target profile is surfaced.
package music

import (
	"context"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/moodmirror/go-mood-mirror/internal/recommend"
)

// candidateFactor controls how many tracks are requested per returned
// recommendation, so clustering has material to work with.
const candidateFactor = 6

// market targets the Indian catalog.
const market = "IN"

// Client wraps the Spotify API client with mood-recommendation methods.
type Client struct {
	api *spotify.Client
}

// New creates a client wrapper around an already-authenticated Spotify API
// client.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// NewWithCredentials creates a client using the client-credentials flow.
// Token refresh state lives in the oauth2 token source, not in package
// globals.
func NewWithCredentials(ctx context.Context, clientID, clientSecret string) *Client {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	return New(spotify.New(config.Client(ctx)))
}

// ForMood returns up to limit music recommendations matching the mood's
// audio profile. It implements recommend.MusicSource.
func (c *Client) ForMood(ctx context.Context, mood string, limit int) ([]recommend.Recommendation, error) {
	if limit <= 0 {
		return nil, nil
	}

	params := ParamsFor(mood)

	recs, err := c.api.GetRecommendations(ctx,
		spotify.Seeds{Genres: params.Genres},
		trackAttributes(params),
		spotify.Limit(limit*candidateFactor),
		spotify.Market(market),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}
	if len(recs.Tracks) == 0 {
		return nil, nil
	}

	candidates, err := c.withAudioFeatures(ctx, recs.Tracks)
	if err != nil {
		return nil, err
	}

	selected := selectByMood(candidates, params.targetEnergy(), params.targetValence(), limit)

	out := make([]recommend.Recommendation, len(selected))
	for i, cand := range selected {
		out[i] = toRecommendation(cand.track, mood)
	}
	return out, nil
}

// withAudioFeatures pairs candidate tracks with their energy and valence.
// Tracks without available features keep the neutral 0.5/0.5 profile so
// they stay clusterable.
func (c *Client) withAudioFeatures(ctx context.Context, tracks []spotify.SimpleTrack) ([]candidate, error) {
	ids := make([]spotify.ID, len(tracks))
	indexByID := make(map[string]int, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
		indexByID[t.ID.String()] = i
	}

	candidates := make([]candidate, len(tracks))
	for i, t := range tracks {
		candidates[i] = candidate{track: t, energy: 0.5, valence: 0.5}
	}

	features, err := c.api.GetAudioFeatures(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("fetching audio features: %w", err)
	}
	for _, feat := range features {
		if feat == nil {
			continue
		}
		if idx, ok := indexByID[feat.ID.String()]; ok {
			candidates[idx].energy = float64(feat.Energy)
			candidates[idx].valence = float64(feat.Valence)
		}
	}
	return candidates, nil
}

// trackAttributes converts mood params into Spotify tunable attributes.
func trackAttributes(p Params) *spotify.TrackAttributes {
	attrs := spotify.NewTrackAttributes()
	if p.MinEnergy != nil {
		attrs = attrs.MinEnergy(*p.MinEnergy)
	}
	if p.MaxEnergy != nil {
		attrs = attrs.MaxEnergy(*p.MaxEnergy)
	}
	if p.TargetEnergy != nil {
		attrs = attrs.TargetEnergy(*p.TargetEnergy)
	}
	if p.MinValence != nil {
		attrs = attrs.MinValence(*p.MinValence)
	}
	if p.MaxValence != nil {
		attrs = attrs.MaxValence(*p.MaxValence)
	}
	if p.TargetValence != nil {
		attrs = attrs.TargetValence(*p.TargetValence)
	}
	if p.MaxTempo != nil {
		attrs = attrs.MaxTempo(*p.MaxTempo)
	}
	return attrs
}

// toRecommendation converts a Spotify track into the shared recommendation
// shape.
func toRecommendation(track spotify.SimpleTrack, mood string) recommend.Recommendation {
	artistNames := make([]string, len(track.Artists))
	for i, artist := range track.Artists {
		artistNames[i] = artist.Name
	}
	artists := strings.Join(artistNames, ", ")

	imageURL := ""
	if len(track.Album.Images) > 0 {
		imageURL = track.Album.Images[0].URL
	}

	return recommend.Recommendation{
		ID:          "spotify_" + track.ID.String(),
		Title:       fmt.Sprintf("%s by %s", track.Name, artists),
		Description: fmt.Sprintf("A song to match your %s mood. Artist: %s", mood, artists),
		Type:        "music",
		Tags:        []string{"music", "spotify", "recommended"},
		Duration:    formatDuration(int(track.Duration)),
		Link:        track.ExternalURLs["spotify"],
		ImageURL:    imageURL,
		ForMoods:    []string{mood},
	}
}

// formatDuration renders milliseconds as M:SS.
func formatDuration(ms int) string {
	seconds := (ms / 1000) % 60
	minutes := (ms / (1000 * 60)) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
