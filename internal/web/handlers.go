package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/moodmirror/go-mood-mirror/internal/audio"
	"github.com/moodmirror/go-mood-mirror/internal/engine"
	"github.com/moodmirror/go-mood-mirror/internal/recommend"
	"github.com/moodmirror/go-mood-mirror/internal/report"
)

// Analyzer runs the mood pipeline for one utterance.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string, features *audio.FeatureSummary) engine.Result
}

// Recommender assembles a recommendation mix for a mood.
type Recommender interface {
	Personalized(ctx context.Context, mood string, previous []string) []recommend.Recommendation
}

// Handlers holds HTTP handlers for the API.
type Handlers struct {
	analyzer    Analyzer
	recommender Recommender
	log         *logrus.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(analyzer Analyzer, recommender Recommender, log *logrus.Logger) *Handlers {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handlers{
		analyzer:    analyzer,
		recommender: recommender,
		log:         log,
	}
}

type statusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Status reports service availability.
func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "online",
		Service: "Mood Mirror AI Service",
	})
}

// Health is the liveness endpoint.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type analyzeRequest struct {
	UserID        string                `json:"userId"`
	Transcription string                `json:"transcription"`
	AudioFeatures *audio.FeatureSummary `json:"audioFeatures,omitempty"`
}

type analyzeResponse struct {
	Transcription string              `json:"transcription"`
	Sentiment     engine.FusionResult `json:"sentiment"`
	MoodLabel     string              `json:"moodLabel"`
	MoodScore     int                 `json:"moodScore"`
}

// Analyze runs the fusion pipeline on a transcription, with optional audio
// features.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Transcription == "" {
		writeError(w, http.StatusBadRequest, "no transcription provided")
		return
	}

	result := h.analyzer.Analyze(r.Context(), req.Transcription, req.AudioFeatures)

	writeJSON(w, http.StatusOK, analyzeResponse{
		Transcription: req.Transcription,
		Sentiment:     result.Fusion,
		MoodLabel:     result.Mood.Label,
		MoodScore:     result.Mood.Score,
	})
}

type recommendationsRequest struct {
	UserID                  string   `json:"userId"`
	MoodLabel               string   `json:"moodLabel"`
	PreviousRecommendations []string `json:"previousRecommendations,omitempty"`
}

type recommendationsResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// Recommendations returns a personalized suggestion mix for a mood.
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MoodLabel == "" {
		writeError(w, http.StatusBadRequest, "no moodLabel provided")
		return
	}

	recs := h.recommender.Personalized(r.Context(), req.MoodLabel, req.PreviousRecommendations)

	writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: recs})
}

type reportRequest struct {
	UserID                   string             `json:"userId"`
	WeekNumber               int                `json:"weekNumber"`
	Year                     int                `json:"year"`
	StartDate                string             `json:"startDate"`
	EndDate                  string             `json:"endDate"`
	MoodEntries              []report.Entry     `json:"moodEntries"`
	CompletedRecommendations []report.Completed `json:"completedRecommendations"`
	Streak                   report.Streak      `json:"streak"`
}

type reportResponse struct {
	ReportID  string         `json:"reportId"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Summary   report.Summary `json:"summary"`
}

// ReportSummary aggregates a week of mood entries into the report summary.
func (h *Handlers) ReportSummary(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "no userId provided")
		return
	}

	summary := report.Summarize(req.MoodEntries, req.CompletedRecommendations, req.Streak)

	writeJSON(w, http.StatusOK, reportResponse{
		ReportID:  uuid.NewString(),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Summary:   summary,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
