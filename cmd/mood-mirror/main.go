// Command mood-mirror runs the Mood Mirror AI service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/moodmirror/go-mood-mirror/internal/config"
	"github.com/moodmirror/go-mood-mirror/internal/db"
	"github.com/moodmirror/go-mood-mirror/internal/engine"
	"github.com/moodmirror/go-mood-mirror/internal/inference"
	"github.com/moodmirror/go-mood-mirror/internal/llm"
	"github.com/moodmirror/go-mood-mirror/internal/music"
	"github.com/moodmirror/go-mood-mirror/internal/recommend"
	"github.com/moodmirror/go-mood-mirror/internal/video"
	"github.com/moodmirror/go-mood-mirror/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx := context.Background()

	// Signal sources. The contextual analyzer is optional; the engine
	// degrades to neutral defaults when it is absent or failing.
	infClient := inference.NewClient(cfg.InferenceURL)

	var contextual engine.ContextualAnalyzer
	if cfg.HasOpenAI() {
		opts := []llm.Option{}
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, llm.WithBaseURL(cfg.OpenAIBaseURL))
		}
		if cfg.OpenAIModel != "" {
			opts = append(opts, llm.WithModel(cfg.OpenAIModel))
		}
		contextual = llm.NewClient(cfg.OpenAIAPIKey, opts...)
	} else {
		log.Warn("no OpenAI key configured, contextual analysis disabled")
	}

	eng := engine.New(infClient, infClient, infClient, contextual, log)

	// Recommendation sources, all optional.
	recOpts := []recommend.Option{}

	if cfg.HasDatabase() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		catalog := database.Catalog()
		if err := catalog.Seed(ctx); err != nil {
			return fmt.Errorf("seeding recommendation catalog: %w", err)
		}
		recOpts = append(recOpts, recommend.WithCatalog(catalog))
	} else {
		log.Info("no database configured, serving built-in catalog")
	}

	if cfg.HasSpotify() {
		spotifyClient := music.NewWithCredentials(ctx, cfg.SpotifyClientID, cfg.SpotifyClientSecret)
		recOpts = append(recOpts, recommend.WithMusic(spotifyClient))
	} else {
		log.Info("no Spotify credentials configured, music recommendations disabled")
	}

	if cfg.HasYouTube() {
		recOpts = append(recOpts, recommend.WithVideo(video.NewClient(cfg.YouTubeAPIKey)))
	} else {
		log.Info("no YouTube key configured, video recommendations disabled")
	}

	recommender := recommend.NewService(log, recOpts...)

	server := web.NewServer(web.ServerConfig{
		Addr:        cfg.Addr,
		Analyzer:    eng,
		Recommender: recommender,
		Log:         log,
	})

	return server.Run()
}
