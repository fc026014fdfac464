package core

import (
	"fmt"
	"log"

	"github.com/vrsandeep/komik-api/internal/config"
	"github.com/vrsandeep/komik-api/internal/fetch"
	"github.com/vrsandeep/komik-api/internal/jobs"
	"github.com/vrsandeep/komik-api/internal/source/komikcast"
)

// Version is reported by the service index.
const Version = "1.0.0"

// App holds the core components of the application that are shared
// between the server and the CLI.
type App struct {
	Config  *config.Config
	Fetcher *fetch.Client
	Source  *komikcast.Source
	Monitor *jobs.Monitor
	Version string
}

// New loads the configuration from the working directory and wires the
// application around it.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	app := NewWithConfig(cfg)
	log.Printf("Core application setup complete. Upstream: %s", app.Source.BaseURL())
	return app, nil
}

// NewWithConfig wires the application around an already loaded config.
func NewWithConfig(cfg *config.Config) *App {
	client := fetch.New(fetch.Options{
		Timeout:          cfg.Upstream.Timeout,
		UserAgent:        cfg.Upstream.UserAgent,
		CloudflareBypass: cfg.Upstream.CloudflareBypass,
		MaxBodyBytes:     cfg.Upstream.MaxBodyBytes,
	})
	source := komikcast.New(client, komikcast.Options{
		BaseURL:       cfg.Upstream.BaseURL,
		ListTimeout:   cfg.Upstream.Timeout,
		DetailTimeout: cfg.Upstream.DetailTimeout,
	})
	return &App{
		Config:  cfg,
		Fetcher: client,
		Source:  source,
		Monitor: jobs.NewMonitor(source, cfg.Upstream.Timeout),
		Version: Version,
	}
}
