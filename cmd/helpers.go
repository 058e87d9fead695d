package cmd

import (
	"fmt"
	"net/http"

	"github.com/ziadkadry99/masterclass/internal/config"
	"github.com/ziadkadry99/masterclass/internal/content"
	"github.com/ziadkadry99/masterclass/internal/highlight"
	"github.com/ziadkadry99/masterclass/internal/logging"
	"github.com/ziadkadry99/masterclass/internal/page"
	"github.com/ziadkadry99/masterclass/internal/practice"
	"github.com/ziadkadry99/masterclass/internal/runner"
	"github.com/ziadkadry99/masterclass/internal/site"
)

// app holds everything the serve and check commands construct.
type app struct {
	cfg      *config.Config
	logger   *logging.Logger
	store    *content.Store
	renderer *page.Renderer
	catalog  *practice.Catalog
	runner   *runner.Client
	site     *site.Site
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `masterclass init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	logger, err := logging.New(string(cfg.Log.Mode), verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

func newRunner(cfg *config.Config, logger *logging.Logger) *runner.Client {
	return runner.NewClient(cfg.Runner.URL,
		runner.WithTimeout(cfg.Runner.Timeout),
		runner.WithLogger(logger.With("component", "runner")),
	)
}

// buildApp wires the content store, renderer, practice catalog, runner and
// site from cfg.
func buildApp(cfg *config.Config, logger *logging.Logger) (*app, error) {
	fetcher := content.NewFetcher(cfg.Content.Source, http.DefaultClient)
	store := content.NewStore(fetcher,
		content.WithSchemaCheck(cfg.Content.SchemaCheck),
		content.WithLogger(logger.With("component", "content")),
	)

	opts := []page.Option{page.WithLogger(logger.With("component", "render"))}
	if cfg.Highlight.Enabled {
		opts = append(opts, page.WithHighlighter(highlight.New(cfg.Highlight.Style, cfg.Highlight.Language), cfg.Highlight.Language))
	}
	if cfg.Content.SanitizeHTML {
		opts = append(opts, page.WithSanitizer(page.NewUGCSanitizer()))
	}
	renderer := page.NewRenderer(store, opts...)

	catalog, err := practice.LoadCatalog(cfg.Practice.Programs)
	if err != nil {
		return nil, fmt.Errorf("loading practice programs: %w", err)
	}

	run := newRunner(cfg, logger)

	s, err := site.New(site.Deps{
		Renderer: renderer,
		Content:  store,
		Catalog:  catalog,
		Runner:   run,
		Logger:   logger.With("component", "site"),
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		renderer: renderer,
		catalog:  catalog,
		runner:   run,
		site:     s,
	}, nil
}
