package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"WikiCollector/internal/config"
	"WikiCollector/internal/infrastructure/pageviews"
	"WikiCollector/internal/infrastructure/titles"
	"WikiCollector/internal/infrastructure/wikidata"
	"WikiCollector/internal/infrastructure/wikipedia"
	"WikiCollector/internal/logging"
	"WikiCollector/internal/ports"
	"WikiCollector/internal/report"
	"WikiCollector/internal/titlesource"
	"WikiCollector/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *titlesource.Registry
	pipeline *usecase.Pipeline
	writer   ports.ReportWriter
}

// New builds a minimal runnable application instance. A single HTTP client
// with a fixed timeout and user agent is shared by every upstream call.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout()}

	registry := titlesource.NewRegistry()
	registry.Register(titles.NewFileSource())
	registry.Register(titles.NewListPageSource(
		cfg.Source.ListSelector,
		cfg.HTTP.UserAgent,
		httpClient,
		baseLogger.With("component", "source.listpage"),
	))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Resolver: wikipedia.NewClient(cfg.Wikipedia.APIURL, cfg.HTTP.UserAgent, httpClient),
		Entities: wikidata.NewClient(cfg.Wikidata.EntityDataURL, cfg.Wikidata.TargetSite, cfg.HTTP.UserAgent, httpClient),
		Views:    pageviews.NewClient(cfg.Pageviews, cfg.HTTP.UserAgent, httpClient, baseLogger.With("component", "pageviews")),
		Delay:    cfg.Pipeline.Delay(),
		Year:     cfg.Pipeline.Year,
		Logger:   baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		registry: registry,
		pipeline: pipeline,
		writer:   report.NewWriter(),
	}
}

// Run loads the titles, collects a record per resolvable title, and writes
// the snapshot. File and source errors abort the run; per-title failures are
// absorbed inside the pipeline.
func (a *Application) Run(ctx context.Context, input, output string) error {
	source, err := a.registry.Resolve(sourceName(input))
	if err != nil {
		return err
	}

	titleList, err := source.Titles(ctx, input)
	if err != nil {
		return fmt.Errorf("load titles: %w", err)
	}
	a.logger.Info("titles loaded", "count", len(titleList), "input", input)

	records := a.pipeline.Process(ctx, titleList)

	if err := a.writer.Write(output, records); err != nil {
		return err
	}
	a.logger.Info("snapshot written", "output", output, "records", len(records))

	return nil
}

func sourceName(location string) string {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return "listpage"
	}
	return "file"
}
