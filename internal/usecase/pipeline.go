package usecase

import (
	"context"
	"log/slog"
	"time"

	"WikiCollector/internal/domain"
	"WikiCollector/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Resolver ports.IdentifierResolver
	Entities ports.EntityFetcher
	Views    ports.ViewCounter
	Delay    time.Duration
	Year     int
	Logger   *slog.Logger
}

// Pipeline implements the per-title collection workflow: title to Wikidata
// item, item to entity info, target title to yearly pageviews.
type Pipeline struct {
	resolver ports.IdentifierResolver
	entities ports.EntityFetcher
	views    ports.ViewCounter
	delay    time.Duration
	year     int
	logger   *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		resolver: deps.Resolver,
		entities: deps.Entities,
		views:    deps.Views,
		delay:    deps.Delay,
		year:     deps.Year,
		logger:   deps.Logger,
	}
}

// Process walks the titles in input order and emits one record per fully
// resolved title. Every per-title failure is absorbed here: the title is
// skipped (or its view count zeroed) and the run continues. A short pause
// separates consecutive lookups out of courtesy to the upstream services.
func (p *Pipeline) Process(ctx context.Context, titles []string) []domain.ArticleRecord {
	records := make([]domain.ArticleRecord, 0, len(titles))
	total := len(titles)

	for i, title := range titles {
		p.info("processing", "position", i+1, "total", total, "title", title)

		id, ok, err := p.resolver.ResolveIdentifier(ctx, title)
		if err != nil {
			p.logError("identifier lookup failed", "title", title, "error", err)
			continue
		}
		if !ok {
			p.warn("no wikidata item", "title", title)
			continue
		}

		info, err := p.entities.FetchEntity(ctx, id)
		if err != nil {
			p.logError("entity fetch failed", "title", title, "id", id, "error", err)
			continue
		}
		if info.TargetTitle == "" {
			p.warn("no english article", "title", title, "id", id)
			continue
		}

		views, err := p.views.YearlyViews(ctx, info.TargetTitle, p.year)
		if err != nil {
			p.logError("pageviews fetch failed", "title", info.TargetTitle, "error", err)
			views = 0
		}

		p.info("collected", "title", title, "id", id, "english", info.TargetTitle, "views", views)
		records = append(records, domain.ArticleRecord{
			SourceTitle: title,
			StartDate:   dateString(info.Start),
			EndDate:     dateString(info.End),
			TargetTitle: info.TargetTitle,
			PageViews:   views,
		})

		if p.delay > 0 && i+1 < total {
			time.Sleep(p.delay)
		}
	}

	p.info("collection finished", "processed", len(records), "total", total)
	return records
}

func dateString(d *domain.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Pipeline) logError(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}
