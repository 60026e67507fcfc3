package ports

import (
	"context"

	"WikiCollector/internal/domain"
)

// IdentifierResolver maps a source-language article title to its Wikidata item
// id. A missing page or a page without a linked item is reported as ok=false
// with a nil error; transport and decode problems come back as errors.
type IdentifierResolver interface {
	ResolveIdentifier(ctx context.Context, title string) (id string, ok bool, err error)
}

// EntityFetcher loads the sitelink title and date claims for a Wikidata item.
type EntityFetcher interface {
	FetchEntity(ctx context.Context, id string) (domain.EntityInfo, error)
}

// ViewCounter sums the daily pageviews of a target-language article over one
// year. An article with no pageviews record yields zero without an error.
type ViewCounter interface {
	YearlyViews(ctx context.Context, title string, year int) (int64, error)
}

// ReportWriter persists the final snapshot of collected records.
type ReportWriter interface {
	Write(path string, records []domain.ArticleRecord) error
}
