package titles

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"WikiCollector/internal/titlesource"
)

const defaultListSelector = "#mw-pages li a"

// ListPageSource scrapes article titles from the link list of a wiki list or
// category page.
type ListPageSource struct {
	selector  string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

var _ titlesource.Source = (*ListPageSource)(nil)

// NewListPageSource wires an HTTP client; the selector defaults to the link
// list of MediaWiki category pages.
func NewListPageSource(selector, userAgent string, client *http.Client, logger *slog.Logger) *ListPageSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if selector == "" {
		selector = defaultListSelector
	}
	return &ListPageSource{
		selector:  selector,
		userAgent: userAgent,
		client:    client,
		logger:    logger,
	}
}

// Name identifies the strategy inside the registry.
func (l *ListPageSource) Name() string {
	return "listpage"
}

// Titles fetches the page and collects the text of every matched link,
// deduplicated, in document order.
func (l *ListPageSource) Titles(ctx context.Context, location string) ([]string, error) {
	doc, err := l.fetchDocument(ctx, location)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	var result []string
	doc.Find(l.selector).Each(func(_ int, link *goquery.Selection) {
		title := strings.TrimSpace(link.Text())
		if title == "" {
			if attr, exists := link.Attr("title"); exists {
				title = strings.TrimSpace(attr)
			}
		}
		if title == "" {
			return
		}
		if _, ok := seen[title]; ok {
			return
		}
		seen[title] = struct{}{}
		result = append(result, title)
	})

	l.debug("list page scraped", "url", location, "titles", len(result))
	return result, nil
}

func (l *ListPageSource) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request list page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func (l *ListPageSource) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}
