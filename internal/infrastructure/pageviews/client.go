package pageviews

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"WikiCollector/internal/config"
	"WikiCollector/internal/ports"
)

// Client sums daily view counts from the Wikimedia per-article pageviews API.
type Client struct {
	apiURL    string
	project   string
	access    string
	agent     string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
	now       func() time.Time
}

var _ ports.ViewCounter = (*Client)(nil)

// NewClient builds a client from configuration.
func NewClient(cfg config.PageviewsConfig, userAgent string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		apiURL:    strings.TrimSuffix(cfg.APIURL, "/"),
		project:   cfg.Project,
		access:    cfg.Access,
		agent:     cfg.Agent,
		userAgent: userAgent,
		http:      httpClient,
		logger:    logger,
		now:       time.Now,
	}
}

// YearlyViews fetches daily view counts over the year's window and sums them.
// A title with no pageviews record yields (0, nil); other failures yield
// (0, err) for the caller to log.
func (c *Client) YearlyViews(ctx context.Context, title string, year int) (int64, error) {
	start, end := yearWindow(year, c.now().UTC())
	endpoint := fmt.Sprintf("%s/%s/%s/%s/%s/daily/%s/%s",
		c.apiURL, c.project, c.access, c.agent, pathToken(title), start, end)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request pageviews for %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.notice("no pageviews record", "title", title, "year", year)
		return 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("pageviews returned %s", resp.Status)
	}

	var payload viewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	var total int64
	for _, item := range payload.Items {
		total += item.Views
	}
	return total, nil
}

// yearWindow returns the YYYYMMDD range bounds for the requested year. The
// current year ends at yesterday since full-year data is not available yet.
func yearWindow(year int, now time.Time) (string, string) {
	start := fmt.Sprintf("%04d0101", year)
	if year != now.Year() {
		return start, fmt.Sprintf("%04d1231", year)
	}

	yesterday := now.AddDate(0, 0, -1)
	if yesterday.Year() < year {
		// Running on January 1: degenerate one-day window.
		return start, start
	}
	return start, yesterday.Format("20060102")
}

// pathToken makes a title safe for use as a path segment. Spaces become
// underscores per the pageviews API convention, then the whole segment is
// escaped.
func pathToken(title string) string {
	return url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

func (c *Client) notice(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

type viewsResponse struct {
	Items []struct {
		Views int64 `json:"views"`
	} `json:"items"`
}
