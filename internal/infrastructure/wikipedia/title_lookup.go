package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"WikiCollector/internal/ports"
)

// A page id of -1 is the MediaWiki sentinel for a title that does not exist.
const missingPageID = "-1"

// Client resolves source-language article titles to Wikidata item ids via the
// MediaWiki action API.
type Client struct {
	apiURL    string
	userAgent string
	http      *http.Client
}

var _ ports.IdentifierResolver = (*Client)(nil)

// NewClient creates a reusable lookup client.
func NewClient(apiURL, userAgent string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		apiURL:    apiURL,
		userAgent: userAgent,
		http:      httpClient,
	}
}

// ResolveIdentifier queries pageprops for the exact title and extracts the
// linked wikibase item. Missing pages and pages without an item come back as
// ok=false with a nil error.
func (c *Client) ResolveIdentifier(ctx context.Context, title string) (string, bool, error) {
	query := url.Values{}
	query.Set("action", "query")
	query.Set("titles", title)
	query.Set("prop", "pageprops")
	query.Set("ppprop", "wikibase_item")
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("request title %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("wikipedia returned %s", resp.Status)
	}

	var payload queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false, fmt.Errorf("decode response: %w", err)
	}

	for pageID, page := range payload.Query.Pages {
		if pageID == missingPageID {
			continue
		}
		if page.PageProps.WikibaseItem != "" {
			return page.PageProps.WikibaseItem, true, nil
		}
	}

	return "", false, nil
}

type queryResponse struct {
	Query struct {
		Pages map[string]struct {
			PageProps struct {
				WikibaseItem string `json:"wikibase_item"`
			} `json:"pageprops"`
		} `json:"pages"`
	} `json:"query"`
}
