package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"WikiCollector/internal/domain"
	"WikiCollector/internal/ports"
)

// Wikidata property codes used by the date fallback chain.
const (
	propStartTime   = "P580"
	propEndTime     = "P582"
	propPointInTime = "P585"
	propInception   = "P571"
	propDissolved   = "P576"
)

// Client fetches entity records and resolves sitelink titles and start/end
// dates from their claims.
type Client struct {
	entityDataURL string
	targetSite    string
	userAgent     string
	http          *http.Client
}

var _ ports.EntityFetcher = (*Client)(nil)

// NewClient creates a reusable entity client. targetSite selects the sitelink
// to map to, e.g. "enwiki".
func NewClient(entityDataURL, targetSite, userAgent string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		entityDataURL: strings.TrimSuffix(entityDataURL, "/"),
		targetSite:    targetSite,
		userAgent:     userAgent,
		http:          httpClient,
	}
}

// FetchEntity loads the entity record and resolves the target-language title
// plus start/end dates. The date chain, each step applied only when the
// previous produced nothing:
//  1. start time (P580) and end time (P582)
//  2. point in time (P585), assigned to both ends when neither is set
//  3. inception (P571) for a still-missing start
//  4. dissolution (P576) for a still-missing end
func (c *Client) FetchEntity(ctx context.Context, id string) (domain.EntityInfo, error) {
	endpoint := fmt.Sprintf("%s/%s.json", c.entityDataURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.EntityInfo{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.EntityInfo{}, fmt.Errorf("request entity %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.EntityInfo{}, fmt.Errorf("wikidata returned %s", resp.Status)
	}

	var payload entityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.EntityInfo{}, fmt.Errorf("decode response: %w", err)
	}

	entity, ok := payload.Entities[id]
	if !ok {
		return domain.EntityInfo{}, fmt.Errorf("entity %s missing from response", id)
	}

	info := domain.EntityInfo{}
	if link, ok := entity.Sitelinks[c.targetSite]; ok {
		info.TargetTitle = link.Title
	}

	info.Start = claimDate(entity.Claims[propStartTime])
	info.End = claimDate(entity.Claims[propEndTime])

	if info.Start == nil && info.End == nil {
		if point := claimDate(entity.Claims[propPointInTime]); point != nil {
			info.Start = point
			info.End = point
		}
	}
	if info.Start == nil {
		info.Start = claimDate(entity.Claims[propInception])
	}
	if info.End == nil {
		info.End = claimDate(entity.Claims[propDissolved])
	}

	return info, nil
}

type entityResponse struct {
	Entities map[string]entity `json:"entities"`
}

type entity struct {
	Claims    map[string][]claim  `json:"claims"`
	Sitelinks map[string]sitelink `json:"sitelinks"`
}

type sitelink struct {
	Title string `json:"title"`
}
