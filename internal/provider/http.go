package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tbrandt27/football-pick-em-sub003/internal/config"
	"github.com/tbrandt27/football-pick-em-sub003/pkg/retry"
)

// Wire statuses reported by the feed. Anything ending a game maps to
// final; anything live maps to in_progress; the rest stays scheduled.
var statusMap = map[string]string{
	"STATUS_SCHEDULED":   "scheduled",
	"STATUS_IN_PROGRESS": "in_progress",
	"STATUS_HALFTIME":    "in_progress",
	"STATUS_END_PERIOD":  "in_progress",
	"STATUS_FINAL":       "final",
	"STATUS_FINAL_OT":    "final",
}

// MapStatus converts a wire status to the schedule status taxonomy.
// Unknown statuses are treated as scheduled so they never score games.
func MapStatus(wire string) string {
	if mapped, ok := statusMap[wire]; ok {
		return mapped
	}
	return "scheduled"
}

type scoreboardResponse struct {
	Games []GameScore `json:"games"`
}

// HTTPProvider talks to the score feed over HTTP with retry on
// transient failures.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
	retry   retry.Config
}

// NewHTTP creates a score feed client for the given base URL.
func NewHTTP(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		retry:   retry.ProviderConfig(),
	}
}

// NewHTTPFromEnv builds the client from PROVIDER_BASE_URL.
func NewHTTPFromEnv() *HTTPProvider {
	return NewHTTP(config.GetEnv("PROVIDER_BASE_URL", "http://localhost:9090"))
}

// GamesBySeasonWeek fetches the games of a season week from the feed.
func (p *HTTPProvider) GamesBySeasonWeek(ctx context.Context, seasonLabel string, week int) ([]GameScore, error) {
	endpoint := fmt.Sprintf("%s/scoreboard?season=%s&week=%s",
		p.baseURL, url.QueryEscape(seasonLabel), strconv.Itoa(week))

	games, err := retry.DoWithResult(ctx, p.retry, func() ([]GameScore, error) {
		return p.fetch(ctx, endpoint)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}

	for i := range games {
		games[i].Status = MapStatus(games[i].Status)
	}
	return games, nil
}

func (p *HTTPProvider) fetch(ctx context.Context, endpoint string) ([]GameScore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding scoreboard: %w", err)
	}
	return body.Games, nil
}
