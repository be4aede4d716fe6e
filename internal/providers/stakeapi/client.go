package stakeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/providers"
)

// Config controls how the props client reaches the sportsbook API.
type Config struct {
	BaseURL    string
	Token      string
	League     string
	HTTPClient *http.Client
}

// Client fetches the active prop listings for one league and maps them to
// domain Props. Session/cookie management is the caller's concern; the client
// only attaches a bearer token when configured.
type Client struct {
	baseURL    string
	token      string
	league     string
	httpClient httpDoer
}

// NewClient constructs a props client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		token:      cfg.Token,
		league:     resolveLeague(cfg.League),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchProps lists the league's active fixtures and flattens every player
// market into Props. A fixture whose props cannot be fetched is skipped; the
// rest of the slate still loads.
func (c *Client) FetchProps(ctx context.Context) ([]props.Prop, error) {
	fixtures, err := c.fetchFixtures(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]props.Prop, 0)
	var lastErr error
	for _, fixture := range fixtures {
		if fixture.Status != "" && !strings.EqualFold(fixture.Status, "active") {
			continue
		}
		payload, err := c.fetchFixtureProps(ctx, fixture.Slug)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		all = append(all, mapFixtureProps(fixture, payload)...)
	}

	if len(all) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return all, nil
}

func (c *Client) fetchFixtures(ctx context.Context) ([]fixtureResponse, error) {
	var payload fixtureListResponse
	err := c.query(ctx, fixtureListQuery, map[string]any{
		"sport":      sportFor(c.league),
		"category":   "usa",
		"tournament": c.league,
	}, &payload)
	if err != nil {
		return nil, err
	}

	fixtures := payload.Data.SlugTournament.FixtureList
	if len(fixtures) > maxFixtures {
		fixtures = fixtures[:maxFixtures]
	}
	return fixtures, nil
}

func (c *Client) fetchFixtureProps(ctx context.Context, slug string) (fixturePropsResponse, error) {
	var payload fixturePropsResponse
	err := c.query(ctx, fixturePropsQuery, map[string]any{
		"fixture": slug,
		"inPlay":  false,
	}, &payload)
	return payload, err
}

func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Language", "en")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter(resp),
		}
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func retryAfter(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}
	var secs int
	if _, err := fmt.Sscanf(raw, "%d", &secs); err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
