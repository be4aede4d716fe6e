package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/providers"
)

// Config controls how the stats client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	MaxPages   int
}

// Client fetches per-game player stats and maps them to outcome windows.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	maxPages   int
}

// NewClient constructs a stats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FetchGameLog retrieves a player's recent games for a stat category, most
// recent first. A 404 from upstream maps to ErrPlayerNotFound; an empty data
// set is a valid (empty) history.
func (c *Client) FetchGameLog(ctx context.Context, playerID string, stat props.StatCategory, lookback int) ([]outcomes.GameOutcome, error) {
	if lookback <= 0 {
		return nil, fmt.Errorf("%s: lookback must be positive, got %d", providerName, lookback)
	}

	page := 1
	rows := make([]statRow, 0, lookback)

	for {
		req, err := c.buildRequest(ctx, playerID, page)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		payload, err := decodeStats(resp, playerID)
		if err != nil {
			return nil, err
		}

		rows = append(rows, payload.Data...)

		if len(rows) >= lookback {
			break
		}
		totalPages := payload.Meta.TotalPages
		if totalPages > 0 {
			if page >= totalPages {
				break
			}
		} else if len(payload.Data) < defaultPerPage {
			break
		}
		if page >= c.maxPages {
			break
		}
		page++
	}

	return mapGameLog(rows, stat, lookback), nil
}

func decodeStats(resp *http.Response, playerID string) (statsResponse, error) {
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return statsResponse{}, fmt.Errorf("%s: player %s: %w", providerName, playerID, providers.ErrPlayerNotFound)
	case http.StatusTooManyRequests:
		return statsResponse{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return statsResponse{}, fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return statsResponse{}, err
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, playerID string, page int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("player_ids[]", playerID)
	q.Set("per_page", strconv.Itoa(defaultPerPage))
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
