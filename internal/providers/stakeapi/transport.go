package stakeapi

import (
	"net/http"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveLeague(raw string) string {
	if raw == "" {
		return defaultLeague
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// sportFor maps a league slug to the sport segment the tournament query needs.
func sportFor(league string) string {
	switch league {
	case "nhl":
		return "ice-hockey"
	default:
		return "basketball"
	}
}
