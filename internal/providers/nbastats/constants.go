package nbastats

import "time"

const providerName = "nbastats"

const (
	defaultBaseURL     = "https://www.balldontlie.io/api/v1"
	defaultPerPage     = 25
	defaultMaxPages    = 4
	defaultHTTPTimeout = 10 * time.Second
)
