package http

import (
	nethttp "net/http"

	"props-ticket-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/tickets", handler.Tickets)
	mux.HandleFunc("/tickets/", handler.TicketByNumber)
	mux.HandleFunc("/props", handler.ScoredProps)
	return mux
}
