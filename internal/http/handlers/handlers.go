package handlers

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"props-ticket-service/internal/logging"
	"props-ticket-service/internal/poller"
	"props-ticket-service/internal/store"
)

// Handler wires HTTP routes to the latest generation run.
type Handler struct {
	store    *store.MemoryStore
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(memoryStore *store.MemoryStore, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		store:    memoryStore,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: a recent successful generation run.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Tickets returns the latest generated batch.
func (h *Handler) Tickets(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	batch, ok := h.store.Batch()
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "no batch generated yet", h.logger)
		return
	}

	logger := logging.FromContext(r.Context(), h.logger)
	logging.Info(logger, "served ticket batch", logging.FieldCount, len(batch.Tickets))
	writeJSON(w, nethttp.StatusOK, batch, h.logger)
}

// TicketByNumber returns a single ticket from the latest batch.
func (h *Handler) TicketByNumber(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/tickets/")
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid ticket number", h.logger)
		return
	}

	ticket, ok := h.store.Ticket(number)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "ticket not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ticket, h.logger)
}

// ScoredProps returns the scored props behind the latest batch.
func (h *Handler) ScoredProps(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.store.ScoredProps(), h.logger)
}

func writeJSON(w nethttp.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w nethttp.ResponseWriter, r *nethttp.Request, status int, msg string, logger *slog.Logger) {
	_ = r
	writeJSON(w, status, map[string]string{"error": msg}, logger)
}
