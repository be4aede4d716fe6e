package server

import (
	"context"

	"props-ticket-service/internal/poller"
)

// Poller defines the minimal generation-loop behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
