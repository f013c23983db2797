// internal/tickets/service.go
package tickets

import (
	"context"

	"eventpass/internal/workflow"
)

// Service defines the interface for the booking and cancellation workflows.
type Service interface {
	Book(ctx context.Context, req BookingRequest) (*BookingResult, error)
	Cancel(ctx context.Context, req CancelRequest) error
	List(ctx context.Context) ([]Ticket, error)
	Get(ctx context.Context, id string) (*Ticket, error)
	Cached() []Ticket
	BookingStatus() workflow.Status
	CancelStatus() workflow.Status
}
