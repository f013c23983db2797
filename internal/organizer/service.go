// internal/organizer/service.go
package organizer

import "context"

// Service defines the interface for organizer-side event management.
type Service interface {
	List(ctx context.Context) ([]OrganizerEvent, error)
	Get(ctx context.Context, id string) (*OrganizerEvent, error)
	Create(ctx context.Context, input EventInput) (*OrganizerEvent, error)
	Update(ctx context.Context, id string, input EventInput) (*OrganizerEvent, error)
	Delete(ctx context.Context, id string) error
	CancelEvent(ctx context.Context, id string) (*OrganizerEvent, error)
	Complete(ctx context.Context, id string) (*OrganizerEvent, error)
	ChangeStatus(ctx context.Context, id string, status EventStatus) (*OrganizerEvent, error)
	Stats(ctx context.Context) (*Stats, error)
	ValidateTicket(ctx context.Context, qrPayload string) (*ValidationResult, error)
}
