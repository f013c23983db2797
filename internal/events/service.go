// internal/events/service.go
package events

import (
	"context"

	"eventpass/internal/workflow"
)

// ListParams are the query parameters accepted by the listing endpoints.
type ListParams struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// Service defines the interface for browsing events and managing favorites.
type Service interface {
	List(ctx context.Context, params ListParams) ([]CanonicalEvent, error)
	Popular(ctx context.Context) ([]CanonicalEvent, error)
	Upcoming(ctx context.Context) ([]CanonicalEvent, error)
	Get(ctx context.Context, id string) (*CanonicalEvent, error)
	Favorites(ctx context.Context) ([]CanonicalEvent, error)
	ToggleFavorite(ctx context.Context, id string, current bool) (bool, error)
	Categories(ctx context.Context) ([]Category, error)
	Store() *Store
	ToggleStatus() workflow.Status
}
