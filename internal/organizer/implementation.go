// internal/organizer/implementation.go
package organizer

import (
	"context"

	"github.com/rs/zerolog"

	"eventpass/internal/api"
	"eventpass/internal/schema"
	"eventpass/internal/validate"
)

type listEnvelope struct {
	Data []schema.Document `json:"data"`
}

// service implements the Service interface.
type service struct {
	client *api.Client
	log    *zerolog.Logger
}

// NewService creates a new organizer service instance.
func NewService(client *api.Client, log *zerolog.Logger) Service {
	return &service{client: client, log: log}
}

// List fetches the organizer's events.
func (s *service) List(ctx context.Context) ([]OrganizerEvent, error) {
	var envelope listEnvelope
	if err := s.client.Get(ctx, "/v1/organizer/events", nil, &envelope); err != nil {
		return nil, err
	}
	return normalizeOrganizerEvents(envelope.Data)
}

// Get fetches one organizer event by id.
func (s *service) Get(ctx context.Context, id string) (*OrganizerEvent, error) {
	if id == "" {
		return nil, api.NewDomainError("event id is required")
	}
	var doc schema.Document
	if err := s.client.Get(ctx, "/v1/organizer/events/"+id, nil, &doc); err != nil {
		return nil, err
	}
	ev, err := normalizeOrganizerEvent(doc)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Create publishes a new event draft.
func (s *service) Create(ctx context.Context, input EventInput) (*OrganizerEvent, error) {
	if err := validate.Struct(ctx, input); err != nil {
		return nil, api.NewDomainError(err.Error())
	}
	var doc schema.Document
	if err := s.client.Post(ctx, "/v1/organizer/events", eventBody(input), &doc); err != nil {
		return nil, err
	}
	ev, err := normalizeOrganizerEvent(doc)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", ev.ID).Msg("event created")
	return &ev, nil
}

// Update modifies an existing event.
func (s *service) Update(ctx context.Context, id string, input EventInput) (*OrganizerEvent, error) {
	if id == "" {
		return nil, api.NewDomainError("event id is required")
	}
	if err := validate.Struct(ctx, input); err != nil {
		return nil, api.NewDomainError(err.Error())
	}
	var doc schema.Document
	if err := s.client.Put(ctx, "/v1/organizer/events/"+id, eventBody(input), &doc); err != nil {
		return nil, err
	}
	ev, err := normalizeOrganizerEvent(doc)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Delete removes an event.
func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return api.NewDomainError("event id is required")
	}
	return s.client.Delete(ctx, "/v1/organizer/events/"+id)
}

// CancelEvent requests the cancelled status for an event.
func (s *service) CancelEvent(ctx context.Context, id string) (*OrganizerEvent, error) {
	return s.ChangeStatus(ctx, id, StatusCancelled)
}

// Complete requests the completed status for an event.
func (s *service) Complete(ctx context.Context, id string) (*OrganizerEvent, error) {
	return s.ChangeStatus(ctx, id, StatusCompleted)
}

// ChangeStatus asks the server for a status transition. The server is the
// authority; the client only reconciles with whatever state comes back.
func (s *service) ChangeStatus(ctx context.Context, id string, status EventStatus) (*OrganizerEvent, error) {
	if id == "" {
		return nil, api.NewDomainError("event id is required")
	}
	body := map[string]any{"status": string(status)}
	var doc schema.Document
	if err := s.client.Post(ctx, "/v1/organizer/events/"+id+"/status", body, &doc); err != nil {
		return nil, err
	}
	ev, err := normalizeOrganizerEvent(doc)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", id).Str("status", string(ev.Status)).Msg("event status changed")
	return &ev, nil
}

// Stats fetches the organizer's aggregate sales statistics.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	var doc schema.Document
	if err := s.client.Get(ctx, "/v1/organizer/stats", nil, &doc); err != nil {
		return nil, err
	}
	st, err := normalizeStats(doc)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// ValidateTicket submits a scanned QR payload for entry validation.
func (s *service) ValidateTicket(ctx context.Context, qrPayload string) (*ValidationResult, error) {
	if qrPayload == "" {
		return nil, api.NewDomainError("qr payload is required")
	}
	body := map[string]any{"code": qrPayload}
	var doc schema.Document
	if err := s.client.Post(ctx, "/v1/organizer/tickets/validate", body, &doc); err != nil {
		return nil, err
	}
	result, err := normalizeValidation(doc)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func eventBody(input EventInput) map[string]any {
	body := map[string]any{
		"title":         input.Title,
		"description":   input.Description,
		"start_date":    input.StartDate,
		"location":      input.Location,
		"is_free":       input.IsFree,
		"currency":      input.Currency,
		"total_tickets": input.TotalCapacity,
		"tva_rate":      input.TvaRate,
	}
	if input.CategoryID != "" {
		body["category_id"] = input.CategoryID
	}
	if input.Price != nil {
		body["price"] = *input.Price
	}
	return body
}
