// internal/tickets/implementation.go
package tickets

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"eventpass/internal/api"
	"eventpass/internal/events"
	"eventpass/internal/schema"
	"eventpass/internal/validate"
	"eventpass/internal/workflow"
)

type listEnvelope struct {
	Data []schema.Document `json:"data"`
}

// service implements the Service interface.
type service struct {
	client     *api.Client
	eventStore *events.Store
	log        *zerolog.Logger

	mu     sync.RWMutex
	cached []Ticket

	booking workflow.Tracker
	cancel  workflow.Tracker
}

// NewService creates a new tickets service instance. The event store is
// shared with the events service so a booking can patch cached capacity
// counters.
func NewService(client *api.Client, eventStore *events.Store, log *zerolog.Logger) Service {
	return &service{
		client:     client,
		eventStore: eventStore,
		log:        log,
	}
}

func (s *service) BookingStatus() workflow.Status { return s.booking.Snapshot() }
func (s *service) CancelStatus() workflow.Status  { return s.cancel.Snapshot() }

// Cached returns the last loaded ticket collection without a network call.
func (s *service) Cached() []Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Ticket(nil), s.cached...)
}

// Book orchestrates one ticket purchase. The remote endpoint is called
// exactly once per invocation; there is no automatic retry. On success the
// ticket collection is fully reloaded, since the server owns ticket identity
// and ordering, and cached capacity counters are patched.
func (s *service) Book(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}
	if err := validate.Struct(ctx, req); err != nil {
		domainErr := api.NewDomainError(err.Error())
		s.booking.Fail(domainErr.Message())
		return nil, domainErr
	}

	s.booking.Begin()

	body := map[string]any{
		"event_id":       req.EventID,
		"quantity":       req.Quantity,
		"payment_method": req.PaymentMethod,
	}
	if req.Seat != nil {
		body["seat"] = *req.Seat
	}

	// The idempotency key lets the server collapse a double submission of
	// the same order without the client guessing whether the first attempt
	// landed.
	key := uuid.NewString()

	var doc schema.Document
	if err := s.client.Post(ctx, "/v1/orders", body, &doc, api.WithIdempotencyKey(key)); err != nil {
		apiErr := api.AsError(err)
		s.booking.Fail(apiErr.Message())
		return nil, apiErr
	}

	result, err := normalizeBookingResult(doc)
	if err != nil {
		apiErr := api.AsError(err)
		s.booking.Fail(apiErr.Message())
		return nil, apiErr
	}

	s.eventStore.AdjustAvailable(req.EventID, -req.Quantity)

	// Full reload, not an incremental merge. A reload failure does not void
	// the booking, which already succeeded server-side.
	if _, err := s.List(ctx); err != nil {
		s.log.Warn().Str("event_id", req.EventID).Err(err).Msg("ticket reload after booking failed")
	}

	s.log.Info().Str("order_id", result.OrderID).Str("event_id", req.EventID).Int("quantity", req.Quantity).Msg("booking completed")
	s.booking.Succeed(fmt.Sprintf("booked %d ticket(s)", req.Quantity))
	return &result, nil
}

// Cancel orchestrates one ticket cancellation. An empty or unknown reason is
// rejected locally before any network round trip.
func (s *service) Cancel(ctx context.Context, req CancelRequest) error {
	if err := validate.Struct(ctx, req); err != nil {
		domainErr := api.NewDomainError(err.Error())
		s.cancel.Fail(domainErr.Message())
		return domainErr
	}
	if !req.Reason.Valid() {
		domainErr := api.NewDomainError("cancellation reason is not recognized")
		s.cancel.Fail(domainErr.Message())
		return domainErr
	}

	s.cancel.Begin()

	body := map[string]any{"reason": string(req.Reason)}
	if req.Comment != "" {
		body["comment"] = req.Comment
	}

	if err := s.client.Post(ctx, "/v1/tickets/"+req.TicketID+"/cancel", body, nil); err != nil {
		apiErr := api.AsError(err)
		s.cancel.Fail(apiErr.Message())
		return apiErr
	}

	if _, err := s.List(ctx); err != nil {
		s.log.Warn().Str("ticket_id", req.TicketID).Err(err).Msg("ticket reload after cancellation failed")
	}

	s.log.Info().Str("ticket_id", req.TicketID).Str("reason", string(req.Reason)).Msg("ticket cancelled")
	s.cancel.Succeed("ticket cancelled")
	return nil
}

// List reloads the user's ticket collection from the server.
func (s *service) List(ctx context.Context) ([]Ticket, error) {
	var envelope listEnvelope
	if err := s.client.Get(ctx, "/v1/tickets", nil, &envelope); err != nil {
		return nil, err
	}
	loaded, err := normalizeTickets(envelope.Data)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.cached = loaded
	s.mu.Unlock()
	return append([]Ticket(nil), loaded...), nil
}

// Get fetches one ticket by id.
func (s *service) Get(ctx context.Context, id string) (*Ticket, error) {
	if id == "" {
		return nil, api.NewDomainError("ticket id is required")
	}
	var doc schema.Document
	if err := s.client.Get(ctx, "/v1/tickets/"+id, nil, &doc); err != nil {
		return nil, err
	}
	t, err := normalizeTicket(doc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
