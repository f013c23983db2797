// internal/organizer/domain.go
package organizer

import (
	"strconv"
	"strings"

	"eventpass/internal/events"
)

// EventStatus is the operational state of an organizer's event. Transitions
// are server-authoritative; the client requests one and reconciles on
// success.
type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
	StatusDeleted   EventStatus = "deleted"
)

// OrganizerEvent is an event as seen by its organizer: the canonical fields
// plus operational ones. The sold/percentage/refund quantities are derived
// on every read and never stored, so they cannot go stale.
type OrganizerEvent struct {
	events.CanonicalEvent

	Status        EventStatus `json:"status"`
	PriceWithTva  *string     `json:"price_with_tva,omitempty"`
	TvaRate       float64     `json:"tva_rate"`
	Rating        float64     `json:"rating"`
	AttendeeCount int         `json:"attendee_count"`
}

// TicketsSold derives the sold count from the capacity counters. The result
// may be negative when upstream data is inconsistent; it is not clamped so
// the inconsistency stays visible to callers.
func (e *OrganizerEvent) TicketsSold() int {
	return e.TotalCapacity - e.AvailableCapacity
}

// PercentageSold derives the sold percentage, guarding the zero-capacity
// case explicitly.
func (e *OrganizerEvent) PercentageSold() float64 {
	if e.TotalCapacity <= 0 {
		return 0
	}
	return float64(e.TicketsSold()) / float64(e.TotalCapacity) * 100
}

// IsActive reports whether the event is published or ongoing.
func (e *OrganizerEvent) IsActive() bool {
	return e.Status == StatusPublished || e.Status == StatusOngoing
}

// IsUpcoming reports whether the event is published and not yet started.
func (e *OrganizerEvent) IsUpcoming() bool { return e.Status == StatusPublished }

// IsOngoing reports whether the event is currently running.
func (e *OrganizerEvent) IsOngoing() bool { return e.Status == StatusOngoing }

// IsCompleted reports whether the event has finished.
func (e *OrganizerEvent) IsCompleted() bool { return e.Status == StatusCompleted }

// IsCancelled reports whether the event was cancelled.
func (e *OrganizerEvent) IsCancelled() bool { return e.Status == StatusCancelled }

// RefundEstimate derives the total amount owed if the event were cancelled
// now: tickets sold times the unit price. The unit price prefers the
// tax-inclusive field and falls back to the base price; when neither parses
// the estimate is exactly 0, so the UI never claims an amount it cannot
// support.
func (e *OrganizerEvent) RefundEstimate() float64 {
	unit, ok := parseAmount(e.PriceWithTva)
	if !ok {
		unit, ok = parseAmount(e.Price)
	}
	if !ok {
		return 0
	}
	return float64(e.TicketsSold()) * unit
}

// parseAmount parses a textual currency-agnostic amount.
func parseAmount(s *string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Stats is the aggregate sales view served by the stats endpoint.
type Stats struct {
	Revenue       float64 `json:"revenue"`
	TicketsSold   int     `json:"tickets_sold"`
	EventCount    int     `json:"event_count"`
	AverageRating float64 `json:"average_rating"`
}

// ValidationResult is the outcome of validating a scanned QR payload.
type ValidationResult struct {
	Valid      bool    `json:"valid"`
	TicketID   string  `json:"ticket_id"`
	HolderName string  `json:"holder_name"`
	Message    *string `json:"message,omitempty"`
}

// EventInput is the payload for creating or updating an organizer event.
type EventInput struct {
	Title         string  `validate:"required"`
	Description   string  `validate:"-"`
	StartDate     string  `validate:"required"`
	Location      string  `validate:"-"`
	CategoryID    string  `validate:"-"`
	IsFree        bool    `validate:"-"`
	Price         *string `validate:"-"`
	Currency      string  `validate:"-"`
	TotalCapacity int     `validate:"gte=0"`
	TvaRate       float64 `validate:"gte=0"`
}
