// internal/tickets/domain.go
package tickets

import (
	"eventpass/internal/events"
)

// TicketStatus is the lifecycle state of one issued ticket. Transitions to
// used happen through organizer-side QR validation; the client only observes
// them on the next reload.
type TicketStatus string

const (
	StatusActive    TicketStatus = "active"
	StatusCancelled TicketStatus = "cancelled"
	StatusUsed      TicketStatus = "used"
)

// Ticket is one issued ticket with its embedded event snapshot.
type Ticket struct {
	ID           string                `json:"id"`
	Code         string                `json:"code"`
	Event        events.CanonicalEvent `json:"event"`
	HolderName   string                `json:"holder_name"`
	Seat         *string               `json:"seat,omitempty"`
	Price        *string               `json:"price,omitempty"`
	PurchaseDate string                `json:"purchase_date"`
	QRCode       *string               `json:"qr_code,omitempty"`
	Status       TicketStatus          `json:"status"`
}

// BookingResult is the outcome of a successful booking. The ticket list may
// legitimately be empty; FirstTicket reports absence instead of faulting.
type BookingResult struct {
	OrderID       string                `json:"order_id"`
	OrderNumber   string                `json:"order_number"`
	Event         events.CanonicalEvent `json:"event"`
	Quantity      int                   `json:"quantity"`
	TotalPrice    *string               `json:"total_price,omitempty"`
	PaymentMethod string                `json:"payment_method"`
	PaymentStatus string                `json:"payment_status"`
	Tickets       []Ticket              `json:"tickets"`
}

// FirstTicket returns the first issued ticket, or false when the order
// produced none.
func (r *BookingResult) FirstTicket() (Ticket, bool) {
	if len(r.Tickets) == 0 {
		return Ticket{}, false
	}
	return r.Tickets[0], true
}

// CancelReason is one of the fixed reasons the API accepts for a
// cancellation request.
type CancelReason string

const (
	ReasonScheduleConflict   CancelReason = "schedule_conflict"
	ReasonEventChanged       CancelReason = "event_changed"
	ReasonPurchaseError      CancelReason = "purchase_error"
	ReasonNoLongerInterested CancelReason = "no_longer_interested"
	ReasonOther              CancelReason = "other"
)

// Valid reports whether the reason belongs to the fixed set.
func (r CancelReason) Valid() bool {
	switch r {
	case ReasonScheduleConflict, ReasonEventChanged, ReasonPurchaseError,
		ReasonNoLongerInterested, ReasonOther:
		return true
	}
	return false
}

// BookingRequest describes one booking invocation. Quantity defaults to 1
// and the payment method to cash when left unset.
type BookingRequest struct {
	EventID       string  `validate:"required"`
	Quantity      int     `validate:"gte=1"`
	PaymentMethod string  `validate:"required"`
	Seat          *string `validate:"-"`
}

// CancelRequest describes one cancellation invocation. The reason is
// mandatory; the comment is free text.
type CancelRequest struct {
	TicketID string       `validate:"required"`
	Reason   CancelReason `validate:"required"`
	Comment  string       `validate:"-"`
}
