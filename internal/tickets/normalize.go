// internal/tickets/normalize.go
package tickets

import (
	"eventpass/internal/events"
	"eventpass/internal/schema"
)

// normalizeTicket maps one raw ticket document onto a Ticket. The embedded
// event goes through the shared event normalizer; a missing embedded event
// degrades to a zero-value snapshot rather than a failure.
func normalizeTicket(doc schema.Document) (Ticket, error) {
	var t Ticket
	var err error

	if t.ID, err = schema.Identifier(doc, "id"); err != nil {
		return Ticket{}, err
	}
	if t.Code, err = schema.String(doc, "", "code", "ticket_code"); err != nil {
		return Ticket{}, err
	}
	if t.HolderName, err = schema.String(doc, "", "holder_name", "attendee_name"); err != nil {
		return Ticket{}, err
	}
	if t.Seat, err = schema.OptionalString(doc, "seat"); err != nil {
		return Ticket{}, err
	}
	if t.Price, err = schema.Text(doc, "price"); err != nil {
		return Ticket{}, err
	}
	if t.PurchaseDate, err = schema.String(doc, "", "purchase_date", "created_at"); err != nil {
		return Ticket{}, err
	}
	if t.QRCode, err = schema.OptionalString(doc, "qr_code"); err != nil {
		return Ticket{}, err
	}

	status, err := schema.String(doc, string(StatusActive), "status")
	if err != nil {
		return Ticket{}, err
	}
	t.Status = TicketStatus(status)

	if eventDoc, ok := schema.Object(doc, "event"); ok {
		ev, err := events.Normalize(eventDoc)
		if err != nil {
			return Ticket{}, err
		}
		t.Event = ev
	}
	return t, nil
}

func normalizeTickets(docs []schema.Document) ([]Ticket, error) {
	out := make([]Ticket, 0, len(docs))
	for _, doc := range docs {
		t, err := normalizeTicket(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// normalizeBookingResult maps the order document returned by the booking
// endpoint. A missing or malformed tickets collection degrades to an empty
// list; the caller must tolerate an order with no issued tickets.
func normalizeBookingResult(doc schema.Document) (BookingResult, error) {
	var r BookingResult
	var err error

	if r.OrderID, err = schema.Identifier(doc, "order_id", "id"); err != nil {
		return BookingResult{}, err
	}
	if r.OrderNumber, err = schema.String(doc, "", "order_number", "number"); err != nil {
		return BookingResult{}, err
	}
	if r.Quantity, err = schema.Int(doc, 0, "quantity"); err != nil {
		return BookingResult{}, err
	}
	if r.TotalPrice, err = schema.Text(doc, "total_price", "total"); err != nil {
		return BookingResult{}, err
	}
	if r.PaymentMethod, err = schema.String(doc, "", "payment_method"); err != nil {
		return BookingResult{}, err
	}
	if r.PaymentStatus, err = schema.String(doc, "", "payment_status"); err != nil {
		return BookingResult{}, err
	}

	if eventDoc, ok := schema.Object(doc, "event"); ok {
		ev, err := events.Normalize(eventDoc)
		if err != nil {
			return BookingResult{}, err
		}
		r.Event = ev
	}

	r.Tickets = []Ticket{}
	if ticketDocs, ok := schema.List(doc, "tickets"); ok {
		issued, err := normalizeTickets(ticketDocs)
		if err != nil {
			return BookingResult{}, err
		}
		r.Tickets = issued
	}
	return r, nil
}
