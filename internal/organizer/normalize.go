// internal/organizer/normalize.go
package organizer

import (
	"eventpass/internal/events"
	"eventpass/internal/schema"
)

// normalizeOrganizerEvent maps a raw organizer-side event document. The
// canonical part goes through the shared event normalizer; the operational
// fields carry their own synonym declarations.
func normalizeOrganizerEvent(doc schema.Document) (OrganizerEvent, error) {
	base, err := events.Normalize(doc)
	if err != nil {
		return OrganizerEvent{}, err
	}

	ev := OrganizerEvent{CanonicalEvent: base}

	status, err := schema.String(doc, string(StatusDraft), "status")
	if err != nil {
		return OrganizerEvent{}, err
	}
	ev.Status = EventStatus(status)

	if ev.PriceWithTva, err = schema.Text(doc, "price_with_tva", "price_ttc"); err != nil {
		return OrganizerEvent{}, err
	}
	if ev.TvaRate, err = schema.Float(doc, 0, "tva_rate", "vat_rate"); err != nil {
		return OrganizerEvent{}, err
	}
	if ev.Rating, err = schema.Float(doc, 0, "rating"); err != nil {
		return OrganizerEvent{}, err
	}
	if ev.AttendeeCount, err = schema.Int(doc, 0, "attendee_count", "attendees_count"); err != nil {
		return OrganizerEvent{}, err
	}
	return ev, nil
}

func normalizeOrganizerEvents(docs []schema.Document) ([]OrganizerEvent, error) {
	out := make([]OrganizerEvent, 0, len(docs))
	for _, doc := range docs {
		ev, err := normalizeOrganizerEvent(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// normalizeStats maps the aggregate stats document.
func normalizeStats(doc schema.Document) (Stats, error) {
	var st Stats
	var err error

	if st.Revenue, err = schema.Float(doc, 0, "revenue", "total_revenue"); err != nil {
		return Stats{}, err
	}
	if st.TicketsSold, err = schema.Int(doc, 0, "tickets_sold", "sold_tickets"); err != nil {
		return Stats{}, err
	}
	if st.EventCount, err = schema.Int(doc, 0, "event_count", "total_events"); err != nil {
		return Stats{}, err
	}
	if st.AverageRating, err = schema.Float(doc, 0, "average_rating", "rating"); err != nil {
		return Stats{}, err
	}
	return st, nil
}

// normalizeValidation maps the QR validation response.
func normalizeValidation(doc schema.Document) (ValidationResult, error) {
	var r ValidationResult
	var err error

	if r.Valid, err = schema.Bool(doc, false, "valid", "is_valid"); err != nil {
		return ValidationResult{}, err
	}
	if r.TicketID, err = schema.Identifier(doc, "ticket_id"); err != nil {
		return ValidationResult{}, err
	}
	if r.HolderName, err = schema.String(doc, "", "holder_name", "attendee_name"); err != nil {
		return ValidationResult{}, err
	}
	if r.Message, err = schema.OptionalString(doc, "message"); err != nil {
		return ValidationResult{}, err
	}
	return r, nil
}
