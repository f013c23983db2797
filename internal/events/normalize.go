// internal/events/normalize.go
package events

import (
	"eventpass/internal/schema"
)

// Field synonyms the API has accumulated over time. Each canonical field
// declares its source keys in preference order; the first present key wins.
var (
	favoriteKeys  = []string{"is_favorite", "is_favorited"}
	totalKeys     = []string{"total_tickets", "total_capacity"}
	availableKeys = []string{"available_tickets", "available_seats"}
	attendeeKeys  = []string{"participants", "attendees"}
)

// Normalize converts one raw event document into a CanonicalEvent. The
// conversion is pure and idempotent: missing optional fields default
// deterministically, malformed nested shapes degrade to absent, and only a
// present-but-wrong-typed scalar is reported as an error.
func Normalize(doc schema.Document) (CanonicalEvent, error) {
	var ev CanonicalEvent
	var err error

	if ev.ID, err = schema.Identifier(doc, "id"); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.Title, err = schema.String(doc, "", "title", "name"); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.Description, err = schema.OptionalString(doc, "description"); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.StartDate, err = schema.String(doc, "", "start_date", "date"); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.Location, err = schema.OptionalString(doc, "location"); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.ImageURL, err = schema.OptionalString(doc, "image_url", "image"); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.IsFree, err = schema.Bool(doc, false, "is_free"); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.Price, err = schema.Text(doc, "price"); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.Currency, err = schema.String(doc, "", "currency"); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.TotalCapacity, err = schema.Int(doc, 0, totalKeys...); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.AvailableCapacity, err = schema.Int(doc, 0, availableKeys...); err != nil {
		return CanonicalEvent{}, err
	}
	if ev.IsFavorite, err = schema.Bool(doc, false, favoriteKeys...); err != nil {
		return CanonicalEvent{}, err
	}

	ev.CategoryName = categoryName(doc)
	ev.Creator = creator(doc)
	ev.Attendees = participants(doc)

	return ev, nil
}

// NormalizeAll converts a list of raw documents, failing on the first
// document that cannot be normalized.
func NormalizeAll(docs []schema.Document) ([]CanonicalEvent, error) {
	out := make([]CanonicalEvent, 0, len(docs))
	for _, doc := range docs {
		ev, err := Normalize(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// categoryName unwraps the category field, which arrives either as a plain
// string or as an {id, name} object. Anything else is absent, never an
// empty string and never an error.
func categoryName(doc schema.Document) *string {
	v, ok := doc["category"]
	if !ok || v == nil {
		return nil
	}
	switch c := v.(type) {
	case string:
		return &c
	case schema.Document:
		if name, ok := c["name"].(string); ok {
			return &name
		}
		return nil
	default:
		return nil
	}
}

// creator prefers the nested creator object and otherwise synthesizes one
// from the flat legacy organizer_name / organizer_image pair.
func creator(doc schema.Document) *Creator {
	if obj, ok := schema.Object(doc, "creator"); ok {
		id, _ := schema.Identifier(obj, "id")
		name, _ := schema.String(obj, "", "name")
		avatar, _ := schema.String(obj, "", "avatar", "image")
		return &Creator{ID: id, Name: name, Avatar: avatar}
	}

	name, ok := doc["organizer_name"].(string)
	if !ok || name == "" {
		return nil
	}
	avatar, _ := doc["organizer_image"].(string)
	return &Creator{Name: name, Avatar: avatar}
}

// participants maps the attendee collection, skipping malformed entries.
// A missing or malformed collection yields an empty list.
func participants(doc schema.Document) []Participant {
	docs, ok := schema.List(doc, attendeeKeys...)
	if !ok {
		return []Participant{}
	}
	out := make([]Participant, 0, len(docs))
	for _, p := range docs {
		id, _ := schema.Identifier(p, "id")
		name, _ := schema.String(p, "", "name")
		avatar, _ := schema.String(p, "", "avatar", "image")
		out = append(out, Participant{ID: id, Name: name, Avatar: avatar})
	}
	return out
}

// normalizeCategory maps one raw category document.
func normalizeCategory(doc schema.Document) (Category, error) {
	id, err := schema.Identifier(doc, "id")
	if err != nil {
		return Category{}, err
	}
	name, err := schema.String(doc, "", "name")
	if err != nil {
		return Category{}, err
	}
	return Category{ID: id, Name: name}, nil
}
