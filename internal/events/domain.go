// internal/events/domain.go
package events

// Participant is one attendee of an event.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Creator identifies the user who published an event.
type Creator struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// CanonicalEvent is the single normalized representation of an event,
// independent of which backend field-naming variant produced it. The
// optional fields use pointers so "absent" stays distinct from the zero
// value. Instances are rebuilt on every fetch; only the favorite flag and
// the capacity counters are patched in place after a round trip.
type CanonicalEvent struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       *string       `json:"description,omitempty"`
	StartDate         string        `json:"start_date"`
	Location          *string       `json:"location,omitempty"`
	ImageURL          *string       `json:"image_url,omitempty"`
	CategoryName      *string       `json:"category_name,omitempty"`
	IsFree            bool          `json:"is_free"`
	Price             *string       `json:"price,omitempty"`
	Currency          string        `json:"currency"`
	Creator           *Creator      `json:"creator,omitempty"`
	Attendees         []Participant `json:"attendees"`
	TotalCapacity     int           `json:"total_capacity"`
	AvailableCapacity int           `json:"available_capacity"`
	IsFavorite        bool          `json:"is_favorite"`
}

// Category is one event category as served by the listing endpoint.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Collection names the independently-fetched event lists the client holds
// in memory at once.
type Collection string

const (
	CollectionAll       Collection = "all"
	CollectionPopular   Collection = "popular"
	CollectionUpcoming  Collection = "upcoming"
	CollectionFavorites Collection = "favorites"
)
