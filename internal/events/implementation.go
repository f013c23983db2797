// internal/events/implementation.go
package events

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"eventpass/internal/api"
	"eventpass/internal/schema"
	"eventpass/internal/workflow"
)

// listEnvelope is the wrapper the listing endpoints put around their items.
type listEnvelope struct {
	Data []schema.Document `json:"data"`
}

// service implements the Service interface.
type service struct {
	client *api.Client
	store  *Store
	log    *zerolog.Logger
	toggle workflow.Tracker
}

// NewService creates a new events service instance.
func NewService(client *api.Client, store *Store, log *zerolog.Logger) Service {
	return &service{
		client: client,
		store:  store,
		log:    log,
	}
}

func (s *service) Store() *Store {
	return s.store
}

func (s *service) ToggleStatus() workflow.Status {
	return s.toggle.Snapshot()
}

// List fetches a page of events and replaces the "all" collection.
func (s *service) List(ctx context.Context, params ListParams) ([]CanonicalEvent, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	return s.fetchCollection(ctx, "/v1/events", query, CollectionAll)
}

// Popular fetches the popular listing and replaces its collection.
func (s *service) Popular(ctx context.Context) ([]CanonicalEvent, error) {
	return s.fetchCollection(ctx, "/v1/events/popular", nil, CollectionPopular)
}

// Upcoming fetches the upcoming listing and replaces its collection.
func (s *service) Upcoming(ctx context.Context) ([]CanonicalEvent, error) {
	return s.fetchCollection(ctx, "/v1/events/upcoming", nil, CollectionUpcoming)
}

// Favorites fetches the definitive favorites collection.
func (s *service) Favorites(ctx context.Context) ([]CanonicalEvent, error) {
	return s.fetchCollection(ctx, "/v1/favorites", nil, CollectionFavorites)
}

func (s *service) fetchCollection(ctx context.Context, path string, query url.Values, name Collection) ([]CanonicalEvent, error) {
	var envelope listEnvelope
	if err := s.client.Get(ctx, path, query, &envelope); err != nil {
		return nil, err
	}
	items, err := NormalizeAll(envelope.Data)
	if err != nil {
		return nil, err
	}
	seq := s.store.Replace(name, items)
	s.log.Debug().Str("collection", string(name)).Int("count", len(items)).Uint64("seq", seq).Msg("collection replaced")
	return items, nil
}

// Get fetches one event by id.
func (s *service) Get(ctx context.Context, id string) (*CanonicalEvent, error) {
	if id == "" {
		return nil, api.NewDomainError("event id is required")
	}
	var doc schema.Document
	if err := s.client.Get(ctx, "/v1/events/"+id, nil, &doc); err != nil {
		return nil, err
	}
	ev, err := Normalize(doc)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// ToggleFavorite runs the single server-decides toggle and reconciles every
// cached collection afterward. The request carries no target state; the
// client flips its cached flags to !current on success and re-fetches the
// favorites collection because membership cannot be predicted locally. On
// failure nothing is mutated.
func (s *service) ToggleFavorite(ctx context.Context, id string, current bool) (bool, error) {
	if id == "" {
		err := api.NewDomainError("event id is required")
		s.toggle.Fail(err.Message())
		return current, err
	}

	s.toggle.Begin()

	if err := s.client.Post(ctx, "/v1/favorites/"+id+"/toggle", nil, nil); err != nil {
		apiErr := api.AsError(err)
		s.toggle.Fail(apiErr.Message())
		return current, apiErr
	}

	next := !current
	touched := s.store.SetFavorite(id, next)
	s.log.Debug().Str("event_id", id).Bool("favorite", next).Int("touched", touched).Msg("favorite flag reconciled")

	// Refresh the definitive list. A failure here does not undo the toggle,
	// which already committed server-side; the stale list is reported but the
	// flags stay flipped.
	if _, err := s.Favorites(ctx); err != nil {
		apiErr := api.AsError(err)
		s.toggle.Fail(apiErr.Message())
		return next, apiErr
	}

	s.toggle.Succeed(fmt.Sprintf("favorite updated for event %s", id))
	return next, nil
}

// Categories fetches the category listing.
func (s *service) Categories(ctx context.Context) ([]Category, error) {
	var envelope listEnvelope
	if err := s.client.Get(ctx, "/v1/categories", nil, &envelope); err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(envelope.Data))
	for _, doc := range envelope.Data {
		cat, err := normalizeCategory(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, nil
}
