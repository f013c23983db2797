package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventpass/internal/api"
)

func newFixture(t *testing.T, router http.Handler) (Service, *Store) {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	session := api.NewSession()
	session.Set("test-token")
	log := zerolog.Nop()
	store := NewStore()
	return NewService(api.NewClient(server.URL, session, &log), store, &log), store
}

func TestListNormalizesAndReplacesCollection(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"id": 1, "title": "A", "total_tickets": 10, "available_seats": 4, "category": "Concert"},
			{"id": 2, "title": "B", "total_capacity": 20, "is_favorited": true}
		]}`))
	})

	svc, store := newFixture(t, router)

	items, err := svc.List(context.Background(), ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 10, items[0].TotalCapacity)
	assert.Equal(t, 4, items[0].AvailableCapacity)
	require.NotNil(t, items[0].CategoryName)
	assert.Equal(t, "Concert", *items[0].CategoryName)
	assert.True(t, items[1].IsFavorite)

	cached, seq := store.Get(CollectionAll)
	assert.Len(t, cached, 2)
	assert.NotZero(t, seq)
}

func TestGetRequiresID(t *testing.T) {
	svc, _ := newFixture(t, chi.NewRouter())
	_, err := svc.Get(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, api.KindDomainInvalid, api.AsError(err).Kind)
}

func TestToggleFavoriteReconciliation(t *testing.T) {
	var favoritesFetches int32

	router := chi.NewRouter()
	router.Post("/v1/favorites/42/toggle", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})
	router.Get("/v1/favorites", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&favoritesFetches, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"id": 42, "title": "A", "is_favorite": true}]}`))
	})

	svc, store := newFixture(t, router)

	// Starting state: event 42 unfavorited in two independently-held lists.
	store.Replace(CollectionAll, []CanonicalEvent{{ID: "42"}, {ID: "7"}})
	store.Replace(CollectionPopular, []CanonicalEvent{{ID: "42"}})

	next, err := svc.ToggleFavorite(context.Background(), "42", false)
	require.NoError(t, err)
	assert.True(t, next)

	all, _ := store.Get(CollectionAll)
	assert.True(t, all[0].IsFavorite)
	assert.False(t, all[1].IsFavorite)

	popular, _ := store.Get(CollectionPopular)
	assert.True(t, popular[0].IsFavorite)

	// The definitive list must come from a fresh fetch, not a local splice.
	assert.Equal(t, int32(1), atomic.LoadInt32(&favoritesFetches))
	favorites, _ := store.Get(CollectionFavorites)
	require.Len(t, favorites, 1)
	assert.Equal(t, "42", favorites[0].ID)

	assert.Equal(t, "favorite updated for event 42", svc.ToggleStatus().LastSuccess)
}

func TestToggleFavoriteFailureMutatesNothing(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/v1/favorites/42/toggle", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "favorite conflict"}`))
	})

	svc, store := newFixture(t, router)
	store.Replace(CollectionAll, []CanonicalEvent{{ID: "42"}})

	next, err := svc.ToggleFavorite(context.Background(), "42", false)
	require.Error(t, err)
	assert.False(t, next, "failed toggle reports the pre-toggle state")
	assert.Equal(t, api.KindServerRejected, api.AsError(err).Kind)
	assert.Equal(t, "favorite conflict", api.AsError(err).Message())

	all, _ := store.Get(CollectionAll)
	assert.False(t, all[0].IsFavorite, "cached flags stay at their pre-toggle values")

	status := svc.ToggleStatus()
	assert.False(t, status.InProgress)
	assert.Equal(t, "favorite conflict", status.LastError)
}

func TestCategoriesNormalized(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/v1/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"id": 3, "name": "Concert"}, {"id": 4, "name": "Theater"}]}`))
	})

	svc, _ := newFixture(t, router)
	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, Category{ID: "3", Name: "Concert"}, cats[0])
}
