package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, router http.Handler, token string) *Client {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	session := NewSession()
	if token != "" {
		session.Set(token)
	}
	log := zerolog.Nop()
	return NewClient(server.URL, session, &log)
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotContentType string

	router := chi.NewRouter()
	router.Post("/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	})

	client := newClient(t, router, "abc123")
	err := client.Post(context.Background(), "/v1/orders", map[string]any{"event_id": "42"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
}

func TestPublicRequestOmitsAuthorization(t *testing.T) {
	var gotAuth string
	router := chi.NewRouter()
	router.Post("/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	client := newClient(t, router, "")
	err := client.Post(context.Background(), "/v1/auth/login", map[string]any{}, nil, Public())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthenticatedProtectedRequestFailsFast(t *testing.T) {
	var called bool
	router := chi.NewRouter()
	router.Get("/v1/tickets", func(w http.ResponseWriter, r *http.Request) { called = true })

	client := newClient(t, router, "")
	err := client.Get(context.Background(), "/v1/tickets", nil, nil)
	require.Error(t, err)
	assert.Equal(t, KindDomainInvalid, AsError(err).Kind)
	assert.False(t, called)
}

func TestIdempotencyKeyHeader(t *testing.T) {
	var gotKey string
	router := chi.NewRouter()
	router.Post("/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		w.Write([]byte(`{}`))
	})

	client := newClient(t, router, "abc")
	err := client.Post(context.Background(), "/v1/orders", nil, nil, WithIdempotencyKey("key-1"))
	require.NoError(t, err)
	assert.Equal(t, "key-1", gotKey)
}

func TestServerRejectionExtractsMessage(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "page out of range"}`))
	})

	client := newClient(t, router, "abc")
	err := client.Get(context.Background(), "/v1/events", nil, nil)
	require.Error(t, err)

	apiErr := AsError(err)
	assert.Equal(t, KindServerRejected, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "page out of range", apiErr.Message())
}

func TestServerRejectionWithoutBodyFallsBack(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newClient(t, router, "abc")
	err := client.Get(context.Background(), "/v1/events", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "validation error", AsError(err).Message())
}

func TestMalformedBodyIsSchemaError(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [`))
	})

	client := newClient(t, router, "abc")
	var out map[string]any
	err := client.Get(context.Background(), "/v1/events", nil, &out)
	require.Error(t, err)

	apiErr := AsError(err)
	assert.Equal(t, KindSchema, apiErr.Kind)
	assert.Equal(t, "invalid server response format", apiErr.Message())
}

func TestUnreachableServerIsConnectivityError(t *testing.T) {
	server := httptest.NewServer(chi.NewRouter())
	server.Close()

	session := NewSession()
	session.Set("abc")
	log := zerolog.Nop()
	client := NewClient(server.URL, session, &log)

	err := client.Get(context.Background(), "/v1/events", nil, nil)
	require.Error(t, err)
	assert.Equal(t, KindConnectivity, AsError(err).Kind)
	assert.Equal(t, "cannot reach server", AsError(err).Message())
}

func TestQueryParameters(t *testing.T) {
	var gotQuery string
	router := chi.NewRouter()
	router.Get("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	})

	client := newClient(t, router, "abc")
	query := map[string][]string{"page": {"2"}, "limit": {"10"}}
	err := client.Get(context.Background(), "/v1/events", query, nil)
	require.NoError(t, err)
	assert.Equal(t, "limit=10&page=2", gotQuery)
}
