package addresslookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crm/backend/internal/domain/address"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) (*ViaCEPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewViaCEPClient(&config.LookupConfig{
		BaseURL: server.URL,
		Timeout: timeout,
	})
	return client, server
}

func requireLookupError(t *testing.T, err error, kind address.LookupErrorKind) {
	t.Helper()
	var lookupErr *address.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, kind, lookupErr.Kind)
}

func TestViaCEPClientResolve(t *testing.T) {
	t.Run("resolves and upper-cases the address", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/01001000/json/", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"cep": "01001-000",
				"logradouro": "Praça da Sé",
				"bairro": "Sé",
				"localidade": "São Paulo",
				"uf": "SP"
			}`))
		}, time.Second)

		result, err := client.Resolve(context.Background(), "01001000")

		require.NoError(t, err)
		assert.Equal(t, "PRAÇA DA SÉ", result.Street)
		assert.Equal(t, "SÉ", result.Neighborhood)
		assert.Equal(t, "SÃO PAULO", result.City)
		assert.Equal(t, "SP", result.State)
		assert.Equal(t, "01001000", result.PostalCode)
	})

	t.Run("maps the erro flag to not-found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"erro": true}`))
		}, time.Second)

		_, err := client.Resolve(context.Background(), "99999999")

		requireLookupError(t, err, address.LookupNotFound)
	})

	t.Run("accepts the legacy string erro flag", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"erro": "true"}`))
		}, time.Second)

		_, err := client.Resolve(context.Background(), "99999999")

		requireLookupError(t, err, address.LookupNotFound)
	})

	t.Run("treats an explicit false erro flag as a hit", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"cep": "01001-000",
				"logradouro": "Praça da Sé",
				"bairro": "Sé",
				"localidade": "São Paulo",
				"uf": "SP",
				"erro": false
			}`))
		}, time.Second)

		result, err := client.Resolve(context.Background(), "01001000")

		require.NoError(t, err)
		assert.Equal(t, "SÃO PAULO", result.City)
	})

	t.Run("maps a 400 answer to not-found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}, time.Second)

		_, err := client.Resolve(context.Background(), "bad")

		requireLookupError(t, err, address.LookupNotFound)
	})

	t.Run("maps a server failure to network", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}, time.Second)

		_, err := client.Resolve(context.Background(), "01001000")

		requireLookupError(t, err, address.LookupNetwork)
	})

	t.Run("maps a slow service to timeout", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}, 10*time.Millisecond)

		_, err := client.Resolve(context.Background(), "01001000")

		requireLookupError(t, err, address.LookupTimeout)
	})

	t.Run("maps an unreadable body to network", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}, time.Second)

		_, err := client.Resolve(context.Background(), "01001000")

		requireLookupError(t, err, address.LookupNetwork)
	})
}
