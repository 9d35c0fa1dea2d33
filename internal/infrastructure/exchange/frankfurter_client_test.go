package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrankfurterClient_Rate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/latest", r.URL.Path)
			require.Equal(t, "EUR", r.URL.Query().Get("from"))
			require.Equal(t, "USD", r.URL.Query().Get("to"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"amount":1.0,"base":"EUR","rates":{"USD":1.05}}`))
		}))
		defer srv.Close()

		c := NewFrankfurterClient(srv.URL)
		rate, err := c.Rate(context.Background(), "EUR", "USD")
		require.NoError(t, err)
		require.Equal(t, 1.05, rate)
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unknown currency", http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewFrankfurterClient(srv.URL)
		_, err := c.Rate(context.Background(), "ZZZ", "USD")
		require.Error(t, err)
		require.Contains(t, err.Error(), "status 404")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":`))
		}))
		defer srv.Close()

		c := NewFrankfurterClient(srv.URL)
		_, err := c.Rate(context.Background(), "EUR", "USD")
		require.Error(t, err)
	})

	t.Run("missing target rate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"GBP":0.86}}`))
		}))
		defer srv.Close()

		c := NewFrankfurterClient(srv.URL)
		_, err := c.Rate(context.Background(), "EUR", "USD")
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"USD":1.05}}`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := NewFrankfurterClient(srv.URL)
		_, err := c.Rate(ctx, "EUR", "USD")
		require.Error(t, err)
	})
}
