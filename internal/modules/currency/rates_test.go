package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRateSource(t *testing.T) {
	t.Run("parses INR rate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"base_code":"USD","rates":{"EUR":0.92,"INR":83.41}}`))
		}))
		defer srv.Close()

		src := NewHTTPRateSource(srv.Client(), srv.URL)
		rate, err := src.USDToINR(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 83.41, rate)
	})

	t.Run("missing INR entry", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"EUR":0.92}}`))
		}))
		defer srv.Close()

		src := NewHTTPRateSource(srv.Client(), srv.URL)
		_, err := src.USDToINR(context.Background())
		assert.Error(t, err)
	})

	t.Run("non-positive rate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"INR":0}}`))
		}))
		defer srv.Close()

		src := NewHTTPRateSource(srv.Client(), srv.URL)
		_, err := src.USDToINR(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		src := NewHTTPRateSource(srv.Client(), srv.URL)
		_, err := src.USDToINR(context.Background())
		assert.Error(t, err)
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		src := NewHTTPRateSource(srv.Client(), srv.URL)
		_, err := src.USDToINR(context.Background())
		assert.Error(t, err)
	})
}
