package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ypickup/pickup-web/geocode"
)

const okBody = `{
	"status": "OK",
	"results": [{
		"formatted_address": "Old Campus, New Haven, CT 06511, USA",
		"geometry": {"location": {"lat": 41.3083, "lng": -72.9279}}
	}]
}`

func TestAutocomplete(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "old campus", r.URL.Query().Get("address"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		w.Write([]byte(okBody))
	}))
	defer srv.Close()

	client := geocode.NewClient("secret", srv.URL)

	places, err := client.Autocomplete(context.Background(), " old campus ")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, geocode.Place{Address: "Old Campus, New Haven, CT 06511, USA", Lat: 41.3083, Lng: -72.9279}, places[0])

	_, err = client.Autocomplete(context.Background(), "old campus")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "41.316300,-72.922300", r.URL.Query().Get("latlng"))
		w.Write([]byte(okBody))
	}))
	defer srv.Close()

	places, err := geocode.NewClient("secret", srv.URL).Reverse(context.Background(), 41.3163, -72.9223)

	require.NoError(t, err)
	assert.Len(t, places, 1)
}

func TestErrors(t *testing.T) {
	t.Run("disabled without key", func(t *testing.T) {
		client := geocode.NewClient("", "")
		assert.False(t, client.Enabled())

		_, err := client.Autocomplete(context.Background(), "x")
		assert.ErrorIs(t, err, geocode.ErrDisabled)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := geocode.NewClient("secret", "").Autocomplete(context.Background(), "  ")
		assert.ErrorIs(t, err, geocode.ErrEmptyQuery)
	})

	t.Run("provider status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`))
		}))
		defer srv.Close()

		_, err := geocode.NewClient("secret", srv.URL).Autocomplete(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REQUEST_DENIED")
	})

	t.Run("zero results is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		}))
		defer srv.Close()

		places, err := geocode.NewClient("secret", srv.URL).Autocomplete(context.Background(), "nowhere")
		require.NoError(t, err)
		assert.Empty(t, places)
	})
}
