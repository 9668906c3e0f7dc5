package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutocomplete(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		require.Equal(t, "/api/places/autocomplete", r.URL.Path)
		require.Equal(t, "baga beach", r.URL.Query().Get("input"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"predictions":[{"place_id":"pl-1","description":"Baga Beach, Goa","structured_formatting":{"main_text":"Baga Beach","secondary_text":"Goa, India"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	preds, err := client.Autocomplete(context.Background(), "baga beach")
	require.NoError(t, err)
	require.Len(t, preds, 1)
	require.Equal(t, "pl-1", preds[0].PlaceID)
	require.Equal(t, "Baga Beach", preds[0].StructuredFormatting.MainText)
	require.EqualValues(t, 1, hits.Load())
}

func TestAutocompleteShortInputSkipsProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be queried for short input")
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	preds, err := client.Autocomplete(context.Background(), "g")
	require.NoError(t, err)
	require.Empty(t, preds)
}

func TestAutocompleteProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"quota exceeded"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Autocomplete(context.Background(), "goa")
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/places/details", r.URL.Path)
		require.Equal(t, "pl-1", r.URL.Query().Get("place_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Baga Beach","lat":15.5553,"lng":73.7517}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	det, err := client.Details(context.Background(), "pl-1")
	require.NoError(t, err)
	require.Equal(t, "Baga Beach", det.Name)
	require.InDelta(t, 15.5553, det.Lat, 1e-9)
	require.InDelta(t, 73.7517, det.Lng, 1e-9)
}
