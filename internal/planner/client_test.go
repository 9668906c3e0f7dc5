package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tripweaver/internal/model"
)

func TestStartTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/trip/start", r.URL.Path)

		var req StartTripRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Goa", req.TripParams.Destination)
		require.Equal(t, 3, req.TripParams.NumDays)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(StartTripResponse{
			ThreadID: "thread-42",
			Locations: []model.Location{
				{ID: "loc-1", Name: "Fort Aguada", Lat: 15.4925, Lng: 73.7737},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.StartTrip(context.Background(), StartTripRequest{
		TripParams: model.TripParameters{
			Destination: "Goa",
			NumDays:     3,
			TravelStyle: model.TravelStyleBalanced,
			Interests:   []string{"Food & Dining"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "thread-42", resp.ThreadID)
	require.Len(t, resp.Locations, 1)
}

func TestGetState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/trip/thread-42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TripStateResponse{
			ThreadID: "thread-42",
			Phase:    model.PhaseEditing,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	state, err := client.GetState(context.Background(), "thread-42")
	require.NoError(t, err)
	require.Equal(t, model.PhaseEditing, state.Phase)
}

func TestGenerateItinerarySubmitsDiff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/trip/thread-42/generate", r.URL.Path)

		var req GenerateItineraryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, []string{"loc-5"}, req.Edits.RemovedIDs)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GenerateItineraryResponse{
			ValidationPassed: true,
			RouteWarnings:    []string{"segment loc-1 -> loc-2 has no route geometry"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.GenerateItinerary(context.Background(), "thread-42", GenerateItineraryRequest{
		Edits: model.LocationEditDiff{RemovedIDs: []string{"loc-5"}},
	})
	require.NoError(t, err)
	require.True(t, resp.ValidationPassed)
	require.Len(t, resp.RouteWarnings, 1)
}

func TestStatusErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"num_days must be between 1 and 14"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.StartTrip(context.Background(), StartTripRequest{})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
	require.Contains(t, statusErr.Detail, "num_days")
}
