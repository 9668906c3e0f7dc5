package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tripweaver/internal/model"
)

func loc(id, name string, lat, lng float64) model.Location {
	return model.Location{ID: id, Name: name, Lat: lat, Lng: lng}
}

func threeStopDay() model.DayPlan {
	return model.DayPlan{
		DayNumber: 1,
		Locations: []model.Location{
			loc("a", "Fort Aguada", 15.4925, 73.7737),
			loc("b", "Baga Beach", 15.5553, 73.7517),
			loc("c", "Anjuna Market", 15.5735, 73.7406),
		},
	}
}

func TestVisibleLocationsNoItinerary(t *testing.T) {
	sess := &model.TripSession{
		WorkingLocations: []model.Location{loc("a", "A", 1, 2), loc("b", "B", 3, 4)},
	}

	require.Equal(t, sess.WorkingLocations, VisibleLocations(sess))

	// Day filter without an itinerary is meaningless; full set wins.
	sess.SelectedDay = 2
	require.Equal(t, sess.WorkingLocations, VisibleLocations(sess))
}

func TestVisibleLocationsDayFilter(t *testing.T) {
	day := threeStopDay()
	sess := &model.TripSession{
		WorkingLocations: []model.Location{loc("x", "X", 0, 0)},
		Itinerary:        &model.Itinerary{Days: []model.DayPlan{day}},
		SelectedDay:      1,
	}

	visible := VisibleLocations(sess)
	require.Len(t, visible, 3)
	require.Equal(t, []string{"a", "b", "c"}, []string{visible[0].ID, visible[1].ID, visible[2].ID})

	// Unknown day falls back to the full working set.
	sess.SelectedDay = 9
	require.Equal(t, sess.WorkingLocations, VisibleLocations(sess))
}

func TestProjectOrdinalsAndColors(t *testing.T) {
	day := threeStopDay()
	sess := &model.TripSession{
		WorkingLocations:      day.Locations,
		Itinerary:             &model.Itinerary{Days: []model.DayPlan{day}},
		SelectedDay:           1,
		HighlightedLocationID: "b",
	}

	proj := Project(sess)
	require.Len(t, proj.Markers, 3)
	for i, m := range proj.Markers {
		require.Equal(t, i+1, m.Ordinal, "ordinal is 1-based within the day")
		require.Equal(t, 1, m.DayNumber)
		require.Equal(t, DayColor(1), m.Color)
	}
	require.False(t, proj.Markers[0].Highlighted)
	require.True(t, proj.Markers[1].Highlighted)
}

func TestProjectPreItineraryMarkers(t *testing.T) {
	sess := &model.TripSession{
		WorkingLocations: []model.Location{loc("a", "A", 15.5, 73.8)},
	}

	proj := Project(sess)
	require.Len(t, proj.Markers, 1)
	require.Zero(t, proj.Markers[0].Ordinal)
	require.Zero(t, proj.Markers[0].DayNumber)
	require.Equal(t, NeutralColor, proj.Markers[0].Color)
	require.Empty(t, proj.Routes)
}

func TestRoutesSolidAndDashed(t *testing.T) {
	day := threeStopDay()
	day.TravelTimes = []model.TravelSegment{
		{
			FromLocationID: "a",
			ToLocationID:   "b",
			DistanceKm:     9.4,
			Polyline:       "_p~iF~ps|U_ulLnnqC",
		},
		{
			FromLocationID: "b",
			ToLocationID:   "c",
		},
	}
	it := &model.Itinerary{Days: []model.DayPlan{day}}

	paths := Routes(it, 0)
	require.Len(t, paths, 2)

	solid := paths[0]
	require.Equal(t, RouteSolid, solid.Kind)
	require.Len(t, solid.Points, 2)
	require.Equal(t, 9.4, solid.DistanceKm)

	dashed := paths[1]
	require.Equal(t, RouteDashed, dashed.Kind)
	require.Len(t, dashed.Points, 2, "segment without geometry is exactly a 2-point straight line")
	require.Equal(t, [2]float64{15.5553, 73.7517}, dashed.Points[0])
	require.Equal(t, [2]float64{15.5735, 73.7406}, dashed.Points[1])
	require.Greater(t, dashed.DistanceKm, 0.0, "straight-line estimate fills the missing distance")
}

func TestRoutesUnknownEndpointSkipped(t *testing.T) {
	day := threeStopDay()
	day.TravelTimes = []model.TravelSegment{
		{FromLocationID: "a", ToLocationID: "ghost"},
		{FromLocationID: "b", ToLocationID: "c"},
	}
	it := &model.Itinerary{Days: []model.DayPlan{day}}

	paths := Routes(it, 0)
	require.Len(t, paths, 1, "segment with unknown endpoint is dropped silently")
	require.Equal(t, RouteDashed, paths[0].Kind)
}

func TestRoutesFallbackPath(t *testing.T) {
	// No segments at all but multiple stops: one dashed multi-point
	// path over the day's order.
	it := &model.Itinerary{Days: []model.DayPlan{threeStopDay()}}

	paths := Routes(it, 0)
	require.Len(t, paths, 1)
	require.Equal(t, RouteDashed, paths[0].Kind)
	require.Len(t, paths[0].Points, 3)
}

func TestRoutesDayScope(t *testing.T) {
	day1 := threeStopDay()
	day2 := model.DayPlan{
		DayNumber: 2,
		Locations: []model.Location{
			loc("d", "Old Goa", 15.5007, 73.9115),
			loc("e", "Dona Paula", 15.4569, 73.8057),
		},
	}
	it := &model.Itinerary{Days: []model.DayPlan{day1, day2}}

	require.Len(t, Routes(it, 0), 2, "all days in scope")

	paths := Routes(it, 2)
	require.Len(t, paths, 1)
	require.Equal(t, 2, paths[0].DayNumber)
}

func TestRoutesSingleStopDay(t *testing.T) {
	it := &model.Itinerary{Days: []model.DayPlan{{
		DayNumber: 1,
		Locations: []model.Location{loc("a", "A", 1, 1)},
	}}}

	require.Empty(t, Routes(it, 0), "a one-stop day has nothing to draw")
}

func TestComputeBounds(t *testing.T) {
	locs := []model.Location{
		loc("a", "A", 15.0, 73.0),
		loc("b", "B", 16.0, 74.0),
	}

	b := ComputeBounds(locs)
	require.NotNil(t, b)
	require.InDelta(t, 14.9, b.MinLat, 1e-9)
	require.InDelta(t, 16.1, b.MaxLat, 1e-9)
	require.InDelta(t, 72.9, b.MinLng, 1e-9)
	require.InDelta(t, 74.1, b.MaxLng, 1e-9)
}

func TestComputeBoundsSinglePoint(t *testing.T) {
	b := ComputeBounds([]model.Location{loc("a", "A", 15.5, 73.8)})
	require.NotNil(t, b)
	require.Greater(t, b.MaxLat, b.MinLat, "single point still yields a non-zero-area box")
	require.Greater(t, b.MaxLng, b.MinLng)
	require.InDelta(t, 0.02, b.MaxLat-b.MinLat, 1e-9)
}

func TestComputeBoundsEmpty(t *testing.T) {
	require.Nil(t, ComputeBounds(nil))
}

func TestBoundsFollowVisibleSet(t *testing.T) {
	day1 := threeStopDay()
	day2 := model.DayPlan{
		DayNumber: 2,
		Locations: []model.Location{loc("d", "D", 25.0, 80.0)},
	}
	all := append(append([]model.Location(nil), day1.Locations...), day2.Locations...)
	sess := &model.TripSession{
		WorkingLocations: all,
		Itinerary:        &model.Itinerary{Days: []model.DayPlan{day1, day2}},
	}

	allBounds := Project(sess).Bounds
	require.NotNil(t, allBounds)
	require.GreaterOrEqual(t, allBounds.MaxLat, 25.0)

	sess.SelectedDay = 1
	dayBounds := Project(sess).Bounds
	require.NotNil(t, dayBounds)
	require.Less(t, dayBounds.MaxLat, 16.0, "bounds shrink to the selected day's locations")
}
