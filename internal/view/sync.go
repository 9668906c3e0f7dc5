package view

import (
	"github.com/paulmach/orb"

	"tripweaver/internal/model"
	"tripweaver/internal/util"
)

// Route classification: a routed polyline is drawn solid, a synthesized
// straight connection is drawn dashed.
const (
	RouteSolid  = "solid"
	RouteDashed = "dashed"
)

// Marker is one map pin / list entry in the current visible set.
// Ordinal is the 1-based position within the owning day, 0 before an
// itinerary exists.
type Marker struct {
	LocationID  string  `json:"location_id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DayNumber   int     `json:"day_number,omitempty"`
	Ordinal     int     `json:"ordinal,omitempty"`
	Color       string  `json:"color"`
	UserAdded   bool    `json:"user_added"`
	Highlighted bool    `json:"highlighted"`
}

// RoutePath is one drawable line on the map. Points are [lat, lng]
// pairs in travel order.
type RoutePath struct {
	DayNumber  int          `json:"day_number"`
	Color      string       `json:"color"`
	Kind       string       `json:"kind"`
	Points     [][2]float64 `json:"points"`
	DistanceKm float64      `json:"distance_km,omitempty"`
}

// Bounds is the viewport box over the visible locations, already
// inflated so a lone point still produces a non-zero area.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Projection is the consistent "what is visible right now" answer
// shared by the location list and the map.
type Projection struct {
	SelectedDay int         `json:"selected_day"`
	Markers     []Marker    `json:"markers"`
	Routes      []RoutePath `json:"routes"`
	Bounds      *Bounds     `json:"bounds,omitempty"`
}

// boundsPadRatio inflates each dimension of the viewport by 10% of its
// span; boundsMinPad applies when the span is zero (a single point).
const (
	boundsPadRatio = 0.1
	boundsMinPad   = 0.01
)

// Project derives the full view state for a session: day-filtered
// locations with ordinals and colors, solid/dashed route geometry, and
// the viewport bounds.
func Project(sess *model.TripSession) Projection {
	visible := VisibleLocations(sess)
	meta := markerMetadata(sess.Itinerary)

	markers := make([]Marker, 0, len(visible))
	for _, loc := range visible {
		m := Marker{
			LocationID:  loc.ID,
			Name:        loc.Name,
			Lat:         loc.Lat,
			Lng:         loc.Lng,
			Color:       NeutralColor,
			UserAdded:   loc.UserAdded,
			Highlighted: sess.HighlightedLocationID == loc.ID,
		}
		if md, ok := meta[loc.ID]; ok {
			m.DayNumber = md.day
			m.Ordinal = md.ordinal
			m.Color = DayColor(md.day)
		}
		markers = append(markers, m)
	}

	return Projection{
		SelectedDay: sess.SelectedDay,
		Markers:     markers,
		Routes:      Routes(sess.Itinerary, sess.SelectedDay),
		Bounds:      ComputeBounds(visible),
	}
}

// VisibleLocations applies the day filter: the full working set when no
// itinerary exists or "all days" is selected, otherwise exactly the
// selected day's locations in itinerary order. An unknown day falls
// back to the full set.
func VisibleLocations(sess *model.TripSession) []model.Location {
	if sess.Itinerary == nil || sess.SelectedDay == 0 {
		return sess.WorkingLocations
	}
	if day, ok := sess.Itinerary.DayLookup(sess.SelectedDay); ok {
		return day.Locations
	}
	return sess.WorkingLocations
}

type markerMeta struct {
	day     int
	ordinal int
}

func markerMetadata(it *model.Itinerary) map[string]markerMeta {
	meta := make(map[string]markerMeta)
	if it == nil {
		return meta
	}
	for _, day := range it.Days {
		for i, loc := range day.Locations {
			meta[loc.ID] = markerMeta{day: day.DayNumber, ordinal: i + 1}
		}
	}
	return meta
}

// Routes derives drawable paths for every day in scope. Segments with
// polylines decode to solid paths; segments without become two-point
// dashed paths; a day with two or more stops but no segments at all
// gets one multi-point dashed path so every multi-stop day shows some
// route indication. Segments referencing unknown location ids are
// skipped silently.
func Routes(it *model.Itinerary, selectedDay int) []RoutePath {
	if it == nil {
		return nil
	}

	var paths []RoutePath
	for _, day := range it.Days {
		if selectedDay != 0 && day.DayNumber != selectedDay {
			continue
		}
		paths = append(paths, dayRoutes(day)...)
	}
	return paths
}

func dayRoutes(day model.DayPlan) []RoutePath {
	color := DayColor(day.DayNumber)

	lookup := make(map[string]model.Location, len(day.Locations))
	for _, loc := range day.Locations {
		lookup[loc.ID] = loc
	}

	var paths []RoutePath
	for _, seg := range day.TravelTimes {
		from, okFrom := lookup[seg.FromLocationID]
		to, okTo := lookup[seg.ToLocationID]
		if !okFrom || !okTo {
			continue
		}

		if seg.Polyline != "" {
			paths = append(paths, RoutePath{
				DayNumber:  day.DayNumber,
				Color:      color,
				Kind:       RouteSolid,
				Points:     util.DecodePolyline(seg.Polyline),
				DistanceKm: seg.DistanceKm,
			})
			continue
		}

		distance := seg.DistanceKm
		if distance == 0 {
			distance = util.StraightLineKm(from.Lat, from.Lng, to.Lat, to.Lng)
		}
		paths = append(paths, RoutePath{
			DayNumber: day.DayNumber,
			Color:     color,
			Kind:      RouteDashed,
			Points: [][2]float64{
				{from.Lat, from.Lng},
				{to.Lat, to.Lng},
			},
			DistanceKm: distance,
		})
	}

	if len(day.TravelTimes) == 0 && len(day.Locations) >= 2 {
		points := make([][2]float64, 0, len(day.Locations))
		total := 0.0
		for i, loc := range day.Locations {
			points = append(points, [2]float64{loc.Lat, loc.Lng})
			if i > 0 {
				prev := day.Locations[i-1]
				total += util.StraightLineKm(prev.Lat, prev.Lng, loc.Lat, loc.Lng)
			}
		}
		paths = append(paths, RoutePath{
			DayNumber:  day.DayNumber,
			Color:      color,
			Kind:       RouteDashed,
			Points:     points,
			DistanceKm: total,
		})
	}

	return paths
}

// ComputeBounds returns the minimal box over the locations inflated by
// 10% of each dimension's span, with a small constant floor so a single
// point still yields a usable viewport. Nil when nothing is visible.
func ComputeBounds(locations []model.Location) *Bounds {
	if len(locations) == 0 {
		return nil
	}

	b := orb.Point{locations[0].Lng, locations[0].Lat}.Bound()
	for _, loc := range locations[1:] {
		b = b.Extend(orb.Point{loc.Lng, loc.Lat})
	}

	lngPad := (b.Right() - b.Left()) * boundsPadRatio
	if lngPad == 0 {
		lngPad = boundsMinPad
	}
	latPad := (b.Top() - b.Bottom()) * boundsPadRatio
	if latPad == 0 {
		latPad = boundsMinPad
	}

	return &Bounds{
		MinLat: b.Bottom() - latPad,
		MinLng: b.Left() - lngPad,
		MaxLat: b.Top() + latPad,
		MaxLng: b.Right() + lngPad,
	}
}
