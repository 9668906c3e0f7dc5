package util

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const earthRadiusMeters = 6371000.0

// HaversineDistance returns the great-circle distance in meters between
// two lat/lng points.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat1, lng1))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat2, lng2))

	angle := s1.Angle(s2.ChordAngleBetweenPoints(p1, p2).Angle())
	return angle.Radians() * earthRadiusMeters
}

// StraightLineKm returns the great-circle distance in kilometers,
// used to label estimated travel segments that the backend returned
// without a routed distance.
func StraightLineKm(lat1, lng1, lat2, lng2 float64) float64 {
	return HaversineDistance(lat1, lng1, lat2, lng2) / 1000.0
}
