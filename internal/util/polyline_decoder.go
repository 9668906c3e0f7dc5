package util

// DecodePolyline converts an encoded polyline string to a slice of lat/lng
// coordinates using Google's Encoded Polyline Algorithm Format.
// Default precision is 1e-5 (the Google Maps standard).
//
// Truncated input is tolerated: decoding stops at the end of the string and
// returns the points accumulated so far.
func DecodePolyline(encoded string) [][2]float64 {
	return DecodePolylineWithPrecision(encoded, 1e-5)
}

// DecodePolylineWithPrecision decodes a polyline with a custom precision
// factor. Some routing providers encode with 1e-6 (a multiplier of 1,000,000).
func DecodePolylineWithPrecision(encoded string, precision float64) [][2]float64 {
	var points [][2]float64
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		latDelta, next, ok := decodeChunk(encoded, index)
		if !ok {
			return points
		}
		lat += latDelta

		lngDelta, next, ok := decodeChunk(encoded, next)
		if !ok {
			return points
		}
		lng += lngDelta
		index = next

		// Coordinates in Google standard order: [latitude, longitude]
		points = append(points, [2]float64{
			float64(lat) * precision,
			float64(lng) * precision,
		})
	}

	return points
}

// decodeChunk reads one zigzag-encoded varint delta starting at index.
// Returns the delta, the index after the chunk, and whether a complete
// chunk was present.
func decodeChunk(encoded string, index int) (int, int, bool) {
	shift, result := 0, 0
	for {
		if index >= len(encoded) {
			return 0, index, false
		}
		b := int(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return -(result >> 1), index, true
	}
	return result >> 1, index, true
}
