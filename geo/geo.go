// Package geo implements the spatial search behind the map view: coordinate
// normalization, freehand selection polygons, and the point-in-polygon query.
package geo

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
)

// Point is a (latitude, longitude) pair in degrees
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Orb converts to an orb.Point (lon/lat order, as orb expects)
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// GeoListing is a listing whose coordinates parsed to finite numbers
type GeoListing struct {
	ID      int
	Point   Point
	Listing listing.Listing
}

// ParseCoord extracts a finite float from a loosely-typed coordinate value.
// Sellers and upstream feeds supply numbers, numeric strings, or JSON
// numbers; anything else is rejected.
func ParseCoord(v interface{}) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ClampLat clamps a latitude into [-90, 90]
func ClampLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

// ClampLon clamps a longitude into [-180, 180]
func ClampLon(lon float64) float64 {
	return math.Max(-180, math.Min(180, lon))
}

// Normalize derives a GeoListing from a listing. It returns false when
// either coordinate is missing; valid but out-of-range coordinates are
// clamped rather than rejected, so malformed upstream data does not drop
// the listing from the map.
func Normalize(l listing.Listing) (GeoListing, bool) {
	if !l.Latitude.Valid || !l.Longitude.Valid {
		return GeoListing{}, false
	}

	lat := l.Latitude.Float64
	lon := l.Longitude.Float64
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return GeoListing{}, false
	}

	return GeoListing{
		ID:      l.ID,
		Point:   Point{Lat: ClampLat(lat), Lon: ClampLon(lon)},
		Listing: l,
	}, true
}

// NormalizeRaw is the loosely-typed variant used for listings arriving over
// the REST surface, where coordinates may be numeric strings.
func NormalizeRaw(l listing.Listing, rawLat, rawLon interface{}) (GeoListing, bool) {
	lat, ok := ParseCoord(rawLat)
	if !ok {
		return GeoListing{}, false
	}
	lon, ok := ParseCoord(rawLon)
	if !ok {
		return GeoListing{}, false
	}

	return GeoListing{
		ID:      l.ID,
		Point:   Point{Lat: ClampLat(lat), Lon: ClampLon(lon)},
		Listing: l,
	}, true
}

// NormalizeAll filters a listing slice down to its geo-tagged members,
// preserving input order.
func NormalizeAll(listings []listing.Listing) []GeoListing {
	var geo []GeoListing
	for _, l := range listings {
		if gl, ok := Normalize(l); ok {
			geo = append(geo, gl)
		}
	}
	return geo
}

// Extent returns the bounding box of the geo-tagged listings. The second
// return value is false when the slice is empty.
func Extent(listings []GeoListing) (orb.Bound, bool) {
	if len(listings) == 0 {
		return orb.Bound{}, false
	}

	bound := orb.Bound{Min: listings[0].Point.Orb(), Max: listings[0].Point.Orb()}
	for _, gl := range listings[1:] {
		bound = bound.Extend(gl.Point.Orb())
	}
	return bound, true
}
