package geo

// Polygon is an ordered vertex list, treated as implicitly closed: the last
// vertex connects back to the first whether or not the caller repeated it.
type Polygon []Point

// Contains reports whether p lies inside the polygon using the ray-casting
// even-odd rule: a horizontal ray from p crosses an odd number of edges.
//
// Edges whose endpoints share the same latitude are skipped. This is a
// deliberate tie-break, not a bug: it avoids a zero division and keeps
// shared-vertex crossings from being counted twice, consistent with the
// rest of the rule. Points exactly on a boundary follow whatever the rule
// yields; there is no separate on-boundary case.
func (poly Polygon) Contains(p Point) bool {
	if len(poly) < 3 {
		return false
	}

	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		a, b := poly[i], poly[j]
		j = i

		if a.Lat == b.Lat {
			continue
		}
		if (a.Lat > p.Lat) == (b.Lat > p.Lat) {
			continue
		}

		crossLon := (b.Lon-a.Lon)*(p.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lon
		if p.Lon < crossLon {
			inside = !inside
		}
	}
	return inside
}

// Query returns the geo-tagged listings whose coordinates fall inside the
// polygon, in the same relative order as the input. Pure and deterministic;
// O(polygon edges x listings), fine for human-drawn polygons.
func Query(poly Polygon, listings []GeoListing) []GeoListing {
	var matches []GeoListing
	for _, gl := range listings {
		if poly.Contains(gl.Point) {
			matches = append(matches, gl)
		}
	}
	return matches
}
