package geo

import (
	"math"
	"sync"
	"time"

	"github.com/GuilhermeTebaldi/templesale2-sub001/config"
)

// DrawState is the freehand drawer's lifecycle state
type DrawState string

const (
	// StateIdle: draw mode off, no stroke in progress
	StateIdle DrawState = "idle"
	// StateArmed: draw mode on, waiting for a pointer-down
	StateArmed DrawState = "armed"
	// StateDrawing: pointer held down, accumulating points
	StateDrawing DrawState = "drawing"
	// StateCompleted: polygon closed, selection and results retained
	StateCompleted DrawState = "completed"
)

// Drawer is the freehand polygon drawing state machine for one map session.
// Pointer events arrive through the HTTP layer; the authoritative point
// buffer updates on every qualifying move, while the published snapshot is
// throttled so consumers re-render at a bounded rate.
type Drawer struct {
	mu sync.Mutex

	state    DrawState
	listings []GeoListing

	path        []Point // authoritative stroke buffer
	snapshot    []Point // throttled copy for consumers
	lastPublish time.Time

	selection Polygon
	results   []GeoListing

	minDistance float64
	interval    time.Duration
	now         func() time.Time
}

// NewDrawer creates a drawer over the current geo-tagged listing set
func NewDrawer(listings []GeoListing) *Drawer {
	return &Drawer{
		state:       StateIdle,
		listings:    listings,
		minDistance: config.MinDrawDistance,
		interval:    config.DrawSnapshotInterval,
		now:         time.Now,
	}
}

// SetClock overrides the drawer's clock; tests use this to drive the
// snapshot throttle deterministically.
func (d *Drawer) SetClock(now func() time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.now = now
}

// State returns the current state
func (d *Drawer) State() DrawState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// SetListings replaces the geo-tagged listing set. An empty set forces a
// reset to Idle since there is nothing to select.
func (d *Drawer) SetListings(listings []GeoListing) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listings = listings
	if len(listings) == 0 {
		d.resetLocked()
	}
}

// Arm toggles draw mode on. Returns false (and stays Idle) when there are
// no geo-tagged listings or a stroke is already in progress.
func (d *Drawer) Arm() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.listings) == 0 {
		return false
	}
	if d.state == StateDrawing {
		return false
	}
	d.state = StateArmed
	return true
}

// Disarm toggles draw mode off without touching an existing selection
func (d *Drawer) Disarm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateArmed {
		d.state = StateIdle
	}
}

// PointerDown starts a stroke. Any prior selection and results are cleared.
// A pointer-down while already drawing (double tap) is ignored.
func (d *Drawer) PointerDown(p Point) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateArmed {
		return false
	}

	d.selection = nil
	d.results = nil
	d.path = []Point{p}
	d.snapshot = []Point{p}
	d.lastPublish = d.now()
	d.state = StateDrawing
	return true
}

// PointerMove appends a point to the stroke when it moved at least the
// minimum distance from the last recorded point. The authoritative buffer
// always updates; the return value reports whether the published snapshot
// was refreshed on this event.
func (d *Drawer) PointerMove(p Point) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateDrawing {
		return false
	}

	last := d.path[len(d.path)-1]
	if math.Abs(p.Lat-last.Lat)+math.Abs(p.Lon-last.Lon) < d.minDistance {
		return false
	}
	d.path = append(d.path, p)

	now := d.now()
	if now.Sub(d.lastPublish) < d.interval {
		return false
	}
	d.snapshot = append([]Point(nil), d.path...)
	d.lastPublish = now
	return true
}

// PointerUp closes the stroke. Strokes with fewer than three points are
// discarded silently and the drawer returns to Armed. Otherwise the path
// freezes into the selection polygon, the spatial query runs, and the
// drawer leaves draw mode with the results retained.
func (d *Drawer) PointerUp() ([]GeoListing, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateDrawing {
		return nil, false
	}

	path := d.path
	d.path = nil
	d.snapshot = nil

	if len(path) < 3 {
		d.state = StateArmed
		return nil, false
	}

	d.selection = Polygon(path)
	d.results = Query(d.selection, d.listings)
	d.state = StateCompleted
	return d.results, true
}

// Clear removes the selection and results and exits draw mode. Safe to call
// from any state, any number of times.
func (d *Drawer) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetLocked()
}

func (d *Drawer) resetLocked() {
	d.state = StateIdle
	d.path = nil
	d.snapshot = nil
	d.selection = nil
	d.results = nil
}

// Snapshot returns the throttled copy of the live stroke
func (d *Drawer) Snapshot() []Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Point(nil), d.snapshot...)
}

// Path returns the authoritative stroke buffer
func (d *Drawer) Path() []Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Point(nil), d.path...)
}

// Selection returns the completed selection polygon, or nil
func (d *Drawer) Selection() Polygon {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append(Polygon(nil), d.selection...)
}

// Results returns the last completed query's matches
func (d *Drawer) Results() []GeoListing {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]GeoListing(nil), d.results...)
}
