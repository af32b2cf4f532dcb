package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the snapshot throttle deterministically
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestDrawer(listings []GeoListing) (*Drawer, *fakeClock) {
	d := NewDrawer(listings)
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	d.SetClock(clock.Now)
	return d, clock
}

var insideSquare = []GeoListing{
	{ID: 1, Point: Point{Lat: 5, Lon: 5}},
	{ID: 2, Point: Point{Lat: 50, Lon: 50}},
}

// drawSquare walks a stroke around the unit-10 square
func drawSquare(d *Drawer, clock *fakeClock) {
	d.PointerDown(Point{Lat: 0, Lon: 0})
	for _, p := range []Point{{Lat: 0, Lon: 10}, {Lat: 10, Lon: 10}, {Lat: 10, Lon: 0}} {
		clock.Advance(100 * time.Millisecond)
		d.PointerMove(p)
	}
}

func TestDrawerArm(t *testing.T) {
	d, _ := newTestDrawer(insideSquare)
	assert.Equal(t, StateIdle, d.State())

	assert.True(t, d.Arm())
	assert.Equal(t, StateArmed, d.State())

	d.Disarm()
	assert.Equal(t, StateIdle, d.State())
}

func TestDrawerArmWithoutGeoListings(t *testing.T) {
	d, _ := newTestDrawer(nil)
	assert.False(t, d.Arm())
	assert.Equal(t, StateIdle, d.State())
}

func TestDrawerCompletesStrokeAndQueries(t *testing.T) {
	d, clock := newTestDrawer(insideSquare)
	require.True(t, d.Arm())

	drawSquare(d, clock)
	assert.Equal(t, StateDrawing, d.State())

	results, ok := d.PointerUp()
	require.True(t, ok)
	assert.Equal(t, StateCompleted, d.State())

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
	assert.Len(t, d.Selection(), 4)
}

func TestDrawerDiscardsDegenerateStroke(t *testing.T) {
	d, clock := newTestDrawer(insideSquare)
	require.True(t, d.Arm())

	d.PointerDown(Point{Lat: 0, Lon: 0})
	clock.Advance(100 * time.Millisecond)
	d.PointerMove(Point{Lat: 0, Lon: 1})

	results, ok := d.PointerUp()
	assert.False(t, ok)
	assert.Nil(t, results)
	// discarded silently, still armed for another attempt, no overlay
	assert.Equal(t, StateArmed, d.State())
	assert.Empty(t, d.Selection())
}

func TestDrawerMinDistanceFilter(t *testing.T) {
	d, clock := newTestDrawer(insideSquare)
	require.True(t, d.Arm())

	d.PointerDown(Point{Lat: 0, Lon: 0})
	clock.Advance(100 * time.Millisecond)

	// below the min distance threshold: not recorded
	d.PointerMove(Point{Lat: 0.00001, Lon: 0.00001})
	assert.Len(t, d.Path(), 1)

	// at/above the threshold: recorded
	d.PointerMove(Point{Lat: 0.001, Lon: 0})
	assert.Len(t, d.Path(), 2)
}

func TestDrawerIgnoresSecondPointerDown(t *testing.T) {
	d, clock := newTestDrawer(insideSquare)
	require.True(t, d.Arm())

	require.True(t, d.PointerDown(Point{Lat: 0, Lon: 0}))
	clock.Advance(100 * time.Millisecond)
	d.PointerMove(Point{Lat: 0, Lon: 10})

	// double tap mid-stroke must not restart the stroke
	assert.False(t, d.PointerDown(Point{Lat: 99, Lon: 99}))
	assert.Len(t, d.Path(), 2)
	assert.Equal(t, StateDrawing, d.State())
}

func TestDrawerSnapshotThrottle(t *testing.T) {
	d, clock := newTestDrawer(insideSquare)
	require.True(t, d.Arm())

	d.PointerDown(Point{Lat: 0, Lon: 0})

	// within the interval: authoritative path grows, snapshot does not
	clock.Advance(10 * time.Millisecond)
	published := d.PointerMove(Point{Lat: 1, Lon: 0})
	assert.False(t, published)
	assert.Len(t, d.Path(), 2)
	assert.Len(t, d.Snapshot(), 1)

	clock.Advance(10 * time.Millisecond)
	published = d.PointerMove(Point{Lat: 2, Lon: 0})
	assert.False(t, published)
	assert.Len(t, d.Path(), 3)
	assert.Len(t, d.Snapshot(), 1)

	// past the interval: snapshot catches up with the full buffer
	clock.Advance(100 * time.Millisecond)
	published = d.PointerMove(Point{Lat: 3, Lon: 0})
	assert.True(t, published)
	assert.Len(t, d.Path(), 4)
	assert.Len(t, d.Snapshot(), 4)
}

func TestDrawerPointerUpUsesAuthoritativeBuffer(t *testing.T) {
	d, clock := newTestDrawer(insideSquare)
	require.True(t, d.Arm())

	// all moves inside the throttle window: snapshot stays stale but the
	// final polygon must still be built from every recorded point
	d.PointerDown(Point{Lat: 0, Lon: 0})
	for _, p := range []Point{{Lat: 0, Lon: 10}, {Lat: 10, Lon: 10}, {Lat: 10, Lon: 0}} {
		clock.Advance(time.Millisecond)
		d.PointerMove(p)
	}
	assert.Len(t, d.Snapshot(), 1)

	results, ok := d.PointerUp()
	require.True(t, ok)
	require.Len(t, results, 1)
	assert.Len(t, d.Selection(), 4)
}

func TestDrawerNewStrokeClearsPriorSelection(t *testing.T) {
	d, clock := newTestDrawer(insideSquare)
	require.True(t, d.Arm())
	drawSquare(d, clock)
	_, ok := d.PointerUp()
	require.True(t, ok)

	require.True(t, d.Arm())
	assert.True(t, d.PointerDown(Point{Lat: 20, Lon: 20}))
	assert.Empty(t, d.Selection())
	assert.Empty(t, d.Results())
}

func TestDrawerClearIdempotent(t *testing.T) {
	d, clock := newTestDrawer(insideSquare)
	require.True(t, d.Arm())
	drawSquare(d, clock)
	d.PointerUp()

	d.Clear()
	assert.Equal(t, StateIdle, d.State())
	assert.Empty(t, d.Selection())
	assert.Empty(t, d.Results())

	// safe to repeat, and safe before anything ever happened
	d.Clear()
	NewDrawer(nil).Clear()
}

func TestDrawerEmptyListingSetForcesReset(t *testing.T) {
	d, clock := newTestDrawer(insideSquare)
	require.True(t, d.Arm())
	d.PointerDown(Point{Lat: 0, Lon: 0})
	clock.Advance(100 * time.Millisecond)
	d.PointerMove(Point{Lat: 0, Lon: 10})

	d.SetListings(nil)
	assert.Equal(t, StateIdle, d.State())
	assert.Empty(t, d.Path())

	// and the control stays disabled
	assert.False(t, d.Arm())
}
