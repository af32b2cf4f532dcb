package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/GuilhermeTebaldi/templesale2-sub001/config"
	"github.com/GuilhermeTebaldi/templesale2-sub001/cookie"
	"github.com/GuilhermeTebaldi/templesale2-sub001/geo"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
	"github.com/GuilhermeTebaldi/templesale2-sub001/local"
	"github.com/GuilhermeTebaldi/templesale2-sub001/mapassets"
	"github.com/GuilhermeTebaldi/templesale2-sub001/search"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
)

// drawSession binds a freehand drawer to a browser session.
type drawSession struct {
	drawer   *geo.Drawer
	lastSeen time.Time
}

type drawRegistry struct {
	mu       sync.Mutex
	sessions map[string]*drawSession
}

var drawSessions = &drawRegistry{sessions: make(map[string]*drawSession)}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}

// get returns the session's drawer, creating it when needed, and prunes
// sessions idle past the TTL.
func (r *drawRegistry) get(id string, listings []geo.GeoListing) *geo.Drawer {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for sid, s := range r.sessions {
		if now.Sub(s.lastSeen) > config.DrawSessionTTL {
			delete(r.sessions, sid)
		}
	}

	s, ok := r.sessions[id]
	if !ok {
		s = &drawSession{drawer: geo.NewDrawer(listings)}
		r.sessions[id] = s
	}
	s.lastSeen = now
	return s.drawer
}

// lookup returns an existing drawer without creating one.
func (r *drawRegistry) lookup(id string) *geo.Drawer {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil
	}
	s.lastSeen = time.Now()
	return s.drawer
}

// sessionDrawer resolves the request's drawer from the draw_session cookie.
func sessionDrawer(c *fiber.Ctx, listings []geo.GeoListing) *geo.Drawer {
	id := cookie.GetDrawSession(c)
	if id == "" {
		id = newSessionID()
		cookie.SetDrawSession(c, id)
	}
	return drawSessions.get(id, listings)
}

// requestDrawer is for pointer endpoints: no drawer means no active page.
func requestDrawer(c *fiber.Ctx) *geo.Drawer {
	id := cookie.GetDrawSession(c)
	if id == "" {
		return nil
	}
	return drawSessions.lookup(id)
}

// mapListings loads the active listings and splits them into mappable ones
// and a count of those without usable coordinates.
func mapListings(c *fiber.Ctx) ([]geo.GeoListing, int, error) {
	listings, err := listing.GetActiveListings(local.GetUserID(c), homePageSize)
	if err != nil {
		return nil, 0, err
	}
	mappable := geo.NormalizeAll(listings)
	return mappable, len(listings) - len(mappable), nil
}

// mapCenter opens on the first geo-tagged listing at neighborhood zoom, or
// the configured fallback when nothing is mappable. With more than one
// listing the full extent is passed along so the view fits every marker.
func mapCenter(mappable []geo.GeoListing) ui.MapCenter {
	if len(mappable) == 0 {
		return ui.MapCenter{
			Lat:  config.MapFallbackLat,
			Lon:  config.MapFallbackLon,
			Zoom: config.MapFallbackZoom,
		}
	}

	center := ui.MapCenter{
		Lat:  mappable[0].Point.Lat,
		Lon:  mappable[0].Point.Lon,
		Zoom: config.MapNeighborhoodZoom,
	}
	if len(mappable) > 1 {
		if bound, ok := geo.Extent(mappable); ok {
			center.HasBounds = true
			center.MinLat = bound.Min[1]
			center.MinLon = bound.Min[0]
			center.MaxLat = bound.Max[1]
			center.MaxLon = bound.Max[0]
		}
	}
	return center
}

func drawerResults(d *geo.Drawer) []listing.Listing {
	var out []listing.Listing
	for _, gl := range d.Results() {
		out = append(out, gl.Listing)
	}
	return out
}

// HandleMapPage renders the map view. The map library bundle is mirrored
// on first use; when that fails the page degrades to a notice and the next
// request retries.
func HandleMapPage(c *fiber.Ctx) error {
	if _, err := mapassets.Default().Load(c.Context()); err != nil {
		return render(c, ui.MapUnavailablePage(pageCtx(c)))
	}

	mappable, skipped, err := mapListings(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load listings")
	}

	d := sessionDrawer(c, mappable)
	d.SetListings(mappable)

	armed := d.State() == geo.StateArmed
	hasSelection := d.State() == geo.StateCompleted

	return render(c, ui.MapPage(mappable, drawerResults(d), mapCenter(mappable),
		armed, hasSelection, skipped, pageCtx(c)))
}

// HandleDrawArm toggles drawing mode for the session.
func HandleDrawArm(c *fiber.Ctx) error {
	mappable, _, err := mapListings(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load listings")
	}

	d := sessionDrawer(c, mappable)
	if d.State() == geo.StateArmed {
		d.Disarm()
	} else {
		d.SetListings(mappable)
		d.Arm()
	}

	armed := d.State() == geo.StateArmed
	hasSelection := d.State() == geo.StateCompleted
	return render(c, ui.DrawControls(armed, hasSelection, len(mappable) == 0, local.GetLang(c)))
}

func pointFromForm(c *fiber.Ctx) (geo.Point, bool) {
	lat, ok := geo.ParseCoord(c.FormValue("lat"))
	if !ok {
		return geo.Point{}, false
	}
	lon, ok := geo.ParseCoord(c.FormValue("lon"))
	if !ok {
		return geo.Point{}, false
	}
	return geo.Point{Lat: geo.ClampLat(lat), Lon: geo.ClampLon(lon)}, true
}

// HandleDrawStart begins a stroke at the pointer-down position.
func HandleDrawStart(c *fiber.Ctx) error {
	d := requestDrawer(c)
	if d == nil {
		return fiber.NewError(fiber.StatusConflict, "no drawing session")
	}
	p, ok := pointFromForm(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "invalid coordinates")
	}
	started := d.PointerDown(p)
	return c.JSON(fiber.Map{"started": started})
}

// HandleDrawPoint extends the stroke. The response carries the throttled
// snapshot so the browser can redraw the overlay; between publishes the
// point still lands in the authoritative buffer.
func HandleDrawPoint(c *fiber.Ctx) error {
	d := requestDrawer(c)
	if d == nil {
		return fiber.NewError(fiber.StatusConflict, "no drawing session")
	}
	p, ok := pointFromForm(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "invalid coordinates")
	}

	published := d.PointerMove(p)
	resp := fiber.Map{"published": published}
	if published {
		pts := d.Snapshot()
		coords := make([][2]float64, len(pts))
		for i, pt := range pts {
			coords[i] = [2]float64{pt.Lat, pt.Lon}
		}
		resp["points"] = coords
	}
	return c.JSON(resp)
}

// HandleDrawEnd completes the stroke and returns the results panel, or an
// empty panel column when the stroke was too short to form an area.
func HandleDrawEnd(c *fiber.Ctx) error {
	d := requestDrawer(c)
	if d == nil {
		return fiber.NewError(fiber.StatusConflict, "no drawing session")
	}

	_, completed := d.PointerUp()
	if !completed {
		// Too few points: still armed, nothing selected
		c.Set("HX-Trigger", "draw:discarded")
		return render(c, ui.EmptyResponse())
	}

	// Completion exits draw mode; the control strip rides along out-of-band
	// so its armed state stays in step with the drawer.
	return render(c, g.Group([]g.Node{
		ui.ResultsPanel(drawerResults(d), "", pageCtx(c)),
		ui.DrawControlsOOB(false, true, false, local.GetLang(c)),
	}))
}

// HandleDrawClear drops the selection and re-renders the whole map section.
func HandleDrawClear(c *fiber.Ctx) error {
	mappable, skipped, err := mapListings(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load listings")
	}

	d := sessionDrawer(c, mappable)
	d.Clear()
	d.SetListings(mappable)

	return render(c, ui.MapSection(mappable, nil, mapCenter(mappable),
		false, false, skipped, pageCtx(c)))
}

// HandleMapResults filters the frozen result set by name or category.
func HandleMapResults(c *fiber.Ctx) error {
	d := requestDrawer(c)
	if d == nil {
		return render(c, ui.ResultsPanel(nil, "", pageCtx(c)))
	}

	f := c.Query("f")
	filtered := search.FilterListings(drawerResults(d), f)
	return render(c, ui.ResultsPanel(filtered, f, pageCtx(c)))
}
