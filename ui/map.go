package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/GuilhermeTebaldi/templesale2-sub001/format"
	"github.com/GuilhermeTebaldi/templesale2-sub001/geo"
	"github.com/GuilhermeTebaldi/templesale2-sub001/i18n"
	"github.com/GuilhermeTebaldi/templesale2-sub001/imagestore"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
)

// MapCenter tells the browser where to open the map. When HasBounds is set
// the view fits the full listing extent instead of a fixed center/zoom.
type MapCenter struct {
	Lat  float64
	Lon  float64
	Zoom int

	HasBounds bool
	MinLat    float64
	MinLon    float64
	MaxLat    float64
	MaxLon    float64
}

// listingDataElements emits one hidden div per mappable listing. map.js
// reads these to place markers; swapping the container replaces the whole
// marker set at once.
func listingDataElements(listings []geo.GeoListing) []g.Node {
	var nodes []g.Node
	for _, gl := range listings {
		imageURL := ""
		if gl.Listing.ImageCount > 0 {
			imageURL = imagestore.SignedImageURL(gl.ID, 1, "480w")
		}
		nodes = append(nodes,
			Div(
				Class("hidden"),
				g.Attr("data-listing-id", fmt.Sprintf("%d", gl.ID)),
				g.Attr("data-lat", fmt.Sprintf("%f", gl.Point.Lat)),
				g.Attr("data-lon", fmt.Sprintf("%f", gl.Point.Lon)),
				g.Attr("data-title", gl.Listing.Title),
				g.Attr("data-price", format.Price(gl.Listing.Price, gl.Listing.Currency)),
				g.Attr("data-image", imageURL),
			),
		)
	}
	return nodes
}

// MapMarkerData returns just the marker data container for HTMX updates.
func MapMarkerData(listings []geo.GeoListing) g.Node {
	return Div(
		ID("map-data"),
		Class("hidden"),
		g.Group(listingDataElements(listings)),
	)
}

// DrawControls is the swappable arm/clear control strip. armed reflects
// whether the next pointer-down starts a stroke; hasSelection whether an
// area is currently applied; disabled grays out the toggle when no listing
// carries coordinates.
func DrawControls(armed, hasSelection, disabled bool, lang string) g.Node {
	return drawControls(armed, hasSelection, disabled, lang)
}

// DrawControlsOOB is the out-of-band variant: responses targeting another
// element carry it along so the control strip stays in step with the
// server-side draw state.
func DrawControlsOOB(armed, hasSelection, disabled bool, lang string) g.Node {
	return drawControls(armed, hasSelection, disabled, lang, g.Attr("hx-swap-oob", "outerHTML"))
}

func drawControls(armed, hasSelection, disabled bool, lang string, extra ...g.Node) g.Node {
	drawClass := "px-3 py-1 rounded border text-sm"
	switch {
	case disabled:
		drawClass += " bg-gray-100 text-gray-400 cursor-not-allowed"
	case armed:
		drawClass += " bg-blue-500 text-white"
	default:
		drawClass += " bg-white text-gray-700 hover:bg-gray-50"
	}

	return Div(
		ID("draw-controls"),
		Class("flex items-center gap-2 mb-2"),
		g.Attr("data-armed", fmt.Sprintf("%t", armed && !disabled)),
		g.Group(extra),
		Button(
			Type("button"),
			ID("draw-toggle"),
			Class(drawClass),
			g.If(disabled, Disabled()),
			g.If(!disabled, hx.Post("/api/map/draw/arm")),
			g.If(!disabled, hx.Target("#draw-controls")),
			g.If(!disabled, hx.Swap("outerHTML")),
			g.Text(i18n.T(lang, "map.draw")),
		),
		g.If(hasSelection || armed,
			Button(
				Type("button"),
				Class("px-3 py-1 rounded border text-sm bg-white text-gray-700 hover:bg-gray-50"),
				hx.Post("/api/map/draw/clear"),
				hx.Target("#map-section"),
				hx.Swap("outerHTML"),
				g.Text(i18n.T(lang, "map.clear")),
			),
		),
	)
}

// ResultsPanel lists the listings inside the drawn area with a text filter
// over the frozen result set.
func ResultsPanel(results []listing.Listing, filter string, pc Ctx) g.Node {
	var rows []g.Node
	if len(results) == 0 {
		rows = append(rows, P(Class("text-sm text-gray-500 p-3"), g.Text(i18n.T(pc.Lang, "search.empty"))))
	}
	for _, l := range results {
		rows = append(rows,
			A(
				Href(fmt.Sprintf("/listing/%d", l.ID)),
				Class("block border-b px-3 py-2 hover:bg-gray-50"),
				Div(Class("font-medium text-sm"), g.Text(l.Title)),
				Div(
					Class("flex items-center justify-between"),
					Span(Class("text-xs text-gray-500"), g.Text(l.Category)),
					Span(Class("text-sm font-semibold"), g.Text(format.Price(l.Price, l.Currency))),
				),
			),
		)
	}

	return Div(
		ID("map-results"),
		Class("border rounded bg-white"),
		Div(
			Class("p-3 border-b"),
			H3(Class("font-semibold text-sm mb-2"), g.Text(i18n.T(pc.Lang, "map.results"))),
			Input(
				Type("search"),
				Name("f"),
				Value(filter),
				Placeholder(i18n.T(pc.Lang, "map.filter")),
				Class("w-full border rounded px-2 py-1 text-sm"),
				hx.Get("/map/results"),
				hx.Trigger("input changed delay:300ms, search"),
				hx.Target("#map-results"),
				hx.Swap("outerHTML"),
			),
		),
		Div(
			Class("max-h-96 overflow-y-auto"),
			g.Group(rows),
		),
	)
}

// MapSection is the whole map view: controls, canvas, marker data and the
// results panel. The draw endpoints re-render pieces of it via htmx.
func MapSection(mappable []geo.GeoListing, results []listing.Listing, center MapCenter,
	armed, hasSelection bool, skipped int, pc Ctx) g.Node {

	initScript := fmt.Sprintf("initMap({lat: %f, lon: %f, zoom: %d});",
		center.Lat, center.Lon, center.Zoom)
	if center.HasBounds {
		initScript = fmt.Sprintf(
			"initMap({lat: %f, lon: %f, zoom: %d, bounds: [[%f, %f], [%f, %f]]});",
			center.Lat, center.Lon, center.Zoom,
			center.MinLat, center.MinLon, center.MaxLat, center.MaxLon)
	}

	var banner g.Node
	switch {
	case len(mappable) == 0:
		banner = Div(
			Class("bg-yellow-50 border border-yellow-300 text-yellow-800 text-sm px-3 py-2 rounded mb-2"),
			g.Text(i18n.T(pc.Lang, "map.no_geo")),
		)
	case skipped > 0:
		banner = Div(
			Class("bg-yellow-50 border border-yellow-300 text-yellow-800 text-sm px-3 py-2 rounded mb-2"),
			g.Text(i18n.T(pc.Lang, "map.no_location")),
		)
	}

	var resultsPanel g.Node
	if hasSelection {
		resultsPanel = ResultsPanel(results, "", pc)
	}

	return Div(
		ID("map-section"),
		Class("grid grid-cols-1 lg:grid-cols-3 gap-4"),
		Div(
			Class("lg:col-span-2"),
			banner,
			DrawControls(armed, hasSelection, len(mappable) == 0, pc.Lang),
			Div(
				Class("h-96 w-full rounded border bg-gray-50"),
				Div(
					ID("map-container"),
					Class("h-full w-full"),
					Style("border-radius: inherit; overflow: hidden;"),
				),
				MapMarkerData(mappable),
				Script(
					Type("text/javascript"),
					g.Raw(initScript),
				),
			),
		),
		Div(
			ID("map-results-col"),
			resultsPanel,
		),
	)
}

// MapPage wraps MapSection in the page layout.
func MapPage(mappable []geo.GeoListing, results []listing.Listing, center MapCenter,
	armed, hasSelection bool, skipped int, pc Ctx) g.Node {
	return Page("Mapa", pc, []g.Node{
		MapSection(mappable, results, center, armed, hasSelection, skipped, pc),
	})
}

// MapUnavailablePage is shown when the map asset bundle cannot be loaded.
func MapUnavailablePage(pc Ctx) g.Node {
	return Page("Mapa", pc, []g.Node{
		NoResultsMessage(i18n.T(pc.Lang, "map.unavailable")),
	})
}
