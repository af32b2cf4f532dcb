package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/GuilhermeTebaldi/templesale2-sub001/config"
)

// ---- Page Layout ----

// Ctx carries the per-request state every page needs.
type Ctx struct {
	Lang     string
	UserID   int
	UserName string
	IsAdmin  bool
	Path     string
}

func Page(title string, pc Ctx, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: pc.Lang,
		Head: []g.Node{
			Link(Rel("icon"), Type("image/png"), Href("/images/favicon-32x32.png"), g.Attr("sizes", "32x32")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			// Map stylesheet served same-origin from the mirrored bundle
			Link(
				Rel("stylesheet"),
				Href("/map/leaflet.css"),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
			// Map script served same-origin from the mirrored bundle
			Script(
				Type("text/javascript"),
				Src("/map/leaflet.js"),
				Defer(),
			),
			// Map glue: init, freehand draw event forwarding
			Script(
				Type("text/javascript"),
				Src("/js/map.js"),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-8"),
				navigation(pc),
				g.Group(content),
			),
		},
	})
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
