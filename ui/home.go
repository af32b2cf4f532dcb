package ui

import (
	"net/url"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/GuilhermeTebaldi/templesale2-sub001/i18n"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
	"github.com/GuilhermeTebaldi/templesale2-sub001/search"
)

func searchBar(query string, pc Ctx) g.Node {
	return Form(
		Class("mb-8 flex gap-2"),
		hx.Get("/search"),
		hx.Target("#search-results"),
		hx.Swap("outerHTML"),
		Input(
			Type("search"),
			Name("q"),
			Value(query),
			Placeholder(i18n.T(pc.Lang, "search.placeholder")),
			Class("flex-1 border rounded px-4 py-2"),
			hx.Trigger("input changed delay:300ms, search"),
			hx.Get("/search"),
			hx.Target("#search-results"),
			hx.Swap("outerHTML"),
		),
		styledButton(i18n.T(pc.Lang, "search.button"), buttonPrimary, Type("submit")),
	)
}

// SearchResults is the swappable grid under the search bar.
func SearchResults(listings []listing.Listing, pc Ctx) g.Node {
	return Div(
		ID("search-results"),
		ListingGrid(listings, pc, "search.empty"),
	)
}

// recentSearches renders the logged-in user's last queries as quick links.
func recentSearches(recent []search.UserSearch, pc Ctx) g.Node {
	if len(recent) == 0 {
		return nil
	}
	var chips []g.Node
	for _, s := range recent {
		chips = append(chips,
			A(
				Href("/?q="+url.QueryEscape(s.QueryString)),
				Class("px-2 py-1 rounded-full border text-xs text-gray-600 hover:bg-gray-50"),
				hx.Get("/search?q="+url.QueryEscape(s.QueryString)),
				hx.Target("#search-results"),
				hx.Swap("outerHTML"),
				g.Text(s.QueryString),
			),
		)
	}
	return Div(
		Class("flex items-center gap-2 mb-6 flex-wrap"),
		Span(Class("text-xs text-gray-500"), g.Text(i18n.T(pc.Lang, "search.recent"))),
		g.Group(chips),
	)
}

// HomePage is the storefront landing page: search bar, map link, listings.
func HomePage(listings []listing.Listing, recent []search.UserSearch, query string, pc Ctx) g.Node {
	return Page("Templesale", pc, []g.Node{
		searchBar(query, pc),
		recentSearches(recent, pc),
		SearchResults(listings, pc),
	})
}
