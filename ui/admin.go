package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/GuilhermeTebaldi/templesale2-sub001/format"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
	"github.com/GuilhermeTebaldi/templesale2-sub001/search"
	"github.com/GuilhermeTebaldi/templesale2-sub001/user"
)

func statCard(label, fmtStr string, value interface{}) g.Node {
	return Div(
		Class("bg-white p-3 rounded border"),
		Strong(g.Text(label+": ")),
		g.Textf(fmtStr, value),
	)
}

// CacheStatsPanel renders a ristretto stats block with a clear button.
func CacheStatsPanel(title string, stats map[string]interface{}, clearEndpoint string) g.Node {
	return Div(
		Class("bg-gray-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text(title)),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-4 mb-4"),
			statCard("Hits", "%d", stats["hits"]),
			statCard("Misses", "%d", stats["misses"]),
			statCard("Hit Rate", "%.1f%%", stats["hit_rate"]),
			statCard("Sets", "%d", stats["sets"]),
			statCard("Memory Used", "%.0f KB", stats["memory_used_kb"]),
			statCard("Current Items", "%d", stats["current_items"]),
		),
		g.If(clearEndpoint != "",
			styledButton("Clear Cache", ButtonDanger,
				hx.Post(clearEndpoint),
				hx.Target("#admin-content"),
				hx.Swap("innerHTML"),
			),
		),
	)
}

// TileProviderPanel shows which tile provider is stuck and lets the admin
// force re-probing from the top of the list.
func TileProviderPanel(provider string, stats map[string]interface{}) g.Node {
	label := provider
	if label == "" {
		label = "none yet"
	}
	return Div(
		Class("bg-gray-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text("Tile Provider")),
		Div(Class("text-sm text-gray-700 mb-4"), g.Text("Active provider: "+label)),
		CacheStatsPanel("Tile Cache", stats, ""),
		Div(
			Class("flex gap-4"),
			styledButton("Reset Provider", ButtonDanger,
				hx.Post("/api/admin/tiles/reset"),
				hx.Target("#admin-content"),
				hx.Swap("innerHTML"),
			),
			styledButton("Clear Tile Cache", ButtonDanger,
				hx.Post("/api/admin/tiles/clear"),
				hx.Target("#admin-content"),
				hx.Swap("innerHTML"),
			),
		),
	)
}

// TopSearchesPanel lists the most frequent search queries.
func TopSearchesPanel(top []search.TopSearch) g.Node {
	var rows []g.Node
	for _, s := range top {
		rows = append(rows, Tr(
			Td(Class("border px-3 py-1"), g.Text(s.QueryString)),
			Td(Class("border px-3 py-1 text-right"), g.Textf("%d", s.Count)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, Tr(Td(Class("border px-3 py-1 text-gray-500"), ColSpan("2"), g.Text("no searches yet"))))
	}
	return Div(
		Class("bg-gray-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text("Top Searches")),
		Table(
			Class("w-full text-sm border-collapse"),
			THead(Tr(
				Th(Class("border px-3 py-1 text-left"), g.Text("Query")),
				Th(Class("border px-3 py-1 text-right"), g.Text("Count")),
			)),
			TBody(g.Group(rows)),
		),
	)
}

// AdminDashboardPage is the operational overview: counts, caches, tiles.
func AdminDashboardPage(userCount, listingCount int, topSearches []search.TopSearch,
	tileProvider string, tileStats, tokenStats map[string]interface{}, pc Ctx) g.Node {
	return Page("Admin", pc, []g.Node{
		pageHeader("Admin Dashboard"),
		Div(
			ID("admin-content"),
			Div(
				Class("grid grid-cols-2 gap-4 mb-6"),
				statCard("Users", "%d", userCount),
				statCard("Listings", "%d", listingCount),
			),
			TileProviderPanel(tileProvider, tileStats),
			CacheStatsPanel("Image Token Cache", tokenStats, "/api/admin/b2-cache/clear"),
			TopSearchesPanel(topSearches),
			Div(
				Class("mt-6 space-x-4"),
				styledLink("Users", "/admin/users", ButtonSecondary),
				styledLink("Listings", "/admin/listings", ButtonSecondary),
			),
		),
	})
}

// AdminUsersPage lists recent users.
func AdminUsersPage(users []user.User, pc Ctx) g.Node {
	var rows []g.Node
	for _, u := range users {
		status := "active"
		if u.IsArchived() {
			status = "archived"
		}
		rows = append(rows, Tr(
			Td(Class("border px-3 py-1"), g.Textf("%d", u.ID)),
			Td(Class("border px-3 py-1"), g.Text(u.Name)),
			Td(Class("border px-3 py-1"), g.Text(format.Phone(u.Phone))),
			Td(Class("border px-3 py-1"), g.Text(status)),
			Td(Class("border px-3 py-1"), g.Text(u.CreatedAt.Format("02/01/2006"))),
		))
	}
	return Page("Admin - Users", pc, []g.Node{
		pageHeader("Users"),
		Table(
			Class("w-full text-sm border-collapse"),
			THead(Tr(
				Th(Class("border px-3 py-1 text-left"), g.Text("ID")),
				Th(Class("border px-3 py-1 text-left"), g.Text("Name")),
				Th(Class("border px-3 py-1 text-left"), g.Text("Phone")),
				Th(Class("border px-3 py-1 text-left"), g.Text("Status")),
				Th(Class("border px-3 py-1 text-left"), g.Text("Created")),
			)),
			TBody(g.Group(rows)),
		),
	})
}

// AdminListingsPage lists the most popular listings with archive controls.
func AdminListingsPage(listings []listing.Listing, pc Ctx) g.Node {
	var rows []g.Node
	for _, l := range listings {
		rows = append(rows, Tr(
			Td(Class("border px-3 py-1"), g.Textf("%d", l.ID)),
			Td(Class("border px-3 py-1"),
				A(Href(fmt.Sprintf("/listing/%d", l.ID)), Class("text-blue-500 hover:underline"), g.Text(l.Title))),
			Td(Class("border px-3 py-1"), g.Text(l.Category)),
			Td(Class("border px-3 py-1"), g.Text(format.Price(l.Price, l.Currency))),
			Td(Class("border px-3 py-1"), g.Textf("%d", l.ClickCount)),
			Td(Class("border px-3 py-1"),
				styledButton("Archive", ButtonDanger,
					hx.Delete(fmt.Sprintf("/api/listing/%d", l.ID)),
					hx.Confirm("Archive listing?"),
					hx.Target("body"),
				),
			),
		))
	}
	return Page("Admin - Listings", pc, []g.Node{
		pageHeader("Listings"),
		Table(
			Class("w-full text-sm border-collapse"),
			THead(Tr(
				Th(Class("border px-3 py-1 text-left"), g.Text("ID")),
				Th(Class("border px-3 py-1 text-left"), g.Text("Title")),
				Th(Class("border px-3 py-1 text-left"), g.Text("Category")),
				Th(Class("border px-3 py-1 text-left"), g.Text("Price")),
				Th(Class("border px-3 py-1 text-left"), g.Text("Clicks")),
				Th(Class("border px-3 py-1 text-left"), g.Text("")),
			)),
			TBody(g.Group(rows)),
		),
	})
}
