package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/GuilhermeTebaldi/templesale2-sub001/i18n"
)

func userInitial(name string) string {
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

func indicator() g.Node {
	return Div(
		ID("indicator"),
		Class("htmx-indicator flex items-center gap-2 text-blue-600"),
		Div(
			Class("w-4 h-4 border-2 border-blue-600 border-t-transparent rounded-full animate-spin"),
		),
	)
}

func navLoggedIn(pc Ctx) g.Node {
	return Div(
		Class("flex items-center space-x-4"),
		A(Href("/map"), Class("text-blue-500 hover:underline"), g.Text("Mapa")),
		A(Href("/cart"), Class("text-blue-500 hover:underline"), g.Text(i18n.T(pc.Lang, "nav.cart"))),
		A(Href("/likes"), Class("text-blue-500 hover:underline"), g.Text(i18n.T(pc.Lang, "nav.likes"))),
		A(Href("/new-listing"), Class("text-blue-500 hover:underline font-semibold"), g.Text(i18n.T(pc.Lang, "nav.sell"))),
		g.If(pc.IsAdmin,
			A(Href("/admin"), Class("text-blue-500 hover:underline"), g.Text(i18n.T(pc.Lang, "nav.admin"))),
		),
		Span(
			Class("bg-emerald-600 text-white rounded-full w-8 h-8 flex items-center justify-center font-semibold text-sm cursor-pointer hover:bg-emerald-700"),
			hx.Get("/user-menu"),
			hx.Target("body"),
			hx.Swap("beforeend"),
			g.Text(userInitial(pc.UserName)),
		),
	)
}

func navLoggedOut(pc Ctx) g.Node {
	login := A(Href("/login"), Class("text-blue-500 hover:underline"), g.Text(i18n.T(pc.Lang, "nav.login")))
	register := A(Href("/register"), Class("text-blue-500 hover:underline"), g.Text(i18n.T(pc.Lang, "nav.register")))
	switch pc.Path {
	case "/login":
		return register
	case "/register":
		return login
	case "/register/verify":
		return nil
	default:
		return Div(
			Class("flex items-center space-x-4"),
			A(Href("/map"), Class("text-blue-500 hover:underline"), g.Text("Mapa")),
			login,
			register,
		)
	}
}

func langSwitcher(pc Ctx) g.Node {
	var links []g.Node
	for _, lang := range i18n.Langs {
		cls := "text-xs text-gray-400 hover:underline uppercase"
		if lang == pc.Lang {
			cls = "text-xs text-gray-800 font-bold uppercase"
		}
		links = append(links, A(Href("/lang/"+lang), Class(cls), g.Text(lang)))
	}
	return Div(Class("flex items-center space-x-2"), g.Group(links))
}

func navigation(pc Ctx) g.Node {
	return Nav(
		Class("mb-8 border-b pb-4 flex items-center justify-between w-full"),
		A(Href("/"), Class("text-xl font-bold"), g.Text("Templesale")),
		indicator(),
		langSwitcher(pc),
		g.Iff(pc.UserID != 0, func() g.Node { return navLoggedIn(pc) }),
		g.Iff(pc.UserID == 0, func() g.Node { return navLoggedOut(pc) }),
	)
}

// UserMenuPopup is the overlay menu behind the avatar button.
func UserMenuPopup(pc Ctx) g.Node {
	item := func(href, label string) g.Node {
		return A(
			Href(href),
			Class("block px-4 py-2 text-sm text-gray-700 hover:bg-gray-50"),
			g.Text(label),
		)
	}

	menuItems := []g.Node{
		item("/my-listings", i18n.T(pc.Lang, "nav.sell")),
		item("/settings", i18n.T(pc.Lang, "nav.settings")),
		A(
			Href("#"),
			Class("block px-4 py-2 text-sm text-gray-700 hover:bg-gray-50"),
			hx.Post("/logout"),
			hx.Target("body"),
			hx.Swap("outerHTML"),
			g.Text(i18n.T(pc.Lang, "nav.logout")),
		),
	}

	return Div(
		ID("user-menu-popup"),
		Class("fixed inset-0 bg-black bg-opacity-30 z-50"),
		g.Attr("onclick", "this.remove()"),
		Div(
			Class("fixed top-16 right-4 pointer-events-none"),
			Div(
				Class("bg-white rounded-lg shadow-lg border border-gray-200 w-44 pointer-events-auto"),
				Div(
					Class("px-4 py-3 border-b border-gray-100 text-center"),
					Div(
						Class("w-12 h-12 bg-emerald-600 text-white rounded-full flex items-center justify-center font-semibold text-lg mx-auto mb-2"),
						g.Text(userInitial(pc.UserName)),
					),
					Div(Class("text-sm font-medium text-gray-900"), g.Text(pc.UserName)),
				),
				Div(
					Class("py-1"),
					g.Group(menuItems),
				),
			),
		),
	)
}
