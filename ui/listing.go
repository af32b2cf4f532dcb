package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/GuilhermeTebaldi/templesale2-sub001/format"
	"github.com/GuilhermeTebaldi/templesale2-sub001/i18n"
	"github.com/GuilhermeTebaldi/templesale2-sub001/imagestore"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
)

func listingThumbnail(l listing.Listing, size string) g.Node {
	if l.ImageCount == 0 {
		return Div(
			Class("w-full h-40 bg-gray-100 rounded flex items-center justify-center text-gray-400"),
			g.Text(l.Category),
		)
	}
	return Img(
		Src(imagestore.SignedImageURL(l.ID, 1, size)),
		Alt(l.Title),
		Class("w-full h-40 object-cover rounded"),
	)
}

func likeButton(l listing.Listing, lang string) g.Node {
	if l.Liked {
		return Button(
			Type("button"),
			Class("text-red-500 hover:text-red-600 text-sm"),
			hx.Delete(fmt.Sprintf("/api/like/%d", l.ID)),
			hx.Target(fmt.Sprintf("#like-%d", l.ID)),
			hx.Swap("outerHTML"),
			g.Text("♥ "+i18n.T(lang, "listing.unlike")),
		)
	}
	return Button(
		Type("button"),
		Class("text-gray-500 hover:text-red-500 text-sm"),
		hx.Post(fmt.Sprintf("/api/like/%d", l.ID)),
		hx.Target(fmt.Sprintf("#like-%d", l.ID)),
		hx.Swap("outerHTML"),
		g.Text("♡ "+i18n.T(lang, "listing.like")),
	)
}

// LikeSection is the swappable like control; returned by the like endpoints.
func LikeSection(l listing.Listing, lang string) g.Node {
	return Div(
		ID(fmt.Sprintf("like-%d", l.ID)),
		likeButton(l, lang),
	)
}

// ListingCard renders one listing in the grid.
func ListingCard(l listing.Listing, pc Ctx) g.Node {
	return Div(
		Class("border rounded-lg p-4 bg-white shadow-sm hover:shadow-md"),
		A(
			Href(fmt.Sprintf("/listing/%d", l.ID)),
			listingThumbnail(l, "160w"),
			H3(Class("text-lg font-semibold mt-2"), g.Text(l.Title)),
		),
		Div(Class("text-sm text-gray-500"), g.Text(l.Category)),
		Div(
			Class("flex items-center justify-between mt-2"),
			Span(Class("text-lg font-bold"), g.Text(format.Price(l.Price, l.Currency))),
			g.If(pc.UserID != 0 && pc.UserID != l.UserID, LikeSection(l, pc.Lang)),
		),
	)
}

// ListingGrid is the standard card grid used by home, search and user pages.
func ListingGrid(listings []listing.Listing, pc Ctx, emptyKey string) g.Node {
	if len(listings) == 0 {
		return NoResultsMessage(i18n.T(pc.Lang, emptyKey))
	}
	var cards []g.Node
	for _, l := range listings {
		cards = append(cards, ListingCard(l, pc))
	}
	return Div(
		Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-4"),
		g.Group(cards),
	)
}

func commentNode(c listing.Comment, pc Ctx) g.Node {
	return Div(
		Class("border-b py-2"),
		Div(
			Class("flex items-center justify-between"),
			Span(Class("text-sm font-medium"), g.Text(c.AuthorName)),
			Div(
				Class("flex items-center gap-2"),
				Span(Class("text-xs text-gray-400"), g.Text(c.CreatedAt.Format("02/01/2006 15:04"))),
				g.If(pc.UserID == c.UserID || pc.IsAdmin,
					Button(
						Type("button"),
						Class("text-xs text-red-500 hover:underline"),
						hx.Delete(fmt.Sprintf("/api/comment/%d?listing=%d", c.ID, c.ListingID)),
						hx.Target(fmt.Sprintf("#comments-%d", c.ListingID)),
						hx.Swap("outerHTML"),
						g.Text("×"),
					),
				),
			),
		),
		P(Class("text-sm text-gray-700"), g.Text(c.Body)),
	)
}

// CommentSection renders a listing's comments plus the comment form.
func CommentSection(l listing.Listing, comments []listing.Comment, pc Ctx) g.Node {
	var nodes []g.Node
	if len(comments) == 0 {
		nodes = append(nodes, P(Class("text-sm text-gray-500"), g.Text(i18n.T(pc.Lang, "comment.empty"))))
	}
	for _, c := range comments {
		nodes = append(nodes, commentNode(c, pc))
	}

	if pc.UserID != 0 {
		nodes = append(nodes,
			Form(
				Class("mt-4 flex gap-2"),
				hx.Post(fmt.Sprintf("/api/comment/%d", l.ID)),
				hx.Target(fmt.Sprintf("#comments-%d", l.ID)),
				hx.Swap("outerHTML"),
				Input(
					Type("text"),
					Name("body"),
					Required(),
					Class("flex-1 border rounded px-3 py-2"),
				),
				styledButton(i18n.T(pc.Lang, "comment.submit"), buttonPrimary, Type("submit")),
			),
		)
	}

	return Div(
		ID(fmt.Sprintf("comments-%d", l.ID)),
		Class("mt-6"),
		H2(Class("text-xl font-semibold mb-2"), g.Text(i18n.T(pc.Lang, "listing.comments"))),
		g.Group(nodes),
	)
}

// ListingDetailPage is the full listing page.
func ListingDetailPage(l listing.Listing, comments []listing.Comment, pc Ctx) g.Node {
	var sellerContact g.Node
	if l.SellerPhone.Valid {
		sellerContact = A(
			Href("tel:"+l.SellerPhone.String),
			Class(getButtonClass(buttonPrimary)),
			g.Text(i18n.T(pc.Lang, "listing.contact")+" "+format.Phone(l.SellerPhone.String)),
		)
	}

	var images []g.Node
	for i := 1; i <= l.ImageCount; i++ {
		images = append(images, Img(
			Src(imagestore.SignedImageURL(l.ID, i, "1200w")),
			Alt(fmt.Sprintf("%s %d", l.Title, i)),
			Class("w-full rounded mb-2"),
		))
	}

	ownerActions := Div(
		Class("mt-4 space-x-4"),
		styledLink(i18n.T(pc.Lang, "listing.edit"), fmt.Sprintf("/edit-listing/%d", l.ID), ButtonSecondary),
		styledButton(i18n.T(pc.Lang, "listing.delete"), ButtonDanger,
			hx.Delete(fmt.Sprintf("/api/listing/%d", l.ID)),
			hx.Confirm(i18n.T(pc.Lang, "listing.delete")+"?"),
			hx.Target("body"),
		),
	)

	return Page(l.Title, pc, []g.Node{
		contentContainer(
			pageHeader(l.Title),
			g.Group(images),
			Div(Class("text-2xl font-bold"), g.Text(format.Price(l.Price, l.Currency))),
			Div(Class("text-sm text-gray-500 mb-4"), g.Text(l.Category)),
			P(Class("text-gray-700 whitespace-pre-line"), g.Text(l.Description)),
			g.If(l.SellerName.Valid,
				Div(Class("mt-4 text-sm text-gray-600"),
					g.Text(i18n.T(pc.Lang, "listing.seller")+": "+l.SellerName.String)),
			),
			Div(
				Class("mt-4 flex items-center gap-4"),
				sellerContact,
				g.If(pc.UserID != 0 && pc.UserID != l.UserID, LikeSection(l, pc.Lang)),
				g.If(pc.UserID != 0 && pc.UserID != l.UserID,
					styledButton(i18n.T(pc.Lang, "listing.add_cart"), ButtonSecondary,
						hx.Post(fmt.Sprintf("/api/cart/%d", l.ID)),
						hx.Target("#result"),
					),
				),
			),
			resultContainer(),
			g.If(pc.UserID == l.UserID || pc.IsAdmin, ownerActions),
			CommentSection(l, comments, pc),
		),
	})
}

func listingFormFields(l listing.Listing, lang string) g.Node {
	latVal := ""
	lonVal := ""
	if l.Latitude.Valid {
		latVal = fmt.Sprintf("%f", l.Latitude.Float64)
	}
	if l.Longitude.Valid {
		lonVal = fmt.Sprintf("%f", l.Longitude.Float64)
	}

	field := func(label string, input g.Node) g.Node {
		return Div(
			Class("mb-4"),
			Label(Class("block font-bold mb-1"), g.Text(label)),
			input,
		)
	}

	return g.Group([]g.Node{
		field(i18n.T(lang, "auth.name"), Input(
			Type("text"), Name("title"), Value(l.Title), Required(),
			Class("w-full border rounded px-3 py-2"),
		)),
		field(i18n.T(lang, "listing.category"), Input(
			Type("text"), Name("category"), Value(l.Category), Required(),
			Class("w-full border rounded px-3 py-2"),
		)),
		field(i18n.T(lang, "listing.price"), Input(
			Type("number"), Name("price"), Value(fmt.Sprintf("%.2f", l.Price)),
			Step("0.01"), Min("0"), Required(),
			Class("w-full border rounded px-3 py-2"),
		)),
		field(i18n.T(lang, "listing.description"), Textarea(
			Name("description"), Rows("5"),
			Class("w-full border rounded px-3 py-2"),
			g.Text(l.Description),
		)),
		// Location picker: map.js fills the hidden inputs when the seller
		// clicks the mini map.
		Div(
			Class("mb-4"),
			Label(Class("block font-bold mb-1"), g.Text("Localização")),
			Div(ID("picker-map"), Class("h-48 w-full rounded border")),
			Input(Type("hidden"), ID("latitude"), Name("latitude"), Value(latVal)),
			Input(Type("hidden"), ID("longitude"), Name("longitude"), Value(lonVal)),
		),
		field("Fotos", Input(
			Type("file"), Name("images"), Multiple(), Accept("image/*"),
			Class("w-full"),
		)),
	})
}

// NewListingPage is the listing creation form.
func NewListingPage(pc Ctx) g.Node {
	return Page(i18n.T(pc.Lang, "listing.new"), pc, []g.Node{
		contentContainer(
			pageHeader(i18n.T(pc.Lang, "listing.new")),
			Form(
				hx.Post("/api/new-listing"),
				hx.Target("#result"),
				g.Attr("enctype", "multipart/form-data"),
				listingFormFields(listing.Listing{Currency: "BRL"}, pc.Lang),
				styledButton(i18n.T(pc.Lang, "listing.save"), buttonPrimary, Type("submit")),
			),
			resultContainer(),
		),
	})
}

// EditListingPage is the listing edit form.
func EditListingPage(l listing.Listing, pc Ctx) g.Node {
	return Page(i18n.T(pc.Lang, "listing.edit"), pc, []g.Node{
		contentContainer(
			pageHeader(i18n.T(pc.Lang, "listing.edit")),
			Form(
				hx.Post(fmt.Sprintf("/api/update-listing/%d", l.ID)),
				hx.Target("#result"),
				g.Attr("enctype", "multipart/form-data"),
				listingFormFields(l, pc.Lang),
				styledButton(i18n.T(pc.Lang, "listing.save"), buttonPrimary, Type("submit")),
			),
			resultContainer(),
		),
	})
}

// MyListingsPage shows the user's own listings, active and archived.
func MyListingsPage(active, archived []listing.Listing, pc Ctx) g.Node {
	var archivedSection []g.Node
	if len(archived) > 0 {
		archivedSection = append(archivedSection,
			H2(Class("text-xl font-semibold mt-8 mb-4"), g.Text("Arquivados")),
		)
		for _, l := range archived {
			archivedSection = append(archivedSection,
				Div(
					Class("flex items-center justify-between border rounded p-3 mb-2 bg-gray-50"),
					Span(Class("text-gray-500 line-through"), g.Text(l.Title)),
					styledButton(i18n.T(pc.Lang, "listing.restore"), ButtonSecondary,
						hx.Post(fmt.Sprintf("/api/restore-listing/%d", l.ID)),
						hx.Target("body"),
					),
				),
			)
		}
	}

	return Page(i18n.T(pc.Lang, "nav.sell"), pc, []g.Node{
		pageHeader(i18n.T(pc.Lang, "nav.sell")),
		styledLink(i18n.T(pc.Lang, "listing.new"), "/new-listing", buttonPrimary),
		Div(Class("mt-6"), ListingGrid(active, pc, "search.empty")),
		g.Group(archivedSection),
	})
}
