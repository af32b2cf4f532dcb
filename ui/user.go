package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/GuilhermeTebaldi/templesale2-sub001/i18n"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
)

func formField(label string, input g.Node) g.Node {
	return Div(
		Class("mb-4"),
		Label(Class("block font-bold mb-1"), g.Text(label)),
		input,
	)
}

func textInput(name, typ string, attrs ...g.Node) g.Node {
	base := []g.Node{
		Type(typ),
		Name(name),
		Class("w-full border rounded px-3 py-2"),
	}
	return Input(append(base, attrs...)...)
}

// LoginPage renders the phone + password login form.
func LoginPage(pc Ctx) g.Node {
	return Page(i18n.T(pc.Lang, "auth.login"), pc, []g.Node{
		contentContainer(
			pageHeader(i18n.T(pc.Lang, "auth.login")),
			Form(
				hx.Post("/api/login"),
				hx.Target("#result"),
				formField(i18n.T(pc.Lang, "auth.phone"),
					textInput("phone", "tel", Required(), Placeholder("+55 (11) 91234-5678"))),
				formField(i18n.T(pc.Lang, "auth.password"),
					textInput("password", "password", Required())),
				styledButton(i18n.T(pc.Lang, "auth.login"), buttonPrimary, Type("submit")),
			),
			resultContainer(),
		),
	})
}

// RegisterPage is step one of registration: name and phone.
func RegisterPage(pc Ctx) g.Node {
	return Page(i18n.T(pc.Lang, "auth.register"), pc, []g.Node{
		contentContainer(
			pageHeader(i18n.T(pc.Lang, "auth.register")),
			Form(
				ID("register-form"),
				hx.Post("/api/register"),
				hx.Target("#register-form"),
				hx.Swap("outerHTML"),
				formField(i18n.T(pc.Lang, "auth.name"),
					textInput("name", "text", Required())),
				formField(i18n.T(pc.Lang, "auth.phone"),
					textInput("phone", "tel", Required(), Placeholder("+55 (11) 91234-5678"))),
				styledButton(i18n.T(pc.Lang, "auth.register"), buttonPrimary, Type("submit")),
				resultContainer(),
			),
		),
	})
}

// VerificationFormContent is swapped in after step one sends the SMS code.
func VerificationFormContent(name, phone string, pc Ctx) g.Node {
	return Form(
		ID("register-form"),
		hx.Post("/api/register/verify"),
		hx.Target("#register-form"),
		hx.Swap("outerHTML"),
		Input(Type("hidden"), Name("reg_name"), Value(name)),
		Input(Type("hidden"), Name("reg_phone"), Value(phone)),
		formField(i18n.T(pc.Lang, "auth.code"),
			textInput("verification_code", "text", Required(), g.Attr("autocomplete", "one-time-code"))),
		formField(i18n.T(pc.Lang, "auth.password"),
			textInput("password", "password", Required())),
		formField(i18n.T(pc.Lang, "auth.password2"),
			textInput("password2", "password", Required())),
		styledButton(i18n.T(pc.Lang, "auth.verify"), buttonPrimary, Type("submit")),
		resultContainer(),
	)
}

// SettingsPage lets the user change password or close the account.
func SettingsPage(pc Ctx) g.Node {
	return Page(i18n.T(pc.Lang, "nav.settings"), pc, []g.Node{
		contentContainer(
			pageHeader(i18n.T(pc.Lang, "nav.settings")),
			Form(
				Class("mb-8"),
				hx.Post("/api/change-password"),
				hx.Target("#result"),
				formField(i18n.T(pc.Lang, "auth.password"),
					textInput("current_password", "password", Required())),
				formField(i18n.T(pc.Lang, "auth.password")+" (nova)",
					textInput("new_password", "password", Required())),
				formField(i18n.T(pc.Lang, "auth.password2"),
					textInput("new_password2", "password", Required())),
				styledButton(i18n.T(pc.Lang, "listing.save"), buttonPrimary, Type("submit")),
			),
			resultContainer(),
			styledButton("Excluir conta", ButtonDanger,
				hx.Post("/api/delete-account"),
				hx.Confirm("Excluir conta?"),
				hx.Target("body"),
			),
		),
	})
}

// CartPage lists the user's cart contents.
func CartPage(items []listing.Listing, pc Ctx) g.Node {
	return Page(i18n.T(pc.Lang, "cart.title"), pc, []g.Node{
		pageHeader(i18n.T(pc.Lang, "cart.title")),
		ListingGrid(items, pc, "cart.empty"),
	})
}

// LikesPage lists the user's liked listings.
func LikesPage(items []listing.Listing, pc Ctx) g.Node {
	return Page(i18n.T(pc.Lang, "likes.title"), pc, []g.Node{
		pageHeader(i18n.T(pc.Lang, "likes.title")),
		ListingGrid(items, pc, "likes.empty"),
	})
}
