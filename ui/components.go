package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/GuilhermeTebaldi/templesale2-sub001/config"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-2xl mx-auto"),
		g.Group(content),
	)
}

// ---- Button Components ----

type ButtonVariant string

const (
	buttonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonDanger    ButtonVariant = "danger"
)

func getButtonClass(variant ButtonVariant) string {
	baseClass := "px-4 py-2 rounded inline-block "
	switch variant {
	case buttonPrimary:
		return baseClass + "bg-blue-500 text-white hover:bg-blue-600"
	case ButtonSecondary:
		return baseClass + "text-blue-500 hover:underline"
	case ButtonDanger:
		return baseClass + "bg-red-500 text-white hover:bg-red-600"
	default:
		return baseClass + "bg-blue-500 text-white hover:bg-blue-600"
	}
}

func styledButton(text string, variant ButtonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Class(getButtonClass(variant))}, attrs...)
	return Button(append(allAttrs, g.Text(text))...)
}

func styledLink(text string, href string, variant ButtonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Href(href), Class(getButtonClass(variant))}, attrs...)
	return A(append(allAttrs, g.Text(text))...)
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

func SuccessMessage(message string, redirectURL string) g.Node {
	nodes := []g.Node{
		Class("bg-green-100 border-green-500 text-green-700 px-4 py-3 rounded"),
		g.Text(message),
	}
	if redirectURL != "" {
		nodes = append(nodes, Script(g.Raw(fmt.Sprintf(
			"setTimeout(function() { window.location = '%s' }, %d);",
			redirectURL, config.ServerRedirectDelay.Milliseconds())),
		))
	}
	return Div(nodes...)
}

func resultContainer() g.Node {
	return Div(
		ID("result"),
		Class("mt-4"),
	)
}

func NoResultsMessage(text string) g.Node {
	return Div(
		Class("flex justify-center items-center p-8"),
		Div(
			Class("text-center"),
			P(Class("text-gray-600 text-lg"), g.Text(text)),
		),
	)
}

// EmptyResponse returns an empty div for HTMX responses that don't need content
func EmptyResponse() g.Node {
	return Div()
}

func ErrorPage(code int, message string, pc Ctx) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		pc,
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
		},
	)
}
