package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
	"github.com/GuilhermeTebaldi/templesale2-sub001/local"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
)

// HandleLikeListing records a like and re-renders the like control.
func HandleLikeListing(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}
	userID := local.GetUserID(c)

	if err := listing.LikeListing(userID, id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to like listing")
	}

	l, ok := listing.GetListing(id, userID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}
	return render(c, ui.LikeSection(l, local.GetLang(c)))
}

// HandleUnlikeListing removes a like and re-renders the like control.
func HandleUnlikeListing(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}
	userID := local.GetUserID(c)

	if err := listing.UnlikeListing(userID, id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to unlike listing")
	}

	l, ok := listing.GetListing(id, userID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}
	return render(c, ui.LikeSection(l, local.GetLang(c)))
}

// HandleLikesPage lists the user's liked listings.
func HandleLikesPage(c *fiber.Ctx) error {
	liked, err := listing.GetLikedListings(local.GetUserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load likes")
	}
	return render(c, ui.LikesPage(liked, pageCtx(c)))
}

// HandleAddToCart puts a listing in the cart.
func HandleAddToCart(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}
	if err := listing.AddToCart(local.GetUserID(c), id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add to cart")
	}
	return render(c, ui.SuccessMessage("OK", ""))
}

// HandleRemoveFromCart takes a listing out of the cart.
func HandleRemoveFromCart(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}
	if err := listing.RemoveFromCart(local.GetUserID(c), id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to remove from cart")
	}
	c.Set("HX-Redirect", "/cart")
	return c.SendStatus(fiber.StatusOK)
}

// HandleCartPage lists the cart contents.
func HandleCartPage(c *fiber.Ctx) error {
	items, err := listing.GetCartListings(local.GetUserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load cart")
	}
	return render(c, ui.CartPage(items, pageCtx(c)))
}
