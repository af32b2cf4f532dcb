package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
	"github.com/GuilhermeTebaldi/templesale2-sub001/local"
	"github.com/GuilhermeTebaldi/templesale2-sub001/search"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
)

const homePageSize = 48

// HandleHome renders the landing page with the newest active listings.
func HandleHome(c *fiber.Ctx) error {
	userID := local.GetUserID(c)
	listings, err := listing.GetActiveListings(userID, homePageSize)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load listings")
	}

	var recent []search.UserSearch
	if userID != 0 {
		recent, err = search.GetRecentUserSearches(userID, 5)
		if err != nil {
			log.Printf("[Home] Failed to load recent searches: %v", err)
		}
	}

	return render(c, ui.HomePage(listings, recent, "", pageCtx(c)))
}

// HandleSearch returns the search results grid. Logged-in users get their
// query recorded for the recent-searches list.
func HandleSearch(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	userID := local.GetUserID(c)

	if userID != 0 && q != "" {
		if err := search.SaveUserSearch(userID, q); err != nil {
			log.Printf("[Search] Failed to save user search: %v", err)
		}
	}

	listings, err := search.SearchActiveListings(q, userID, homePageSize)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "search failed")
	}
	return render(c, ui.SearchResults(listings, pageCtx(c)))
}
