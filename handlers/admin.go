package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/imagestore"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
	"github.com/GuilhermeTebaldi/templesale2-sub001/search"
	"github.com/GuilhermeTebaldi/templesale2-sub001/tiles"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
	"github.com/GuilhermeTebaldi/templesale2-sub001/user"
)

const adminListLimit = 100

// HandleAdminDashboard shows counts, cache stats and the tile provider.
func HandleAdminDashboard(c *fiber.Ctx) error {
	userCount, err := user.CountUsers()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count users")
	}

	popular, err := listing.GetMostPopularListings(adminListLimit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load listings")
	}

	topSearches, err := search.GetTopSearches(10)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load searches")
	}

	f := tiles.Default()
	return render(c, ui.AdminDashboardPage(
		userCount, len(popular), topSearches,
		f.Provider(), f.CacheStats(), imagestore.CacheStats(),
		pageCtx(c),
	))
}

// HandleAdminUsers lists recent users.
func HandleAdminUsers(c *fiber.Ctx) error {
	users, err := user.GetAllUsers(adminListLimit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load users")
	}
	return render(c, ui.AdminUsersPage(users, pageCtx(c)))
}

// HandleAdminListings lists the most popular listings.
func HandleAdminListings(c *fiber.Ctx) error {
	popular, err := listing.GetMostPopularListings(adminListLimit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load listings")
	}
	return render(c, ui.AdminListingsPage(popular, pageCtx(c)))
}

// HandleResetTileProvider forces re-probing the provider chain from the top.
func HandleResetTileProvider(c *fiber.Ctx) error {
	tiles.Default().Reset()
	f := tiles.Default()
	return render(c, ui.TileProviderPanel(f.Provider(), f.CacheStats()))
}

// HandleClearTileCache drops all cached tiles.
func HandleClearTileCache(c *fiber.Ctx) error {
	tiles.Default().ClearCache()
	f := tiles.Default()
	return render(c, ui.TileProviderPanel(f.Provider(), f.CacheStats()))
}

// HandleClearB2Cache drops all cached image download tokens.
func HandleClearB2Cache(c *fiber.Ctx) error {
	imagestore.ClearCache()
	return render(c, ui.CacheStatsPanel("Image Token Cache", imagestore.CacheStats(), "/api/admin/b2-cache/clear"))
}
