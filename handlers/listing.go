package handlers

import (
	"database/sql"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/geo"
	"github.com/GuilhermeTebaldi/templesale2-sub001/imagestore"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
	"github.com/GuilhermeTebaldi/templesale2-sub001/local"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
)

func listingID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid listing ID")
	}
	return id, nil
}

// HandleListingDetail renders the listing page and counts the view.
func HandleListingDetail(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}

	userID := local.GetUserID(c)
	l, ok := listing.GetListing(id, userID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}
	if l.IsArchived() && l.UserID != userID && !local.GetIsAdmin(c) {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}

	if err := listing.IncrementListingClick(id); err != nil {
		log.Printf("[Listing] Failed to count click for listing %d: %v", id, err)
	}

	comments, err := listing.GetComments(id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load comments")
	}

	return render(c, ui.ListingDetailPage(l, comments, pageCtx(c)))
}

// HandleNewListing renders the creation form.
func HandleNewListing(c *fiber.Ctx) error {
	return render(c, ui.NewListingPage(pageCtx(c)))
}

// parseListingForm reads the shared new/edit form fields. Coordinates are
// optional; invalid ones are stored as NULL so the listing stays off the
// map but visible in lists.
func parseListingForm(c *fiber.Ctx, l *listing.Listing) error {
	l.Title = c.FormValue("title")
	l.Description = c.FormValue("description")
	l.Category = c.FormValue("category")
	l.Currency = "BRL"

	if l.Title == "" || l.Category == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Title and category are required")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid price")
	}
	l.Price = price

	l.Latitude = sql.NullFloat64{}
	l.Longitude = sql.NullFloat64{}
	if lat, ok := geo.ParseCoord(c.FormValue("latitude")); ok {
		if lon, ok := geo.ParseCoord(c.FormValue("longitude")); ok {
			l.Latitude = sql.NullFloat64{Float64: geo.ClampLat(lat), Valid: true}
			l.Longitude = sql.NullFloat64{Float64: geo.ClampLon(lon), Valid: true}
		}
	}
	return nil
}

// HandleNewListingSubmission creates a listing and uploads its images.
func HandleNewListingSubmission(c *fiber.Ctx) error {
	var l listing.Listing
	if err := parseListingForm(c, &l); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	l.UserID = local.GetUserID(c)

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		l.ImageCount = len(form.File["images"])
	}

	id, err := listing.AddListing(l)
	if err != nil {
		log.Printf("[Listing] Failed to create listing: %v", err)
		return ValidationErrorResponse(c, "Unable to create listing. Please try again.")
	}

	if l.ImageCount > 0 {
		go imagestore.UploadListingImages(id, form.File["images"])
	}

	log.Printf("[Listing] Created listing %d by userID=%d", id, l.UserID)
	return render(c, ui.SuccessMessage("Listing created", "/listing/"+strconv.Itoa(id)))
}

// HandleEditListing renders the edit form for the owner or an admin.
func HandleEditListing(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}

	userID := local.GetUserID(c)
	l, ok := listing.GetListing(id, userID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}
	if l.UserID != userID && !local.GetIsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "Not your listing")
	}

	return render(c, ui.EditListingPage(l, pageCtx(c)))
}

// HandleUpdateListingSubmission applies edits from the form.
func HandleUpdateListingSubmission(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}

	userID := local.GetUserID(c)
	l, ok := listing.GetListing(id, userID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}
	if l.UserID != userID && !local.GetIsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "Not your listing")
	}

	if err := parseListingForm(c, &l); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}

	form, ferr := c.MultipartForm()
	newImages := ferr == nil && form != nil && len(form.File["images"]) > 0
	if newImages {
		l.ImageCount = len(form.File["images"])
	}

	if err := listing.UpdateListing(l); err != nil {
		log.Printf("[Listing] Failed to update listing %d: %v", id, err)
		return ValidationErrorResponse(c, "Unable to update listing. Please try again.")
	}

	if newImages {
		go imagestore.UploadListingImages(id, form.File["images"])
	}

	return render(c, ui.SuccessMessage("Listing updated", "/listing/"+strconv.Itoa(id)))
}

// HandleDeleteListing archives a listing.
func HandleDeleteListing(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}

	userID := local.GetUserID(c)
	l, ok := listing.GetListing(id, userID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}
	if l.UserID != userID && !local.GetIsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "Not your listing")
	}

	if err := listing.ArchiveListing(id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to archive listing")
	}

	c.Set("HX-Redirect", "/my-listings")
	return c.SendStatus(fiber.StatusOK)
}

// HandleRestoreListing brings an archived listing back.
func HandleRestoreListing(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return err
	}

	userID := local.GetUserID(c)
	l, ok := listing.GetListing(id, userID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}
	if l.UserID != userID && !local.GetIsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "Not your listing")
	}

	if err := listing.RestoreListing(id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to restore listing")
	}

	c.Set("HX-Redirect", "/my-listings")
	return c.SendStatus(fiber.StatusOK)
}

// HandleMyListings shows the user's active and archived listings.
func HandleMyListings(c *fiber.Ctx) error {
	userID := local.GetUserID(c)

	active, err := listing.GetListingsByUser(userID, false)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load listings")
	}
	archived, err := listing.GetListingsByUser(userID, true)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load listings")
	}

	return render(c, ui.MyListingsPage(active, archived, pageCtx(c)))
}
