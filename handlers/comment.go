package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
	"github.com/GuilhermeTebaldi/templesale2-sub001/local"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
)

func renderCommentSection(c *fiber.Ctx, lid int) error {
	userID := local.GetUserID(c)
	l, ok := listing.GetListing(lid, userID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}
	comments, err := listing.GetComments(lid)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load comments")
	}
	return render(c, ui.CommentSection(l, comments, pageCtx(c)))
}

// HandleAddComment stores a comment and re-renders the comment section.
func HandleAddComment(c *fiber.Ctx) error {
	lid, err := listingID(c)
	if err != nil {
		return err
	}

	body := strings.TrimSpace(c.FormValue("body"))
	if body == "" {
		return ValidationErrorResponse(c, "Comment cannot be empty")
	}
	if len(body) > 2000 {
		return ValidationErrorResponse(c, "Comment is too long")
	}

	if _, err := listing.AddComment(lid, local.GetUserID(c), body); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add comment")
	}
	return renderCommentSection(c, lid)
}

// HandleDeleteComment removes a comment (author or admin only).
func HandleDeleteComment(c *fiber.Ctx) error {
	commentID, err := strconv.Atoi(c.Params("id"))
	if err != nil || commentID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid comment ID")
	}

	lid, err := strconv.Atoi(c.Query("listing"))
	if err != nil {
		lid = 0
	}

	if err := listing.DeleteComment(commentID, local.GetUserID(c), local.GetIsAdmin(c)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete comment")
	}

	if lid > 0 {
		return renderCommentSection(c, lid)
	}
	return render(c, ui.EmptyResponse())
}
