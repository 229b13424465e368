package server

import (
	"context"
	"strings"

	"foodcourt/internal/middleware"
	"foodcourt/internal/models"
	"foodcourt/internal/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// parsePage extracts and normalizes the page/limit query parameters.
func parsePage(c *fiber.Ctx) pagination.Params {
	return pagination.Normalize(c.QueryInt("page", 0), c.QueryInt("limit", 0))
}

// parseTags splits a comma-joined tags query parameter.
func parseTags(c *fiber.Ctx) []string {
	raw := c.Query("tags")
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// respondErr maps a service error onto the HTTP status of its code.
func respondErr(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// respondToggle runs an engagement toggle on the :id route parameter and
// writes the reconciled {active, count} state.
func (s *Server) respondToggle(
	c *fiber.Ctx,
	engage bool,
	toggle func(ctx context.Context, viewerID, targetID string, engage bool) (*models.ToggleResult, error),
) error {
	// Copy the route param: fiber's zero-copy string would otherwise be
	// retained in the engagement sets and mutated by the next request.
	result, err := toggle(c.Context(), middleware.UserID(c), utils.CopyString(c.Params("id")), engage)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(result)
}

// respondBadBody rejects an unparseable JSON request body.
func respondBadBody(c *fiber.Ctx) error {
	return models.RespondWithError(c, fiber.StatusBadRequest,
		models.NewValidationError("invalid request body"))
}
