package api

import (
	"github.com/gofiber/fiber/v3"

	"quickorder/internal/intent"
	"quickorder/internal/models"
	"quickorder/internal/validation"
)

// DisplayNameHandler resolves human-readable labels for slugs.
type DisplayNameHandler struct {
	parser *intent.Parser
}

// NewDisplayNameHandler creates a new display name handler.
func NewDisplayNameHandler(parser *intent.Parser) *DisplayNameHandler {
	return &DisplayNameHandler{parser: parser}
}

// Platform returns the label for a platform slug.
func (h *DisplayNameHandler) Platform(c fiber.Ctx) error {
	slug := c.Params("slug")
	if !validation.ValidateSlug(slug) {
		return jsonError(c, fiber.StatusBadRequest, "invalid slug")
	}

	return jsonSuccess(c, models.DisplayNameResponse{
		Slug:        slug,
		DisplayName: h.parser.PlatformDisplayName(slug),
	})
}

// ServiceType returns the label for a service type slug.
func (h *DisplayNameHandler) ServiceType(c fiber.Ctx) error {
	slug := c.Params("slug")
	if !validation.ValidateSlug(slug) {
		return jsonError(c, fiber.StatusBadRequest, "invalid slug")
	}

	return jsonSuccess(c, models.DisplayNameResponse{
		Slug:        slug,
		DisplayName: h.parser.ServiceTypeDisplayName(slug),
	})
}
