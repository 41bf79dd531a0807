package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"quickorder/internal/catalog"
	"quickorder/internal/intent"
	"quickorder/internal/models"
	"quickorder/internal/validation"
)

// ServiceLister lists active catalog services.
type ServiceLister interface {
	ListActiveServices(ctx context.Context, platform string) ([]models.Service, error)
}

// ServiceHandler exposes the service catalog via JSON API.
type ServiceHandler struct {
	lister ServiceLister
	finder catalog.Finder
}

// NewServiceHandler creates a new API service handler.
func NewServiceHandler(lister ServiceLister, finder catalog.Finder) *ServiceHandler {
	return &ServiceHandler{lister: lister, finder: finder}
}

// List returns active services, optionally filtered by platform.
func (h *ServiceHandler) List(c fiber.Ctx) error {
	platform := c.Query("platform", "")
	if platform != "" && !validation.ValidateSlug(platform) {
		return jsonError(c, fiber.StatusBadRequest, "invalid platform")
	}

	services, err := h.lister.ListActiveServices(c.Context(), platform)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch services")
	}
	if services == nil {
		services = []models.Service{}
	}

	return jsonSuccess(c, services)
}

// Get returns the active service for a platform and service type.
func (h *ServiceHandler) Get(c fiber.Ctx) error {
	platform := c.Params("platform")
	serviceType := c.Params("serviceType")
	if !validation.ValidateSlug(platform) || !validation.ValidateSlug(serviceType) {
		return jsonError(c, fiber.StatusBadRequest, "invalid slug")
	}

	svc, err := h.finder.FindService(c.Context(), intent.Platform(platform), intent.ServiceType(serviceType))
	if err != nil {
		if errors.Is(err, catalog.ErrNoService) {
			return jsonError(c, fiber.StatusNotFound, "service not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch service")
	}

	return jsonSuccess(c, svc)
}
