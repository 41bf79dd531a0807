package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"quickorder/internal/catalog"
	"quickorder/internal/config"
	"quickorder/internal/intent"
	"quickorder/internal/models"
	"quickorder/internal/validation"
)

// QuickOrderHandler turns free text into a priced order preview.
type QuickOrderHandler struct {
	parser *intent.Parser
	finder catalog.Finder
	cfg    *config.Config
}

// NewQuickOrderHandler creates a new quick-order handler.
func NewQuickOrderHandler(parser *intent.Parser, finder catalog.Finder, cfg *config.Config) *QuickOrderHandler {
	return &QuickOrderHandler{parser: parser, finder: finder, cfg: cfg}
}

// Preview parses the input, matches it to a service and estimates the price.
// Nothing is placed; checkout happens elsewhere.
func (h *QuickOrderHandler) Preview(c fiber.Ctx) error {
	input, err := readInput(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	parsed := parseInput(h.parser, input, h.cfg.PreviewThreshold)
	if !parsed.Ready || !parsed.HasPlatform() || !parsed.HasServiceType() {
		return jsonErrorData(c, fiber.StatusUnprocessableEntity, "order is incomplete", parsed)
	}

	svc, err := h.finder.FindService(c.Context(), parsed.Platform, parsed.ServiceType)
	if err != nil {
		if errors.Is(err, catalog.ErrNoService) {
			return jsonErrorData(c, fiber.StatusNotFound, "no service for this order", parsed)
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch service")
	}

	if valid, msg := validation.ValidateQuantity(parsed.QuantityValue(), svc.MinQuantity, svc.MaxQuantity); !valid {
		return jsonErrorData(c, fiber.StatusUnprocessableEntity, msg, parsed)
	}
	if valid, msg := validation.ValidateTarget(parsed.Target); !valid {
		return jsonErrorData(c, fiber.StatusUnprocessableEntity, msg, parsed)
	}

	price, ok := svc.EstimatePrice(parsed.QuantityValue())
	if !ok {
		return jsonErrorData(c, fiber.StatusUnprocessableEntity, "Quantity is too large", parsed)
	}

	return jsonSuccess(c, models.QuickOrderResponse{
		Parse:          parsed,
		Service:        svc,
		EstimatedPrice: price,
	})
}
