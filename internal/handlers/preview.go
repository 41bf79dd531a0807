package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"quickorder/internal/catalog"
	"quickorder/internal/config"
	"quickorder/internal/intent"
	"quickorder/internal/metrics"
	"quickorder/internal/models"
	"quickorder/internal/validation"
)

// PreviewHandler renders the live quick-order preview fragment.
type PreviewHandler struct {
	parser *intent.Parser
	finder catalog.Finder
	cfg    *config.Config
}

// NewPreviewHandler creates a new preview handler. finder may be nil.
func NewPreviewHandler(parser *intent.Parser, finder catalog.Finder, cfg *config.Config) *PreviewHandler {
	return &PreviewHandler{parser: parser, finder: finder, cfg: cfg}
}

// Show renders the preview for the q query parameter.
func (h *PreviewHandler) Show(c fiber.Ctx) error {
	start := time.Now()
	order := h.parser.Parse(c.Query("q", ""))
	metrics.ObserveParse(start)
	ready := h.parser.Ready(order, h.cfg.PreviewThreshold)
	metrics.RecordParse(order, h.cfg.PreviewThreshold)

	data := fiber.Map{
		"MatchPercentage": order.MatchPercentage,
		"Empty":           order.MatchPercentage == 0,
		"Ready":           ready,
		"HasQuantity":     order.HasQuantity(),
		"Quantity":        order.QuantityValue(),
		"Target":          order.Target,
	}
	if order.HasPlatform() {
		data["PlatformName"] = h.parser.PlatformDisplayName(string(order.Platform))
	}
	if order.HasServiceType() {
		data["ServiceTypeName"] = h.parser.ServiceTypeDisplayName(string(order.ServiceType))
	}

	// Pricing is best effort; the fragment renders without it.
	if ready && h.finder != nil && order.HasPlatform() && order.HasServiceType() {
		if svc, err := h.finder.FindService(c.Context(), order.Platform, order.ServiceType); err == nil {
			if price, ok := priceFor(svc, order.QuantityValue()); ok {
				data["Service"] = svc
				data["Price"] = price
			}
		}
	}

	return c.Render("preview", data)
}

// priceFor formats the price of quantity units, applying the same quantity
// bounds as the quick-order endpoint.
func priceFor(svc *models.Service, quantity int) (string, bool) {
	if valid, _ := validation.ValidateQuantity(quantity, svc.MinQuantity, svc.MaxQuantity); !valid {
		return "", false
	}
	cents, ok := svc.EstimatePrice(quantity)
	if !ok {
		return "", false
	}
	return formatCents(cents), true
}

// formatCents renders a cent amount as dollars.
func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
