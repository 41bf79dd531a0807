package api

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"

	"quickorder/internal/config"
	"quickorder/internal/intent"
	"quickorder/internal/metrics"
	"quickorder/internal/models"
)

// ParseHandler handles free-text order parsing via JSON API.
type ParseHandler struct {
	parser *intent.Parser
	cfg    *config.Config
}

// NewParseHandler creates a new API parse handler.
func NewParseHandler(parser *intent.Parser, cfg *config.Config) *ParseHandler {
	return &ParseHandler{parser: parser, cfg: cfg}
}

// Parse parses the input from a JSON body (POST) or the q query parameter (GET).
func (h *ParseHandler) Parse(c fiber.Ctx) error {
	input, err := readInput(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	return jsonSuccess(c, parseInput(h.parser, input, h.cfg.PreviewThreshold))
}

// readInput returns the order text for either request style.
func readInput(c fiber.Ctx) (string, error) {
	if c.Method() == fiber.MethodGet {
		return c.Query("q", ""), nil
	}

	var body models.ParseRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return "", err
	}
	return body.Input, nil
}

// parseInput runs the parser, records metrics and attaches display labels.
func parseInput(parser *intent.Parser, input string, threshold int) models.ParseResponse {
	start := time.Now()
	order := parser.Parse(input)
	metrics.ObserveParse(start)
	metrics.RecordParse(order, threshold)

	resp := models.ParseResponse{
		ParsedOrder: order,
		Ready:       parser.Ready(order, threshold),
	}
	if order.HasPlatform() {
		resp.PlatformName = parser.PlatformDisplayName(string(order.Platform))
	}
	if order.HasServiceType() {
		resp.ServiceTypeName = parser.ServiceTypeDisplayName(string(order.ServiceType))
	}
	return resp
}
