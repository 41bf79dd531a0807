package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quickorder/internal/catalog"
	"quickorder/internal/handlers"
	"quickorder/internal/handlers/api"
	"quickorder/internal/intent"
	"quickorder/internal/metrics"
)

// Store is the database surface the routes depend on.
type Store interface {
	handlers.Pinger
	api.ServiceLister
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(parser *intent.Parser, store Store, finder catalog.Finder) {
	// Initialize handlers
	probeHandler := handlers.NewProbeHandler(store)
	previewHandler := handlers.NewPreviewHandler(parser, finder, s.Cfg)
	parseHandler := api.NewParseHandler(parser, s.Cfg)
	displayNameHandler := api.NewDisplayNameHandler(parser)
	serviceHandler := api.NewServiceHandler(store, finder)
	quickOrderHandler := api.NewQuickOrderHandler(parser, finder, s.Cfg)

	// Probes and metrics
	metrics.Register()
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// HTML fragment for htmx-driven live preview
	s.App.Get("/preview", previewHandler.Show)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/parse", parseHandler.Parse)
	apiGroup.Post("/parse", parseHandler.Parse)
	apiGroup.Get("/display-names/platforms/:slug", displayNameHandler.Platform)
	apiGroup.Get("/display-names/service-types/:slug", displayNameHandler.ServiceType)
	apiGroup.Get("/services", serviceHandler.List)
	apiGroup.Get("/services/:platform/:serviceType", serviceHandler.Get)
	apiGroup.Post("/quick-order", quickOrderHandler.Preview)
}
