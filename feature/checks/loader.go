package checks

import (
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the checks feature with the built-in projects.
func NewFeature(locator *source.Locator, logger *zap.Logger, cfg reconcile.Config, reportPrefix string) *Feature {
	svc := NewService(NewRegistry(Params{}), locator, logger, cfg, reportPrefix)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "checks"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
