package payload

import (
	"itac-api/core/arc"
	"itac-api/core/naics"
	"itac-api/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new payload feature.
func NewFeature(db *gorm.DB, naicsResolver *naics.Resolver, arcResolver *arc.Resolver, serverCfg server.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, naicsResolver, arcResolver, logger)
	h := NewHandler(svc, serverCfg)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "payload"
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
