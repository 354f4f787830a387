package arc

import (
	corearc "itac-api/core/arc"

	"go.uber.org/zap"
)

// Service answers ARC subtree queries.
type Service struct {
	resolver *corearc.Resolver
	logger   *zap.Logger
}

// NewService creates a new ARC browse service.
func NewService(resolver *corearc.Resolver, logger *zap.Logger) *Service {
	return &Service{resolver: resolver, logger: logger}
}

// Subtree returns the hierarchy node for code, or false when none exists.
func (s *Service) Subtree(code string) (*corearc.Node, bool) {
	return s.resolver.Subtree(code)
}
