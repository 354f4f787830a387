package payload

import (
	"context"
	"errors"

	"itac-api/core/arc"
	"itac-api/core/naics"
	"itac-api/feature/payload/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImplementedStatus is the imp_status literal meaning a recommendation was
// implemented; every other value, including NULL, maps to implemented=false.
const ImplementedStatus = "I"

// joinColumns is the projection of the recommendations-assessments join.
const joinColumns = "r.arc, r.assessment_id, r.imp_status, r.imp_cost, r.fiscal_year, " +
	"a.center, a.state, r.total_savings, r.p_conserved_mmbtu, r.total_energy_saved, a.naics, a.products"

// Service builds the enriched dashboard payload.
type Service struct {
	db     *gorm.DB
	naics  *naics.Resolver
	arc    *arc.Resolver
	logger *zap.Logger
}

// NewService creates a new payload service.
func NewService(db *gorm.DB, naicsResolver *naics.Resolver, arcResolver *arc.Resolver, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		naics:  naicsResolver,
		arc:    arcResolver,
		logger: logger,
	}
}

// All returns every joined recommendation, enriched, in query order.
func (s *Service) All(ctx context.Context) ([]models.Row, error) {
	return s.fetch(ctx, 0)
}

// Preview returns the first limit rows of the payload.
func (s *Service) Preview(ctx context.Context, limit int) ([]models.Row, error) {
	return s.fetch(ctx, limit)
}

func (s *Service) fetch(ctx context.Context, limit int) ([]models.Row, error) {
	if s.db == nil {
		return nil, errors.New("database connection is not available")
	}

	query := s.db.WithContext(ctx).
		Table("recommendations r").
		Select(joinColumns).
		Joins("JOIN assessments a ON r.assessment_id = a.id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var raw []models.JoinedRow
	if err := query.Scan(&raw).Error; err != nil {
		return nil, err
	}

	rows := make([]models.Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, s.enrich(r))
	}
	return rows, nil
}

// enrich shapes one joined row into the public response object.
func (s *Service) enrich(r models.JoinedRow) models.Row {
	return models.Row{
		NumberARC:        r.Arc,
		NumberNAICS:      r.Naics,
		DescriptionNAICS: s.naics.Lookup(deref(r.Naics)),
		DescriptionARC:   s.arc.Description(deref(r.Arc)),
		ProductNAICS:     r.Products,
		Center:           r.Center,
		State:            r.State,
		FiscalYear:       r.FiscalYear,
		Implemented:      r.ImpStatus != nil && *r.ImpStatus == ImplementedStatus,
		Cost:             r.ImpCost,
		TotalSavings:     r.TotalSavings,
		PConservedMMBTU:  r.PConservedMmbtu,
		EnergySavings:    r.TotalEnergySaved,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
