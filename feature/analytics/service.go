package analytics

import (
	"context"
	"errors"
	"math"
	"sort"

	"itac-api/core/arc"
	"itac-api/feature/analytics/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// implementedStatus mirrors the payload feature's implementation literal.
const implementedStatus = "I"

// aggregateSQL groups recommendations per ARC code. The cost average only
// counts rows whose status allows implementation, payback derives from
// imp_cost over p_saved truncated to one decimal, and the implementation rate
// divides implemented rows by decided (I or N) rows.
const aggregateSQL = `
SELECT r.arc                                   AS arc_code,
    AVG(r.total_savings)                       AS average_savings,
    CASE WHEN SUM(CASE WHEN (r.imp_status='I' OR r.imp_status IS NULL
                                OR r.imp_status='' OR r.imp_status='N') THEN 1 END)=0
        THEN 0
        ELSE SUM(CASE WHEN (r.imp_status='I' OR r.imp_status IS NULL
                                OR r.imp_status='' OR r.imp_status='N') THEN r.imp_cost END)*1.0
                / SUM(CASE WHEN (r.imp_status='I' OR r.imp_status IS NULL
                                OR r.imp_status='' OR r.imp_status='N') THEN 1 END)
    END                                        AS average_cost,
    CASE
        WHEN COUNT(*)=0 THEN 0
        ELSE CAST(
            AVG(
                CASE
                WHEN r.p_saved > 0
                    THEN CAST((COALESCE(r.imp_cost,0)*1.0/r.p_saved)*10 AS INTEGER)/10.0
                ELSE NULL
                END
            ) * 10
            AS INTEGER
            ) / 10.0
    END                                        AS average_payback,
    CASE
        WHEN SUM(CASE WHEN r.imp_status IN ('I','N') THEN 1 END)=0
        THEN 0
        ELSE SUM(CASE WHEN r.imp_status='I' THEN 1 END)*100.0
            / SUM(CASE WHEN r.imp_status IN ('I','N') THEN 1 END)
    END                                        AS implementation_rate,
    COUNT(*)                                   AS times_recommended
FROM   recommendations r
JOIN   assessments     a ON r.assessment_id = a.id
`

// AggregateFilter restricts the /aggregates query. Zero values mean no filter.
type AggregateFilter struct {
	Center string
	State  string
	// FiscalYearOp is one of "=", ">=", "<=" and only applies with FiscalYear.
	FiscalYearOp string
	FiscalYear   int
	ArcPrefix    string
}

// Service computes aggregated recommendation statistics.
type Service struct {
	db       *gorm.DB
	resolver *arc.Resolver
	logger   *zap.Logger
}

// NewService creates a new analytics service.
func NewService(db *gorm.DB, resolver *arc.Resolver, logger *zap.Logger) *Service {
	return &Service{db: db, resolver: resolver, logger: logger}
}

// TopRecommendations groups every recommendation row by ARC code and averages
// savings, cost and payback per code. Codes outside the precision subtree (or
// outside the whole hierarchy when precision is empty) are skipped, as are
// rows outside the fiscal year set.
func (s *Service) TopRecommendations(ctx context.Context, precision string, years []int) (map[string]models.Aggregate, error) {
	if s.db == nil {
		return nil, errors.New("database connection is not available")
	}

	descriptions := s.scopedDescriptions(precision)

	var rows []models.RecommendationRow
	err := s.db.WithContext(ctx).
		Table("recommendations").
		Select("arc, imp_status, imp_cost, total_savings, payback, fiscal_year").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	type bucket struct {
		savings, payback, cost []float64
		implemented            int
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, row := range rows {
		if row.Arc == nil {
			continue
		}
		code := *row.Arc
		if _, ok := descriptions[code]; !ok {
			continue
		}
		if len(years) > 0 && (row.FiscalYear == nil || !containsInt(years, *row.FiscalYear)) {
			continue
		}

		b, ok := buckets[code]
		if !ok {
			b = &bucket{}
			buckets[code] = b
			order = append(order, code)
		}
		b.savings = append(b.savings, zeroIfNil(row.TotalSavings))
		b.payback = append(b.payback, zeroIfNil(row.Payback))
		b.cost = append(b.cost, zeroIfNil(row.ImpCost))
		if row.ImpStatus != nil && *row.ImpStatus == implementedStatus {
			b.implemented++
		}
	}

	result := make(map[string]models.Aggregate, len(buckets))
	for _, code := range order {
		b := buckets[code]
		total := len(b.savings)
		rate := 0.0
		if total > 0 {
			rate = math.Round(float64(b.implemented)/float64(total)*1000) / 10
		}
		result[code] = models.Aggregate{
			ArcCode:            code,
			Description:        descriptions[code],
			AverageSavings:     mean(b.savings),
			AverageCost:        mean(b.cost),
			AveragePayback:     mean(b.payback),
			ImplementationRate: rate,
			TimesRecommended:   total,
		}
	}
	return result, nil
}

// scopedDescriptions flattens the hierarchy subtree selected by precision.
// An unknown precision yields an empty scope, which produces an empty result
// rather than an error.
func (s *Service) scopedDescriptions(precision string) map[string]string {
	if precision == "" {
		return s.resolver.FlattenAll()
	}
	node, ok := s.resolver.Subtree(precision)
	if !ok {
		return map[string]string{}
	}
	return arc.Flatten(node)
}

// Aggregates runs the grouped SQL with the given filters and formats the rows.
func (s *Service) Aggregates(ctx context.Context, filter AggregateFilter) ([]models.AggregateRow, error) {
	if s.db == nil {
		return nil, errors.New("database connection is not available")
	}

	where := ""
	var params []any
	appendCond := func(cond string, param any) {
		if where == "" {
			where = "WHERE " + cond
		} else {
			where += " AND " + cond
		}
		params = append(params, param)
	}

	if filter.Center != "" {
		appendCond("a.center = ?", filter.Center)
	}
	if filter.State != "" {
		appendCond("a.state = ?", filter.State)
	}
	if filter.FiscalYear != 0 {
		op := filter.FiscalYearOp
		if op == "" {
			op = "="
		}
		appendCond("r.fiscal_year "+op+" ?", filter.FiscalYear)
	}
	if filter.ArcPrefix != "" {
		appendCond("r.arc LIKE ?", filter.ArcPrefix+"%")
	}

	query := aggregateSQL + where + "\nGROUP BY r.arc\nORDER BY r.arc"

	var scanned []models.AggregateScan
	if err := s.db.WithContext(ctx).Raw(query, params...).Scan(&scanned).Error; err != nil {
		return nil, err
	}

	rows := make([]models.AggregateRow, 0, len(scanned))
	for _, r := range scanned {
		code := deref(r.ArcCode)
		rows = append(rows, models.AggregateRow{
			Arc:                code,
			Description:        s.resolver.Description(code),
			AvgSavings:         formatCurrency(zeroIfNil(r.AverageSavings)),
			AvgCost:            formatCurrency(zeroIfNil(r.AverageCost)),
			AvgPayback:         math.Round(zeroIfNil(r.AveragePayback)*100) / 100,
			ImplementationRate: formatPercent(zeroIfNil(r.ImplementationRate)),
			Recommended:        r.TimesRecommended,
		})
	}
	return rows, nil
}

// FilterOptions returns the distinct centers, states and fiscal years present
// in the assessments table.
func (s *Service) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	if s.db == nil {
		return nil, errors.New("database connection is not available")
	}

	opts := &models.FilterOptions{
		Centers: []string{},
		States:  []string{},
		Years:   []int{},
	}
	db := s.db.WithContext(ctx)

	if err := db.Table("assessments").Where("center IS NOT NULL").Distinct().Pluck("center", &opts.Centers).Error; err != nil {
		return nil, err
	}
	if err := db.Table("assessments").Where("state IS NOT NULL").Distinct().Pluck("state", &opts.States).Error; err != nil {
		return nil, err
	}
	if err := db.Table("assessments").Where("fiscal_year IS NOT NULL").Distinct().Pluck("fiscal_year", &opts.Years).Error; err != nil {
		return nil, err
	}

	sort.Strings(opts.Centers)
	sort.Strings(opts.States)
	sort.Sort(sort.Reverse(sort.IntSlice(opts.Years)))

	return opts, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func zeroIfNil(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
