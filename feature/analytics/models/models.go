package models

// Aggregate is one /recommendations entry, keyed by ARC code.
type Aggregate struct {
	ArcCode            string  `json:"arc_code"`
	Description        string  `json:"description"`
	AverageSavings     float64 `json:"average_savings"`
	AverageCost        float64 `json:"average_cost"`
	AveragePayback     float64 `json:"average_payback"`
	ImplementationRate float64 `json:"implementation_rate"`
	TimesRecommended   int     `json:"times_recommended"`
}

// AggregateRow is one /aggregates entry, pre-formatted for the dashboard.
type AggregateRow struct {
	Arc                string  `json:"arc"`
	Description        string  `json:"description"`
	AvgSavings         string  `json:"avgSavings"`
	AvgCost            string  `json:"avgCost"`
	AvgPayback         float64 `json:"avgPayback"`
	ImplementationRate string  `json:"implementationRate"`
	Recommended        int     `json:"recommended"`
}

// FilterOptions lists the values available for /aggregates filtering.
type FilterOptions struct {
	Centers []string `json:"centers"`
	States  []string `json:"states"`
	Years   []int    `json:"years"`
}

// RecommendationRow is the raw projection used by /recommendations.
type RecommendationRow struct {
	Arc          *string  `gorm:"column:arc"`
	ImpStatus    *string  `gorm:"column:imp_status"`
	ImpCost      *float64 `gorm:"column:imp_cost"`
	TotalSavings *float64 `gorm:"column:total_savings"`
	Payback      *float64 `gorm:"column:payback"`
	FiscalYear   *int     `gorm:"column:fiscal_year"`
}

// AggregateScan is the raw projection of the /aggregates SQL.
type AggregateScan struct {
	ArcCode            *string  `gorm:"column:arc_code"`
	AverageSavings     *float64 `gorm:"column:average_savings"`
	AverageCost        *float64 `gorm:"column:average_cost"`
	AveragePayback     *float64 `gorm:"column:average_payback"`
	ImplementationRate *float64 `gorm:"column:implementation_rate"`
	TimesRecommended   int      `gorm:"column:times_recommended"`
}
