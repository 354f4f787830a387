package models

// Row is one enriched entry of the /all response. Nullable database columns
// stay pointers so the JSON output carries null instead of zero values.
type Row struct {
	NumberARC        *string  `json:"number_arc"`
	NumberNAICS      *string  `json:"number_naics"`
	DescriptionNAICS string   `json:"description_naics"`
	DescriptionARC   string   `json:"description_arc"`
	ProductNAICS     *string  `json:"product_naics"`
	Center           *string  `json:"center"`
	State            *string  `json:"state"`
	FiscalYear       *int     `json:"fiscal_year"`
	Implemented      bool     `json:"implemented"`
	Cost             *float64 `json:"cost"`
	TotalSavings     *float64 `json:"total_savings"`
	PConservedMMBTU  *float64 `json:"p_conserved_mmbtu"`
	EnergySavings    *float64 `json:"energy_savings"`
}

// JoinedRow is the raw projection of the recommendations-assessments join.
type JoinedRow struct {
	Arc              *string  `gorm:"column:arc"`
	AssessmentID     *string  `gorm:"column:assessment_id"`
	ImpStatus        *string  `gorm:"column:imp_status"`
	ImpCost          *float64 `gorm:"column:imp_cost"`
	FiscalYear       *int     `gorm:"column:fiscal_year"`
	Center           *string  `gorm:"column:center"`
	State            *string  `gorm:"column:state"`
	TotalSavings     *float64 `gorm:"column:total_savings"`
	PConservedMmbtu  *float64 `gorm:"column:p_conserved_mmbtu"`
	TotalEnergySaved *float64 `gorm:"column:total_energy_saved"`
	Naics            *string  `gorm:"column:naics"`
	Products         *string  `gorm:"column:products"`
}
