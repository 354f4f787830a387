package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// requiredColumns lists the columns the payload and analytics queries touch.
// The upstream parser writes more, but only these break requests when absent.
var requiredColumns = map[string][]string{
	"recommendations": {
		"arc", "assessment_id", "imp_status", "imp_cost", "fiscal_year",
		"total_savings", "p_conserved_mmbtu", "total_energy_saved", "payback", "p_saved",
	},
	"assessments": {
		"id", "center", "state", "naics", "products", "fiscal_year",
	},
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == "sqlite" {
		// SQLite uses PRAGMA table_info
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var sqliteCols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			columns = append(columns, ColumnInfo{
				Field: strings.ToLower(col.Name),
				Type:  strings.ToLower(col.Type),
			})
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// VerifySchema checks that the connected database carries the tables and
// columns the API queries. It returns a human-readable list of gaps; a
// non-empty result means the upstream parser artifacts are stale or damaged.
func VerifySchema(db *gorm.DB) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var gaps []string
	for _, table := range []string{"recommendations", "assessments"} {
		required := requiredColumns[table]
		columns, err := GetTableColumns(db, table)
		if err != nil {
			return nil, err
		}
		if len(columns) == 0 {
			gaps = append(gaps, fmt.Sprintf("table %s: missing", table))
			continue
		}

		present := make(map[string]bool, len(columns))
		for _, col := range columns {
			present[col.Field] = true
		}
		for _, name := range required {
			if !present[name] {
				gaps = append(gaps, fmt.Sprintf("table %s: missing column %s", table, name))
			}
		}
	}
	return gaps, nil
}
