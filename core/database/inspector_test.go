package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, name := range names {
		rows.AddRow(name, "varchar(20)", "YES", "", nil, "")
	}
	return rows
}

func TestVerifySchema(t *testing.T) {
	t.Run("Complete Schema", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery("SHOW COLUMNS FROM `recommendations`").WillReturnRows(columnRows(
			"super_id", "arc", "assessment_id", "imp_status", "imp_cost", "fiscal_year",
			"total_savings", "p_conserved_mmbtu", "total_energy_saved", "payback", "p_saved",
		))
		mock.ExpectQuery("SHOW COLUMNS FROM `assessments`").WillReturnRows(columnRows(
			"id", "center", "state", "naics", "products", "fiscal_year", "sales",
		))

		gaps, err := VerifySchema(db)
		require.NoError(t, err)
		assert.Empty(t, gaps)
	})

	t.Run("Missing Column", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery("SHOW COLUMNS FROM `recommendations`").WillReturnRows(columnRows(
			"arc", "assessment_id", "imp_status", "imp_cost", "fiscal_year",
			"total_savings", "total_energy_saved", "payback", "p_saved",
		))
		mock.ExpectQuery("SHOW COLUMNS FROM `assessments`").WillReturnRows(columnRows(
			"id", "center", "state", "naics", "products", "fiscal_year",
		))

		gaps, err := VerifySchema(db)
		require.NoError(t, err)
		assert.Equal(t, []string{"table recommendations: missing column p_conserved_mmbtu"}, gaps)
	})

	t.Run("Missing Table", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery("SHOW COLUMNS FROM `recommendations`").WillReturnRows(columnRows())
		mock.ExpectQuery("SHOW COLUMNS FROM `assessments`").WillReturnRows(columnRows(
			"id", "center", "state", "naics", "products", "fiscal_year",
		))

		gaps, err := VerifySchema(db)
		require.NoError(t, err)
		assert.Contains(t, gaps, "table recommendations: missing")
	})

	t.Run("Nil Connection", func(t *testing.T) {
		gaps, err := VerifySchema(nil)
		assert.Error(t, err)
		assert.Nil(t, gaps)
	})
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `assessments`").WillReturnRows(columnRows("ID", "Center"))

	columns, err := GetTableColumns(db, "assessments")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	// Names are normalized to lowercase.
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "center", columns[1].Field)
}
