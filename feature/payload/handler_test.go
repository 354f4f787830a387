package payload

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"itac-api/core/server"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, mock := setupMockDB(t)
	svc := newTestService(t, db)
	handler := NewHandler(svc, server.Config{PreviewLimit: 20})
	handler.RegisterRoutes(app)
	return app, mock
}

func TestHandleAll(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, mock := setupTestApp(t)

		rows := sqlmock.NewRows(joinedColumns())
		rows.AddRow("2.1", "UC0101", "I", 1500.0, 2023, "UC", "CT", 4200.0, 120.5, 300.0, "3112", "Corn starch")
		mock.ExpectQuery("SELECT r.arc").WillReturnRows(rows)

		req := httptest.NewRequest("GET", "/all", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "2.1", body[0]["number_arc"])
		assert.Equal(t, "Grain and Oilseed Milling", body[0]["description_naics"])
		assert.Equal(t, true, body[0]["implemented"])
	})

	t.Run("Query Failure Returns Error Object", func(t *testing.T) {
		app, mock := setupTestApp(t)

		mock.ExpectQuery("SELECT r.arc").WillReturnError(assert.AnError)

		req := httptest.NewRequest("GET", "/all", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("Null Columns Stay Null", func(t *testing.T) {
		app, mock := setupTestApp(t)

		rows := sqlmock.NewRows(joinedColumns())
		rows.AddRow("2.1", "UC0102", "N", nil, nil, nil, nil, nil, nil, nil, nil, nil)
		mock.ExpectQuery("SELECT r.arc").WillReturnRows(rows)

		resp, err := app.Test(httptest.NewRequest("GET", "/all", nil))
		require.NoError(t, err)

		var body []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Nil(t, body[0]["cost"])
		assert.Nil(t, body[0]["fiscal_year"])
		assert.Equal(t, false, body[0]["implemented"])
	})
}

func TestHandlePreview(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows(joinedColumns())
	rows.AddRow("2.1", "UC0101", "I", 100.0, 2023, "UC", "CT", 1.0, 1.0, 1.0, "31", "x")
	mock.ExpectQuery("SELECT r.arc.+LIMIT").WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/preview", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
