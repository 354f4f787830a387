package arc

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	corearc "itac-api/core/arc"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDocument = `{
	"arc_hierarchy": {
		"2": {
			"code": "2",
			"description": "Energy Management",
			"children": {
				"2.1": {
					"code": "2.1",
					"description": "Combustion Systems",
					"children": {
						"2.11": {"code": "2.11", "description": "Furnaces, Ovens And Boilers", "children": {}}
					}
				}
			}
		}
	},
	"arc_codes": {"2": "Energy Management", "2.1": "Combustion Systems"}
}`

func setupTestApp(t *testing.T) *fiber.App {
	resolver, err := corearc.Parse([]byte(testDocument))
	require.NoError(t, err)

	app := fiber.New()
	handler := NewHandler(NewService(resolver, zap.NewNop()))
	handler.RegisterRoutes(app)
	return app
}

func TestHandleSubtree(t *testing.T) {
	t.Run("Known Code", func(t *testing.T) {
		app := setupTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/arc/2.1", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]struct {
			Code        string         `json:"code"`
			Description string         `json:"description"`
			Children    map[string]any `json:"children"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		entry, ok := body["2.1"]
		require.True(t, ok)
		assert.Equal(t, "2.1", entry.Code)
		assert.Equal(t, "Combustion Systems", entry.Description)
		assert.Contains(t, entry.Children, "2.11")
	})

	t.Run("Leaf Code Has Empty Children", func(t *testing.T) {
		app := setupTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/arc/2.11", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotNil(t, body["2.11"]["children"])
	})

	t.Run("Unknown Code", func(t *testing.T) {
		app := setupTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/arc/9.99", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "No data found for the given ARC code", body["error"])
	})
}
