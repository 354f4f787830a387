package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(New())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals("ray_id").(string)
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("Generates ID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header.Get(HeaderName))
	})

	t.Run("Keeps Caller ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderName, "ray-from-proxy")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "ray-from-proxy", seen)
		assert.Equal(t, "ray-from-proxy", resp.Header.Get(HeaderName))
	})
}
