package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("Loads Enabled Features", func(t *testing.T) {
		mgr := NewManager()
		enabled := &stubFeature{name: "payload", enabled: true}
		disabled := &stubFeature{name: "analytics"}
		mgr.Register(enabled)
		mgr.Register(disabled)

		err := mgr.LoadAll(app)
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("Stops On Failure", func(t *testing.T) {
		mgr := NewManager()
		failing := &stubFeature{name: "arc", enabled: true, err: errors.New("boom")}
		after := &stubFeature{name: "payload", enabled: true}
		mgr.Register(failing)
		mgr.Register(after)

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "arc")
		assert.False(t, after.loaded)
	})
}
