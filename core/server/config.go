package server

// DefaultPreviewLimit is used when the configured preview limit is not positive.
const DefaultPreviewLimit = 20

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// AllowOrigins is the comma-separated CORS origin allowlist ("*" for all).
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
	// PreviewLimit is the number of rows served by the /preview endpoint.
	PreviewLimit int `mapstructure:"preview_limit" default:"20"`
}

// EffectivePreviewLimit returns the configured preview limit, falling back to
// DefaultPreviewLimit for zero or negative values.
func (c Config) EffectivePreviewLimit() int {
	if c.PreviewLimit <= 0 {
		return DefaultPreviewLimit
	}
	return c.PreviewLimit
}
