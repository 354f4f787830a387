package naics

// Config holds configuration for the NAICS hierarchy resolver.
type Config struct {
	// Path is the location of the NAICS hierarchy JSON document.
	Path string `mapstructure:"path" default:"data/naics_hierarchy.json"`
}
