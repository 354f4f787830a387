package arc

// Config holds configuration for the ARC hierarchy resolver.
type Config struct {
	// Path is the location of the ARC hierarchy JSON document.
	Path string `mapstructure:"path" default:"data/arc_hierarchy.json"`
}
