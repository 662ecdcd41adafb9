package config

// Cache backends understood by the route cache node.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Log formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Tidefile represents the structure of the tide.yaml configuration file.
type Tidefile struct {
	Version   string          `yaml:"version"`
	Graph     GraphConfig     `yaml:"graph"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
	HTTP      HTTPConfig      `yaml:"http"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Source is the file the configuration was read from. Empty for defaults.
	Source string `yaml:"-"`
}

// GraphConfig locates the graph store.
type GraphConfig struct {
	Path string `yaml:"path" validate:"required"`
	// Watch makes the serve command report edits to the graph file.
	Watch bool `yaml:"watch"`
}

// CacheConfig selects and locates the route cache.
type CacheConfig struct {
	Backend string `yaml:"backend" validate:"oneof=file badger memory"`
	Path    string `yaml:"path" validate:"required_unless=Backend memory"`
}

// LogConfig controls log rendering.
type LogConfig struct {
	Format string `yaml:"format" validate:"oneof=pretty json"`
}

// HTTPConfig configures the serve command.
type HTTPConfig struct {
	Addr string `yaml:"addr" validate:"required"`
	// RateLimit is the sustained requests per second allowed on route queries.
	// Zero disables limiting.
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`
}

// TelemetryConfig configures span export.
type TelemetryConfig struct {
	// Export writes finished spans as JSON lines, to File when set and to
	// stderr otherwise. Stdout is reserved for command output.
	Export bool   `yaml:"export"`
	File   string `yaml:"file"`
}
