// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RosterPath points at a YAML roster file. Empty uses the
	// built-in sample roster.
	RosterPath string `koanf:"roster_path"`

	// ScenarioCacheSize bounds the LRU cache of scenario analyses.
	ScenarioCacheSize int `koanf:"scenario_cache_size"`

	// PodiumDepth is the deepest position counted as a podium.
	PodiumDepth int `koanf:"podium_depth"`

	// PointsTable overrides the race points paid per position; index 0
	// pays the winner. Empty uses the standard table.
	PointsTable []int `koanf:"points_table"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":8080",
		RosterPath:        "",
		ScenarioCacheSize: 64,
		PodiumDepth:       3,
	}
}
