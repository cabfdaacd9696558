package model

import "time"

// Config holds runtime settings for the CLI and pipeline.
type Config struct {
	Cache  CacheConfig  `json:"cache" yaml:"cache"`
	Output OutputConfig `json:"output" yaml:"output"`
}

// CacheConfig controls comment memoization during batch runs.
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose         bool   `json:"verbose" yaml:"verbose"`
	IncludeGuidance bool   `json:"include_guidance" yaml:"include_guidance"` // attach questions/next steps to results
	Format          string `json:"format" yaml:"format"`                     // "text" or "json"
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Output: OutputConfig{
			Verbose:         false,
			IncludeGuidance: false,
			Format:          "text",
		},
	}
}
