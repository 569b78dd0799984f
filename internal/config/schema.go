package config

import (
	"time"

	"github.com/masajidusa/pipeline/internal/catalog"
	"github.com/masajidusa/pipeline/internal/normalize"
	"github.com/masajidusa/pipeline/internal/overpass"
)

// Config holds pipeline configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Overpass OverpassCfg             `mapstructure:"overpass" yaml:"overpass"`
	Cleanup  CleanupCfg              `mapstructure:"cleanup" yaml:"cleanup"`
	Pages    PagesCfg                `mapstructure:"pages" yaml:"pages"`
	Regions  map[string]catalog.BBox `mapstructure:"regions" yaml:"regions,omitempty"`
}

// OverpassCfg configures the upstream geodata client.
type OverpassCfg struct {
	URL                 string `mapstructure:"url" yaml:"url"`
	TimeoutSeconds      int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`             // per-attempt HTTP timeout
	RetryAttempts       uint   `mapstructure:"retry_attempts" yaml:"retry_attempts"`               // total tries per region
	RetryStepSeconds    int    `mapstructure:"retry_step_seconds" yaml:"retry_step_seconds"`       // backoff grows linearly by this step
	RequestPauseSeconds int    `mapstructure:"request_pause_seconds" yaml:"request_pause_seconds"` // courtesy delay after every region
}

// CleanupCfg names the records the cleanup operation purges. Removing
// placeholder-named records discards otherwise-valid geodata, so the
// policy lives in config rather than as a hardcoded string match; an
// empty list turns cleanup into a pure invariant check + index rebuild.
type CleanupCfg struct {
	RemoveNames []string `mapstructure:"remove_names" yaml:"remove_names"`
}

// PagesCfg configures content page generation.
type PagesCfg struct {
	Languages []string `mapstructure:"languages" yaml:"languages"` // translation copies per page
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Overpass: OverpassCfg{
			URL:                 overpass.DefaultURL,
			TimeoutSeconds:      180,
			RetryAttempts:       3,
			RetryStepSeconds:    10,
			RequestPauseSeconds: 5,
		},
		Cleanup: CleanupCfg{
			RemoveNames: []string{normalize.UnknownName},
		},
		Pages: PagesCfg{
			Languages: []string{"ar", "ur", "es"},
		},
	}
}

// Catalog returns the configured region table, falling back to the
// built-in US state decomposition when no override is set.
func (c *Config) Catalog() catalog.Catalog {
	if len(c.Regions) > 0 {
		return catalog.Catalog(c.Regions)
	}
	return catalog.USStates()
}

// OverpassClientConfig translates the config section into client options.
func (c *Config) OverpassClientConfig() overpass.Config {
	return overpass.Config{
		URL:       c.Overpass.URL,
		Timeout:   time.Duration(c.Overpass.TimeoutSeconds) * time.Second,
		Attempts:  c.Overpass.RetryAttempts,
		RetryStep: time.Duration(c.Overpass.RetryStepSeconds) * time.Second,
		Pause:     time.Duration(c.Overpass.RequestPauseSeconds) * time.Second,
	}
}
