package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the pipeline home directory.
	DefaultDirName = ".masajid"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"

	// IndexFileName is the aggregate index file name. The underscore
	// keeps it sorted ahead of the region files.
	IndexFileName = "_index.json"
)

// Dir represents the pipeline home directory structure:
//
//	{root}/config.yaml
//	{root}/data/masajid/_index.json
//	{root}/data/masajid/states/{region_id}.json
//	{root}/content/states/{slug}/index.md
//	{root}/static/data/masajid/...
type Dir struct {
	path string
}

// New creates a Dir rooted at path, or at ~/.masajid when path is empty.
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}
	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// DataPath returns the dataset directory.
func (d *Dir) DataPath() string {
	return filepath.Join(d.path, "data", "masajid")
}

// RegionsDir returns the directory holding per-region files.
func (d *Dir) RegionsDir() string {
	return filepath.Join(d.DataPath(), "states")
}

// RegionPath returns the path of one region's file.
func (d *Dir) RegionPath(regionID string) string {
	return filepath.Join(d.RegionsDir(), regionID+".json")
}

// IndexPath returns the path of the aggregate index file.
func (d *Dir) IndexPath() string {
	return filepath.Join(d.DataPath(), IndexFileName)
}

// ContentStatesDir returns the directory for generated region pages.
func (d *Dir) ContentStatesDir() string {
	return filepath.Join(d.path, "content", "states")
}

// StaticDataDir returns the static mirror of the dataset, when the site
// layout uses one. Its existence is optional; callers check before
// mirroring.
func (d *Dir) StaticDataDir() string {
	return filepath.Join(d.path, "static", "data", "masajid")
}

// EnsureExists creates the region data directory (and parents).
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.RegionsDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
