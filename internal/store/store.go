// Package store persists per-region record sets and the derived
// aggregate index under the pipeline data directory. Writes are atomic
// (temp file + rename) so a concurrent reader never observes a partial
// file; reads validate structure and invariants so corruption surfaces
// as a diagnostic naming the offending file instead of propagating.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/masajidusa/pipeline/internal/home"
	"github.com/masajidusa/pipeline/internal/types"
)

// ErrNotFound is returned by Load when no file exists for the region.
var ErrNotFound = errors.New("region file not found")

// ErrMalformed marks a region file that exists but fails to parse or
// violates the dataset invariants. Operations treat this as fatal:
// it indicates corruption, not missing data.
var ErrMalformed = errors.New("malformed region file")

// Store reads and writes region files under a home directory.
type Store struct {
	dir *home.Dir
}

// New creates a Store over dir.
func New(dir *home.Dir) *Store {
	return &Store{dir: dir}
}

// Exists reports whether a file for the region is already on disk. This
// is the completion ledger for the resumable fetch: an existing file
// means the region is done and must not be re-fetched or overwritten.
func (s *Store) Exists(regionID string) bool {
	_, err := os.Stat(s.dir.RegionPath(regionID))
	return err == nil
}

// Load reads and validates one region's file.
func (s *Store) Load(regionID string) (types.RegionSet, error) {
	path := s.dir.RegionPath(regionID)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return types.RegionSet{}, fmt.Errorf("%w: %s", ErrNotFound, regionID)
	}
	if err != nil {
		return types.RegionSet{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := validateRegionJSON(data); err != nil {
		return types.RegionSet{}, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	var set types.RegionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return types.RegionSet{}, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	set.RegionID = regionID
	if set.Places == nil {
		set.Places = []types.Place{}
	}

	if err := checkInvariants(set); err != nil {
		return types.RegionSet{}, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return set, nil
}

// Save writes one region's file atomically. Count is recomputed from the
// record slice so the count invariant holds by construction; duplicate
// ids are rejected before anything touches disk.
func (s *Store) Save(set types.RegionSet) error {
	if set.RegionID == "" {
		return errors.New("region set has no region id")
	}
	set.Count = len(set.Places)
	if set.Places == nil {
		set.Places = []types.Place{}
	}
	if err := checkDuplicateIDs(set.Places); err != nil {
		return fmt.Errorf("refusing to save %s: %w", set.RegionID, err)
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal region %s: %w", set.RegionID, err)
	}
	return writeAtomic(s.dir.RegionPath(set.RegionID), data)
}

// RegionIDs lists the region ids that have files on disk, sorted.
func (s *Store) RegionIDs() ([]string, error) {
	entries, err := os.ReadDir(s.dir.RegionsDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list region files: %w", err)
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadAll loads every region file on disk, in region id order.
func (s *Store) LoadAll() ([]types.RegionSet, error) {
	ids, err := s.RegionIDs()
	if err != nil {
		return nil, err
	}
	sets := make([]types.RegionSet, 0, len(ids))
	for _, id := range ids {
		set, err := s.Load(id)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// checkInvariants verifies the count invariant and id uniqueness on a
// loaded set.
func checkInvariants(set types.RegionSet) error {
	if set.Count != len(set.Places) {
		return fmt.Errorf("count is %d but file holds %d records", set.Count, len(set.Places))
	}
	return checkDuplicateIDs(set.Places)
}

func checkDuplicateIDs(places []types.Place) error {
	seen := make(map[string]struct{}, len(places))
	for _, p := range places {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate record id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// writeAtomic writes data to path via a temp file in the same directory
// and a rename, creating parent directories as needed.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to rename into %s: %w", path, err)
	}
	return nil
}
