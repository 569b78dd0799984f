package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/masajidusa/pipeline/internal/types"
)

// GeneratedAtLayout is the timestamp format written into the index.
const GeneratedAtLayout = "2006-01-02 15:04:05 UTC"

// BuildIndex derives the aggregate index from a set of loaded regions.
// Regions with zero records are excluded and total_count sums only the
// included regions, so the index invariant holds by construction. Pure:
// the same inputs always produce the same index.
func BuildIndex(sets []types.RegionSet, now time.Time) types.Index {
	idx := types.Index{
		RegionCounts: make(map[string]int),
		GeneratedAt:  now.UTC().Format(GeneratedAtLayout),
	}
	for _, set := range sets {
		if set.Count <= 0 {
			continue
		}
		// Distinct region ids can title to the same display name under
		// a custom region table; summing keeps total_count equal to the
		// sum of the map values either way.
		idx.RegionCounts[set.DisplayName] += set.Count
		idx.TotalCount += set.Count
	}
	return idx
}

// RebuildIndex scans every region file on disk, derives a fresh index
// and writes it atomically. There is no incremental path: a full rescan
// is the only way the index is ever produced, which keeps it from
// drifting from the underlying files.
func (s *Store) RebuildIndex(now time.Time) (types.Index, error) {
	sets, err := s.LoadAll()
	if err != nil {
		return types.Index{}, err
	}

	idx := BuildIndex(sets, now)

	// Map keys marshal in sorted order, satisfying the sorted-keys
	// contract of the index file.
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return types.Index{}, fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := writeAtomic(s.dir.IndexPath(), data); err != nil {
		return types.Index{}, err
	}
	return idx, nil
}

// LoadIndex reads the aggregate index file.
func (s *Store) LoadIndex() (types.Index, error) {
	data, err := os.ReadFile(s.dir.IndexPath())
	if errors.Is(err, os.ErrNotExist) {
		return types.Index{}, fmt.Errorf("%w: index", ErrNotFound)
	}
	if err != nil {
		return types.Index{}, fmt.Errorf("failed to read index: %w", err)
	}
	var idx types.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return types.Index{}, fmt.Errorf("%w: %s: %v", ErrMalformed, s.dir.IndexPath(), err)
	}
	return idx, nil
}
