package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Mirror copies the current index and every region file into dstDir,
// preserving the states/ layout. Used after cleanup to refresh a static
// site's copy of the dataset. Files are re-read through Load so a
// corrupt source surfaces here rather than being propagated.
func (s *Store) Mirror(dstDir string) error {
	idx, err := s.LoadIndex()
	if err != nil {
		return err
	}
	sets, err := s.LoadAll()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := writeAtomic(filepath.Join(dstDir, filepath.Base(s.dir.IndexPath())), data); err != nil {
		return err
	}

	statesDir := filepath.Join(dstDir, "states")
	if err := os.MkdirAll(statesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", statesDir, err)
	}
	for _, set := range sets {
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal region %s: %w", set.RegionID, err)
		}
		if err := writeAtomic(filepath.Join(statesDir, set.RegionID+".json"), data); err != nil {
			return err
		}
	}
	return nil
}
