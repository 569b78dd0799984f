package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/masajidusa/pipeline/internal/types"
)

// Cleanup rewrites every region file with the records whose names match
// removeNames purged, then rebuilds the aggregate index from the
// updated files. Running it twice is a no-op the second time. A
// malformed region file aborts the whole operation. When mirrorDir is
// non-empty and exists, the refreshed dataset is copied into it.
func (p *Pipeline) Cleanup(removeNames []string, mirrorDir string) (*CleanupReport, error) {
	report := &CleanupReport{RunID: uuid.New().String()}

	purge := make(map[string]struct{}, len(removeNames))
	for _, name := range removeNames {
		purge[strings.TrimSpace(name)] = struct{}{}
	}
	keep := func(pl types.Place) bool {
		_, drop := purge[strings.TrimSpace(pl.Name)]
		return !drop
	}

	ids, err := p.store.RegionIDs()
	if err != nil {
		return nil, err
	}

	for _, regionID := range ids {
		set, err := p.store.Load(regionID)
		if err != nil {
			return nil, err
		}

		cleaned := set.Filter(keep)
		removed := set.Count - cleaned.Count
		if err := p.store.Save(cleaned); err != nil {
			return nil, err
		}

		report.Regions = append(report.Regions, CleanupRegion{
			RegionID:  regionID,
			Removed:   removed,
			Remaining: cleaned.Count,
		})
		report.RemovedTotal += removed
		report.TotalCount += cleaned.Count

		if removed > 0 {
			p.logger.Info("cleaned region", "region", regionID, "removed", removed, "remaining", cleaned.Count)
		}
	}

	idx, err := p.store.RebuildIndex(p.now())
	if err != nil {
		return nil, err
	}
	report.Index = &idx

	if mirrorDir != "" {
		if _, err := os.Stat(mirrorDir); err == nil {
			if err := p.store.Mirror(mirrorDir); err != nil {
				return nil, fmt.Errorf("failed to mirror dataset: %w", err)
			}
			report.Mirrored = true
		}
	}

	p.logger.Info("cleanup complete",
		"run_id", report.RunID,
		"removed", report.RemovedTotal,
		"total", report.TotalCount)
	return report, nil
}

// RebuildIndex rebuilds the aggregate index without touching region
// files. Exposed for the standalone index command.
func (p *Pipeline) RebuildIndex() (types.Index, error) {
	return p.store.RebuildIndex(p.now())
}
