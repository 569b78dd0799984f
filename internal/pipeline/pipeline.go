// Package pipeline orchestrates the fetch and cleanup operations over
// the region catalog and the on-disk dataset. Regions are processed
// sequentially: per-region fetch failures are isolated and reported at
// the end of the run, while dataset corruption (a malformed region
// file) halts the operation that touched it.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/masajidusa/pipeline/internal/catalog"
	"github.com/masajidusa/pipeline/internal/normalize"
	"github.com/masajidusa/pipeline/internal/overpass"
	"github.com/masajidusa/pipeline/internal/store"
	"github.com/masajidusa/pipeline/internal/types"
)

// Fetcher is the slice of the overpass client the pipeline needs.
// Tests substitute a fake to drive failure paths without a network.
type Fetcher interface {
	Fetch(ctx context.Context, regionID string, box catalog.BBox) ([]overpass.Element, error)
	Pause(ctx context.Context) error
}

// Pipeline wires the catalog, fetch client and store together.
type Pipeline struct {
	catalog catalog.Catalog
	fetcher Fetcher
	store   *store.Store
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Pipeline. A nil logger falls back to slog.Default.
func New(cat catalog.Catalog, fetcher Fetcher, st *store.Store, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		catalog: cat,
		fetcher: fetcher,
		store:   st,
		logger:  logger,
		now:     time.Now,
	}
}

// FetchAll fetches every region in the catalog that has no file on disk
// yet, persists the results, and rebuilds the aggregate index. The run
// is resumable: existing region files are completion facts and are
// neither re-fetched nor overwritten. Per-region fetch failures are
// collected into the report; the returned error is non-nil only for
// run-level problems (cancellation, corrupt files, index rebuild).
func (p *Pipeline) FetchAll(ctx context.Context) (*FetchReport, error) {
	report := &FetchReport{RunID: uuid.New().String()}

	for _, regionID := range p.catalog.Regions() {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		display := catalog.DisplayName(regionID)

		if p.store.Exists(regionID) {
			set, err := p.store.Load(regionID)
			if err != nil {
				// Corruption is not isolated: halt with the
				// diagnostic naming the file.
				return report, err
			}
			p.logger.Info("skipping region, file exists", "region", regionID, "count", set.Count)
			report.Regions = append(report.Regions, RegionResult{
				RegionID:    regionID,
				DisplayName: display,
				Outcome:     OutcomeSkipped,
				Count:       set.Count,
			})
			report.Skipped++
			report.TotalCount += set.Count
			continue
		}

		result := p.fetchRegion(ctx, regionID)
		report.Regions = append(report.Regions, result)
		switch result.Outcome {
		case OutcomeFailed:
			report.Failed++
			report.FailedRegions = append(report.FailedRegions, regionID)
		default:
			report.Fetched++
			report.TotalCount += result.Count
		}

		// Courtesy delay after every network call, successful or
		// not. Only cancellation can cut it short.
		if err := p.fetcher.Pause(ctx); err != nil {
			return report, err
		}
	}

	idx, err := p.store.RebuildIndex(p.now())
	if err != nil {
		return report, err
	}
	report.Index = &idx

	p.logger.Info("fetch run complete",
		"run_id", report.RunID,
		"fetched", report.Fetched,
		"skipped", report.Skipped,
		"failed", report.Failed,
		"total", report.TotalCount)
	return report, nil
}

// fetchRegion fetches and persists a single region, mapping the outcome
// into a report line. A failed fetch writes nothing.
func (p *Pipeline) fetchRegion(ctx context.Context, regionID string) RegionResult {
	display := catalog.DisplayName(regionID)
	result := RegionResult{RegionID: regionID, DisplayName: display}

	box, err := p.catalog.Lookup(regionID)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
		return result
	}

	p.logger.Info("fetching region", "region", regionID)
	elements, err := p.fetcher.Fetch(ctx, regionID, box)
	if err != nil {
		p.logger.Error("region fetch failed", "region", regionID, "error", err)
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
		return result
	}

	set := p.normalizeRegion(regionID, display, elements)
	if err := p.store.Save(set); err != nil {
		p.logger.Error("region save failed", "region", regionID, "error", err)
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
		return result
	}

	result.Count = set.Count
	if set.Count == 0 {
		result.Outcome = OutcomeEmpty
	} else {
		result.Outcome = OutcomeFetched
	}
	p.logger.Info("region persisted", "region", regionID, "count", set.Count)
	return result
}

// FetchOne fetches a single region unconditionally (no skip) and
// persists the result, including an empty success as a zero-count file.
// It does not rebuild the index; that is the fetch-all and cleanup
// trigger.
func (p *Pipeline) FetchOne(ctx context.Context, regionID string) (types.RegionSet, error) {
	box, err := p.catalog.Lookup(regionID)
	if err != nil {
		return types.RegionSet{}, err
	}

	p.logger.Info("fetching region", "region", regionID)
	elements, err := p.fetcher.Fetch(ctx, regionID, box)
	if err != nil {
		return types.RegionSet{}, fmt.Errorf("region %s: %w", regionID, err)
	}

	set := p.normalizeRegion(regionID, catalog.DisplayName(regionID), elements)
	if err := p.store.Save(set); err != nil {
		return types.RegionSet{}, err
	}
	p.logger.Info("region persisted", "region", regionID, "count", set.Count)
	return set, nil
}

// normalizeRegion maps raw elements to places, dropping elements without
// resolvable coordinates and de-duplicating on the composite id as a
// defensive check (overlapping queries can return an element twice).
func (p *Pipeline) normalizeRegion(regionID, display string, elements []overpass.Element) types.RegionSet {
	set := types.RegionSet{
		RegionID:    regionID,
		DisplayName: display,
		Places:      make([]types.Place, 0, len(elements)),
	}
	seen := make(map[string]struct{}, len(elements))
	for _, el := range elements {
		place := normalize.Element(el, regionID)
		if place == nil {
			continue
		}
		if _, dup := seen[place.ID]; dup {
			continue
		}
		seen[place.ID] = struct{}{}
		set.Places = append(set.Places, *place)
	}
	set.Count = len(set.Places)
	return set
}
