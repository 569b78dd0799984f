package pipeline

import (
	"github.com/masajidusa/pipeline/internal/types"
)

// RegionOutcome classifies what happened to one region during a run.
type RegionOutcome string

const (
	// OutcomeFetched: data fetched and persisted.
	OutcomeFetched RegionOutcome = "fetched"
	// OutcomeEmpty: fetch succeeded with zero results; a zero-count
	// file was persisted (excluded from the index).
	OutcomeEmpty RegionOutcome = "empty"
	// OutcomeSkipped: a file already existed, region not re-fetched.
	OutcomeSkipped RegionOutcome = "skipped"
	// OutcomeFailed: all fetch attempts failed; no file written, any
	// pre-existing file untouched.
	OutcomeFailed RegionOutcome = "failed"
)

// RegionResult is one region's line in the run report.
type RegionResult struct {
	RegionID    string        `json:"region_id" yaml:"region_id"`
	DisplayName string        `json:"display_name" yaml:"display_name"`
	Outcome     RegionOutcome `json:"outcome" yaml:"outcome"`
	Count       int           `json:"count" yaml:"count"`
	Error       string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// FetchReport summarizes a fetch-all run. Failures are reported, not
// fatal: a run with failed regions still completes and exits zero.
type FetchReport struct {
	RunID         string         `json:"run_id" yaml:"run_id"`
	Regions       []RegionResult `json:"regions" yaml:"regions"`
	Fetched       int            `json:"fetched" yaml:"fetched"`
	Skipped       int            `json:"skipped" yaml:"skipped"`
	Failed        int            `json:"failed" yaml:"failed"`
	FailedRegions []string       `json:"failed_regions,omitempty" yaml:"failed_regions,omitempty"`
	TotalCount    int            `json:"total_count" yaml:"total_count"`
	Index         *types.Index   `json:"index,omitempty" yaml:"index,omitempty"`
}

// CleanupRegion is one region's line in the cleanup report.
type CleanupRegion struct {
	RegionID  string `json:"region_id" yaml:"region_id"`
	Removed   int    `json:"removed" yaml:"removed"`
	Remaining int    `json:"remaining" yaml:"remaining"`
}

// CleanupReport summarizes a cleanup run.
type CleanupReport struct {
	RunID        string          `json:"run_id" yaml:"run_id"`
	Regions      []CleanupRegion `json:"regions" yaml:"regions"`
	RemovedTotal int             `json:"removed_total" yaml:"removed_total"`
	TotalCount   int             `json:"total_count" yaml:"total_count"`
	Index        *types.Index    `json:"index,omitempty" yaml:"index,omitempty"`
	Mirrored     bool            `json:"mirrored" yaml:"mirrored"`
}
