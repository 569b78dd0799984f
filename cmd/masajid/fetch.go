package main

import (
	"github.com/spf13/cobra"

	"github.com/masajidusa/pipeline/internal/api"
	"github.com/masajidusa/pipeline/internal/catalog"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [region]",
	Short: "Fetch masajid data from the Overpass API",
	Long: `Fetch masajid data for every region in the catalog, or for a single
region when one is named.

The full run is resumable: regions whose files already exist on disk are
skipped, so re-running after an interruption or partial failure only
attempts the missing regions. Regions that fail all retry attempts are
listed in the summary; the command still exits zero so one bad region
never aborts a long run.

A single-region fetch always re-fetches, overwriting that region's file.

Examples:
  masajid fetch                  # Fetch all missing regions
  masajid fetch new_jersey       # Re-fetch one region
  masajid fetch "New Jersey"     # Region names are normalized`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			set, err := svc.pipeline.FetchOne(cmd.Context(), catalog.NormalizeID(args[0]))
			if err != nil {
				return err
			}
			return api.Output(map[string]any{
				"region": set.RegionID,
				"state":  set.DisplayName,
				"count":  set.Count,
			})
		}

		report, err := svc.pipeline.FetchAll(cmd.Context())
		if err != nil {
			return err
		}
		return api.Output(report)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
