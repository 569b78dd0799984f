package main

import (
	"github.com/spf13/cobra"

	"github.com/masajidusa/pipeline/internal/api"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the aggregate index from the region files",
	Long: `Rebuild the aggregate index by scanning every region file on disk.

The index is always derived from scratch — there is no incremental
update path — so it cannot drift from the region files. Regions with
zero records are excluded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}

		idx, err := svc.pipeline.RebuildIndex()
		if err != nil {
			return err
		}
		return api.Output(idx)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
