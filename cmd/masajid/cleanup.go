package main

import (
	"github.com/spf13/cobra"

	"github.com/masajidusa/pipeline/internal/api"
)

var cleanupNoMirror bool

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Purge placeholder-named records and reconcile the index",
	Long: `Cleanup rewrites every region file with the configured placeholder
names removed (default: "Unknown Masjid"), then rebuilds the aggregate
index from the updated files. The operation is idempotent; a second run
makes no further changes.

When the static data directory exists the refreshed dataset is mirrored
into it, unless --no-mirror is set.

A region file that fails to parse or violates the count invariant halts
the run: that is dataset corruption, not missing data.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}

		mirrorDir := svc.home.StaticDataDir()
		if cleanupNoMirror {
			mirrorDir = ""
		}

		report, err := svc.pipeline.Cleanup(svc.cfg.Cleanup.RemoveNames, mirrorDir)
		if err != nil {
			return err
		}
		return api.Output(report)
	},
}

func init() {
	cleanupCmd.Flags().BoolVar(&cleanupNoMirror, "no-mirror", false, "skip mirroring into the static data directory")
	rootCmd.AddCommand(cleanupCmd)
}
