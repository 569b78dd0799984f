package main

import (
	"github.com/spf13/cobra"

	"github.com/masajidusa/pipeline/internal/api"
	"github.com/masajidusa/pipeline/internal/catalog"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions in the catalog and their fetch status",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}

		type regionStatus struct {
			RegionID    string `json:"region_id" yaml:"region_id"`
			DisplayName string `json:"display_name" yaml:"display_name"`
			Fetched     bool   `json:"fetched" yaml:"fetched"`
			Count       int    `json:"count" yaml:"count"`
		}

		cat := svc.cfg.Catalog()
		statuses := make([]regionStatus, 0, len(cat))
		for _, id := range cat.Regions() {
			rs := regionStatus{RegionID: id, DisplayName: catalog.DisplayName(id)}
			if svc.store.Exists(id) {
				set, err := svc.store.Load(id)
				if err != nil {
					return err
				}
				rs.Fetched = true
				rs.Count = set.Count
			}
			statuses = append(statuses, rs)
		}
		return api.Output(statuses)
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
