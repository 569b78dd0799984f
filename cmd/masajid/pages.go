package main

import (
	"github.com/spf13/cobra"

	"github.com/masajidusa/pipeline/internal/api"
	"github.com/masajidusa/pipeline/internal/pages"
)

var pagesTranslations bool

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Generate Hugo content pages from the aggregate index",
	Long: `Generate the states listing page and one content stub per region in
the aggregate index. With --translations, each page is duplicated per
configured language (default: ar, ur, es) for the multilingual site
build; the copies are identical, UI strings come from i18n.

Requires an index file; run "masajid fetch" or "masajid index" first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}

		gen := pages.New(svc.home, svc.store, svc.cfg.Pages.Languages, svc.logger)
		report, err := gen.Generate(pagesTranslations)
		if err != nil {
			return err
		}
		return api.Output(report)
	},
}

func init() {
	pagesCmd.Flags().BoolVar(&pagesTranslations, "translations", false, "also write per-language page copies")
	rootCmd.AddCommand(pagesCmd)
}
