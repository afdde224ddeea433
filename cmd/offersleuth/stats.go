package main

import (
	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/offersleuth/internal/export"
	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
	"github.com/fr4nk3nst1ner/offersleuth/internal/stats"
	"github.com/fr4nk3nst1ner/offersleuth/internal/ui"
)

//nolint:gochecknoglobals // Cobra boilerplate
var statsCmd = &cobra.Command{
	Use:   "stats [market...]",
	Short: "Show offer and salary disclosure counts per experience level",
	Long: `Show how many offers each experience level has in a market and how many of
them disclose a salary for all, some or none of their employment types.
Without arguments every market is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		offers, catalog, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		results, err := computeMarkets(offers, catalog, args)
		if err != nil {
			return err
		}

		for _, ms := range results {
			if err := ui.RenderCounts(cmd.OutOrStdout(), ms, catalog); err != nil {
				return err
			}
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(statsCmd)
}

// computeMarkets aggregates the requested markets, or all of them when none
// are given, with a progress bar for longer runs
func computeMarkets(offers []models.Offer, catalog models.Catalog, markets []string) ([]*models.MarketStats, error) {
	sel, err := export.Selection{Markets: markets}.Resolve(catalog)
	if err != nil {
		return nil, err
	}

	var bar *pb.ProgressBar
	if len(sel.Markets) > 1 {
		bar = pb.StartNew(len(sel.Markets))
		defer bar.Finish()
	}

	selected := catalog
	selected.Markets = sel.Markets
	return stats.ComputeAll(offers, selected, func(string) {
		if bar != nil {
			bar.Increment()
		}
	})
}
