package main

import (
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
	"github.com/fr4nk3nst1ner/offersleuth/internal/ui"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	plotMetric string
	plotWidth  int
)

//nolint:gochecknoglobals // Cobra boilerplate
var plotCmd = &cobra.Command{
	Use:   "plot [market...]",
	Short: "Draw salary box plots per employment type and experience level",
	Long: `Draw one figure per market. Each employment type gets a block with one box
plot per experience level on a shared axis. Without arguments every market is drawn.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		metricName := cfg.Display.Metric
		if cmd.Flags().Changed("metric") {
			metricName = plotMetric
		}
		metric, err := models.ParseMetric(metricName)
		if err != nil {
			return err
		}
		width := cfg.Display.Width
		if cmd.Flags().Changed("width") {
			width = plotWidth
		}

		offers, catalog, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		results, err := computeMarkets(offers, catalog, args)
		if err != nil {
			return err
		}

		for _, ms := range results {
			if err := ui.RenderMarket(cmd.OutOrStdout(), ms, catalog, metric, width); err != nil {
				return err
			}
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	plotCmd.Flags().StringVar(&plotMetric, "metric", string(models.MetricAvg2), "Salary figure to plot (min, max, avg, avg2)")
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "Width of the plot axis in characters")
	rootCmd.AddCommand(plotCmd)
}
