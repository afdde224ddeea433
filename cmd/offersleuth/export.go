package main

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/offersleuth/internal/export"
	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	exportOut         string
	exportMarkets     []string
	exportExperiences []string
	exportTypes       []string
	exportMetric      string
	exportShuffle     bool
	exportSeed        int64
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export salary figures as ';' separated tables",
}

//nolint:gochecknoglobals // Cobra boilerplate
var exportWideCmd = &cobra.Command{
	Use:   "wide",
	Short: "One column per market/experience/employment type combination",
	Long: `Write one column per market/experience/employment type combination holding the
chosen salary figure. Columns are shuffled independently unless --shuffle=false,
so rows are not aligned across columns.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		metricName := cfg.Display.Metric
		if cmd.Flags().Changed("metric") {
			metricName = exportMetric
		}
		metric, err := models.ParseMetric(metricName)
		if err != nil {
			return err
		}

		shuffle := cfg.Export.Shuffle
		if cmd.Flags().Changed("shuffle") {
			shuffle = exportShuffle
		}
		seed := cfg.Export.Seed
		if cmd.Flags().Changed("seed") {
			seed = exportSeed
		}

		opts := export.WideOptions{Metric: metric}
		if shuffle {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			pterm.Debug.Printfln("Shuffling columns with seed %d", seed)
			opts.Rand = rand.New(rand.NewSource(seed))
		}

		return runExport(cmd, func(w io.Writer, results []*models.MarketStats, sel export.Selection) error {
			return export.WriteWide(w, results, sel, opts)
		})
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var exportLongCmd = &cobra.Command{
	Use:   "long",
	Short: "One row per salary observation with explicit category columns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, export.WriteLong)
	},
}

type writeFunc func(w io.Writer, results []*models.MarketStats, sel export.Selection) error

func runExport(cmd *cobra.Command, write writeFunc) error {
	offers, catalog, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	sel, err := export.Selection{
		Markets:          exportMarkets,
		ExperienceLevels: exportExperiences,
		EmploymentTypes:  exportTypes,
	}.Resolve(catalog)
	if err != nil {
		return err
	}

	results, err := computeMarkets(offers, catalog, sel.Markets)
	if err != nil {
		return err
	}

	if exportOut == "" || exportOut == "-" {
		return write(cmd.OutOrStdout(), results, sel)
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", exportOut)
	}
	if err := write(f, results, sel); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", exportOut)
	}

	pterm.Success.Printfln("Wrote %s", exportOut)
	return nil
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
	exportCmd.PersistentFlags().StringSliceVar(&exportMarkets, "market", nil, "Markets to export (default all)")
	exportCmd.PersistentFlags().StringSliceVar(&exportExperiences, "experience", nil, "Experience levels to export (default all)")
	exportCmd.PersistentFlags().StringSliceVar(&exportTypes, "type", nil, "Employment types to export (default all)")

	exportWideCmd.Flags().StringVar(&exportMetric, "metric", string(models.MetricAvg2), "Salary figure to export (min, max, avg, avg2; default display.metric)")
	exportWideCmd.Flags().BoolVar(&exportShuffle, "shuffle", true, "Shuffle every column independently")
	exportWideCmd.Flags().Int64Var(&exportSeed, "seed", 0, "Shuffle seed (default random)")

	exportCmd.AddCommand(exportWideCmd, exportLongCmd)
	rootCmd.AddCommand(exportCmd)
}
