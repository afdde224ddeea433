package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/offersleuth/internal/cache"
	"github.com/fr4nk3nst1ner/offersleuth/internal/client"
	"github.com/fr4nk3nst1ner/offersleuth/internal/config"
	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
	"github.com/fr4nk3nst1ner/offersleuth/internal/parser"
	"github.com/fr4nk3nst1ner/offersleuth/internal/stats"
	"github.com/fr4nk3nst1ner/offersleuth/internal/ui"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	configFile string
	debug      bool
	noBanner   bool
	refresh    bool
	cfg        config.Config
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "offersleuth",
	Short: "Salary statistics for job offer listings",
	Long: `offersleuth downloads job offers from a public offers API, caches the payload
locally and breaks salaries down by market, experience level and employment type.

Results can be browsed as terminal box plots or exported as ';' separated tables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries command output only, so exports can be redirected
		pterm.SetDefaultOutput(cmd.ErrOrStderr())
		if debug {
			pterm.EnableDebugMessages()
		}
		ui.PrintBanner(cmd.ErrOrStderr(), noBanner)

		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("url") {
			cfg.Source.URL = sourceURL
		}
		if cmd.Flags().Changed("cache") {
			cfg.Cache.Path = cachePath
		}
		if cmd.Flags().Changed("proxy") {
			cfg.Source.Proxy = proxyURL
		}
		pterm.Debug.Printfln("Using source %s, cache %s", cfg.Source.URL, cfg.Cache.Path)
		return nil
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var (
	sourceURL string
	cachePath string
	proxyURL  string
)

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./offersleuth.yaml or $HOME/.offersleuth/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noBanner, "nobanner", false, "Silence the banner")
	rootCmd.PersistentFlags().BoolVar(&refresh, "refresh", false, "Download the offers again even if the cache is fresh")
	rootCmd.PersistentFlags().StringVar(&sourceURL, "url", config.DefaultURL, "Offers API endpoint")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", config.DefaultCachePath, "Path of the offers cache file")
	rootCmd.PersistentFlags().StringVar(&proxyURL, "proxy", "", "Proxy URL to use")
}

// fetchAndCache downloads the payload and stores it in the cache
func fetchAndCache(ctx context.Context) ([]byte, error) {
	spinner, _ := pterm.DefaultSpinner.WithWriter(rootCmd.ErrOrStderr()).Start("Fetching offers from " + cfg.Source.URL)

	httpClient := client.CreateHTTPClient(cfg.Source.Proxy, cfg.Source.Timeout)
	payload, err := client.FetchOffers(ctx, httpClient, cfg.Source.URL)
	if err != nil {
		if spinner != nil {
			spinner.Fail("Fetch failed")
		}
		return nil, err
	}

	if err := cache.Save(cfg.Cache.Path, payload); err != nil {
		if spinner != nil {
			spinner.Fail("Could not write cache")
		}
		return nil, err
	}

	if spinner != nil {
		spinner.Success("Cached offers to " + cfg.Cache.Path)
	}
	return payload, nil
}

// loadOffers returns the parsed offers, refreshing the cache first when it is
// missing, stale or --refresh was given
func loadOffers(ctx context.Context) ([]models.Offer, error) {
	var (
		payload []byte
		err     error
	)

	if refresh || cache.Stale(cfg.Cache.Path, cfg.Cache.MaxAge) {
		payload, err = fetchAndCache(ctx)
	} else {
		pterm.Debug.Printfln("Reading cached offers from %s", cfg.Cache.Path)
		payload, err = cache.Load(cfg.Cache.Path)
	}
	if err != nil {
		return nil, err
	}

	offers, err := parser.ParseOffers(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", cfg.Cache.Path)
	}
	pterm.Debug.Printfln("Parsed %d offers", len(offers))
	return offers, nil
}

// loadCatalog loads the offers and derives the catalog from all of them
func loadCatalog(ctx context.Context) ([]models.Offer, models.Catalog, error) {
	offers, err := loadOffers(ctx)
	if err != nil {
		return nil, models.Catalog{}, err
	}
	return offers, stats.DeriveCatalog(offers), nil
}
