package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/offersleuth/internal/parser"
	"github.com/fr4nk3nst1ner/offersleuth/internal/utils"
)

//nolint:gochecknoglobals // Cobra boilerplate
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the offers and refresh the local cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := fetchAndCache(cmd.Context())
		if err != nil {
			return err
		}

		// Validate now so a broken payload is reported at fetch time.
		offers, err := parser.ParseOffers(payload)
		if err != nil {
			pterm.Warning.Println("The cached payload could not be parsed")
			return err
		}
		pterm.Success.Printfln("%s offers cached", utils.FormatCount(len(offers)))
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(fetchCmd)
}
