package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var catalogJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the markets, experience levels and employment types found in the offers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, catalog, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if catalogJSON {
			data, err := json.MarshalIndent(catalog, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to encode catalog")
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprint(out, pterm.DefaultSection.Sprint("Markets"))
		fmt.Fprintln(out, strings.Join(catalog.Markets, ", "))
		fmt.Fprint(out, pterm.DefaultSection.Sprint("Experience levels"))
		fmt.Fprintln(out, strings.Join(catalog.ExperienceLevels, ", "))
		fmt.Fprint(out, pterm.DefaultSection.Sprint("Employment types"))
		fmt.Fprintln(out, strings.Join(catalog.EmploymentTypes, ", "))
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(catalogCmd)
}
