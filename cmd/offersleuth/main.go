package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

func main() {
	pterm.SetDefaultOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints err with a hint matching its failure class
func reportError(err error) {
	pterm.Error.Println(err)

	var (
		fetchErr  *models.FetchError
		malformed *models.MalformedRecordError
		mismatch  *models.CatalogMismatchError
	)
	switch {
	case errors.As(err, &fetchErr):
		pterm.Info.Println("The offers endpoint could not be read. Retry later or point --url at a mirror.")
	case errors.As(err, &malformed):
		pterm.Info.Println("The cached payload does not look like an offers list. Run with --refresh to download it again.")
	case errors.As(err, &mismatch):
		pterm.Info.Println("Run 'offersleuth catalog' to list the known values.")
	}
}
