package export

import (
	"encoding/csv"
	"io"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
	"github.com/fr4nk3nst1ner/offersleuth/internal/stats"
)

// Delimiter separates fields in every exported table
const Delimiter = ';'

// WideOptions controls the wide export
type WideOptions struct {
	Metric models.Metric
	// Rand shuffles each column independently when set. Rows are no longer
	// aligned across columns once shuffled.
	Rand *rand.Rand
}

// WriteWide writes one column per market/experience/employment type
// combination. Shorter columns are padded with empty cells.
func WriteWide(w io.Writer, results []*models.MarketStats, sel Selection, opts WideOptions) error {
	var (
		header  []string
		columns [][]float64
		rows    int
	)

	for _, ms := range selectedMarkets(results, sel) {
		for _, level := range sel.ExperienceLevels {
			for _, et := range sel.EmploymentTypes {
				series, err := ms.Lookup(level, et)
				if err != nil {
					return err
				}

				values := series.Values(opts.Metric)
				if opts.Rand != nil {
					values = stats.Shuffled(values, opts.Rand)
				}

				header = append(header, ms.Market+"/"+level+"/"+et)
				columns = append(columns, values)
				if len(values) > rows {
					rows = len(values)
				}
			}
		}
	}

	cw := newWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	record := make([]string, len(columns))
	for i := 0; i < rows; i++ {
		for c, col := range columns {
			record[c] = ""
			if i < len(col) {
				record[c] = formatFloat(col[i])
			}
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush wide table")
}

// LongHeader is the header line of the long export
var LongHeader = []string{"market", "experience_level", "employment_type", "min", "max", "avg", "avg2"}

// WriteLong writes one row per salary observation with explicit category
// columns, in aggregation order
func WriteLong(w io.Writer, results []*models.MarketStats, sel Selection) error {
	cw := newWriter(w)
	if err := cw.Write(LongHeader); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	for _, ms := range selectedMarkets(results, sel) {
		for _, level := range sel.ExperienceLevels {
			for _, et := range sel.EmploymentTypes {
				series, err := ms.Lookup(level, et)
				if err != nil {
					return err
				}

				for i := 0; i < series.Len(); i++ {
					record := []string{
						ms.Market, level, et,
						formatFloat(series.Min[i]),
						formatFloat(series.Max[i]),
						formatFloat(series.Avg[i]),
						formatFloat(series.Avg2[i]),
					}
					if err := cw.Write(record); err != nil {
						return errors.Wrapf(err, "failed to write %s/%s/%s row %d", ms.Market, level, et, i)
					}
				}
			}
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush long table")
}

func selectedMarkets(results []*models.MarketStats, sel Selection) []*models.MarketStats {
	byMarket := make(map[string]*models.MarketStats, len(results))
	for _, ms := range results {
		byMarket[ms.Market] = ms
	}

	out := make([]*models.MarketStats, 0, len(sel.Markets))
	for _, market := range sel.Markets {
		if ms, ok := byMarket[market]; ok {
			out = append(out, ms)
		}
	}
	return out
}

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	return cw
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
