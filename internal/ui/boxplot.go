package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
	"github.com/fr4nk3nst1ner/offersleuth/internal/stats"
	"github.com/fr4nk3nst1ner/offersleuth/internal/utils"
)

const (
	whiskerRune = '─'
	boxRune     = '█'
	medianRune  = '┃'
	capLeft     = '├'
	capRight    = '┤'
)

// BoxLine draws a horizontal box plot of box on a width-wide axis spanning lo..hi
func BoxLine(box stats.BoxSummary, lo, hi float64, width int) string {
	line := []rune(strings.Repeat(" ", width))
	if box.Count == 0 || width <= 0 {
		return string(line)
	}

	pos := func(v float64) int {
		if hi <= lo {
			return width / 2
		}
		p := int(math.Round((v - lo) / (hi - lo) * float64(width-1)))
		if p < 0 {
			return 0
		}
		if p >= width {
			return width - 1
		}
		return p
	}

	minPos, q1Pos, medPos, q3Pos, maxPos := pos(box.Min), pos(box.Q1), pos(box.Median), pos(box.Q3), pos(box.Max)

	for i := minPos; i <= maxPos; i++ {
		line[i] = whiskerRune
	}
	for i := q1Pos; i <= q3Pos; i++ {
		line[i] = boxRune
	}
	if minPos < q1Pos {
		line[minPos] = capLeft
	}
	if maxPos > q3Pos {
		line[maxPos] = capRight
	}
	line[medPos] = medianRune

	return string(line)
}

// RenderMarket draws one figure per market: a block per employment type with
// one box plot per experience level, all on the market's shared axis
func RenderMarket(w io.Writer, ms *models.MarketStats, catalog models.Catalog, metric models.Metric, width int) error {
	lo, hi, ok := axisRange(ms, catalog, metric)

	fmt.Fprint(w, pterm.DefaultSection.Sprint(ms.Market))
	if !ok {
		fmt.Fprintln(w, pterm.Gray("no disclosed salaries"))
		return nil
	}

	for _, et := range catalog.EmploymentTypes {
		data := pterm.TableData{{"experience", string(metric), "n", "median", "mean"}}

		for _, level := range catalog.ExperienceLevels {
			series, err := ms.Lookup(level, et)
			if err != nil {
				return err
			}

			box := stats.Quartiles(series.Values(metric))
			median, mean := "-", "-"
			if box.Count > 0 {
				median = ColorizeSalary(box.Median)
				mean = utils.FormatSalary(box.Mean)
			}
			data = append(data, []string{
				level,
				pterm.Green(BoxLine(box, lo, hi, width)),
				utils.FormatCount(box.Count),
				median,
				mean,
			})
		}

		data = append(data, []string{"", axisLabel(lo, hi, width), "", "", ""})

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrapf(err, "failed to render %s/%s", ms.Market, et)
		}
		fmt.Fprintln(w, pterm.Bold.Sprint(et))
		fmt.Fprintln(w, table)
		fmt.Fprintln(w)
	}

	return nil
}

// RenderCounts prints the disclosure counts of a market per experience level
func RenderCounts(w io.Writer, ms *models.MarketStats, catalog models.Catalog) error {
	data := pterm.TableData{{"experience", "all jobs", "with salary", "partial salary", "no salary", "disclosed"}}

	var total models.ExperienceStats
	for _, level := range catalog.ExperienceLevels {
		exp, ok := ms.Levels[level]
		if !ok {
			return &models.CatalogMismatchError{Kind: models.KindExperienceLevel, Value: level}
		}
		total.AllJobs += exp.AllJobs
		total.WithSalary += exp.WithSalary
		total.PartialSalary += exp.PartialSalary
		total.NoSalary += exp.NoSalary
		data = append(data, countsRow(level, exp))
	}
	data = append(data, countsRow("total", &total))

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrapf(err, "failed to render counts for %s", ms.Market)
	}

	fmt.Fprint(w, pterm.DefaultSection.Sprint(ms.Market))
	fmt.Fprintln(w, table)
	return nil
}

func countsRow(label string, exp *models.ExperienceStats) []string {
	return []string{
		label,
		utils.FormatCount(exp.AllJobs),
		utils.FormatCount(exp.WithSalary),
		utils.FormatCount(exp.PartialSalary),
		utils.FormatCount(exp.NoSalary),
		utils.FormatShare(exp.WithSalary+exp.PartialSalary, exp.AllJobs),
	}
}

func axisRange(ms *models.MarketStats, catalog models.Catalog, metric models.Metric) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, level := range catalog.ExperienceLevels {
		for _, et := range catalog.EmploymentTypes {
			series := ms.Series(level, et)
			if series == nil {
				continue
			}
			for _, v := range series.Values(metric) {
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
				ok = true
			}
		}
	}
	return lo, hi, ok
}

func axisLabel(lo, hi float64, width int) string {
	left, right := utils.FormatSalary(lo), utils.FormatSalary(hi)
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
