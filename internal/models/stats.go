package models

import "github.com/pkg/errors"

// Metric names one of the derived salary figures
type Metric string

const (
	MetricMin  Metric = "min"
	MetricMax  Metric = "max"
	MetricAvg  Metric = "avg"
	MetricAvg2 Metric = "avg2"
)

// Metrics lists every metric in export column order
var Metrics = []Metric{MetricMin, MetricMax, MetricAvg, MetricAvg2}

// ParseMetric converts a user supplied name into a Metric
func ParseMetric(name string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == name {
			return m, nil
		}
	}
	return "", errors.Errorf("unknown metric %q (must be one of min, max, avg, avg2)", name)
}

// SalarySeries holds the index-aligned salary figures of one employment type
type SalarySeries struct {
	Min  []float64 `json:"min"`
	Max  []float64 `json:"max"`
	Avg  []float64 `json:"avg"`
	Avg2 []float64 `json:"avg2"`
}

// Add appends the figures derived from r.
// avg2 is the midpoint of min and avg, which leans towards the lower bound.
func (s *SalarySeries) Add(r SalaryRange) {
	avg := (r.From + r.To) / 2
	avg2 := (r.From + avg) / 2

	s.Min = append(s.Min, r.From)
	s.Max = append(s.Max, r.To)
	s.Avg = append(s.Avg, avg)
	s.Avg2 = append(s.Avg2, avg2)
}

// Len returns the number of observations in the series
func (s *SalarySeries) Len() int {
	return len(s.Min)
}

// Values returns the sequence for metric m
func (s *SalarySeries) Values(m Metric) []float64 {
	switch m {
	case MetricMin:
		return s.Min
	case MetricMax:
		return s.Max
	case MetricAvg:
		return s.Avg
	default:
		return s.Avg2
	}
}

// ExperienceStats aggregates the offers of one experience level in a market
type ExperienceStats struct {
	AllJobs       int                      `json:"all_jobs"`
	WithSalary    int                      `json:"with_salary"`
	PartialSalary int                      `json:"partial_salary"`
	NoSalary      int                      `json:"no_salary"`
	Employment    map[string]*SalarySeries `json:"employment"`
}

// MarketStats is the per experience level breakdown of a single market
type MarketStats struct {
	Market string                      `json:"market"`
	Levels map[string]*ExperienceStats `json:"levels"`
}

// Series returns the series for an experience level and employment type, or nil
func (m *MarketStats) Series(level, employmentType string) *SalarySeries {
	exp, ok := m.Levels[level]
	if !ok {
		return nil
	}
	return exp.Employment[employmentType]
}

// Lookup returns the series for an experience level and employment type,
// naming whichever of the two has no bucket in a *CatalogMismatchError
func (m *MarketStats) Lookup(level, employmentType string) (*SalarySeries, error) {
	exp, ok := m.Levels[level]
	if !ok {
		return nil, &CatalogMismatchError{Kind: KindExperienceLevel, Value: level}
	}
	series, ok := exp.Employment[employmentType]
	if !ok || series == nil {
		return nil, &CatalogMismatchError{Kind: KindEmploymentType, Value: employmentType}
	}
	return series, nil
}
