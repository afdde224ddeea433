package stats

import (
	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

// Disclosure classifies how much salary information an offer publishes
type Disclosure int

const (
	FullSalary Disclosure = iota
	PartialSalary
	NoSalary
)

func (d Disclosure) String() string {
	switch d {
	case FullSalary:
		return "with_salary"
	case PartialSalary:
		return "partial_salary"
	default:
		return "no_salary"
	}
}

// Classify returns the disclosure class of an offer.
// An offer without employment types counts as fully disclosed.
func Classify(offer models.Offer) Disclosure {
	disclosed := 0
	for _, et := range offer.EmploymentTypes {
		if et.HasSalary() {
			disclosed++
		}
	}

	switch {
	case disclosed == len(offer.EmploymentTypes):
		return FullSalary
	case disclosed > 0:
		return PartialSalary
	default:
		return NoSalary
	}
}

// NewMarketStats builds an empty stats record with a bucket for every
// experience level and employment type in the catalog
func NewMarketStats(market string, catalog models.Catalog) *models.MarketStats {
	ms := &models.MarketStats{
		Market: market,
		Levels: make(map[string]*models.ExperienceStats, len(catalog.ExperienceLevels)),
	}

	for _, level := range catalog.ExperienceLevels {
		exp := &models.ExperienceStats{
			Employment: make(map[string]*models.SalarySeries, len(catalog.EmploymentTypes)),
		}
		for _, et := range catalog.EmploymentTypes {
			exp.Employment[et] = &models.SalarySeries{
				Min:  []float64{},
				Max:  []float64{},
				Avg:  []float64{},
				Avg2: []float64{},
			}
		}
		ms.Levels[level] = exp
	}

	return ms
}

// ComputeStatistics aggregates the offers of one market in a single pass.
// The catalog must be derived from all offers; values missing from it abort
// the pass with a *models.CatalogMismatchError.
func ComputeStatistics(offers []models.Offer, market string, catalog models.Catalog) (*models.MarketStats, error) {
	ms := NewMarketStats(market, catalog)

	for _, offer := range MarketOffers(offers, market) {
		exp, ok := ms.Levels[offer.ExperienceLevel]
		if !ok {
			return nil, &models.CatalogMismatchError{Kind: models.KindExperienceLevel, Value: offer.ExperienceLevel}
		}
		for _, et := range offer.EmploymentTypes {
			if _, ok := exp.Employment[et.Type]; !ok {
				return nil, &models.CatalogMismatchError{Kind: models.KindEmploymentType, Value: et.Type}
			}
		}

		exp.AllJobs++

		switch Classify(offer) {
		case FullSalary:
			exp.WithSalary++
		case PartialSalary:
			exp.PartialSalary++
		case NoSalary:
			exp.NoSalary++
			continue
		}

		for _, et := range offer.EmploymentTypes {
			if !et.HasSalary() {
				continue
			}
			exp.Employment[et.Type].Add(*et.Salary)
		}
	}

	return ms, nil
}

// ComputeAll aggregates every market of the catalog in catalog order.
// onMarket, when non-nil, is called after each market completes.
func ComputeAll(offers []models.Offer, catalog models.Catalog, onMarket func(market string)) ([]*models.MarketStats, error) {
	results := make([]*models.MarketStats, 0, len(catalog.Markets))
	for _, market := range catalog.Markets {
		ms, err := ComputeStatistics(offers, market, catalog)
		if err != nil {
			return nil, err
		}
		results = append(results, ms)
		if onMarket != nil {
			onMarket(market)
		}
	}
	return results, nil
}
