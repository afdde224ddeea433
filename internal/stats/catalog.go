package stats

import (
	"sort"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

// DeriveCatalog collects the sorted distinct markets, experience levels and
// employment types across all offers
func DeriveCatalog(offers []models.Offer) models.Catalog {
	markets := make(map[string]struct{})
	levels := make(map[string]struct{})
	types := make(map[string]struct{})

	for _, offer := range offers {
		markets[offer.Market] = struct{}{}
		levels[offer.ExperienceLevel] = struct{}{}
		for _, et := range offer.EmploymentTypes {
			types[et.Type] = struct{}{}
		}
	}

	return models.Catalog{
		Markets:          sortedKeys(markets),
		ExperienceLevels: sortedKeys(levels),
		EmploymentTypes:  sortedKeys(types),
	}
}

// MarketOffers returns the offers tagged with market, in input order
func MarketOffers(offers []models.Offer, market string) []models.Offer {
	var result []models.Offer
	for _, offer := range offers {
		if offer.Market == market {
			result = append(result, offer)
		}
	}
	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
