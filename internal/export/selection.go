package export

import (
	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

// Selection restricts an export to a subset of the catalog.
// An empty field selects every catalog value of that dimension.
type Selection struct {
	Markets          []string
	ExperienceLevels []string
	EmploymentTypes  []string
}

// Resolve fills empty fields from the catalog and rejects values the catalog
// does not know. Catalog order is kept for filled fields; explicit values keep
// the order they were given in.
func (s Selection) Resolve(catalog models.Catalog) (Selection, error) {
	var err error
	resolved := Selection{}

	if resolved.Markets, err = resolve(s.Markets, catalog.Markets, models.KindMarket); err != nil {
		return Selection{}, err
	}
	if resolved.ExperienceLevels, err = resolve(s.ExperienceLevels, catalog.ExperienceLevels, models.KindExperienceLevel); err != nil {
		return Selection{}, err
	}
	if resolved.EmploymentTypes, err = resolve(s.EmploymentTypes, catalog.EmploymentTypes, models.KindEmploymentType); err != nil {
		return Selection{}, err
	}
	return resolved, nil
}

func resolve(selected, known []string, kind models.CatalogKind) ([]string, error) {
	if len(selected) == 0 {
		return append([]string(nil), known...), nil
	}

	seen := make(map[string]bool, len(selected))
	out := make([]string, 0, len(selected))
	for _, v := range selected {
		if !containsString(known, v) {
			return nil, &models.CatalogMismatchError{Kind: kind, Value: v}
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, nil
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
