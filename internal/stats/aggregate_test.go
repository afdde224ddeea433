package stats

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

func salary(from, to float64) *models.SalaryRange {
	return &models.SalaryRange{From: from, To: to}
}

func testCatalog() models.Catalog {
	return models.Catalog{
		Markets:          []string{"M", "other"},
		ExperienceLevels: []string{"junior", "senior"},
		EmploymentTypes:  []string{"b2b", "permanent"},
	}
}

func TestComputeStatisticsPartialSalary(t *testing.T) {
	offers := []models.Offer{
		{
			Market:          "M",
			ExperienceLevel: "junior",
			EmploymentTypes: []models.EmploymentOffer{
				{Type: "b2b", Salary: salary(100, 200)},
				{Type: "permanent"},
			},
		},
	}

	ms, err := ComputeStatistics(offers, "M", testCatalog())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	junior := ms.Levels["junior"]
	if junior.AllJobs != 1 || junior.PartialSalary != 1 || junior.WithSalary != 0 || junior.NoSalary != 0 {
		t.Errorf("Unexpected junior counts: %+v", junior)
	}

	b2b := junior.Employment["b2b"]
	want := models.SalarySeries{
		Min:  []float64{100},
		Max:  []float64{200},
		Avg:  []float64{150},
		Avg2: []float64{125},
	}
	if !reflect.DeepEqual(*b2b, want) {
		t.Errorf("Expected b2b series %+v, got %+v", want, *b2b)
	}

	if n := junior.Employment["permanent"].Len(); n != 0 {
		t.Errorf("Expected empty permanent series, got %d entries", n)
	}
}

func TestComputeStatisticsClassification(t *testing.T) {
	offers := []models.Offer{
		{Market: "M", ExperienceLevel: "senior", EmploymentTypes: []models.EmploymentOffer{
			{Type: "b2b", Salary: salary(200, 300)},
			{Type: "permanent", Salary: salary(150, 250)},
		}},
		{Market: "M", ExperienceLevel: "senior", EmploymentTypes: []models.EmploymentOffer{
			{Type: "b2b"},
			{Type: "permanent"},
		}},
		{Market: "M", ExperienceLevel: "senior", EmploymentTypes: []models.EmploymentOffer{
			{Type: "permanent", Salary: salary(100, 100)},
			{Type: "b2b"},
		}},
	}

	ms, err := ComputeStatistics(offers, "M", testCatalog())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	senior := ms.Levels["senior"]
	if senior.AllJobs != 3 {
		t.Errorf("Expected 3 jobs, got %d", senior.AllJobs)
	}
	if senior.WithSalary != 1 || senior.PartialSalary != 1 || senior.NoSalary != 1 {
		t.Errorf("Unexpected classification: %+v", senior)
	}
	if got := senior.Employment["b2b"].Min; !reflect.DeepEqual(got, []float64{200}) {
		t.Errorf("Expected b2b min [200], got %v", got)
	}
	if got := senior.Employment["permanent"].Min; !reflect.DeepEqual(got, []float64{150, 100}) {
		t.Errorf("Expected permanent min [150 100] in input order, got %v", got)
	}
}

func TestComputeStatisticsInvariants(t *testing.T) {
	offers := []models.Offer{
		{Market: "M", ExperienceLevel: "junior", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b", Salary: salary(10, 30)}}},
		{Market: "M", ExperienceLevel: "junior", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b"}}},
		{Market: "M", ExperienceLevel: "senior", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b", Salary: salary(7, 8)}, {Type: "permanent"}}},
		{Market: "M", ExperienceLevel: "senior", EmploymentTypes: []models.EmploymentOffer{{Type: "permanent", Salary: salary(1, 4)}}},
		{Market: "other", ExperienceLevel: "senior", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b", Salary: salary(1, 2)}}},
	}

	ms, err := ComputeStatistics(offers, "M", testCatalog())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for level, exp := range ms.Levels {
		if exp.AllJobs != exp.WithSalary+exp.PartialSalary+exp.NoSalary {
			t.Errorf("%s: all_jobs %d does not match class sum %+v", level, exp.AllJobs, exp)
		}
		for et, s := range exp.Employment {
			if len(s.Max) != s.Len() || len(s.Avg) != s.Len() || len(s.Avg2) != s.Len() {
				t.Fatalf("%s/%s: sequences not aligned: %+v", level, et, s)
			}
			for i := range s.Min {
				if s.Avg[i] != (s.Min[i]+s.Max[i])/2 {
					t.Errorf("%s/%s[%d]: avg %v is not the midpoint", level, et, i, s.Avg[i])
				}
				if s.Avg2[i] != (s.Min[i]+s.Avg[i])/2 {
					t.Errorf("%s/%s[%d]: avg2 %v is not (min+avg)/2", level, et, i, s.Avg2[i])
				}
			}
		}
	}
}

func TestComputeStatisticsIgnoresOtherMarkets(t *testing.T) {
	offers := []models.Offer{
		{Market: "other", ExperienceLevel: "junior", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b", Salary: salary(1, 2)}}},
	}

	ms, err := ComputeStatistics(offers, "M", testCatalog())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for level, exp := range ms.Levels {
		if exp.AllJobs != 0 {
			t.Errorf("%s: expected no jobs, got %d", level, exp.AllJobs)
		}
		for et, s := range exp.Employment {
			if s.Len() != 0 {
				t.Errorf("%s/%s: expected empty series", level, et)
			}
		}
	}
}

func TestComputeStatisticsIsDeterministic(t *testing.T) {
	offers := []models.Offer{
		{Market: "M", ExperienceLevel: "junior", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b", Salary: salary(30, 40)}}},
		{Market: "M", ExperienceLevel: "junior", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b", Salary: salary(10, 20)}}},
		{Market: "M", ExperienceLevel: "junior", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b", Salary: salary(20, 90)}}},
	}

	first, err := ComputeStatistics(offers, "M", testCatalog())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := ComputeStatistics(offers, "M", testCatalog())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical results across runs")
	}
	if got := first.Levels["junior"].Employment["b2b"].Min; !reflect.DeepEqual(got, []float64{30, 10, 20}) {
		t.Errorf("Expected traversal order [30 10 20], got %v", got)
	}
}

func TestComputeStatisticsCatalogMismatch(t *testing.T) {
	tests := []struct {
		name  string
		offer models.Offer
		kind  models.CatalogKind
		value string
	}{
		{
			name:  "unknown employment type",
			offer: models.Offer{Market: "M", ExperienceLevel: "junior", EmploymentTypes: []models.EmploymentOffer{{Type: "mandate_contract", Salary: salary(1, 2)}}},
			kind:  models.KindEmploymentType,
			value: "mandate_contract",
		},
		{
			name:  "unknown employment type without salary",
			offer: models.Offer{Market: "M", ExperienceLevel: "junior", EmploymentTypes: []models.EmploymentOffer{{Type: "internship"}}},
			kind:  models.KindEmploymentType,
			value: "internship",
		},
		{
			name:  "unknown experience level",
			offer: models.Offer{Market: "M", ExperienceLevel: "c-level", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b"}}},
			kind:  models.KindExperienceLevel,
			value: "c-level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeStatistics([]models.Offer{tt.offer}, "M", testCatalog())
			var mismatch *models.CatalogMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("Expected CatalogMismatchError, got %v", err)
			}
			if mismatch.Kind != tt.kind || mismatch.Value != tt.value {
				t.Errorf("Expected %s %q, got %s %q", tt.kind, tt.value, mismatch.Kind, mismatch.Value)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		types []models.EmploymentOffer
		want  Disclosure
	}{
		{"all disclosed", []models.EmploymentOffer{{Type: "b2b", Salary: salary(1, 2)}}, FullSalary},
		{"some disclosed", []models.EmploymentOffer{{Type: "b2b"}, {Type: "permanent", Salary: salary(1, 2)}}, PartialSalary},
		{"none disclosed", []models.EmploymentOffer{{Type: "b2b"}}, NoSalary},
		{"no employment types", nil, FullSalary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(models.Offer{EmploymentTypes: tt.types}); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestComputeAll(t *testing.T) {
	offers := []models.Offer{
		{Market: "M", ExperienceLevel: "junior", EmploymentTypes: []models.EmploymentOffer{{Type: "b2b"}}},
		{Market: "other", ExperienceLevel: "senior", EmploymentTypes: []models.EmploymentOffer{{Type: "permanent"}}},
	}

	var visited []string
	all, err := ComputeAll(offers, testCatalog(), func(market string) {
		visited = append(visited, market)
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(visited, []string{"M", "other"}) {
		t.Errorf("Expected markets visited in catalog order, got %v", visited)
	}
	if len(all) != 2 || all[1].Levels["senior"].NoSalary != 1 {
		t.Errorf("Unexpected results: %+v", all)
	}
}
