package parser

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

// ParseOffers validates a raw offers payload and converts it into records.
// Every violation is reported as a *models.MalformedRecordError so bad input
// is rejected here instead of deep inside aggregation.
func ParseOffers(payload []byte) ([]models.Offer, error) {
	if !gjson.ValidBytes(payload) {
		return nil, &models.MalformedRecordError{Index: -1, Reason: "payload is not valid JSON"}
	}

	root := gjson.ParseBytes(payload)
	if !root.IsArray() {
		return nil, &models.MalformedRecordError{Index: -1, Reason: "payload is not a JSON array"}
	}

	var (
		offers   []models.Offer
		parseErr error
		idx      int
	)
	root.ForEach(func(_, value gjson.Result) bool {
		offer, err := parseOffer(idx, value)
		if err != nil {
			parseErr = err
			return false
		}
		offers = append(offers, offer)
		idx++
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return offers, nil
}

func parseOffer(idx int, value gjson.Result) (models.Offer, error) {
	var offer models.Offer

	if !value.IsObject() {
		return offer, &models.MalformedRecordError{Index: idx, Reason: "is not an object"}
	}

	market, err := requireString(idx, value, "marker_icon")
	if err != nil {
		return offer, err
	}
	level, err := requireString(idx, value, "experience_level")
	if err != nil {
		return offer, err
	}

	types := value.Get("employment_types")
	if !types.IsArray() {
		return offer, &models.MalformedRecordError{Index: idx, Field: "employment_types", Reason: "must be an array"}
	}

	offer = models.Offer{
		Title:           value.Get("title").String(),
		CompanyName:     value.Get("company_name").String(),
		City:            value.Get("city").String(),
		Market:          market,
		ExperienceLevel: level,
		EmploymentTypes: []models.EmploymentOffer{},
	}

	for i, entry := range types.Array() {
		et, err := parseEmployment(idx, i, entry)
		if err != nil {
			return offer, err
		}
		offer.EmploymentTypes = append(offer.EmploymentTypes, et)
	}

	return offer, nil
}

func parseEmployment(idx, pos int, entry gjson.Result) (models.EmploymentOffer, error) {
	var et models.EmploymentOffer
	prefix := fmt.Sprintf("employment_types.%d", pos)

	if !entry.IsObject() {
		return et, &models.MalformedRecordError{Index: idx, Field: prefix, Reason: "is not an object"}
	}

	typ := entry.Get("type")
	if typ.Type != gjson.String || typ.Str == "" {
		return et, &models.MalformedRecordError{Index: idx, Field: prefix + ".type", Reason: "must be a non-empty string"}
	}
	et.Type = typ.Str

	sal := entry.Get("salary")
	if !sal.Exists() || sal.Type == gjson.Null {
		return et, nil
	}
	if !sal.IsObject() {
		return et, &models.MalformedRecordError{Index: idx, Field: prefix + ".salary", Reason: "must be an object or null"}
	}

	from, to := sal.Get("from"), sal.Get("to")
	if from.Type != gjson.Number {
		return et, &models.MalformedRecordError{Index: idx, Field: prefix + ".salary.from", Reason: "must be a number"}
	}
	if to.Type != gjson.Number {
		return et, &models.MalformedRecordError{Index: idx, Field: prefix + ".salary.to", Reason: "must be a number"}
	}

	et.Salary = &models.SalaryRange{
		From:     from.Num,
		To:       to.Num,
		Currency: sal.Get("currency").String(),
	}
	return et, nil
}

func requireString(idx int, value gjson.Result, field string) (string, error) {
	res := value.Get(field)
	if !res.Exists() {
		return "", &models.MalformedRecordError{Index: idx, Field: field, Reason: "is missing"}
	}
	if res.Type != gjson.String {
		return "", &models.MalformedRecordError{Index: idx, Field: field, Reason: "must be a string"}
	}
	return res.Str, nil
}
