package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCacheMissing is returned when no cached payload exists yet
var ErrCacheMissing = errors.New("offer cache not found")

// FetchError reports a failed request against the offers endpoint
type FetchError struct {
	URL        string
	StatusCode int
	Reason     string
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s failed", e.URL)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status code %d", e.StatusCode)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// MalformedRecordError reports an offer record missing an expected field.
// Index is -1 when the payload as a whole is rejected.
type MalformedRecordError struct {
	Index  int
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed payload: %s", e.Reason)
	}
	return fmt.Sprintf("malformed offer #%d: field %q %s", e.Index, e.Field, e.Reason)
}

// CatalogKind names the catalog dimension of a mismatch
type CatalogKind string

const (
	KindMarket          CatalogKind = "market"
	KindExperienceLevel CatalogKind = "experience level"
	KindEmploymentType  CatalogKind = "employment type"
)

// CatalogMismatchError reports a category value absent from the catalog
type CatalogMismatchError struct {
	Kind  CatalogKind
	Value string
}

func (e *CatalogMismatchError) Error() string {
	return fmt.Sprintf("%s %q is not in the catalog", e.Kind, e.Value)
}
