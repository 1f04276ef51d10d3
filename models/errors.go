package models

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// DB related errors
var (
	ErrIgnoreRollBackError = errors.New("ignore rollback error")
)

var (
	ErrVenueNotFound  = errors.Wrap(NotFoundError, "venue not found")
	ErrArtistNotFound = errors.Wrap(NotFoundError, "artist not found")
	ErrShowConflict   = errors.Wrap(ConflictError, "the artist is already booked at this venue at that time")
	ErrInvalidStart   = errors.Wrap(BadParameterError, "invalid show start time")
)

// FieldValidationError maps form field names to a human readable message
type FieldValidationError map[string]string

func (e FieldValidationError) Error() string {
	return fmt.Sprintf("%v", map[string]string(e))
}

func (e FieldValidationError) Is(target error) bool {
	return target == BadParameterError
}

// Fields returns the invalid field names, sorted.
func (e FieldValidationError) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}
