// Package wizard implements the booking-page setup wizard: an ordered
// step state machine plus a uniform list editor for the repeatable
// sections. The same step and section logic runs against two storage
// backends selected once at the boundary: a session-held draft (create
// mode) and the persisted entity graph (edit mode). These sentinel
// values and the ValidationError type let handlers translate failures
// into the right HTTP responses.
package wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidStep is returned for unrecognized step names or directions.
// Handlers should translate this into an HTTP 400 response.
var ErrInvalidStep = errors.New("invalid step")

// ErrInvalidSection is returned for unrecognized section names.
var ErrInvalidSection = errors.New("invalid section")

// ErrInvalidCourtReference is returned when a special exception cites a
// court that does not belong to the page being edited.
var ErrInvalidCourtReference = errors.New("invalid court reference")

// ErrIncompleteDraft is returned by Finalize when a required part of
// the draft (name, location, courts, slot definition or opening hour
// rules) is missing. Nothing is created in that case.
var ErrIncompleteDraft = errors.New("incomplete draft")

// ValidationError carries per-field failures from step or section
// validation. It is returned before any mutation happens, so a caller
// can re-display the form with the offending fields marked.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

// fieldErrors accumulates failures during validation and converts to a
// *ValidationError only when at least one field failed.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) { f[field] = msg }

func (f fieldErrors) err() *ValidationError {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
