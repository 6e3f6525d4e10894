// Package repository contains the data access layer: one *Repo type
// per entity over a shared *sql.DB, plus the Redis-backed draft store.
// This file defines sentinel errors reused across repositories so
// handlers can distinguish failure scenarios: ErrPageNotFound and
// friends become HTTP 404, ErrForbidden becomes 403, ErrEmailExists
// becomes 409.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by a different organiser.
var ErrForbidden = errors.New("forbidden")

// ErrPageNotFound is returned when a booking page cannot be resolved.
var ErrPageNotFound = errors.New("booking page not found")

// ErrCourtNotFound is returned when a court cannot be resolved within
// its booking page.
var ErrCourtNotFound = errors.New("court not found")

// ErrItemNotFound is returned when a section item (equipment option,
// exception, opening hour rule) does not resolve within the scope it
// was addressed through.
var ErrItemNotFound = errors.New("item not found")

// ErrBookingNotFound is returned when a booking cannot be resolved for
// the requesting organiser.
var ErrBookingNotFound = errors.New("booking not found")

// ErrDraftNotFound is returned when a wizard session draft is missing
// or has expired.
var ErrDraftNotFound = errors.New("draft not found")

// ErrEmailExists is returned when registering with an email that is
// already taken.
var ErrEmailExists = errors.New("email already exists")
