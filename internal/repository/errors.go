// Package repository holds the authoritative in-memory stores for
// listings, owners, interactions and accounts, plus their sentinel
// errors. These values let handlers map failures onto HTTP statuses:
// ErrNotFound becomes 404, ErrValidation 400 and
// ErrInvalidCredentials 401.
package repository

import "errors"

// ErrNotFound is returned when an operation references a listing or
// owner id that is not in the store. A second removal of the same id
// surfaces it again rather than silently succeeding.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a listing create or update carries
// missing required fields or out-of-range values. It is wrapped with
// field detail via fmt.Errorf.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials is returned on a login with an unknown
// username or a wrong password. Both cases map to the same error so
// responses do not reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")
