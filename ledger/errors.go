package ledger

import "errors"

var (
	// ErrNotFound means a mutation targeted an identifier that does not
	// resolve. Surfaced instead of silently dropping the write so caller
	// bugs don't go unnoticed.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition means a status change is not a legal
	// lifecycle edge.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrEmptySale means a checkout was attempted with no items.
	ErrEmptySale = errors.New("sale requires at least one item")

	// ErrInvalidInput covers malformed or missing creation fields.
	ErrInvalidInput = errors.New("invalid input")
)
