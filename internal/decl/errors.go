package decl

import "github.com/cockroachdb/errors"

var (
	// ErrUnsupportedShape is returned when the input ends without a named or
	// positional struct body.
	ErrUnsupportedShape = errors.New("can only be usual structures")

	// ErrNameNotFound is returned when a struct body is reached before any
	// type name.
	ErrNameNotFound = errors.New("structure name not found")
)
