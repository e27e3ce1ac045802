package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrPageNotFound indicates the requested manual page does not exist
	// in any known manual section.
	ErrPageNotFound = errors.New("manual page not found")

	// ErrRenderFailed indicates the external formatting pipeline failed.
	ErrRenderFailed = errors.New("render pipeline failed")

	// ErrNoDocument indicates an operation that needs a rendered page
	// was invoked before any page was loaded.
	ErrNoDocument = errors.New("no document loaded")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoManPath indicates no usable manual directory could be found.
	ErrNoManPath = errors.New("no manual path available")
)
