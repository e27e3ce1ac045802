package tui

import "errors"

// ErrMissingBrowseService is returned when the browse service is not provided.
var ErrMissingBrowseService = errors.New("tui: browse service is required")

// ErrMissingPageService is returned when the page service is not provided.
var ErrMissingPageService = errors.New("tui: page service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
