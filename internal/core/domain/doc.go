// Package domain defines the core business entities for manex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: A manual page reference (name plus section)
//   - Section: A manual section with its ordered pages
//   - Match / MatchSet: Literal occurrence spans in a rendered page
//   - SearchSession: The in-page highlight search state
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
