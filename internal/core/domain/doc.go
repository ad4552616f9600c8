// Package domain defines the core business entities for nbcheck.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Notebook: An ordered sequence of cells read from a notebook file
//   - Cell: A single markdown or code cell with metadata and outputs
//   - Annotation: A cell's declared expected/allowed error marker
//   - StaticReport / DynamicReport: Analysis verdicts with diagnostics
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
