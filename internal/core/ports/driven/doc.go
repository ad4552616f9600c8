// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the analyzers to function:
//
//   - NotebookReader: Reads a persisted notebook file into the domain model
//   - NotebookExecutor: Executes a notebook via an external engine
//   - MarkdownRenderer: Renders markdown cell source to HTML
//   - HTMLInspector: Extracts hyperlinks and plain text from HTML
//   - SpellChecker: Reports unrecognised words with suggestions
//   - LinkProbe: Answers whether a hyperlink target is reachable
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Persists run history. Without it, `nbcheck history` is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
