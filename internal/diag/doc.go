// Package diag defines the diagnostic model shared by the extraction phases.
//
// Diagnostic is the central record: a Severity, a stable Code, a message, a
// primary source.Span, and optional Notes. Producers emit diagnostics through
// the Reporter interface; the Bag collects them with a hard cap so a
// pathological input cannot flood memory.
//
// Package diag performs no formatting and no IO. Rendering lives in
// internal/diagfmt; converting error diagnostics into Go errors is the
// extractor's job.
package diag
