// Package logging assembles the structured slog loggers used across ffslot.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so invocation code can tag log
// lines with request correlation IDs and the external tool being driven. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Prefer these constructors over hand-rolled slog setup so all components
// emit data with the same shape.
package logging
