// Package services provides the shared error taxonomy and context annotation
// helpers used across ffslot components.
//
// Errors raised by staging, execution, probing, and validation are tagged with
// one of the exported sentinel markers so callers can classify failures with
// errors.Is without parsing message text. Context helpers attach request and
// tool identifiers that the logging package lifts into structured fields.
package services
