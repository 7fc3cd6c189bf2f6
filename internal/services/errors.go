package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingInput marks invocations whose input path is absent or does
	// not reference an existing file.
	ErrMissingInput = errors.New("missing input")
	// ErrMissingOutputTarget marks invocations that supplied neither an
	// output path nor a postfix.
	ErrMissingOutputTarget = errors.New("missing output target")
	// ErrStaging marks failures to copy a bundled tool into the staging slot.
	ErrStaging = errors.New("staging failure")
	// ErrPermission marks failures to mark a staged tool executable.
	ErrPermission = errors.New("permission failure")
	// ErrSpawn marks failures to launch an external tool.
	ErrSpawn = errors.New("process spawn failure")
	// ErrEmptyOutput marks runs that produced a zero-byte destination file.
	ErrEmptyOutput = errors.New("empty output")
	// ErrProbeParse marks probe output that yielded no usable stream data.
	ErrProbeParse = errors.New("probe parse failure")
	// ErrValidation marks content checks that failed for I/O reasons rather
	// than answering "no". A negative check result is a value, not an error.
	ErrValidation = errors.New("validation failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above. Both the marker and the cause
// survive errors.Is / errors.As.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a short classification label for a tagged error, suitable for
// structured log fields and journal rows.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrMissingInput):
		return "missing_input"
	case errors.Is(err, ErrMissingOutputTarget):
		return "missing_output_target"
	case errors.Is(err, ErrStaging):
		return "staging"
	case errors.Is(err, ErrPermission):
		return "permission"
	case errors.Is(err, ErrSpawn):
		return "spawn"
	case errors.Is(err, ErrEmptyOutput):
		return "empty_output"
	case errors.Is(err, ErrProbeParse):
		return "probe_parse"
	case errors.Is(err, ErrValidation):
		return "validation"
	case err == nil:
		return ""
	default:
		return "unknown"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
