package services_test

import (
	"errors"
	"strings"
	"testing"

	"ffslot/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrStaging, "staging", "copy", "asset unreadable", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrStaging) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"staging", "copy", "asset unreadable"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToValidation(t *testing.T) {
	err := services.Wrap(nil, "validate", "mp3", "bad file", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing input", services.Wrap(services.ErrMissingInput, "transcode", "assemble", "", nil), "missing_input"},
		{"missing output target", services.Wrap(services.ErrMissingOutputTarget, "transcode", "assemble", "", nil), "missing_output_target"},
		{"staging", services.Wrap(services.ErrStaging, "staging", "copy", "", nil), "staging"},
		{"permission", services.Wrap(services.ErrPermission, "staging", "chmod", "", nil), "permission"},
		{"spawn", services.Wrap(services.ErrSpawn, "execrun", "start", "", nil), "spawn"},
		{"empty output", services.Wrap(services.ErrEmptyOutput, "transcode", "stat", "", nil), "empty_output"},
		{"probe parse", services.Wrap(services.ErrProbeParse, "ffprobe", "parse", "", nil), "probe_parse"},
		{"untagged", errors.New("plain"), "unknown"},
		{"nil", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.Kind(tc.err); got != tc.want {
				t.Fatalf("Kind() = %q, want %q", got, tc.want)
			}
		})
	}
}
