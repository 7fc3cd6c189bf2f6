// Package testsupport provides shared fixtures for ffslot tests: configs
// seeded with per-test temp directories and helpers for writing fixture
// files and stub executables.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"ffslot/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.AssetDir = filepath.Join(base, "assets")
	cfgVal.Paths.StagingDir = filepath.Join(base, "slot")
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.JournalPath = ""
	cfgVal.Paths.LogDir = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithJournal enables the sqlite journal under the test base directory.
func WithJournal() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.JournalPath = filepath.Join(b.baseDir, "journal.db")
	}
}

// WithRateFloors sets the negotiation floors on the test config.
func WithRateFloors(sampleRate, bitRate int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Rates.FloorSampleRate = sampleRate
		b.cfg.Rates.FloorBitRate = bitRate
	}
}

// WithBundledStub writes a stub shell script into the asset directory for
// each named tool so staging has something real to copy.
func WithBundledStub(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffmpeg", "ffprobe"}
		}
		if err := os.MkdirAll(b.cfg.Paths.AssetDir, 0o755); err != nil {
			b.t.Fatalf("mkdir asset dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(b.cfg.Paths.AssetDir, name)
			if err := os.WriteFile(target, script, 0o644); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StagingDir)
}
