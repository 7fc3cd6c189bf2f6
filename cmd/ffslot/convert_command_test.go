package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ffslot/internal/testsupport"
)

// writeCLIFixture prepares a config file, a stub ffmpeg asset and an
// input file under a temp directory, returning the config path and the
// input path.
func writeCLIFixture(t *testing.T) (configPath, inputPath, baseDir string) {
	t.Helper()
	base := t.TempDir()

	assetDir := filepath.Join(base, "assets")
	if err := os.MkdirAll(assetDir, 0o755); err != nil {
		t.Fatalf("mkdir asset dir: %v", err)
	}
	script := "#!/bin/sh\nfor last; do :; done\nprintf 'audio-bytes' > \"$last\"\n"
	if err := os.WriteFile(filepath.Join(assetDir, "ffmpeg"), []byte(script), 0o755); err != nil {
		t.Fatalf("write stub ffmpeg: %v", err)
	}

	configPath = filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
asset_dir = %q
staging_dir = %q
output_dir = %q
journal_path = ""
`, assetDir, filepath.Join(base, "slot"), filepath.Join(base, "out"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	inputPath = filepath.Join(base, "in.wav")
	testsupport.WriteFile(t, inputPath, 64)
	return configPath, inputPath, base
}

func TestConvertCommand(t *testing.T) {
	configPath, inputPath, base := writeCLIFixture(t)
	dest := filepath.Join(base, "out.mp3")

	out, err := runCommand(t, "--config", configPath, "convert", inputPath, "--output", dest)
	if err != nil {
		t.Fatalf("convert returned error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, dest) {
		t.Errorf("output %q does not mention the destination", out)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if len(data) == 0 {
		t.Error("destination is empty")
	}
}

func TestConvertCommandMissingInput(t *testing.T) {
	configPath, _, base := writeCLIFixture(t)

	_, err := runCommand(t, "--config", configPath, "convert",
		filepath.Join(base, "nope.wav"), "--output", filepath.Join(base, "out.mp3"))
	if err == nil {
		t.Fatal("convert accepted a missing input file")
	}
	if !strings.Contains(err.Error(), "missing input") {
		t.Errorf("error = %v, want missing input classification", err)
	}
}
