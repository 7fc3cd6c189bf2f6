package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ffslot/internal/config"
	"ffslot/internal/logging"
	"ffslot/internal/services"
)

func TestNewConsoleWritesFormattedLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("staged tool", logging.String("tool", "ffmpeg"))

	out := buf.String()
	if !strings.Contains(out, "INF") {
		t.Fatalf("expected level tag in %q", out)
	}
	if !strings.Contains(out, "staged tool") {
		t.Fatalf("expected message in %q", out)
	}
	if !strings.Contains(out, "tool=ffmpeg") {
		t.Fatalf("expected attribute in %q", out)
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn should be emitted: %q", out)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("probe complete", logging.Int("streams", 2))
	out := buf.String()
	if !strings.Contains(out, `"streams":2`) {
		t.Fatalf("expected JSON attribute in %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = "json"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello")

	content, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "ffslot.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "hello") {
		t.Fatalf("expected log line in file, got %q", content)
	}
}

func TestWithContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	ctx := services.WithRequestID(context.Background(), "req-7")
	ctx = services.WithTool(ctx, "ffprobe")
	logging.WithContext(ctx, logger).Info("probing")

	out := buf.String()
	if !strings.Contains(out, `"correlation_id":"req-7"`) {
		t.Fatalf("expected correlation id in %q", out)
	}
	if !strings.Contains(out, `"tool":"ffprobe"`) {
		t.Fatalf("expected tool in %q", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	// Must not panic or emit anywhere.
	logger.Error("dropped", logging.Error(os.ErrNotExist))
}
