package validate

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"ffslot/internal/execrun"
	"ffslot/internal/logging"
	"ffslot/internal/services"
	"ffslot/internal/testsupport"
)

func TestMagicChecks(t *testing.T) {
	dir := t.TempDir()

	aiff := filepath.Join(dir, "a.aiff")
	testsupport.WriteBytes(t, aiff, []byte("FORM\x00\x00\x12\x34AIFF"))
	wav := filepath.Join(dir, "a.wav")
	testsupport.WriteBytes(t, wav, []byte("RIFF\x24\x08\x00\x00WAVE"))
	text := filepath.Join(dir, "a.txt")
	testsupport.WriteBytes(t, text, []byte("hello world"))

	if ok, err := IsAIFF(aiff); err != nil || !ok {
		t.Errorf("IsAIFF(aiff) = %v, %v, want true", ok, err)
	}
	if ok, err := IsAIFF(wav); err != nil || ok {
		t.Errorf("IsAIFF(wav) = %v, %v, want false", ok, err)
	}
	if ok, err := IsWAV(wav); err != nil || !ok {
		t.Errorf("IsWAV(wav) = %v, %v, want true", ok, err)
	}
	if ok, err := IsWAV(text); err != nil || ok {
		t.Errorf("IsWAV(text) = %v, %v, want false", ok, err)
	}
}

func TestMagicCheckShortFile(t *testing.T) {
	short := filepath.Join(t.TempDir(), "short")
	testsupport.WriteBytes(t, short, []byte("FO"))

	_, err := IsAIFF(short)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("IsAIFF on truncated file = %v, want validation marker", err)
	}
}

func TestMagicCheckMissingFile(t *testing.T) {
	_, err := IsWAV(filepath.Join(t.TempDir(), "nope.wav"))
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("IsWAV on missing file = %v, want validation marker", err)
	}
}

// fakeNullRunner replays canned stderr per verbosity level.
type fakeNullRunner struct {
	stderr map[string]string
	err    error
	calls  []string
}

func (f *fakeNullRunner) RunNull(ctx context.Context, path, loglevel string) (execrun.Result, error) {
	f.calls = append(f.calls, loglevel)
	if f.err != nil {
		return execrun.Result{}, f.err
	}
	return execrun.Result{Stderr: f.stderr[loglevel]}, nil
}

func TestCheckMP3Valid(t *testing.T) {
	runner := &fakeNullRunner{stderr: map[string]string{
		"error": "[mp3 @ 0x55a1] Incorrect BOM value\n",
		"info":  "Stream mapping:\n  Stream #0:0 -> #0:0 (mp3 (mp3float) -> pcm_s16le (native))\n",
	}}

	verdict, err := New(runner, logging.NewNop()).CheckMP3(context.Background(), "/tmp/song.mp3")
	if err != nil {
		t.Fatalf("CheckMP3 returned error: %v", err)
	}
	if !verdict.OK {
		t.Fatalf("CheckMP3 = %+v, want OK", verdict)
	}
	if verdict.Detail != "" {
		t.Errorf("positive verdict carries detail %q", verdict.Detail)
	}
	if len(runner.calls) != 2 || runner.calls[0] != "error" || runner.calls[1] != "info" {
		t.Errorf("verbosity order = %v, want [error info]", runner.calls)
	}
}

func TestCheckMP3DecodeErrors(t *testing.T) {
	runner := &fakeNullRunner{stderr: map[string]string{
		"error": "/tmp/fake.mp3: Invalid data found when processing input\n",
	}}

	verdict, err := New(runner, logging.NewNop()).CheckMP3(context.Background(), "/tmp/fake.mp3")
	if err != nil {
		t.Fatalf("CheckMP3 returned error: %v", err)
	}
	if verdict.OK {
		t.Fatal("CheckMP3 accepted a file with decode errors")
	}
	if !strings.Contains(verdict.Detail, "Invalid data found") {
		t.Errorf("Detail = %q, want normalized diagnostic", verdict.Detail)
	}
	if len(runner.calls) != 1 {
		t.Errorf("stage two ran despite stage one failure: calls = %v", runner.calls)
	}
}

func TestCheckMP3MissingStreamMarker(t *testing.T) {
	runner := &fakeNullRunner{stderr: map[string]string{
		"error": "",
		"info":  "Stream mapping:\n  Stream #0:0 -> #0:0 (pcm_s16le (native) -> pcm_s16le (native))\n",
	}}

	verdict, err := New(runner, logging.NewNop()).CheckMP3(context.Background(), "/tmp/not-really.mp3")
	if err != nil {
		t.Fatalf("CheckMP3 returned error: %v", err)
	}
	if verdict.OK {
		t.Fatal("CheckMP3 accepted a file without an mp3 stream mapping")
	}
	if verdict.Detail == "" {
		t.Error("negative verdict carries no detail")
	}
}

func TestCheckMP3SetupFailure(t *testing.T) {
	setupErr := services.Wrap(services.ErrMissingInput, "transcode", "run null", "nope.mp3", nil)
	runner := &fakeNullRunner{err: setupErr}

	_, err := New(runner, logging.NewNop()).CheckMP3(context.Background(), "nope.mp3")
	if !errors.Is(err, services.ErrMissingInput) {
		t.Fatalf("CheckMP3 error = %v, want missing input marker", err)
	}
}
