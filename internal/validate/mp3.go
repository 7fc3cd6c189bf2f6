package validate

import (
	"context"
	"log/slog"
	"strings"

	"ffslot/internal/execrun"
	"ffslot/internal/logging"
)

// mp3StreamMarker is the stream-mapping line the decoder prints when it
// actually found an MP3 stream to decode.
const mp3StreamMarker = "Stream #0:0 -> #0:0 (mp3 "

// NullRunner executes a decode-only pass at the given verbosity,
// discarding the decoded output. *transcode.Orchestrator satisfies it.
type NullRunner interface {
	RunNull(ctx context.Context, path, loglevel string) (execrun.Result, error)
}

// Verdict is the outcome of a content check. Detail is populated only
// for a negative verdict.
type Verdict struct {
	OK     bool
	Detail string
}

// Validator runs decode-based content checks.
type Validator struct {
	runner NullRunner
	logger *slog.Logger
}

func New(runner NullRunner, logger *slog.Logger) *Validator {
	return &Validator{
		runner: runner,
		logger: logging.NewComponentLogger(logger, "validate"),
	}
}

// CheckMP3 decides whether path holds a genuine MP3 stream. It decodes
// the file twice: an error-verbosity pass whose normalized stderr must
// come back empty, then an info-verbosity pass whose stderr must carry
// the MP3 stream-mapping marker. The error return covers setup failures
// only; a broken file is a negative Verdict, not an error.
func (v *Validator) CheckMP3(ctx context.Context, path string) (Verdict, error) {
	run, err := v.runner.RunNull(ctx, path, "error")
	if err != nil {
		return Verdict{}, err
	}
	if summary := NormalizeDecodeLog(run.Stderr, path); summary != "" {
		v.logger.Debug("decode pass reported problems",
			logging.String(logging.FieldEventType, "mp3_check"),
			logging.String("input", path),
			logging.String("detail", summary),
		)
		return Verdict{Detail: summary}, nil
	}

	run, err = v.runner.RunNull(ctx, path, "info")
	if err != nil {
		return Verdict{}, err
	}
	if !strings.Contains(run.Stderr, mp3StreamMarker) {
		return Verdict{Detail: "decoded cleanly but no mp3 stream mapping was reported"}, nil
	}
	return Verdict{OK: true}, nil
}
