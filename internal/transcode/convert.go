package transcode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"ffslot/internal/config"
	"ffslot/internal/execrun"
	"ffslot/internal/fileutil"
	"ffslot/internal/journal"
	"ffslot/internal/logging"
	"ffslot/internal/media/ffprobe"
	"ffslot/internal/services"
	"ffslot/internal/staging"
)

// Recorder persists invocation outcomes. A nil *journal.Store satisfies
// it as a no-op.
type Recorder interface {
	Record(ctx context.Context, entry journal.Entry) error
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithJournal attaches a recorder for invocation outcomes.
func WithJournal(recorder Recorder) Option {
	return func(o *Orchestrator) {
		o.journal = recorder
	}
}

// Orchestrator runs ffmpeg invocations end to end: staging the binary,
// assembling the argument vector, executing, and judging the result.
type Orchestrator struct {
	cfg     *config.Config
	stager  *staging.Stager
	runner  *execrun.Runner
	prober  ffprobe.Prober
	journal Recorder
	logger  *slog.Logger
}

// New constructs an Orchestrator.
func New(cfg *config.Config, stager *staging.Stager, runner *execrun.Runner, prober ffprobe.Prober, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:    cfg,
		stager: stager,
		runner: runner,
		prober: prober,
		logger: logging.NewComponentLogger(logger, "transcode"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Convert runs one full invocation against in, writing to the destination
// described by out. Success is judged from the destination size: the
// result carries a nil Err only when the file holds at least one byte.
func (o *Orchestrator) Convert(ctx context.Context, in InputSpec, out *OutputSpec) Result {
	requestID := uuid.NewString()
	ctx = services.WithRequestID(ctx, requestID)
	ctx = services.WithTool(ctx, o.cfg.Tools.FFmpeg)
	logger := logging.WithContext(ctx, o.logger)

	start := time.Now()
	result := o.convert(ctx, logger, in, out)

	o.record(ctx, requestID, result, time.Since(start))
	return result
}

func (o *Orchestrator) convert(ctx context.Context, logger *slog.Logger, in InputSpec, out *OutputSpec) Result {
	if strings.TrimSpace(in.Path) == "" || !fileutil.IsRegularFile(in.Path) {
		return Result{Err: services.Wrap(services.ErrMissingInput, "transcode", "convert", in.Path, nil)}
	}
	if out == nil || (out.Path == "" && out.Postfix == "") {
		return Result{Err: services.Wrap(services.ErrMissingOutputTarget, "transcode", "convert",
			"output spec names neither a path nor a postfix", nil)}
	}

	args := make([]string, 0, len(in.Args)+len(out.Args)+8)
	args = append(args, in.Args...)
	args = append(args, "-i", in.Path)

	if out.MatchInputRates {
		args = append(args, o.rateParams(ctx, logger, in.Path, out)...)
	}
	args = append(args, out.Args...)

	dest := out.Path
	if dest == "" {
		allocated, err := fileutil.AllocateDest(o.cfg.Paths.OutputDir, out.Postfix)
		if err != nil {
			return Result{Err: fmt.Errorf("transcode: allocate destination %q: %w", out.Postfix, err)}
		}
		dest = allocated
		// The placeholder already exists, so ffmpeg needs overwrite
		// permission. Explicit destinations never get it.
		args = append(args, "-y")
	}
	args = append(args, dest)

	binary, err := o.stager.EnsureStaged(ctx, o.cfg.Tools.FFmpeg)
	if err != nil {
		return Result{Err: err, OutputFile: dest}
	}

	run := o.runner.Run(ctx, binary, args)
	result := Result{
		OutputFile: dest,
		Stdout:     run.Stdout,
		Stderr:     run.Stderr,
		Command:    run.Command,
	}
	if errors.Is(run.Err, services.ErrSpawn) {
		result.Err = run.Err
		return result
	}

	size, statErr := fileutil.FileSize(dest)
	result.Size = size
	if statErr != nil || size == 0 {
		cause := statErr
		if cause == nil {
			cause = run.Err
		}
		result.Err = services.Wrap(services.ErrEmptyOutput, "transcode", "convert", dest, cause)
		return result
	}

	if run.Err != nil {
		// The tool exited non-zero but still produced output. That is
		// not failure here; callers inspect stderr if they care.
		logger.Warn("tool exited non-zero with non-empty output",
			logging.String(logging.FieldEventType, "convert_warning"),
			logging.String("output", dest),
			logging.Int64("size", size),
			logging.Error(run.Err),
		)
	}
	logger.Info("conversion finished",
		logging.String(logging.FieldEventType, "convert_done"),
		logging.String("output", dest),
		logging.Int64("size", size),
	)
	return result
}

// rateParams negotiates rate flags from source metadata, falling back to
// the fixed parameters when the source cannot be read.
func (o *Orchestrator) rateParams(ctx context.Context, logger *slog.Logger, inputPath string, out *OutputSpec) []string {
	gen := NewRateGenerator()
	gen.SetFloorSampleRate(o.cfg.Rates.FloorSampleRate)
	gen.SetFloorBitRate(o.cfg.Rates.FloorBitRate)
	if out.ForceSampleRate > 0 {
		gen.ForceSampleRate(out.ForceSampleRate)
	}
	if out.ForceBitRate > 0 {
		gen.ForceBitRate(out.ForceBitRate)
	}
	if out.ForceCodec != "" {
		gen.ForceCodec(out.ForceCodec)
	}

	if err := gen.MatchSource(ctx, o.prober, inputPath); err != nil {
		logger.Warn("source rate negotiation failed, using fallback parameters",
			logging.String(logging.FieldEventType, "rate_fallback"),
			logging.String("input", inputPath),
			logging.Error(err),
		)
		return FallbackRateParams()
	}
	return gen.Params(targetFormat(out))
}

// RunNull executes a decode-only pass that discards its output, used for
// integrity checks. The returned execrun.Result carries the raw stderr;
// the error covers only setup failures, never the tool's own exit status.
func (o *Orchestrator) RunNull(ctx context.Context, path, loglevel string) (execrun.Result, error) {
	requestID := uuid.NewString()
	ctx = services.WithRequestID(ctx, requestID)
	ctx = services.WithTool(ctx, o.cfg.Tools.FFmpeg)

	if strings.TrimSpace(path) == "" || !fileutil.IsRegularFile(path) {
		return execrun.Result{}, services.Wrap(services.ErrMissingInput, "transcode", "run null", path, nil)
	}
	binary, err := o.stager.EnsureStaged(ctx, o.cfg.Tools.FFmpeg)
	if err != nil {
		return execrun.Result{}, err
	}
	args := []string{"-v", loglevel, "-i", path, "-f", "null", "-"}
	return o.runner.Run(ctx, binary, args), nil
}

func (o *Orchestrator) record(ctx context.Context, requestID string, result Result, elapsed time.Duration) {
	if o.journal == nil {
		return
	}
	entry := journal.Entry{
		RequestID:  requestID,
		Command:    result.Command,
		OutputFile: result.OutputFile,
		Size:       result.Size,
		Duration:   elapsed,
	}
	if result.Err != nil {
		entry.ErrorMessage = result.Err.Error()
	}
	if err := o.journal.Record(ctx, entry); err != nil {
		logging.WithContext(ctx, o.logger).Warn("journal write failed",
			logging.String(logging.FieldEventType, "journal_error"),
			logging.Error(err),
		)
	}
}

// targetFormat derives the lowercase extension of the destination, from
// the explicit path or the generated postfix.
func targetFormat(out *OutputSpec) string {
	name := out.Path
	if name == "" {
		name = out.Postfix
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}
