package execrun

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"

	"ffslot/internal/config"
	"ffslot/internal/logging"
	"ffslot/internal/services"
)

var commandContext = exec.CommandContext

// Result holds the outcome of a single external tool invocation.
type Result struct {
	Stdout string
	Stderr string
	// Command is the rendered command line, for diagnostics only. The
	// process is spawned from the argument vector, never from this string.
	Command string
	// Err is the spawn or exit error. A non-zero exit does not by itself
	// mean the operation failed; callers judge from stderr and output size.
	Err error
}

// Runner invokes staged executables under the configured process deadline.
type Runner struct {
	timeout time.Duration
	logger  *slog.Logger
}

// New constructs a Runner from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	var timeout time.Duration
	if cfg != nil {
		timeout = cfg.ProcessTimeout()
	}
	return &Runner{
		timeout: timeout,
		logger:  logging.NewComponentLogger(logger, "execrun"),
	}
}

// Run executes path with args, capturing stdout and stderr. A hang in the
// external tool is bounded by the configured timeout.
func (r *Runner) Run(ctx context.Context, path string, args []string) Result {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := commandContext(ctx, path, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := Result{Command: RenderCommand(path, args)}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		result.Err = services.Wrap(services.ErrSpawn, "execrun", "start", path, err)
		return result
	}
	err := cmd.Wait()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	result.Err = err

	logger := logging.WithContext(ctx, r.logger)
	logger.Debug("external tool finished",
		logging.String(logging.FieldEventType, "tool_run"),
		logging.String(logging.FieldCommand, result.Command),
		logging.Duration("elapsed", time.Since(start)),
		logging.Bool("exited_clean", err == nil),
	)
	return result
}
