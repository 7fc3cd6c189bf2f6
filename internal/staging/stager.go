package staging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"ffslot/internal/config"
	"ffslot/internal/fileutil"
	"ffslot/internal/logging"
	"ffslot/internal/services"
)

// executableMode is applied to every staged tool. Owner, group, and other all
// get execute so the binary stays runnable regardless of which uid the
// runtime assigns to later invocations of the same environment.
const executableMode os.FileMode = 0o777

const lockRetryDelay = 50 * time.Millisecond

// Stager stages bundled tools into the writable slot and memoizes the
// results for the process lifetime.
type Stager struct {
	assetDir   string
	stagingDir string
	logger     *slog.Logger

	mu    sync.Mutex
	paths map[string]string
}

// New constructs a Stager from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Stager {
	return &Stager{
		assetDir:   cfg.Paths.AssetDir,
		stagingDir: cfg.Paths.StagingDir,
		logger:     logging.NewComponentLogger(logger, "staging"),
		paths:      make(map[string]string),
	}
}

// EnsureStaged returns a runnable path for the named tool, copying and
// chmod-ing it on first use. Subsequent calls return the memoized path
// unless the staged file has disappeared out-of-band, in which case the tool
// is staged again. Concurrent callers serialize: in-process on the stager
// mutex, cross-process on a lock file beside the staged binary.
func (s *Stager) EnsureStaged(ctx context.Context, tool string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if staged, ok := s.paths[tool]; ok && fileutil.IsRegularFile(staged) {
		return staged, nil
	}

	target := filepath.Join(s.stagingDir, tool)
	if err := os.MkdirAll(s.stagingDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrStaging, "staging", "prepare", "create staging directory", err)
	}

	lock := flock.New(target + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return "", services.Wrap(services.ErrStaging, "staging", "lock", tool, err)
	}
	if !locked {
		return "", services.Wrap(services.ErrStaging, "staging", "lock", tool, ctx.Err())
	}
	defer func() {
		_ = lock.Unlock()
	}()

	// Another process may have finished staging while this one waited on
	// the lock.
	if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0 {
		s.paths[tool] = target
		return target, nil
	}

	source := filepath.Join(s.assetDir, tool)
	start := time.Now()
	if err := fileutil.CopyFileMode(source, target, 0o755); err != nil {
		return "", services.Wrap(services.ErrStaging, "staging", "copy", tool, err)
	}
	if err := os.Chmod(target, executableMode); err != nil {
		return "", services.Wrap(services.ErrPermission, "staging", "chmod", tool, err)
	}

	s.paths[tool] = target
	s.logger.Info("staged tool",
		logging.String(logging.FieldEventType, "tool_staged"),
		logging.String(logging.FieldTool, tool),
		logging.String("path", target),
		logging.Duration("elapsed", time.Since(start)),
	)
	return target, nil
}

// StagedPath reports the memoized path for a tool without staging it.
func (s *Stager) StagedPath(tool string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	staged, ok := s.paths[tool]
	return staged, ok
}
