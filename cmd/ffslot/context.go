package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"ffslot/internal/config"
	"ffslot/internal/execrun"
	"ffslot/internal/journal"
	"ffslot/internal/logging"
	"ffslot/internal/media/ffprobe"
	"ffslot/internal/staging"
	"ffslot/internal/transcode"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// environment bundles the wired services a subcommand needs. The cleanup
// function closes the journal when one is open.
type environment struct {
	cfg     *config.Config
	logger  *slog.Logger
	stager  *staging.Stager
	runner  *execrun.Runner
	prober  *ffprobe.Client
	orch    *transcode.Orchestrator
	journal *journal.Store
}

func (c *commandContext) buildEnvironment() (*environment, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	stager := staging.New(cfg, logger)
	runner := execrun.New(cfg, logger)
	prober := ffprobe.NewClient(func(ctx context.Context) (string, error) {
		return stager.EnsureStaged(ctx, cfg.Tools.FFprobe)
	}, runner)

	var store *journal.Store
	opts := []transcode.Option{}
	if cfg.Paths.JournalPath != "" {
		store, err = journal.Open(cfg.Paths.JournalPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open journal: %w", err)
		}
		opts = append(opts, transcode.WithJournal(store))
	}

	env := &environment{
		cfg:     cfg,
		logger:  logger,
		stager:  stager,
		runner:  runner,
		prober:  prober,
		orch:    transcode.New(cfg, stager, runner, prober, logger, opts...),
		journal: store,
	}
	cleanup := func() {
		if store != nil {
			_ = store.Close()
		}
	}
	return env, cleanup, nil
}
