package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/jobboard/internal/applications"
	"github.com/jonathan/jobboard/internal/config"
	"github.com/jonathan/jobboard/internal/jobs"
	"github.com/jonathan/jobboard/internal/localstore"
	"github.com/jonathan/jobboard/internal/logger"
	"github.com/jonathan/jobboard/internal/metrics"
	"github.com/jonathan/jobboard/internal/profile"
	"github.com/jonathan/jobboard/internal/reconcile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath      string
	storeBackend    string
	storePath       string
	logLevel        string
	logFormat       string
	metricsTextfile string
	verbose         bool
}

// app wires the repositories for one CLI invocation.
type app struct {
	opts rootOptions
	now  func() time.Time

	cfg      config.Config
	log      *logrus.Logger
	backend  localstore.Backend
	metrics  *metrics.Recorder
	jobs     *jobs.Repository
	apps     *applications.Repository
	profiles *profile.Store
	engine   *reconcile.Engine
}

func newApp() *app {
	return &app{now: time.Now}
}

// open loads configuration and opens the store. Flags win over the config
// file and environment.
func (a *app) open(cmd *cobra.Command) error {
	loaded, err := config.LoadConfig(a.opts.configPath)
	if err != nil {
		return err
	}

	flags := config.Config{
		Store:   config.StoreConfig{Backend: a.opts.storeBackend, Path: a.opts.storePath},
		Log:     config.LogConfig{Level: a.opts.logLevel, Format: a.opts.logFormat},
		Metrics: config.MetricsConfig{Textfile: a.opts.metricsTextfile},
	}
	if a.opts.verbose {
		flags.Log.Level = "debug"
	}
	a.cfg = flags.MergeWithDefaults(*loaded)
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = logger.New(a.cfg.Log.Level, a.cfg.Log.Format, cmd.ErrOrStderr())
	a.metrics = metrics.NewRecorder()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.backend, err = localstore.Open(ctx, a.cfg.Store.Backend, a.cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	a.log.WithFields(logrus.Fields{
		"backend": a.cfg.Store.Backend,
		"path":    a.cfg.Store.Path,
	}).Debug("Opened local store")

	store := localstore.NewAccessor(a.backend, a.log)
	store.SetRecorder(a.metrics)

	a.jobs = jobs.NewRepository(store, &jobs.RepositoryConfig{Now: a.now, Logger: a.log, Metrics: a.metrics})
	a.apps = applications.NewRepository(store, &applications.RepositoryConfig{Now: a.now, Logger: a.log, Metrics: a.metrics})
	a.profiles = profile.NewStore(store, a.log)
	a.engine = reconcile.NewEngine(a.jobs, a.apps, &reconcile.EngineConfig{Logger: a.log, Metrics: a.metrics})
	return nil
}

// close writes the metrics textfile, if configured, and releases the store.
func (a *app) close() error {
	if a.backend == nil {
		return nil
	}
	var firstErr error
	if a.cfg.Metrics.Textfile != "" {
		if err := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
			firstErr = fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	if err := a.backend.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to close store: %w", err)
	}
	a.backend = nil
	return firstErr
}
