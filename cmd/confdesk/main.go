package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"
	_ "time/tzdata" // timezone preferences need the zone database in minimal images

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/umputun/confdesk/pkg/config"
	"github.com/umputun/confdesk/pkg/metrics"
	"github.com/umputun/confdesk/pkg/participation"
	"github.com/umputun/confdesk/pkg/preferences"
	"github.com/umputun/confdesk/pkg/repository"
	"github.com/umputun/confdesk/pkg/scheduler"
	"github.com/umputun/confdesk/pkg/service"
	"github.com/umputun/confdesk/pkg/storage"
	"github.com/umputun/confdesk/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"confdesk.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)
	log.Printf("[INFO] starting confdesk version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run loads the configuration, wires all components and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	SetupLog(opts.Debug, cfg.Storage.SigningKey)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] can't close database: %v", err)
		}
	}()

	files, err := storage.NewLocal(storage.LocalOpts{
		Dir:        cfg.Storage.Dir,
		SigningKey: cfg.Storage.SigningKey,
		BaseURL:    cfg.Server.BaseURL,
		TTL:        cfg.Storage.SignedURLTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize file storage: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	part := participation.NewService(participation.Params{Store: repos, TTL: cfg.Cache.ParticipationTTL, Events: collector})
	defer part.Close()

	hub := preferences.NewBroadcaster()
	prefs := preferences.New(repos.Setting, hub,
		preferences.WithDefault(preferences.PageSizeKey, cfg.Preferences.DefaultPageSize),
		preferences.WithDefault(preferences.LanguageKey, cfg.Preferences.DefaultLanguage),
	)

	params := server.Params{
		Workflows:     service.New(service.Params{Repos: repos, Files: files}),
		Participation: part,
		Files:         files,
		Preferences:   prefs,
		Broadcaster:   hub,
		Metrics:       collector,
		Gatherer:      reg,
		Listen:        cfg.Server.Listen,
		Timeout:       cfg.Server.Timeout,
		MaxUploadSize: cfg.Storage.MaxUploadSize,
		RateLimit:     cfg.Server.RateLimit,
		RateBurst:     cfg.Server.RateBurst,
		Organizers:    cfg.Auth.Organizers,
		Version:       revision,
		Debug:         opts.Debug,
	}

	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(repos.Assignment, collector, scheduler.Config{
			Interval:   cfg.Scheduler.OverdueCheckInterval,
			BatchSize:  cfg.Scheduler.BatchSize,
			MaxWorkers: cfg.Scheduler.MaxWorkers,
		})
		sched.Start(ctx)
		defer sched.Stop()
		params.Reminders = sched
	}

	if err := server.New(params).Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
