package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"

	"itsupport/internal/actions"
	"itsupport/internal/audit"
	"itsupport/internal/config"
	"itsupport/internal/core"
	"itsupport/internal/executor"
	"itsupport/internal/modules/host"
	"itsupport/internal/privilege"
	"itsupport/internal/prompt"
	"itsupport/internal/storage"
	"itsupport/internal/storage/sqlite"
)

// Options задает ввод-вывод оператора и логгер.
type Options struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
	Logger *slog.Logger
}

// App агрегирует зависимости меню.
type App struct {
	Registry *core.Registry
	Loop     *core.Loop
	Store    storage.Store
	Config   config.Config
	Logger   *slog.Logger
}

// NewApp строит приложение: реестр действий, исполнитель команд и, при включенном аудите, хранилище.
func NewApp(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}
	lg := opts.Logger
	if lg == nil {
		lg = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	gate, err := core.NewGate(privilege.New(lg), actions.DefaultPolicies(), cfg.Actions.AdminPolicy)
	if err != nil {
		return nil, fmt.Errorf("admin policy: %w", err)
	}

	shell := executor.NewShell(cfg.Executor.Shell, cfg.Executor.ShellArgs)
	shell.Stdin, shell.Stdout, shell.Stderr = opts.In, opts.Out, opts.ErrOut

	a := &App{Config: cfg, Logger: lg}
	var exec executor.Executor = shell
	if cfg.Audit.Enabled {
		st, err := sqlite.Open(cfg.Audit.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open audit storage: %w", err)
		}
		a.Store = st
		exec = &audit.Executor{Next: shell, Sink: st, Logger: lg, Now: time.Now}
	}

	wd, err := os.Getwd()
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("working directory: %w", err)
	}

	console := prompt.NewTerminal(opts.In, opts.Out, cfg.Prompt.Affirmative)
	r := core.NewRegistry()
	err = actions.Register(r, actions.Deps{
		IO:      console,
		Exec:    exec,
		Gate:    gate,
		Host:    host.NewCollector(),
		FS:      afero.NewOsFs(),
		WorkDir: wd,
		Getenv:  os.Getenv,
		Now:     time.Now,
		Logger:  lg,
		Settings: actions.Settings{
			PingTarget:      cfg.Actions.PingTarget,
			DriversFile:     cfg.Actions.DriversFile,
			DriversEncoding: cfg.Actions.DriversEncoding,
			ReachabilityURL: cfg.Actions.ReachabilityURL,
		},
	})
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("register actions: %w", err)
	}
	r.Seal()

	a.Registry = r
	a.Loop = core.NewLoop(r, console, core.LoopConfig{
		Title:        cfg.Menu.Title,
		Subtitle:     cfg.Menu.Subtitle,
		InvalidPause: time.Duration(cfg.Menu.InvalidPauseMS) * time.Millisecond,
		Logger:       lg,
	})
	return a, nil
}

// Run показывает меню до выбора выхода.
func (a *App) Run(ctx context.Context) error {
	a.Logger.Info("menu started", "entries", a.Registry.Len(), "audit", a.Store != nil)
	return a.Loop.Run(ctx)
}

// Close высвобождает ресурсы приложения.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
