package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

const menuRule = "=================================================="

// LoopConfig задает параметры цикла меню.
type LoopConfig struct {
	Title        string
	Subtitle     string
	InvalidPause time.Duration
	Logger       *slog.Logger
	// Sleep подменяется в тестах.
	Sleep func(time.Duration)
}

// Loop показывает меню, читает выбор и вызывает действие.
type Loop struct {
	registry *Registry
	console  Console
	cfg      LoopConfig
}

// NewLoop создает цикл меню поверх запечатанного реестра.
func NewLoop(registry *Registry, console Console, cfg LoopConfig) *Loop {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.InvalidPause < 0 {
		cfg.InvalidPause = 0
	}
	return &Loop{registry: registry, console: console, cfg: cfg}
}

// Run крутит цикл до действия выхода или конца ввода.
func (l *Loop) Run(ctx context.Context) error {
	prompt := fmt.Sprintf("Choose an option (%s): ", l.keyRange())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.render()

		line, err := l.console.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.cfg.Logger.Info("input closed, leaving menu")
				return nil
			}
			return fmt.Errorf("read selection: %w", err)
		}

		entry, ok := l.registry.Lookup(strings.TrimSpace(line))
		if !ok {
			l.console.Printf("Invalid option. Try again.\n")
			l.cfg.Sleep(l.cfg.InvalidPause)
			continue
		}

		err = l.execute(ctx, entry)
		switch {
		case errors.Is(err, ErrExit):
			return nil
		case err != nil:
			l.cfg.Logger.Warn("action failed", "key", entry.Key, "err", err)
			l.console.Printf("Error during execution: %v\n", err)
			l.console.Pause()
		}
	}
}

func (l *Loop) execute(ctx context.Context, e Entry) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			l.cfg.Logger.Error("action panicked", "key", e.Key, "panic", rec)
			err = fmt.Errorf("unexpected failure: %v", rec)
		}
	}()
	l.cfg.Logger.Debug("action selected", "key", e.Key, "label", e.Label)
	return e.Action(WithEntry(ctx, e))
}

func (l *Loop) render() {
	l.console.Clear()
	l.console.Printf("%s\n", menuRule)
	if l.cfg.Title != "" {
		l.console.Printf(" %s\n", l.cfg.Title)
	}
	if l.cfg.Subtitle != "" {
		l.console.Printf(" %s\n", l.cfg.Subtitle)
	}
	l.console.Printf("%s\n", menuRule)
	for _, e := range l.registry.Entries() {
		l.console.Printf("%s. %s\n", e.Key, e.Label)
	}
	l.console.Printf("%s\n", menuRule)
}

func (l *Loop) keyRange() string {
	entries := l.registry.Entries()
	switch len(entries) {
	case 0:
		return "-"
	case 1:
		return entries[0].Key
	default:
		return entries[0].Key + "-" + entries[len(entries)-1].Key
	}
}
