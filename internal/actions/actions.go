// Package actions содержит каталог действий обслуживания, привязанных к пунктам меню.
//
// Обработчики зависят только от Deps: консоль, исполнитель команд и файловая
// система подменяются в тестах.
package actions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"itsupport/internal/core"
	"itsupport/internal/executor"
	"itsupport/internal/modules/host"
)

// IO консоль оператора для обработчиков.
type IO interface {
	core.Console
	Confirm(prompt string) bool
	Value(prompt, def string) string
	Warnf(format string, args ...interface{})
	Failf(format string, args ...interface{})
	Successf(format string, args ...interface{})
}

// HostSummarizer отдает сводку по хосту для пункта System Information.
type HostSummarizer interface {
	Summary(ctx context.Context) (host.Summary, error)
}

// Settings настраиваемые значения каталога.
type Settings struct {
	PingTarget      string
	DriversFile     string
	DriversEncoding string
	ReachabilityURL string
}

// Deps зависимости, передаваемые каждому обработчику.
type Deps struct {
	IO       IO
	Exec     executor.Executor
	Gate     *core.Gate
	Host     HostSummarizer
	FS       afero.Fs
	WorkDir  string
	Getenv   func(string) string
	Now      func() time.Time
	Logger   *slog.Logger
	Settings Settings
}

type handler func(ctx context.Context, d Deps) error

type item struct {
	key    string
	label  string
	run    handler
	policy core.AdminPolicy
}

var catalog = []item{
	{"1", "Check and Repair Disk (CHKDSK)", checkDisk, core.PolicyNone},
	{"2", "Repair System Files (SFC)", systemFileCheck, core.PolicyBlock},
	{"3", "Clean Temporary Files and DNS Cache", cleanTempAndDNS, core.PolicyNone},
	{"4", "Memory Diagnostic", memoryDiagnostic, core.PolicyNone},
	{"5", "Check Network Connectivity (Ping)", pingHost, core.PolicyNone},
	{"6", "Open Task Manager", openTaskManager, core.PolicyNone},
	{"7", "Backup Drivers (list)", backupDrivers, core.PolicyNone},
	{"8", "Open Windows Update", openWindowsUpdate, core.PolicyNone},
	{"9", "System Information", systemInfo, core.PolicyNone},
	{"10", "Flush DNS Cache", flushDNS, core.PolicyNone},
	{"11", "Restart Network Services", restartNetworkServices, core.PolicyNone},
	{"12", "Defragment Disk", defragDisk, core.PolicyNone},
	{"13", "Manage Local Users", manageLocalUsers, core.PolicyNone},
	{"14", "Check Image Integrity (DISM)", restoreImageHealth, core.PolicyBlock},
	{"15", "Enable/Disable Windows Firewall", toggleFirewall, core.PolicyNone},
	{"16", "View Event Logs", openEventViewer, core.PolicyNone},
	{"17", "Basic Connectivity Test (HTTP)", checkReachability, core.PolicyNone},
	{"18", "Create Restore Point", createRestorePoint, core.PolicyBlock},
	{"19", "Run Custom Command", runCustomCommand, core.PolicyNone},
	{"20", "Upgrade All Programs (winget)", upgradeAll, core.PolicyInform},
	{"21", "Open System Tools", nil, core.PolicyNone},
	{"22", "Exit", exit, core.PolicyNone},
}

// ExitKey пункт выхода из меню.
const ExitKey = "22"

// DefaultPolicies возвращает политики прав администратора по умолчанию.
func DefaultPolicies() map[string]core.AdminPolicy {
	out := make(map[string]core.AdminPolicy)
	for _, it := range catalog {
		if it.policy != core.PolicyNone {
			out[it.key] = it.policy
		}
	}
	return out
}

// Register регистрирует весь каталог в r.
func Register(r *core.Registry, d Deps) error {
	d = d.withDefaults()
	tools, err := newToolsMenu(d)
	if err != nil {
		return fmt.Errorf("build tools menu: %w", err)
	}
	for _, it := range catalog {
		run := it.run
		if it.key == "21" {
			run = tools.open
		}
		action := bind(it.key, it.label, run, d)
		// выход не требует прав
		if it.key == ExitKey {
			action = func(ctx context.Context) error { return run(ctx, d) }
		}
		if err := r.Register(it.key, it.label, action); err != nil {
			return err
		}
	}
	return nil
}

func bind(key, label string, run handler, d Deps) core.Action {
	return func(ctx context.Context) error {
		if d.Gate != nil && !d.Gate.Allow(key, label, d.IO) {
			d.Logger.Info("action refused without elevation", "key", key)
			return nil
		}
		return run(ctx, d)
	}
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Getenv == nil {
		d.Getenv = func(string) string { return "" }
	}
	if d.FS == nil {
		d.FS = afero.NewOsFs()
	}
	if d.Settings.PingTarget == "" {
		d.Settings.PingTarget = "8.8.8.8"
	}
	if d.Settings.DriversFile == "" {
		d.Settings.DriversFile = "drivers_list.txt"
	}
	if d.Settings.ReachabilityURL == "" {
		d.Settings.ReachabilityURL = "https://www.google.com"
	}
	return d
}

// runCommand печатает команду, выполняет ее и ждет Enter. Ошибка запуска,
// а в строгом режиме и ненулевой код выхода, сообщаются оператору.
func runCommand(ctx context.Context, d Deps, line string, strict bool) {
	d.IO.Printf("\n>> Running: %s\n\n", line)
	res, err := d.Exec.Execute(ctx, line)
	switch {
	case err != nil:
		d.Logger.Warn("command failed to run", "command", line, "err", err)
		d.IO.Failf("Error running command: %v", err)
	default:
		d.Logger.Info("command finished", "command", line, "exit_code", res.ExitCode)
		d.IO.Printf("\n>> Exit code: %d\n", res.ExitCode)
		if strict && res.ExitCode != 0 {
			d.IO.Failf("Command failed with exit code %d", res.ExitCode)
		}
	}
	d.IO.Pause()
}

func exit(ctx context.Context, d Deps) error {
	d.IO.Printf("Exiting...\n")
	return core.ErrExit
}
