package actions

import (
	"context"
	"fmt"
	"strings"
)

func openTaskManager(ctx context.Context, d Deps) error {
	runCommand(ctx, d, "taskmgr", false)
	return nil
}

func openWindowsUpdate(ctx context.Context, d Deps) error {
	runCommand(ctx, d, "start ms-settings:windowsupdate", false)
	return nil
}

func systemInfo(ctx context.Context, d Deps) error {
	if d.Host != nil {
		if s, err := d.Host.Summary(ctx); err != nil {
			d.IO.Warnf("Host summary unavailable: %v", err)
		} else {
			for _, line := range s.Lines() {
				d.IO.Printf("%s\n", line)
			}
		}
	}
	runCommand(ctx, d, "systeminfo", false)
	return nil
}

func manageLocalUsers(ctx context.Context, d Deps) error {
	runCommand(ctx, d, "lusrmgr.msc", false)
	return nil
}

func openEventViewer(ctx context.Context, d Deps) error {
	runCommand(ctx, d, "eventvwr.msc", false)
	return nil
}

func createRestorePoint(ctx context.Context, d Deps) error {
	def := fmt.Sprintf("RestorePoint_%d", d.Now().Unix())
	name := d.IO.Value("Restore point name", def)
	line := fmt.Sprintf(`powershell -Command "Checkpoint-Computer -Description '%s' -RestorePointType 'MODIFY_SETTINGS'"`, psQuote(name))
	runCommand(ctx, d, line, false)
	return nil
}

func runCustomCommand(ctx context.Context, d Deps) error {
	line, err := d.IO.ReadLine("Command to run: ")
	if err != nil {
		return nil
	}
	if line = strings.TrimSpace(line); line != "" {
		runCommand(ctx, d, line, false)
	}
	return nil
}

func upgradeAll(ctx context.Context, d Deps) error {
	runCommand(ctx, d, "winget upgrade --all", false)
	return nil
}
