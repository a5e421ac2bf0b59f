package actions

import (
	"context"
	"fmt"
	"strings"
)

func checkDisk(ctx context.Context, d Deps) error {
	drive, ok := askDrive(d, "Drive letter to check (e.g. C)")
	if !ok {
		return nil
	}
	line := fmt.Sprintf("chkdsk %s: /f /r", drive)
	d.IO.Warnf("Warning: chkdsk may ask for a restart and can take a long time.")
	if !d.IO.Confirm(fmt.Sprintf("Run '%s'?", line)) {
		return nil
	}
	runCommand(ctx, d, line, false)
	return nil
}

func systemFileCheck(ctx context.Context, d Deps) error {
	runCommand(ctx, d, "sfc /scannow", false)
	return nil
}

func memoryDiagnostic(ctx context.Context, d Deps) error {
	d.IO.Warnf("Windows Memory Diagnostic will open. It may ask for a restart.")
	if !d.IO.Confirm("Open Windows Memory Diagnostic?") {
		return nil
	}
	runCommand(ctx, d, "mdsched.exe", false)
	return nil
}

func defragDisk(ctx context.Context, d Deps) error {
	drive, ok := askDrive(d, "Drive to defragment (e.g. C)")
	if !ok {
		return nil
	}
	runCommand(ctx, d, fmt.Sprintf("defrag %s: /O", drive), false)
	return nil
}

func restoreImageHealth(ctx context.Context, d Deps) error {
	runCommand(ctx, d, "DISM /Online /Cleanup-Image /RestoreHealth", true)
	return nil
}

// askDrive принимает одну букву диска, допускается двоеточие; пустой ввод означает C.
func askDrive(d Deps, prompt string) (string, bool) {
	v := strings.ToUpper(strings.TrimSuffix(d.IO.Value(prompt, "C"), ":"))
	if len(v) != 1 || v[0] < 'A' || v[0] > 'Z' {
		d.IO.Failf("Invalid drive letter: %q", v)
		d.IO.Pause()
		return "", false
	}
	return v, true
}
