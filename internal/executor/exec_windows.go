//go:build windows

package executor

import (
	"os/exec"
	"strings"
	"syscall"
)

// cmd.exe разбирает кавычки сам, поэтому строка передается без экранирования.
func prepare(cmd *exec.Cmd, program string, args []string, line string) {
	parts := append(append([]string{program}, args...), line)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: strings.Join(parts, " ")}
}
