//go:build !windows

package executor

import "os/exec"

func prepare(cmd *exec.Cmd, program string, args []string, line string) {}
