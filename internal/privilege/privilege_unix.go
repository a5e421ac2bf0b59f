//go:build unix

package privilege

import (
	"errors"

	"golang.org/x/sys/unix"
)

func platformElevated() (bool, error) {
	euid := unix.Geteuid()
	if euid < 0 {
		return false, errors.New("effective uid unavailable")
	}
	return euid == 0, nil
}
