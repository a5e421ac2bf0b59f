//go:build windows

package privilege

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func platformElevated() (bool, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false, fmt.Errorf("open process token: %w", err)
	}
	defer token.Close()
	return token.IsElevated(), nil
}
