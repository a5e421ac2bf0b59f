//go:build !windows && !unix

package privilege

import "errors"

func platformElevated() (bool, error) {
	return false, errors.New("elevation query not supported on this platform")
}
