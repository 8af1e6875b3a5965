//go:build linux || darwin

package envinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func platform() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	return joinPlatform(
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Machine[:]),
	), nil
}
