// Package envinfo reads the runtime and platform descriptors of the host.
package envinfo

import (
	"fmt"
	"runtime"
)

// RuntimeVersion returns the version of the running Go toolchain.
func RuntimeVersion() string {
	return runtime.Version()
}

// Platform returns a description of the host operating system and machine,
// as <System>-<release>-<machine>. Nothing is cached.
func Platform() (string, error) {
	return platform()
}

// fallbackPlatform is used where uname is unavailable.
func fallbackPlatform() string {
	return fmt.Sprintf("%s-%s", runtime.GOOS, runtime.GOARCH)
}

func joinPlatform(system, release, machine string) string {
	if system == "" {
		return fallbackPlatform()
	}
	s := system
	for _, part := range []string{release, machine} {
		if part != "" {
			s += "-" + part
		}
	}
	return s
}
