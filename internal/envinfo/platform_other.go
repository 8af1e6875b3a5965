//go:build !linux && !darwin

package envinfo

func platform() (string, error) {
	return fallbackPlatform(), nil
}
