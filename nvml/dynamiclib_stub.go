//go:build !linux || !cgo

package nvml

import "github.com/pkg/errors"

// The NVML shared library only exists on Linux (and Windows, which this
// binding does not cover), and resolving it needs cgo for dlopen. On other
// platforms Load fails cleanly; the rest of the package still builds so
// tests with an injected function table run everywhere.
func loadAPI(candidates []string) (api, string, error) {
	return nil, "", errors.Wrapf(toError(ErrorLibraryNotFound),
		"NVML is only loadable on linux with cgo enabled (tried %v)", candidates)
}
