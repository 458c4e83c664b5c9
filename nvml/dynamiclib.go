package nvml

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// LibraryPathEnv is the environment variable overriding where the NVML
	// shared library is searched: a ":"-separated list of shared object
	// files or directories containing them.
	LibraryPathEnv = "GONVML_LIBRARY_PATH"

	// Default sonames tried through the system loader, in order. The
	// versioned name is what the driver package installs; the unversioned
	// one only exists with the CUDA SDK present.
	defaultLibraryName  = "libnvidia-ml.so.1"
	fallbackLibraryName = "libnvidia-ml.so"
)

// libraryCandidates returns the ordered list of names handed to the
// dynamic loader: explicit Load options first, then the entries of
// GONVML_LIBRARY_PATH, then the default sonames (resolved by the system
// loader through its own search path). Directory entries are expanded to
// the default soname inside them.
func libraryCandidates(explicit []string) []string {
	var candidates []string
	add := func(entry string) {
		if entry == "" {
			return
		}
		if info, err := os.Stat(entry); err == nil && info.IsDir() {
			candidates = append(candidates, filepath.Join(entry, defaultLibraryName))
			return
		}
		candidates = append(candidates, entry)
	}
	for _, entry := range explicit {
		add(entry)
	}
	for _, entry := range strings.Split(os.Getenv(LibraryPathEnv), ":") {
		add(entry)
	}
	return append(candidates, defaultLibraryName, fallbackLibraryName)
}
