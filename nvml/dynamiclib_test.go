package nvml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibraryCandidatesDefaults(t *testing.T) {
	t.Setenv(LibraryPathEnv, "")
	require.Equal(t,
		[]string{"libnvidia-ml.so.1", "libnvidia-ml.so"},
		libraryCandidates(nil))
}

func TestLibraryCandidatesEnvOverride(t *testing.T) {
	t.Setenv(LibraryPathEnv, "/opt/nvidia/libnvidia-ml.so.535::/tmp/missing.so")
	require.Equal(t,
		[]string{
			"/opt/nvidia/libnvidia-ml.so.535",
			"/tmp/missing.so",
			"libnvidia-ml.so.1",
			"libnvidia-ml.so",
		},
		libraryCandidates(nil))
}

func TestLibraryCandidatesExplicitFirst(t *testing.T) {
	t.Setenv(LibraryPathEnv, "/from/env.so")
	require.Equal(t,
		[]string{
			"/explicit.so",
			"/from/env.so",
			"libnvidia-ml.so.1",
			"libnvidia-ml.so",
		},
		libraryCandidates([]string{"/explicit.so"}))
}

func TestLibraryCandidatesExpandsDirectories(t *testing.T) {
	t.Setenv(LibraryPathEnv, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultLibraryName), nil, 0o644))

	require.Equal(t,
		[]string{
			filepath.Join(dir, defaultLibraryName),
			"libnvidia-ml.so.1",
			"libnvidia-ml.so",
		},
		libraryCandidates([]string{dir}))
}

func TestLoadWithMissingLibrary(t *testing.T) {
	t.Setenv(LibraryPathEnv, "")
	_, err := Load(WithLibraryPath(filepath.Join(t.TempDir(), "nope.so")))
	if err == nil {
		// A real NVML is installed on this machine; nothing to assert.
		t.Skip("NVML present on host")
	}
	require.ErrorIs(t, err, ErrLibraryNotFound)
}
