// Package nvml implements a Go wrapper for the NVIDIA Management Library
// (NVML), the C library behind nvidia-smi.
//
// The shared library is located and dlopen-ed at runtime (see Load), so the
// package builds and loads without the NVIDIA driver installed; only Load
// fails when the library is absent. A Lib value holds the resolved function
// table, Lib.Init opens a Session, and all device, unit and event-set
// queries hang off the session:
//
//	lib, err := nvml.Load()
//	if err != nil { ... }
//	err = lib.WithSession(func(s *nvml.Session) error {
//		for dev, err := range s.Devices() {
//			if err != nil {
//				return err
//			}
//			name, err := dev.Name()
//			...
//		}
//		return nil
//	})
//
// Every native call funnels its raw status code through a single translation
// point, so callers branch on the typed sentinels (ErrNotFound, ErrTimeout,
// ...) with errors.Is and never see raw integers.
package nvml
