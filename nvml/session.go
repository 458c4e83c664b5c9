package nvml

import "iter"

// Session scopes one initialize/shutdown pair of the native library. All
// device, unit and event set operations hang off a session; once it is shut
// down (or superseded) they all fail with ErrUninitialized.
//
// A Session is safe for concurrent use. The handles it returns are
// immutable references and may be shared across goroutines; EventSet is the
// exception, see its documentation.
type Session struct {
	lib        *Lib
	generation uint64
}

// check fails with ErrUninitialized unless the session is still current.
func (s *Session) check() error {
	if s.lib.generation.Load() != s.generation {
		return toError(ErrorUninitialized)
	}
	return nil
}

// Shutdown closes the session, forwarding nvmlShutdown exactly once.
// Subsequent use of the session or any handle derived from it fails with
// ErrUninitialized, as does a second Shutdown.
func (s *Session) Shutdown() error {
	return s.lib.shutdown(s)
}

// DriverVersion returns the version string of the installed display driver.
func (s *Session) DriverVersion() (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	version, ret := s.lib.api.SystemGetDriverVersion()
	if err := toError(ret); err != nil {
		return "", err
	}
	return version, nil
}

// NVMLVersion returns the version string of the native library itself.
func (s *Session) NVMLVersion() (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	version, ret := s.lib.api.SystemGetNVMLVersion()
	if err := toError(ret); err != nil {
		return "", err
	}
	return version, nil
}

// ProcessName returns the name of the process with the given pid.
func (s *Session) ProcessName(pid uint32) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	name, ret := s.lib.api.SystemGetProcessName(pid)
	if err := toError(ret); err != nil {
		return "", err
	}
	return name, nil
}

// DeviceCount returns the number of compute devices in the system.
func (s *Session) DeviceCount() (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	count, ret := s.lib.api.DeviceGetCount()
	if err := toError(ret); err != nil {
		return 0, err
	}
	return int(count), nil
}

// DeviceByIndex acquires the device with the given index, valid in
// [0, DeviceCount). The enumeration order is not guaranteed stable across
// reboots; prefer DeviceByUUID or DeviceByPCIBusID for persistent
// identification.
func (s *Session) DeviceByIndex(index int) (*Device, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, toError(ErrorInvalidArgument)
	}
	handle, ret := s.lib.api.DeviceGetHandleByIndex(uint32(index))
	if err := toError(ret); err != nil {
		return nil, err
	}
	return &Device{session: s, handle: handle}, nil
}

// DeviceByUUID acquires the device with the given UUID; ErrNotFound when no
// device matches.
func (s *Session) DeviceByUUID(uuid string) (*Device, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	handle, ret := s.lib.api.DeviceGetHandleByUUID(uuid)
	if err := toError(ret); err != nil {
		return nil, err
	}
	return &Device{session: s, handle: handle}, nil
}

// DeviceByPCIBusID acquires the device at the given PCI bus id
// ("domain:bus:device.function"); ErrNotFound when no device matches.
func (s *Session) DeviceByPCIBusID(busID string) (*Device, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	handle, ret := s.lib.api.DeviceGetHandleByPciBusID(busID)
	if err := toError(ret); err != nil {
		return nil, err
	}
	return &Device{session: s, handle: handle}, nil
}

// DeviceBySerial acquires the device with the given board serial number.
// Deprecated by the native library in favor of UUIDs since boards may carry
// more than one GPU, but still supported; ErrNotFound when no device
// matches.
func (s *Session) DeviceBySerial(serial string) (*Device, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	handle, ret := s.lib.api.DeviceGetHandleBySerial(serial)
	if err := toError(ret); err != nil {
		return nil, err
	}
	return &Device{session: s, handle: handle}, nil
}

// Devices iterates over all devices. The sequence is finite and
// restartable: every new range re-queries the device count, so hot-plug is
// picked up between iterations (not within one pass). A query failure is
// yielded as the error of its element.
func (s *Session) Devices() iter.Seq2[*Device, error] {
	return func(yield func(*Device, error) bool) {
		count, err := s.DeviceCount()
		if err != nil {
			yield(nil, err)
			return
		}
		for index := 0; index < count; index++ {
			device, err := s.DeviceByIndex(index)
			if !yield(device, err) {
				return
			}
		}
	}
}

// UnitCount returns the number of S-class units in the system, zero on
// anything that is not an S-class chassis.
func (s *Session) UnitCount() (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	count, ret := s.lib.api.UnitGetCount()
	if err := toError(ret); err != nil {
		return 0, err
	}
	return int(count), nil
}

// UnitByIndex acquires the unit with the given index, valid in
// [0, UnitCount).
func (s *Session) UnitByIndex(index int) (*Unit, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, toError(ErrorInvalidArgument)
	}
	handle, ret := s.lib.api.UnitGetHandleByIndex(uint32(index))
	if err := toError(ret); err != nil {
		return nil, err
	}
	return &Unit{session: s, handle: handle}, nil
}

// Units iterates over all S-class units, with the same re-querying
// semantics as Devices.
func (s *Session) Units() iter.Seq2[*Unit, error] {
	return func(yield func(*Unit, error) bool) {
		count, err := s.UnitCount()
		if err != nil {
			yield(nil, err)
			return
		}
		for index := 0; index < count; index++ {
			unit, err := s.UnitByIndex(index)
			if !yield(unit, err) {
				return
			}
		}
	}
}

// NewEventSet creates an empty event set. The caller owns it and must Free
// it; see EventSet.
func (s *Session) NewEventSet() (*EventSet, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	s.lib.mu.Lock()
	handle, ret := s.lib.api.EventSetCreate()
	s.lib.mu.Unlock()
	if err := toError(ret); err != nil {
		return nil, err
	}
	return newEventSet(s, handle), nil
}

// deviceFromHandle wraps a native device handle the library reported (unit
// attachment lists, event data).
func (s *Session) deviceFromHandle(handle deviceHandle) *Device {
	return &Device{session: s, handle: handle}
}
