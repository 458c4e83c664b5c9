package nvml

import (
	"fmt"

	"github.com/gomlx/gonvml/enums"
)

// Unit is a reference to one S-class enclosure, the chassis that groups
// several boards behind shared PSUs, fans and an LED. Like Device it is
// owned by the native library and bounded by its session.
type Unit struct {
	session *Session
	handle  unitHandle
}

func (u *Unit) String() string {
	return fmt.Sprintf("Unit(%#x)", uintptr(u.handle))
}

// Info returns the static identity of the unit.
func (u *Unit) Info() (UnitInfo, error) {
	if err := u.session.check(); err != nil {
		return UnitInfo{}, err
	}
	info, ret := u.session.lib.api.UnitGetUnitInfo(u.handle)
	if err := toError(ret); err != nil {
		return UnitInfo{}, err
	}
	return info, nil
}

// LedState returns the color of the unit LED and, when it is amber, the
// reason reported by the firmware.
func (u *Unit) LedState() (LedState, error) {
	if err := u.session.check(); err != nil {
		return LedState{}, err
	}
	cause, color, ret := u.session.lib.api.UnitGetLedState(u.handle)
	if err := toError(ret); err != nil {
		return LedState{}, err
	}
	return LedState{Cause: cause, Color: enums.LedColor(color)}, nil
}

// SetLedState changes the unit LED color. Requires root.
func (u *Unit) SetLedState(color enums.LedColor) error {
	if err := u.session.check(); err != nil {
		return err
	}
	return toError(u.session.lib.api.UnitSetLedState(u.handle, uint32(color)))
}

// PsuInfo returns the readings of the unit power supply.
func (u *Unit) PsuInfo() (PSUInfo, error) {
	if err := u.session.check(); err != nil {
		return PSUInfo{}, err
	}
	info, ret := u.session.lib.api.UnitGetPsuInfo(u.handle)
	if err := toError(ret); err != nil {
		return PSUInfo{}, err
	}
	return info, nil
}

// Temperature returns the reading of the given unit sensor in degrees
// Celsius.
func (u *Unit) Temperature(kind enums.UnitTemperatureType) (uint32, error) {
	if err := u.session.check(); err != nil {
		return 0, err
	}
	temperature, ret := u.session.lib.api.UnitGetTemperature(u.handle, uint32(kind))
	if err := toError(ret); err != nil {
		return 0, err
	}
	return temperature, nil
}

// FanSpeedInfo returns the speed and health of every fan in the unit.
func (u *Unit) FanSpeedInfo() ([]UnitFanInfo, error) {
	if err := u.session.check(); err != nil {
		return nil, err
	}
	raw, ret := u.session.lib.api.UnitGetFanSpeedInfo(u.handle)
	if err := toError(ret); err != nil {
		return nil, err
	}
	fans := make([]UnitFanInfo, len(raw))
	for i, f := range raw {
		fans[i] = UnitFanInfo{Speed: f.Speed, State: enums.FanState(f.State)}
	}
	return fans, nil
}

// Devices returns the accelerators attached to the unit.
func (u *Unit) Devices() ([]*Device, error) {
	if err := u.session.check(); err != nil {
		return nil, err
	}
	handles, ret := u.session.lib.api.UnitGetDevices(u.handle)
	if err := toError(ret); err != nil {
		return nil, err
	}
	devices := make([]*Device, len(handles))
	for i, h := range handles {
		devices[i] = u.session.deviceFromHandle(h)
	}
	return devices, nil
}
