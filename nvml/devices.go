package nvml

import (
	"fmt"

	"github.com/gomlx/gonvml/enums"
)

// Device is a lightweight reference to one physical accelerator, owned by
// the native library -- the binding never frees it. Its lifetime is bounded
// by the session it came from: after Session.Shutdown every operation fails
// with ErrUninitialized. Device values are immutable and safe to share
// across goroutines.
type Device struct {
	session *Session
	handle  deviceHandle
}

func (d *Device) String() string {
	return fmt.Sprintf("Device(%#x)", uintptr(d.handle))
}

// Name returns the product name, e.g. "Tesla V100-SXM2-16GB".
func (d *Device) Name() (string, error) {
	if err := d.session.check(); err != nil {
		return "", err
	}
	name, ret := d.session.lib.api.DeviceGetName(d.handle)
	if err := toError(ret); err != nil {
		return "", err
	}
	return name, nil
}

// UUID returns the globally unique immutable identifier of the device.
func (d *Device) UUID() (string, error) {
	if err := d.session.check(); err != nil {
		return "", err
	}
	uuid, ret := d.session.lib.api.DeviceGetUUID(d.handle)
	if err := toError(ret); err != nil {
		return "", err
	}
	return uuid, nil
}

// Serial returns the board serial number.
func (d *Device) Serial() (string, error) {
	if err := d.session.check(); err != nil {
		return "", err
	}
	serial, ret := d.session.lib.api.DeviceGetSerial(d.handle)
	if err := toError(ret); err != nil {
		return "", err
	}
	return serial, nil
}

// Index returns the enumeration index of the device, as used by
// Session.DeviceByIndex.
func (d *Device) Index() (int, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	index, ret := d.session.lib.api.DeviceGetIndex(d.handle)
	if err := toError(ret); err != nil {
		return 0, err
	}
	return int(index), nil
}

// Brand returns the commercial brand of the device.
func (d *Device) Brand() (enums.BrandType, error) {
	if err := d.session.check(); err != nil {
		return enums.BrandUnknown, err
	}
	raw, ret := d.session.lib.api.DeviceGetBrand(d.handle)
	if err := toError(ret); err != nil {
		return enums.BrandUnknown, err
	}
	return enums.BrandType(raw), nil
}

// BoardID returns the board id, identical for devices on the same board.
func (d *Device) BoardID() (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	id, ret := d.session.lib.api.DeviceGetBoardID(d.handle)
	if err := toError(ret); err != nil {
		return 0, err
	}
	return id, nil
}

// MinorNumber returns the minor number, i.e. the NN of /dev/nvidiaNN.
func (d *Device) MinorNumber() (int, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	minor, ret := d.session.lib.api.DeviceGetMinorNumber(d.handle)
	if err := toError(ret); err != nil {
		return 0, err
	}
	return int(minor), nil
}

// InforomVersion returns the version of the given infoROM object.
func (d *Device) InforomVersion(object enums.InfoRom) (string, error) {
	if err := d.session.check(); err != nil {
		return "", err
	}
	version, ret := d.session.lib.api.DeviceGetInforomVersion(d.handle, uint32(object))
	if err := toError(ret); err != nil {
		return "", err
	}
	return version, nil
}

// MemoryInfo returns the FB memory accounting of the device.
func (d *Device) MemoryInfo() (Memory, error) {
	if err := d.session.check(); err != nil {
		return Memory{}, err
	}
	memory, ret := d.session.lib.api.DeviceGetMemoryInfo(d.handle)
	if err := toError(ret); err != nil {
		return Memory{}, err
	}
	return memory, nil
}

// BAR1MemoryInfo returns the BAR1 aperture accounting of the device.
func (d *Device) BAR1MemoryInfo() (BAR1Memory, error) {
	if err := d.session.check(); err != nil {
		return BAR1Memory{}, err
	}
	memory, ret := d.session.lib.api.DeviceGetBAR1MemoryInfo(d.handle)
	if err := toError(ret); err != nil {
		return BAR1Memory{}, err
	}
	return memory, nil
}

// UtilizationRates returns the GPU and memory utilization over the last
// sampling period.
func (d *Device) UtilizationRates() (Utilization, error) {
	if err := d.session.check(); err != nil {
		return Utilization{}, err
	}
	utilization, ret := d.session.lib.api.DeviceGetUtilizationRates(d.handle)
	if err := toError(ret); err != nil {
		return Utilization{}, err
	}
	return utilization, nil
}

// FanSpeed returns the intended fan speed in percent of maximum. The
// reading is the programmed target, not a measurement; a broken fan still
// reports its target.
func (d *Device) FanSpeed() (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	speed, ret := d.session.lib.api.DeviceGetFanSpeed(d.handle)
	if err := toError(ret); err != nil {
		return 0, err
	}
	return speed, nil
}

// Temperature returns the reading of the given sensor in degrees Celsius.
func (d *Device) Temperature(sensor enums.TemperatureSensor) (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	temperature, ret := d.session.lib.api.DeviceGetTemperature(d.handle, uint32(sensor))
	if err := toError(ret); err != nil {
		return 0, err
	}
	return temperature, nil
}

// TemperatureThreshold returns the given thermal threshold in degrees
// Celsius.
func (d *Device) TemperatureThreshold(threshold enums.TemperatureThreshold) (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	temperature, ret := d.session.lib.api.DeviceGetTemperatureThreshold(d.handle, uint32(threshold))
	if err := toError(ret); err != nil {
		return 0, err
	}
	return temperature, nil
}

// PowerUsage returns the current board power draw in milliwatts.
func (d *Device) PowerUsage() (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	power, ret := d.session.lib.api.DeviceGetPowerUsage(d.handle)
	if err := toError(ret); err != nil {
		return 0, err
	}
	return power, nil
}

// PowerState returns the current performance state of the device.
func (d *Device) PowerState() (enums.PowerState, error) {
	if err := d.session.check(); err != nil {
		return enums.PowerStateUnknown, err
	}
	raw, ret := d.session.lib.api.DeviceGetPowerState(d.handle)
	if err := toError(ret); err != nil {
		return enums.PowerStateUnknown, err
	}
	return enums.PowerState(raw), nil
}

// PowerManagementMode reports whether the device supports power readings
// and limits.
func (d *Device) PowerManagementMode() (enums.EnableState, error) {
	if err := d.session.check(); err != nil {
		return enums.FeatureDisabled, err
	}
	raw, ret := d.session.lib.api.DeviceGetPowerManagementMode(d.handle)
	if err := toError(ret); err != nil {
		return enums.FeatureDisabled, err
	}
	return enums.EnableState(raw), nil
}

// PowerManagementLimit returns the enforced power cap in milliwatts.
func (d *Device) PowerManagementLimit() (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	limit, ret := d.session.lib.api.DeviceGetPowerManagementLimit(d.handle)
	if err := toError(ret); err != nil {
		return 0, err
	}
	return limit, nil
}

// PowerManagementLimitConstraints returns the bounds accepted when setting
// the power cap.
func (d *Device) PowerManagementLimitConstraints() (PowerLimitConstraints, error) {
	if err := d.session.check(); err != nil {
		return PowerLimitConstraints{}, err
	}
	minLimit, maxLimit, ret := d.session.lib.api.DeviceGetPowerManagementLimitConstraints(d.handle)
	if err := toError(ret); err != nil {
		return PowerLimitConstraints{}, err
	}
	return PowerLimitConstraints{Min: minLimit, Max: maxLimit}, nil
}

// ClockInfo returns the current speed of the given clock domain in MHz.
func (d *Device) ClockInfo(clock enums.ClockType) (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	speed, ret := d.session.lib.api.DeviceGetClockInfo(d.handle, uint32(clock))
	if err := toError(ret); err != nil {
		return 0, err
	}
	return speed, nil
}

// MaxClockInfo returns the maximum speed of the given clock domain in MHz.
func (d *Device) MaxClockInfo(clock enums.ClockType) (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	speed, ret := d.session.lib.api.DeviceGetMaxClockInfo(d.handle, uint32(clock))
	if err := toError(ret); err != nil {
		return 0, err
	}
	return speed, nil
}

// ApplicationsClock returns the application clock target of the given
// domain in MHz.
func (d *Device) ApplicationsClock(clock enums.ClockType) (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	speed, ret := d.session.lib.api.DeviceGetApplicationsClock(d.handle, uint32(clock))
	if err := toError(ret); err != nil {
		return 0, err
	}
	return speed, nil
}

// ComputeMode returns the compute mode of the device.
func (d *Device) ComputeMode() (enums.ComputeMode, error) {
	if err := d.session.check(); err != nil {
		return enums.ComputeModeDefault, err
	}
	raw, ret := d.session.lib.api.DeviceGetComputeMode(d.handle)
	if err := toError(ret); err != nil {
		return enums.ComputeModeDefault, err
	}
	return enums.ComputeMode(raw), nil
}

// SetComputeMode changes the compute mode. Requires root.
func (d *Device) SetComputeMode(mode enums.ComputeMode) error {
	if err := d.session.check(); err != nil {
		return err
	}
	return toError(d.session.lib.api.DeviceSetComputeMode(d.handle, uint32(mode)))
}

// PersistenceMode reports whether the driver stays loaded with no clients
// connected. Linux only.
func (d *Device) PersistenceMode() (enums.EnableState, error) {
	if err := d.session.check(); err != nil {
		return enums.FeatureDisabled, err
	}
	raw, ret := d.session.lib.api.DeviceGetPersistenceMode(d.handle)
	if err := toError(ret); err != nil {
		return enums.FeatureDisabled, err
	}
	return enums.EnableState(raw), nil
}

// SetPersistenceMode changes the persistence mode. Requires root; Linux
// only.
func (d *Device) SetPersistenceMode(mode enums.EnableState) error {
	if err := d.session.check(); err != nil {
		return err
	}
	return toError(d.session.lib.api.DeviceSetPersistenceMode(d.handle, uint32(mode)))
}

// DisplayMode reports whether a physical display is connected.
func (d *Device) DisplayMode() (enums.EnableState, error) {
	if err := d.session.check(); err != nil {
		return enums.FeatureDisabled, err
	}
	raw, ret := d.session.lib.api.DeviceGetDisplayMode(d.handle)
	if err := toError(ret); err != nil {
		return enums.FeatureDisabled, err
	}
	return enums.EnableState(raw), nil
}

// DisplayActive reports whether a display is initialized on the device.
func (d *Device) DisplayActive() (enums.EnableState, error) {
	if err := d.session.check(); err != nil {
		return enums.FeatureDisabled, err
	}
	raw, ret := d.session.lib.api.DeviceGetDisplayActive(d.handle)
	if err := toError(ret); err != nil {
		return enums.FeatureDisabled, err
	}
	return enums.EnableState(raw), nil
}

// EccMode returns the current and pending (after reboot) ECC state.
func (d *Device) EccMode() (EccMode, error) {
	if err := d.session.check(); err != nil {
		return EccMode{}, err
	}
	current, pending, ret := d.session.lib.api.DeviceGetEccMode(d.handle)
	if err := toError(ret); err != nil {
		return EccMode{}, err
	}
	return EccMode{
		Current: enums.EnableState(current),
		Pending: enums.EnableState(pending),
	}, nil
}

// TotalEccErrors returns the requested ECC error total.
func (d *Device) TotalEccErrors(bits enums.ECCBitType, counter enums.ECCCounterType) (uint64, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	count, ret := d.session.lib.api.DeviceGetTotalEccErrors(d.handle, uint32(bits), uint32(counter))
	if err := toError(ret); err != nil {
		return 0, err
	}
	return count, nil
}

// DetailedEccErrors breaks the requested ECC error total down by memory
// location.
func (d *Device) DetailedEccErrors(bits enums.ECCBitType, counter enums.ECCCounterType) (EccErrorCounts, error) {
	if err := d.session.check(); err != nil {
		return EccErrorCounts{}, err
	}
	counts, ret := d.session.lib.api.DeviceGetDetailedEccErrors(d.handle, uint32(bits), uint32(counter))
	if err := toError(ret); err != nil {
		return EccErrorCounts{}, err
	}
	return counts, nil
}

// PciInfo returns the PCI attributes of the device.
func (d *Device) PciInfo() (PCIInfo, error) {
	if err := d.session.check(); err != nil {
		return PCIInfo{}, err
	}
	info, ret := d.session.lib.api.DeviceGetPciInfo(d.handle)
	if err := toError(ret); err != nil {
		return PCIInfo{}, err
	}
	return info, nil
}

// CurrPcieLinkGeneration returns the current PCIe link generation.
func (d *Device) CurrPcieLinkGeneration() (int, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	generation, ret := d.session.lib.api.DeviceGetCurrPcieLinkGeneration(d.handle)
	if err := toError(ret); err != nil {
		return 0, err
	}
	return int(generation), nil
}

// CurrPcieLinkWidth returns the current PCIe link width in lanes.
func (d *Device) CurrPcieLinkWidth() (int, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	width, ret := d.session.lib.api.DeviceGetCurrPcieLinkWidth(d.handle)
	if err := toError(ret); err != nil {
		return 0, err
	}
	return int(width), nil
}

// PcieThroughput returns the given PCIe counter in KB/s, sampled over a
// 20ms interval by the native library (the call blocks for that long).
func (d *Device) PcieThroughput(counter enums.PcieUtilCounter) (uint32, error) {
	if err := d.session.check(); err != nil {
		return 0, err
	}
	value, ret := d.session.lib.api.DeviceGetPcieThroughput(d.handle, uint32(counter))
	if err := toError(ret); err != nil {
		return 0, err
	}
	return value, nil
}

// APIRestriction reports whether the given API is restricted to root.
func (d *Device) APIRestriction(apiType enums.RestrictedAPI) (enums.EnableState, error) {
	if err := d.session.check(); err != nil {
		return enums.FeatureDisabled, err
	}
	raw, ret := d.session.lib.api.DeviceGetAPIRestriction(d.handle, uint32(apiType))
	if err := toError(ret); err != nil {
		return enums.FeatureDisabled, err
	}
	return enums.EnableState(raw), nil
}

// SetAPIRestriction restricts or opens the given API. Requires root.
func (d *Device) SetAPIRestriction(apiType enums.RestrictedAPI, state enums.EnableState) error {
	if err := d.session.check(); err != nil {
		return err
	}
	return toError(d.session.lib.api.DeviceSetAPIRestriction(d.handle, uint32(apiType), uint32(state)))
}

// RetiredPages lists the addresses of pages retired for the given cause.
// The list is fetched with the two-phase count-then-fill protocol; the rare
// race of pages retiring between the phases is retried like Samples.
func (d *Device) RetiredPages(cause enums.PageRetirementCause) ([]uint64, error) {
	if err := d.session.check(); err != nil {
		return nil, err
	}
	var pages []uint64
	for attempt := 0; attempt < bufferRetries; attempt++ {
		n, ret := d.session.lib.api.DeviceGetRetiredPages(d.handle, uint32(cause), pages)
		if ret == ErrorInsufficientSize {
			pages = make([]uint64, n)
			continue
		}
		if err := toError(ret); err != nil {
			return nil, err
		}
		return pages[:n], nil
	}
	return nil, toError(ErrorInsufficientSize)
}

// RetiredPagesPendingStatus reports whether pages are pending retirement,
// i.e. reboot required to fully retire them.
func (d *Device) RetiredPagesPendingStatus() (enums.EnableState, error) {
	if err := d.session.check(); err != nil {
		return enums.FeatureDisabled, err
	}
	raw, ret := d.session.lib.api.DeviceGetRetiredPagesPendingStatus(d.handle)
	if err := toError(ret); err != nil {
		return enums.FeatureDisabled, err
	}
	return enums.EnableState(raw), nil
}

// ViolationStatus reports how long the given perf policy held the device
// below its application clocks.
func (d *Device) ViolationStatus(policy enums.PerfPolicyType) (ViolationTime, error) {
	if err := d.session.check(); err != nil {
		return ViolationTime{}, err
	}
	violation, ret := d.session.lib.api.DeviceGetViolationStatus(d.handle, uint32(policy))
	if err := toError(ret); err != nil {
		return ViolationTime{}, err
	}
	return violation, nil
}

// CurrentClocksThrottleReasons returns the reasons clocks are currently
// held down, as a bitmask.
func (d *Device) CurrentClocksThrottleReasons() (enums.ThrottleReason, error) {
	if err := d.session.check(); err != nil {
		return enums.ThrottleReasonNone, err
	}
	mask, ret := d.session.lib.api.DeviceGetCurrentClocksThrottleReasons(d.handle)
	if err := toError(ret); err != nil {
		return enums.ThrottleReasonNone, err
	}
	return enums.ThrottleReason(mask), nil
}

// SupportedClocksThrottleReasons returns the throttle reasons the device
// can report.
func (d *Device) SupportedClocksThrottleReasons() (enums.ThrottleReason, error) {
	if err := d.session.check(); err != nil {
		return enums.ThrottleReasonNone, err
	}
	mask, ret := d.session.lib.api.DeviceGetSupportedClocksThrottleReasons(d.handle)
	if err := toError(ret); err != nil {
		return enums.ThrottleReasonNone, err
	}
	return enums.ThrottleReason(mask), nil
}

// OnSameBoard reports whether both devices sit on the same board.
func (d *Device) OnSameBoard(other *Device) (bool, error) {
	if err := d.session.check(); err != nil {
		return false, err
	}
	same, ret := d.session.lib.api.DeviceOnSameBoard(d.handle, other.handle)
	if err := toError(ret); err != nil {
		return false, err
	}
	return same, nil
}

// SupportedEventTypes returns the event mask the device can report.
func (d *Device) SupportedEventTypes() (enums.EventType, error) {
	if err := d.session.check(); err != nil {
		return enums.EventTypeNone, err
	}
	mask, ret := d.session.lib.api.DeviceGetSupportedEventTypes(d.handle)
	if err := toError(ret); err != nil {
		return enums.EventTypeNone, err
	}
	return enums.EventType(mask), nil
}

// RegisterEvents starts recording the given event types into set. Events
// that occurred before the call are not recorded.
func (d *Device) RegisterEvents(types enums.EventType, set *EventSet) error {
	if err := d.session.check(); err != nil {
		return err
	}
	handle, err := set.handleForUse()
	if err != nil {
		return err
	}
	return toError(d.session.lib.api.DeviceRegisterEvents(d.handle, uint64(types), handle))
}
