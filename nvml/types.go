package nvml

import (
	"fmt"

	"github.com/gomlx/gonvml/enums"
)

// Memory is the FB memory accounting of a device, in bytes.
type Memory struct {
	Total uint64
	Free  uint64
	Used  uint64
}

func (m Memory) String() string {
	return fmt.Sprintf("Memory(total=%d B, free=%d B, used=%d B)", m.Total, m.Free, m.Used)
}

// BAR1Memory is the BAR1 aperture accounting of a device, in bytes.
type BAR1Memory struct {
	Total uint64
	Free  uint64
	Used  uint64
}

// Utilization holds the percent of time over the last sampling period
// during which the GPU (resp. its memory interface) was busy.
type Utilization struct {
	GPU    uint32
	Memory uint32
}

func (u Utilization) String() string {
	return fmt.Sprintf("Utilization(gpu=%d%%, memory=%d%%)", u.GPU, u.Memory)
}

// PCIInfo describes where on the PCI topology a device sits.
type PCIInfo struct {
	// BusID is the "domain:bus:device.function" tuple as a string.
	BusID          string
	Domain         uint32
	Bus            uint32
	Device         uint32
	PciDeviceID    uint32
	PciSubSystemID uint32
}

// EccErrorCounts breaks an ECC error total down by memory location.
type EccErrorCounts struct {
	L1Cache      uint64
	L2Cache      uint64
	DeviceMemory uint64
	RegisterFile uint64
}

// EccMode is the current and pending (after reboot) ECC state of a device.
type EccMode struct {
	Current enums.EnableState
	Pending enums.EnableState
}

// PowerLimitConstraints are the bounds accepted when setting a device's
// power management limit, in milliwatts.
type PowerLimitConstraints struct {
	Min uint32
	Max uint32
}

// ViolationTime reports how long a perf policy held the device below its
// application clocks, with the boot-relative reference timestamp of the
// reading (both in nanoseconds).
type ViolationTime struct {
	ReferenceTime uint64
	ViolationTime uint64
}

// UnitInfo is the static description of an S-class unit.
type UnitInfo struct {
	Name            string
	ID              string
	Serial          string
	FirmwareVersion string
}

// LedState is the LED of an S-class unit: its color plus the human readable
// cause when the LED is not green.
type LedState struct {
	Cause string
	Color enums.LedColor
}

// PSUInfo are the power supply readings of an S-class unit. State is the
// native human readable string ("Normal" or "Abnormal" plus a reason).
type PSUInfo struct {
	State   string
	Current uint32
	Voltage uint32
	Power   uint32
}

// UnitFanInfo is one fan reading of an S-class unit.
type UnitFanInfo struct {
	Speed uint32
	State enums.FanState
}
