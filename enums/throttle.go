package enums

import (
	"fmt"
	"strings"
)

// ThrottleReason is a bitmask of the reasons clocks are currently held
// below their maximum.
type ThrottleReason uint64

const (
	ThrottleReasonNone ThrottleReason = 0

	// ThrottleReasonGpuIdle: nothing is running, clocks are dropped to
	// idle.
	ThrottleReasonGpuIdle ThrottleReason = 0x1

	// ThrottleReasonApplicationsClocksSetting: clocks are capped by an
	// applications clocks setting.
	ThrottleReasonApplicationsClocksSetting ThrottleReason = 0x2

	// ThrottleReasonSwPowerCap: the software power scaling algorithm is
	// holding clocks under the power cap.
	ThrottleReasonSwPowerCap ThrottleReason = 0x4

	// ThrottleReasonHwSlowdown: an external trigger (thermal, power brake)
	// engaged the hardware slowdown.
	ThrottleReasonHwSlowdown ThrottleReason = 0x8

	// ThrottleReasonUnknown covers causes the driver does not break out.
	ThrottleReasonUnknown ThrottleReason = 0x8000000000000000

	ThrottleReasonAll = ThrottleReasonGpuIdle |
		ThrottleReasonApplicationsClocksSetting |
		ThrottleReasonSwPowerCap |
		ThrottleReasonHwSlowdown |
		ThrottleReasonUnknown
)

var throttleReasonNames = []struct {
	bit  ThrottleReason
	name string
}{
	{ThrottleReasonGpuIdle, "GpuIdle"},
	{ThrottleReasonApplicationsClocksSetting, "ApplicationsClocksSetting"},
	{ThrottleReasonSwPowerCap, "SwPowerCap"},
	{ThrottleReasonHwSlowdown, "HwSlowdown"},
	{ThrottleReasonUnknown, "Unknown"},
}

// Has reports whether every reason in mask is set.
func (r ThrottleReason) Has(mask ThrottleReason) bool {
	return r&mask == mask
}

func (r ThrottleReason) String() string {
	if r == ThrottleReasonNone {
		return "ThrottleReasonNone"
	}
	var parts []string
	rest := r
	for _, entry := range throttleReasonNames {
		if rest&entry.bit != 0 {
			parts = append(parts, entry.name)
			rest &^= entry.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("ThrottleReason(0x%x)", uint64(rest)))
	}
	return strings.Join(parts, "|")
}
