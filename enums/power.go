package enums

// PowerState is the performance state (P-state) of a device: P0 is maximum
// performance, P15 minimum, 32 means unknown.
type PowerState uint32

const (
	PowerState0 PowerState = iota
	PowerState1
	PowerState2
	PowerState3
	PowerState4
	PowerState5
	PowerState6
	PowerState7
	PowerState8
	PowerState9
	PowerState10
	PowerState11
	PowerState12
	PowerState13
	PowerState14
	PowerState15

	PowerStateUnknown PowerState = 32
)

var powerStateNames = map[PowerState]string{
	PowerState0:       "PowerState0",
	PowerState1:       "PowerState1",
	PowerState2:       "PowerState2",
	PowerState3:       "PowerState3",
	PowerState4:       "PowerState4",
	PowerState5:       "PowerState5",
	PowerState6:       "PowerState6",
	PowerState7:       "PowerState7",
	PowerState8:       "PowerState8",
	PowerState9:       "PowerState9",
	PowerState10:      "PowerState10",
	PowerState11:      "PowerState11",
	PowerState12:      "PowerState12",
	PowerState13:      "PowerState13",
	PowerState14:      "PowerState14",
	PowerState15:      "PowerState15",
	PowerStateUnknown: "PowerStateUnknown",
}

func (s PowerState) String() string {
	if name, ok := powerStateNames[s]; ok {
		return name
	}
	return formatUnknown("PowerState", uint32(s))
}

// PerfPolicyType selects a performance policy whose violation time can be
// queried: how long the corresponding limiter held the GPU below its
// application clocks.
type PerfPolicyType uint32

const (
	PerfPolicyPower PerfPolicyType = iota
	PerfPolicyThermal
	PerfPolicySyncBoost
	PerfPolicyBoardLimit
	PerfPolicyLowUtilization
	PerfPolicyReliability

	PerfPolicyTotalAppClocks  PerfPolicyType = 10
	PerfPolicyTotalBaseClocks PerfPolicyType = 11
)

var perfPolicyTypeNames = map[PerfPolicyType]string{
	PerfPolicyPower:           "PerfPolicyPower",
	PerfPolicyThermal:         "PerfPolicyThermal",
	PerfPolicySyncBoost:       "PerfPolicySyncBoost",
	PerfPolicyBoardLimit:      "PerfPolicyBoardLimit",
	PerfPolicyLowUtilization:  "PerfPolicyLowUtilization",
	PerfPolicyReliability:     "PerfPolicyReliability",
	PerfPolicyTotalAppClocks:  "PerfPolicyTotalAppClocks",
	PerfPolicyTotalBaseClocks: "PerfPolicyTotalBaseClocks",
}

func (t PerfPolicyType) String() string {
	if name, ok := perfPolicyTypeNames[t]; ok {
		return name
	}
	return formatUnknown("PerfPolicyType", uint32(t))
}
