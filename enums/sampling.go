package enums

// SamplingType identifies which sampling buffer Device.Samples reads.
type SamplingType uint32

const (
	TotalPowerSamples SamplingType = iota
	GpuUtilizationSamples
	MemoryUtilizationSamples
	EncUtilizationSamples
	DecUtilizationSamples
	ProcessorClkSamples
	MemoryClkSamples
)

var samplingTypeNames = map[SamplingType]string{
	TotalPowerSamples:        "TotalPowerSamples",
	GpuUtilizationSamples:    "GpuUtilizationSamples",
	MemoryUtilizationSamples: "MemoryUtilizationSamples",
	EncUtilizationSamples:    "EncUtilizationSamples",
	DecUtilizationSamples:    "DecUtilizationSamples",
	ProcessorClkSamples:      "ProcessorClkSamples",
	MemoryClkSamples:         "MemoryClkSamples",
}

func (t SamplingType) String() string {
	if name, ok := samplingTypeNames[t]; ok {
		return name
	}
	return formatUnknown("SamplingType", uint32(t))
}

// ValueType is the tag of the sample value union: it must be read before
// interpreting the value payload.
type ValueType uint32

const (
	ValueTypeDouble ValueType = iota
	ValueTypeUnsignedInt
	ValueTypeUnsignedLong
	ValueTypeUnsignedLongLong
)

var valueTypeNames = map[ValueType]string{
	ValueTypeDouble:           "ValueTypeDouble",
	ValueTypeUnsignedInt:      "ValueTypeUnsignedInt",
	ValueTypeUnsignedLong:     "ValueTypeUnsignedLong",
	ValueTypeUnsignedLongLong: "ValueTypeUnsignedLongLong",
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return formatUnknown("ValueType", uint32(t))
}
