package enums

// MemoryLocation identifies where on the device an ECC error was counted.
type MemoryLocation uint32

const (
	MemoryLocationL1Cache MemoryLocation = iota
	MemoryLocationL2Cache
	MemoryLocationDeviceMemory
	MemoryLocationRegisterFile
	MemoryLocationTextureMemory
)

var memoryLocationNames = map[MemoryLocation]string{
	MemoryLocationL1Cache:       "MemoryLocationL1Cache",
	MemoryLocationL2Cache:       "MemoryLocationL2Cache",
	MemoryLocationDeviceMemory:  "MemoryLocationDeviceMemory",
	MemoryLocationRegisterFile:  "MemoryLocationRegisterFile",
	MemoryLocationTextureMemory: "MemoryLocationTextureMemory",
}

func (l MemoryLocation) String() string {
	if name, ok := memoryLocationNames[l]; ok {
		return name
	}
	return formatUnknown("MemoryLocation", uint32(l))
}

// ECCBitType distinguishes single from double bit ECC errors.
type ECCBitType uint32

const (
	SingleBitECC ECCBitType = iota
	DoubleBitECC
	ECCBitTypeCount
)

var eccBitTypeNames = map[ECCBitType]string{
	SingleBitECC:    "SingleBitECC",
	DoubleBitECC:    "DoubleBitECC",
	ECCBitTypeCount: "ECCBitTypeCount",
}

func (t ECCBitType) String() string {
	if name, ok := eccBitTypeNames[t]; ok {
		return name
	}
	return formatUnknown("ECCBitType", uint32(t))
}

// ECCCounterType selects the volatile (since boot) or aggregate (lifetime)
// ECC counter bank.
type ECCCounterType uint32

const (
	VolatileECC ECCCounterType = iota
	AggregateECC
	ECCCounterTypeCount
)

var eccCounterTypeNames = map[ECCCounterType]string{
	VolatileECC:         "VolatileECC",
	AggregateECC:        "AggregateECC",
	ECCCounterTypeCount: "ECCCounterTypeCount",
}

func (t ECCCounterType) String() string {
	if name, ok := eccCounterTypeNames[t]; ok {
		return name
	}
	return formatUnknown("ECCCounterType", uint32(t))
}

// MemoryErrorType distinguishes corrected from uncorrected memory errors.
type MemoryErrorType uint32

const (
	MemoryErrorCorrected MemoryErrorType = iota
	MemoryErrorUncorrected
)

var memoryErrorTypeNames = map[MemoryErrorType]string{
	MemoryErrorCorrected:   "MemoryErrorCorrected",
	MemoryErrorUncorrected: "MemoryErrorUncorrected",
}

func (t MemoryErrorType) String() string {
	if name, ok := memoryErrorTypeNames[t]; ok {
		return name
	}
	return formatUnknown("MemoryErrorType", uint32(t))
}

// PageRetirementCause is why a page of device memory was retired.
type PageRetirementCause uint32

const (
	PageRetirementDoubleBitECCError PageRetirementCause = iota
	PageRetirementMultipleSingleBitECCErrors
)

var pageRetirementCauseNames = map[PageRetirementCause]string{
	PageRetirementDoubleBitECCError:          "PageRetirementDoubleBitECCError",
	PageRetirementMultipleSingleBitECCErrors: "PageRetirementMultipleSingleBitECCErrors",
}

func (c PageRetirementCause) String() string {
	if name, ok := pageRetirementCauseNames[c]; ok {
		return name
	}
	return formatUnknown("PageRetirementCause", uint32(c))
}
