package enums

// NvLinkCapability is a queryable capability of an NvLink link.
type NvLinkCapability uint32

const (
	NvLinkCapP2PSupported NvLinkCapability = iota
	NvLinkCapSysMemAccess
	NvLinkCapP2PAtomics
	NvLinkCapSysMemAtomics
	NvLinkCapSLIBridge
	NvLinkCapValid
)

var nvLinkCapabilityNames = map[NvLinkCapability]string{
	NvLinkCapP2PSupported:  "NvLinkCapP2PSupported",
	NvLinkCapSysMemAccess:  "NvLinkCapSysMemAccess",
	NvLinkCapP2PAtomics:    "NvLinkCapP2PAtomics",
	NvLinkCapSysMemAtomics: "NvLinkCapSysMemAtomics",
	NvLinkCapSLIBridge:     "NvLinkCapSLIBridge",
	NvLinkCapValid:         "NvLinkCapValid",
}

func (c NvLinkCapability) String() string {
	if name, ok := nvLinkCapabilityNames[c]; ok {
		return name
	}
	return formatUnknown("NvLinkCapability", uint32(c))
}

// NvLinkErrorCounter is a queryable NvLink error counter.
type NvLinkErrorCounter uint32

const (
	NvLinkErrorReplay NvLinkErrorCounter = iota
	NvLinkErrorRecovery
	NvLinkErrorCRCFlit
	NvLinkErrorCRCData
)

var nvLinkErrorCounterNames = map[NvLinkErrorCounter]string{
	NvLinkErrorReplay:   "NvLinkErrorReplay",
	NvLinkErrorRecovery: "NvLinkErrorRecovery",
	NvLinkErrorCRCFlit:  "NvLinkErrorCRCFlit",
	NvLinkErrorCRCData:  "NvLinkErrorCRCData",
}

func (c NvLinkErrorCounter) String() string {
	if name, ok := nvLinkErrorCounterNames[c]; ok {
		return name
	}
	return formatUnknown("NvLinkErrorCounter", uint32(c))
}
