package enums

// PcieUtilCounter selects the transmit or receive PCIe throughput counter.
type PcieUtilCounter uint32

const (
	PcieUtilTXBytes PcieUtilCounter = iota
	PcieUtilRXBytes
)

var pcieUtilCounterNames = map[PcieUtilCounter]string{
	PcieUtilTXBytes: "PcieUtilTXBytes",
	PcieUtilRXBytes: "PcieUtilRXBytes",
}

func (c PcieUtilCounter) String() string {
	if name, ok := pcieUtilCounterNames[c]; ok {
		return name
	}
	return formatUnknown("PcieUtilCounter", uint32(c))
}

// PcieLinkState is the parent bridge PCIe link state requested when
// draining a GPU from the kernel.
type PcieLinkState uint32

const (
	PcieLinkKeep PcieLinkState = iota
	PcieLinkShutDown
)

var pcieLinkStateNames = map[PcieLinkState]string{
	PcieLinkKeep:     "PcieLinkKeep",
	PcieLinkShutDown: "PcieLinkShutDown",
}

func (s PcieLinkState) String() string {
	if name, ok := pcieLinkStateNames[s]; ok {
		return name
	}
	return formatUnknown("PcieLinkState", uint32(s))
}

// DetachGpuState says whether a drained GPU should be removed from the
// kernel.
type DetachGpuState uint32

const (
	DetachGpuKeep DetachGpuState = iota
	DetachGpuRemove
)

var detachGpuStateNames = map[DetachGpuState]string{
	DetachGpuKeep:   "DetachGpuKeep",
	DetachGpuRemove: "DetachGpuRemove",
}

func (s DetachGpuState) String() string {
	if name, ok := detachGpuStateNames[s]; ok {
		return name
	}
	return formatUnknown("DetachGpuState", uint32(s))
}
