package enums

// EnableState is the generic on/off state used by many device features
// (ECC, persistence mode, power management, ...).
type EnableState uint32

const (
	FeatureDisabled EnableState = iota
	FeatureEnabled
)

var enableStateNames = map[EnableState]string{
	FeatureDisabled: "FeatureDisabled",
	FeatureEnabled:  "FeatureEnabled",
}

func (s EnableState) String() string {
	if name, ok := enableStateNames[s]; ok {
		return name
	}
	return formatUnknown("EnableState", uint32(s))
}

// DriverModel is the Windows driver model; reported for completeness on
// other platforms where the native library returns it.
type DriverModel uint32

const (
	DriverModelWDDM DriverModel = iota
	DriverModelWDM
)

var driverModelNames = map[DriverModel]string{
	DriverModelWDDM: "DriverModelWDDM",
	DriverModelWDM:  "DriverModelWDM",
}

func (m DriverModel) String() string {
	if name, ok := driverModelNames[m]; ok {
		return name
	}
	return formatUnknown("DriverModel", uint32(m))
}

// InfoRom selects one of the infoROM objects on a device.
type InfoRom uint32

const (
	InfoRomOEM InfoRom = iota
	InfoRomECC
	InfoRomPower
)

var infoRomNames = map[InfoRom]string{
	InfoRomOEM:   "InfoRomOEM",
	InfoRomECC:   "InfoRomECC",
	InfoRomPower: "InfoRomPower",
}

func (i InfoRom) String() string {
	if name, ok := infoRomNames[i]; ok {
		return name
	}
	return formatUnknown("InfoRom", uint32(i))
}

// GpuOperationMode allows trading off some features for others (GOM).
type GpuOperationMode uint32

const (
	GpuOperationModeAllOn GpuOperationMode = iota
	GpuOperationModeCompute
	GpuOperationModeLowDP
)

var gpuOperationModeNames = map[GpuOperationMode]string{
	GpuOperationModeAllOn:   "GpuOperationModeAllOn",
	GpuOperationModeCompute: "GpuOperationModeCompute",
	GpuOperationModeLowDP:   "GpuOperationModeLowDP",
}

func (m GpuOperationMode) String() string {
	if name, ok := gpuOperationModeNames[m]; ok {
		return name
	}
	return formatUnknown("GpuOperationMode", uint32(m))
}

// GpuTopologyLevel describes the interconnect ancestry between two devices.
// Values are spaced apart in the header to leave room for new levels.
type GpuTopologyLevel uint32

const (
	TopologyInternal   GpuTopologyLevel = 0
	TopologySingle     GpuTopologyLevel = 10
	TopologyMultiple   GpuTopologyLevel = 20
	TopologyHostBridge GpuTopologyLevel = 30
	TopologyCPU        GpuTopologyLevel = 40
	TopologySystem     GpuTopologyLevel = 50
)

var gpuTopologyLevelNames = map[GpuTopologyLevel]string{
	TopologyInternal:   "TopologyInternal",
	TopologySingle:     "TopologySingle",
	TopologyMultiple:   "TopologyMultiple",
	TopologyHostBridge: "TopologyHostBridge",
	TopologyCPU:        "TopologyCPU",
	TopologySystem:     "TopologySystem",
}

func (l GpuTopologyLevel) String() string {
	if name, ok := gpuTopologyLevelNames[l]; ok {
		return name
	}
	return formatUnknown("GpuTopologyLevel", uint32(l))
}

// BridgeChipType identifies a PCIe bridge chip on multi-GPU boards.
type BridgeChipType uint32

const (
	BridgeChipPLX  BridgeChipType = 0
	BridgeChipBRO4 BridgeChipType = 1

	// MaxPhysicalBridge is the maximum number of physical bridges per board.
	MaxPhysicalBridge = 128
)

var bridgeChipTypeNames = map[BridgeChipType]string{
	BridgeChipPLX:  "BridgeChipPLX",
	BridgeChipBRO4: "BridgeChipBRO4",
}

func (t BridgeChipType) String() string {
	if name, ok := bridgeChipTypeNames[t]; ok {
		return name
	}
	return formatUnknown("BridgeChipType", uint32(t))
}
