package nvml

// Opaque native handles. The native library owns the pointed-to objects;
// these are only passed back into it, never dereferenced from Go.
type deviceHandle uintptr
type unitHandle uintptr
type eventSetHandle uintptr

// Fixed buffer sizes for string-returning calls, from nvml.h.
const (
	systemDriverVersionBufferSize  = 81
	systemNVMLVersionBufferSize    = 80
	systemProcessNameBufferSize    = 1024
	deviceNameBufferSize           = 64
	deviceUUIDBufferSize           = 80
	deviceSerialBufferSize         = 30
	deviceInforomVersionBufferSize = 16
)

// rawSample is the wire form of one sample record: a timestamp plus the
// 64-bit value union. The union arm is selected by the ValueType tag the
// sampling call reports; see decodeValue.
type rawSample struct {
	Timestamp uint64
	ValueBits uint64
}

// rawEventData is the wire form of an event-set wait result.
type rawEventData struct {
	Device    deviceHandle
	EventType uint64
	EventData uint64
}

// rawUnitFan mirrors nvmlUnitFanInfo_t: speed plus the raw fan state.
type rawUnitFan struct {
	Speed uint32
	State uint32
}

// api is the native function table, one method per wrapped NVML entry
// point. Enum-typed arguments and results cross this boundary as raw
// integers; projection to and from the typed families in the enums package
// happens in the callers. The production implementation resolves the table
// with dlopen/dlsym (see Load); tests substitute a fake.
type api interface {
	Init() Return
	Shutdown() Return

	SystemGetDriverVersion() (string, Return)
	SystemGetNVMLVersion() (string, Return)
	SystemGetProcessName(pid uint32) (string, Return)

	DeviceGetCount() (uint32, Return)
	DeviceGetHandleByIndex(index uint32) (deviceHandle, Return)
	DeviceGetHandleByUUID(uuid string) (deviceHandle, Return)
	DeviceGetHandleByPciBusID(busID string) (deviceHandle, Return)
	DeviceGetHandleBySerial(serial string) (deviceHandle, Return)

	DeviceGetName(h deviceHandle) (string, Return)
	DeviceGetUUID(h deviceHandle) (string, Return)
	DeviceGetSerial(h deviceHandle) (string, Return)
	DeviceGetIndex(h deviceHandle) (uint32, Return)
	DeviceGetBrand(h deviceHandle) (uint32, Return)
	DeviceGetBoardID(h deviceHandle) (uint32, Return)
	DeviceGetMinorNumber(h deviceHandle) (uint32, Return)
	DeviceGetInforomVersion(h deviceHandle, object uint32) (string, Return)
	DeviceGetMemoryInfo(h deviceHandle) (Memory, Return)
	DeviceGetBAR1MemoryInfo(h deviceHandle) (BAR1Memory, Return)
	DeviceGetUtilizationRates(h deviceHandle) (Utilization, Return)
	DeviceGetFanSpeed(h deviceHandle) (uint32, Return)
	DeviceGetTemperature(h deviceHandle, sensor uint32) (uint32, Return)
	DeviceGetTemperatureThreshold(h deviceHandle, threshold uint32) (uint32, Return)
	DeviceGetPowerUsage(h deviceHandle) (uint32, Return)
	DeviceGetPowerState(h deviceHandle) (uint32, Return)
	DeviceGetPowerManagementMode(h deviceHandle) (uint32, Return)
	DeviceGetPowerManagementLimit(h deviceHandle) (uint32, Return)
	DeviceGetPowerManagementLimitConstraints(h deviceHandle) (minLimit, maxLimit uint32, ret Return)
	DeviceGetClockInfo(h deviceHandle, clockType uint32) (uint32, Return)
	DeviceGetMaxClockInfo(h deviceHandle, clockType uint32) (uint32, Return)
	DeviceGetApplicationsClock(h deviceHandle, clockType uint32) (uint32, Return)
	DeviceGetComputeMode(h deviceHandle) (uint32, Return)
	DeviceSetComputeMode(h deviceHandle, mode uint32) Return
	DeviceGetPersistenceMode(h deviceHandle) (uint32, Return)
	DeviceSetPersistenceMode(h deviceHandle, mode uint32) Return
	DeviceGetDisplayMode(h deviceHandle) (uint32, Return)
	DeviceGetDisplayActive(h deviceHandle) (uint32, Return)
	DeviceGetEccMode(h deviceHandle) (current, pending uint32, ret Return)
	DeviceGetTotalEccErrors(h deviceHandle, bits, counter uint32) (uint64, Return)
	DeviceGetDetailedEccErrors(h deviceHandle, bits, counter uint32) (EccErrorCounts, Return)
	DeviceGetPciInfo(h deviceHandle) (PCIInfo, Return)
	DeviceGetCurrPcieLinkGeneration(h deviceHandle) (uint32, Return)
	DeviceGetCurrPcieLinkWidth(h deviceHandle) (uint32, Return)
	DeviceGetPcieThroughput(h deviceHandle, counter uint32) (uint32, Return)
	DeviceGetAPIRestriction(h deviceHandle, apiType uint32) (uint32, Return)
	DeviceSetAPIRestriction(h deviceHandle, apiType, state uint32) Return

	// DeviceGetRetiredPages and DeviceGetSamples follow the two-phase buffer
	// protocol: with a nil buffer they report the required element count and
	// ErrorInsufficientSize; with a large enough buffer they fill it and
	// report how many entries are valid.
	DeviceGetRetiredPages(h deviceHandle, cause uint32, buf []uint64) (int, Return)
	DeviceGetRetiredPagesPendingStatus(h deviceHandle) (uint32, Return)
	DeviceGetSamples(h deviceHandle, samplingType uint32, lastSeen uint64, buf []rawSample) (valueType uint32, n int, ret Return)
	DeviceGetViolationStatus(h deviceHandle, policy uint32) (ViolationTime, Return)
	DeviceGetCurrentClocksThrottleReasons(h deviceHandle) (uint64, Return)
	DeviceGetSupportedClocksThrottleReasons(h deviceHandle) (uint64, Return)

	DeviceGetSupportedEventTypes(h deviceHandle) (uint64, Return)
	DeviceRegisterEvents(h deviceHandle, types uint64, set eventSetHandle) Return
	DeviceOnSameBoard(h1, h2 deviceHandle) (bool, Return)

	UnitGetCount() (uint32, Return)
	UnitGetHandleByIndex(index uint32) (unitHandle, Return)
	UnitGetUnitInfo(h unitHandle) (UnitInfo, Return)
	UnitGetLedState(h unitHandle) (cause string, color uint32, ret Return)
	UnitSetLedState(h unitHandle, color uint32) Return
	UnitGetPsuInfo(h unitHandle) (PSUInfo, Return)
	UnitGetTemperature(h unitHandle, kind uint32) (uint32, Return)
	UnitGetFanSpeedInfo(h unitHandle) ([]rawUnitFan, Return)
	UnitGetDevices(h unitHandle) ([]deviceHandle, Return)

	EventSetCreate() (eventSetHandle, Return)
	EventSetFree(h eventSetHandle) Return
	EventSetWait(h eventSetHandle, timeoutMs uint32) (rawEventData, Return)
}
