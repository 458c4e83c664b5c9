package nvml

import (
	"sync"
)

var _ api = (*fakeAPI)(nil)

// fakeDevice is the state behind one device handle of fakeAPI.
type fakeDevice struct {
	name   string
	uuid   string
	serial string
	busID  string
	brand  uint32

	boardID     uint32
	minorNumber uint32

	memory      Memory
	bar1        BAR1Memory
	utilization Utilization
	pci         PCIInfo

	fanSpeed   uint32
	temps      map[uint32]uint32
	thresholds map[uint32]uint32

	powerUsage uint32
	powerState uint32
	powerLimit uint32
	powerMin   uint32
	powerMax   uint32

	clocks    map[uint32]uint32
	maxClocks map[uint32]uint32
	appClocks map[uint32]uint32

	computeMode     uint32
	persistenceMode uint32
	displayMode     uint32
	displayActive   uint32
	powerMgmtMode   uint32

	eccCurrent  uint32
	eccPending  uint32
	eccTotals   map[[2]uint32]uint64
	eccDetailed map[[2]uint32]EccErrorCounts

	pcieLinkGen   uint32
	pcieLinkWidth uint32
	pcieCounters  map[uint32]uint32

	apiRestrictions map[uint32]uint32

	inforomVersions map[uint32]string

	retiredPages        map[uint32][]uint64
	retiredPagesPending uint32

	sampleValueType uint32
	samples         []rawSample

	violations map[uint32]ViolationTime

	supportedEvents uint64
	registered      uint64

	currentThrottle   uint64
	supportedThrottle uint64
}

// fakeUnit is the state behind one unit handle of fakeAPI.
type fakeUnit struct {
	info     UnitInfo
	ledCause string
	ledColor uint32
	psu      PSUInfo
	temps    map[uint32]uint32
	fans     []rawUnitFan
	devices  []uint32 // device indices
}

// fakeAPI is an in-memory function table for tests. Handles encode the
// index into the backing slice plus one, so the zero handle stays invalid.
// The zero value works; populate devices and units as needed. Individual
// entry points are forced to fail through the fail map, keyed by the api
// method name. For behaviors the map cannot express, embed fakeAPI in a
// test-local type and override the method.
type fakeAPI struct {
	mu sync.Mutex

	initCalls     int
	shutdownCalls int
	initReturn    Return

	devices []*fakeDevice
	units   []*fakeUnit

	eventSets    map[eventSetHandle]bool
	nextEventSet uintptr
	freedSets    []eventSetHandle
	events       []rawEventData

	fail map[string]Return
}

func (f *fakeAPI) failWith(method string, ret Return) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail == nil {
		f.fail = make(map[string]Return)
	}
	f.fail[method] = ret
}

func (f *fakeAPI) forced(method string) (Return, bool) {
	ret, ok := f.fail[method]
	return ret, ok
}

func (f *fakeAPI) device(h deviceHandle) (*fakeDevice, Return) {
	i := int(h) - 1
	if i < 0 || i >= len(f.devices) {
		return nil, ErrorInvalidArgument
	}
	return f.devices[i], Success
}

func (f *fakeAPI) unit(h unitHandle) (*fakeUnit, Return) {
	i := int(h) - 1
	if i < 0 || i >= len(f.units) {
		return nil, ErrorInvalidArgument
	}
	return f.units[i], Success
}

func (f *fakeAPI) Init() Return {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initCalls++
	return f.initReturn
}

func (f *fakeAPI) Shutdown() Return {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdownCalls++
	return Success
}

func (f *fakeAPI) SystemGetDriverVersion() (string, Return) {
	if ret, ok := f.forced("SystemGetDriverVersion"); ok {
		return "", ret
	}
	return "570.124.06", Success
}

func (f *fakeAPI) SystemGetNVMLVersion() (string, Return) {
	if ret, ok := f.forced("SystemGetNVMLVersion"); ok {
		return "", ret
	}
	return "12.570.124", Success
}

func (f *fakeAPI) SystemGetProcessName(pid uint32) (string, Return) {
	if ret, ok := f.forced("SystemGetProcessName"); ok {
		return "", ret
	}
	if pid == 0 {
		return "", ErrorNotFound
	}
	return "python3", Success
}

func (f *fakeAPI) DeviceGetCount() (uint32, Return) {
	if ret, ok := f.forced("DeviceGetCount"); ok {
		return 0, ret
	}
	return uint32(len(f.devices)), Success
}

func (f *fakeAPI) DeviceGetHandleByIndex(index uint32) (deviceHandle, Return) {
	if ret, ok := f.forced("DeviceGetHandleByIndex"); ok {
		return 0, ret
	}
	if int(index) >= len(f.devices) {
		return 0, ErrorInvalidArgument
	}
	return deviceHandle(index + 1), Success
}

func (f *fakeAPI) DeviceGetHandleByUUID(uuid string) (deviceHandle, Return) {
	for i, d := range f.devices {
		if d.uuid == uuid {
			return deviceHandle(i + 1), Success
		}
	}
	return 0, ErrorNotFound
}

func (f *fakeAPI) DeviceGetHandleByPciBusID(busID string) (deviceHandle, Return) {
	for i, d := range f.devices {
		if d.busID == busID {
			return deviceHandle(i + 1), Success
		}
	}
	return 0, ErrorNotFound
}

func (f *fakeAPI) DeviceGetHandleBySerial(serial string) (deviceHandle, Return) {
	for i, d := range f.devices {
		if d.serial == serial {
			return deviceHandle(i + 1), Success
		}
	}
	return 0, ErrorNotFound
}

func (f *fakeAPI) DeviceGetName(h deviceHandle) (string, Return) {
	if ret, ok := f.forced("DeviceGetName"); ok {
		return "", ret
	}
	d, ret := f.device(h)
	if ret != Success {
		return "", ret
	}
	return d.name, Success
}

func (f *fakeAPI) DeviceGetUUID(h deviceHandle) (string, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return "", ret
	}
	return d.uuid, Success
}

func (f *fakeAPI) DeviceGetSerial(h deviceHandle) (string, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return "", ret
	}
	return d.serial, Success
}

func (f *fakeAPI) DeviceGetIndex(h deviceHandle) (uint32, Return) {
	if _, ret := f.device(h); ret != Success {
		return 0, ret
	}
	return uint32(h) - 1, Success
}

func (f *fakeAPI) DeviceGetBrand(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.brand, Success
}

func (f *fakeAPI) DeviceGetBoardID(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.boardID, Success
}

func (f *fakeAPI) DeviceGetMinorNumber(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.minorNumber, Success
}

func (f *fakeAPI) DeviceGetInforomVersion(h deviceHandle, object uint32) (string, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return "", ret
	}
	version, ok := d.inforomVersions[object]
	if !ok {
		return "", ErrorNotSupported
	}
	return version, Success
}

func (f *fakeAPI) DeviceGetMemoryInfo(h deviceHandle) (Memory, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return Memory{}, ret
	}
	return d.memory, Success
}

func (f *fakeAPI) DeviceGetBAR1MemoryInfo(h deviceHandle) (BAR1Memory, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return BAR1Memory{}, ret
	}
	return d.bar1, Success
}

func (f *fakeAPI) DeviceGetUtilizationRates(h deviceHandle) (Utilization, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return Utilization{}, ret
	}
	return d.utilization, Success
}

func (f *fakeAPI) DeviceGetFanSpeed(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.fanSpeed, Success
}

func (f *fakeAPI) DeviceGetTemperature(h deviceHandle, sensor uint32) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	temp, ok := d.temps[sensor]
	if !ok {
		return 0, ErrorNotSupported
	}
	return temp, Success
}

func (f *fakeAPI) DeviceGetTemperatureThreshold(h deviceHandle, threshold uint32) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	temp, ok := d.thresholds[threshold]
	if !ok {
		return 0, ErrorNotSupported
	}
	return temp, Success
}

func (f *fakeAPI) DeviceGetPowerUsage(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.powerUsage, Success
}

func (f *fakeAPI) DeviceGetPowerState(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.powerState, Success
}

func (f *fakeAPI) DeviceGetPowerManagementMode(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.powerMgmtMode, Success
}

func (f *fakeAPI) DeviceGetPowerManagementLimit(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.powerLimit, Success
}

func (f *fakeAPI) DeviceGetPowerManagementLimitConstraints(h deviceHandle) (minLimit, maxLimit uint32, ret Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, 0, ret
	}
	return d.powerMin, d.powerMax, Success
}

func (f *fakeAPI) DeviceGetClockInfo(h deviceHandle, clockType uint32) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.clocks[clockType], Success
}

func (f *fakeAPI) DeviceGetMaxClockInfo(h deviceHandle, clockType uint32) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.maxClocks[clockType], Success
}

func (f *fakeAPI) DeviceGetApplicationsClock(h deviceHandle, clockType uint32) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.appClocks[clockType], Success
}

func (f *fakeAPI) DeviceGetComputeMode(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.computeMode, Success
}

func (f *fakeAPI) DeviceSetComputeMode(h deviceHandle, mode uint32) Return {
	if ret, ok := f.forced("DeviceSetComputeMode"); ok {
		return ret
	}
	d, ret := f.device(h)
	if ret != Success {
		return ret
	}
	d.computeMode = mode
	return Success
}

func (f *fakeAPI) DeviceGetPersistenceMode(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.persistenceMode, Success
}

func (f *fakeAPI) DeviceSetPersistenceMode(h deviceHandle, mode uint32) Return {
	if ret, ok := f.forced("DeviceSetPersistenceMode"); ok {
		return ret
	}
	d, ret := f.device(h)
	if ret != Success {
		return ret
	}
	d.persistenceMode = mode
	return Success
}

func (f *fakeAPI) DeviceGetDisplayMode(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.displayMode, Success
}

func (f *fakeAPI) DeviceGetDisplayActive(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.displayActive, Success
}

func (f *fakeAPI) DeviceGetEccMode(h deviceHandle) (current, pending uint32, ret Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, 0, ret
	}
	return d.eccCurrent, d.eccPending, Success
}

func (f *fakeAPI) DeviceGetTotalEccErrors(h deviceHandle, bits, counter uint32) (uint64, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.eccTotals[[2]uint32{bits, counter}], Success
}

func (f *fakeAPI) DeviceGetDetailedEccErrors(h deviceHandle, bits, counter uint32) (EccErrorCounts, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return EccErrorCounts{}, ret
	}
	return d.eccDetailed[[2]uint32{bits, counter}], Success
}

func (f *fakeAPI) DeviceGetPciInfo(h deviceHandle) (PCIInfo, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return PCIInfo{}, ret
	}
	return d.pci, Success
}

func (f *fakeAPI) DeviceGetCurrPcieLinkGeneration(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.pcieLinkGen, Success
}

func (f *fakeAPI) DeviceGetCurrPcieLinkWidth(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.pcieLinkWidth, Success
}

func (f *fakeAPI) DeviceGetPcieThroughput(h deviceHandle, counter uint32) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.pcieCounters[counter], Success
}

func (f *fakeAPI) DeviceGetAPIRestriction(h deviceHandle, apiType uint32) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.apiRestrictions[apiType], Success
}

func (f *fakeAPI) DeviceSetAPIRestriction(h deviceHandle, apiType, state uint32) Return {
	if ret, ok := f.forced("DeviceSetAPIRestriction"); ok {
		return ret
	}
	d, ret := f.device(h)
	if ret != Success {
		return ret
	}
	if d.apiRestrictions == nil {
		d.apiRestrictions = make(map[uint32]uint32)
	}
	d.apiRestrictions[apiType] = state
	return Success
}

func (f *fakeAPI) DeviceGetRetiredPages(h deviceHandle, cause uint32, buf []uint64) (int, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	pages := d.retiredPages[cause]
	if len(buf) < len(pages) {
		return len(pages), ErrorInsufficientSize
	}
	copy(buf, pages)
	return len(pages), Success
}

func (f *fakeAPI) DeviceGetRetiredPagesPendingStatus(h deviceHandle) (uint32, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.retiredPagesPending, Success
}

func (f *fakeAPI) DeviceGetSamples(h deviceHandle, samplingType uint32, lastSeen uint64, buf []rawSample) (valueType uint32, n int, ret Return) {
	if forced, ok := f.forced("DeviceGetSamples"); ok {
		return 0, 0, forced
	}
	d, ret := f.device(h)
	if ret != Success {
		return 0, 0, ret
	}
	var newer []rawSample
	for _, s := range d.samples {
		if s.Timestamp > lastSeen {
			newer = append(newer, s)
		}
	}
	if len(newer) == 0 {
		return d.sampleValueType, 0, ErrorNotFound
	}
	if len(buf) < len(newer) {
		return d.sampleValueType, len(newer), ErrorInsufficientSize
	}
	copy(buf, newer)
	return d.sampleValueType, len(newer), Success
}

func (f *fakeAPI) DeviceGetViolationStatus(h deviceHandle, policy uint32) (ViolationTime, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return ViolationTime{}, ret
	}
	return d.violations[policy], Success
}

func (f *fakeAPI) DeviceGetCurrentClocksThrottleReasons(h deviceHandle) (uint64, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.currentThrottle, Success
}

func (f *fakeAPI) DeviceGetSupportedClocksThrottleReasons(h deviceHandle) (uint64, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.supportedThrottle, Success
}

func (f *fakeAPI) DeviceGetSupportedEventTypes(h deviceHandle) (uint64, Return) {
	d, ret := f.device(h)
	if ret != Success {
		return 0, ret
	}
	return d.supportedEvents, Success
}

func (f *fakeAPI) DeviceRegisterEvents(h deviceHandle, types uint64, set eventSetHandle) Return {
	d, ret := f.device(h)
	if ret != Success {
		return ret
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.eventSets[set] {
		return ErrorInvalidArgument
	}
	if types&^d.supportedEvents != 0 {
		return ErrorNotSupported
	}
	d.registered |= types
	return Success
}

func (f *fakeAPI) DeviceOnSameBoard(h1, h2 deviceHandle) (bool, Return) {
	d1, ret := f.device(h1)
	if ret != Success {
		return false, ret
	}
	d2, ret := f.device(h2)
	if ret != Success {
		return false, ret
	}
	return d1.boardID == d2.boardID, Success
}

func (f *fakeAPI) UnitGetCount() (uint32, Return) {
	if ret, ok := f.forced("UnitGetCount"); ok {
		return 0, ret
	}
	return uint32(len(f.units)), Success
}

func (f *fakeAPI) UnitGetHandleByIndex(index uint32) (unitHandle, Return) {
	if int(index) >= len(f.units) {
		return 0, ErrorInvalidArgument
	}
	return unitHandle(index + 1), Success
}

func (f *fakeAPI) UnitGetUnitInfo(h unitHandle) (UnitInfo, Return) {
	u, ret := f.unit(h)
	if ret != Success {
		return UnitInfo{}, ret
	}
	return u.info, Success
}

func (f *fakeAPI) UnitGetLedState(h unitHandle) (cause string, color uint32, ret Return) {
	u, ret := f.unit(h)
	if ret != Success {
		return "", 0, ret
	}
	return u.ledCause, u.ledColor, Success
}

func (f *fakeAPI) UnitSetLedState(h unitHandle, color uint32) Return {
	if ret, ok := f.forced("UnitSetLedState"); ok {
		return ret
	}
	u, ret := f.unit(h)
	if ret != Success {
		return ret
	}
	u.ledColor = color
	return Success
}

func (f *fakeAPI) UnitGetPsuInfo(h unitHandle) (PSUInfo, Return) {
	u, ret := f.unit(h)
	if ret != Success {
		return PSUInfo{}, ret
	}
	return u.psu, Success
}

func (f *fakeAPI) UnitGetTemperature(h unitHandle, kind uint32) (uint32, Return) {
	u, ret := f.unit(h)
	if ret != Success {
		return 0, ret
	}
	temp, ok := u.temps[kind]
	if !ok {
		return 0, ErrorNotSupported
	}
	return temp, Success
}

func (f *fakeAPI) UnitGetFanSpeedInfo(h unitHandle) ([]rawUnitFan, Return) {
	u, ret := f.unit(h)
	if ret != Success {
		return nil, ret
	}
	return u.fans, Success
}

func (f *fakeAPI) UnitGetDevices(h unitHandle) ([]deviceHandle, Return) {
	u, ret := f.unit(h)
	if ret != Success {
		return nil, ret
	}
	handles := make([]deviceHandle, len(u.devices))
	for i, index := range u.devices {
		handles[i] = deviceHandle(index + 1)
	}
	return handles, Success
}

func (f *fakeAPI) EventSetCreate() (eventSetHandle, Return) {
	if ret, ok := f.forced("EventSetCreate"); ok {
		return 0, ret
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.eventSets == nil {
		f.eventSets = make(map[eventSetHandle]bool)
	}
	f.nextEventSet++
	h := eventSetHandle(f.nextEventSet)
	f.eventSets[h] = true
	return h, Success
}

func (f *fakeAPI) EventSetFree(h eventSetHandle) Return {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.eventSets[h] {
		return ErrorInvalidArgument
	}
	delete(f.eventSets, h)
	f.freedSets = append(f.freedSets, h)
	return Success
}

func (f *fakeAPI) EventSetWait(h eventSetHandle, timeoutMs uint32) (rawEventData, Return) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.eventSets[h] {
		return rawEventData{}, ErrorInvalidArgument
	}
	if len(f.events) == 0 {
		return rawEventData{}, ErrorTimeout
	}
	event := f.events[0]
	f.events = f.events[1:]
	return event, Success
}
