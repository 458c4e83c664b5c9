//go:build linux && cgo

package nvml

// Runtime loading of the NVML shared library with dlopen, adapted from the
// usual pattern of https://github.com/coreos/pkg/blob/main/dlopen (Apache
// 2.0).
//
// The struct mirrors and thunk signatures below follow the v4 nvml.h ABI.
// Every entry point is resolved once at Load time through one of the typed
// thunks, grouped by C signature; Go never calls a dlsym'd pointer
// directly.

// #cgo LDFLAGS: -ldl
/*
#include <stdlib.h>
#include <dlfcn.h>

typedef int gonvmlReturn;

// Struct mirrors of the nvml.h records crossing the boundary.

typedef struct {
	unsigned long long total, free, used;
} gonvmlMemory;

typedef struct {
	unsigned int gpu, memory;
} gonvmlUtilization;

typedef struct {
	char busId[16];
	unsigned int domain, bus, device, pciDeviceId, pciSubSystemId;
	unsigned int reserved0, reserved1, reserved2, reserved3;
} gonvmlPciInfo;

typedef struct {
	unsigned long long l1Cache, l2Cache, deviceMemory, registerFile;
} gonvmlEccErrorCounts;

typedef struct {
	unsigned long long referenceTime, violationTime;
} gonvmlViolationTime;

// The sample value is an 8-byte union (double / unsigned int / unsigned
// long long) carried here as raw bits; the Go side interprets them under
// the reported value type.
typedef struct {
	unsigned long long timeStamp;
	unsigned long long value;
} gonvmlSample;

typedef struct {
	void *device;
	unsigned long long eventType, eventData;
} gonvmlEventData;

typedef struct {
	char name[96], id[96], serial[96], firmwareVersion[96];
} gonvmlUnitInfo;

typedef struct {
	char cause[256];
	unsigned int color;
} gonvmlLedState;

typedef struct {
	char state[256];
	unsigned int current, voltage, power;
} gonvmlPSUInfo;

typedef struct {
	unsigned int speed, state;
} gonvmlUnitFanInfo;

typedef struct {
	gonvmlUnitFanInfo fans[24];
	unsigned int count;
} gonvmlUnitFanSpeeds;

// Typed thunks, one per native signature shape.

static gonvmlReturn gonvmlCall(void *fn) {
	return ((gonvmlReturn (*)(void))fn)();
}
static gonvmlReturn gonvmlCallBuf(void *fn, char *buf, unsigned int n) {
	return ((gonvmlReturn (*)(char *, unsigned int))fn)(buf, n);
}
static gonvmlReturn gonvmlCallUBuf(void *fn, unsigned int a, char *buf, unsigned int n) {
	return ((gonvmlReturn (*)(unsigned int, char *, unsigned int))fn)(a, buf, n);
}
static gonvmlReturn gonvmlCallUP(void *fn, unsigned int *out) {
	return ((gonvmlReturn (*)(unsigned int *))fn)(out);
}
static gonvmlReturn gonvmlCallUHP(void *fn, unsigned int a, void **out) {
	return ((gonvmlReturn (*)(unsigned int, void **))fn)(a, out);
}
static gonvmlReturn gonvmlCallSHP(void *fn, const char *s, void **out) {
	return ((gonvmlReturn (*)(const char *, void **))fn)(s, out);
}
static gonvmlReturn gonvmlCallH(void *fn, void *h) {
	return ((gonvmlReturn (*)(void *))fn)(h);
}
static gonvmlReturn gonvmlCallHP(void *fn, void **out) {
	return ((gonvmlReturn (*)(void **))fn)(out);
}
static gonvmlReturn gonvmlCallHBuf(void *fn, void *h, char *buf, unsigned int n) {
	return ((gonvmlReturn (*)(void *, char *, unsigned int))fn)(h, buf, n);
}
static gonvmlReturn gonvmlCallHU(void *fn, void *h, unsigned int a) {
	return ((gonvmlReturn (*)(void *, unsigned int))fn)(h, a);
}
static gonvmlReturn gonvmlCallHUU(void *fn, void *h, unsigned int a, unsigned int b) {
	return ((gonvmlReturn (*)(void *, unsigned int, unsigned int))fn)(h, a, b);
}
static gonvmlReturn gonvmlCallHUP(void *fn, void *h, unsigned int *out) {
	return ((gonvmlReturn (*)(void *, unsigned int *))fn)(h, out);
}
static gonvmlReturn gonvmlCallHUUP(void *fn, void *h, unsigned int a, unsigned int *out) {
	return ((gonvmlReturn (*)(void *, unsigned int, unsigned int *))fn)(h, a, out);
}
static gonvmlReturn gonvmlCallHUBuf(void *fn, void *h, unsigned int a, char *buf, unsigned int n) {
	return ((gonvmlReturn (*)(void *, unsigned int, char *, unsigned int))fn)(h, a, buf, n);
}
static gonvmlReturn gonvmlCallHUPUP(void *fn, void *h, unsigned int *a, unsigned int *b) {
	return ((gonvmlReturn (*)(void *, unsigned int *, unsigned int *))fn)(h, a, b);
}
static gonvmlReturn gonvmlCallHVP(void *fn, void *h, void *out) {
	return ((gonvmlReturn (*)(void *, void *))fn)(h, out);
}
static gonvmlReturn gonvmlCallHUVP(void *fn, void *h, unsigned int a, void *out) {
	return ((gonvmlReturn (*)(void *, unsigned int, void *))fn)(h, a, out);
}
static gonvmlReturn gonvmlCallHUUULLP(void *fn, void *h, unsigned int a, unsigned int b, unsigned long long *out) {
	return ((gonvmlReturn (*)(void *, unsigned int, unsigned int, unsigned long long *))fn)(h, a, b, out);
}
static gonvmlReturn gonvmlCallHUUVP(void *fn, void *h, unsigned int a, unsigned int b, void *out) {
	return ((gonvmlReturn (*)(void *, unsigned int, unsigned int, void *))fn)(h, a, b, out);
}
static gonvmlReturn gonvmlCallHHIP(void *fn, void *h1, void *h2, int *out) {
	return ((gonvmlReturn (*)(void *, void *, int *))fn)(h1, h2, out);
}
static gonvmlReturn gonvmlCallHULLP(void *fn, void *h, unsigned long long *out) {
	return ((gonvmlReturn (*)(void *, unsigned long long *))fn)(h, out);
}
static gonvmlReturn gonvmlCallHULLH(void *fn, void *h, unsigned long long a, void *h2) {
	return ((gonvmlReturn (*)(void *, unsigned long long, void *))fn)(h, a, h2);
}
static gonvmlReturn gonvmlCallRetiredPages(void *fn, void *h, unsigned int cause, unsigned int *count, unsigned long long *pages) {
	return ((gonvmlReturn (*)(void *, unsigned int, unsigned int *, unsigned long long *))fn)(h, cause, count, pages);
}
static gonvmlReturn gonvmlCallSamples(void *fn, void *h, unsigned int type, unsigned long long lastSeen, unsigned int *valueType, unsigned int *count, gonvmlSample *samples) {
	return ((gonvmlReturn (*)(void *, unsigned int, unsigned long long, unsigned int *, unsigned int *, gonvmlSample *))fn)(h, type, lastSeen, valueType, count, samples);
}
static gonvmlReturn gonvmlCallHUPP(void *fn, void *h, unsigned int *count, void **out) {
	return ((gonvmlReturn (*)(void *, unsigned int *, void **))fn)(h, count, out);
}
static gonvmlReturn gonvmlCallWait(void *fn, void *h, gonvmlEventData *data, unsigned int timeoutMs) {
	return ((gonvmlReturn (*)(void *, gonvmlEventData *, unsigned int))fn)(h, data, timeoutMs);
}
*/
import "C"
import (
	"unsafe"

	"github.com/pkg/errors"
)

// symbols every dynamicAPI method needs, resolved once at Load.
var requiredSymbols = []string{
	"nvmlInit",
	"nvmlShutdown",
	"nvmlSystemGetDriverVersion",
	"nvmlSystemGetNVMLVersion",
	"nvmlSystemGetProcessName",
	"nvmlDeviceGetCount",
	"nvmlDeviceGetHandleByIndex",
	"nvmlDeviceGetHandleByUUID",
	"nvmlDeviceGetHandleByPciBusId",
	"nvmlDeviceGetHandleBySerial",
	"nvmlDeviceGetName",
	"nvmlDeviceGetUUID",
	"nvmlDeviceGetSerial",
	"nvmlDeviceGetIndex",
	"nvmlDeviceGetBrand",
	"nvmlDeviceGetBoardId",
	"nvmlDeviceGetMinorNumber",
	"nvmlDeviceGetInforomVersion",
	"nvmlDeviceGetMemoryInfo",
	"nvmlDeviceGetBAR1MemoryInfo",
	"nvmlDeviceGetUtilizationRates",
	"nvmlDeviceGetFanSpeed",
	"nvmlDeviceGetTemperature",
	"nvmlDeviceGetTemperatureThreshold",
	"nvmlDeviceGetPowerUsage",
	"nvmlDeviceGetPowerState",
	"nvmlDeviceGetPowerManagementMode",
	"nvmlDeviceGetPowerManagementLimit",
	"nvmlDeviceGetPowerManagementLimitConstraints",
	"nvmlDeviceGetClockInfo",
	"nvmlDeviceGetMaxClockInfo",
	"nvmlDeviceGetApplicationsClock",
	"nvmlDeviceGetComputeMode",
	"nvmlDeviceSetComputeMode",
	"nvmlDeviceGetPersistenceMode",
	"nvmlDeviceSetPersistenceMode",
	"nvmlDeviceGetDisplayMode",
	"nvmlDeviceGetDisplayActive",
	"nvmlDeviceGetEccMode",
	"nvmlDeviceGetTotalEccErrors",
	"nvmlDeviceGetDetailedEccErrors",
	"nvmlDeviceGetPciInfo",
	"nvmlDeviceGetCurrPcieLinkGeneration",
	"nvmlDeviceGetCurrPcieLinkWidth",
	"nvmlDeviceGetPcieThroughput",
	"nvmlDeviceGetAPIRestriction",
	"nvmlDeviceSetAPIRestriction",
	"nvmlDeviceGetRetiredPages",
	"nvmlDeviceGetRetiredPagesPendingStatus",
	"nvmlDeviceGetSamples",
	"nvmlDeviceGetViolationStatus",
	"nvmlDeviceGetCurrentClocksThrottleReasons",
	"nvmlDeviceGetSupportedClocksThrottleReasons",
	"nvmlDeviceGetSupportedEventTypes",
	"nvmlDeviceRegisterEvents",
	"nvmlDeviceOnSameBoard",
	"nvmlUnitGetCount",
	"nvmlUnitGetHandleByIndex",
	"nvmlUnitGetUnitInfo",
	"nvmlUnitGetLedState",
	"nvmlUnitSetLedState",
	"nvmlUnitGetPsuInfo",
	"nvmlUnitGetTemperature",
	"nvmlUnitGetFanSpeedInfo",
	"nvmlUnitGetDevices",
	"nvmlEventSetCreate",
	"nvmlEventSetFree",
	"nvmlEventSetWait",
}

// dynamicAPI implements api with function pointers dlsym'd out of the NVML
// shared library. The dlopen handle is never dlclose'd: NVML keeps
// process-wide state and unloading it mid-process is not supported.
type dynamicAPI struct {
	symbols map[string]unsafe.Pointer
}

// loadAPI dlopen's the first candidate that resolves and binds the function
// table. A candidate that loads but lacks a required symbol fails the whole
// load with ErrFunctionNotFound rather than falling through: a partial NVML
// is a broken installation, not a search miss.
func loadAPI(candidates []string) (api, string, error) {
	var dlErrors []string
	for _, candidate := range candidates {
		nameC := C.CString(candidate)
		handle := C.dlopen(nameC, C.RTLD_NOW|C.RTLD_GLOBAL)
		C.free(unsafe.Pointer(nameC))
		if handle == nil {
			dlErrors = append(dlErrors, C.GoString(C.dlerror()))
			continue
		}
		a := &dynamicAPI{symbols: make(map[string]unsafe.Pointer, len(requiredSymbols))}
		for _, symbol := range requiredSymbols {
			symbolC := C.CString(symbol)
			C.dlerror()
			p := C.dlsym(handle, symbolC)
			dlErr := C.dlerror()
			C.free(unsafe.Pointer(symbolC))
			if dlErr != nil {
				return nil, "", errors.Wrapf(toError(ErrorFunctionNotFound),
					"loaded %q but it does not export %q: %s", candidate, symbol, C.GoString(dlErr))
			}
			a.symbols[symbol] = p
		}
		return a, candidate, nil
	}
	return nil, "", errors.Wrapf(toError(ErrorLibraryNotFound),
		"no NVML shared library found, tried %v (set %s to its location): %v",
		candidates, LibraryPathEnv, dlErrors)
}

func (a *dynamicAPI) fn(symbol string) unsafe.Pointer {
	return a.symbols[symbol]
}

// goString copies a NUL terminated C string out of buf.
func goString(buf []C.char) string {
	return C.GoString(&buf[0])
}

func (a *dynamicAPI) Init() Return {
	return Return(C.gonvmlCall(a.fn("nvmlInit")))
}

func (a *dynamicAPI) Shutdown() Return {
	return Return(C.gonvmlCall(a.fn("nvmlShutdown")))
}

func (a *dynamicAPI) systemString(symbol string, size int) (string, Return) {
	buf := make([]C.char, size)
	ret := Return(C.gonvmlCallBuf(a.fn(symbol), &buf[0], C.uint(size)))
	if ret != Success {
		return "", ret
	}
	return goString(buf), ret
}

func (a *dynamicAPI) SystemGetDriverVersion() (string, Return) {
	return a.systemString("nvmlSystemGetDriverVersion", systemDriverVersionBufferSize)
}

func (a *dynamicAPI) SystemGetNVMLVersion() (string, Return) {
	return a.systemString("nvmlSystemGetNVMLVersion", systemNVMLVersionBufferSize)
}

func (a *dynamicAPI) SystemGetProcessName(pid uint32) (string, Return) {
	buf := make([]C.char, systemProcessNameBufferSize)
	ret := Return(C.gonvmlCallUBuf(a.fn("nvmlSystemGetProcessName"), C.uint(pid), &buf[0], C.uint(len(buf))))
	if ret != Success {
		return "", ret
	}
	return goString(buf), ret
}

func (a *dynamicAPI) DeviceGetCount() (uint32, Return) {
	var count C.uint
	ret := Return(C.gonvmlCallUP(a.fn("nvmlDeviceGetCount"), &count))
	return uint32(count), ret
}

func (a *dynamicAPI) DeviceGetHandleByIndex(index uint32) (deviceHandle, Return) {
	var h unsafe.Pointer
	ret := Return(C.gonvmlCallUHP(a.fn("nvmlDeviceGetHandleByIndex"), C.uint(index), &h))
	return deviceHandle(uintptr(h)), ret
}

func (a *dynamicAPI) deviceByString(symbol, key string) (deviceHandle, Return) {
	keyC := C.CString(key)
	defer C.free(unsafe.Pointer(keyC))
	var h unsafe.Pointer
	ret := Return(C.gonvmlCallSHP(a.fn(symbol), keyC, &h))
	return deviceHandle(uintptr(h)), ret
}

func (a *dynamicAPI) DeviceGetHandleByUUID(uuid string) (deviceHandle, Return) {
	return a.deviceByString("nvmlDeviceGetHandleByUUID", uuid)
}

func (a *dynamicAPI) DeviceGetHandleByPciBusID(busID string) (deviceHandle, Return) {
	return a.deviceByString("nvmlDeviceGetHandleByPciBusId", busID)
}

func (a *dynamicAPI) DeviceGetHandleBySerial(serial string) (deviceHandle, Return) {
	return a.deviceByString("nvmlDeviceGetHandleBySerial", serial)
}

func (a *dynamicAPI) deviceString(symbol string, h deviceHandle, size int) (string, Return) {
	buf := make([]C.char, size)
	ret := Return(C.gonvmlCallHBuf(a.fn(symbol), unsafe.Pointer(uintptr(h)), &buf[0], C.uint(size)))
	if ret != Success {
		return "", ret
	}
	return goString(buf), ret
}

func (a *dynamicAPI) DeviceGetName(h deviceHandle) (string, Return) {
	return a.deviceString("nvmlDeviceGetName", h, deviceNameBufferSize)
}

func (a *dynamicAPI) DeviceGetUUID(h deviceHandle) (string, Return) {
	return a.deviceString("nvmlDeviceGetUUID", h, deviceUUIDBufferSize)
}

func (a *dynamicAPI) DeviceGetSerial(h deviceHandle) (string, Return) {
	return a.deviceString("nvmlDeviceGetSerial", h, deviceSerialBufferSize)
}

func (a *dynamicAPI) deviceUint(symbol string, h deviceHandle) (uint32, Return) {
	var out C.uint
	ret := Return(C.gonvmlCallHUP(a.fn(symbol), unsafe.Pointer(uintptr(h)), &out))
	return uint32(out), ret
}

func (a *dynamicAPI) deviceUintArg(symbol string, h deviceHandle, arg uint32) (uint32, Return) {
	var out C.uint
	ret := Return(C.gonvmlCallHUUP(a.fn(symbol), unsafe.Pointer(uintptr(h)), C.uint(arg), &out))
	return uint32(out), ret
}

func (a *dynamicAPI) DeviceGetIndex(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetIndex", h)
}

func (a *dynamicAPI) DeviceGetBrand(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetBrand", h)
}

func (a *dynamicAPI) DeviceGetBoardID(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetBoardId", h)
}

func (a *dynamicAPI) DeviceGetMinorNumber(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetMinorNumber", h)
}

func (a *dynamicAPI) DeviceGetInforomVersion(h deviceHandle, object uint32) (string, Return) {
	buf := make([]C.char, deviceInforomVersionBufferSize)
	ret := Return(C.gonvmlCallHUBuf(a.fn("nvmlDeviceGetInforomVersion"),
		unsafe.Pointer(uintptr(h)), C.uint(object), &buf[0], C.uint(len(buf))))
	if ret != Success {
		return "", ret
	}
	return goString(buf), ret
}

func (a *dynamicAPI) DeviceGetMemoryInfo(h deviceHandle) (Memory, Return) {
	var m C.gonvmlMemory
	ret := Return(C.gonvmlCallHVP(a.fn("nvmlDeviceGetMemoryInfo"), unsafe.Pointer(uintptr(h)), unsafe.Pointer(&m)))
	return Memory{Total: uint64(m.total), Free: uint64(m.free), Used: uint64(m.used)}, ret
}

func (a *dynamicAPI) DeviceGetBAR1MemoryInfo(h deviceHandle) (BAR1Memory, Return) {
	var m C.gonvmlMemory
	ret := Return(C.gonvmlCallHVP(a.fn("nvmlDeviceGetBAR1MemoryInfo"), unsafe.Pointer(uintptr(h)), unsafe.Pointer(&m)))
	return BAR1Memory{Total: uint64(m.total), Free: uint64(m.free), Used: uint64(m.used)}, ret
}

func (a *dynamicAPI) DeviceGetUtilizationRates(h deviceHandle) (Utilization, Return) {
	var u C.gonvmlUtilization
	ret := Return(C.gonvmlCallHVP(a.fn("nvmlDeviceGetUtilizationRates"), unsafe.Pointer(uintptr(h)), unsafe.Pointer(&u)))
	return Utilization{GPU: uint32(u.gpu), Memory: uint32(u.memory)}, ret
}

func (a *dynamicAPI) DeviceGetFanSpeed(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetFanSpeed", h)
}

func (a *dynamicAPI) DeviceGetTemperature(h deviceHandle, sensor uint32) (uint32, Return) {
	return a.deviceUintArg("nvmlDeviceGetTemperature", h, sensor)
}

func (a *dynamicAPI) DeviceGetTemperatureThreshold(h deviceHandle, threshold uint32) (uint32, Return) {
	return a.deviceUintArg("nvmlDeviceGetTemperatureThreshold", h, threshold)
}

func (a *dynamicAPI) DeviceGetPowerUsage(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetPowerUsage", h)
}

func (a *dynamicAPI) DeviceGetPowerState(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetPowerState", h)
}

func (a *dynamicAPI) DeviceGetPowerManagementMode(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetPowerManagementMode", h)
}

func (a *dynamicAPI) DeviceGetPowerManagementLimit(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetPowerManagementLimit", h)
}

func (a *dynamicAPI) DeviceGetPowerManagementLimitConstraints(h deviceHandle) (minLimit, maxLimit uint32, ret Return) {
	var lo, hi C.uint
	ret = Return(C.gonvmlCallHUPUP(a.fn("nvmlDeviceGetPowerManagementLimitConstraints"),
		unsafe.Pointer(uintptr(h)), &lo, &hi))
	return uint32(lo), uint32(hi), ret
}

func (a *dynamicAPI) DeviceGetClockInfo(h deviceHandle, clockType uint32) (uint32, Return) {
	return a.deviceUintArg("nvmlDeviceGetClockInfo", h, clockType)
}

func (a *dynamicAPI) DeviceGetMaxClockInfo(h deviceHandle, clockType uint32) (uint32, Return) {
	return a.deviceUintArg("nvmlDeviceGetMaxClockInfo", h, clockType)
}

func (a *dynamicAPI) DeviceGetApplicationsClock(h deviceHandle, clockType uint32) (uint32, Return) {
	return a.deviceUintArg("nvmlDeviceGetApplicationsClock", h, clockType)
}

func (a *dynamicAPI) DeviceGetComputeMode(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetComputeMode", h)
}

func (a *dynamicAPI) DeviceSetComputeMode(h deviceHandle, mode uint32) Return {
	return Return(C.gonvmlCallHU(a.fn("nvmlDeviceSetComputeMode"), unsafe.Pointer(uintptr(h)), C.uint(mode)))
}

func (a *dynamicAPI) DeviceGetPersistenceMode(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetPersistenceMode", h)
}

func (a *dynamicAPI) DeviceSetPersistenceMode(h deviceHandle, mode uint32) Return {
	return Return(C.gonvmlCallHU(a.fn("nvmlDeviceSetPersistenceMode"), unsafe.Pointer(uintptr(h)), C.uint(mode)))
}

func (a *dynamicAPI) DeviceGetDisplayMode(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetDisplayMode", h)
}

func (a *dynamicAPI) DeviceGetDisplayActive(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetDisplayActive", h)
}

func (a *dynamicAPI) DeviceGetEccMode(h deviceHandle) (current, pending uint32, ret Return) {
	var cur, pend C.uint
	ret = Return(C.gonvmlCallHUPUP(a.fn("nvmlDeviceGetEccMode"), unsafe.Pointer(uintptr(h)), &cur, &pend))
	return uint32(cur), uint32(pend), ret
}

func (a *dynamicAPI) DeviceGetTotalEccErrors(h deviceHandle, bits, counter uint32) (uint64, Return) {
	var count C.ulonglong
	ret := Return(C.gonvmlCallHUUULLP(a.fn("nvmlDeviceGetTotalEccErrors"),
		unsafe.Pointer(uintptr(h)), C.uint(bits), C.uint(counter), &count))
	return uint64(count), ret
}

func (a *dynamicAPI) DeviceGetDetailedEccErrors(h deviceHandle, bits, counter uint32) (EccErrorCounts, Return) {
	var counts C.gonvmlEccErrorCounts
	ret := Return(C.gonvmlCallHUUVP(a.fn("nvmlDeviceGetDetailedEccErrors"),
		unsafe.Pointer(uintptr(h)), C.uint(bits), C.uint(counter), unsafe.Pointer(&counts)))
	return EccErrorCounts{
		L1Cache:      uint64(counts.l1Cache),
		L2Cache:      uint64(counts.l2Cache),
		DeviceMemory: uint64(counts.deviceMemory),
		RegisterFile: uint64(counts.registerFile),
	}, ret
}

func (a *dynamicAPI) DeviceGetPciInfo(h deviceHandle) (PCIInfo, Return) {
	var info C.gonvmlPciInfo
	ret := Return(C.gonvmlCallHVP(a.fn("nvmlDeviceGetPciInfo"), unsafe.Pointer(uintptr(h)), unsafe.Pointer(&info)))
	if ret != Success {
		return PCIInfo{}, ret
	}
	return PCIInfo{
		BusID:          goString(info.busId[:]),
		Domain:         uint32(info.domain),
		Bus:            uint32(info.bus),
		Device:         uint32(info.device),
		PciDeviceID:    uint32(info.pciDeviceId),
		PciSubSystemID: uint32(info.pciSubSystemId),
	}, ret
}

func (a *dynamicAPI) DeviceGetCurrPcieLinkGeneration(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetCurrPcieLinkGeneration", h)
}

func (a *dynamicAPI) DeviceGetCurrPcieLinkWidth(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetCurrPcieLinkWidth", h)
}

func (a *dynamicAPI) DeviceGetPcieThroughput(h deviceHandle, counter uint32) (uint32, Return) {
	return a.deviceUintArg("nvmlDeviceGetPcieThroughput", h, counter)
}

func (a *dynamicAPI) DeviceGetAPIRestriction(h deviceHandle, apiType uint32) (uint32, Return) {
	return a.deviceUintArg("nvmlDeviceGetAPIRestriction", h, apiType)
}

func (a *dynamicAPI) DeviceSetAPIRestriction(h deviceHandle, apiType, state uint32) Return {
	return Return(C.gonvmlCallHUU(a.fn("nvmlDeviceSetAPIRestriction"),
		unsafe.Pointer(uintptr(h)), C.uint(apiType), C.uint(state)))
}

func (a *dynamicAPI) DeviceGetRetiredPages(h deviceHandle, cause uint32, buf []uint64) (int, Return) {
	count := C.uint(len(buf))
	var pages *C.ulonglong
	if len(buf) > 0 {
		pages = (*C.ulonglong)(unsafe.Pointer(&buf[0]))
	}
	ret := Return(C.gonvmlCallRetiredPages(a.fn("nvmlDeviceGetRetiredPages"),
		unsafe.Pointer(uintptr(h)), C.uint(cause), &count, pages))
	return int(count), ret
}

func (a *dynamicAPI) DeviceGetRetiredPagesPendingStatus(h deviceHandle) (uint32, Return) {
	return a.deviceUint("nvmlDeviceGetRetiredPagesPendingStatus", h)
}

func (a *dynamicAPI) DeviceGetSamples(h deviceHandle, samplingType uint32, lastSeen uint64, buf []rawSample) (valueType uint32, n int, ret Return) {
	count := C.uint(len(buf))
	var vt C.uint
	var samples *C.gonvmlSample
	if len(buf) > 0 {
		// rawSample and gonvmlSample share the same two-uint64 layout.
		samples = (*C.gonvmlSample)(unsafe.Pointer(&buf[0]))
	}
	ret = Return(C.gonvmlCallSamples(a.fn("nvmlDeviceGetSamples"),
		unsafe.Pointer(uintptr(h)), C.uint(samplingType), C.ulonglong(lastSeen), &vt, &count, samples))
	return uint32(vt), int(count), ret
}

func (a *dynamicAPI) DeviceGetViolationStatus(h deviceHandle, policy uint32) (ViolationTime, Return) {
	var v C.gonvmlViolationTime
	ret := Return(C.gonvmlCallHUVP(a.fn("nvmlDeviceGetViolationStatus"),
		unsafe.Pointer(uintptr(h)), C.uint(policy), unsafe.Pointer(&v)))
	return ViolationTime{ReferenceTime: uint64(v.referenceTime), ViolationTime: uint64(v.violationTime)}, ret
}

func (a *dynamicAPI) deviceMask(symbol string, h deviceHandle) (uint64, Return) {
	var mask C.ulonglong
	ret := Return(C.gonvmlCallHULLP(a.fn(symbol), unsafe.Pointer(uintptr(h)), &mask))
	return uint64(mask), ret
}

func (a *dynamicAPI) DeviceGetCurrentClocksThrottleReasons(h deviceHandle) (uint64, Return) {
	return a.deviceMask("nvmlDeviceGetCurrentClocksThrottleReasons", h)
}

func (a *dynamicAPI) DeviceGetSupportedClocksThrottleReasons(h deviceHandle) (uint64, Return) {
	return a.deviceMask("nvmlDeviceGetSupportedClocksThrottleReasons", h)
}

func (a *dynamicAPI) DeviceGetSupportedEventTypes(h deviceHandle) (uint64, Return) {
	return a.deviceMask("nvmlDeviceGetSupportedEventTypes", h)
}

func (a *dynamicAPI) DeviceRegisterEvents(h deviceHandle, types uint64, set eventSetHandle) Return {
	return Return(C.gonvmlCallHULLH(a.fn("nvmlDeviceRegisterEvents"),
		unsafe.Pointer(uintptr(h)), C.ulonglong(types), unsafe.Pointer(uintptr(set))))
}

func (a *dynamicAPI) DeviceOnSameBoard(h1, h2 deviceHandle) (bool, Return) {
	var same C.int
	ret := Return(C.gonvmlCallHHIP(a.fn("nvmlDeviceOnSameBoard"),
		unsafe.Pointer(uintptr(h1)), unsafe.Pointer(uintptr(h2)), &same))
	return same != 0, ret
}

func (a *dynamicAPI) UnitGetCount() (uint32, Return) {
	var count C.uint
	ret := Return(C.gonvmlCallUP(a.fn("nvmlUnitGetCount"), &count))
	return uint32(count), ret
}

func (a *dynamicAPI) UnitGetHandleByIndex(index uint32) (unitHandle, Return) {
	var h unsafe.Pointer
	ret := Return(C.gonvmlCallUHP(a.fn("nvmlUnitGetHandleByIndex"), C.uint(index), &h))
	return unitHandle(uintptr(h)), ret
}

func (a *dynamicAPI) UnitGetUnitInfo(h unitHandle) (UnitInfo, Return) {
	var info C.gonvmlUnitInfo
	ret := Return(C.gonvmlCallHVP(a.fn("nvmlUnitGetUnitInfo"), unsafe.Pointer(uintptr(h)), unsafe.Pointer(&info)))
	if ret != Success {
		return UnitInfo{}, ret
	}
	return UnitInfo{
		Name:            goString(info.name[:]),
		ID:              goString(info.id[:]),
		Serial:          goString(info.serial[:]),
		FirmwareVersion: goString(info.firmwareVersion[:]),
	}, ret
}

func (a *dynamicAPI) UnitGetLedState(h unitHandle) (cause string, color uint32, ret Return) {
	var state C.gonvmlLedState
	ret = Return(C.gonvmlCallHVP(a.fn("nvmlUnitGetLedState"), unsafe.Pointer(uintptr(h)), unsafe.Pointer(&state)))
	if ret != Success {
		return "", 0, ret
	}
	return goString(state.cause[:]), uint32(state.color), ret
}

func (a *dynamicAPI) UnitSetLedState(h unitHandle, color uint32) Return {
	return Return(C.gonvmlCallHU(a.fn("nvmlUnitSetLedState"), unsafe.Pointer(uintptr(h)), C.uint(color)))
}

func (a *dynamicAPI) UnitGetPsuInfo(h unitHandle) (PSUInfo, Return) {
	var info C.gonvmlPSUInfo
	ret := Return(C.gonvmlCallHVP(a.fn("nvmlUnitGetPsuInfo"), unsafe.Pointer(uintptr(h)), unsafe.Pointer(&info)))
	if ret != Success {
		return PSUInfo{}, ret
	}
	return PSUInfo{
		State:   goString(info.state[:]),
		Current: uint32(info.current),
		Voltage: uint32(info.voltage),
		Power:   uint32(info.power),
	}, ret
}

func (a *dynamicAPI) UnitGetTemperature(h unitHandle, kind uint32) (uint32, Return) {
	var out C.uint
	ret := Return(C.gonvmlCallHUUP(a.fn("nvmlUnitGetTemperature"), unsafe.Pointer(uintptr(h)), C.uint(kind), &out))
	return uint32(out), ret
}

func (a *dynamicAPI) UnitGetFanSpeedInfo(h unitHandle) ([]rawUnitFan, Return) {
	var speeds C.gonvmlUnitFanSpeeds
	ret := Return(C.gonvmlCallHVP(a.fn("nvmlUnitGetFanSpeedInfo"), unsafe.Pointer(uintptr(h)), unsafe.Pointer(&speeds)))
	if ret != Success {
		return nil, ret
	}
	count := int(speeds.count)
	if count > len(speeds.fans) {
		count = len(speeds.fans)
	}
	fans := make([]rawUnitFan, count)
	for i := 0; i < count; i++ {
		fans[i] = rawUnitFan{Speed: uint32(speeds.fans[i].speed), State: uint32(speeds.fans[i].state)}
	}
	return fans, ret
}

func (a *dynamicAPI) UnitGetDevices(h unitHandle) ([]deviceHandle, Return) {
	// Count-then-fill; units hold a handful of devices so one retry
	// tolerance is not needed here, the count query is exact.
	var count C.uint
	ret := Return(C.gonvmlCallHUPP(a.fn("nvmlUnitGetDevices"), unsafe.Pointer(uintptr(h)), &count, nil))
	if ret != Success && ret != ErrorInsufficientSize {
		return nil, ret
	}
	if count == 0 {
		return nil, Success
	}
	raw := make([]unsafe.Pointer, count)
	ret = Return(C.gonvmlCallHUPP(a.fn("nvmlUnitGetDevices"), unsafe.Pointer(uintptr(h)), &count, &raw[0]))
	if ret != Success {
		return nil, ret
	}
	handles := make([]deviceHandle, count)
	for i := range handles {
		handles[i] = deviceHandle(uintptr(raw[i]))
	}
	return handles, ret
}

func (a *dynamicAPI) EventSetCreate() (eventSetHandle, Return) {
	var h unsafe.Pointer
	ret := Return(C.gonvmlCallHP(a.fn("nvmlEventSetCreate"), &h))
	return eventSetHandle(uintptr(h)), ret
}

func (a *dynamicAPI) EventSetFree(h eventSetHandle) Return {
	return Return(C.gonvmlCallH(a.fn("nvmlEventSetFree"), unsafe.Pointer(uintptr(h))))
}

func (a *dynamicAPI) EventSetWait(h eventSetHandle, timeoutMs uint32) (rawEventData, Return) {
	var data C.gonvmlEventData
	ret := Return(C.gonvmlCallWait(a.fn("nvmlEventSetWait"),
		unsafe.Pointer(uintptr(h)), &data, C.uint(timeoutMs)))
	if ret != Success {
		return rawEventData{}, ret
	}
	return rawEventData{
		Device:    deviceHandle(uintptr(data.device)),
		EventType: uint64(data.eventType),
		EventData: uint64(data.eventData),
	}, ret
}
