package nvml

import (
	"fmt"

	"github.com/pkg/errors"
)

// Return is the raw status code every native NVML call reports. The values
// mirror nvmlReturn_t in nvml.h.
type Return uint32

const (
	Success Return = iota
	ErrorUninitialized
	ErrorInvalidArgument
	ErrorNotSupported
	ErrorNoPermission
	ErrorAlreadyInitialized
	ErrorNotFound
	ErrorInsufficientSize
	ErrorInsufficientPower
	ErrorDriverNotLoaded
	ErrorTimeout
	ErrorIRQIssue
	ErrorLibraryNotFound
	ErrorFunctionNotFound
	ErrorCorruptedInfoROM
	ErrorGPUIsLost
	ErrorResetRequired
	ErrorOperatingSystem
	ErrorLibRMVersionMismatch
	ErrorInUse
	ErrorMemory

	ErrorUnknown Return = 999
)

var returnNames = map[Return]string{
	Success:                   "Success",
	ErrorUninitialized:        "Uninitialized",
	ErrorInvalidArgument:      "InvalidArgument",
	ErrorNotSupported:         "NotSupported",
	ErrorNoPermission:         "NoPermission",
	ErrorAlreadyInitialized:   "AlreadyInitialized",
	ErrorNotFound:             "NotFound",
	ErrorInsufficientSize:     "InsufficientSize",
	ErrorInsufficientPower:    "InsufficientPower",
	ErrorDriverNotLoaded:      "DriverNotLoaded",
	ErrorTimeout:              "Timeout",
	ErrorIRQIssue:             "IRQIssue",
	ErrorLibraryNotFound:      "LibraryNotFound",
	ErrorFunctionNotFound:     "FunctionNotFound",
	ErrorCorruptedInfoROM:     "CorruptedInfoROM",
	ErrorGPUIsLost:            "GPUIsLost",
	ErrorResetRequired:        "ResetRequired",
	ErrorOperatingSystem:      "OperatingSystem",
	ErrorLibRMVersionMismatch: "LibRMVersionMismatch",
	ErrorInUse:                "InUse",
	ErrorMemory:               "Memory",
	ErrorUnknown:              "Unknown",
}

func (r Return) String() string {
	if name, ok := returnNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Return(%d)", uint32(r))
}

// Error is a typed NVML failure. It carries the raw status code, so even
// codes this package does not recognize stay diagnosable.
type Error struct {
	Code Return
}

func (e *Error) Error() string {
	return fmt.Sprintf("nvml: %s (code=%d)", e.Code, uint32(e.Code))
}

// Is matches two Errors by code, so errors.Is(err, ErrNotFound) works across
// the pkg/errors wrapping applied by toError.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for every recognized status code. Compare with errors.Is.
var (
	ErrUninitialized        = &Error{Code: ErrorUninitialized}
	ErrInvalidArgument      = &Error{Code: ErrorInvalidArgument}
	ErrNotSupported         = &Error{Code: ErrorNotSupported}
	ErrNoPermission         = &Error{Code: ErrorNoPermission}
	ErrAlreadyInitialized   = &Error{Code: ErrorAlreadyInitialized}
	ErrNotFound             = &Error{Code: ErrorNotFound}
	ErrInsufficientSize     = &Error{Code: ErrorInsufficientSize}
	ErrInsufficientPower    = &Error{Code: ErrorInsufficientPower}
	ErrDriverNotLoaded      = &Error{Code: ErrorDriverNotLoaded}
	ErrTimeout              = &Error{Code: ErrorTimeout}
	ErrIRQIssue             = &Error{Code: ErrorIRQIssue}
	ErrLibraryNotFound      = &Error{Code: ErrorLibraryNotFound}
	ErrFunctionNotFound     = &Error{Code: ErrorFunctionNotFound}
	ErrCorruptedInfoROM     = &Error{Code: ErrorCorruptedInfoROM}
	ErrGPUIsLost            = &Error{Code: ErrorGPUIsLost}
	ErrResetRequired        = &Error{Code: ErrorResetRequired}
	ErrOperatingSystem      = &Error{Code: ErrorOperatingSystem}
	ErrLibRMVersionMismatch = &Error{Code: ErrorLibRMVersionMismatch}
	ErrInUse                = &Error{Code: ErrorInUse}
	ErrMemory               = &Error{Code: ErrorMemory}
	ErrUnknown              = &Error{Code: ErrorUnknown}
)

// toError converts a raw status code to a Go error, with a stack trace (see
// github.com/pkg/errors package). Success maps to nil; every other code,
// recognized or not, maps to an *Error carrying the code. This is the single
// funnel all wrapped calls report through.
func toError(ret Return) error {
	if ret == Success {
		return nil
	}
	return errors.WithStack(&Error{Code: ret})
}

// CodeOf extracts the status code from an error returned by this package.
// Returns ErrorUnknown, false if err carries no *Error.
func CodeOf(err error) (Return, bool) {
	var nvmlErr *Error
	if errors.As(err, &nvmlErr) {
		return nvmlErr.Code, true
	}
	return ErrorUnknown, false
}
