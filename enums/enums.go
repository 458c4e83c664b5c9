// Package enums holds the typed constant families mirroring the nvml.h
// enumerations, used by the gonvml binding at its input and output
// boundaries.
//
// Every family is a named uint32 (EventType and ThrottleReason are uint64
// bitmasks) whose values mirror the native header one to one. Converting a
// raw integer into a family never fails: unrecognized values are kept as-is
// and their String() prints the family name with the raw value, e.g.
// "BrandType(37)", so diagnostics never lose the original integer.
package enums

import "fmt"

// formatUnknown renders an out-of-range enum value, keeping the raw integer.
func formatUnknown(family string, raw uint32) string {
	return fmt.Sprintf("%s(%d)", family, raw)
}
