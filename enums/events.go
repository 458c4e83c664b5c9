package enums

import (
	"fmt"
	"strings"
)

// EventType is the bitmask of device events a caller can subscribe to.
// Unlike the closed enum families, values combine with "|".
type EventType uint64

const (
	EventTypeNone              EventType = 0
	EventTypeSingleBitECCError EventType = 1
	EventTypeDoubleBitECCError EventType = 2
	EventTypePState            EventType = 4
	EventTypeXidCriticalError  EventType = 8
	EventTypeClock             EventType = 16

	EventTypeAll = EventTypeSingleBitECCError | EventTypeDoubleBitECCError |
		EventTypePState | EventTypeXidCriticalError | EventTypeClock
)

var eventTypeFlagNames = []struct {
	flag EventType
	name string
}{
	{EventTypeSingleBitECCError, "SingleBitECCError"},
	{EventTypeDoubleBitECCError, "DoubleBitECCError"},
	{EventTypePState, "PState"},
	{EventTypeXidCriticalError, "XidCriticalError"},
	{EventTypeClock, "Clock"},
}

// Has reports whether all bits of flag are set in t.
func (t EventType) Has(flag EventType) bool {
	return t&flag == flag
}

func (t EventType) String() string {
	if t == EventTypeNone {
		return "EventTypeNone"
	}
	var parts []string
	rest := t
	for _, f := range eventTypeFlagNames {
		if t.Has(f.flag) {
			parts = append(parts, f.name)
			rest &^= f.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("EventType(0x%x)", uint64(rest)))
	}
	return strings.Join(parts, "|")
}
