package enums

// ClockType identifies which clock domain to query.
type ClockType uint32

const (
	ClockGraphics ClockType = iota
	ClockSM
	ClockMem
)

var clockTypeNames = map[ClockType]string{
	ClockGraphics: "ClockGraphics",
	ClockSM:       "ClockSM",
	ClockMem:      "ClockMem",
}

func (t ClockType) String() string {
	if name, ok := clockTypeNames[t]; ok {
		return name
	}
	return formatUnknown("ClockType", uint32(t))
}

// ClockID refines a ClockType query to a single clock value.
type ClockID uint32

const (
	// ClockIDCurrent is the current actual clock value.
	ClockIDCurrent ClockID = iota
	// ClockIDAppClockTarget is the target application clock.
	ClockIDAppClockTarget
	// ClockIDAppClockDefault is the default application clock target.
	ClockIDAppClockDefault
	// ClockIDCustomerBoostMax is the OEM-defined maximum clock rate.
	ClockIDCustomerBoostMax
)

var clockIDNames = map[ClockID]string{
	ClockIDCurrent:          "ClockIDCurrent",
	ClockIDAppClockTarget:   "ClockIDAppClockTarget",
	ClockIDAppClockDefault:  "ClockIDAppClockDefault",
	ClockIDCustomerBoostMax: "ClockIDCustomerBoostMax",
}

func (id ClockID) String() string {
	if name, ok := clockIDNames[id]; ok {
		return name
	}
	return formatUnknown("ClockID", uint32(id))
}
