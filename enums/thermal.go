package enums

// TemperatureSensor selects the sensor queried by Device.Temperature.
type TemperatureSensor uint32

const (
	// TemperatureGPU is the on-die GPU sensor, the only one the native
	// header defines so far.
	TemperatureGPU TemperatureSensor = 0
)

var temperatureSensorNames = map[TemperatureSensor]string{
	TemperatureGPU: "TemperatureGPU",
}

func (s TemperatureSensor) String() string {
	if name, ok := temperatureSensorNames[s]; ok {
		return name
	}
	return formatUnknown("TemperatureSensor", uint32(s))
}

// TemperatureThreshold selects one of the device thermal thresholds.
type TemperatureThreshold uint32

const (
	TemperatureThresholdShutdown TemperatureThreshold = iota
	TemperatureThresholdSlowdown
)

var temperatureThresholdNames = map[TemperatureThreshold]string{
	TemperatureThresholdShutdown: "TemperatureThresholdShutdown",
	TemperatureThresholdSlowdown: "TemperatureThresholdSlowdown",
}

func (t TemperatureThreshold) String() string {
	if name, ok := temperatureThresholdNames[t]; ok {
		return name
	}
	return formatUnknown("TemperatureThreshold", uint32(t))
}

// UnitTemperatureType selects one of the temperature readings available on
// an S-class unit.
type UnitTemperatureType uint32

const (
	UnitTemperatureIntake UnitTemperatureType = iota
	UnitTemperatureExhaust
	UnitTemperatureBoard
)

var unitTemperatureTypeNames = map[UnitTemperatureType]string{
	UnitTemperatureIntake:  "UnitTemperatureIntake",
	UnitTemperatureExhaust: "UnitTemperatureExhaust",
	UnitTemperatureBoard:   "UnitTemperatureBoard",
}

func (t UnitTemperatureType) String() string {
	if name, ok := unitTemperatureTypeNames[t]; ok {
		return name
	}
	return formatUnknown("UnitTemperatureType", uint32(t))
}

// FanState reports the health of a fan.
type FanState uint32

const (
	FanNormal FanState = iota
	FanFailed
)

var fanStateNames = map[FanState]string{
	FanNormal: "FanNormal",
	FanFailed: "FanFailed",
}

func (s FanState) String() string {
	if name, ok := fanStateNames[s]; ok {
		return name
	}
	return formatUnknown("FanState", uint32(s))
}

// LedColor is the color of an S-class unit LED.
type LedColor uint32

const (
	LedGreen LedColor = iota
	LedAmber
)

var ledColorNames = map[LedColor]string{
	LedGreen: "LedGreen",
	LedAmber: "LedAmber",
}

func (c LedColor) String() string {
	if name, ok := ledColorNames[c]; ok {
		return name
	}
	return formatUnknown("LedColor", uint32(c))
}
