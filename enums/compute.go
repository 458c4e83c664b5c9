package enums

// ComputeMode constrains how compute contexts may share a device.
type ComputeMode uint32

const (
	ComputeModeDefault ComputeMode = iota
	ComputeModeExclusiveThread
	ComputeModeProhibited
	ComputeModeExclusiveProcess
)

var computeModeNames = map[ComputeMode]string{
	ComputeModeDefault:          "ComputeModeDefault",
	ComputeModeExclusiveThread:  "ComputeModeExclusiveThread",
	ComputeModeProhibited:       "ComputeModeProhibited",
	ComputeModeExclusiveProcess: "ComputeModeExclusiveProcess",
}

func (m ComputeMode) String() string {
	if name, ok := computeModeNames[m]; ok {
		return name
	}
	return formatUnknown("ComputeMode", uint32(m))
}

// RestrictedAPI identifies an API whose use can be restricted to root.
type RestrictedAPI uint32

const (
	RestrictedAPISetApplicationClocks RestrictedAPI = iota
	RestrictedAPISetAutoBoostedClocks
)

var restrictedAPINames = map[RestrictedAPI]string{
	RestrictedAPISetApplicationClocks: "RestrictedAPISetApplicationClocks",
	RestrictedAPISetAutoBoostedClocks: "RestrictedAPISetAutoBoostedClocks",
}

func (a RestrictedAPI) String() string {
	if name, ok := restrictedAPINames[a]; ok {
		return name
	}
	return formatUnknown("RestrictedAPI", uint32(a))
}
