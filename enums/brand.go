package enums

// BrandType identifies the commercial brand of a device.
type BrandType uint32

const (
	BrandUnknown BrandType = iota
	BrandQuadro
	BrandTesla
	BrandNVS
	BrandGrid
	BrandGeForce
)

var brandTypeNames = map[BrandType]string{
	BrandUnknown: "BrandUnknown",
	BrandQuadro:  "BrandQuadro",
	BrandTesla:   "BrandTesla",
	BrandNVS:     "BrandNVS",
	BrandGrid:    "BrandGrid",
	BrandGeForce: "BrandGeForce",
}

func (b BrandType) String() string {
	if name, ok := brandTypeNames[b]; ok {
		return name
	}
	return formatUnknown("BrandType", uint32(b))
}
