package escl

import (
	"encoding/xml"
	"sort"
)

// DeviceCapabilities is an immutable snapshot of what the scanner supports,
// fetched once per run. PaperSizes holds the named sizes that physically fit
// the device's scan area, plus the "max" entry covering the whole area.
type DeviceCapabilities struct {
	Version      string
	MakeAndModel string
	SerialNumber string
	AdminURI     string

	ColorModes   []string
	Formats      []string
	XResolutions []int
	YResolutions []int
	MaxWidth     int
	MaxHeight    int
	PaperSizes   map[string]Extent
	InputSource  string
}

// SupportsColorMode reports membership in the advertised color mode set.
func (c *DeviceCapabilities) SupportsColorMode(mode string) bool {
	for _, m := range c.ColorModes {
		if m == mode {
			return true
		}
	}
	return false
}

// SupportsResolution reports whether the device supports res on both axes.
func (c *DeviceCapabilities) SupportsResolution(res int) bool {
	return containsInt(c.XResolutions, res) && containsInt(c.YResolutions, res)
}

// MaxResolution returns the highest resolution supported by both axes, or 0
// when the X and Y sets have no common value.
func (c *DeviceCapabilities) MaxResolution() int {
	common := make([]int, 0, len(c.XResolutions))
	for _, r := range c.XResolutions {
		if containsInt(c.YResolutions, r) {
			common = append(common, r)
		}
	}
	if len(common) == 0 {
		return 0
	}
	sort.Ints(common)
	return common[len(common)-1]
}

// PaperSizeNames returns the supported size names in stable order.
func (c *DeviceCapabilities) PaperSizeNames() []string {
	names := make([]string, 0, len(c.PaperSizes))
	for name := range c.PaperSizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Wire representation of the capability document. Only the required core is
// mapped; vendor extension elements are dropped by the decoder. Tag names
// carry no namespace so both the scan: and pwg: prefixed variants match.
type capabilitiesDoc struct {
	XMLName      xml.Name  `xml:"ScannerCapabilities"`
	Version      string    `xml:"Version"`
	MakeAndModel string    `xml:"MakeAndModel"`
	SerialNumber string    `xml:"SerialNumber"`
	AdminURI     string    `xml:"AdminURI"`
	Platen       platenDoc `xml:"Platen"`
}

type platenDoc struct {
	InputCaps inputCapsDoc `xml:"PlatenInputCaps"`
}

type inputCapsDoc struct {
	MaxWidth  int                 `xml:"MaxWidth"`
	MaxHeight int                 `xml:"MaxHeight"`
	Profiles  []settingProfileDoc `xml:"SettingProfiles>SettingProfile"`
}

type settingProfileDoc struct {
	ColorModes  []string        `xml:"ColorModes>ColorMode"`
	Formats     []string        `xml:"DocumentFormats>DocumentFormat"`
	Resolutions []resolutionDoc `xml:"SupportedResolutions>DiscreteResolutions>DiscreteResolution"`
}

type resolutionDoc struct {
	XResolution int `xml:"XResolution"`
	YResolution int `xml:"YResolution"`
}

// ParseCapabilities decodes a capability document into DeviceCapabilities.
// sizes is the client-side paper-size table; only entries that fit the
// device's maximum extents are kept. Returns MalformedCapabilitiesError when
// the document cannot be decoded or a required field is missing.
func ParseCapabilities(data []byte, sizes map[string]Extent) (*DeviceCapabilities, error) {
	var doc capabilitiesDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedCapabilitiesError{Detail: "not a capability document", Err: err}
	}

	caps := &DeviceCapabilities{
		Version:      doc.Version,
		MakeAndModel: doc.MakeAndModel,
		SerialNumber: doc.SerialNumber,
		AdminURI:     doc.AdminURI,
		MaxWidth:     doc.Platen.InputCaps.MaxWidth,
		MaxHeight:    doc.Platen.InputCaps.MaxHeight,
		InputSource:  InputSourcePlaten,
	}

	for _, profile := range doc.Platen.InputCaps.Profiles {
		caps.ColorModes = appendMissing(caps.ColorModes, profile.ColorModes...)
		caps.Formats = appendMissing(caps.Formats, profile.Formats...)
		for _, res := range profile.Resolutions {
			if !containsInt(caps.XResolutions, res.XResolution) {
				caps.XResolutions = append(caps.XResolutions, res.XResolution)
			}
			if !containsInt(caps.YResolutions, res.YResolution) {
				caps.YResolutions = append(caps.YResolutions, res.YResolution)
			}
		}
	}
	sort.Ints(caps.XResolutions)
	sort.Ints(caps.YResolutions)

	switch {
	case len(caps.ColorModes) == 0:
		return nil, &MalformedCapabilitiesError{Detail: "no color modes advertised"}
	case len(caps.Formats) == 0:
		return nil, &MalformedCapabilitiesError{Detail: "no document formats advertised"}
	case len(caps.XResolutions) == 0 || len(caps.YResolutions) == 0:
		return nil, &MalformedCapabilitiesError{Detail: "no resolutions advertised"}
	case caps.MaxWidth <= 0 || caps.MaxHeight <= 0:
		return nil, &MalformedCapabilitiesError{Detail: "no scan area extents advertised"}
	}

	caps.PaperSizes = map[string]Extent{
		PaperSizeMax: {Width: caps.MaxWidth, Height: caps.MaxHeight},
	}
	for name, extent := range sizes {
		if extent.Fits(caps.MaxWidth, caps.MaxHeight) {
			caps.PaperSizes[name] = extent
		}
	}

	return caps, nil
}

// PaperSizeMax selects the device's full scan area instead of a named size.
const PaperSizeMax = "max"

func appendMissing(dst []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, existing := range dst {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}
