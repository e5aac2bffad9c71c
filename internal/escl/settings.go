package escl

import (
	"encoding/xml"
	"fmt"
)

// ScanSettings is the job creation document POSTed to the device. Prefixed
// tag names are emitted literally; the xmlns attributes bind them.
type ScanSettings struct {
	XMLName   xml.Name `xml:"scan:ScanSettings"`
	XmlnsScan string   `xml:"xmlns:scan,attr"`
	XmlnsPwg  string   `xml:"xmlns:pwg,attr"`

	Version     string       `xml:"pwg:Version"`
	ScanRegions []ScanRegion `xml:"pwg:ScanRegions>pwg:ScanRegion"`
	InputSource string       `xml:"pwg:InputSource"`
	Format      string       `xml:"pwg:DocumentFormat"`
	ColorMode   string       `xml:"scan:ColorMode"`
	XResolution int          `xml:"scan:XResolution"`
	YResolution int          `xml:"scan:YResolution"`
}

// ScanRegion selects the area to scan, in 1/300ths of an inch.
type ScanRegion struct {
	XOffset int    `xml:"pwg:XOffset"`
	YOffset int    `xml:"pwg:YOffset"`
	Width   int    `xml:"pwg:Width"`
	Height  int    `xml:"pwg:Height"`
	Units   string `xml:"pwg:ContentRegionUnits"`
}

// BuildScanSettings renders the job creation document for the negotiated
// parameters. version is echoed from the capability document.
func BuildScanSettings(p NegotiatedParameters, version string) ([]byte, error) {
	settings := ScanSettings{
		XmlnsScan: NamespaceScan,
		XmlnsPwg:  NamespacePWG,
		Version:   version,
		ScanRegions: []ScanRegion{{
			Width:  p.Region.Width,
			Height: p.Region.Height,
			Units:  "escl:ThreeHundredthsOfInches",
		}},
		InputSource: p.InputSource,
		Format:      p.Format.MIME(),
		ColorMode:   p.ColorMode,
		XResolution: p.Resolution,
		YResolution: p.Resolution,
	}
	body, err := xml.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scan settings: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
