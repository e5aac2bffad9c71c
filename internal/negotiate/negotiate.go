// Package negotiate reconciles a user's scan request with the device's
// capability snapshot. Negotiation is a pure function: it either selects
// concrete device-supported values or fails naming the offending field, and
// never substitutes silently.
package negotiate

import (
	"fmt"
	"strconv"

	"github.com/diitoo/esclscan/internal/escl"
)

// Defaults are the configured fallbacks for fields the request leaves unset.
type Defaults struct {
	PaperSize string
}

// Negotiate intersects req with caps. Every value in the returned parameters
// is backed by the capability snapshot; Format is recorded but not validated
// against the device, it only selects local post-processing.
func Negotiate(req escl.ScanRequest, caps *escl.DeviceCapabilities, def Defaults) (escl.NegotiatedParameters, error) {
	var params escl.NegotiatedParameters

	params.Format = req.Format
	if params.Format == "" {
		params.Format = escl.FormatJPEG
	}

	colorMode, err := negotiateColorMode(req.ColorMode, caps)
	if err != nil {
		return escl.NegotiatedParameters{}, err
	}
	params.ColorMode = colorMode

	resolution, err := negotiateResolution(req.Resolution, caps)
	if err != nil {
		return escl.NegotiatedParameters{}, err
	}
	params.Resolution = resolution

	size, region, err := negotiatePaperSize(req.PaperSize, caps, def)
	if err != nil {
		return escl.NegotiatedParameters{}, err
	}
	params.PaperSize = size
	params.Region = region

	params.InputSource = caps.InputSource
	return params, nil
}

func negotiateColorMode(requested string, caps *escl.DeviceCapabilities) (string, error) {
	if requested != "" {
		if !caps.SupportsColorMode(requested) {
			return "", &escl.UnsupportedParameterError{
				Field:     "colorMode",
				Value:     requested,
				Supported: caps.ColorModes,
			}
		}
		return requested, nil
	}

	// Color when supported, otherwise grayscale.
	switch {
	case caps.SupportsColorMode(escl.ColorModeRGB24):
		return escl.ColorModeRGB24, nil
	case caps.SupportsColorMode(escl.ColorModeGrayscale8):
		return escl.ColorModeGrayscale8, nil
	default:
		return "", &escl.UnsupportedParameterError{
			Field:     "colorMode",
			Value:     escl.ColorModeRGB24,
			Supported: caps.ColorModes,
		}
	}
}

func negotiateResolution(requested int, caps *escl.DeviceCapabilities) (int, error) {
	if requested != 0 {
		// Must be supported on both axes.
		if !caps.SupportsResolution(requested) {
			return 0, &escl.UnsupportedParameterError{
				Field:     "resolution",
				Value:     strconv.Itoa(requested),
				Supported: resolutionStrings(caps),
			}
		}
		return requested, nil
	}

	max := caps.MaxResolution()
	if max == 0 {
		return 0, fmt.Errorf("negotiate resolution: device advertises no resolution supported on both axes")
	}
	return max, nil
}

func negotiatePaperSize(requested string, caps *escl.DeviceCapabilities, def Defaults) (string, escl.Extent, error) {
	if requested != "" {
		extent, ok := caps.PaperSizes[requested]
		if !ok {
			return "", escl.Extent{}, &escl.UnsupportedParameterError{
				Field:     "paperSize",
				Value:     requested,
				Supported: caps.PaperSizeNames(),
			}
		}
		return requested, extent, nil
	}

	extent, ok := caps.PaperSizes[def.PaperSize]
	if !ok {
		return "", escl.Extent{}, &escl.NoDefaultPaperSizeError{Size: def.PaperSize}
	}
	return def.PaperSize, extent, nil
}

func resolutionStrings(caps *escl.DeviceCapabilities) []string {
	var out []string
	for _, r := range caps.XResolutions {
		if caps.SupportsResolution(r) {
			out = append(out, strconv.Itoa(r))
		}
	}
	return out
}
