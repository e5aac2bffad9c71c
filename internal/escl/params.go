package escl

// Format is the output file format requested by the user. It selects local
// post-processing and the document format sent to the device.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPDF  Format = "pdf"
)

// MIME returns the document format string used on the wire.
func (f Format) MIME() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	default:
		return "image/jpeg"
	}
}

// Extension returns the file extension for the format, without a dot.
func (f Format) Extension() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "jpg"
}

// Color mode strings from the eSCL vocabulary.
const (
	ColorModeRGB24      = "RGB24"
	ColorModeGrayscale8 = "Grayscale8"
)

// InputSourcePlaten is the only input source this client drives.
const InputSourcePlaten = "Platen"

// Extent is a physical scan area in 1/300ths of an inch, the region unit
// eSCL devices use.
type Extent struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Fits reports whether the extent is within the given maxima.
func (e Extent) Fits(maxWidth, maxHeight int) bool {
	return e.Width <= maxWidth && e.Height <= maxHeight
}

// ScanRequest is the user-supplied intent, before negotiation. Zero values
// mean "use the documented default".
type ScanRequest struct {
	// Format of the produced file. Defaults to JPEG.
	Format Format

	// ColorMode as an eSCL color mode string. Defaults to RGB24 when the
	// device supports it, else Grayscale8.
	ColorMode string

	// Resolution in DPI for both axes. 0 means the highest resolution
	// supported by both axes.
	Resolution int

	// PaperSize names an entry of the capability paper-size table. Empty
	// means the configured default size.
	PaperSize string
}

// NegotiatedParameters is the device-compatible result of reconciling a
// ScanRequest against DeviceCapabilities. Every field is backed by an entry
// in the capability snapshot, except Format which is a local choice.
type NegotiatedParameters struct {
	Format      Format
	ColorMode   string
	Resolution  int
	PaperSize   string
	Region      Extent
	InputSource string
}
