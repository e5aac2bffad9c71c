package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/diitoo/esclscan/internal/escl"
)

// CLIArgs are the command-line arguments for a single scan run.
type CLIArgs struct {
	// URL is the scanner base URL, incl. scheme and (if necessary) port.
	URL string

	// Out is the output file name; empty means a timestamped default.
	Out string

	// Type is the resulting file type, "jpg" or "pdf".
	Type string

	// Resolution for both axes; 0 means the maximum available.
	Resolution int

	// ColorMode is "r24" (RGB24) or "g8" (Grayscale8); empty picks the
	// device's best.
	ColorMode string

	// Size names a paper size from the config table, or "max" for the
	// whole scan area; empty uses the configured default.
	Size string

	// Info prints scanner information and exits instead of scanning.
	Info bool

	// Verbose enables debug output.
	Verbose bool

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by
// passing arbitrary slices. The function is deterministic and does not read
// os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("esclscan", flag.ContinueOnError)
	var (
		out        = fs.String("out", "", "Output file name (default: scan_<datetime>.<type>)")
		fileType   = fs.String("type", "jpg", "Resulting file type: jpg|pdf")
		resolution = fs.Int("resolution", 0, "Resolution in DPI for both axes (0=max available)")
		colorMode  = fs.String("color-mode", "", "Color mode: r24 (RGB24) | g8 (Grayscale8)")
		size       = fs.String("size", "", "Paper size name or 'max' (default: from config)")
		info       = fs.Bool("info", false, "Show scanner information and exit")
		verbose    = fs.Bool("verbose", false, "Show debug output")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	url := strings.TrimSpace(fs.Arg(0))
	if url == "" {
		return nil, fmt.Errorf("missing required scanner URL argument")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("invalid scanner URL %s: must start with http:// or https://", url)
	}

	switch *fileType {
	case "jpg", "pdf":
	default:
		return nil, fmt.Errorf("invalid type %q: must be jpg or pdf", *fileType)
	}

	switch *colorMode {
	case "", "r24", "g8":
	default:
		return nil, fmt.Errorf("invalid color mode %q: must be r24 or g8", *colorMode)
	}

	if *resolution < 0 {
		return nil, fmt.Errorf("invalid resolution %d", *resolution)
	}

	return &CLIArgs{
		URL:        url,
		Out:        *out,
		Type:       *fileType,
		Resolution: *resolution,
		ColorMode:  *colorMode,
		Size:       *size,
		Info:       *info,
		Verbose:    *verbose,
		RawArgs:    args,
	}, nil
}

// ScanRequest translates the parsed flags into the pipeline's request.
func (a *CLIArgs) ScanRequest() escl.ScanRequest {
	req := escl.ScanRequest{
		Resolution: a.Resolution,
		PaperSize:  a.Size,
	}

	if a.Type == "pdf" {
		req.Format = escl.FormatPDF
	} else {
		req.Format = escl.FormatJPEG
	}

	switch a.ColorMode {
	case "r24":
		req.ColorMode = escl.ColorModeRGB24
	case "g8":
		req.ColorMode = escl.ColorModeGrayscale8
	}

	return req
}
