package cli_test

import (
	"testing"

	"github.com/diitoo/esclscan/internal/cli"
	"github.com/diitoo/esclscan/internal/escl"
)

func TestParseArgs_Minimal(t *testing.T) {
	t.Parallel()

	args, err := cli.ParseArgs([]string{"http://192.168.0.10:8080"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	if args.URL != "http://192.168.0.10:8080" {
		t.Errorf("unexpected url %q", args.URL)
	}
	if args.Type != "jpg" {
		t.Errorf("expected default type jpg, got %q", args.Type)
	}
	if args.Resolution != 0 || args.ColorMode != "" || args.Size != "" {
		t.Errorf("expected zero-value optionals, got %+v", args)
	}
}

func TestParseArgs_AllFlags(t *testing.T) {
	t.Parallel()

	args, err := cli.ParseArgs([]string{
		"-out", "page.pdf",
		"-type", "pdf",
		"-resolution", "150",
		"-color-mode", "g8",
		"-size", "a5",
		"-verbose",
		"https://scanner.local",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	if args.Out != "page.pdf" || args.Type != "pdf" || args.Resolution != 150 ||
		args.ColorMode != "g8" || args.Size != "a5" || !args.Verbose {
		t.Errorf("flags not parsed: %+v", args)
	}
}

func TestParseArgs_MissingURL(t *testing.T) {
	t.Parallel()

	if _, err := cli.ParseArgs(nil); err == nil {
		t.Error("expected error for missing URL")
	}
}

func TestParseArgs_InvalidURL(t *testing.T) {
	t.Parallel()

	if _, err := cli.ParseArgs([]string{"192.168.0.10"}); err == nil {
		t.Error("expected error for URL without scheme")
	}
}

func TestParseArgs_InvalidChoices(t *testing.T) {
	t.Parallel()

	if _, err := cli.ParseArgs([]string{"-type", "png", "http://h"}); err == nil {
		t.Error("expected error for invalid type")
	}
	if _, err := cli.ParseArgs([]string{"-color-mode", "cmyk", "http://h"}); err == nil {
		t.Error("expected error for invalid color mode")
	}
	if _, err := cli.ParseArgs([]string{"-resolution", "-300", "http://h"}); err == nil {
		t.Error("expected error for negative resolution")
	}
}

func TestScanRequest_Translation(t *testing.T) {
	t.Parallel()

	args, err := cli.ParseArgs([]string{"-type", "pdf", "-color-mode", "r24", "-size", "max", "http://h"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	req := args.ScanRequest()
	if req.Format != escl.FormatPDF {
		t.Errorf("expected pdf format, got %q", req.Format)
	}
	if req.ColorMode != escl.ColorModeRGB24 {
		t.Errorf("expected RGB24, got %q", req.ColorMode)
	}
	if req.PaperSize != "max" {
		t.Errorf("expected max, got %q", req.PaperSize)
	}
}
