// Command esclscan scans a single page from a network scanner speaking the
// eSCL (AirScan) protocol and writes the result to a local file.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/diitoo/esclscan/internal/cli"
	"github.com/diitoo/esclscan/internal/config"
	"github.com/diitoo/esclscan/internal/escl"
	"github.com/diitoo/esclscan/internal/logging"
	"github.com/diitoo/esclscan/internal/pipeline"
	"github.com/diitoo/esclscan/internal/webclient"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cliArgs, err := cli.ParseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cliArgs.Verbose)

	wc, err := webclient.NewNetHTTPClient(webclient.Config{Timeout: cfg.HTTPTimeout}, logger, nil)
	if err != nil {
		return err
	}
	defer wc.Close()

	pipe, err := pipeline.New(cfg, wc, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if cliArgs.Info {
		caps, status, err := pipe.Info(ctx, cliArgs.URL)
		if err != nil {
			return err
		}
		printInfo(cliArgs.URL, caps, status)
		return nil
	}

	req := cliArgs.ScanRequest()

	filename := cliArgs.Out
	if filename == "" {
		filename = "scan_" + time.Now().Format("20060102-150405") + "." + req.Format.Extension()
	}
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("file exists already: %s", filename)
	}

	result, err := pipe.Run(ctx, cliArgs.URL, req)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, result.Bytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	fmt.Println(filename)
	return nil
}

func printInfo(url string, caps *escl.DeviceCapabilities, status *escl.ScannerStatus) {
	fmt.Printf("Scanner model: %s\n", caps.MakeAndModel)
	fmt.Printf("Serial number: %s\n", caps.SerialNumber)
	fmt.Printf("Scanner URL:   %s\n", url)
	fmt.Printf("Admin URL:     %s\n", caps.AdminURI)
	fmt.Printf("Formats:       %s\n", strings.Join(caps.Formats, ", "))
	fmt.Printf("Color Modes:   %s\n", strings.Join(caps.ColorModes, ", "))
	fmt.Printf("X-Resolutions: %s\n", joinInts(caps.XResolutions))
	fmt.Printf("Y-Resolutions: %s\n", joinInts(caps.YResolutions))
	fmt.Printf("Paper sizes:   %s\n", strings.Join(caps.PaperSizeNames(), ", "))
	fmt.Printf("Max width:     %d\n", caps.MaxWidth)
	fmt.Printf("Max height:    %d\n", caps.MaxHeight)
	fmt.Printf("Status:        %s\n", status.State)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
