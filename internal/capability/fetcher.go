// Package capability retrieves and parses the device's advertised scan
// capabilities and its current status.
package capability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diitoo/esclscan/internal/escl"
	"github.com/diitoo/esclscan/internal/logging"
	"github.com/diitoo/esclscan/internal/webclient"
)

// Fetcher performs the single capability read at the start of a run.
type Fetcher struct {
	wc     webclient.WebClient
	sizes  map[string]escl.Extent
	logger logging.Logger
}

// New creates a Fetcher. sizes is the client-side paper-size table used to
// derive the capability snapshot's supported sizes.
func New(wc webclient.WebClient, sizes map[string]escl.Extent, logger logging.Logger) (*Fetcher, error) {
	if wc == nil {
		return nil, fmt.Errorf("capability: webclient is nil")
	}
	return &Fetcher{
		wc:     wc,
		sizes:  sizes,
		logger: logger.With(logging.Field{Key: "component", Value: "capability"}),
	}, nil
}

// Capabilities reads and parses the device's capability document. The parse
// keeps the required core fields and drops vendor extension elements.
func (f *Fetcher) Capabilities(ctx context.Context, baseURL string) (*escl.DeviceCapabilities, error) {
	endpoint, err := escl.Endpoint(baseURL, escl.PathCapabilities)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("querying scanner capabilities",
		logging.Field{Key: "url", Value: endpoint})

	resp, err := f.wc.Get(ctx, endpoint)
	if err != nil {
		return nil, &escl.UnreachableDeviceError{Endpoint: endpoint, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &escl.MalformedCapabilitiesError{
			Detail: fmt.Sprintf("unexpected http status %d from %s", resp.StatusCode, endpoint),
		}
	}

	caps, err := escl.ParseCapabilities(resp.Body, f.sizes)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("parsed scanner capabilities",
		logging.Field{Key: "model", Value: caps.MakeAndModel},
		logging.Field{Key: "colorModes", Value: caps.ColorModes},
		logging.Field{Key: "formats", Value: caps.Formats},
		logging.Field{Key: "xResolutions", Value: caps.XResolutions},
		logging.Field{Key: "yResolutions", Value: caps.YResolutions},
		logging.Field{Key: "maxWidth", Value: caps.MaxWidth},
		logging.Field{Key: "maxHeight", Value: caps.MaxHeight})

	return caps, nil
}

// Status reads the device's current status document.
func (f *Fetcher) Status(ctx context.Context, baseURL string) (*escl.ScannerStatus, error) {
	endpoint, err := escl.Endpoint(baseURL, escl.PathStatus)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("querying scanner status",
		logging.Field{Key: "url", Value: endpoint})

	resp, err := f.wc.Get(ctx, endpoint)
	if err != nil {
		return nil, &escl.UnreachableDeviceError{Endpoint: endpoint, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scanner status: unexpected http status %d from %s", resp.StatusCode, endpoint)
	}

	status, err := escl.ParseStatus(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse scanner status: %w", err)
	}

	f.logger.Debug("scanner status",
		logging.Field{Key: "state", Value: status.State},
		logging.Field{Key: "jobs", Value: len(status.Jobs)})

	return status, nil
}
