// Package job drives a single scan job on the device: creation, status
// polling and retrieval of the produced image.
package job

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/diitoo/esclscan/internal/escl"
	"github.com/diitoo/esclscan/internal/logging"
	"github.com/diitoo/esclscan/internal/webclient"
)

// Submitter posts the scan settings document and turns the device's
// created-resource answer into a pending ScanJob.
type Submitter struct {
	wc     webclient.WebClient
	logger logging.Logger
}

func NewSubmitter(wc webclient.WebClient, logger logging.Logger) (*Submitter, error) {
	if wc == nil {
		return nil, fmt.Errorf("job: webclient is nil")
	}
	return &Submitter{
		wc:     wc,
		logger: logger.With(logging.Field{Key: "component", Value: "submitter"}),
	}, nil
}

// Submit creates a scan job for the negotiated parameters. version is the
// protocol version echoed from the capability document.
func (s *Submitter) Submit(ctx context.Context, baseURL string, params escl.NegotiatedParameters, version string) (*escl.ScanJob, error) {
	endpoint, err := escl.Endpoint(baseURL, escl.PathScanJobs)
	if err != nil {
		return nil, err
	}

	body, err := escl.BuildScanSettings(params, version)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("sending scan request",
		logging.Field{Key: "url", Value: endpoint},
		logging.Field{Key: "colorMode", Value: params.ColorMode},
		logging.Field{Key: "resolution", Value: params.Resolution},
		logging.Field{Key: "paperSize", Value: params.PaperSize},
		logging.Field{Key: "width", Value: params.Region.Width},
		logging.Field{Key: "height", Value: params.Region.Height})

	resp, err := s.wc.Post(ctx, endpoint, "text/xml", body)
	if err != nil {
		return nil, &escl.UnreachableDeviceError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, &escl.JobCreationError{
			StatusCode: resp.StatusCode,
			Reason:     deviceReason(resp),
		}
	}

	location := resp.Location()
	if location == "" {
		return nil, &escl.JobCreationError{
			StatusCode: resp.StatusCode,
			Reason:     "device returned no job location",
		}
	}
	// Some devices return a path instead of an absolute URL.
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		location, err = escl.Endpoint(baseURL, location)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("scan job created",
		logging.Field{Key: "location", Value: location})

	return &escl.ScanJob{
		Location: location,
		State:    escl.JobPending,
	}, nil
}

// deviceReason extracts a short reason string from an error response body.
func deviceReason(resp *webclient.Response) string {
	reason := strings.TrimSpace(string(resp.Body))
	if reason == "" {
		return http.StatusText(resp.StatusCode)
	}
	if len(reason) > 200 {
		reason = reason[:200]
	}
	return reason
}
