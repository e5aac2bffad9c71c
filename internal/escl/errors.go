package escl

import (
	"fmt"
	"time"
)

// The pipeline never retries on its own: every error below is fatal for the
// run and carries enough context for the caller to report or adjust input.

// UnreachableDeviceError wraps a network-level failure talking to the device.
type UnreachableDeviceError struct {
	Endpoint string
	Err      error
}

func (e *UnreachableDeviceError) Error() string {
	return fmt.Sprintf("device unreachable at %s: %v", e.Endpoint, e.Err)
}

func (e *UnreachableDeviceError) Unwrap() error { return e.Err }

// MalformedCapabilitiesError reports a capability document that could not be
// parsed into the required structure.
type MalformedCapabilitiesError struct {
	Detail string
	Err    error
}

func (e *MalformedCapabilitiesError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed capabilities: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("malformed capabilities: %s", e.Detail)
}

func (e *MalformedCapabilitiesError) Unwrap() error { return e.Err }

// UnsupportedParameterError names the requested field and value the device
// does not support, so the caller can adjust input.
type UnsupportedParameterError struct {
	Field     string
	Value     string
	Supported []string
}

func (e *UnsupportedParameterError) Error() string {
	if len(e.Supported) > 0 {
		return fmt.Sprintf("unsupported %s %q, supported: %v", e.Field, e.Value, e.Supported)
	}
	return fmt.Sprintf("unsupported %s %q", e.Field, e.Value)
}

// NoDefaultPaperSizeError reports that no paper size was requested and the
// configured default is not available on the device.
type NoDefaultPaperSizeError struct {
	Size string
}

func (e *NoDefaultPaperSizeError) Error() string {
	return fmt.Sprintf("default paper size %q not supported by device", e.Size)
}

// JobCreationError reports that the device rejected the scan job.
type JobCreationError struct {
	StatusCode int
	Reason     string
}

func (e *JobCreationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scan job rejected (http %d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("scan job rejected: %s", e.Reason)
}

// ScanFailedError carries the device-reported failure for a submitted job.
type ScanFailedError struct {
	State  string
	Detail string
}

func (e *ScanFailedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("scan failed, device reported %s: %s", e.State, e.Detail)
	}
	return fmt.Sprintf("scan failed, device reported %s", e.State)
}

// ScanTimeoutError reports that the polling deadline elapsed before the job
// finished. The job may still complete on the device; the client gives up.
type ScanTimeoutError struct {
	Deadline time.Duration
}

func (e *ScanTimeoutError) Error() string {
	return fmt.Sprintf("scan did not finish within %s", e.Deadline)
}

// RetrievalError reports a failed image fetch after a successful scan.
type RetrievalError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *RetrievalError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("image retrieval failed: %s: %v", e.Detail, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("image retrieval failed (http %d): %s", e.StatusCode, e.Detail)
	default:
		return fmt.Sprintf("image retrieval failed: %s", e.Detail)
	}
}

func (e *RetrievalError) Unwrap() error { return e.Err }
