// Package escl holds the wire-level model for the eSCL (AirScan) protocol:
// the XML documents exchanged with the device, the job state vocabulary and
// the error taxonomy shared by the pipeline stages.
package escl

import (
	"fmt"
	"net/url"
	"strings"
)

// XML namespaces used by eSCL documents.
const (
	NamespaceScan = "http://schemas.hp.com/imaging/escl/2011/05/03"
	NamespacePWG  = "http://www.pwg.org/schemas/2010/12/sm"
)

// Resource paths relative to the device base URL.
const (
	PathCapabilities = "eSCL/ScannerCapabilities"
	PathStatus       = "eSCL/ScannerStatus"
	PathScanJobs     = "eSCL/ScanJobs"
)

// Endpoint resolves a resource path against the device base URL.
func Endpoint(base, resource string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse device url %s: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("device url %s: scheme must be http or https", base)
	}
	ref, err := url.Parse(resource)
	if err != nil {
		return "", fmt.Errorf("parse resource %s: %w", resource, err)
	}
	return u.ResolveReference(ref).String(), nil
}

// JoinLocation appends a sub-resource to a job location, keeping exactly one
// slash between them. Devices return Location headers both with and without
// a trailing slash.
func JoinLocation(location, sub string) string {
	return strings.TrimRight(location, "/") + "/" + strings.TrimLeft(sub, "/")
}
