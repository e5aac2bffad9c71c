package escl

import (
	"encoding/xml"
	"strings"
)

// Scanner-level states from the eSCL status document.
const (
	ScannerStateIdle       = "Idle"
	ScannerStateProcessing = "Processing"
	ScannerStateStopped    = "Stopped"
)

// ScannerStatus is the parsed device status document.
type ScannerStatus struct {
	State string
	Jobs  []JobInfo
}

// JobInfo is the per-job entry inside the status document.
type JobInfo struct {
	JobURI       string
	JobState     string
	StateReasons []string
}

// Idle reports whether the device is ready to accept a new job.
func (s *ScannerStatus) Idle() bool { return s.State == ScannerStateIdle }

// Job returns the entry whose JobUri matches the given job location path.
// Locations come back from the device as absolute URLs while the status
// document lists paths, so matching is done on the path suffix.
func (s *ScannerStatus) Job(location string) (JobInfo, bool) {
	for _, info := range s.Jobs {
		if info.JobURI != "" && hasPath(location, info.JobURI) {
			return info, true
		}
	}
	return JobInfo{}, false
}

func hasPath(location, jobURI string) bool {
	loc := strings.TrimRight(location, "/")
	uri := strings.TrimRight(jobURI, "/")
	if uri == "" {
		return false
	}
	if loc == uri {
		return true
	}
	if !strings.HasPrefix(uri, "/") {
		uri = "/" + uri
	}
	return strings.HasSuffix(loc, uri)
}

type statusDoc struct {
	XMLName xml.Name     `xml:"ScannerStatus"`
	State   string       `xml:"State"`
	Jobs    []jobInfoDoc `xml:"Jobs>JobInfo"`
}

type jobInfoDoc struct {
	JobURI       string   `xml:"JobUri"`
	JobState     string   `xml:"JobState"`
	StateReasons []string `xml:"JobStateReasons>JobStateReason"`
}

// ParseStatus decodes a scanner status document. Unknown elements are
// ignored, matching the tolerant capability parse.
func ParseStatus(data []byte) (*ScannerStatus, error) {
	var doc statusDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	status := &ScannerStatus{State: doc.State}
	for _, j := range doc.Jobs {
		status.Jobs = append(status.Jobs, JobInfo{
			JobURI:       j.JobURI,
			JobState:     j.JobState,
			StateReasons: j.StateReasons,
		})
	}
	return status, nil
}
