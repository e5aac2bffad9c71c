package escl

import "strings"

// JobState is the client-side view of a scan job's lifecycle.
type JobState string

const (
	JobPending    JobState = "pending"
	JobProcessing JobState = "processing"
	JobDone       JobState = "done"
	JobError      JobState = "error"
	JobTimeout    JobState = "timeout"
)

// Terminal reports whether no further state transitions are possible.
func (s JobState) Terminal() bool {
	return s == JobDone || s == JobError || s == JobTimeout
}

// Device-reported job states from the eSCL vocabulary.
const (
	deviceStatePending    = "Pending"
	deviceStateProcessing = "Processing"
	deviceStateCompleted  = "Completed"
	deviceStateCanceled   = "Canceled"
	deviceStateAborted    = "Aborted"
)

// JobStateFromDevice maps a device-reported job state string to the client
// state. Unknown strings map to processing so polling continues until the
// deadline instead of inventing extra states.
func JobStateFromDevice(s string) JobState {
	switch strings.TrimSpace(s) {
	case deviceStatePending:
		return JobPending
	case deviceStateCompleted:
		return JobDone
	case deviceStateCanceled, deviceStateAborted:
		return JobError
	default:
		return JobProcessing
	}
}

// ScanJob is one in-flight or completed scan on the device, identified by
// the device-issued resource location. The status poller is the only writer
// of State after creation.
type ScanJob struct {
	// Location is the absolute URL of the job resource.
	Location string

	// State of the job as last observed.
	State JobState

	// DeviceState is the raw state string from the last status read.
	DeviceState string

	// DeviceDetail carries the device's state reasons, if any.
	DeviceDetail string
}
