package escl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diitoo/esclscan/internal/escl"
)

const sampleStatus = `<?xml version="1.0" encoding="UTF-8"?>
<scan:ScannerStatus xmlns:scan="http://schemas.hp.com/imaging/escl/2011/05/03" xmlns:pwg="http://www.pwg.org/schemas/2010/12/sm">
  <pwg:Version>2.6</pwg:Version>
  <pwg:State>Processing</pwg:State>
  <scan:Jobs>
    <scan:JobInfo>
      <pwg:JobUri>/eSCL/ScanJobs/17</pwg:JobUri>
      <scan:JobState>Processing</scan:JobState>
      <scan:JobStateReasons>
        <scan:JobStateReason>JobScanning</scan:JobStateReason>
      </scan:JobStateReasons>
    </scan:JobInfo>
  </scan:Jobs>
</scan:ScannerStatus>`

func TestParseStatus(t *testing.T) {
	t.Parallel()

	status, err := escl.ParseStatus([]byte(sampleStatus))
	assert.NoError(t, err)

	assert.Equal(t, "Processing", status.State)
	assert.False(t, status.Idle())
	assert.Len(t, status.Jobs, 1)
	assert.Equal(t, "/eSCL/ScanJobs/17", status.Jobs[0].JobURI)
	assert.Equal(t, []string{"JobScanning"}, status.Jobs[0].StateReasons)
}

func TestScannerStatus_JobMatchesAbsoluteLocation(t *testing.T) {
	t.Parallel()

	status, err := escl.ParseStatus([]byte(sampleStatus))
	assert.NoError(t, err)

	// Location headers are absolute; JobUri entries are paths.
	info, ok := status.Job("http://192.168.0.10:8080/eSCL/ScanJobs/17")
	assert.True(t, ok)
	assert.Equal(t, "Processing", info.JobState)

	_, ok = status.Job("http://192.168.0.10:8080/eSCL/ScanJobs/170")
	assert.False(t, ok, "suffix match must respect path boundaries")

	_, ok = status.Job("http://192.168.0.10:8080/eSCL/ScanJobs/9")
	assert.False(t, ok)
}

func TestJobStateFromDevice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, escl.JobPending, escl.JobStateFromDevice("Pending"))
	assert.Equal(t, escl.JobProcessing, escl.JobStateFromDevice("Processing"))
	assert.Equal(t, escl.JobDone, escl.JobStateFromDevice("Completed"))
	assert.Equal(t, escl.JobError, escl.JobStateFromDevice("Canceled"))
	assert.Equal(t, escl.JobError, escl.JobStateFromDevice("Aborted"))

	// Unknown vocabulary keeps the poller going instead of failing.
	assert.Equal(t, escl.JobProcessing, escl.JobStateFromDevice("VendorSpecificState"))
}

func TestJobStateTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, escl.JobPending.Terminal())
	assert.False(t, escl.JobProcessing.Terminal())
	assert.True(t, escl.JobDone.Terminal())
	assert.True(t, escl.JobError.Terminal())
	assert.True(t, escl.JobTimeout.Terminal())
}
