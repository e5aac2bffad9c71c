package job_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diitoo/esclscan/internal/escl"
	"github.com/diitoo/esclscan/internal/job"
	"github.com/diitoo/esclscan/internal/logging"
	"github.com/diitoo/esclscan/internal/webclient"
)

func testParams() escl.NegotiatedParameters {
	return escl.NegotiatedParameters{
		Format:      escl.FormatJPEG,
		ColorMode:   escl.ColorModeRGB24,
		Resolution:  300,
		PaperSize:   "a4",
		Region:      escl.Extent{Width: 2480, Height: 3508},
		InputSource: escl.InputSourcePlaten,
	}
}

func newClient(t *testing.T) webclient.WebClient {
	t.Helper()
	wc, err := webclient.NewNetHTTPClient(webclient.Config{}, logging.Noop{}, nil)
	if err != nil {
		t.Fatalf("NewNetHTTPClient: %v", err)
	}
	return wc
}

func TestSubmit_CreatesPendingJob(t *testing.T) {
	t.Parallel()

	var receivedBody string
	var receivedContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/eSCL/ScanJobs" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		receivedBody = string(body)
		receivedContentType = r.Header.Get("Content-Type")
		w.Header().Set("Location", "http://"+r.Host+"/eSCL/ScanJobs/42")
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	submitter, err := job.NewSubmitter(newClient(t), logging.Noop{})
	if err != nil {
		t.Fatalf("NewSubmitter: %v", err)
	}

	scanJob, err := submitter.Submit(context.Background(), ts.URL, testParams(), "2.6")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if scanJob.State != escl.JobPending {
		t.Errorf("expected pending job, got %s", scanJob.State)
	}
	if !strings.HasSuffix(scanJob.Location, "/eSCL/ScanJobs/42") {
		t.Errorf("unexpected job location %q", scanJob.Location)
	}
	if receivedContentType != "text/xml" {
		t.Errorf("expected text/xml, got %q", receivedContentType)
	}
	if !strings.Contains(receivedBody, "<scan:ColorMode>RGB24</scan:ColorMode>") {
		t.Errorf("scan settings missing color mode: %s", receivedBody)
	}
	if !strings.Contains(receivedBody, "<pwg:Version>2.6</pwg:Version>") {
		t.Errorf("scan settings missing version: %s", receivedBody)
	}
}

func TestSubmit_ResolvesRelativeLocation(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/eSCL/ScanJobs/7")
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	submitter, err := job.NewSubmitter(newClient(t), logging.Noop{})
	if err != nil {
		t.Fatalf("NewSubmitter: %v", err)
	}

	scanJob, err := submitter.Submit(context.Background(), ts.URL, testParams(), "2.6")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if scanJob.Location != ts.URL+"/eSCL/ScanJobs/7" {
		t.Errorf("expected absolute location, got %q", scanJob.Location)
	}
}

func TestSubmit_DeviceRejectsJob(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scanner busy", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	submitter, err := job.NewSubmitter(newClient(t), logging.Noop{})
	if err != nil {
		t.Fatalf("NewSubmitter: %v", err)
	}

	_, err = submitter.Submit(context.Background(), ts.URL, testParams(), "2.6")

	var creation *escl.JobCreationError
	if !errors.As(err, &creation) {
		t.Fatalf("expected JobCreationError, got %v", err)
	}
	if creation.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", creation.StatusCode)
	}
	if !strings.Contains(creation.Reason, "scanner busy") {
		t.Errorf("expected device reason in error, got %q", creation.Reason)
	}
}

func TestSubmit_MissingLocation(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	submitter, err := job.NewSubmitter(newClient(t), logging.Noop{})
	if err != nil {
		t.Fatalf("NewSubmitter: %v", err)
	}

	_, err = submitter.Submit(context.Background(), ts.URL, testParams(), "2.6")

	var creation *escl.JobCreationError
	if !errors.As(err, &creation) {
		t.Fatalf("expected JobCreationError, got %v", err)
	}
}

func TestSubmit_UnreachableDevice(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // deliberately closed

	submitter, err := job.NewSubmitter(newClient(t), logging.Noop{})
	if err != nil {
		t.Fatalf("NewSubmitter: %v", err)
	}

	_, err = submitter.Submit(context.Background(), ts.URL, testParams(), "2.6")

	var unreachable *escl.UnreachableDeviceError
	if !errors.As(err, &unreachable) {
		t.Fatalf("expected UnreachableDeviceError, got %v", err)
	}
}
