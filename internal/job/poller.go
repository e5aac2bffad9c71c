package job

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/diitoo/esclscan/internal/escl"
	"github.com/diitoo/esclscan/internal/logging"
	"github.com/diitoo/esclscan/internal/webclient"
)

// Poller tracks one job through the state machine
//
//	pending -> processing -> done
//	                      \-> error
//	any non-terminal ------> timeout (deadline elapsed)
//
// by reading the device status document at a fixed interval. One poller per
// job, strictly sequential requests with blocking waits between them.
type Poller struct {
	wc       webclient.WebClient
	logger   logging.Logger
	interval time.Duration
	deadline time.Duration
}

func NewPoller(wc webclient.WebClient, interval, deadline time.Duration, logger logging.Logger) (*Poller, error) {
	if wc == nil {
		return nil, fmt.Errorf("job: webclient is nil")
	}
	if interval <= 0 || deadline <= 0 {
		return nil, fmt.Errorf("job: poll interval and deadline must be positive")
	}
	return &Poller{
		wc:       wc,
		logger:   logger.With(logging.Field{Key: "component", Value: "poller"}),
		interval: interval,
		deadline: deadline,
	}, nil
}

// Poll blocks until the job reaches a terminal state. It returns nil once
// the job is done; otherwise a ScanFailedError, ScanTimeoutError or the
// first network failure. The job's State reflects the terminal state on
// return, and no further status reads happen after a terminal transition.
func (p *Poller) Poll(ctx context.Context, baseURL string, job *escl.ScanJob) error {
	if job == nil {
		return fmt.Errorf("job: nil job")
	}

	statusURL, err := escl.Endpoint(baseURL, escl.PathStatus)
	if err != nil {
		return err
	}

	started := time.Now()
	attempt := 0

	for {
		if remaining := p.deadline - time.Since(started); remaining < p.interval {
			job.State = escl.JobTimeout
			p.logger.Warn("polling deadline elapsed",
				logging.Field{Key: "attempts", Value: attempt},
				logging.Field{Key: "deadline", Value: p.deadline.String()})
			return &escl.ScanTimeoutError{Deadline: p.deadline}
		}

		select {
		case <-ctx.Done():
			job.State = escl.JobTimeout
			return fmt.Errorf("polling canceled: %w", ctx.Err())
		case <-time.After(p.interval):
		}

		attempt++
		state, deviceState, detail, err := p.readState(ctx, statusURL, job.Location)
		if err != nil {
			return err
		}

		p.logger.Debug("job status",
			logging.Field{Key: "attempt", Value: attempt},
			logging.Field{Key: "state", Value: string(state)},
			logging.Field{Key: "deviceState", Value: deviceState})

		job.DeviceState = deviceState
		job.DeviceDetail = detail

		switch state {
		case escl.JobDone:
			job.State = escl.JobDone
			return nil
		case escl.JobError:
			job.State = escl.JobError
			return &escl.ScanFailedError{State: deviceState, Detail: detail}
		default:
			job.State = state
		}
	}
}

// readState performs one status read and maps the device's answer for the
// job at location. A job the device no longer reports is treated as failed;
// the scanner purged it without completing.
func (p *Poller) readState(ctx context.Context, statusURL, location string) (escl.JobState, string, string, error) {
	resp, err := p.wc.Get(ctx, statusURL)
	if err != nil {
		return "", "", "", &escl.UnreachableDeviceError{Endpoint: statusURL, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", "", fmt.Errorf("job status: unexpected http status %d from %s", resp.StatusCode, statusURL)
	}

	status, err := escl.ParseStatus(resp.Body)
	if err != nil {
		return "", "", "", fmt.Errorf("parse job status: %w", err)
	}

	info, ok := status.Job(location)
	if !ok {
		return escl.JobError, "", "job no longer reported by device", nil
	}
	return escl.JobStateFromDevice(info.JobState), info.JobState, strings.Join(info.StateReasons, ", "), nil
}
