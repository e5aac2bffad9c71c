// Package pipeline runs one scan end-to-end: capability fetch, negotiation,
// job submission, status polling, image retrieval. The stages run strictly
// in sequence and exactly one ScanJob is in flight per run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/diitoo/esclscan/internal/capability"
	"github.com/diitoo/esclscan/internal/config"
	"github.com/diitoo/esclscan/internal/escl"
	"github.com/diitoo/esclscan/internal/job"
	"github.com/diitoo/esclscan/internal/logging"
	"github.com/diitoo/esclscan/internal/negotiate"
	"github.com/diitoo/esclscan/internal/webclient"
)

// Result is what a successful run hands back to the caller: raw image bytes
// plus the negotiated parameters, for the caller to persist and report.
type Result struct {
	RunID       string
	Bytes       []byte
	ContentType string
	Params      escl.NegotiatedParameters
}

// Pipeline ties the stages together around a shared webclient and config.
type Pipeline struct {
	cfg    *config.Config
	logger logging.Logger

	fetcher   *capability.Fetcher
	submitter *job.Submitter
	poller    *job.Poller
	retriever *job.Retriever
}

// New wires up a pipeline. The config value carries all defaults; nothing is
// read from ambient state during a run.
func New(cfg *config.Config, wc webclient.WebClient, logger logging.Logger) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	fetcher, err := capability.New(wc, cfg.PaperSizes, logger)
	if err != nil {
		return nil, err
	}
	submitter, err := job.NewSubmitter(wc, logger)
	if err != nil {
		return nil, err
	}
	poller, err := job.NewPoller(wc, cfg.PollInterval, cfg.PollDeadline, logger)
	if err != nil {
		return nil, err
	}
	retriever, err := job.NewRetriever(wc, logger)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:       cfg,
		logger:    logger,
		fetcher:   fetcher,
		submitter: submitter,
		poller:    poller,
		retriever: retriever,
	}, nil
}

// Run performs one fetch-negotiate-submit-poll-retrieve cycle. Each failure
// propagates immediately; no stage retries.
func (p *Pipeline) Run(ctx context.Context, baseURL string, req escl.ScanRequest) (*Result, error) {
	runID := uuid.New().String()
	logger := p.logger.With(logging.Field{Key: "run", Value: runID})

	logger.Info("starting scan",
		logging.Field{Key: "device", Value: baseURL})

	caps, err := p.fetcher.Capabilities(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	params, err := negotiate.Negotiate(req, caps, negotiate.Defaults{PaperSize: p.cfg.DefaultPaperSize})
	if err != nil {
		return nil, err
	}

	logger.Info("negotiated scan parameters",
		logging.Field{Key: "colorMode", Value: params.ColorMode},
		logging.Field{Key: "resolution", Value: params.Resolution},
		logging.Field{Key: "paperSize", Value: params.PaperSize},
		logging.Field{Key: "format", Value: string(params.Format)})

	status, err := p.fetcher.Status(ctx, baseURL)
	if err != nil {
		return nil, err
	}
	if !status.Idle() {
		return nil, &escl.JobCreationError{
			Reason: fmt.Sprintf("scanner is not idle (state %s)", status.State),
		}
	}

	scanJob, err := p.submitter.Submit(ctx, baseURL, params, caps.Version)
	if err != nil {
		return nil, err
	}

	if err := p.poller.Poll(ctx, baseURL, scanJob); err != nil {
		return nil, err
	}

	image, err := p.retriever.Retrieve(ctx, scanJob, params.Format)
	if err != nil {
		return nil, err
	}

	logger.Info("scan finished",
		logging.Field{Key: "bytes", Value: len(image.Bytes)})

	return &Result{
		RunID:       runID,
		Bytes:       image.Bytes,
		ContentType: image.ContentType,
		Params:      params,
	}, nil
}

// Info fetches capabilities and status for reporting without scanning.
func (p *Pipeline) Info(ctx context.Context, baseURL string) (*escl.DeviceCapabilities, *escl.ScannerStatus, error) {
	caps, err := p.fetcher.Capabilities(ctx, baseURL)
	if err != nil {
		return nil, nil, err
	}
	status, err := p.fetcher.Status(ctx, baseURL)
	if err != nil {
		return nil, nil, err
	}
	return caps, status, nil
}
