// Package fakescanner is a small in-process eSCL device used for demos and
// tests. It serves a capability document, a status document and a scan job
// lifecycle without any real hardware.
package fakescanner

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// FakeScanner simulates a single-platen eSCL device.
type FakeScanner struct {
	cfg Config

	mu      sync.Mutex
	nextJob int
	jobs    map[string]*fakeJob // job id -> state
}

type fakeJob struct {
	polls int
}

// NewFakeScanner creates a fake device instance.
func NewFakeScanner(cfg Config) *FakeScanner {
	cfg.applyDefaults()
	return &FakeScanner{
		cfg:  cfg,
		jobs: make(map[string]*fakeJob),
	}
}

// Handler returns the device's HTTP surface, for mounting in tests.
func (s *FakeScanner) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/eSCL/ScannerCapabilities", s.capabilitiesHandler)
	mux.HandleFunc("/eSCL/ScannerStatus", s.statusHandler)
	mux.HandleFunc("/eSCL/ScanJobs", s.createJobHandler)
	mux.HandleFunc("/eSCL/ScanJobs/", s.jobHandler)
	return mux
}

// Start serves the fake device on the configured port, blocking.
func (s *FakeScanner) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	fmt.Printf("Fake eSCL scanner listening on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *FakeScanner) capabilitiesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/xml")
	fmt.Fprintf(w, capabilitiesTemplate,
		s.cfg.Version, s.cfg.MakeAndModel, s.cfg.SerialNumber,
		s.cfg.MaxWidth, s.cfg.MaxHeight,
		resolutionEntries(s.cfg.Resolutions))
}

func (s *FakeScanner) statusHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var jobEntries strings.Builder
	state := "Idle"
	for id, job := range s.jobs {
		jobState := s.jobState(job)
		if jobState == "Pending" || jobState == "Processing" {
			state = "Processing"
		}
		fmt.Fprintf(&jobEntries, jobInfoTemplate, "/eSCL/ScanJobs/"+id, jobState)
	}

	w.Header().Set("Content-Type", "text/xml")
	fmt.Fprintf(w, statusTemplate, s.cfg.Version, state, jobEntries.String())
}

func (s *FakeScanner) createJobHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.cfg.RejectJobs {
		http.Error(w, "scanner refuses to scan", http.StatusServiceUnavailable)
		return
	}

	s.mu.Lock()
	s.nextJob++
	id := fmt.Sprintf("%d", s.nextJob)
	s.jobs[id] = &fakeJob{}
	s.mu.Unlock()

	w.Header().Set("Location", "http://"+r.Host+"/eSCL/ScanJobs/"+id)
	w.WriteHeader(http.StatusCreated)
}

func (s *FakeScanner) jobHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/eSCL/ScanJobs/")
	id, sub, _ := strings.Cut(rest, "/")

	s.mu.Lock()
	job, ok := s.jobs[id]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}

	if sub != "NextDocument" {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	done := !s.cfg.AbortJobs && job.polls > s.cfg.PollsUntilDone
	s.mu.Unlock()
	if !done {
		http.Error(w, "not ready", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", s.cfg.DocumentType)
	_, _ = w.Write(s.cfg.Document)
}

// jobState advances the simulated lifecycle one step per status read.
// Only the status handler calls this; callers hold s.mu.
func (s *FakeScanner) jobState(job *fakeJob) string {
	if s.cfg.AbortJobs {
		return "Aborted"
	}
	defer func() { job.polls++ }()
	switch {
	case job.polls == 0:
		return "Pending"
	case job.polls < s.cfg.PollsUntilDone:
		return "Processing"
	default:
		return "Completed"
	}
}

func resolutionEntries(resolutions []int) string {
	var b strings.Builder
	for _, res := range resolutions {
		fmt.Fprintf(&b, resolutionTemplate, res, res)
	}
	return b.String()
}
