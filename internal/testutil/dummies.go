// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/diitoo/esclscan/internal/logging"
	"github.com/diitoo/esclscan/internal/webclient"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ─── WebClient ─────────────────────────────────────────────────────────

// CannedResponse describes one scripted answer of a ScriptedWebClient.
type CannedResponse struct {
	StatusCode  int
	Body        []byte
	Headers     http.Header
	Err         error
	ContentType string
}

// ScriptedWebClient implements webclient.WebClient by answering requests
// from per-URL scripts. Each request pops the next canned response for its
// URL; the last entry repeats. Requests records every URL in order.
type ScriptedWebClient struct {
	mu       sync.Mutex
	scripts  map[string][]CannedResponse
	consumed map[string]int
	Requests []string
}

func NewScriptedWebClient() *ScriptedWebClient {
	return &ScriptedWebClient{
		scripts:  make(map[string][]CannedResponse),
		consumed: make(map[string]int),
	}
}

// Script appends canned responses for the given URL.
func (c *ScriptedWebClient) Script(url string, responses ...CannedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scripts[url] = append(c.scripts[url], responses...)
}

func (c *ScriptedWebClient) Do(ctx context.Context, req *webclient.Request) (*webclient.Response, error) {
	c.mu.Lock()
	c.Requests = append(c.Requests, req.URL)
	script, ok := c.scripts[req.URL]
	idx := c.consumed[req.URL]
	if idx < len(script)-1 {
		c.consumed[req.URL] = idx + 1
	}
	c.mu.Unlock()

	if !ok || len(script) == 0 {
		return nil, fmt.Errorf("no scripted response for %s", req.URL)
	}
	canned := script[idx]
	if canned.Err != nil {
		return nil, canned.Err
	}

	headers := http.Header{}
	for k, vs := range canned.Headers {
		headers[k] = vs
	}
	if canned.ContentType != "" {
		headers.Set("Content-Type", canned.ContentType)
	}

	status := canned.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	return &webclient.Response{
		Request:    req,
		Headers:    headers,
		Body:       canned.Body,
		StatusCode: status,
		FetchedAt:  time.Now(),
	}, nil
}

func (c *ScriptedWebClient) Get(ctx context.Context, url string) (*webclient.Response, error) {
	return c.Do(ctx, &webclient.Request{Method: "GET", URL: url})
}

func (c *ScriptedWebClient) Post(ctx context.Context, url, contentType string, body []byte) (*webclient.Response, error) {
	return c.Do(ctx, &webclient.Request{
		Method:  "POST",
		URL:     url,
		Headers: http.Header{"Content-Type": []string{contentType}},
		Body:    body,
	})
}

func (c *ScriptedWebClient) Close() error { return nil }

// RequestCount returns how many requests hit the given URL.
func (c *ScriptedWebClient) RequestCount(url string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, u := range c.Requests {
		if u == url {
			n++
		}
	}
	return n
}
