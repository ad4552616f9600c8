// Package linkprobe answers hyperlink reachability questions for the
// static analyzer's broken-link check.
package linkprobe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
	"github.com/notebook-ci/nbcheck/internal/logger"
)

// Defaults for outbound probing.
const (
	DefaultTimeout = 10 * time.Second
	DefaultRate    = 4 // probes per second
)

// Ensure Probe implements the interface.
var _ driven.LinkProbe = (*Probe)(nil)

// Probe checks whether a URI can be opened. Remote targets are fetched
// over HTTP(S); file URIs are checked on the local filesystem. Outbound
// requests are rate limited to stay polite towards the linked hosts.
//
// Every failure folds into an Unreachable result: the probe never
// returns an error, and a probe is a single attempt with no retry.
type Probe struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Probe.
type Option func(*Probe)

// WithClient overrides the HTTP client. Useful for testing.
func WithClient(client *http.Client) Option {
	return func(p *Probe) { p.client = client }
}

// WithRate overrides the outbound probes-per-second limit.
func WithRate(perSecond float64) Option {
	return func(p *Probe) { p.limiter = rate.NewLimiter(rate.Limit(perSecond), 1) }
}

// WithTimeout overrides the per-probe timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Probe) { p.client.Timeout = timeout }
}

// New creates a link probe.
func New(opts ...Option) *Probe {
	p := &Probe{
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRate), 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe attempts to open uri and reports the outcome.
func (p *Probe) Probe(ctx context.Context, uri string) domain.Reachability {
	if strings.HasPrefix(uri, "file://") {
		return p.probeFile(uri)
	}
	return p.probeRemote(ctx, uri)
}

// probeFile resolves a file URI against the local filesystem.
func (p *Probe) probeFile(uri string) domain.Reachability {
	parsed, err := url.Parse(uri)
	if err != nil {
		return domain.Unreachable(uri, fmt.Sprintf("invalid file URI: %v", err))
	}
	if _, err := os.Stat(parsed.Path); err != nil {
		return domain.Unreachable(uri, err.Error())
	}
	return domain.Reachable(uri)
}

// probeRemote issues a GET and treats any non-success status as
// unreachable. The body is discarded; only success/failure matters.
func (p *Probe) probeRemote(ctx context.Context, uri string) domain.Reachability {
	if err := p.limiter.Wait(ctx); err != nil {
		return domain.Unreachable(uri, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return domain.Unreachable(uri, fmt.Sprintf("invalid URL: %v", err))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Unreachable(uri, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		logger.Debug("probe %s: HTTP %d", uri, resp.StatusCode)
		return domain.Unreachable(uri, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
	return domain.Reachable(uri)
}
