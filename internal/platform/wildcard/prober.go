// Package wildcard detects wildcard DNS under a target domain so that
// brute-force results can be flagged as likely noise.
package wildcard

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"

	"shabnam/internal/core/ports"
	"shabnam/internal/platform/logx"
)

const (
	DefaultResolver = "1.1.1.1:53"
	DefaultTimeout  = 3 * time.Second
	DefaultSamples  = 2
)

// exchanger is the subset of *dns.Client the prober needs.
type exchanger interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (*dns.Msg, time.Duration, error)
}

// Options configures a Prober.
type Options struct {
	Resolver string
	Timeout  time.Duration
	Samples  int
}

// Prober resolves random labels under a domain, one query at a time.
type Prober struct {
	client   exchanger
	resolver string
	samples  int
	logger   logx.Logger
	label    func() string
}

var _ ports.WildcardProber = (*Prober)(nil)

// New creates a Prober that talks UDP to opts.Resolver.
func New(logger logx.Logger, opts Options) *Prober {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	client := &dns.Client{
		Net:          "udp",
		Timeout:      opts.Timeout,
		Dialer:       &net.Dialer{Timeout: opts.Timeout},
		ReadTimeout:  opts.Timeout,
		WriteTimeout: opts.Timeout,
	}
	return newProber(client, logger, opts)
}

func newProber(client exchanger, logger logx.Logger, opts Options) *Prober {
	if opts.Resolver == "" {
		opts.Resolver = DefaultResolver
	}
	if _, _, err := net.SplitHostPort(opts.Resolver); err != nil {
		opts.Resolver = net.JoinHostPort(opts.Resolver, "53")
	}
	if opts.Samples <= 0 {
		opts.Samples = DefaultSamples
	}
	return &Prober{
		client:   client,
		resolver: opts.Resolver,
		samples:  opts.Samples,
		logger:   logger.With("component", "wildcard"),
		label:    randomLabel,
	}
}

// Probe reports a wildcard when any random label under domain resolves.
// A query error ends the probe with that error; the caller decides whether
// it matters.
func (p *Prober) Probe(ctx context.Context, domain string) (ports.WildcardResult, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))

	for i := 0; i < p.samples; i++ {
		if err := ctx.Err(); err != nil {
			return ports.WildcardResult{}, err
		}

		name := p.label() + "." + domain
		answers, err := p.lookup(ctx, name)
		if err != nil {
			return ports.WildcardResult{Probe: name}, err
		}
		p.logger.Debug("wildcard probe", "name", name, "answers", len(answers))

		if len(answers) > 0 {
			return ports.WildcardResult{Wildcard: true, Probe: name, Answers: answers}, nil
		}
	}
	return ports.WildcardResult{}, nil
}

func (p *Prober) lookup(ctx context.Context, name string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeA)
	msg.RecursionDesired = true

	resp, _, err := p.client.ExchangeContext(ctx, msg, p.resolver)
	if err != nil {
		return nil, fmt.Errorf("query %s via %s: %w", name, p.resolver, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("query %s via %s: empty response", name, p.resolver)
	}

	switch resp.Rcode {
	case dns.RcodeSuccess, dns.RcodeNameError:
	default:
		return nil, fmt.Errorf("query %s via %s: rcode %s", name, p.resolver, dns.RcodeToString[resp.Rcode])
	}

	var answers []string
	for _, rr := range resp.Answer {
		switch v := rr.(type) {
		case *dns.A:
			answers = append(answers, v.A.String())
		case *dns.CNAME:
			answers = append(answers, strings.TrimSuffix(v.Target, "."))
		}
	}
	return answers, nil
}

func randomLabel() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "shabnam" + time.Now().UTC().Format("150405")
	}
	return hex.EncodeToString(buf)
}
