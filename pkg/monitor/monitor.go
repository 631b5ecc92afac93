// Package monitor holds the quality-gate decision logic and the two
// orchestration flows that apply it: webhook-driven unmonitoring of freshly
// downloaded items and on-demand full-library scans.
package monitor

import (
	"net/url"
	"strings"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/Makhuta/arr-monitor-manager/pkg/configstore"
)

// ClientFactory builds a media client for a stored configuration.
type ClientFactory func(cfg configstore.Configuration) arr.Client

// Monitor runs the unmonitor orchestrations. One orchestration run completes
// before the next; there is no shared state between runs.
type Monitor struct {
	newClient ClientFactory
	observer  Observer
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithObserver replaces the default log-backed observer.
func WithObserver(o Observer) Option {
	return func(m *Monitor) {
		m.observer = o
	}
}

// New creates a Monitor that builds clients with the given factory.
func New(newClient ClientFactory, opts ...Option) Monitor {
	m := Monitor{
		newClient: newClient,
		observer:  LogObserver{},
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// NewClientFactory returns a factory building arr clients over the given
// HTTP client. Hosts may carry an explicit scheme; plain host:port defaults
// to http, matching how the managers are usually deployed.
func NewClientFactory(httpClient arr.HTTPClient) ClientFactory {
	return func(cfg configstore.Configuration) arr.Client {
		scheme, host := "http", cfg.Host
		if strings.Contains(cfg.Host, "://") {
			if u, err := url.Parse(cfg.Host); err == nil && u.Host != "" {
				scheme, host = u.Scheme, u.Host
			}
		}

		return arr.New(httpClient, scheme, host, cfg.APIKey, cfg.ServiceType)
	}
}
