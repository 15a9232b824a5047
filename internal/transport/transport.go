package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request UUID.
const RequestIDHeader = "X-Request-Id"

// Config selects the layers installed by Chain.
type Config struct {
	Throttle   *Throttle
	UserAgent  string
	RequestIDs bool

	// Logger is resolved lazily at request time so the order in which it
	// and the other settings are applied does not matter.
	Logger func() *slog.Logger
}

// Chain wraps base with the layers cfg asks for. A nil base means
// http.DefaultTransport.
func Chain(base http.RoundTripper, cfg Config) (http.RoundTripper, error) {
	if base == nil {
		base = http.DefaultTransport
	}

	rt := base
	if cfg.Throttle != nil {
		logFn := cfg.Logger
		if logFn == nil {
			logFn = func() *slog.Logger { return nil }
		}

		throttled, err := newThrottle(*cfg.Throttle, logFn, rt)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		rt = throttled
	}

	if cfg.UserAgent != "" {
		rt = header{key: "User-Agent", value: func() string { return cfg.UserAgent }, next: rt}
	}

	if cfg.RequestIDs {
		rt = header{key: RequestIDHeader, value: func() string { return uuid.New().String() }, next: rt}
	}

	return rt, nil
}

// header is an http.RoundTripper setting one header on every request.
// A header already present on the request is kept.
type header struct {
	key   string
	value func() string
	next  http.RoundTripper
}

func (h header) RoundTrip(r *http.Request) (*http.Response, error) {
	if r.Header.Get(h.key) != "" {
		return h.next.RoundTrip(r)
	}

	cpy := r.Clone(r.Context())
	cpy.Header.Set(h.key, h.value())

	return h.next.RoundTrip(cpy)
}
