package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrMustNotBeZero = errors.New("must be greater than zero")
	ErrWaitingFailed = errors.New("limiter waiting failed")
	ErrContextEnded  = errors.New("throttle context ended")
)

// Throttle sets the requests per second and burst of the token bucket.
type Throttle struct {
	RPS   int
	Burst int
}

// Validate reports whether both values are positive.
func (t Throttle) Validate() error {
	if t.RPS <= 0 || t.Burst <= 0 {
		return fmt.Errorf("rps[%d] and burst[%d] %w", t.RPS, t.Burst, ErrMustNotBeZero)
	}

	return nil
}

// throttle blocks outbound requests until the limiter hands out a token
// or the request context ends.
type throttle struct {
	limiter *rate.Limiter
	cfg     Throttle
	next    http.RoundTripper
	logFn   func() *slog.Logger
}

func newThrottle(cfg Throttle, logFn func() *slog.Logger, next http.RoundTripper) (*throttle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &throttle{
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		cfg:     cfg,
		next:    next,
		logFn:   logFn,
	}, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	if err := t.wait(ctx, r.URL.Path); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return t.next.RoundTrip(r)
}

// wait reserves one token and sleeps until it is due. The reservation is
// the only token taken per request.
func (t *throttle) wait(ctx context.Context, path string) error {
	res := t.limiter.Reserve()
	if !res.OK() {
		return fmt.Errorf("%w: burst %d cannot be satisfied", ErrWaitingFailed, t.cfg.Burst)
	}

	delay := res.Delay()
	if delay <= 0 {
		return nil
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < delay {
		res.Cancel()
		return fmt.Errorf("%w: wait of %v exceeds deadline: %w", ErrWaitingFailed, delay, context.DeadlineExceeded)
	}

	logger := t.logFn()
	if logger != nil {
		logger.Info("sanity throttle tokens exhausted", "rate", t.cfg.RPS, "burst", t.cfg.Burst, "path", path, "delay", delay.String())
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		res.Cancel()
		return fmt.Errorf("%w: %w", ErrWaitingFailed, ctx.Err())
	case <-timer.C:
	}

	if logger != nil {
		logger.Info("sanity throttle wait complete", "waited", delay.String())
	}

	return nil
}
