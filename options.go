package sanity

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/sanity/internal/transport"
)

// Option is a functional option for configuring a [Client] via [New].
type Option func(*options) error
type options struct {
	client     *http.Client
	rt         http.RoundTripper
	timeout    *time.Duration
	userAgent  string
	throttle   *transport.Throttle
	requestIDs bool
	logger     *slog.Logger
	tracer     trace.Tracer
	registerer prometheus.Registerer
	cdn        bool
	token      *string
}

// WithHTTPClient uses hc's settings (timeout, redirects, jar, transport)
// for the client. hc is copied; the caller's value is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		o.client = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		o.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying [http.Client].
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = &d
		return nil
	}
}

// WithUserAgent adds a persistent User-Agent header to all outgoing requests.
func WithUserAgent(header string) Option {
	return func(o *options) error {
		o.userAgent = header
		return nil
	}
}

// WithThrottle enables token-bucket rate limiting with the given requests per second and burst capacity.
func WithThrottle(rps, burst int) Option {
	return func(o *options) error {
		th := transport.Throttle{RPS: rps, Burst: burst}
		if err := th.Validate(); err != nil {
			return err
		}
		o.throttle = &th
		return nil
	}
}

// WithRequestIDs tags every request with a random X-Request-Id header.
func WithRequestIDs() Option {
	return func(o *options) error {
		o.requestIDs = true
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithTracer records a span around every request sent by the [Client].
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

// WithMetrics registers request counters and latency histograms with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) error {
		if reg == nil {
			return errors.New("registerer must not be nil")
		}
		o.registerer = reg
		return nil
	}
}

// WithCDN starts the client on the API CDN host. Equivalent to calling
// [Client.UseCDN] after [New].
func WithCDN(useCDN bool) Option {
	return func(o *options) error {
		o.cdn = useCDN
		return nil
	}
}

// WithToken starts the client authenticated with token. Equivalent to
// calling [Client.WithToken] after [New].
func WithToken(token string) Option {
	return func(o *options) error {
		o.token = &token
		return nil
	}
}

// DecodeOption is a functional option for [JSON] and [DocumentsJSON].
type DecodeOption func(*decodeOpts)

type decodeOpts struct {
	useJSONNum bool
	validate   bool
}

// WithJSONNumber tells the JSON decoder to use [json.Decoder.UseNumber],
// preserving number precision as [json.Number] in untyped fields.
func WithJSONNumber() DecodeOption {
	return func(o *decodeOpts) {
		o.useJSONNum = true
	}
}

// WithValidation checks every decoded element against its `validate`
// struct tags. A failure is returned as a [DecodeError].
func WithValidation() DecodeOption {
	return func(o *decodeOpts) {
		o.validate = true
	}
}
