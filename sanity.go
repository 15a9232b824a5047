package sanity

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/sanity/internal/transport"
)

// Client issues requests against one Sanity project and dataset.
//
// A Client is never modified after construction: [Client.UseCDN] and
// [Client.WithToken] return a new Client sharing the same transport, so
// older values keep their settings and may be used concurrently.
type Client struct {
	cfg     Config
	hc      *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics
}

// New returns a Client for project, dataset and apiVersion (for example
// "2022-01-12"). The CDN is off and no token is set unless options say
// otherwise.
func New(project, dataset, apiVersion string, optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	c := &Client{
		cfg:    NewConfig(project, dataset, apiVersion).WithCDN(opts.cdn),
		hc:     &http.Client{},
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer(""),
	}

	if opts.token != nil {
		c.cfg = c.cfg.WithToken(*opts.token)
	}

	if opts.client != nil {
		cpy := *opts.client
		c.hc = &cpy
	}

	if opts.timeout != nil {
		c.hc.Timeout = *opts.timeout
	}

	if opts.logger != nil {
		c.logger = opts.logger
	}

	if opts.tracer != nil {
		c.tracer = opts.tracer
	}

	if opts.registerer != nil {
		m, err := newMetrics(opts.registerer)
		if err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
		c.metrics = m
	}

	base := c.hc.Transport
	if opts.rt != nil {
		base = opts.rt
	}

	rt, err := transport.Chain(base, transport.Config{
		Throttle:   opts.throttle,
		UserAgent:  opts.userAgent,
		RequestIDs: opts.requestIDs,
		Logger:     func() *slog.Logger { return c.logger },
	})
	if err != nil {
		return nil, err
	}
	c.hc.Transport = rt

	return c, nil
}

// Config returns the client's configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// UseCDN returns a Client that reads from the API CDN when useCDN is true
// and from the live API otherwise.
//
// https://www.sanity.io/docs/api-cdn
func (c *Client) UseCDN(useCDN bool) *Client {
	cpy := *c
	cpy.cfg = c.cfg.WithCDN(useCDN)
	return &cpy
}

// WithToken returns a Client that sends token as a bearer credential.
//
// https://www.sanity.io/docs/http-auth
func (c *Client) WithToken(token string) *Client {
	cpy := *c
	cpy.cfg = c.cfg.WithToken(token)
	return &cpy
}

// Query starts a request against the query endpoint.
//
// https://www.sanity.io/docs/http-query
func (c *Client) Query(groq string) *QueryBuilder {
	return &QueryBuilder{
		client: c,
		query:  groq,
		params: make(map[string]string),
	}
}

// Documents starts a request fetching ids from the doc endpoint.
//
// https://www.sanity.io/docs/http-doc
func (c *Client) Documents(ids ...string) *DocumentsBuilder {
	return &DocumentsBuilder{
		client: c,
		ids:    append([]string(nil), ids...),
	}
}

// Document is shorthand for Documents(id).
func (c *Client) Document(id string) *DocumentsBuilder {
	return c.Documents(id)
}
