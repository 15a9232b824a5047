package sanity

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// execFn represents a func to operate on a 200 OK response.
type execFn func(resp *http.Response) error

// send performs one round trip inside a client span. Transport errors are
// wrapped, never retried.
func (c *Client) send(req *http.Request, endpoint Endpoint) (*http.Response, error) {
	ctx, span := c.tracer.Start(req.Context(), "sanity."+string(endpoint),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("sanity.project", c.cfg.project),
			attribute.String("sanity.dataset", c.cfg.dataset),
			attribute.Bool("sanity.cdn", c.cfg.cdn),
			attribute.String("http.request.method", req.Method),
		),
	)
	defer span.End()

	req = req.WithContext(ctx)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.hc.Do(req)
	took := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.metrics.observe(endpoint, "error", took)
		c.logger.Debug("sanity request failed", "endpoint", endpoint, "path", req.URL.Path, "took", took, "error", err)

		return nil, fmt.Errorf("sending %s request: %w", endpoint, err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, resp.Status)
	}
	c.metrics.observe(endpoint, strconv.Itoa(resp.StatusCode), took)
	c.logger.Debug("sanity request", "endpoint", endpoint, "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "took", took)

	return resp, nil
}

// exec sends req and hands a 200 OK response to fn. Any other status is
// returned as an *UnexpectedStatusError.
func (c *Client) exec(req *http.Request, endpoint Endpoint, fn execFn) error {
	resp, err := c.send(req, endpoint)
	if err != nil {
		return err
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err := io.Copy(io.Discard, resp.Body); err != nil {
				c.logger.Error("failed to discard unused body", "error", err)
			}
		}
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		return newStatusError(resp.StatusCode, string(b))
	}

	if err := fn(resp); err != nil {
		discardBody = false
		return err
	}

	return nil
}
