package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

// QueryBuilder accumulates a GROQ query and its parameters. It is meant to
// be used by one goroutine and may be sent any number of times.
type QueryBuilder struct {
	client *Client
	query  string
	params map[string]string
	err    error
}

// Param sets a raw query-string parameter. The last value for a key wins.
func (q *QueryBuilder) Param(key, value string) *QueryBuilder {
	q.params[key] = value
	return q
}

// Var binds the GROQ parameter $name to the JSON encoding of value, so
// the query can refer to it as $name.
func (q *QueryBuilder) Var(name string, value any) *QueryBuilder {
	b, err := json.Marshal(value)
	if err != nil {
		q.err = fmt.Errorf("%w $%s: %w", ErrInvalidParam, name, err)
		return q
	}

	return q.Param("$"+name, string(b))
}

// Build returns the GET request for the query endpoint. The query string
// starts with query={groq}, followed by the extra parameters sorted by key.
func (q *QueryBuilder) Build(ctx context.Context) (*http.Request, error) {
	if q.err != nil {
		return nil, q.err
	}

	req, err := q.client.cfg.Request(ctx, http.MethodGet, EndpointQuery, "")
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("query=")
	sb.WriteString(url.QueryEscape(q.query))

	for _, k := range slices.Sorted(maps.Keys(q.params)) {
		sb.WriteByte('&')
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(q.params[k]))
	}
	req.URL.RawQuery = sb.String()

	return req, nil
}

// Send issues the request and returns the raw response regardless of its
// status code. The caller must close the body.
func (q *QueryBuilder) Send(ctx context.Context) (*http.Response, error) {
	req, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	return q.client.send(req, EndpointQuery)
}
