package sanity

import (
	"context"
	"net/http"
	"strings"
)

// DocumentsBuilder accumulates document ids for the doc endpoint. Ids keep
// their order and duplicates are sent as given.
type DocumentsBuilder struct {
	client *Client
	ids    []string
}

// Document appends id.
func (d *DocumentsBuilder) Document(id string) *DocumentsBuilder {
	d.ids = append(d.ids, id)
	return d
}

// Documents appends ids.
func (d *DocumentsBuilder) Documents(ids ...string) *DocumentsBuilder {
	d.ids = append(d.ids, ids...)
	return d
}

// Build returns the GET request for the doc endpoint with the ids joined
// by commas. With no ids the path ends in a slash.
func (d *DocumentsBuilder) Build(ctx context.Context) (*http.Request, error) {
	return d.client.cfg.Request(ctx, http.MethodGet, EndpointDoc, strings.Join(d.ids, ","))
}

// Send issues the request and returns the raw response regardless of its
// status code. The caller must close the body.
func (d *DocumentsBuilder) Send(ctx context.Context) (*http.Response, error) {
	req, err := d.Build(ctx)
	if err != nil {
		return nil, err
	}

	return d.client.send(req, EndpointDoc)
}
