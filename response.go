package sanity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/adamwoolhether/sanity/internal/validate"
)

// Response is the body returned by the query endpoint. Result holds the
// query's result set decoded into the caller's type.
type Response[T any] struct {
	Ms     int    `json:"ms"`
	Query  string `json:"query"`
	Result []T    `json:"result"`
}

// DocumentsResponse is the body returned by the doc endpoint.
type DocumentsResponse[T any] struct {
	Documents []T       `json:"documents"`
	Omitted   []Omitted `json:"omitted"`
}

// Omitted names a requested document that was not returned and why, for
// example "existence" or "permission".
type Omitted struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// JSON sends q and decodes the result set into T.
//
// A non-200 response yields an *UnexpectedStatusError and a body that does
// not decode yields a *DecodeError. Transport errors are returned wrapped.
func JSON[T any](ctx context.Context, q *QueryBuilder, opts ...DecodeOption) (*Response[T], error) {
	req, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	settings := decodeSettings(opts)

	var out Response[T]
	err = q.client.exec(req, EndpointQuery, func(resp *http.Response) error {
		if err := decodeBody(resp.Body, &out, settings); err != nil {
			return err
		}

		if settings.validate {
			if err := validate.Slice("result", out.Result); err != nil {
				return &DecodeError{Err: err}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// DocumentsJSON sends d and decodes the returned documents into T. Errors
// are reported as for [JSON].
func DocumentsJSON[T any](ctx context.Context, d *DocumentsBuilder, opts ...DecodeOption) (*DocumentsResponse[T], error) {
	req, err := d.Build(ctx)
	if err != nil {
		return nil, err
	}

	settings := decodeSettings(opts)

	var out DocumentsResponse[T]
	err = d.client.exec(req, EndpointDoc, func(resp *http.Response) error {
		if err := decodeBody(resp.Body, &out, settings); err != nil {
			return err
		}

		if settings.validate {
			if err := validate.Slice("documents", out.Documents); err != nil {
				return &DecodeError{Err: err}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func decodeSettings(opts []DecodeOption) decodeOpts {
	var settings decodeOpts
	for _, opt := range opts {
		opt(&settings)
	}

	return settings
}

func decodeBody(r io.Reader, dest any, settings decodeOpts) error {
	d := json.NewDecoder(r)
	if settings.useJSONNum {
		d.UseNumber()
	}

	if err := d.Decode(dest); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}
