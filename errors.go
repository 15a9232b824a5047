package sanity

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adamwoolhether/sanity/internal/transport"
)

// maxErrBodySize caps how much of an error response body is kept
// on an [UnexpectedStatusError].
const maxErrBodySize = 4 << 10 // 4KB

var (
	// ErrUnexpectedStatusCode is the sentinel error wrapped by [UnexpectedStatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrAuthFailure is joined with [ErrUnexpectedStatusCode] when the API
	// responds with 401 Unauthorized or 403 Forbidden.
	ErrAuthFailure = errors.New("auth failure")
	// ErrDecode is matched by every [DecodeError].
	ErrDecode = errors.New("decoding response")
	// ErrInvalidToken is returned when the bearer token cannot be carried in
	// an HTTP header value.
	ErrInvalidToken = errors.New("token contains characters invalid in an http header")
	// ErrInvalidParam is returned by Build when a query variable could not be encoded.
	ErrInvalidParam = errors.New("invalid query parameter")
)

// UnexpectedStatusError is returned when the API answers with a status
// other than 200 OK.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return e.Err
}

func newStatusError(code int, body string) *UnexpectedStatusError {
	err := ErrUnexpectedStatusCode
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		err = errors.Join(ErrAuthFailure, ErrUnexpectedStatusCode)
	}

	return &UnexpectedStatusError{
		StatusCode: code,
		Body:       body,
		Err:        err,
	}
}

// DecodeError reports a response body that is not valid JSON, does not
// match the target shape, or fails validation.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ErrMustNotBeZero is returned by [New] when [WithThrottle] is given a
// non-positive rate or burst.
var ErrMustNotBeZero = transport.ErrMustNotBeZero
