// Package transport assembles the [http.RoundTripper] chain used by the
// sanity client.
//
// [Chain] wraps a base transport, innermost first, with:
//
//   - a token-bucket throttle built on [golang.org/x/time/rate], when
//     [Config.Throttle] is set,
//   - a persistent User-Agent header, when [Config.UserAgent] is set,
//   - an X-Request-Id header carrying a fresh UUID per request, when
//     [Config.RequestIDs] is true.
//
// Headers are set on a clone of the outgoing request, never on the
// caller's value.
package transport
