// Package sanity is a small client for the read side of the Sanity.io
// HTTP API: GROQ queries against the query endpoint and fetch-by-id
// against the doc endpoint.
//
// # Building a Client
//
// Use [New] with a project id, dataset and API version. Functional options
// tune the transport:
//
//	c, err := sanity.New("abc123", "production", "2022-01-12",
//		sanity.WithTimeout(10*time.Second),
//		sanity.WithUserAgent("myapp/1.0"),
//	)
//
// [Client.UseCDN] and [Client.WithToken] return new clients and leave the
// receiver untouched:
//
//	private := c.WithToken(os.Getenv("SANITY_TOKEN"))
//	cached := c.UseCDN(true)
//
// # Queries
//
// [Client.Query] returns a [QueryBuilder]. Decode the result set with
// [JSON]:
//
//	type asset struct {
//		ID string `json:"id"`
//	}
//
//	q := c.Query("*[_type == $type]{'id': _id}").Var("type", "sanity.imageAsset")
//	resp, err := sanity.JSON[asset](ctx, q)
//
// # Documents
//
// [Client.Documents] and [Client.Document] return a [DocumentsBuilder]:
//
//	resp, err := sanity.DocumentsJSON[post](ctx, c.Document("a").Document("b"))
//
// # Errors
//
// Transport failures are returned wrapped as they come from [net/http].
// A non-200 answer from [JSON] or [DocumentsJSON] is an
// [*UnexpectedStatusError]; a body that cannot be decoded is a
// [*DecodeError] matching [ErrDecode]. Raw access to any response is
// available through the builders' Send methods.
package sanity
