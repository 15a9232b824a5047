package sanity

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// Endpoint names a data endpoint of the Sanity HTTP API.
type Endpoint string

const (
	// EndpointQuery executes GROQ queries.
	EndpointQuery Endpoint = "query"
	// EndpointDoc fetches documents by id.
	EndpointDoc Endpoint = "doc"
)

// Config is the immutable connection configuration shared by a [Client]
// and every builder derived from it. Methods that change a setting return
// a new Config; the receiver is left untouched.
//
// Project, dataset and API version are interpolated into the URL verbatim.
type Config struct {
	project    string
	dataset    string
	apiVersion string
	cdn        bool
	token      string
	hasToken   bool
	baseURL    string
}

// NewConfig returns a Config addressing the direct API host without a token.
func NewConfig(project, dataset, apiVersion string) Config {
	return Config{
		project:    project,
		dataset:    dataset,
		apiVersion: apiVersion,
		baseURL:    baseURL(project, apiVersion, false),
	}
}

// WithCDN returns a copy of cfg using the API CDN host when useCDN is true.
func (cfg Config) WithCDN(useCDN bool) Config {
	cfg.cdn = useCDN
	cfg.baseURL = baseURL(cfg.project, cfg.apiVersion, useCDN)
	return cfg
}

// WithToken returns a copy of cfg that authenticates with token.
func (cfg Config) WithToken(token string) Config {
	cfg.token = token
	cfg.hasToken = true
	return cfg
}

func (cfg Config) Project() string    { return cfg.project }
func (cfg Config) Dataset() string    { return cfg.dataset }
func (cfg Config) APIVersion() string { return cfg.apiVersion }
func (cfg Config) CDN() bool          { return cfg.cdn }
func (cfg Config) BaseURL() string    { return cfg.baseURL }

// Token reports the bearer token and whether one was set.
func (cfg Config) Token() (string, bool) { return cfg.token, cfg.hasToken }

// Request builds a request for {baseURL}/{endpoint}/{dataset}/{path}.
// An empty path keeps the trailing slash. The Authorization header is
// attached when a token is configured.
func (cfg Config) Request(ctx context.Context, method string, endpoint Endpoint, path string) (*http.Request, error) {
	u := fmt.Sprintf("%s/%s/%s/%s", cfg.baseURL, endpoint, cfg.dataset, path)

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	if cfg.hasToken {
		auth := "Bearer " + cfg.token
		if !httpguts.ValidHeaderFieldValue(auth) {
			return nil, ErrInvalidToken
		}
		req.Header.Set("Authorization", auth)
	}

	return req, nil
}

func baseURL(project, apiVersion string, cdn bool) string {
	host := "api"
	if cdn {
		host = "apicdn"
	}

	return fmt.Sprintf("https://%s.%s.sanity.io/v%s/data", project, host, apiVersion)
}
