package sanity_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/adamwoolhether/sanity"
)

func TestNewConfig_BaseURL(t *testing.T) {
	testCases := map[string]struct {
		project    string
		apiVersion string
		cdn        bool
		exp        string
	}{
		"api": {
			project:    "abc",
			apiVersion: "2022-01-12",
			exp:        "https://abc.api.sanity.io/v2022-01-12/data",
		},
		"apicdn": {
			project:    "abc",
			apiVersion: "2022-01-12",
			cdn:        true,
			exp:        "https://abc.apicdn.sanity.io/v2022-01-12/data",
		},
		"versionVerbatim": {
			project:    "zp7mbokg",
			apiVersion: "1",
			exp:        "https://zp7mbokg.api.sanity.io/v1/data",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := sanity.NewConfig(tc.project, "production", tc.apiVersion).WithCDN(tc.cdn)

			if got := cfg.BaseURL(); got != tc.exp {
				t.Errorf("BaseURL = %q, want %q", got, tc.exp)
			}
			if cfg.CDN() != tc.cdn {
				t.Errorf("CDN = %v, want %v", cfg.CDN(), tc.cdn)
			}
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := sanity.NewConfig("abc", "production", "2022-01-12")

	if cfg.Project() != "abc" || cfg.Dataset() != "production" || cfg.APIVersion() != "2022-01-12" {
		t.Errorf("unexpected fields: %q %q %q", cfg.Project(), cfg.Dataset(), cfg.APIVersion())
	}
	if cfg.CDN() {
		t.Error("CDN should default to false")
	}
	if _, ok := cfg.Token(); ok {
		t.Error("token should not be set")
	}
}

func TestConfig_CopyOnWrite(t *testing.T) {
	orig := sanity.NewConfig("abc", "production", "2022-01-12")

	cdn := orig.WithCDN(true)
	authed := cdn.WithToken("T")

	if orig.CDN() || orig.BaseURL() != "https://abc.api.sanity.io/v2022-01-12/data" {
		t.Errorf("original modified: cdn=%v base=%q", orig.CDN(), orig.BaseURL())
	}
	if _, ok := cdn.Token(); ok {
		t.Error("WithToken modified its receiver")
	}
	if tok, ok := authed.Token(); !ok || tok != "T" {
		t.Errorf("Token = %q, %v; want %q, true", tok, ok, "T")
	}
	if !authed.CDN() {
		t.Error("WithToken dropped the CDN flag")
	}

	if orig.WithCDN(true).WithCDN(true) != orig.WithCDN(true) {
		t.Error("WithCDN(true) is not idempotent")
	}
	if orig.WithCDN(true).WithCDN(false) != orig {
		t.Error("WithCDN(false) did not restore the original configuration")
	}
}

func TestConfig_Request(t *testing.T) {
	cfg := sanity.NewConfig("abc", "production", "2022-01-12")

	testCases := map[string]struct {
		cfg      sanity.Config
		endpoint sanity.Endpoint
		path     string
		expURL   string
		expAuth  string
		expErr   error
	}{
		"queryTrailingSlash": {
			cfg:      cfg,
			endpoint: sanity.EndpointQuery,
			expURL:   "https://abc.api.sanity.io/v2022-01-12/data/query/production/",
		},
		"docPath": {
			cfg:      cfg.WithCDN(true),
			endpoint: sanity.EndpointDoc,
			path:     "a,b",
			expURL:   "https://abc.apicdn.sanity.io/v2022-01-12/data/doc/production/a,b",
		},
		"bearer": {
			cfg:      cfg.WithToken("sk123"),
			endpoint: sanity.EndpointDoc,
			path:     "a",
			expURL:   "https://abc.api.sanity.io/v2022-01-12/data/doc/production/a",
			expAuth:  "Bearer sk123",
		},
		"invalidToken": {
			cfg:      cfg.WithToken("bad\ntoken"),
			endpoint: sanity.EndpointQuery,
			expErr:   sanity.ErrInvalidToken,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			req, err := tc.cfg.Request(t.Context(), http.MethodGet, tc.endpoint, tc.path)
			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Fatalf("exp err: %v, got: %v", tc.expErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("building request: %v", err)
			}

			if req.Method != http.MethodGet {
				t.Errorf("Method = %q, want GET", req.Method)
			}
			if got := req.URL.String(); got != tc.expURL {
				t.Errorf("URL = %q, want %q", got, tc.expURL)
			}
			if got := req.Header.Get("Authorization"); got != tc.expAuth {
				t.Errorf("Authorization = %q, want %q", got, tc.expAuth)
			}
		})
	}
}
