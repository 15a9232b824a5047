// Package app implements the sanity command-line interface.
package app

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/sanity"
)

const (
	defaultAPIVersion = "2022-01-12"
	cliVersion        = "0.1.0"
)

// GlobalOptions holds flags shared by every sub-command.
type GlobalOptions struct {
	APIVersion string
	CDN        bool
	Token      string
	Timeout    time.Duration
	Verbose    bool

	// transport replaces the network in tests.
	transport http.RoundTripper
}

// NewSanityCommand creates the root command with all sub-commands.
func NewSanityCommand() *cobra.Command {
	return newSanityCommand(&GlobalOptions{})
}

func newSanityCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sanity",
		Short: "Query a Sanity.io dataset",
		Long: `sanity runs GROQ queries and fetches documents by id from a Sanity.io
project and dataset.

The bearer token defaults to the SANITY_TOKEN environment variable; a .env
file in the working directory is loaded first.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.APIVersion, "api-version", defaultAPIVersion, "API version, without the leading v")
	cmd.PersistentFlags().BoolVar(&opts.CDN, "cdn", false, "read from the API CDN")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", os.Getenv("SANITY_TOKEN"), "bearer token (default $SANITY_TOKEN)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "overall request timeout")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(
		NewAssetsCommand(opts),
		NewQueryCommand(opts),
		NewDocCommand(opts),
	)

	return cmd
}

// newClient builds a client for project and dataset from the global flags.
func newClient(cmd *cobra.Command, opts *GlobalOptions, project, dataset string) (*sanity.Client, error) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	clientOpts := []sanity.Option{
		sanity.WithTimeout(opts.Timeout),
		sanity.WithLogger(logger),
		sanity.WithUserAgent("sanity-cli/" + cliVersion),
		sanity.WithCDN(opts.CDN),
	}
	if opts.transport != nil {
		clientOpts = append(clientOpts, sanity.WithTransport(opts.transport))
	}

	c, err := sanity.New(project, dataset, opts.APIVersion, clientOpts...)
	if err != nil {
		return nil, err
	}

	if opts.Token != "" {
		c = c.WithToken(opts.Token)
	}

	return c, nil
}
