package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/sanity"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*GlobalOptions

	// Params are raw key=value query-string parameters.
	Params []string
}

// NewQueryCommand runs a GROQ query and prints the result set as JSON.
//
//	sanity query PROJECT DATASET GROQ [--param key=value]...
func NewQueryCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &QueryOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "query PROJECT DATASET GROQ",
		Short: "Run a GROQ query",
		Example: `  # Count documents of a type, binding $type
  sanity query abc123 production 'count(*[_type == $type])' --param '$type="post"'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd, opts.GlobalOptions, args[0], args[1])
			if err != nil {
				return err
			}

			q := c.Query(args[2])
			for _, p := range opts.Params {
				k, v, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("param %q: expected key=value", p)
				}
				q.Param(k, v)
			}

			resp, err := sanity.JSON[json.RawMessage](cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("running query: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(resp.Result)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Params, "param", "p", nil, "query-string parameter as key=value (repeatable)")

	return cmd
}
