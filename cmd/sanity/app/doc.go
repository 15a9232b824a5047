package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/sanity"
)

// NewDocCommand fetches documents by id and prints them as JSON. Ids the
// API could not return are reported on stderr.
//
//	sanity doc PROJECT DATASET ID...
func NewDocCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doc PROJECT DATASET ID...",
		Short: "Fetch documents by id",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd, opts, args[0], args[1])
			if err != nil {
				return err
			}

			resp, err := sanity.DocumentsJSON[json.RawMessage](cmd.Context(), c.Documents(args[2:]...))
			if err != nil {
				return fmt.Errorf("fetching documents: %w", err)
			}

			for _, o := range resp.Omitted {
				fmt.Fprintf(cmd.ErrOrStderr(), "omitted %s: %s\n", o.ID, o.Reason)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(resp.Documents)
		},
	}
}
