package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/sanity"
)

const assetsQuery = "*[ _type == 'sanity.imageAsset' ]{ 'id': _id, 'dimensions': metadata.dimensions }"

type dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d dimensions) String() string {
	return fmt.Sprintf("(%dx%d)", d.Width, d.Height)
}

type imageAsset struct {
	ID         string     `json:"id" validate:"required"`
	Dimensions dimensions `json:"dimensions"`
}

// NewAssetsCommand lists the id and dimensions of every image asset.
//
//	sanity assets PROJECT DATASET
func NewAssetsCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "assets PROJECT DATASET",
		Short: "List image assets and their dimensions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd, opts, args[0], args[1])
			if err != nil {
				return err
			}

			resp, err := sanity.JSON[imageAsset](cmd.Context(), c.Query(assetsQuery), sanity.WithValidation())
			if err != nil {
				return fmt.Errorf("listing assets: %w", err)
			}

			for _, a := range resp.Result {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\t%s\n", a.ID, a.Dimensions)
			}

			return nil
		},
	}
}
