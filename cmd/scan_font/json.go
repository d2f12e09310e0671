package main

import (
	"fmt"

	"github.com/SeakMengs/FontCatalog/pkg/fontcatalog"
	"github.com/spf13/cobra"
)

func newJSONCmd(opts *options) *cobra.Command {
	var (
		output string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "json [dir]",
		Short: "Write the font metadata of dir to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			files, ok, err := scanOrReport(out, opts, fontDir(opts, args))
			if !ok || err != nil {
				return err
			}

			if err := fontcatalog.WriteMetadataJSON(output, fontcatalog.BuildMetadata(files, prefix)); err != nil {
				return err
			}

			fmt.Fprintf(out, "Saved metadata for %d fonts to %q\n", len(files), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", opts.cfg.Fonts.METADATA_PATH, "metadata file to write")
	cmd.Flags().StringVar(&prefix, "prefix", opts.cfg.Fonts.PUBLIC_PREFIX, "URL path prefix for the file field")

	return cmd
}
