package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/SeakMengs/FontCatalog/internal/config"
	"github.com/SeakMengs/FontCatalog/internal/env"
	"github.com/SeakMengs/FontCatalog/internal/util"
	"github.com/SeakMengs/FontCatalog/pkg/fontcatalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	cfg     config.Config
	verbose bool
	logger  *zap.SugaredLogger
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &options{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "scan_font [dir]",
		Short: "Print the font picker snippet for a directory of font files",
		Long: `Lists the font files (.woff .woff2 .ttf .otf .eot) in dir, derives a value and
a label from each filename and prints a useState array literal with the
default fonts followed by one entry per file.

dir defaults to FONTS_DIR (public/fonts).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = util.NewCLILogger(opts.verbose)
			if envErr != nil {
				opts.logger.Warnw("Using process environment only", "error", envErr)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnippet(cmd.OutOrStdout(), opts, fontDir(opts, args))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(newJSONCmd(opts))
	cmd.AddCommand(newPublishCmd(opts))

	return cmd
}

func fontDir(opts *options, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return opts.cfg.Fonts.DIR
}

// Missing directories and empty ones are reported on out and are not errors.
func scanOrReport(out io.Writer, opts *options, dir string) ([]string, bool, error) {
	opts.logger.Debugw("Scanning font directory", "dir", dir)

	files, err := fontcatalog.ScanFontDir(dir)
	switch {
	case errors.Is(err, fontcatalog.ErrDirNotExist):
		fmt.Fprintf(out, "Directory %s does not exist!\n", dir)
		return nil, false, nil
	case errors.Is(err, fontcatalog.ErrNoFonts):
		fmt.Fprintln(out, "No font files found in the directory!")
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	opts.logger.Debugw("Found font files", "dir", dir, "count", len(files))
	return files, true, nil
}

func runSnippet(out io.Writer, opts *options, dir string) error {
	files, ok, err := scanOrReport(out, opts, dir)
	if !ok || err != nil {
		return err
	}

	return fontcatalog.WriteSnippet(out, files)
}

// this function run before main
// reported once the logger exists
var envErr error

func init() {
	envErr = env.LoadEnv(".env")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(config.GetConfig()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
