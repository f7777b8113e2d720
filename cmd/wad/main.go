// Command wad lists, reads, checks, and extracts lumps in WAD files.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/meigma/wad"
)

type globalFlags struct {
	verbose bool
	maxSize uint64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var gf globalFlags
	root := &cobra.Command{
		Use:          "wad",
		Short:        "Inspect WAD files",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().Uint64Var(&gf.maxSize, "max-size", wad.DefaultMaxFileSize, "maximum file size in bytes after decompression (0 disables)")

	root.AddCommand(
		newLsCmd(&gf),
		newReadCmd(&gf),
		newCheckCmd(&gf),
		newExtractCmd(&gf),
	)
	return root
}

// logger returns a text logger writing to the command's stderr.
func (gf *globalFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if gf.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// load opens the named WAD file with the global options applied.
func (gf *globalFlags) load(cmd *cobra.Command, path string) (*wad.Wad, error) {
	return wad.Load(path,
		wad.WithMaxFileSize(gf.maxSize),
		wad.WithLogger(gf.logger(cmd)),
	)
}
