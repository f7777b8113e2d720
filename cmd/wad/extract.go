package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/meigma/wad"
	"github.com/meigma/wad/locator"
)

func newExtractCmd(gf *globalFlags) *cobra.Command {
	var (
		overwrite bool
		workers   int
		scope     string
	)
	cmd := &cobra.Command{
		Use:   "extract FILE DIR",
		Short: "Write every lump of a WAD file into a directory",
		Long: `Write every lump of a WAD file into DIR as NNNN_NAME.lmp.

With --scope, only the lumps selected by a locator prefix are written,
for example --scope f/ for the flats section or --scope e1m1+ for
everything from the E1M1 marker on.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := gf.load(cmd, args[0])
			if err != nil {
				return err
			}
			v := w.View()
			if scope != "" {
				q, err := locator.ParseScope(scope)
				if err != nil {
					return fmt.Errorf("scope %q: %w", scope, err)
				}
				if v, err = q.Scope(v); err != nil {
					return fmt.Errorf("scope %q: %w", scope, err)
				}
			}

			stats, err := wad.Extract(v, args[1],
				wad.ExtractWithOverwrite(overwrite),
				wad.ExtractWithWorkers(workers),
				wad.ExtractWithLogger(gf.logger(cmd)),
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "extracted %d lumps (%s), skipped %d\n",
				stats.Files, humanize.IBytes(stats.Bytes), stats.Skipped)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing files")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of files written concurrently (0 uses GOMAXPROCS)")
	cmd.Flags().StringVar(&scope, "scope", "", "locator prefix selecting the lumps to extract, e.g. f/ or e1m1+")
	return cmd
}
