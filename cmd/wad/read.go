package main

import (
	"github.com/spf13/cobra"

	"github.com/meigma/wad/locator"
)

func newReadCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "read FILE LUMP",
		Short: "Write the contents of a lump to stdout",
		Long: `Write the contents of a lump to stdout.

LUMP is either an entry index or a locator query. Queries are names joined
by operators: "NAME+" continues from the first NAME entry, "NAME/" continues
inside the NAME_START ... NAME_END section.

  wad read doom.wad 0
  wad read doom.wad e1m3+linedefs
  wad read doom.wad f/step1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := gf.load(cmd, args[0])
			if err != nil {
				return err
			}
			e, err := locator.Resolve(w.View(), args[1])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(e.Lump)
			return err
		},
	}
}
