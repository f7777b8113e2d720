package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newLsCmd(gf *globalFlags) *cobra.Command {
	var (
		human      bool
		withDigest bool
	)
	cmd := &cobra.Command{
		Use:   "ls FILE",
		Short: "List the lumps in a WAD file",
		Long:  "Print the index, payload length, and name of every lump, tab-separated.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := gf.load(cmd, args[0])
			if err != nil {
				return err
			}
			v := w.View()

			var sums []string
			if withDigest {
				ds, err := v.Digests(cmd.Context())
				if err != nil {
					return err
				}
				for _, d := range ds {
					sums = append(sums, d.String())
				}
			}

			out := cmd.OutOrStdout()
			it := v.Entries()
			for it.Next() {
				e := it.Entry()
				size := strconv.Itoa(e.Len())
				if human {
					size = humanize.IBytes(uint64(e.Len()))
				}
				if withDigest {
					fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", it.Index(), size, e.Name(), sums[it.Index()])
					continue
				}
				fmt.Fprintf(out, "%d\t%s\t%s\n", it.Index(), size, e.Name())
			}
			return it.Err()
		},
	}
	cmd.Flags().BoolVarP(&human, "human", "H", false, "print lengths in human-readable units")
	cmd.Flags().BoolVar(&withDigest, "digest", false, "append the sha256 digest of each lump")
	return cmd
}
