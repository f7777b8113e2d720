package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate every directory entry of a WAD file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := gf.load(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := w.View().Verify(); err != nil {
				var joined interface{ Unwrap() []error }
				if errors.As(err, &joined) {
					for _, e := range joined.Unwrap() {
						fmt.Fprintln(out, e)
					}
				} else {
					fmt.Fprintln(out, err)
				}
				return fmt.Errorf("%s: invalid entries found", args[0])
			}
			fmt.Fprintf(out, "%s: ok (%s, %d entries, %s)\n", args[0], w.Kind(), w.Len(), w.Digest())
			return nil
		},
	}
}
