package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a context",
		Long:    "Delete a context. The current context cannot be deleted; switch away from it first.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := o.store()
			if err != nil {
				return err
			}
			ctx, cancel := o.writeContext()
			defer cancel()
			if err := store.DeleteContext(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(o.streams.Out, "Context %q deleted.\n", args[0])
			return nil
		},
	}
}
