package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/kctx/internal/picker"
)

var errNoCurrentContext = errors.New("current-context is not set")

func newCurrentCmd(o *rootOptions) *cobra.Command {
	var copyName bool
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the current context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, doc, err := o.read()
			if err != nil {
				return err
			}
			name := doc.CurrentContextName()
			if name == "" {
				return errNoCurrentContext
			}
			fmt.Fprintln(o.streams.Out, name)
			if copyName {
				if err := picker.CopyToClipboard(name); err != nil {
					return err
				}
				fmt.Fprintln(o.streams.ErrOut, "Copied to clipboard.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyName, "copy", false, "Also copy the name to the clipboard")
	return cmd
}
