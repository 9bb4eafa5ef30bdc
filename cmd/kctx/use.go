package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/renato0307/kctx/internal/kubeconfig"
)

var useExample = templates.Examples(`
	# Switch to a context by its exact name
	kctx use prod-eu

	# Fuzzy names work when they match a single context
	kctx use prdeu

	# Switch and set the context's namespace in one write
	kctx use staging -n payments`)

func newUseCmd(o *rootOptions) *cobra.Command {
	var namespace string
	cmd := &cobra.Command{
		Use:     "use NAME",
		Aliases: []string{"switch"},
		Short:   "Switch the current context",
		Example: useExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, doc, err := o.read()
			if err != nil {
				return err
			}
			name, err := kubeconfig.ResolveContextName(doc, args[0])
			if err != nil {
				return err
			}

			ctx, cancel := o.writeContext()
			defer cancel()
			if err := store.SwitchContextWithNamespace(ctx, name, namespace); err != nil {
				return err
			}

			if namespace != "" {
				fmt.Fprintf(o.streams.Out, "Switched to context %q (namespace %q).\n", name, namespace)
			} else {
				fmt.Fprintf(o.streams.Out, "Switched to context %q.\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Also set the namespace of the context")
	return cmd
}
