package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/util/templates"
)

var nsExample = templates.Examples(`
	# List known namespaces, marking the current context's
	kctx ns

	# Set the namespace of the current context
	kctx ns monitoring

	# Set the namespace of another context
	kctx ns monitoring --context prod-eu`)

func newNamespaceCmd(o *rootOptions) *cobra.Command {
	var contextName string
	cmd := &cobra.Command{
		Use:     "ns [NAMESPACE]",
		Aliases: []string{"namespace"},
		Short:   "List namespaces or set a context's namespace",
		Example: nsExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, doc, err := o.read()
			if err != nil {
				return err
			}

			target := contextName
			if target == "" {
				target = doc.CurrentContextName()
			}

			if len(args) == 0 {
				active := ""
				for _, c := range doc.AllContexts() {
					if c.Name == target {
						active = c.Namespace
					}
				}
				for _, ns := range doc.AllNamespaces() {
					if ns == active {
						fmt.Fprintf(o.streams.Out, "* %s\n", ns)
					} else {
						fmt.Fprintf(o.streams.Out, "  %s\n", ns)
					}
				}
				return nil
			}

			if target == "" {
				return errNoCurrentContext
			}
			ctx, cancel := o.writeContext()
			defer cancel()
			if err := store.SetNamespace(ctx, target, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(o.streams.Out, "Namespace of context %q set to %q.\n", target, args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&contextName, "context", "", "Context to change (default: the current context)")
	return cmd
}
