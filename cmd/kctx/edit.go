package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/renato0307/kctx/internal/kubeconfig"
)

var editExample = templates.Examples(`
	# Rename a context; current-context follows the rename
	kctx edit old-name --name new-name

	# Clear the namespace
	kctx edit dev --namespace ""`)

func newEditCmd(o *rootOptions) *cobra.Command {
	var name, cluster, user, namespace string
	cmd := &cobra.Command{
		Use:     "edit NAME",
		Short:   "Rename a context or change its cluster, user or namespace",
		Example: editExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			opts := kubeconfig.ModifyOptions{}
			if flags.Changed("name") {
				opts.NewName = &name
			}
			if flags.Changed("cluster") {
				opts.Cluster = &cluster
			}
			if flags.Changed("user") {
				opts.User = &user
			}
			if flags.Changed("namespace") {
				opts.Namespace = &namespace
			}
			if opts == (kubeconfig.ModifyOptions{}) {
				return errors.New("nothing to change: set at least one of --name, --cluster, --user, --namespace")
			}

			store, err := o.store()
			if err != nil {
				return err
			}
			ctx, cancel := o.writeContext()
			defer cancel()
			if err := store.ModifyContext(ctx, args[0], opts); err != nil {
				return err
			}

			final := args[0]
			if opts.NewName != nil {
				final = name
			}
			fmt.Fprintf(o.streams.Out, "Context %q updated.\n", final)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name for the context")
	cmd.Flags().StringVar(&cluster, "cluster", "", "Cluster the context uses")
	cmd.Flags().StringVar(&user, "user", "", "User the context uses")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Default namespace (empty clears it)")
	return cmd
}
