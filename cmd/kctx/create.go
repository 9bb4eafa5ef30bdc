package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/renato0307/kctx/internal/kubeconfig"
)

var (
	createLong = templates.LongDesc(`
		Create a context.

		Clusters and users that do not exist yet are added as placeholders: the
		cluster gets the --server URL and skips TLS verification, the user has no
		credentials. Fill them in with kubectl config set-cluster and
		set-credentials.`)

	createExample = templates.Examples(`
		# Reuse an existing cluster and user
		kctx create team-a --cluster prod-eks --user team-a-sa --namespace team-a

		# Point a new context at a local cluster
		kctx create kind --cluster kind --user kind-admin --server https://127.0.0.1:6443`)
)

func newCreateCmd(o *rootOptions) *cobra.Command {
	opts := kubeconfig.CreateOptions{}
	cmd := &cobra.Command{
		Use:     "create NAME",
		Short:   "Create a context",
		Long:    createLong,
		Example: createExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			store, err := o.store()
			if err != nil {
				return err
			}
			ctx, cancel := o.writeContext()
			defer cancel()
			if err := store.CreateContext(ctx, opts); err != nil {
				return err
			}
			fmt.Fprintf(o.streams.Out, "Context %q created.\n", opts.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Cluster, "cluster", "", "Cluster the context uses")
	cmd.Flags().StringVar(&opts.User, "user", "", "User the context uses")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "Default namespace")
	cmd.Flags().StringVar(&opts.Server, "server", "", "Server URL for a new placeholder cluster")
	_ = cmd.MarkFlagRequired("cluster")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
