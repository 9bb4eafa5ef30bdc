package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/printers"
)

func newClustersCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clusters",
		Short: "List clusters and how they are reached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, doc, err := o.read()
			if err != nil {
				return err
			}
			w := printers.GetNewTabWriter(o.streams.Out)
			fmt.Fprintln(w, "NAME\tSERVER\tPROTOCOL\tHOST\tPORT\tSECURE\tCA")
			for _, c := range doc.AllClusters() {
				details := doc.ClusterDetails(c.Name)
				if details == nil {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%t\n",
					c.Name, c.Server, details.Protocol, details.Hostname, details.Port, details.IsSecure, details.HasCA)
			}
			return w.Flush()
		},
	}
}

func newUsersCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users and their authentication method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, doc, err := o.read()
			if err != nil {
				return err
			}
			w := printers.GetNewTabWriter(o.streams.Out)
			fmt.Fprintln(w, "NAME\tAUTH")
			for _, u := range doc.AllUsers() {
				fmt.Fprintf(w, "%s\t%s\n", u.Name, u.AuthMethod)
			}
			return w.Flush()
		},
	}
}
