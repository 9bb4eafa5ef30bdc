package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/printers"
	"k8s.io/kubectl/pkg/util/templates"
	"sigs.k8s.io/yaml"

	"github.com/renato0307/kctx/internal/kubeconfig"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
	outputJSON  = "json"
	outputName  = "name"
)

var (
	listLong = templates.LongDesc(`
		List the contexts of the kubeconfig.

		With a query, contexts are ranked by how well their name, cluster, user
		and namespace match it. The filter flags match exactly and are applied
		before ranking.`)

	listExample = templates.Examples(`
		# List every context, current first
		kctx list

		# Fuzzy search across names, clusters, users and namespaces
		kctx list prd

		# Only contexts on one cluster, as YAML
		kctx list --cluster prod-eks -o yaml`)
)

type listOptions struct {
	*rootOptions
	filters kubeconfig.SearchFilters
	output  string
}

func newListCmd(root *rootOptions) *cobra.Command {
	o := &listOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:     "list [QUERY]",
		Aliases: []string{"ls"},
		Short:   "List and search contexts",
		Long:    listLong,
		Example: listExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.filters.Query = args[0]
			}
			return o.run()
		},
	}
	cmd.Flags().StringVar(&o.filters.Cluster, "cluster", "", "Only contexts using this cluster")
	cmd.Flags().StringVar(&o.filters.User, "user", "", "Only contexts using this user")
	cmd.Flags().StringVar(&o.filters.Namespace, "namespace", "", "Only contexts with this namespace")
	cmd.Flags().BoolVar(&o.filters.ShowOnlyCurrent, "current", false, "Only the current context")
	cmd.Flags().BoolVar(&o.filters.ShowOnlyWithNamespace, "with-namespace", false, "Only contexts that set a namespace")
	cmd.Flags().StringVarP(&o.output, "output", "o", outputTable, "Output format: table, yaml, json or name")
	return cmd
}

func (o *listOptions) run() error {
	switch o.output {
	case outputTable, outputYAML, outputJSON, outputName:
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}

	_, doc, err := o.read()
	if err != nil {
		return err
	}
	results := kubeconfig.SearchAndFilterContexts(doc.AllContexts(), o.filters)

	out := o.streams.Out
	switch o.output {
	case outputYAML:
		return printYAML(out, contextsOf(results))
	case outputJSON:
		return printJSON(out, contextsOf(results))
	case outputName:
		for _, r := range results {
			fmt.Fprintln(out, r.Context.Name)
		}
		return nil
	}

	if len(results) == 0 {
		fmt.Fprintln(o.streams.ErrOut, "No contexts found.")
		return nil
	}

	w := printers.GetNewTabWriter(out)
	fmt.Fprintln(w, "CURRENT\tNAME\tCLUSTER\tUSER\tNAMESPACE\tAUTH\tSERVER")
	for _, r := range results {
		c := r.Context
		server := ""
		if c.ClusterDetails != nil {
			server = c.ClusterDetails.Server
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			currentMark(c.Current), c.Name, c.Cluster, c.User, c.Namespace, c.UserAuthMethod, server)
	}
	return w.Flush()
}

func contextsOf(results []kubeconfig.SearchResult) []kubeconfig.KubernetesContext {
	contexts := make([]kubeconfig.KubernetesContext, 0, len(results))
	for _, r := range results {
		contexts = append(contexts, r.Context)
	}
	return contexts
}

func currentMark(current bool) string {
	if current {
		return "*"
	}
	return ""
}

func printYAML(out io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
