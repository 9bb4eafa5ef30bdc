package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/renato0307/kctx/internal/kubeconfig"
)

var checkLong = templates.LongDesc(`
	Check the kubeconfig for problems.

	Reports duplicate names, contexts pointing at missing clusters or users,
	and a current-context that does not exist, then validates the file the
	way kubectl would. Exits non-zero when anything is found.`)

func newCheckCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the kubeconfig for problems",
		Long:  checkLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, doc, err := o.read()
			if err != nil {
				return err
			}
			problems, err := kubeconfig.Check(doc)
			if err != nil {
				return err
			}
			if len(problems) == 0 {
				fmt.Fprintf(o.streams.Out, "%s: no problems found\n", store.Path())
				return nil
			}
			for _, p := range problems {
				fmt.Fprintf(o.streams.Out, "- %s\n", p)
			}
			return fmt.Errorf("%s: %d problem(s) found", store.Path(), len(problems))
		},
	}
}
