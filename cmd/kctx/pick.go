package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/kctx/internal/logging"
	"github.com/renato0307/kctx/internal/picker"
	"github.com/renato0307/kctx/internal/ui"
)

func newPickCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a context interactively",
		Long:  "Search contexts as you type, enter switches, ctrl+y copies the name, esc clears or quits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := o.store()
			if err != nil {
				return err
			}
			theme := ui.GetTheme(o.theme)
			logging.Info("Starting picker", "kubeconfig", store.Path(), "theme", theme.Name)

			p := tea.NewProgram(
				picker.New(store, theme),
				tea.WithAltScreen(),
				tea.WithInput(o.streams.In),
				tea.WithOutput(o.streams.Out),
			)
			_, err = p.Run()
			return err
		},
	}
}
