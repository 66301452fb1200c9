package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/fixen/internal/wire"
)

// MenuCmd returns the menu command
func MenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu (the default)",
		Args:  cobra.NoArgs,
		RunE:  runMenu,
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	return wire.MenuAdapter(cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}
