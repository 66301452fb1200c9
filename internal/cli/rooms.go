package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/fixen/internal/wire"
)

// RoomsCmd returns the rooms command
func RoomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Query the room registry without the menu",
	}

	cmd.AddCommand(roomsListCmd())
	cmd.AddCommand(roomsSearchCmd())

	return cmd
}

func roomsListCmd() *cobra.Command {
	var floor int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the rooms of a floor in display order",
		Long: `List the rooms of a floor: numeric room numbers first by value, then
CLR and ECE rooms, then everything else alphabetically.

Examples:
  fixen rooms list --floor 2
  fixen rooms list --floor 1 --width 80 --border '#'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.RoomAdapterWithOutput(cmd.OutOrStdout()).ShowFloor(cmd.Context(), floor)
			return err
		},
	}

	cmd.Flags().IntVar(&floor, "floor", 0, "floor number (required)")
	_ = cmd.MarkFlagRequired("floor")

	return cmd
}

func roomsSearchCmd() *cobra.Command {
	var number string
	var roomType int
	var issue int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search rooms by number, type or issue",
		Long: `Search rooms by one criterion.

Types: 1 Classroom, 2 Faculty, 3 Laboratory Room, 4 Computer Laboratory,
5 Electrical Room.
Issues: 1 Cleaning Maintenance, 2 Repair Maintenance, 3 Equipment Maintenance.

Examples:
  fixen rooms search --number CLR
  fixen rooms search --type 4
  fixen rooms search --issue 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.RoomAdapterWithOutput(cmd.OutOrStdout())
			var err error
			switch {
			case cmd.Flags().Changed("number"):
				_, err = adapter.SearchByNumber(cmd.Context(), number)
			case cmd.Flags().Changed("type"):
				_, err = adapter.SearchByType(cmd.Context(), roomType)
			default:
				_, err = adapter.SearchByIssue(cmd.Context(), issue)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "room number fragment (case-sensitive)")
	cmd.Flags().IntVar(&roomType, "type", 0, "room type choice (1-5)")
	cmd.Flags().IntVar(&issue, "issue", 0, "issue category choice (1-3)")
	cmd.MarkFlagsMutuallyExclusive("number", "type", "issue")
	cmd.MarkFlagsOneRequired("number", "type", "issue")

	return cmd
}
