package cli

import (
	"github.com/spf13/cobra"
)

func newRoomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "room <id>",
		Short: "Look up a room by its share code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoomInfo

			if err := client.Get("/api/v1/rooms/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
