package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Fetch phrase suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Suggestions

			path := fmt.Sprintf("/api/v1/phrases/suggestions?count=%d", count)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 3, "Number of suggestions to fetch (1-20)")

	return cmd
}
