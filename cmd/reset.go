package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intervue-ai/intervue/internal/state"
	"github.com/intervue-ai/intervue/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the locally persisted candidate and session",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := state.Clear(cmd.Context(), st.Records()); err != nil {
			return fmt.Errorf("clear persisted state: %w", err)
		}
		fmt.Println("Local interview state cleared.")
		return nil
	},
}
